package word

// base4.go implements the object-file letter encoding: digits 0,1,2,3 map to a,b,c,d,
// most-significant digit first.

import "fmt"

const digits = "abcd"

// EncodeWidth encodes v as base-4 letters, zero-padded on the left to exactly width letters. It
// panics if v does not fit in width base-4 digits.
func EncodeWidth(v int, width int) string {
	if v < 0 {
		panic(fmt.Sprintf("word: negative value %d cannot be base-4 encoded", v))
	}

	buf := make([]byte, width)

	for i := width - 1; i >= 0; i-- {
		buf[i] = digits[v&0x3]
		v >>= 2
	}

	if v != 0 {
		panic(fmt.Sprintf("word: value overflows width %d", width))
	}

	return string(buf)
}

// EncodeMinWidth encodes v as base-4 letters using the minimum number of letters needed (at least
// one), without zero-padding. Zero encodes as "a".
func EncodeMinWidth(v int) string {
	if v == 0 {
		return "a"
	}

	return EncodeWidth(v, minWidth(v))
}

// minWidth returns the fewest base-4 digits needed to represent v.
func minWidth(v int) int {
	n := 0
	for v > 0 {
		n++
		v >>= 2
	}

	return n
}

// Decode recovers the integer value of a base-4 letter string, most-significant letter first.
// It returns false if s contains a byte outside 'a'..'d'.
func Decode(s string) (int, bool) {
	v := 0

	for i := 0; i < len(s); i++ {
		d := int(s[i]) - int('a')
		if d < 0 || d > 3 {
			return 0, false
		}

		v = v<<2 | d
	}

	return v, true
}
