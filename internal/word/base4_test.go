package word

import "testing"

func TestEncodeWidth(t *testing.T) {
	cases := []struct {
		v     int
		width int
		want  string
	}{
		{0, 4, "aaaa"},
		{0, 1, "a"},
		{1, 1, "b"},
		{3, 1, "d"},
		{4, 2, "ba"},
		{100, 4, "bcba"},
	}

	for _, c := range cases {
		got := EncodeWidth(c.v, c.width)
		if got != c.want {
			t.Errorf("EncodeWidth(%d, %d) = %q, want %q", c.v, c.width, got, c.want)
		}
	}
}

func TestEncodeMinWidth(t *testing.T) {
	cases := []struct {
		v    int
		want string
	}{
		{0, "a"},
		{2, "c"},
		{100, "bcba"},
	}

	for _, c := range cases {
		if got := EncodeMinWidth(c.v); got != c.want {
			t.Errorf("EncodeMinWidth(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestBase4RoundTrip(t *testing.T) {
	const width = 5

	max := 1
	for i := 0; i < width; i++ {
		max *= 4
	}

	for v := 0; v < max; v++ {
		enc := EncodeWidth(v, width)

		got, ok := Decode(enc)
		if !ok {
			t.Fatalf("Decode(%q) failed to decode", enc)
		}

		if got != v {
			t.Errorf("round trip: encode(%d) = %q, decode = %d", v, enc, got)
		}
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, ok := Decode("xyz"); ok {
		t.Fatal("Decode accepted invalid letters")
	}
}
