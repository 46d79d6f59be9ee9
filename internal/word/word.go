// Package word defines the machine word types of the target architecture and the base-4 letter
// encoding used to print them.
package word

import "fmt"

// ARE is the 2-bit relocation field attached to a code word.
type ARE uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type ARE -output are_string.go

// Relocation kinds.
const (
	Absolute    ARE = 0
	External    ARE = 1
	Relocatable ARE = 2
)

// Word is a code-image word: an address, an 8-bit payload, a relocation field, and — until the
// second pass resolves it — the name of an unresolved symbol reference.
type Word struct {
	Address int
	Payload uint8
	Are     ARE

	// SymbolRef is the label this word refers to, if any. Set by the first pass, consumed and
	// cleared (conceptually) by the second pass when it sets Payload/Are.
	SymbolRef string
}

func (w Word) String() string {
	return fmt.Sprintf("%04d: %#02x (%s) %q", w.Address, w.Payload, w.Are, w.SymbolRef)
}

// Combined packs the word's payload and ARE bits into the 10-bit value written to object files:
// payload occupies the top 8 bits, ARE the bottom 2.
func (w Word) Combined() uint16 {
	return uint16(w.Payload)<<2 | uint16(w.Are)
}

// DataWord is a data-image word: an address and an unsigned 10-bit payload. Data words carry no
// relocation field.
type DataWord struct {
	Address int
	Payload uint16 // low 10 bits significant
}

func (d DataWord) String() string {
	return fmt.Sprintf("%04d: %#03x", d.Address, d.Payload&0x3ff)
}

// Mask10 truncates a value to its low 10 bits, the data-word payload width.
func Mask10(v int) uint16 {
	return uint16(v) & 0x3ff
}
