package pass2

import (
	"bufio"
	"fmt"
	"io"

	"github.com/asm10/asm10/internal/symtab"
	"github.com/asm10/asm10/internal/word"
)

// WriteObject writes the ".ob" object file: a header line of "<IC letters>\t<DC letters>" in
// minimum-width encoding, followed by one line per code-image word and one line per data-image
// word, each "<width-4 address> <width-5 word>". IC and DC in the header are the pass's final
// counter values (IC starts at symtab.StartIC, not the code-word count).
func WriteObject(w io.Writer, out Output) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\t%s\n", word.EncodeMinWidth(out.IC), word.EncodeMinWidth(out.DC))

	for _, c := range out.Code {
		fmt.Fprintf(bw, "%s %s\n", word.EncodeWidth(c.Address, 4), word.EncodeWidth(int(c.Combined()), 5))
	}

	for _, d := range out.Data {
		fmt.Fprintf(bw, "%s %s\n", word.EncodeWidth(d.Address, 4), word.EncodeWidth(int(d.Payload&0x3ff), 5))
	}

	return bw.Flush()
}

// WriteEntries writes the ".ent" entry file, one "<name> <width-4 address>" line per entry. It
// reports wrote=false (and writes nothing) when there are no entries, so the caller knows to skip
// creating the file.
func WriteEntries(w io.Writer, out Output) (wrote bool, err error) {
	if len(out.Entries) == 0 {
		return false, nil
	}

	bw := bufio.NewWriter(w)

	for _, ent := range out.Entries {
		fmt.Fprintf(bw, "%s %s\n", ent.Name, word.EncodeWidth(ent.Address, 4))
	}

	return true, bw.Flush()
}

// WriteExterns writes the ".ext" extern-usage file, one "<name> <width-4 address>" line per usage
// in declaration then use order. It reports wrote=false when no extern has any recorded usage.
func WriteExterns(w io.Writer, out Output) (wrote bool, err error) {
	bw := bufio.NewWriter(w)

	out.Externs.Each(func(rec symtab.ExternRecord) {
		for _, addr := range rec.Uses {
			wrote = true
			fmt.Fprintf(bw, "%s %s\n", rec.Name, word.EncodeWidth(addr, 4))
		}
	})

	if !wrote {
		return false, nil
	}

	return true, bw.Flush()
}
