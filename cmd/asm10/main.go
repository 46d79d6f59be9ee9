// Command asm10 assembles one or more input stems for the 10-bit two-pass assembler.
package main

import (
	"os"

	"github.com/asm10/asm10/internal/cli"
)

func main() {
	cmd := cli.New()
	os.Exit(cmd.Run(os.Args[1:], os.Stdout))
}
