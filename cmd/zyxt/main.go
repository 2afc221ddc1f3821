// Command zyxt is the thin CLI front end wiring internal/samples,
// internal/check, internal/interp and internal/config together, the way
// the teacher's cmd/dwscript binary wires its own parser and interpreter.
package main

import (
	"os"

	"github.com/zyxtlang/zyxt-go/cmd/zyxt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
