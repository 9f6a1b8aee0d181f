package main

import (
	"fmt"
	"os"

	miniscriptvm "github.com/policyvault/miniscriptvm"
)

// This is just a demo to ensure we can compile a binary linked against the
// engine. It parses a miniscript expression and prints its analysis.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: demo <miniscript-expression>")
		os.Exit(1)
	}
	expr := os.Args[1]

	version, err := miniscriptvm.Version()
	if err != nil {
		panic(err)
	}
	fmt.Printf("Engine version: %s\n", version)

	ms, err := miniscriptvm.ParseMiniscript(expr, miniscriptvm.ContextWsh)
	if err != nil {
		panic(err)
	}
	defer ms.Close()

	fmt.Printf("Parsed: %s\n", ms)
	fmt.Printf("Sane: %t\n", ms.IsSane())
	fmt.Printf("Non-malleable: %t\n", ms.IsNonMalleable())
	fmt.Printf("Needs signature: %t\n", ms.NeedsSignature())
	if flags, ok := ms.TypeFlags(); ok {
		fmt.Printf("Type: %s\n", flags)
	}
	if size, ok := ms.ScriptSize(); ok {
		fmt.Printf("Script size: %d bytes\n", size)
	}
	if sat, ok := ms.MaxSatisfactionSize(); ok {
		fmt.Printf("Max satisfaction size: %d bytes\n", sat)
	}

	script, err := ms.Script()
	if err != nil {
		panic(err)
	}
	fmt.Printf("Script: %X\n", script)
	fmt.Println("finished")
}
