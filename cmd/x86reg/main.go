// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/x86reg/emulator"
)

func main() {
	var script string
	var keepGoing bool
	var quiet bool
	var verbose bool

	flag.StringVar(&script, "s", "-", ".star script to run")
	flag.BoolVar(&keepGoing, "k", false, "Log and skip operand errors")
	flag.BoolVar(&quiet, "q", false, "Do not dump the final state")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.KeepGoing = keepGoing
	emu.Output = os.Stdout
	emu.Reset()

	var err error
	if script == "-" {
		err = emu.Run("<stdin>", os.Stdin)
	} else {
		err = emu.Run(script, nil)
	}
	if err != nil {
		log.Fatalf("%v: %v", script, err)
	}

	if !quiet {
		err = emu.Dump(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(emu.Faults) != 0 {
		log.Printf("%v: %d operand errors skipped", script, len(emu.Faults))
	}
}
