// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/simplemachine/config"
	"github.com/ezrec/simplemachine/cpu"
	"github.com/ezrec/simplemachine/emulator"
	"github.com/ezrec/simplemachine/io"
	"github.com/ezrec/simplemachine/program"
)

func main() {
	var source string
	var dotenv string
	var input string
	var output string
	var limit int
	var strict bool
	var negative bool
	var prompt bool
	var verbose bool

	flag.StringVar(&source, "p", "", "program file (.star or plain listing); default is the gcd demo")
	flag.StringVar(&dotenv, "env", config.DOTENV, "dotenv configuration file")
	flag.StringVar(&input, "i", "-", "Tape input")
	flag.StringVar(&output, "o", "-", "Tape output")
	flag.IntVar(&limit, "n", 0, "Maximum ticks, 0 for unlimited")
	flag.BoolVar(&strict, "strict", false, "Fail on codes that do not decode")
	flag.BoolVar(&negative, "N", false, "Initial negative flag")
	flag.BoolVar(&prompt, "prompt", false, "Prompt before each input")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg, err := config.FromEnv(dotenv)
	if err != nil {
		log.Fatalf("%v: %v", dotenv, err)
	}

	// Flags only override the environment when given.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "strict":
			if strict {
				cfg.Policy = cpu.POLICY_STRICT
			} else {
				cfg.Policy = cpu.POLICY_PERMISSIVE
			}
		case "N":
			cfg.NegativeStart = negative
		}
	})

	prog := program.Gcd()
	if len(source) != 0 {
		prog, err = program.Load(source, emulator.Defines(cfg))
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
	}

	emu, err := emulator.NewEmulator(prog, cfg)
	if err != nil {
		log.Fatalf("%v: %v", prog.Name, err)
	}
	emu.Verbose = verbose
	emu.Limit = limit

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if prompt {
		emu.Tape.Prompt = "? "
	}

	err = emu.Run()

	// Program supplied inputs run against the queue; print what it
	// collected, even when the run failed.
	ferr := flush(&emu.Queue, &emu.Tape)

	if err != nil {
		log.Print(emu.Cpu.String())
		log.Fatalf("%v: %v", prog.Name, err)
	}

	if ferr != nil {
		log.Fatalf("%v: %v", output, ferr)
	}
}

// flush sends the outputs recorded by queue to tape, in order.
func flush(queue *io.Queue, tape *io.Tape) (err error) {
	for _, value := range queue.Outputs {
		err = tape.Send(value)
		if err != nil {
			return
		}
	}

	return
}
