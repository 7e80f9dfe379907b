// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator ties a machine to a program and a tape, and bounds its run.
package emulator

import (
	"iter"
	"log"
	"maps"

	"github.com/ezrec/simplemachine/cpu"
	"github.com/ezrec/simplemachine/internal"
	"github.com/ezrec/simplemachine/io"
	"github.com/ezrec/simplemachine/program"
)

// Emulator state. CPU + program + IO channel.
type Emulator struct {
	Verbose  bool             // If set, enables verbose logging.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Program  *program.Program // Reference to the currently loaded program.
	Config   cpu.Config       // Configuration applied on Reset.
	Limit    int              // If positive, maximum ticks before ErrTickLimit.

	Tape  io.Tape  // Tape IO channel, used when the program has no inputs.
	Queue io.Queue // Queue IO channel, used for program supplied inputs.
}

// NewEmulator creates an emulator for a program, and resets it.
func NewEmulator(prog *program.Program, cfg cpu.Config) (emu *Emulator, err error) {
	emu = &Emulator{
		Program: prog,
		Config:  cfg,
	}

	err = emu.Reset()
	if err != nil {
		emu = nil
	}

	return
}

// Defines returns the predeclared names for program files of this emulator.
func (emu *Emulator) Defines() iter.Seq2[string, int] {
	return Defines(emu.Config)
}

// Defines returns the predeclared names for program files of a configuration.
func Defines(cfg cpu.Config) iter.Seq2[string, int] {
	return internal.Concat2(
		maps.All(map[string]int{
			"MEMORY_SIZE": cfg.MemorySize,
			"MODULUS":     cfg.Modulus,
		}),
		cpu.Defines(),
	)
}

// channel returns the IO channel the program runs against.
func (emu *Emulator) channel() cpu.Channel {
	if emu.Program != nil && len(emu.Program.Inputs) != 0 {
		return &emu.Queue
	}
	return &emu.Tape
}

// Reset the machine: fresh registers, memory reloaded from the program.
// The tape is left as is; call Tape.Rewind after replacing Tape.Input.
func (emu *Emulator) Reset() (err error) {
	prog := emu.Program
	if prog == nil {
		prog = &program.Program{}
	}

	emu.Queue = io.Queue{Inputs: append([]int(nil), prog.Inputs...)}

	machine, err := cpu.NewCpu(prog.Codes, emu.Config, emu.channel())
	if err != nil {
		return
	}

	err = prog.Apply(machine.Memory)
	if err != nil {
		return
	}

	emu.Cpu = machine
	emu.Cpu.Verbose = emu.Verbose

	if emu.Verbose {
		log.Printf("emulator: reset %v, %d codes", prog.Name, len(prog.Codes))
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted() {
		done = true
		return
	}

	if emu.Limit > 0 && emu.Cpu.Ticks >= emu.Limit {
		err = &ErrRuntime{Tick: emu.Cpu.Ticks, Err: ErrTickLimit}
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		err = &ErrRuntime{Tick: emu.Cpu.Ticks, Err: err}
		return
	}

	done = emu.Cpu.Halted()
	return
}

// Run ticks until the machine halts, fails, or exhausts the tick limit.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.Cpu.Ticks)
	}

	return
}
