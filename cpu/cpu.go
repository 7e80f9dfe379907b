// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/simplemachine/cell"
	"github.com/ezrec/simplemachine/io"
	"github.com/ezrec/simplemachine/memory"
)

// Channel is an I/O channel interface.
type Channel io.Channel

// Cpu is the simulation context of the accumulator machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory     *memory.Bank // Memory bank; codes and data.
	Channel    Channel      // INP and OUT channel.
	Dispatcher *Dispatcher  // Instruction rule table.

	Ticks int // Cycles started since creation.

	accumulator cell.Cell
	pc          cell.Cell
	negative    bool
	halted      bool
}

// NewCpu creates a machine with codes loaded from address 0.
// A nil channel is replaced with an empty io.Queue.
func NewCpu(codes []int, cfg Config, channel Channel) (cpu *Cpu, err error) {
	defer func() {
		if err != nil {
			cpu = nil
			err = errors.Join(ErrConfiguration, err)
		}
	}()

	bank, err := memory.New(cfg.MemorySize, cfg.CellDefault, cfg.Modulus)
	if err != nil {
		return
	}

	if len(codes) > bank.Len() {
		err = ErrProgramSize{Length: len(codes), Size: bank.Len()}
		return
	}

	err = bank.Load(0, codes)
	if err != nil {
		return
	}

	acc, err := cell.New(cfg.AccumulatorStart, cfg.Modulus)
	if err != nil {
		return
	}

	pc, err := cell.New(cfg.PcStart, cfg.MemorySize)
	if err != nil {
		return
	}

	if channel == nil {
		channel = &io.Queue{}
	}

	cpu = &Cpu{
		Memory:      bank,
		Channel:     channel,
		Dispatcher:  NewDispatcher(cfg.Policy),
		accumulator: *acc,
		pc:          *pc,
		negative:    cfg.NegativeStart,
	}

	return
}

// Accumulator returns the accumulator value.
func (cpu *Cpu) Accumulator() int {
	return cpu.accumulator.Int()
}

// SetAccumulator assigns the accumulator, modulo the cell modulus.
func (cpu *Cpu) SetAccumulator(raw int) {
	cpu.accumulator.Set(raw)
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() int {
	return cpu.pc.Int()
}

// SetPc assigns the program counter, modulo the memory size.
func (cpu *Cpu) SetPc(raw int) {
	cpu.pc.Set(raw)
}

// Negative returns the negative flag.
func (cpu *Cpu) Negative() bool {
	return cpu.negative
}

// Halted is true once a HLT has executed. It is never cleared.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "acc", "neg", "halt", "ticks"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02d", cpu.Pc())
		case "acc":
			strval = fmt.Sprintf("%03d", cpu.Accumulator())
		case "neg":
			strval = fmt.Sprintf("%v", cpu.negative)
		case "halt":
			strval = fmt.Sprintf("%v", cpu.halted)
		case "ticks":
			strval = fmt.Sprintf("%d", cpu.Ticks)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Tick executes a single fetch, advance, dispatch cycle.
// A halted machine does nothing.
func (cpu *Cpu) Tick() (err error) {
	if cpu.halted {
		return
	}

	ip := cpu.pc.Int()
	word, err := cpu.Memory.Get(ip)
	if err != nil {
		return
	}
	code := word.Int()

	defer func() {
		if err != nil {
			err = errors.Join(ErrCycle{Address: ip, Code: code}, err)
		}
	}()

	if cpu.Verbose {
		in, ok := cpu.Dispatcher.Decode(code)
		if ok {
			log.Printf("%02d: %03d %v", ip, code, in)
		} else {
			log.Printf("%02d: %03d ???", ip, code)
		}
	}

	cpu.pc.AddAssign(1)
	cpu.Ticks++

	err = cpu.Dispatcher.Dispatch(cpu, code)
	return
}

// Run executes cycles until the machine halts or a cycle fails.
func (cpu *Cpu) Run() (err error) {
	for !cpu.halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// operand returns the memory cell addressed by code.
func (cpu *Cpu) operand(code int) (cell.Cell, error) {
	return cpu.Memory.Get(addressOf(code))
}

// branch moves the program counter to the address of code.
func (cpu *Cpu) branch(code int) (err error) {
	target := addressOf(code)
	if target >= cpu.Memory.Len() {
		err = memory.ErrAddress{Address: target, Size: cpu.Memory.Len()}
		return
	}

	cpu.pc.Set(target)
	return
}

func (cpu *Cpu) doAdd(code int) (err error) {
	m, err := cpu.operand(code)
	if err != nil {
		return
	}

	cpu.accumulator.AddAssign(m.Int())
	return
}

func (cpu *Cpu) doSub(code int) (err error) {
	m, err := cpu.operand(code)
	if err != nil {
		return
	}

	// Flag from the unwrapped difference.
	cpu.negative = cpu.accumulator.Int()-m.Int() < 0
	cpu.accumulator.SubAssign(m.Int())
	return
}

func (cpu *Cpu) doSta(code int) (err error) {
	return cpu.Memory.Set(addressOf(code), cpu.accumulator.Int())
}

func (cpu *Cpu) doLda(code int) (err error) {
	m, err := cpu.operand(code)
	if err != nil {
		return
	}

	cpu.accumulator.Set(m.Int())
	return
}

func (cpu *Cpu) doBra(code int) (err error) {
	return cpu.branch(code)
}

func (cpu *Cpu) doBrz(code int) (err error) {
	if cpu.accumulator.Equal(0) {
		err = cpu.branch(code)
	}
	return
}

func (cpu *Cpu) doBrp(code int) (err error) {
	if !cpu.negative {
		err = cpu.branch(code)
	}
	return
}

func (cpu *Cpu) doInp(code int) (err error) {
	value, err := cpu.Channel.Receive()
	if err != nil {
		return
	}

	cpu.accumulator.Set(value)
	return
}

func (cpu *Cpu) doOut(code int) (err error) {
	return cpu.Channel.Send(cpu.accumulator.Int())
}

func (cpu *Cpu) doHlt(code int) (err error) {
	cpu.halted = true
	return
}
