package cpu

import (
	"fmt"
	"iter"
	"maps"
)

// Mnemonic names an operation family.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_HLT = Mnemonic(0) // HLT
	OP_ADD = Mnemonic(1) // ADD
	OP_SUB = Mnemonic(2) // SUB
	OP_STA = Mnemonic(3) // STA
	OP_LDA = Mnemonic(4) // LDA
	OP_BRA = Mnemonic(5) // BRA
	OP_BRZ = Mnemonic(6) // BRZ
	OP_BRP = Mnemonic(7) // BRP
	OP_INP = Mnemonic(8) // INP
	OP_OUT = Mnemonic(9) // OUT
)

// Base codes of each operation. Addressed operations add the address.
const (
	CODE_HLT = 0
	CODE_ADD = 100
	CODE_SUB = 200
	CODE_STA = 300
	CODE_LDA = 500
	CODE_BRA = 600
	CODE_BRZ = 700
	CODE_BRP = 800
	CODE_INP = 901
	CODE_OUT = 902

	ADDRESS_SPAN = 100 // Addresses are the last two decimal digits.
)

var _mnemonic_base = map[Mnemonic]int{
	OP_HLT: CODE_HLT,
	OP_ADD: CODE_ADD,
	OP_SUB: CODE_SUB,
	OP_STA: CODE_STA,
	OP_LDA: CODE_LDA,
	OP_BRA: CODE_BRA,
	OP_BRZ: CODE_BRZ,
	OP_BRP: CODE_BRP,
	OP_INP: CODE_INP,
	OP_OUT: CODE_OUT,
}

var _cpu_defines = map[string]int{}

func init() {
	for op, base := range _mnemonic_base {
		_cpu_defines[op.String()] = base
	}
}

// Defines returns the base code of every mnemonic, by name.
func Defines() iter.Seq2[string, int] {
	return maps.All(_cpu_defines)
}

// Addressed is true for operations that carry a memory address.
func (op Mnemonic) Addressed() bool {
	return op != OP_INP && op != OP_OUT
}

// Base returns the base code of the operation.
func (op Mnemonic) Base() int {
	return _mnemonic_base[op]
}

// Instruction is a decoded code.
type Instruction struct {
	Mnemonic Mnemonic
	Address  int // Only meaningful when the mnemonic is Addressed.
}

// MakeInstruction creates an instruction for an operation and address.
func MakeInstruction(op Mnemonic, address int) Instruction {
	if !op.Addressed() {
		address = 0
	}
	return Instruction{Mnemonic: op, Address: address % ADDRESS_SPAN}
}

// Code encodes the instruction.
func (in Instruction) Code() int {
	if !in.Mnemonic.Addressed() {
		return in.Mnemonic.Base()
	}
	return in.Mnemonic.Base() + in.Address
}

func (in Instruction) String() string {
	if !in.Mnemonic.Addressed() {
		return in.Mnemonic.String()
	}
	return fmt.Sprintf("%v %02d", in.Mnemonic, in.Address)
}

// addressOf returns the address field of a code.
func addressOf(code int) int {
	return code % ADDRESS_SPAN
}

// Decode decodes a code with the default rule table.
func Decode(code int) (in Instruction, ok bool) {
	return NewDispatcher(POLICY_PERMISSIVE).Decode(code)
}
