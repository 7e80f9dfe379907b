package cpu

import (
	"errors"

	"github.com/ezrec/simplemachine/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrConfiguration = errors.New(f("configuration"))
	ErrDecode        = errors.New(f("decode"))
	ErrOverlap       = errors.New(f("rules overlap"))
)

// ErrProgramSize is a program that does not fit in memory.
type ErrProgramSize struct {
	Length int
	Size   int
}

func (err ErrProgramSize) Error() string {
	return f("program of %d codes exceeds memory of %d cells", err.Length, err.Size)
}

// ErrCode is a code that no rule matched, under the strict policy.
type ErrCode int

func (ec ErrCode) Error() string {
	return f("code %03d does not decode", int(ec))
}

func (ec ErrCode) Is(err error) bool {
	return err == ErrDecode
}

// ErrCycle locates the cycle that failed.
type ErrCycle struct {
	Address int // Address the code was fetched from.
	Code    int // Fetched code.
}

func (err ErrCycle) Error() string {
	return f("at %02d code %03d", err.Address, err.Code)
}

// ErrRuleOverlap reports a code matched by more than one rule.
type ErrRuleOverlap struct {
	Code   int
	First  Mnemonic
	Second Mnemonic
}

func (err ErrRuleOverlap) Error() string {
	return f("code %03d matched by %v and %v", err.Code, err.First, err.Second)
}

func (err ErrRuleOverlap) Is(target error) bool {
	return target == ErrOverlap
}
