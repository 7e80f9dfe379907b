package memory

import (
	"errors"

	"github.com/ezrec/simplemachine/translate"
)

var f = translate.From

var (
	// Memory errors
	ErrSize        = errors.New(f("memory size must be positive"))
	ErrOutOfBounds = errors.New(f("address out of bounds"))
)

// ErrAddress reports an access outside of the bank.
type ErrAddress struct {
	Address int
	Size    int
}

func (err ErrAddress) Error() string {
	return f("address %d outside of [0, %d)", err.Address, err.Size)
}

func (err ErrAddress) Is(target error) bool {
	return target == ErrOutOfBounds
}
