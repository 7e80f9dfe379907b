package cell

import (
	"errors"

	"github.com/ezrec/simplemachine/translate"
)

var f = translate.From

var (
	// Cell errors
	ErrModulus = errors.New(f("modulus must be positive"))
)
