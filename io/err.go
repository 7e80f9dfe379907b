package io

import (
	"errors"

	"github.com/ezrec/simplemachine/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputExhausted = errors.New(f("input exhausted"))
)

// ErrParseNumber is an input token that is not a decimal integer.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}
