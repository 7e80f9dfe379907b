package program

import (
	"errors"

	"github.com/ezrec/simplemachine/translate"
)

var f = translate.From

var (
	// Program file errors
	ErrProgramMissing = errors.New(f("'program' not defined"))
	ErrNotList        = errors.New(f("not a list of integers"))
	ErrNotDict        = errors.New(f("not a dict of integers"))
	ErrNotInteger     = errors.New(f("not an integer"))
)

// ErrSyntax locates a failure in a plain program listing.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrGlobal locates a failure in a Starlark program global.
type ErrGlobal struct {
	Name string
	Err  error
}

func (err ErrGlobal) Error() string {
	return f("'%v' %v", err.Name, err.Err)
}

func (err ErrGlobal) Unwrap() error {
	return err.Err
}
