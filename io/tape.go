package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Tape provides sequential integer I/O over byte streams.
// Input is read as whitespace separated decimal integers, and output is
// written as one decimal integer per line.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt string // If set, written to Output before each read.

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// Rewind discards buffered input. Call it after replacing Input.
func (tc *Tape) Rewind() {
	tc.scanner = nil
}

// Receive reads the next integer from the input stream.
func (tc *Tape) Receive() (value int, err error) {
	if tc.Input == nil {
		err = ErrInputExhausted
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(bufio.ScanWords)
	}

	if len(tc.Prompt) != 0 && tc.Output != nil {
		_, err = io.WriteString(tc.Output, tc.Prompt)
		if err != nil {
			return
		}
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		if err == nil {
			err = ErrInputExhausted
		}
		return
	}

	word := tc.scanner.Text()
	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
	}

	return
}

// Send writes value as a decimal line to the output stream.
func (tc *Tape) Send(value int) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	return
}
