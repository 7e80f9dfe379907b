// Package io provides the integer I/O channels of the simple machine.
// The INP instruction receives one integer per invocation, and the OUT
// instruction sends the accumulator once per invocation.
package io

// Channel defines the interface for the machine's I/O channel.
type Channel interface {
	// Receive blocks until the next integer is available.
	// Returns ErrInputExhausted when no input remains.
	Receive() (value int, err error)
	// Send emits a single integer.
	Send(value int) error
}
