// Package cell implements the modular integer slot used for every register
// and memory word of the machine.
//
// A Cell always holds a value in [0, modulus). Every write is normalized with
// the mathematical modulo, so negative inputs wrap to a non-negative remainder.
package cell

import (
	"fmt"
)

// Integer is anything that can be read back as a plain int.
type Integer interface {
	Int() int
}

// Cell is a bounded integer slot.
type Cell struct {
	value   int
	modulus int
}

var _ Integer = (*Cell)(nil)

// Mod returns the non-negative remainder of raw modulo modulus.
// The modulus must be positive.
func Mod(raw, modulus int) int {
	rem := raw % modulus
	if rem < 0 {
		rem += modulus
	}
	return rem
}

// New creates a cell holding raw normalized to modulus.
func New(raw, modulus int) (c *Cell, err error) {
	if modulus <= 0 {
		err = fmt.Errorf("%w: %d", ErrModulus, modulus)
		return
	}

	c = &Cell{
		value:   Mod(raw, modulus),
		modulus: modulus,
	}

	return
}

// Int returns the normalized value.
func (c *Cell) Int() int {
	return c.value
}

// Modulus returns the wraparound boundary of the cell.
func (c *Cell) Modulus() int {
	return c.modulus
}

// Set assigns raw, normalized to the cell's modulus.
func (c *Cell) Set(raw int) {
	c.value = Mod(raw, c.modulus)
}

// Add returns (value + k) mod modulus, without modifying the cell.
func (c *Cell) Add(k int) int {
	return Mod(c.value+Mod(k, c.modulus), c.modulus)
}

// Sub returns (value - k) mod modulus, without modifying the cell.
func (c *Cell) Sub(k int) int {
	return Mod(c.value-Mod(k, c.modulus), c.modulus)
}

// AddAssign adds k to the cell and returns the new value.
func (c *Cell) AddAssign(k int) int {
	c.value = c.Add(k)
	return c.value
}

// SubAssign subtracts k from the cell and returns the new value.
func (c *Cell) SubAssign(k int) int {
	c.value = c.Sub(k)
	return c.value
}

// Equal is true if the normalized value is v.
func (c *Cell) Equal(v int) bool {
	return c.value == v
}

// Compare returns -1, 0 or +1 as the normalized value is less than,
// equal to or greater than v.
func (c *Cell) Compare(v int) int {
	switch {
	case c.value < v:
		return -1
	case c.value > v:
		return 1
	}
	return 0
}

// EqualTo compares against any integer-convertible operand.
func (c *Cell) EqualTo(other Integer) bool {
	return c.Equal(other.Int())
}

// CompareTo compares against any integer-convertible operand.
func (c *Cell) CompareTo(other Integer) int {
	return c.Compare(other.Int())
}

// Clone returns an independent copy of the cell.
func (c *Cell) Clone() Cell {
	return *c
}

func (c *Cell) String() string {
	return fmt.Sprintf("Cell(%d)", c.value)
}
