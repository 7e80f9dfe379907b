// Package memory implements the fixed-size, cell addressed store of the machine.
package memory

import (
	"errors"
	"fmt"
	"iter"

	"github.com/ezrec/simplemachine/cell"
)

// Bank is an ordered, fixed-size sequence of cells sharing a modulus.
type Bank struct {
	modulus int
	cells   []cell.Cell
}

// New allocates size cells, each holding defaultValue modulo modulus.
func New(size, defaultValue, modulus int) (bank *Bank, err error) {
	if size <= 0 {
		err = fmt.Errorf("%w: %d", ErrSize, size)
		return
	}

	proto, err := cell.New(defaultValue, modulus)
	if err != nil {
		return
	}

	bank = &Bank{
		modulus: modulus,
		cells:   make([]cell.Cell, size),
	}
	for n := range bank.cells {
		bank.cells[n] = proto.Clone()
	}

	return
}

// Len returns the number of cells in the bank.
func (bank *Bank) Len() int {
	return len(bank.cells)
}

// Modulus returns the modulus of every cell in the bank.
func (bank *Bank) Modulus() int {
	return bank.modulus
}

func (bank *Bank) check(index int) error {
	if index < 0 || index >= len(bank.cells) {
		return ErrAddress{Address: index, Size: len(bank.cells)}
	}
	return nil
}

// Get returns a copy of the cell at index. Use Set to change the slot.
func (bank *Bank) Get(index int) (c cell.Cell, err error) {
	err = bank.check(index)
	if err != nil {
		return
	}

	c = bank.cells[index].Clone()
	return
}

// Set stores raw, wrapped through the bank modulus, at index.
func (bank *Bank) Set(index int, raw int) (err error) {
	err = bank.check(index)
	if err != nil {
		return
	}

	bank.cells[index].Set(raw)
	return
}

// SetCell replaces the slot at index with a copy of c. A cell of another
// modulus is re-normalized to the bank's modulus.
func (bank *Bank) SetCell(index int, c cell.Cell) (err error) {
	err = bank.check(index)
	if err != nil {
		return
	}

	if c.Modulus() == bank.modulus {
		bank.cells[index] = c
	} else {
		bank.cells[index].Set(c.Int())
	}
	return
}

// Load stores values at consecutive addresses starting at base.
// Nothing is written if the values do not fit.
func (bank *Bank) Load(base int, values []int) (err error) {
	if len(values) == 0 {
		return bank.check(base)
	}

	err = errors.Join(bank.check(base), bank.check(base+len(values)-1))
	if err != nil {
		return
	}

	for n, value := range values {
		bank.cells[base+n].Set(value)
	}
	return
}

// All iterates over the address and value of every cell.
func (bank *Bank) All() iter.Seq2[int, int] {
	return func(yield func(address int, value int) bool) {
		for n := range bank.cells {
			if !yield(n, bank.cells[n].Int()) {
				return
			}
		}
	}
}
