package cpu

// Default machine geometry.
const (
	DEFAULT_MEMORY_SIZE = 100
	DEFAULT_MODULUS     = 1000
)

// Config is the construction-time configuration of a Cpu.
// MemorySize and Modulus are independent: the program counter wraps at
// MemorySize, while the accumulator and every memory cell wrap at Modulus.
type Config struct {
	MemorySize       int    // Number of memory cells.
	Modulus          int    // Wraparound of the accumulator and memory cells.
	CellDefault      int    // Initial value of every memory cell.
	AccumulatorStart int    // Initial accumulator.
	PcStart          int    // Initial program counter.
	NegativeStart    bool   // Initial negative flag.
	Policy           Policy // Handling of unmatched codes.
}

// DefaultConfig returns the standard 100 cell, modulo 1000 machine.
func DefaultConfig() Config {
	return Config{
		MemorySize: DEFAULT_MEMORY_SIZE,
		Modulus:    DEFAULT_MODULUS,
	}
}
