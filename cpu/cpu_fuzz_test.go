package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/simplemachine/io"
)

func FuzzCpu(f *testing.F) {
	for code := 0; code < 1000; code += 37 {
		f.Add(code, 0, false, uint8(0))
		f.Add(code, 999, true, uint8(1))
	}

	f.Fuzz(func(t *testing.T, code int, acc int, negative bool, inputs uint8) {
		assert := assert.New(t)

		cfg := DefaultConfig()
		cfg.AccumulatorStart = acc
		cfg.NegativeStart = negative
		cfg.PcStart = 10

		queue := &io.Queue{}
		for n := range inputs {
			queue.Inputs = append(queue.Inputs, int(n)*123)
		}

		cpu, err := NewCpu(nil, cfg, queue)
		assert.NoError(err)
		for n := range cpu.Memory.Len() {
			assert.NoError(cpu.Memory.Set(n, n*7))
		}
		assert.NoError(cpu.Memory.Set(10, code))

		word, _ := cpu.Memory.Get(10)
		code = word.Int()
		before := cpu.Accumulator()
		in, ok := Decode(code)

		err = cpu.Tick()

		assert.GreaterOrEqual(cpu.Accumulator(), 0)
		assert.Less(cpu.Accumulator(), DEFAULT_MODULUS)
		assert.GreaterOrEqual(cpu.Pc(), 0)
		assert.Less(cpu.Pc(), DEFAULT_MEMORY_SIZE)
		assert.Equal(1, cpu.Ticks)

		if !ok {
			assert.NoError(err)
			assert.Equal(11, cpu.Pc())
			assert.Equal(before, cpu.Accumulator())
			return
		}

		operand := in.Address * 7
		if in.Address == 10 {
			operand = code
		}
		switch in.Mnemonic {
		case OP_ADD:
			assert.Equal((before+operand)%DEFAULT_MODULUS, cpu.Accumulator())
		case OP_SUB:
			assert.Equal(before < operand, cpu.Negative())
			assert.Equal((before-operand+DEFAULT_MODULUS)%DEFAULT_MODULUS, cpu.Accumulator())
		case OP_STA:
			word, _ := cpu.Memory.Get(in.Address)
			assert.Equal(before, word.Int())
		case OP_LDA:
			assert.Equal(operand, cpu.Accumulator())
		case OP_BRA:
			assert.Equal(in.Address, cpu.Pc())
		case OP_BRZ:
			if before == 0 {
				assert.Equal(in.Address, cpu.Pc())
			} else {
				assert.Equal(11, cpu.Pc())
			}
		case OP_BRP:
			if !negative {
				assert.Equal(in.Address, cpu.Pc())
			} else {
				assert.Equal(11, cpu.Pc())
			}
		case OP_INP:
			if inputs == 0 {
				assert.ErrorIs(err, io.ErrInputExhausted)
			} else {
				assert.NoError(err)
				assert.Equal(0, cpu.Accumulator())
			}
		case OP_OUT:
			assert.Equal([]int{before}, queue.Outputs)
		case OP_HLT:
			assert.True(cpu.Halted())
		}

		if in.Mnemonic != OP_INP {
			assert.NoError(err)
		}
	})
}
