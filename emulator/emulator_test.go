package emulator

import (
	"bytes"
	"fmt"
	"maps"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/simplemachine/cpu"
	"github.com/ezrec/simplemachine/io"
	"github.com/ezrec/simplemachine/program"
)

func doRun(t *testing.T, prog *program.Program, input string) (emu *Emulator, output string) {
	emu, err := NewEmulator(prog, cpu.DefaultConfig())
	require.NoError(t, err)

	emu.Tape.Input = strings.NewReader(input)
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	err = emu.Run()
	assert.NoError(t, err)

	output = tape_output.String()
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(nil, cpu.DefaultConfig())
	require.NoError(t, err)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(0, emu.Ticks())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done, "empty memory halts immediately")
}

func TestEmulator_Echo(t *testing.T) {
	assert := assert.New(t)

	prog := &program.Program{Codes: []int{901, 902}}
	_, output := doRun(t, prog, "7")

	assert.Equal("7\n", output)
}

func TestEmulator_Gcd(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b int
		gcd  string
	}){
		{12, 18, "6\n"},
		{18, 12, "6\n"},
		{7, 7, "7\n"},
		{17, 5, "1\n"},
		{270, 192, "6\n"},
	}

	for _, entry := range table {
		input := fmt.Sprintf("%d %d", entry.a, entry.b)
		emu, output := doRun(t, program.Gcd(), input)
		assert.Equal(entry.gcd, output, input)
		assert.True(emu.Halted(), input)
	}
}

func TestEmulator_ProgramInputs(t *testing.T) {
	assert := assert.New(t)

	prog, err := program.ParseStarlark("echo.star",
		"program = [LDA + 20, OUT, INP, OUT, HLT]\nmemory = {20: 5}\ninputs = [MODULUS + 7]",
		Defines(cpu.DefaultConfig()))
	require.NoError(t, err)

	emu, err := NewEmulator(prog, cpu.DefaultConfig())
	require.NoError(t, err)

	assert.NoError(emu.Run())
	assert.Equal([]int{5, 7}, emu.Queue.Outputs)
	assert.Equal(5, emu.Ticks())

	// Reset restores memory, registers, and queued inputs.
	assert.NoError(emu.Reset())
	assert.False(emu.Halted())
	assert.Equal(0, emu.Pc())
	assert.Equal([]int{1007}, emu.Queue.Inputs)
	assert.Empty(emu.Queue.Outputs)
	assert.Equal([]int{1007}, prog.Inputs, "program inputs are not consumed")
}

func TestEmulator_TickLimit(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(&program.Program{Codes: []int{600}}, cpu.DefaultConfig())
	require.NoError(t, err)
	emu.Limit = 10

	err = emu.Run()
	assert.ErrorIs(err, ErrTickLimit)
	assert.Equal(10, emu.Ticks())

	var rerr *ErrRuntime
	assert.ErrorAs(err, &rerr)
	assert.Equal(10, rerr.Tick)
}

func TestEmulator_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(&program.Program{Codes: []int{902, 901}}, cpu.DefaultConfig())
	require.NoError(t, err)

	err = emu.Run()
	assert.ErrorIs(err, io.ErrInputExhausted)

	var rerr *ErrRuntime
	assert.ErrorAs(err, &rerr)
	assert.Equal(2, rerr.Tick)
}

func TestEmulator_Config(t *testing.T) {
	assert := assert.New(t)

	_, err := NewEmulator(&program.Program{Codes: make([]int, 11)}, cpu.Config{MemorySize: 10, Modulus: 1000})
	assert.ErrorIs(err, cpu.ErrConfiguration)

	_, err = NewEmulator(&program.Program{Memory: map[int]int{10: 1}}, cpu.Config{MemorySize: 10, Modulus: 1000})
	assert.Error(err)
}

func TestEmulator_Defines(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(nil, cpu.Config{MemorySize: 20, Modulus: 100})
	require.NoError(t, err)

	defines := maps.Collect(emu.Defines())
	assert.Equal(20, defines["MEMORY_SIZE"])
	assert.Equal(100, defines["MODULUS"])
	assert.Equal(500, defines["LDA"])
}

func TestEmulator_Concurrent(t *testing.T) {
	assert := assert.New(t)

	var wg sync.WaitGroup
	outputs := make([][]int, 8)
	for n := range outputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prog := program.Gcd()
			prog.Inputs = []int{6 * (n + 1), 4 * (n + 1)}
			emu, err := NewEmulator(prog, cpu.DefaultConfig())
			if err != nil {
				return
			}
			if emu.Run() == nil {
				outputs[n] = emu.Queue.Outputs
			}
		}()
	}
	wg.Wait()

	for n := range outputs {
		assert.Equal([]int{2 * (n + 1)}, outputs[n], "machine %d", n)
	}
}

func TestEmulator_ResetKeepsTape(t *testing.T) {
	assert := assert.New(t)

	emu, err := NewEmulator(&program.Program{Codes: []int{901, 902, 0}}, cpu.DefaultConfig())
	require.NoError(t, err)

	emu.Tape.Input = strings.NewReader("7 8")
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	assert.NoError(emu.Run())
	assert.Equal("7\n", tape_output.String())

	// The scanner has buffered "8"; a reset must not drop it.
	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.Equal("7\n8\n", tape_output.String())

	// A new input takes effect after a rewind.
	emu.Tape.Input = strings.NewReader("9")
	emu.Tape.Rewind()
	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())
	assert.Equal("7\n8\n9\n", tape_output.String())
}
