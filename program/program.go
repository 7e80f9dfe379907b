// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program loads machine programs.
//
// Two formats are accepted. A plain listing is a sequence of integer codes
// separated by whitespace or commas, with '#' starting a comment:
//
//	901, 320   # read a
//	901, 321   # read b
//
// A Starlark program file (.star) must define 'program' as a list of integer
// codes, and may define 'memory' as a dict of address to preloaded value and
// 'inputs' as a list of queued input values. The base code of every mnemonic
// is predeclared, so 'LDA + 20' is the code 520:
//
//	program = [INP, OUT, HLT]
//	inputs = [7]
package program

import (
	"bufio"
	"io"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/simplemachine/memory"
)

// Program is a loadable machine image.
type Program struct {
	Name   string      // Source name, for diagnostics.
	Codes  []int       // Codes loaded from address 0.
	Memory map[int]int // Additional preloaded cells, by address.
	Inputs []int       // Queued input values.
}

// Apply preloads the Memory cells of the program into bank.
func (prog *Program) Apply(bank *memory.Bank) (err error) {
	for _, address := range slices.Sorted(maps.Keys(prog.Memory)) {
		err = bank.Set(address, prog.Memory[address])
		if err != nil {
			return
		}
	}

	return
}

// Parse reads a plain program listing.
func Parse(r io.Reader) (prog *Program, err error) {
	prog = &Program{}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		text, _, _ := strings.Cut(line, "#")
		words := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
		for _, word := range words {
			var code int
			code, err = strconv.Atoi(word)
			if err != nil {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrNotInteger}
				prog = nil
				return
			}
			prog.Codes = append(prog.Codes, code)
		}
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

// ParseStarlark executes a Starlark program file. Every define is
// predeclared as an integer.
func ParseStarlark(name string, src any, defines iter.Seq2[string, int]) (prog *Program, err error) {
	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, value := range defines {
		pred[key] = starlark.MakeInt(value)
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, src, pred)
	if err != nil {
		return
	}

	st_program, ok := globals["program"]
	if !ok {
		err = ErrProgramMissing
		return
	}

	prog = &Program{Name: name}
	prog.Codes, err = toInts(st_program)
	if err != nil {
		err = ErrGlobal{Name: "program", Err: err}
		prog = nil
		return
	}

	if st_memory, ok := globals["memory"]; ok {
		prog.Memory, err = toIntMap(st_memory)
		if err != nil {
			err = ErrGlobal{Name: "memory", Err: err}
			prog = nil
			return
		}
	}

	if st_inputs, ok := globals["inputs"]; ok {
		prog.Inputs, err = toInts(st_inputs)
		if err != nil {
			err = ErrGlobal{Name: "inputs", Err: err}
			prog = nil
			return
		}
	}

	return
}

// Load reads a program file, selecting the format by extension.
func Load(path string, defines iter.Seq2[string, int]) (prog *Program, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	if filepath.Ext(path) == ".star" {
		return ParseStarlark(path, data, defines)
	}

	prog, err = Parse(strings.NewReader(string(data)))
	if err != nil {
		return
	}
	prog.Name = path

	return
}

// toInt converts a Starlark integer.
func toInt(value starlark.Value) (out int, err error) {
	st_int, ok := value.(starlark.Int)
	if !ok {
		err = ErrNotInteger
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrNotInteger
		return
	}

	out = int(st_int64)
	return
}

// toInts converts a Starlark list or tuple of integers.
func toInts(value starlark.Value) (out []int, err error) {
	var items starlark.Indexable
	switch list := value.(type) {
	case *starlark.List:
		items = list
	case starlark.Tuple:
		items = list
	default:
		err = ErrNotList
		return
	}

	out = make([]int, 0, items.Len())
	for n := range items.Len() {
		var item int
		item, err = toInt(items.Index(n))
		if err != nil {
			err = ErrNotList
			out = nil
			return
		}
		out = append(out, item)
	}

	return
}

// toIntMap converts a Starlark dict of integer to integer.
func toIntMap(value starlark.Value) (out map[int]int, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrNotDict
		return
	}

	out = make(map[int]int, dict.Len())
	for _, item := range dict.Items() {
		var key, val int
		key, err = toInt(item[0])
		if err == nil {
			val, err = toInt(item[1])
		}
		if err != nil {
			err = ErrNotDict
			out = nil
			return
		}
		out[key] = val
	}

	return
}
