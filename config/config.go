// Package config reads the machine configuration from the environment.
//
// Variables may also be given in dotenv files; values already present in the
// process environment take precedence over those files.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ezrec/simplemachine/cpu"
)

// Environment variable names.
const (
	ENV_MEMORY_SIZE   = "MAX_MEMORY_SIZE"
	ENV_MODULUS       = "CELL_THRESHOLD_VALUE"
	ENV_CELL_DEFAULT  = "CELL_DEFAULT_VALUE"
	ENV_ACCUMULATOR   = "ACCUMULATIVE_START_VALUE"
	ENV_PC            = "PROGRAM_COUNTER_START_VALUE"
	ENV_NEGATIVE      = "NEGATIVE_FLAG_START_VALUE"
	ENV_STRICT_DECODE = "STRICT_DECODE"

	DOTENV = ".env" // Default dotenv file.
)

// Lookup fetches a variable; it has the signature of os.LookupEnv.
type Lookup func(name string) (value string, ok bool)

// LoadEnv merges dotenv files into the process environment.
// Missing files are skipped.
func LoadEnv(files ...string) (err error) {
	if len(files) == 0 {
		files = []string{DOTENV}
	}

	for _, file := range files {
		err = godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			return
		}
	}

	return
}

// FromEnv loads dotenv files, then reads the configuration from the process
// environment on top of cpu.DefaultConfig().
func FromEnv(files ...string) (cfg cpu.Config, err error) {
	err = LoadEnv(files...)
	if err != nil {
		return
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup on top of cpu.DefaultConfig().
func FromLookup(lookup Lookup) (cfg cpu.Config, err error) {
	cfg = cpu.DefaultConfig()

	ints := []struct {
		name  string
		value *int
	}{
		{ENV_MEMORY_SIZE, &cfg.MemorySize},
		{ENV_MODULUS, &cfg.Modulus},
		{ENV_CELL_DEFAULT, &cfg.CellDefault},
		{ENV_ACCUMULATOR, &cfg.AccumulatorStart},
		{ENV_PC, &cfg.PcStart},
	}

	for _, entry := range ints {
		str, ok := lookup(entry.name)
		if !ok {
			continue
		}
		*entry.value, err = strconv.Atoi(str)
		if err != nil {
			err = ErrEnv{Name: entry.name, Value: str, Err: err}
			return
		}
	}

	if str, ok := lookup(ENV_NEGATIVE); ok {
		cfg.NegativeStart, err = parseBool(ENV_NEGATIVE, str)
		if err != nil {
			return
		}
	}

	if str, ok := lookup(ENV_STRICT_DECODE); ok {
		var strict bool
		strict, err = parseBool(ENV_STRICT_DECODE, str)
		if err != nil {
			return
		}
		if strict {
			cfg.Policy = cpu.POLICY_STRICT
		}
	}

	return
}

func parseBool(name, str string) (value bool, err error) {
	value, err = strconv.ParseBool(str)
	if err != nil {
		err = ErrEnv{Name: name, Value: str, Err: err}
	}
	return
}
