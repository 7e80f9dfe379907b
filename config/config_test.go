package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/simplemachine/cpu"
)

func mapLookup(env map[string]string) Lookup {
	return func(name string) (value string, ok bool) {
		value, ok = env[name]
		return
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := FromLookup(mapLookup(nil))
	assert.NoError(err)
	assert.Equal(cpu.DefaultConfig(), cfg)
}

func TestFromLookup(t *testing.T) {
	assert := assert.New(t)

	cfg, err := FromLookup(mapLookup(map[string]string{
		ENV_MEMORY_SIZE:   "50",
		ENV_MODULUS:       "500",
		ENV_CELL_DEFAULT:  "1",
		ENV_ACCUMULATOR:   "-2",
		ENV_PC:            "3",
		ENV_NEGATIVE:      "true",
		ENV_STRICT_DECODE: "1",
	}))
	assert.NoError(err)
	assert.Equal(cpu.Config{
		MemorySize:       50,
		Modulus:          500,
		CellDefault:      1,
		AccumulatorStart: -2,
		PcStart:          3,
		NegativeStart:    true,
		Policy:           cpu.POLICY_STRICT,
	}, cfg)
}

func TestFromLookup_Errors(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{ENV_MEMORY_SIZE, ENV_MODULUS, ENV_PC, ENV_NEGATIVE, ENV_STRICT_DECODE} {
		_, err := FromLookup(mapLookup(map[string]string{name: "lots"}))

		var eerr ErrEnv
		assert.True(errors.As(err, &eerr), name)
		assert.Equal(name, eerr.Name)
		assert.Equal("lots", eerr.Value)
	}

	_, err := FromLookup(mapLookup(map[string]string{ENV_PC: "x"}))
	assert.ErrorIs(err, strconv.ErrSyntax)
}

func TestFromEnv(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	dotenv := filepath.Join(dir, "machine.env")
	require.NoError(t, os.WriteFile(dotenv, []byte("MAX_MEMORY_SIZE=20\nCELL_THRESHOLD_VALUE=100\n"), 0o644))

	// Process environment wins over the dotenv file.
	t.Setenv(ENV_MODULUS, "200")
	// godotenv.Load sets variables it loads; restore on cleanup.
	t.Setenv(ENV_MEMORY_SIZE, "")
	os.Unsetenv(ENV_MEMORY_SIZE)

	cfg, err := FromEnv(dotenv, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(20, cfg.MemorySize)
	assert.Equal(200, cfg.Modulus)
}
