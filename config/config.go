// Package config loads assembler settings from a Starlark file.
//
// A configuration is a Starlark program whose globals set the options:
//
//	verbose = True
//	listing = False
//	predefine = {
//	    "IO_PORT": ARENA_WORDS - 0x100,
//	}
//
// ARENA_WORDS, the number of addressable words, is predeclared.
package config

import (
	"errors"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/iridium/translate"
)

var f = translate.From

// ARENA_WORDS is the size of the 16-bit word address space.
const ARENA_WORDS = 1 << 16

var (
	ErrConfigType  = errors.New(f("configuration value has the wrong type"))
	ErrConfigRange = errors.New(f("configuration value is not a word address"))
)

// ErrConfig locates a configuration failure.
type ErrConfig struct {
	Name string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config holds assembler settings.
type Config struct {
	Verbose   bool           // Log assembler actions.
	Listing   bool           // Print a listing after assembly.
	Predefine map[string]int // Symbols bound before assembly.
}

// Load executes the Starlark configuration file at path.
func Load(path string) (cfg *Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, src)
}

// Parse executes Starlark configuration source; filename is used in
// error messages only.
func Parse(filename string, src []byte) (cfg *Config, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"ARENA_WORDS": starlark.MakeInt(ARENA_WORDS),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	cfg = &Config{}

	if cfg.Verbose, err = getBool(globals, "verbose"); err != nil {
		cfg = nil
		return
	}
	if cfg.Listing, err = getBool(globals, "listing"); err != nil {
		cfg = nil
		return
	}
	if cfg.Predefine, err = getPredefine(globals, "predefine"); err != nil {
		cfg = nil
		return
	}

	return
}

// getBool reads an optional boolean global.
func getBool(globals starlark.StringDict, name string) (value bool, err error) {
	st_value, ok := globals[name]
	if !ok {
		return
	}

	st_bool, ok := st_value.(starlark.Bool)
	if !ok {
		err = &ErrConfig{Name: name, Err: ErrConfigType}
		return
	}

	value = bool(st_bool)
	return
}

// getPredefine reads an optional dict of symbol names to word addresses.
func getPredefine(globals starlark.StringDict, name string) (predefine map[string]int, err error) {
	st_value, ok := globals[name]
	if !ok {
		return
	}

	st_dict, ok := st_value.(*starlark.Dict)
	if !ok {
		err = &ErrConfig{Name: name, Err: ErrConfigType}
		return
	}

	predefine = make(map[string]int, st_dict.Len())
	for _, item := range st_dict.Items() {
		key, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrConfig{Name: name, Err: ErrConfigType}
			return
		}

		var value int
		value, err = starlark.AsInt32(item[1])
		if err != nil {
			err = &ErrConfig{Name: name + "." + key, Err: ErrConfigType}
			return
		}
		if value < 0 || value >= ARENA_WORDS {
			err = &ErrConfig{Name: name + "." + key, Err: ErrConfigRange}
			return
		}

		predefine[key] = value
	}

	return
}
