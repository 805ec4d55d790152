package main

import (
	"errors"
	"fmt"
	stdio "io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/iridium/asm"
	"github.com/ezrec/iridium/config"
	"github.com/ezrec/iridium/io"
	"github.com/ezrec/iridium/isa"
	"github.com/ezrec/iridium/translate"
)

var f = translate.From

var ErrDefineSyntax = errors.New(f("define must be NAME=VALUE"))

// options are the command line settings.
type options struct {
	config  string
	verbose bool
	listing bool
	defines []string
	filesys io.CreateFS
}

// newCommand creates the assembler command.
func newCommand() *cobra.Command {
	opts := &options{filesys: io.OsFS{}}

	cmd := &cobra.Command{
		Use:   "iridium [flags] source.asm image.bin",
		Short: "Assembler for the Iridium 16-bit instruction set",
		Long: `Iridium assembles a source file into a binary image of 16-bit words,
each written high byte first.

Settings may be read from a Starlark configuration file (see -c), and
overridden by the command line flags.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "Starlark configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVarP(&opts.listing, "listing", "l", false, "Print an address listing")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "Predefine a symbol, NAME=VALUE")

	return cmd
}

// parseDefine parses a NAME=VALUE symbol definition.
func parseDefine(define string) (name string, value int, err error) {
	name, text, ok := strings.Cut(define, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%w: %v", ErrDefineSyntax, define)
		return
	}

	imm, err := asm.ParseImmediate(text, asm.ImmSpec{Field: isa.FIELD_WORD, Char: true})
	if err != nil {
		return
	}

	value = imm.Value
	return
}

// run assembles input into output.
func run(out stdio.Writer, opts *options, input, output string) (err error) {
	cfg := &config.Config{}
	if len(opts.config) != 0 {
		cfg, err = config.Load(opts.config)
		if err != nil {
			return
		}
	}

	assembler := &asm.Assembler{Verbose: cfg.Verbose || opts.verbose}
	for name, value := range cfg.Predefine {
		assembler.Predefine(name, value)
	}
	for _, define := range opts.defines {
		var name string
		var value int
		name, value, err = parseDefine(define)
		if err != nil {
			return
		}
		assembler.Predefine(name, value)
	}

	translate.Fprintf(out, "Assembling %v --> %v\n", input, output)

	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	lines, err := io.ReadLines(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", input, err)
	}

	prog, err := assembler.Assemble(lines)
	if err != nil {
		return fmt.Errorf("%v: %w", input, err)
	}

	if cfg.Listing || opts.listing {
		err = prog.Listing(out)
		if err != nil {
			return
		}
	}

	n, err := io.WriteFile(opts.filesys, output, prog.Binary())
	if err != nil {
		return
	}

	translate.Fprintf(out, "%d bytes written\n", n)

	return
}
