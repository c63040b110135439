// Package cli handles command line interface logic
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/cli"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	var opts options.Program
	flags := newFlagSet(&opts)

	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		// the flag set prints the parse error and usage itself
		return opts, options.Disassembler{}, &UsageError{flags: flags, shown: true, msg: err.Error()}
	}
	if opts.Input == "" && opts.Batch == "" {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Disassembler{}, err
	}

	disasmOptions := createDisasmOptions(opts)
	if err := validateOptionCombinations(opts); err != nil {
		return opts, disasmOptions, err
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *cli.FlagSet
	msg   string
	shown bool
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the message of the error followed by the flag defaults,
// unless the flag parser already printed them.
func (e *UsageError) ShowUsage() {
	if e.shown {
		return
	}
	if e.msg != "" {
		fmt.Printf("%s\n\n", e.msg)
	}
	e.flags.ShowUsage()
}

func newFlagSet(opts *options.Program) *cli.FlagSet {
	flags := cli.NewFlagSet("chip8vm")
	flags.AddSection("Files", &opts.Parameters)
	flags.AddSection("Options", &opts.Flags)
	flags.AddSection("Output", &opts.OutputFlags)
	flags.AddPositional(&opts.Parameters)
	return flags
}

// validateArgs checks that no flags follow the file to disassemble.
func validateArgs(flags *cli.FlagSet, args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptionCombinations checks for option combinations that can not be used together.
func validateOptionCombinations(opts options.Program) error {
	if opts.Batch != "" && opts.Output != "" {
		return errors.New("output file name can not be combined with batch mode, output names are derived from the input files")
	}
	return nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) options.Disassembler {
	disasmOptions := options.NewDisassembler()
	disasmOptions.Linear = opts.Linear
	disasmOptions.ZeroBytes = opts.ZeroBytes

	// Apply inverse logic for hex comments and offsets
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets
	return disasmOptions
}
