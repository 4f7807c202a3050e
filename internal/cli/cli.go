// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Format names accepted by the -f and -t flags.
const (
	FormatJSON = "json"
	FormatINI  = "ini"
)

// Program contains the converter tool options.
type Program struct {
	Input  string // options file to read
	Output string // output file, stdout if empty
	From   string // source format, auto-detected if empty
	To     string // target format, the opposite of the source if empty

	Debug bool
	Quiet bool
}

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8opt [options] <options file to convert>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the file to convert, please pass the file to convert as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *Program) error {
	opts.From = strings.ToLower(opts.From)
	opts.To = strings.ToLower(opts.To)

	for _, format := range []string{opts.From, opts.To} {
		switch format {
		case "", FormatJSON, FormatINI:
		default:
			return fmt.Errorf("unsupported format: %s. Valid options: %s, %s",
				format, FormatJSON, FormatINI)
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.From, "f", "", "format of the input file (json/ini) - if not auto-detected from file extension and content")
	flags.StringVar(&opts.To, "t", "", "format of the output (json/ini) - defaults to the opposite of the input format")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
