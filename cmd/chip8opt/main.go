// Package main implements a converter for CHIP-8 options metadata, the
// interpreter settings attached to CHIP-8 games. It translates between the
// structured JSON format used by Octo exports and the CHIP-8 Archive and the
// flat INI format used by cartridge metadata.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/chip8opt/internal/cli"
	"github.com/retroenv/chip8opt/internal/config"
	"github.com/retroenv/chip8opt/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	printBanner(logger, opts)

	if err := convertFile(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Conversion failed", log.Err(err))
	}
}

// printBanner prints application version information
func printBanner(logger *log.Logger, opts cli.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("chip8opt", log.String("version", buildinfo.Version(version, commit, date)))
}

// convertFile reads the input document, decodes it in the source format and
// writes it re-encoded in the target format.
func convertFile(ctx context.Context, logger *log.Logger, opts cli.Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	from := opts.From
	if from == "" {
		from = detectFormat(opts.Input, data)
		logger.Debug("Detected input format", log.String("format", from))
	}
	to := opts.To
	if to == "" {
		to = oppositeFormat(from)
	}

	decoded, err := decode(from, data)
	if err != nil {
		return fmt.Errorf("decoding %s document: %w", from, err)
	}

	output, err := encode(to, decoded)
	if err != nil {
		return fmt.Errorf("encoding %s document: %w", to, err)
	}

	if opts.Output == "" {
		fmt.Println(string(output))
		return nil
	}
	if err := os.WriteFile(opts.Output, output, 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", opts.Output, err)
	}
	logger.Info("Converted options", log.String("input", opts.Input),
		log.String("output", opts.Output), log.String("format", to))
	return nil
}

// detectFormat guesses the format of an input file from its extension,
// falling back to a content check: JSON documents start with an opening
// brace.
func detectFormat(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return cli.FormatJSON
	case ".ini":
		return cli.FormatINI
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("{")) {
		return cli.FormatJSON
	}
	return cli.FormatINI
}

func oppositeFormat(format string) string {
	if format == cli.FormatJSON {
		return cli.FormatINI
	}
	return cli.FormatJSON
}

func decode(format string, data []byte) (options.Options, error) {
	if format == cli.FormatJSON {
		return options.DecodeJSON(data)
	}
	return options.DecodeINI(data)
}

func encode(format string, opts options.Options) ([]byte, error) {
	if format == cli.FormatJSON {
		return opts.EncodeJSON()
	}
	return opts.EncodeINI(), nil
}
