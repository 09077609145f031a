package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// defaultInput is where the calibration document is read from unless --input is given
const defaultInput = "src/day1.txt"

type options struct {
	input    string
	json     bool
	report   bool
	style    string
	quiet    bool
	logLevel string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "calibrate",
		Short:         "Sum the first/last digit pairs of every line in a calibration document",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, stdout, stderr)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.input, "input", "i", defaultInput, "calibration document to read")
	flags.BoolVar(&opts.json, "json", false, "print results as JSON")
	flags.BoolVar(&opts.report, "report", false, "render a markdown report")
	flags.StringVar(&opts.style, "style", "", "glamour style for --report (dark, light, notty; default auto)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only print the answer")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default $LOG_LEVEL or info)")
	root.MarkFlagsMutuallyExclusive("json", "report")

	return root
}

func run(opts *options, stdout, stderr io.Writer) error {
	log := newLogger(stderr, opts.logLevel)

	data, size, chunks, err := LoadInput(opts.input)
	if err != nil {
		log.Error().Err(err).Str("path", opts.input).Msg("cannot load input")
		return err
	}
	log.Debug().Str("path", opts.input).Int("bytes", size).Int("chunks", chunks).Msg("input loaded")

	result := SumDigitPairs(data)

	for _, v := range result.Missing() {
		log.Warn().Int("line", v.Line).Msg("line has no digits, counted as 0")
	}
	if result.TrailingDropped {
		log.Warn().Str("text", result.Trailing).Msg("unterminated last line not counted")
	}

	theme := PlainTheme
	if isTerminal(stdout) {
		theme = DefaultTheme
	}
	printer := NewPrinter(stdout, theme)

	switch {
	case opts.json:
		if err := printer.WriteJSON(result); err != nil {
			return err
		}
	case opts.report:
		if err := printer.RenderReport(BuildReport(opts.input, result), opts.style); err != nil {
			return err
		}
	default:
		if !opts.quiet {
			printer.PrintLineValues(result.Values)
		}
		printer.PrintAnswer(result.Sum)
	}

	log.Info().Int("lines", len(result.Values)).Int("answer", result.Sum).Msg("calibration complete")
	return nil
}
