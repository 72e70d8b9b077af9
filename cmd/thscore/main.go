/*

thscore decodes a Touhou score file and prints it as JSON, the same
shape cmd/screp prints a replay in.

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	th07sf "github.com/hakurei-works/thstat/scorefile/th07"
	th08sf "github.com/hakurei-works/thstat/scorefile/th08"
)

const (
	exitCodeBadArguments = 1
	exitCodeParseFailed  = 2
	exitCodeWriteFailed  = 3
)

func main() {
	var (
		game    string
		outFile string
		indent  bool
		verbose bool
	)

	root := &cobra.Command{
		Use:   "thscore [flags] scorefile",
		Short: "Decode a Touhou score file and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], game, outFile, indent, verbose)
		},
	}

	root.Flags().StringVar(&game, "game", "", "score file's game: th07 or th08 (required)")
	root.Flags().StringVar(&outFile, "outfile", "", "optional output file name (default stdout)")
	root.Flags().BoolVar(&indent, "indent", true, "use indentation when formatting output")
	root.Flags().BoolVar(&verbose, "verbose", false, "log checksum and consistency warnings while parsing")
	root.MarkFlagRequired("game")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeBadArguments)
	}
}

func run(path, game, outFile string, indent, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open score file: %v\n", err)
		os.Exit(exitCodeParseFailed)
	}
	defer f.Close()

	var logger *zap.Logger
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("thscore: building logger: %w", err)
		}
		defer logger.Sync()
	}

	var value any
	switch game {
	case "th07":
		sf, err := th07sf.ParseWithLogger(f, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse score file: %v\n", err)
			os.Exit(exitCodeParseFailed)
		}
		value = sf
	case "th08":
		sf, err := th08sf.ParseWithLogger(f, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse score file: %v\n", err)
			os.Exit(exitCodeParseFailed)
		}
		value = sf
	default:
		fmt.Fprintf(os.Stderr, "unsupported --game %q; must be th07 or th08\n", game)
		os.Exit(exitCodeBadArguments)
	}

	destination := os.Stdout
	if outFile != "" {
		out, err := os.Create(outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output file: %v\n", err)
			os.Exit(exitCodeWriteFailed)
		}
		defer out.Close()
		destination = out
	}

	enc := json.NewEncoder(destination)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(value); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
		os.Exit(exitCodeWriteFailed)
	}
	return nil
}
