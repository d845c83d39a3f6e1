package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"sconv/internal/atomicfile"
	"sconv/internal/recode"
	"sconv/pkg/widechar"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.0.1"

var (
	outputFile   string
	wideEncoding string
	writeBOM     bool
	force        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "sconv [input-file]",
	Short: "Convert a UTF-8 stream to a wide-character encoding",
	Long: `sconv converts an input file (or stdin when not specified) from UTF-8
to a wide-character encoding and writes the result to an output file
(or stdout when no output file is set).

When an output file is given, the conversion writes to a temp file in the
target's own directory and renames it over the target only on success, so
the target path is never visible in a partially written state.`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}

		form, err := widechar.ParseForm(wideEncoding)
		if err != nil {
			return err
		}
		opts := recode.Options{Form: form, WriteBOM: writeBOM}

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("can't open file '%s' as input: %w", args[0], err)
			}
			defer f.Close()
			in = f
		}

		if outputFile == "" {
			return convertToStdout(in, opts)
		}
		return convertToFile(in, outputFile, opts)
	},
}

func convertToStdout(in io.Reader, opts recode.Options) error {
	if !force && term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("refusing to write wide-character data to a terminal (use --force to override, or redirect stdout)")
	}
	written, err := recode.Run(in, os.Stdout, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Written: %d bytes\n", written)
	return nil
}

func convertToFile(in io.Reader, target string, opts recode.Options) error {
	tmp, err := atomicfile.Create(target)
	if err != nil {
		return err
	}
	defer tmp.Cleanup()
	slog.Debug("writing to temp file", "path", tmp.Name())

	written, err := recode.Run(in, tmp, opts)
	if err != nil {
		return err
	}
	if err := tmp.Commit(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Written: %d bytes\n", written)
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output-file", "o", "", "Output file to be written; when not set, stdout is used as output")
	rootCmd.Flags().StringVarP(&wideEncoding, "wide-encoding", "e", "native", "Target wide encoding: native, utf16le, utf16be, utf32le or utf32be")
	rootCmd.Flags().BoolVar(&writeBOM, "bom", false, "Prefix the output with a byte order mark")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "Write wide-character data even when stdout is a terminal")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// stdout carries the converted data; help and usage go to stderr
	rootCmd.SetOut(os.Stderr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
