// Package main provides the CLI entry point for wordgrid.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/ukaji3/wordgrid-go/pkg/wordgrid"
	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/models"
	"github.com/ukaji3/wordgrid-go/pkg/wordgrid/output"
)

var (
	gridFile       string
	minLength      int
	dictFile       string
	printGrid      bool
	allowRareWords bool
	puzzleFile     string
	sheetName      string
	rangeRef       string
	exclusiveMax   bool
	format         string
	pretty         bool
	xlsxOut        string
	logLevel       string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordgrid",
		Short: "Find dictionary words hidden in a letter grid",
		Long: `wordgrid searches a grid for all words of --min-length or longer, reading
across, down and along both diagonals, forwards and backwards.
Coordinates are row, column with 00, 00 at the top left.

The grid file holds one row per line:
  ABCDEFG
  HIGHEED
Non-alphanumeric characters are stripped, so "A B C" is fine. Grids may also
be read from an .xlsx worksheet.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&gridFile, "grid-file", "f", "", "The file containing the grid to search")
	flags.IntVarP(&minLength, "min-length", "l", 0, "The minimum length of word to find")
	flags.StringVarP(&dictFile, "dict-file", "d", wordgrid.DefaultDictFile, "Dictionary to use")
	flags.BoolVarP(&printGrid, "print-grid", "p", false, "Print the grid to be searched")
	flags.BoolVarP(&allowRareWords, "allow-rare-words", "r", false,
		"Allow rarer words in the solution (bigger dictionary). This overrides --dict-file")
	flags.StringVar(&puzzleFile, "puzzle", "", "HCL puzzle file supplying grid, length and dictionary")
	flags.StringVar(&sheetName, "sheet", "", "Worksheet holding the grid (xlsx grids, default: first sheet)")
	flags.StringVar(&rangeRef, "range", "", "Cell range holding the grid, e.g. B2:K11 (xlsx grids)")
	flags.BoolVar(&exclusiveMax, "exclusive-max", false, "Stop one short of the grid's larger dimension when choosing word lengths")
	flags.StringVar(&format, "format", "text", "Output format: text, json")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&xlsxOut, "xlsx-out", "", "Also write matches to this xlsx file")
	flags.StringVar(&logLevel, "log-level", "warn", "Logging level: debug, info, warn, error")

	return rootCmd
}

func setupLogging(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log-level: %s (must be debug, info, warn, or error)", logLevel)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// searchConfig is the resolved invocation after flags and puzzle file merge.
type searchConfig struct {
	gridFile string
	dictFile string
	sheet    wordgrid.SheetOptions
	opts     wordgrid.Options
}

// resolveConfig merges the puzzle file, if any, under explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*searchConfig, error) {
	flags := cmd.Flags()
	cfg := &searchConfig{
		gridFile: gridFile,
		dictFile: dictFile,
		sheet:    wordgrid.SheetOptions{Sheet: sheetName, Range: rangeRef},
		opts: wordgrid.Options{
			MinLength:    minLength,
			ExclusiveMax: exclusiveMax,
		},
	}
	haveMinLength := flags.Changed("min-length")

	if puzzleFile != "" {
		puzzle, err := wordgrid.LoadPuzzle(puzzleFile)
		if err != nil {
			return nil, err
		}
		if !flags.Changed("grid-file") {
			cfg.gridFile = puzzle.GridFile
		}
		if !haveMinLength && puzzle.MinLength != nil {
			cfg.opts.MinLength = *puzzle.MinLength
			haveMinLength = true
		}
		if !flags.Changed("dict-file") && puzzle.DictFile != "" {
			cfg.dictFile = puzzle.DictFile
		}
		if !flags.Changed("sheet") && puzzle.Sheet != "" {
			cfg.sheet.Sheet = puzzle.Sheet
		}
		if !flags.Changed("range") && puzzle.Range != "" {
			cfg.sheet.Range = puzzle.Range
		}
		if !flags.Changed("exclusive-max") && puzzle.ExclusiveMax != nil {
			cfg.opts.ExclusiveMax = *puzzle.ExclusiveMax
		}
	}

	if cfg.gridFile == "" {
		return nil, fmt.Errorf("required flag \"grid-file\" not set")
	}
	if !haveMinLength {
		return nil, fmt.Errorf("required flag \"min-length\" not set")
	}
	if allowRareWords {
		cfg.dictFile = wordgrid.RareDictFile
	}

	switch format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid format: %s (must be text or json)", format)
	}

	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	grid, err := wordgrid.LoadGrid(cfg.gridFile, cfg.sheet)
	if err != nil {
		return err
	}

	// Reject before printing anything.
	if err := wordgrid.Validate(grid, cfg.opts); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if printGrid {
		if err := output.WriteGrid(out, grid); err != nil {
			return fmt.Errorf("failed to print grid: %w", err)
		}
	}

	words, err := wordgrid.LoadWords(cfg.dictFile)
	if err != nil {
		return err
	}

	matches := wordgrid.Search(grid, words, cfg.opts)

	if format == "text" && xlsxOut == "" {
		n, err := output.WriteText(out, matches)
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("Search complete.", "matches", n)
		return nil
	}

	collected := slices.Collect(matches)
	slog.Info("Search complete.", "matches", len(collected))

	if err := writeMatches(out, collected); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if xlsxOut != "" {
		if err := output.WriteWorkbook(xlsxOut, collected); err != nil {
			return fmt.Errorf("failed to write xlsx report: %w", err)
		}
	}

	return nil
}

func writeMatches(w io.Writer, matches []models.Match) error {
	if format == "json" {
		jsonData, err := output.ToJSON(matches, pretty)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(jsonData))
		return err
	}

	_, err := output.WriteText(w, slices.Values(matches))
	return err
}
