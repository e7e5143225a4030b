package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rick-Wilson/bridge-wrangler/internal/filter"
)

var (
	filterInput         string
	filterPattern       string
	filterMatched       string
	filterNotMatched    string
	filterCaseSensitive bool
	filterRenumber      bool
)

// filterCmd splits a file by regex match
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Split boards into matched and unmatched files by regex",
	Long: `Matches a regular expression against each board's full text and
writes the matching boards, the non-matching boards, or both.

With neither --matched nor --not-matched, matched boards go to
"<input>-Matched.pbn". Matching is case-insensitive unless
--case-sensitive is given.

Example:
  bridge-wrangler filter -i deals.pbn -p '\[Contract "3NT"\]'`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterInput, "input", "i", "", "Input PBN file (required)")
	filterCmd.Flags().StringVarP(&filterPattern, "pattern", "p", "", "Regex to match against each board (required)")
	filterCmd.Flags().StringVarP(&filterMatched, "matched", "m", "", "Output file for matched boards")
	filterCmd.Flags().StringVarP(&filterNotMatched, "not-matched", "n", "", "Output file for non-matched boards")
	filterCmd.Flags().BoolVar(&filterCaseSensitive, "case-sensitive", false, "Match case-sensitively")
	filterCmd.Flags().BoolVar(&filterRenumber, "renumber", true, "Renumber output boards sequentially")
	filterCmd.MarkFlagRequired("input")
	filterCmd.MarkFlagRequired("pattern")
}

func runFilter(cmd *cobra.Command, args []string) error {
	re, err := filter.Compile(filterPattern, filterCaseSensitive)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(filterInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", filterInput, err)
	}

	res := filter.Split(string(content), re)
	if res.Total() == 0 {
		fmt.Println("No boards found in input file")
		return nil
	}
	logger.Debug("filtered boards",
		zap.Int("total", res.Total()),
		zap.Int("matched", len(res.Matched)))

	writeMatched := filterMatched != "" || filterNotMatched == ""
	if writeMatched {
		path := filterMatched
		if path == "" {
			path = suffixedOutputPath(filterInput, "Matched")
		}
		out := filter.Output(res.Header, res.Matched, filterRenumber)
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write matched file %s: %w", path, err)
		}
		fmt.Printf("Wrote %d matched boards to %s\n", len(res.Matched), path)
	}
	if filterNotMatched != "" {
		out := filter.Output(res.Header, res.Unmatched, filterRenumber)
		if err := os.WriteFile(filterNotMatched, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write not-matched file %s: %w", filterNotMatched, err)
		}
		fmt.Printf("Wrote %d not-matched boards to %s\n", len(res.Unmatched), filterNotMatched)
	}

	fmt.Println()
	fmt.Printf("Filter results for pattern: %s\n", filterPattern)
	fmt.Printf("  Boards scanned:     %d\n", res.Total())
	fmt.Printf("  Boards matched:     %d\n", len(res.Matched))
	fmt.Printf("  Boards not matched: %d\n", len(res.Unmatched))
	fmt.Printf("  Match rate:         %.1f%%\n", res.MatchRate())
	return nil
}
