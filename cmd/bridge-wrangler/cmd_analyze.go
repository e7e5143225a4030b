package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
	"github.com/Rick-Wilson/bridge-wrangler/internal/score"
)

var (
	analyzeInput      string
	analyzeOutput     string
	analyzeBoardRange string
	analyzeVerbose    bool
)

// analyzeCmd reports double-dummy results and par scores
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report double-dummy trick tables and par scores",
	Long: `Collects each board's double-dummy results and, with --detail, prints
the trick table and par contract. With --output, rewrites the file
with OptimumResultTable tags placed ahead of each Deal tag.

Results come from the boards' own OptimumResultTable tags, as written
by dealing software or a previous analysis run.

Board ranges combine numbers and spans: -r "1-4,7,9-12".`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Input PBN file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Output PBN file with result tables")
	analyzeCmd.Flags().StringVarP(&analyzeBoardRange, "board-range", "r", "", `Boards to analyze, e.g. "1-4" or "1,3,5"`)
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "detail", "d", false, "Print each board's trick table and par")
	analyzeCmd.MarkFlagRequired("input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(analyzeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", analyzeInput, err)
	}
	f, err := pbn.Read(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", analyzeInput, err)
	}
	fmt.Printf("Read %d boards from %s\n", len(f.Boards), analyzeInput)

	boards := f.Boards
	if analyzeBoardRange != "" {
		allowed, err := pbn.ParseBoardRange(analyzeBoardRange)
		if err != nil {
			return err
		}
		wanted := make(map[int]bool, len(allowed))
		for _, n := range allowed {
			wanted[n] = true
		}
		boards = nil
		for _, b := range f.Boards {
			if wanted[b.Number] {
				boards = append(boards, b)
			}
		}
	}
	if len(boards) == 0 {
		return fmt.Errorf("no boards to analyze after filtering")
	}

	detail := analyzeVerbose || cfg.Analyze.Verbose

	var solver score.TrickSolver = score.TagSolver{}
	results := make(map[int]score.TrickTable)
	for _, b := range boards {
		table, err := solver.Solve(b)
		if err != nil {
			logger.Warn("skipping board", zap.Int("board", b.Number), zap.Error(err))
			fmt.Printf("Board %d: no results, skipping\n", b.Number)
			continue
		}
		results[b.Number] = table

		if detail {
			fmt.Printf("Board %d:\n%s", b.Number, table.DisplayTable())
			vul := b.Vulnerable()
			contract, par := table.Par(vul == pbn.VulNS || vul == pbn.VulBoth,
				vul == pbn.VulEW || vul == pbn.VulBoth)
			fmt.Printf("  Par: %s (%d)\n\n", contract, par)
		}
	}
	fmt.Printf("Analyzed %d boards\n", len(results))

	if analyzeOutput != "" {
		score.Annotate(f, results)
		if err := os.WriteFile(analyzeOutput, []byte(f.Write()), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", analyzeOutput, err)
		}
		fmt.Printf("\nWrote PBN with double-dummy results to %s\n", analyzeOutput)
	}
	return nil
}
