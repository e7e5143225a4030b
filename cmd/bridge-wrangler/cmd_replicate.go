package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rick-Wilson/bridge-wrangler/internal/replicate"
)

var (
	replicateInput      string
	replicateOutput     string
	replicateBlockSize  int
	replicateBlockCount int
)

// replicateCmd replicates a file's boards into repeated blocks
var replicateCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Replicate boards into repeated blocks for a duplicate session",
	Long: `Repeats the input boards block by block, renumbering the copies and
giving each its standard dealer and vulnerability. The first block
keeps the input verbatim; replicas carry Virtual* tags naming the
board they copy. Defaults fill a 36-board session.`,
	RunE: runReplicate,
}

func init() {
	replicateCmd.Flags().StringVarP(&replicateInput, "input", "i", "", "Input PBN file (required)")
	replicateCmd.Flags().StringVarP(&replicateOutput, "output", "o", "", "Output file (default auto-named)")
	replicateCmd.Flags().IntVarP(&replicateBlockSize, "block-size", "s", 0, "Boards per block (default: input board count)")
	replicateCmd.Flags().IntVarP(&replicateBlockCount, "block-count", "c", 0, "Number of blocks (default: fill 36 boards)")
	replicateCmd.MarkFlagRequired("input")
}

func runReplicate(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(replicateInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", replicateInput, err)
	}

	out, plan, err := replicate.Expand(string(content), replicate.Options{
		BlockSize:  replicateBlockSize,
		BlockCount: replicateBlockCount,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Creating %d blocks of %d boards = %d total boards\n",
		plan.BlockCount, plan.BlockSize, plan.Total())

	outPath := replicateOutput
	if outPath == "" {
		outPath = suffixedOutputPath(replicateInput, fmt.Sprintf("%dx%d", plan.BlockSize, plan.BlockCount))
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	fmt.Printf("Wrote %d boards to %s\n", plan.Total(), outPath)
	return nil
}
