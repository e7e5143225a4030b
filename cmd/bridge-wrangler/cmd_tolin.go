package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rick-Wilson/bridge-wrangler/internal/lin"
	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

var (
	toLinInput  string
	toLinOutput string
)

// toLinCmd converts PBN to LIN
var toLinCmd = &cobra.Command{
	Use:   "to-lin",
	Short: "Convert a PBN file to BBO LIN format",
	Long: `Writes one LIN line per board: player names, the deal, vulnerability,
the board header, and the auction and play where present. Defaults to
"<input>.lin".`,
	RunE: runToLin,
}

func init() {
	toLinCmd.Flags().StringVarP(&toLinInput, "input", "i", "", "Input PBN file (required)")
	toLinCmd.Flags().StringVarP(&toLinOutput, "output", "o", "", "Output LIN file (default: <input>.lin)")
	toLinCmd.MarkFlagRequired("input")
}

func runToLin(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(toLinInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", toLinInput, err)
	}
	f, err := pbn.Read(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", toLinInput, err)
	}

	out := lin.EncodeFile(f)

	outPath := toLinOutput
	if outPath == "" {
		stem, _ := stemAndExt(toLinInput)
		outPath = filepath.Join(filepath.Dir(toLinInput), stem+".lin")
	}
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}

	boards := 0
	if out != "" {
		boards = strings.Count(out, "\n") + 1
	}
	fmt.Printf("Converted %d boards to LIN format\n", boards)
	fmt.Printf("Wrote to %s\n", outPath)
	return nil
}
