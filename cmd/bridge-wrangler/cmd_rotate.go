package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
	"github.com/Rick-Wilson/bridge-wrangler/internal/rotate"
	"github.com/Rick-Wilson/bridge-wrangler/internal/watch"
)

var (
	rotateInput       string
	rotateOutput      string
	rotatePattern     string
	rotateBasis       string
	rotateStandardVul bool
	rotateWatch       bool
)

// rotateCmd rotates deals so chosen seats hold the teaching hands
var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate deals so target seats hold the key hands",
	Long: `Rotates every board so the seat the pattern names for it holds the
hand the basis seat held. The basis is resolved per board: standard
mode checks RotationBasis, Student, Declarer then Dealer tags; explicit
modes pin it to one tag, the deal's first seat, or a fixed seat.

A pattern is a sequence of seat letters cycled across the boards:
  S     every board's key hand goes to South
  NESW  boards take turns around the table

Multiple comma-separated patterns produce one output file each:
  bridge-wrangler rotate -i deals.pbn -p S,NESW`,
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().StringVarP(&rotateInput, "input", "i", "", "Input PBN file (required)")
	rotateCmd.Flags().StringVarP(&rotateOutput, "output", "o", "", "Output file (single pattern only; default auto-named)")
	rotateCmd.Flags().StringVarP(&rotatePattern, "pattern", "p", "", "Comma-separated rotation patterns (default from config)")
	rotateCmd.Flags().StringVarP(&rotateBasis, "basis", "b", "", "Basis: standard, student, declarer, dealer, deal, or a seat")
	rotateCmd.Flags().BoolVar(&rotateStandardVul, "standard-vul", false, "Rewrite vulnerability from the standard 16-board cycle")
	rotateCmd.Flags().BoolVarP(&rotateWatch, "watch", "w", false, "Re-run whenever the input file changes")
	rotateCmd.MarkFlagRequired("input")
}

func runRotate(cmd *cobra.Command, args []string) error {
	patterns := cfg.Rotate.Patterns
	if rotatePattern != "" {
		patterns = strings.Split(rotatePattern, ",")
		for i := range patterns {
			patterns[i] = strings.TrimSpace(patterns[i])
		}
	}
	if len(patterns) > 1 && rotateOutput != "" {
		return fmt.Errorf("cannot use --output with multiple patterns; output files are auto-named")
	}

	basisStr := cfg.Rotate.Basis
	if rotateBasis != "" {
		basisStr = rotateBasis
	}
	basis, err := rotate.ParseBasis(basisStr)
	if err != nil {
		return err
	}

	useStandardVul := cfg.Rotate.StandardVul
	if cmd.Flags().Changed("standard-vul") {
		useStandardVul = rotateStandardVul
	}
	opts := rotate.Options{Basis: basis, UseStandardVul: useStandardVul}

	if err := rotateOnce(patterns, opts); err != nil {
		return err
	}
	if !rotateWatch {
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	w, err := watch.New(rotateInput, func(string) {
		if err := rotateOnce(patterns, opts); err != nil {
			logger.Error("rotation failed", zap.Error(err))
		}
	}, logger)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	<-ctx.Done()
	return nil
}

// rotateOnce runs the full read-rotate-write cycle for every pattern.
func rotateOnce(patterns []string, opts rotate.Options) error {
	content, err := os.ReadFile(rotateInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", rotateInput, err)
	}
	f, err := pbn.Read(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", rotateInput, err)
	}

	// Boards without cards have nothing worth rotating.
	var boards []*pbn.Board
	for _, b := range f.Boards {
		if b.HasCards() {
			boards = append(boards, b)
		}
	}
	if len(boards) == 0 {
		return fmt.Errorf("no boards with cards in %s", rotateInput)
	}
	fmt.Printf("Read %d boards from %s\n", len(boards), rotateInput)

	results, err := rotate.Run(boards, patterns, opts, logger)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("pattern %q: %w", res.Pattern, res.Err)
		}
		for _, failure := range res.Failures {
			fmt.Printf("Board %d skipped: %v\n", failure.Number, failure.Err)
		}

		outPath := rotateOutput
		if outPath == "" || len(results) > 1 {
			outPath = patternOutputPath(rotateInput, res.Pattern)
		}

		out := &pbn.File{Preamble: f.Preamble, Boards: res.Boards}
		if err := os.WriteFile(outPath, []byte(out.Write()), 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %d boards to %s\n", len(res.Boards), outPath)
	}
	return nil
}
