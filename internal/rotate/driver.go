package rotate

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// Options configures a batch rotation run.
type Options struct {
	Basis          Basis
	UseStandardVul bool
}

// BoardFailure records a board that could not be rotated for one
// pattern: its basis could not be resolved. The board is skipped, the
// run continues.
type BoardFailure struct {
	Number int
	Err    error
}

// PatternResult is one pattern's independent output set.
type PatternResult struct {
	Pattern  string
	Err      error          // pattern-fatal: ErrInvalidPattern
	Boards   []*pbn.Board   // rotated copies, input order preserved
	Failures []BoardFailure // boards skipped, with why
	Infos    map[int]Info   // per board number, for reporting
}

// Run applies the input boards against each requested pattern,
// producing one independent output set per pattern. Input boards are
// never mutated. Each (board, pattern) rotation is a pure function of
// its inputs, so patterns run concurrently.
func Run(boards []*pbn.Board, patterns []string, opts Options, logger *zap.Logger) ([]PatternResult, error) {
	if len(patterns) == 0 {
		return nil, fmt.Errorf("no rotation patterns given")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]PatternResult, len(patterns))
	var g errgroup.Group
	for i, patternStr := range patterns {
		i, patternStr := i, patternStr
		g.Go(func() error {
			results[i] = runPattern(boards, patternStr, opts, logger)
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

func runPattern(boards []*pbn.Board, patternStr string, opts Options, logger *zap.Logger) PatternResult {
	res := PatternResult{Pattern: patternStr, Infos: make(map[int]Info)}

	// A malformed pattern cannot possibly succeed; fail the whole
	// pattern before touching any board.
	pattern, err := ParsePattern(patternStr)
	if err != nil {
		res.Err = err
		return res
	}

	for i, b := range boards {
		target := pattern.Target(i)
		basisSeat, basisKind, err := ResolveBasis(b, opts.Basis)
		if err != nil {
			logger.Warn("skipping board",
				zap.Int("board", b.Number),
				zap.String("pattern", patternStr),
				zap.Error(err))
			res.Failures = append(res.Failures, BoardFailure{Number: b.Number, Err: err})
			continue
		}

		k := pbn.Offset(basisSeat, target)
		info := Info{
			Offset:         k,
			Target:         target,
			Basis:          basisSeat,
			BasisKind:      basisKind,
			UseStandardVul: opts.UseStandardVul,
		}

		rotated := Board(b, k, opts.UseStandardVul)
		rotated.AppendTag("RotationNote", info.Note(b.Number))
		res.Infos[b.Number] = info
		res.Boards = append(res.Boards, rotated)

		logger.Debug("rotated board",
			zap.Int("board", b.Number),
			zap.String("pattern", patternStr),
			zap.String("basis", basisKind),
			zap.Int("offset", k))
	}
	return res
}
