package score

import (
	"errors"
	"fmt"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// ErrNoResults reports a board the solver has no trick data for.
var ErrNoResults = errors.New("no double-dummy results for board")

// TrickSolver produces a double-dummy trick table for a board.
// Implementations may compute the table or look it up.
type TrickSolver interface {
	Solve(b *pbn.Board) (TrickTable, error)
}

// TagSolver reads precomputed results from the board's own
// OptimumResultTable tag, as written by dealing software or a previous
// analysis run.
type TagSolver struct{}

func (TagSolver) Solve(b *pbn.Board) (TrickTable, error) {
	v, ok := b.TagValue("OptimumResultTable")
	if !ok {
		return TrickTable{}, fmt.Errorf("board %d: %w", b.Number, ErrNoResults)
	}
	t, err := ParseOptimumResultTable(v)
	if err != nil {
		return TrickTable{}, fmt.Errorf("board %d: %w", b.Number, err)
	}
	return t, nil
}

// Annotate writes each result into its board's OptimumResultTable tag,
// replacing an existing one or inserting a new tag ahead of the Deal
// tag so the table reads before the hands.
func Annotate(f *pbn.File, results map[int]TrickTable) {
	for _, b := range f.Boards {
		t, ok := results[b.Number]
		if !ok {
			continue
		}
		value := t.OptimumResultTable()
		if b.SetTagValue("OptimumResultTable", value) {
			continue
		}

		item := pbn.Item{Kind: pbn.ItemTag, Tag: &pbn.Tag{Name: "OptimumResultTable", Value: value}}
		inserted := false
		for i := range b.Items {
			if b.Items[i].Kind == pbn.ItemTag && b.Items[i].Tag.Name == "Deal" {
				b.Items = append(b.Items[:i], append([]pbn.Item{item}, b.Items[i:]...)...)
				inserted = true
				break
			}
		}
		if !inserted {
			b.Items = append(b.Items, item)
		}
	}
}
