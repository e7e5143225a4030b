package rotate

import (
	"fmt"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// Info records how a board was reoriented, for the RotationNote tag.
type Info struct {
	Offset         int
	Target         pbn.Seat
	Basis          pbn.Seat
	BasisKind      string
	UseStandardVul bool
}

// Note formats the provenance tag value written alongside each rotated
// board, matching the note layout downstream tooling expects.
func (i Info) Note(boardNum int) string {
	return fmt.Sprintf(
		"Board %d, chOption: %c, chBasis: %c, basisKind:%s, nOption:%d, nBasis: %d, nRot: %d, useStandardVul: %v",
		boardNum, i.Target.Char(), i.Basis.Char(), i.BasisKind,
		int(i.Target), int(i.Basis), i.Offset, i.UseStandardVul,
	)
}

// Board produces a rotated copy of b, advancing every seat-dependent
// field by k. The input board is never mutated; the batch driver reuses
// it across patterns. Assumes a structurally valid board and a valid
// offset, so it has no failure path of its own.
func Board(b *pbn.Board, k int, useStandardVul bool) *pbn.Board {
	out := b.Clone()
	if k%4 == 0 && !useStandardVul {
		return out
	}

	for i := range out.Items {
		switch out.Items[i].Kind {
		case pbn.ItemTag:
			rotateTag(out.Items[i].Tag, out.Number, k, useStandardVul)
		case pbn.ItemCommentary:
			out.Items[i].Commentary = RotateDirectionWords(out.Items[i].Commentary, k)
		}
	}
	return out
}

func rotateTag(t *pbn.Tag, boardNum, k int, useStandardVul bool) {
	switch t.Name {
	case "Dealer", "Declarer":
		t.Value = rotateSeatValue(t.Value, k)
	case "Vulnerable":
		if useStandardVul {
			t.Value = pbn.StandardVulnerability(boardNum).String()
		} else if pbn.OddOffset(k) {
			if vul, ok := pbn.ParseVulnerability(t.Value); ok {
				t.Value = vul.Swapped().String()
			}
		}
	case "Deal":
		// The listing seat rotates with the holdings, so rotating by k
		// and then by 4-k restores the original tag value exactly.
		if d, err := pbn.ParseDeal(t.Value); err == nil {
			t.Value = d.Rotated(k, d.First.Rotate(k)).String()
		}
	case "Auction", "Play":
		// Calls and tricks keep their content; only the seat that
		// speaks or leads first moves with the rotation.
		t.Value = rotateSeatValue(t.Value, k)
	case "Score":
		t.Value = rotateScoreValue(t.Value, k)
	}
}
