package rotate

import (
	"fmt"
	"strings"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// Basis selects how the current orientation of a board is determined
// before rotation.
type Basis int

const (
	// BasisStandard tries RotationBasis, Student, Declarer and Dealer
	// in priority order; the first present and valid wins.
	BasisStandard Basis = iota
	// BasisTag reads the RotationBasis tag.
	BasisTag
	// BasisStudent reads the Student tag.
	BasisStudent
	// BasisDeclarer reads the Declarer tag.
	BasisDeclarer
	// BasisDealer reads the Dealer tag.
	BasisDealer
	// BasisDeal reads the seat the Deal tag's holdings are listed from.
	BasisDeal
	// BasisNorth through BasisWest assume a fixed orientation and
	// ignore board content.
	BasisNorth
	BasisSouth
	BasisEast
	BasisWest
)

var basisNames = map[Basis]string{
	BasisStandard: "standard",
	BasisTag:      "basis-tag",
	BasisStudent:  "student",
	BasisDeclarer: "declarer",
	BasisDealer:   "dealer",
	BasisDeal:     "deal",
	BasisNorth:    "north",
	BasisSouth:    "south",
	BasisEast:     "east",
	BasisWest:     "west",
}

func (b Basis) String() string {
	if s, ok := basisNames[b]; ok {
		return s
	}
	return "standard"
}

// ParseBasis parses a basis mode name as used on the command line.
func ParseBasis(s string) (Basis, error) {
	for b, name := range basisNames {
		if strings.EqualFold(s, name) {
			return b, nil
		}
	}
	return BasisStandard, fmt.Errorf("unknown basis %q", s)
}

// tagSeat reads a tag and parses its value as a seat. The bool reports
// presence; err is ErrUnrecognizedSeat when present but unparsable.
func tagSeat(b *pbn.Board, name string) (pbn.Seat, bool, error) {
	v, ok := b.TagValue(name)
	if !ok || strings.TrimSpace(v) == "" {
		return pbn.North, false, nil
	}
	seat, ok := pbn.SeatFromString(v)
	if !ok {
		return pbn.North, true, fmt.Errorf("%s tag %q: %w", name, v, ErrUnrecognizedSeat)
	}
	return seat, true, nil
}

// standardChain is the priority order tried under BasisStandard.
var standardChain = []string{"RotationBasis", "Student", "Declarer", "Dealer"}

// ResolveBasis determines which seat the board currently treats as its
// reference orientation. The returned kind names the attribute that
// decided it, for the rotation note.
func ResolveBasis(b *pbn.Board, basis Basis) (pbn.Seat, string, error) {
	switch basis {
	case BasisStandard:
		// Ordered fallible lookups; first present-and-valid wins.
		for _, name := range standardChain {
			if seat, present, err := tagSeat(b, name); present && err == nil {
				return seat, name, nil
			}
		}
		return pbn.North, "", fmt.Errorf("board %d: no basis attribute present: %w", b.Number, ErrMissingBasisData)
	case BasisTag:
		return requireTagSeat(b, "RotationBasis")
	case BasisStudent:
		return requireTagSeat(b, "Student")
	case BasisDeclarer:
		return requireTagSeat(b, "Declarer")
	case BasisDealer:
		return requireTagSeat(b, "Dealer")
	case BasisDeal:
		return dealSeat(b)
	case BasisNorth:
		return pbn.North, "North", nil
	case BasisSouth:
		return pbn.South, "South", nil
	case BasisEast:
		return pbn.East, "East", nil
	case BasisWest:
		return pbn.West, "West", nil
	}
	return pbn.North, "", fmt.Errorf("unknown basis %d", basis)
}

func requireTagSeat(b *pbn.Board, name string) (pbn.Seat, string, error) {
	seat, present, err := tagSeat(b, name)
	if err != nil {
		return pbn.North, name, fmt.Errorf("board %d: %w", b.Number, err)
	}
	if !present {
		return pbn.North, name, fmt.Errorf("board %d: no %s tag: %w", b.Number, name, ErrMissingBasisData)
	}
	return seat, name, nil
}

// dealSeat reads the seat the card holdings are listed starting from.
func dealSeat(b *pbn.Board) (pbn.Seat, string, error) {
	v, ok := b.TagValue("Deal")
	if !ok || strings.TrimSpace(v) == "" {
		return pbn.North, "Deal", fmt.Errorf("board %d: no Deal tag: %w", b.Number, ErrMissingBasisData)
	}
	d, err := pbn.ParseDeal(v)
	if err != nil {
		return pbn.North, "Deal", fmt.Errorf("board %d: %v: %w", b.Number, err, ErrUnrecognizedSeat)
	}
	return d.First, "Deal", nil
}
