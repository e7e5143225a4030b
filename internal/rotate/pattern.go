package rotate

import (
	"fmt"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// Pattern is a repeating sequence of target seats assigned to boards in
// input order: board i (0-based) rotates to Pattern[i % len].
type Pattern []pbn.Seat

// ParsePattern parses a pattern string like "NESW" or "ns". Any length
// of one or more seat letters is valid; the pattern simply repeats at
// that period.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return nil, fmt.Errorf("pattern cannot be empty: %w", ErrInvalidPattern)
	}
	p := make(Pattern, 0, len(s))
	for i := 0; i < len(s); i++ {
		seat, ok := pbn.SeatFromChar(s[i])
		if !ok {
			return nil, fmt.Errorf("invalid direction %q in pattern %q: %w", s[i], s, ErrInvalidPattern)
		}
		p = append(p, seat)
	}
	return p, nil
}

// Target returns the target seat for the board at 0-based position i.
func (p Pattern) Target(i int) pbn.Seat {
	return p[i%len(p)]
}
