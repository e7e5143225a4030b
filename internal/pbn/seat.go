// Package pbn holds the in-memory model for PBN deal files: seats,
// vulnerability, boards with their ordered tag sets, and the reader and
// writer that round-trip the on-disk representation.
package pbn

import (
	"fmt"
	"strconv"
	"strings"
)

// Seat is one of the four table positions in compass order.
// The zero value is North; East, South, West follow clockwise, so
// rotation is plain modular arithmetic on the underlying int.
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

var seatNames = [4]string{"North", "East", "South", "West"}
var seatChars = [4]byte{'N', 'E', 'S', 'W'}

// String returns the full direction word, e.g. "North".
func (s Seat) String() string {
	return seatNames[s&3]
}

// Char returns the single-letter PBN form, e.g. 'N'.
func (s Seat) Char() byte {
	return seatChars[s&3]
}

// Rotate advances the seat k positions clockwise.
func (s Seat) Rotate(k int) Seat {
	return Seat((int(s) + k%4 + 4) % 4)
}

// Offset returns the unique k in 0..3 with from.Rotate(k) == to.
func Offset(from, to Seat) int {
	return (int(to) - int(from) + 4) % 4
}

// OddOffset reports whether k swaps the two partnerships (N/S and E/W).
func OddOffset(k int) bool {
	return k%2 != 0
}

// SeatFromChar parses a single seat letter, either case.
func SeatFromChar(c byte) (Seat, bool) {
	switch c {
	case 'N', 'n':
		return North, true
	case 'E', 'e':
		return East, true
	case 'S', 's':
		return South, true
	case 'W', 'w':
		return West, true
	}
	return North, false
}

// SeatFromString parses a seat letter or full direction word in either case.
func SeatFromString(v string) (Seat, bool) {
	v = strings.TrimSpace(v)
	if len(v) == 1 {
		return SeatFromChar(v[0])
	}
	for _, s := range Seats() {
		if strings.EqualFold(v, s.String()) {
			return s, true
		}
	}
	return North, false
}

// Seats lists the four seats in compass order.
func Seats() [4]Seat {
	return [4]Seat{North, East, South, West}
}

// StandardDealer returns the dealer for a 1-based board number under the
// standard NESW 4-board cycle.
func StandardDealer(boardNum int) Seat {
	return Seat(((boardNum-1)%4 + 4) % 4)
}

// Vulnerability is the board-level scoring state.
type Vulnerability int

const (
	VulNone Vulnerability = iota
	VulNS
	VulEW
	VulBoth
)

// String returns the PBN tag form: None, NS, EW or All.
func (v Vulnerability) String() string {
	switch v {
	case VulNS:
		return "NS"
	case VulEW:
		return "EW"
	case VulBoth:
		return "All"
	default:
		return "None"
	}
}

// Swapped exchanges the two partnerships; None and Both are fixed points.
func (v Vulnerability) Swapped() Vulnerability {
	switch v {
	case VulNS:
		return VulEW
	case VulEW:
		return VulNS
	default:
		return v
	}
}

// ParseVulnerability parses the PBN tag forms, including the legacy
// aliases "Love" (none) and "Both".
func ParseVulnerability(s string) (Vulnerability, bool) {
	switch s {
	case "None", "none", "Love", "-":
		return VulNone, true
	case "NS", "N-S":
		return VulNS, true
	case "EW", "E-W":
		return VulEW, true
	case "All", "all", "Both":
		return VulBoth, true
	}
	return VulNone, false
}

// standardVul is the 16-board vulnerability cycle used by every
// tournament movement (board 1 = None, 2 = NS, ...).
var standardVul = [16]Vulnerability{
	VulNone, VulNS, VulEW, VulBoth,
	VulNS, VulEW, VulBoth, VulNone,
	VulEW, VulBoth, VulNone, VulNS,
	VulBoth, VulNone, VulNS, VulEW,
}

// StandardVulnerability returns the vulnerability for a 1-based board
// number under the standard 16-board cycle.
func StandardVulnerability(boardNum int) Vulnerability {
	return standardVul[((boardNum-1)%16+16)%16]
}

// ParseBoardRange parses a board selection like "1-4", "1,3,5" or
// "1-4,7,9-12" into the list of board numbers it covers.
func ParseBoardRange(spec string) ([]int, error) {
	var boards []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		lo, hi, err := parseRangePart(part)
		if err != nil {
			return nil, err
		}
		for n := lo; n <= hi; n++ {
			boards = append(boards, n)
		}
	}
	return boards, nil
}

func parseRangePart(part string) (lo, hi int, err error) {
	if before, after, found := strings.Cut(part, "-"); found {
		lo, err = strconv.Atoi(strings.TrimSpace(before))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid number in range %q", part)
		}
		hi, err = strconv.Atoi(strings.TrimSpace(after))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid number in range %q", part)
		}
		return lo, hi, nil
	}
	lo, err = strconv.Atoi(part)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid board number %q", part)
	}
	return lo, lo, nil
}
