// Package score holds double-dummy trick tables, contract scoring and
// par computation for analyzed boards.
package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// Denomination indexes into a trick table row: notrump first, then the
// suits in rank order.
const (
	DenomNT = iota
	DenomSpades
	DenomHearts
	DenomDiamonds
	DenomClubs
)

var denomNames = [5]string{"NT", "S", "H", "D", "C"}

// Trick-table rows run N, S, E, W, the order OptimumResultTable uses.
var tableSeats = [4]pbn.Seat{pbn.North, pbn.South, pbn.East, pbn.West}

// TrickTable is a full double-dummy result: tricks taken by each
// declarer in each denomination.
type TrickTable struct {
	Tricks [4][5]uint8
}

func seatRow(s pbn.Seat) int {
	for i, seat := range tableSeats {
		if seat == s {
			return i
		}
	}
	return 0
}

// For returns the declarer's tricks in the given denomination.
func (t TrickTable) For(declarer pbn.Seat, denom int) uint8 {
	return t.Tricks[seatRow(declarer)][denom]
}

// OptimumResultTable renders the table as the PBN tag value, rows
// separated by a literal backslash-n sequence.
func (t TrickTable) OptimumResultTable() string {
	lines := []string{"NT\tS\tH\tD\tC"}
	for i, seat := range tableSeats {
		row := make([]string, 0, 6)
		row = append(row, string(seat.Char()))
		for _, tricks := range t.Tricks[i] {
			row = append(row, strconv.Itoa(int(tricks)))
		}
		lines = append(lines, strings.Join(row, "\t"))
	}
	return strings.Join(lines, `\n`)
}

// ParseOptimumResultTable reads a tag value produced by
// OptimumResultTable back into a table.
func ParseOptimumResultTable(v string) (TrickTable, error) {
	var t TrickTable
	lines := strings.Split(v, `\n`)
	if len(lines) != 5 {
		return t, fmt.Errorf("optimum result table: want 5 rows, got %d", len(lines))
	}
	for _, line := range lines[1:] {
		fields := strings.Split(line, "\t")
		if len(fields) != 6 {
			return t, fmt.Errorf("optimum result table row %q: want seat and 5 counts", line)
		}
		seat, ok := pbn.SeatFromString(fields[0])
		if !ok {
			return t, fmt.Errorf("optimum result table row %q: bad seat", line)
		}
		for i, field := range fields[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || n < 0 || n > 13 {
				return t, fmt.Errorf("optimum result table row %q: bad trick count %q", line, field)
			}
			t.Tricks[seatRow(seat)][i] = uint8(n)
		}
	}
	return t, nil
}

// DisplayTable renders the table for terminal output.
func (t TrickTable) DisplayTable() string {
	var sb strings.Builder
	sb.WriteString("       NT   S   H   D   C\n")
	for i, seat := range tableSeats {
		fmt.Fprintf(&sb, "  %c    %2d  %2d  %2d  %2d  %2d\n",
			seat.Char(),
			t.Tricks[i][0], t.Tricks[i][1], t.Tricks[i][2], t.Tricks[i][3], t.Tricks[i][4])
	}
	return sb.String()
}

// ContractScore computes the duplicate score for a made contract:
// trick score, part-score or game bonus, slam bonuses and overtricks.
// The caller guarantees tricks >= level+6.
func ContractScore(level, denom, tricks int, vul, doubled bool) int {
	overtricks := tricks - (level + 6)

	trickValue := 30
	if denom == DenomDiamonds || denom == DenomClubs {
		trickValue = 20
	}

	var score int
	if denom == DenomNT {
		score = 40 + (level-1)*30
	} else {
		score = level * trickValue
	}
	if doubled {
		score *= 2
	}

	gameLevel := 3
	switch denom {
	case DenomSpades, DenomHearts:
		gameLevel = 4
	case DenomDiamonds, DenomClubs:
		gameLevel = 5
	}
	if level >= gameLevel {
		if vul {
			score += 500
		} else {
			score += 300
		}
	} else {
		score += 50
	}

	switch level {
	case 6:
		if vul {
			score += 750
		} else {
			score += 500
		}
	case 7:
		if vul {
			score += 1500
		} else {
			score += 1000
		}
	}

	overValue := trickValue
	if doubled {
		overValue = 100
		if vul {
			overValue = 200
		}
	}
	return score + overtricks*overValue
}

// Par picks the better of each side's best makeable contract. The
// score is from North-South's point of view.
func (t TrickTable) Par(vulNS, vulEW bool) (string, int) {
	nsContract, nsScore := t.bestForSide(true, vulNS)
	ewContract, ewScore := t.bestForSide(false, vulEW)
	if nsScore >= -ewScore {
		return nsContract, nsScore
	}
	return ewContract, -ewScore
}

func (t TrickTable) bestForSide(ns bool, vul bool) (string, int) {
	rows := []int{0, 1}
	if !ns {
		rows = []int{2, 3}
	}

	best := ""
	bestScore := 0
	for _, row := range rows {
		for denom := 0; denom < 5; denom++ {
			tricks := int(t.Tricks[row][denom])
			for level := 1; level <= 7; level++ {
				if tricks < level+6 {
					break
				}
				s := ContractScore(level, denom, tricks, vul, false)
				if best == "" || s > bestScore {
					bestScore = s
					best = fmt.Sprintf("%d%s by %c", level, denomNames[denom], tableSeats[row].Char())
				}
			}
		}
	}
	if best == "" {
		return "Pass", 0
	}
	return best, bestScore
}
