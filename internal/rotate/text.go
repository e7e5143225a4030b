package rotate

import (
	"regexp"
	"strings"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// Whole-word direction names, matched case-insensitively. Matching is a
// heuristic token rewrite: a direction word used non-positionally in
// prose (a surname, say) is rewritten too.
var directionWordRe = regexp.MustCompile(`(?i)\b(north|east|south|west)\b`)

// RotateDirectionWords rewrites every whole-word direction name in text
// under the rotation k, preserving the case shape of each occurrence
// (Title, UPPER or lower).
func RotateDirectionWords(text string, k int) string {
	if k%4 == 0 {
		return text
	}
	return directionWordRe.ReplaceAllStringFunc(text, func(word string) string {
		seat, ok := pbn.SeatFromString(word)
		if !ok {
			return word
		}
		rotated := seat.Rotate(k).String()
		switch {
		case word == strings.ToUpper(word):
			return strings.ToUpper(rotated)
		case word[0] >= 'A' && word[0] <= 'Z':
			return rotated
		default:
			return strings.ToLower(rotated)
		}
	})
}

// rotateSeatValue rotates a tag value that holds a single seat letter
// ("N", "e"); anything else passes through unchanged.
func rotateSeatValue(value string, k int) string {
	if len(value) != 1 {
		return value
	}
	seat, ok := pbn.SeatFromChar(value[0])
	if !ok {
		return value
	}
	c := seat.Rotate(k).Char()
	if value[0] >= 'a' && value[0] <= 'z' {
		c = c + ('a' - 'A')
	}
	return string(c)
}

// rotateScoreValue swaps the partnership prefix of a Score tag value
// ("NS 420" <-> "EW 420") for odd rotations.
func rotateScoreValue(value string, k int) string {
	if !pbn.OddOffset(k) {
		return value
	}
	switch {
	case strings.HasPrefix(value, "NS"):
		return "EW" + value[2:]
	case strings.HasPrefix(value, "EW"):
		return "NS" + value[2:]
	}
	return value
}
