// Package lin encodes boards into BBO LIN lines, one board per line.
package lin

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

var noteRefRe = regexp.MustCompile(`^=(\d+)=$`)

// EncodeFile encodes every board that carries cards. Boards without a
// Deal tag have nothing a LIN consumer can use and are skipped.
func EncodeFile(f *pbn.File) string {
	var lines []string
	for _, b := range f.Boards {
		if _, ok := b.Deal(); !ok {
			continue
		}
		lines = append(lines, EncodeBoard(b))
	}
	return strings.Join(lines, "\n")
}

// EncodeBoard encodes one board as a single LIN line: player names,
// deal, vulnerability, board header, then the auction and play.
func EncodeBoard(b *pbn.Board) string {
	var parts []string

	players := [4]string{}
	for i, name := range []string{"South", "West", "North", "East"} {
		players[i], _ = b.TagValue(name)
	}
	parts = append(parts, fmt.Sprintf("pn|%s,%s,%s,%s|", players[0], players[1], players[2], players[3]))

	dealer, ok := b.Dealer()
	if !ok {
		dealer = pbn.North
	}
	var south, west, north string
	if d, ok := b.Deal(); ok {
		// East's hand is implied; LIN carries only three.
		south = encodeHand(d.Hand(pbn.South))
		west = encodeHand(d.Hand(pbn.West))
		north = encodeHand(d.Hand(pbn.North))
	}
	parts = append(parts, fmt.Sprintf("md|%c%s,%s,%s|", dealerDigit(dealer), south, west, north))

	parts = append(parts, fmt.Sprintf("sv|%s|", vulCode(b.Vulnerable())))

	if b.FindTag("Board") != nil {
		parts = append(parts, fmt.Sprintf("ah|Board %d|", b.Number))
	}

	if auction := b.FindTag("Auction"); auction != nil {
		parts = encodeAuction(parts, auction, boardNotes(b))
	}
	if play := b.FindTag("Play"); play != nil {
		parts = encodePlay(parts, play)
	}

	return strings.Join(parts, "")
}

// encodeHand turns a PBN hand ("AKQ.J54.632.T987", suits in SHDC
// order) into LIN form ("SAKQHJ54D632CT987"). Void suits are omitted
// along with their suit letter.
func encodeHand(hand string) string {
	suits := strings.Split(hand, ".")
	var sb strings.Builder
	for i, letter := range []byte{'S', 'H', 'D', 'C'} {
		if i >= len(suits) {
			break
		}
		holding := strings.TrimSpace(suits[i])
		if holding == "" || holding == "-" {
			continue
		}
		sb.WriteByte(letter)
		sb.WriteString(holding)
	}
	return sb.String()
}

func dealerDigit(s pbn.Seat) byte {
	switch s {
	case pbn.South:
		return '1'
	case pbn.West:
		return '2'
	case pbn.North:
		return '3'
	default:
		return '4'
	}
}

func vulCode(v pbn.Vulnerability) string {
	switch v {
	case pbn.VulNS:
		return "n"
	case pbn.VulEW:
		return "e"
	case pbn.VulBoth:
		return "b"
	default:
		return "o"
	}
}

// boardNotes collects the board's Note tags ("1:text") keyed by
// reference number, for auction alert annotations.
func boardNotes(b *pbn.Board) map[string]string {
	notes := make(map[string]string)
	for _, item := range b.Items {
		if item.Kind != pbn.ItemTag || item.Tag.Name != "Note" {
			continue
		}
		if num, text, ok := strings.Cut(item.Tag.Value, ":"); ok {
			notes[num] = text
		}
	}
	return notes
}

// encodeAuction emits mb| parts for each call in the auction section.
// A =n= note reference marks the preceding call as alerted and emits
// its note text, spaces encoded as +.
func encodeAuction(parts []string, auction *pbn.Tag, notes map[string]string) []string {
	for _, line := range auction.Data {
		for _, token := range strings.Fields(line) {
			if m := noteRefRe.FindStringSubmatch(token); m != nil {
				if len(parts) > 0 {
					last := parts[len(parts)-1]
					if strings.HasPrefix(last, "mb|") {
						parts[len(parts)-1] = strings.TrimSuffix(last, "|") + "!|"
					}
				}
				if text, ok := notes[m[1]]; ok {
					parts = append(parts, fmt.Sprintf("an|%s|", strings.ReplaceAll(text, " ", "+")))
				}
				continue
			}
			switch call := encodeCall(token); call {
			case "":
				// Not a call: NAGs, suffix markers, stray text.
			case "ppp":
				parts = append(parts, "mb|p|", "mb|p|", "mb|p|")
			default:
				parts = append(parts, fmt.Sprintf("mb|%s|", call))
			}
		}
	}
	return parts
}

func encodeCall(token string) string {
	switch strings.ToUpper(token) {
	case "PASS", "P":
		return "p"
	case "X", "DBL", "DOUBLE":
		return "d"
	case "XX", "RDBL", "REDOUBLE":
		return "r"
	case "AP":
		// All pass: the auction ends with three passes.
		return "ppp"
	}
	if len(token) >= 2 && token[0] >= '1' && token[0] <= '7' {
		strain := strings.ToUpper(token[1:])
		switch strain {
		case "C", "D", "H", "S":
			return string(token[0]) + strain
		case "N", "NT":
			return string(token[0]) + "N"
		}
	}
	return ""
}

// encodePlay emits one pc| part per card in the play section, in the
// order the tricks list them. Unknown cards ("-") and the end-of-play
// marker ("*") are skipped.
func encodePlay(parts []string, play *pbn.Tag) []string {
	for _, line := range play.Data {
		for _, token := range strings.Fields(line) {
			if len(token) != 2 {
				continue
			}
			suit, rank := token[0], token[1]
			switch suit {
			case 'S', 'H', 'D', 'C':
			default:
				continue
			}
			parts = append(parts, fmt.Sprintf("pc|%c%c|", suit, rank))
		}
	}
	return parts
}
