package pbn

import (
	"fmt"
	"strings"
)

// ItemKind discriminates the entries of a board's ordered item list.
type ItemKind int

const (
	// ItemTag is a `[Name "Value"]` line plus any section data lines
	// that follow it (auction calls, play cards, table rows).
	ItemTag ItemKind = iota
	// ItemCommentary is a `{ ... }` commentary block, braces included.
	ItemCommentary
	// ItemRaw is any other line kept verbatim (stray `%` directives,
	// continuation text outside a section).
	ItemRaw
)

// Tag is a single PBN tag with its trailing section data, if any.
type Tag struct {
	Name  string
	Value string
	Data  []string
}

// Item is one ordered entry of a board record.
type Item struct {
	Kind       ItemKind
	Tag        *Tag
	Commentary string
	Raw        string
}

// Board is one hand-record unit. Items preserves the original tag and
// commentary order so that writing an untouched board reproduces it.
type Board struct {
	Number int
	Items  []Item
}

// File is a parsed PBN file: the `%` preamble lines and the boards.
type File struct {
	Preamble []string
	Boards   []*Board
}

// Clone deep-copies the board. Rotation works on clones so that the
// same parsed input can feed several output patterns.
func (b *Board) Clone() *Board {
	out := &Board{Number: b.Number, Items: make([]Item, len(b.Items))}
	for i, it := range b.Items {
		out.Items[i] = it
		if it.Tag != nil {
			tag := &Tag{Name: it.Tag.Name, Value: it.Tag.Value}
			if it.Tag.Data != nil {
				tag.Data = append([]string(nil), it.Tag.Data...)
			}
			out.Items[i].Tag = tag
		}
	}
	return out
}

// FindTag returns the first tag with the given name.
func (b *Board) FindTag(name string) *Tag {
	for _, it := range b.Items {
		if it.Kind == ItemTag && it.Tag.Name == name {
			return it.Tag
		}
	}
	return nil
}

// TagValue returns the value of the named tag and whether it exists.
func (b *Board) TagValue(name string) (string, bool) {
	if t := b.FindTag(name); t != nil {
		return t.Value, true
	}
	return "", false
}

// SetTagValue updates the named tag in place, reporting whether it exists.
func (b *Board) SetTagValue(name, value string) bool {
	if t := b.FindTag(name); t != nil {
		t.Value = value
		return true
	}
	return false
}

// AppendTag adds a new tag at the end of the board's item list.
func (b *Board) AppendTag(name, value string) {
	b.Items = append(b.Items, Item{Kind: ItemTag, Tag: &Tag{Name: name, Value: value}})
}

// Dealer returns the board's dealer seat, if the Dealer tag holds one.
func (b *Board) Dealer() (Seat, bool) {
	v, ok := b.TagValue("Dealer")
	if !ok {
		return North, false
	}
	return SeatFromString(v)
}

// Declarer returns the board's declarer seat, if the Declarer tag holds one.
func (b *Board) Declarer() (Seat, bool) {
	v, ok := b.TagValue("Declarer")
	if !ok {
		return North, false
	}
	return SeatFromString(v)
}

// Vulnerable returns the board's vulnerability, defaulting to None when
// the tag is absent or unparsable.
func (b *Board) Vulnerable() Vulnerability {
	v, ok := b.TagValue("Vulnerable")
	if !ok {
		return VulNone
	}
	vul, _ := ParseVulnerability(v)
	return vul
}

// Deal returns the board's parsed deal.
func (b *Board) Deal() (Deal, bool) {
	v, ok := b.TagValue("Deal")
	if !ok {
		return Deal{}, false
	}
	d, err := ParseDeal(v)
	return d, err == nil
}

// HasCards reports whether the board carries an actual deal rather than
// an empty placeholder. Commands that transform deals skip boards
// without cards.
func (b *Board) HasCards() bool {
	d, ok := b.Deal()
	if !ok {
		return false
	}
	for _, h := range d.Hands {
		if strings.Trim(h, ". -") != "" {
			return true
		}
	}
	return false
}

// Deal is a board's four card holdings. Hands is indexed by absolute
// Seat; First records which seat the on-disk listing starts from. Hand
// contents are opaque to this package: rotation relocates them between
// seats without looking inside.
type Deal struct {
	First Seat
	Hands [4]string
}

// ParseDeal parses a PBN deal value, e.g. "N:AKQ.J54.632.T98 ... ... ...".
func ParseDeal(v string) (Deal, error) {
	v = strings.TrimSpace(v)
	if len(v) < 2 || v[1] != ':' {
		return Deal{}, fmt.Errorf("deal %q: missing seat prefix", v)
	}
	first, ok := SeatFromChar(v[0])
	if !ok {
		return Deal{}, fmt.Errorf("deal %q: bad seat %q", v, v[0])
	}
	hands := strings.Fields(v[2:])
	if len(hands) != 4 {
		return Deal{}, fmt.Errorf("deal %q: want 4 hands, got %d", v, len(hands))
	}
	d := Deal{First: first}
	for i, h := range hands {
		d.Hands[first.Rotate(i)] = h
	}
	return d, nil
}

// String re-emits the deal clockwise from its First seat.
func (d Deal) String() string {
	var sb strings.Builder
	sb.WriteByte(d.First.Char())
	sb.WriteByte(':')
	for i := 0; i < 4; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.Hands[d.First.Rotate(i)])
	}
	return sb.String()
}

// Rotated moves each holding k seats clockwise and lists the result
// from the given first seat. The four hand strings are permuted, never
// altered.
func (d Deal) Rotated(k int, first Seat) Deal {
	out := Deal{First: first}
	for _, s := range Seats() {
		out.Hands[s.Rotate(k)] = d.Hands[s]
	}
	return out
}

// Hand returns the holding of the given seat.
func (d Deal) Hand(s Seat) string {
	return d.Hands[s&3]
}
