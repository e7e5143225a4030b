package pbn

import (
	"strconv"
	"strings"
)

// Read parses PBN content into its preamble and boards. It is
// deliberately permissive: unrecognized tags and stray lines survive as
// pass-through items so that writing an untouched file reproduces its
// content. Boards without a Board tag are numbered by position.
func Read(content string) (*File, error) {
	f := &File{}
	var board *Board
	var lastTag *Tag
	var commentary strings.Builder
	inCommentary := false

	flushBoard := func() {
		if board != nil && len(board.Items) > 0 {
			f.Boards = append(f.Boards, board)
		}
		board = nil
		lastTag = nil
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if inCommentary {
			commentary.WriteByte('\n')
			commentary.WriteString(line)
			if strings.HasSuffix(trimmed, "}") {
				inCommentary = false
				board.Items = append(board.Items, Item{Kind: ItemCommentary, Commentary: commentary.String()})
				commentary.Reset()
			}
			continue
		}

		// Preamble: % directives before the first tag or commentary line.
		if board == nil && len(f.Boards) == 0 &&
			!strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "{") {
			if trimmed != "" {
				f.Preamble = append(f.Preamble, line)
			}
			continue
		}

		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "{") {
			if board == nil {
				board = &Board{}
			}
			if strings.HasSuffix(trimmed, "}") && len(trimmed) > 1 {
				board.Items = append(board.Items, Item{Kind: ItemCommentary, Commentary: line})
			} else {
				inCommentary = true
				commentary.WriteString(line)
			}
			lastTag = nil
			continue
		}

		if name, value, ok := parseTagLine(trimmed); ok {
			// An Event tag opens a new board once the current one has
			// content; this is the section convention PBN files follow.
			if name == "Event" && board != nil && len(board.Items) > 0 {
				flushBoard()
			}
			if board == nil {
				board = &Board{}
			}
			tag := &Tag{Name: name, Value: value}
			board.Items = append(board.Items, Item{Kind: ItemTag, Tag: tag})
			lastTag = tag
			if name == "Board" {
				if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
					board.Number = n
				}
			}
			continue
		}

		// Section data (auction calls, play cards, table rows) attaches
		// to the preceding tag; anything else is kept verbatim.
		if board == nil {
			board = &Board{}
		}
		if lastTag != nil && !strings.HasPrefix(trimmed, "%") {
			lastTag.Data = append(lastTag.Data, line)
		} else {
			board.Items = append(board.Items, Item{Kind: ItemRaw, Raw: line})
		}
	}
	flushBoard()

	// Position-based numbers for boards missing a Board tag.
	for i, b := range f.Boards {
		if b.Number == 0 {
			b.Number = i + 1
		}
	}
	return f, nil
}

// parseTagLine splits a `[Name "Value"]` line into its parts.
func parseTagLine(line string) (name, value string, ok bool) {
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", "", false
	}
	inner := line[1 : len(line)-1]
	name, rest, found := strings.Cut(inner, " ")
	if !found {
		return "", "", false
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", false
	}
	return name, rest[1 : len(rest)-1], true
}

// Write re-emits the file: preamble, then each board's items in order,
// with a blank line between boards.
func (f *File) Write() string {
	var sb strings.Builder
	for _, line := range f.Preamble {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if len(f.Preamble) > 0 {
		sb.WriteByte('\n')
	}
	for i, b := range f.Boards {
		if i > 0 {
			sb.WriteByte('\n')
		}
		b.write(&sb)
	}
	return sb.String()
}

// Write re-emits a single board record.
func (b *Board) Write() string {
	var sb strings.Builder
	b.write(&sb)
	return sb.String()
}

func (b *Board) write(sb *strings.Builder) {
	for _, it := range b.Items {
		switch it.Kind {
		case ItemTag:
			sb.WriteByte('[')
			sb.WriteString(it.Tag.Name)
			sb.WriteString(" \"")
			sb.WriteString(it.Tag.Value)
			sb.WriteString("\"]\n")
			for _, line := range it.Tag.Data {
				sb.WriteString(line)
				sb.WriteByte('\n')
			}
		case ItemCommentary:
			sb.WriteString(it.Commentary)
			sb.WriteByte('\n')
		case ItemRaw:
			sb.WriteString(it.Raw)
			sb.WriteByte('\n')
		}
	}
}
