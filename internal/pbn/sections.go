package pbn

import (
	"regexp"
	"strconv"
	"strings"
)

// SplitSections divides raw PBN content into its header (the `%`
// directive lines before the first tag) and one text section per board.
// A new section starts at each `[Event ...]` tag. Commands that edit
// boards textually (filter, event, replicate) work on these sections so
// that untouched boards survive byte for byte.
func SplitSections(content string) (header string, sections []string) {
	var hdr, current strings.Builder
	inHeader := true

	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if inHeader {
			if strings.HasPrefix(trimmed, "%") || trimmed == "" {
				hdr.WriteString(line)
				hdr.WriteByte('\n')
				continue
			}
			if strings.HasPrefix(trimmed, "[") {
				inHeader = false
				current.WriteString(line)
				current.WriteByte('\n')
			}
			continue
		}

		if strings.HasPrefix(trimmed, "[Event ") && current.Len() > 0 {
			sections = append(sections, current.String())
			current.Reset()
		}
		current.WriteString(line)
		current.WriteByte('\n')
	}

	if current.Len() > 0 {
		sections = append(sections, current.String())
	}
	return hdr.String(), sections
}

var boardTagRe = regexp.MustCompile(`\[Board\s+"[^"]*"\]`)

// RenumberSections rewrites each section's Board tag sequentially from 1.
func RenumberSections(sections []string) []string {
	out := make([]string, len(sections))
	for i, section := range sections {
		out[i] = boardTagRe.ReplaceAllString(section, `[Board "`+strconv.Itoa(i+1)+`"]`)
	}
	return out
}

// JoinSections rebuilds a PBN file from a header and board sections.
func JoinSections(header string, sections []string) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, section := range sections {
		sb.WriteString(section)
		if !strings.HasSuffix(section, "\n") {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ExtractTagValue pulls a tag's value out of a raw board section,
// returning "" when the tag is absent.
func ExtractTagValue(section, name string) string {
	re := regexp.MustCompile(`\[` + regexp.QuoteMeta(name) + `\s+"([^"]*)"\]`)
	if m := re.FindStringSubmatch(section); m != nil {
		return m[1]
	}
	return ""
}
