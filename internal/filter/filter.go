// Package filter splits PBN files into matched and unmatched board
// sets by regular expression, and rewrites Event tags across a file.
package filter

import (
	"fmt"
	"regexp"

	"github.com/Rick-Wilson/bridge-wrangler/internal/pbn"
)

// Result holds the outcome of splitting a file against a pattern. The
// header and sections are raw text so that boards pass through
// byte for byte.
type Result struct {
	Header    string
	Matched   []string
	Unmatched []string
}

// Total is the number of board sections scanned.
func (r Result) Total() int {
	return len(r.Matched) + len(r.Unmatched)
}

// MatchRate is the matched fraction as a percentage, 0 for empty input.
func (r Result) MatchRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(len(r.Matched)) / float64(r.Total()) * 100
}

// Compile builds the board-matching regexp. Matching is
// case-insensitive unless caseSensitive is set.
func Compile(pattern string, caseSensitive bool) (*regexp.Regexp, error) {
	src := pattern
	if !caseSensitive {
		src = "(?i)" + src
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re, nil
}

// Split partitions the file's board sections by whether the pattern
// matches anywhere in the section's text.
func Split(content string, re *regexp.Regexp) Result {
	header, sections := pbn.SplitSections(content)
	res := Result{Header: header}
	for _, section := range sections {
		if re.MatchString(section) {
			res.Matched = append(res.Matched, section)
		} else {
			res.Unmatched = append(res.Unmatched, section)
		}
	}
	return res
}

// Output rebuilds a PBN file from the header and the chosen sections,
// renumbering boards sequentially from 1 when asked.
func Output(header string, sections []string, renumber bool) string {
	if renumber {
		sections = pbn.RenumberSections(sections)
	}
	return pbn.JoinSections(header, sections)
}

var eventTagRe = regexp.MustCompile(`\[Event\s+"[^"]*"\]`)

// SetEvent rewrites every Event tag in content to the given name,
// returning the updated text and the number of tags rewritten.
func SetEvent(content, event string) (string, int) {
	count := len(eventTagRe.FindAllStringIndex(content, -1))
	updated := eventTagRe.ReplaceAllString(content, `[Event "`+event+`"]`)
	return updated, count
}
