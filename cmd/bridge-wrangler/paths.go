package main

import (
	"path/filepath"
	"strings"
)

// patternOutputPath names a rotation output after its pattern:
// deals.pbn with pattern nesw becomes "deals - NESW.pbn".
func patternOutputPath(input, pattern string) string {
	stem, ext := stemAndExt(input)
	if ext == "" {
		ext = ".pbn"
	}
	return filepath.Join(filepath.Dir(input), stem+" - "+strings.ToUpper(pattern)+ext)
}

// suffixedOutputPath appends a hyphenated suffix to the input's stem,
// keeping its directory and extension.
func suffixedOutputPath(input, suffix string) string {
	stem, ext := stemAndExt(input)
	return filepath.Join(filepath.Dir(input), stem+"-"+suffix+ext)
}

func stemAndExt(path string) (string, string) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}
