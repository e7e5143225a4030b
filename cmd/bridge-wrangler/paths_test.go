package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternOutputPath(t *testing.T) {
	got := patternOutputPath(filepath.Join("deals", "spring.pbn"), "nesw")
	assert.Equal(t, filepath.Join("deals", "spring - NESW.pbn"), got)

	got = patternOutputPath("spring", "s")
	assert.Equal(t, "spring - S.pbn", got)
}

func TestSuffixedOutputPath(t *testing.T) {
	got := suffixedOutputPath(filepath.Join("deals", "spring.pbn"), "Matched")
	assert.Equal(t, filepath.Join("deals", "spring-Matched.pbn"), got)
}
