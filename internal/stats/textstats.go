// Package stats contains text statistics calculations and reporting.
package stats

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/verte-zerg/tuistat/internal/model"
)

// WordsPerMinute is the fixed reading speed used for reading time.
const WordsPerMinute = 200.0

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Compute derives all statistics for text. It accepts any input and never fails.
func Compute(text string, cfg model.StatsConfig) model.StatsResult {
	words := WordCount(text)
	return model.StatsResult{
		CharacterCount:          CharacterCount(text, cfg.IncludeSpaces),
		WordCount:               words,
		SentenceCount:           SentenceCount(text),
		EstimatedReadingMinutes: float64(words) / WordsPerMinute,
		LetterFrequencies:       LetterDensity(text),
		LimitExceeded:           LimitExceeded(text, cfg.CharLimit),
	}
}

// CharacterCount counts runes, optionally skipping Unicode whitespace.
func CharacterCount(text string, includeSpaces bool) int {
	if includeSpaces {
		return utf8.RuneCountInString(text)
	}
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	return len(strings.Fields(trimmed))
}

// SentenceCount counts non-blank fragments between runs of '.', '!' and '?'.
func SentenceCount(text string) int {
	count := 0
	for _, fragment := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

// LimitExceeded reports whether the raw length of text is above limit.
// Whitespace always counts here, whatever the display setting.
func LimitExceeded(text string, limit int) bool {
	return utf8.RuneCountInString(text) > limit
}

// FormatReadingTime renders minutes with one decimal place.
func FormatReadingTime(minutes float64) string {
	return fmt.Sprintf("%.1f", minutes)
}
