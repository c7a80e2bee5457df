// Package model defines shared data structures.
package model

import "time"

// StatsConfig holds the host-owned settings passed into every computation.
type StatsConfig struct {
	IncludeSpaces bool
	CharLimit     int
}

// LetterCount is one entry of the letter-density ranking.
type LetterCount struct {
	Letter string `json:"letter" yaml:"letter"`
	Count  int    `json:"count" yaml:"count"`
}

// StatsResult is the output of a single computation.
type StatsResult struct {
	CharacterCount          int           `json:"characterCount" yaml:"characterCount"`
	WordCount               int           `json:"wordCount" yaml:"wordCount"`
	SentenceCount           int           `json:"sentenceCount" yaml:"sentenceCount"`
	EstimatedReadingMinutes float64       `json:"estimatedReadingMinutes" yaml:"estimatedReadingMinutes"`
	LetterFrequencies       []LetterCount `json:"letterFrequencies" yaml:"letterFrequencies"`
	LimitExceeded           bool          `json:"limitExceeded" yaml:"limitExceeded"`
}

// HistoryConfig defines filters and options for history output.
type HistoryConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
}

// SessionStats captures a finished editing session.
type SessionStats struct {
	StartedAt      time.Time
	EndedAt        time.Time
	IncludeSpaces  bool
	CharLimit      int
	RawLength      int
	CharacterCount int
	WordCount      int
	SentenceCount  int
	LimitExceeded  bool
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID      int64
	EndedAt        time.Time
	CharLimit      int
	RawLength      int
	CharacterCount int
	WordCount      int
	SentenceCount  int
	LimitExceeded  bool
}

// LetterAggregate sums letter counts across sessions.
type LetterAggregate struct {
	Letter string
	Count  int
}
