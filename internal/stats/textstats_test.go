package stats

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/verte-zerg/tuistat/internal/model"
)

var defaultCfg = model.StatsConfig{IncludeSpaces: true, CharLimit: 1000}

func TestComputeEmpty(t *testing.T) {
	res := Compute("", defaultCfg)
	if res.CharacterCount != 0 || res.WordCount != 0 || res.SentenceCount != 0 {
		t.Fatalf("expected zero counts, got %+v", res)
	}
	if res.EstimatedReadingMinutes != 0 || res.LimitExceeded {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.LetterFrequencies == nil || len(res.LetterFrequencies) != 0 {
		t.Fatalf("expected empty non-nil letters, got %#v", res.LetterFrequencies)
	}
}

func TestComputeHelloWorld(t *testing.T) {
	res := Compute("Hello world.", defaultCfg)
	if res.CharacterCount != 12 || res.WordCount != 2 || res.SentenceCount != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if diff := res.EstimatedReadingMinutes - 0.01; diff > 1e-12 || diff < -1e-12 {
		t.Fatalf("expected 0.01 minutes, got %v", res.EstimatedReadingMinutes)
	}
}

func TestCharacterCountBound(t *testing.T) {
	inputs := []string{"", " ", "a b\tc\nd", "  lead and trail  ", "héllo wörld", " nbsp em", "...!!!???"}
	for _, input := range inputs {
		length := utf8.RuneCountInString(input)
		with := Compute(input, model.StatsConfig{IncludeSpaces: true, CharLimit: 1}).CharacterCount
		without := Compute(input, model.StatsConfig{IncludeSpaces: false, CharLimit: 1}).CharacterCount
		if with != length {
			t.Fatalf("input %q: expected %d with spaces, got %d", input, length, with)
		}
		if without > length {
			t.Fatalf("input %q: %d without spaces exceeds length %d", input, without, length)
		}
	}
}

func TestCharacterCountSkipsUnicodeWhitespace(t *testing.T) {
	if got := CharacterCount("a\tb\nc d e f", false); got != 6 {
		t.Fatalf("expected 6, got %d", got)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "whitespace only", input: " \t\n ", want: 0},
		{name: "single", input: "word", want: 1},
		{name: "runs of whitespace", input: "  one   two\t\tthree\n\nfour  ", want: 4},
		{name: "punctuation only", input: "... !!!", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.input); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestSentenceCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "no terminator", input: "just words", want: 1},
		{name: "trailing terminator", input: "One. Two.", want: 2},
		{name: "collapsed terminators", input: "Wait... what?! Really", want: 3},
		{name: "terminators only", input: "?!. ...", want: 0},
		{name: "blank fragments", input: "A.  . B", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SentenceCount(tt.input); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWordAndSentenceCountsAreIndependent(t *testing.T) {
	res := Compute("no terminators in this text at all", defaultCfg)
	if res.WordCount != 7 || res.SentenceCount != 1 {
		t.Fatalf("unexpected result: %+v", res)
	}

	res = Compute("!!!", defaultCfg)
	if res.WordCount != 1 || res.SentenceCount != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLimitUsesRawLength(t *testing.T) {
	text := "a b c "
	res := Compute(text, model.StatsConfig{CharLimit: 5, IncludeSpaces: false})
	if res.CharacterCount != 3 {
		t.Fatalf("expected 3 characters, got %d", res.CharacterCount)
	}
	if !res.LimitExceeded {
		t.Fatalf("expected raw length 6 to exceed limit 5")
	}

	res = Compute(text, model.StatsConfig{CharLimit: 6, IncludeSpaces: false})
	if res.LimitExceeded {
		t.Fatalf("text at the limit must not be flagged")
	}
}

func TestReadingTime(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 400))
	res := Compute(text, defaultCfg)
	if res.WordCount != 400 {
		t.Fatalf("expected 400 words, got %d", res.WordCount)
	}
	if res.EstimatedReadingMinutes != 2.0 {
		t.Fatalf("expected 2 minutes, got %v", res.EstimatedReadingMinutes)
	}
	if got := FormatReadingTime(res.EstimatedReadingMinutes); got != "2.0" {
		t.Fatalf("expected 2.0, got %s", got)
	}
	if got := FormatReadingTime(Compute(strings.Repeat("w ", 25), defaultCfg).EstimatedReadingMinutes); got != "0.1" {
		t.Fatalf("expected 0.1, got %s", got)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. Again?! Yes..."
	cfg := model.StatsConfig{IncludeSpaces: false, CharLimit: 10}
	first, second := Compute(text, cfg), Compute(text, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}
