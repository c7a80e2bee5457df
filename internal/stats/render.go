package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tuistat/internal/model"
)

// Output formats accepted by RenderResult.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	barChar      = "█"
	barColor     = "\x1b[36m"
	warnColor    = "\x1b[31m"
	colorReset   = "\x1b[0m"
	minBarWidth  = 10
	maxBarWidth  = 40
	barRowPrefix = 10
)

// NoLettersMessage is shown in place of an empty letter-density ranking.
const NoLettersMessage = "No letters to analyze"

// RenderOptions controls RenderResult output.
type RenderOptions struct {
	Format string
	Color  bool
	Width  int
}

// RenderResult writes a computed result in the requested format.
func RenderResult(w io.Writer, res model.StatsResult, opts RenderOptions) error {
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", FormatText:
		return renderText(w, res, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (expected %s, %s or %s)", opts.Format, FormatText, FormatJSON, FormatYAML)
	}
}

// SummaryLines returns a plain-text description of a result.
func SummaryLines(res model.StatsResult) []string {
	limit := "within limit"
	if res.LimitExceeded {
		limit = "exceeded"
	}
	return []string{
		fmt.Sprintf("Characters: %s", humanize.Comma(int64(res.CharacterCount))),
		fmt.Sprintf("Words: %s", humanize.Comma(int64(res.WordCount))),
		fmt.Sprintf("Sentences: %s", humanize.Comma(int64(res.SentenceCount))),
		fmt.Sprintf("Reading time: %s min", FormatReadingTime(res.EstimatedReadingMinutes)),
		fmt.Sprintf("Character limit: %s", limit),
	}
}

func renderText(w io.Writer, res model.StatsResult, opts RenderOptions) error {
	limit := "no"
	if res.LimitExceeded {
		limit = "yes"
	}
	rows := [][]string{
		{"Characters", humanize.Comma(int64(res.CharacterCount))},
		{"Words", humanize.Comma(int64(res.WordCount))},
		{"Sentences", humanize.Comma(int64(res.SentenceCount))},
		{"Reading time", FormatReadingTime(res.EstimatedReadingMinutes) + " min"},
		{"Limit exceeded", limit},
	}
	lines := formatTable([]string{"Metric", "Value"}, rows, map[int]bool{1: true})
	if res.LimitExceeded && opts.Color {
		lines[len(lines)-1] = warnColor + lines[len(lines)-1] + colorReset
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Letter Density"); err != nil {
		return err
	}
	if len(res.LetterFrequencies) == 0 {
		_, err := fmt.Fprintln(w, NoLettersMessage)
		return err
	}
	for _, line := range densityBars(res.LetterFrequencies, opts.Width, opts.Color) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func densityBars(letters []model.LetterCount, width int, useColor bool) []string {
	barWidth := width - barRowPrefix
	if width <= 0 || barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	maxCount := 0
	countWidth := 0
	for _, lc := range letters {
		if lc.Count > maxCount {
			maxCount = lc.Count
		}
		if w := len(fmt.Sprintf("%d", lc.Count)); w > countWidth {
			countWidth = w
		}
	}
	lines := make([]string, 0, len(letters))
	for _, lc := range letters {
		n := 1
		if maxCount > 0 {
			n = lc.Count * barWidth / maxCount
		}
		if n < 1 {
			n = 1
		}
		bar := strings.Repeat(barChar, n)
		if useColor {
			bar = barColor + bar + colorReset
		}
		lines = append(lines, fmt.Sprintf("%s %*d %s", strings.ToUpper(lc.Letter), countWidth, lc.Count, bar))
	}
	return lines
}
