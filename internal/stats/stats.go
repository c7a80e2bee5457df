package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/tuistat/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary of stored editing sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	totalWords := 0
	totalChars := 0
	bestWords := 0
	overLimit := 0
	for _, s := range sessions {
		totalWords += s.WordCount
		totalChars += s.CharacterCount
		if s.WordCount > bestWords {
			bestWords = s.WordCount
		}
		if s.LimitExceeded {
			overLimit++
		}
	}
	count := float64(len(sessions))
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Total words: %d", totalWords),
		fmt.Sprintf("Avg words: %.2f", float64(totalWords)/count),
		fmt.Sprintf("Best words: %d", bestWords),
		fmt.Sprintf("Avg characters: %.2f", float64(totalChars)/count),
		fmt.Sprintf("Total reading time: %s min", FormatReadingTime(float64(totalWords)/WordsPerMinute)),
		fmt.Sprintf("Over limit: %d", overLimit),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints moving-average sparklines of words and characters per
// session. A positive width keeps only the most recent points.
func RenderCurves(w io.Writer, sessions []model.SessionAggregate, window, width int) error {
	if len(sessions) == 0 {
		return nil
	}
	words := make([]float64, len(sessions))
	chars := make([]float64, len(sessions))
	for i, s := range sessions {
		words[i] = float64(s.WordCount)
		chars[i] = float64(s.CharacterCount)
	}
	words = lastPoints(MovingAverage(words, window), width)
	chars = lastPoints(MovingAverage(chars, window), width)

	if _, err := fmt.Fprintln(w, "Session Curves"); err != nil {
		return err
	}
	rows := [][]string{
		{"Words", Sparkline(words), fmt.Sprintf("%.1f", words[len(words)-1])},
		{"Characters", Sparkline(chars), fmt.Sprintf("%.1f", chars[len(chars)-1])},
	}
	for _, line := range formatTable([]string{"Series", "Trend", "Latest"}, rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderLetterTable prints letter totals across sessions.
func RenderLetterTable(w io.Writer, aggs []model.LetterAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No letter stats found.")
		return err
	}
	total := 0
	for _, agg := range aggs {
		total += agg.Count
	}
	top := TopLetters(aggs, MaxDensityLetters)

	if _, err := fmt.Fprintln(w, "Letter Density"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(top))
	for _, agg := range top {
		share := 0.0
		if total > 0 {
			share = float64(agg.Count) / float64(total)
		}
		rows = append(rows, []string{
			strings.ToUpper(agg.Letter),
			fmt.Sprintf("%d", agg.Count),
			fmt.Sprintf("%.2f%%", share*100),
		})
	}
	for _, line := range formatTable([]string{"Letter", "Count", "Share"}, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

func lastPoints(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		return values
	}
	return values[len(values)-width:]
}
