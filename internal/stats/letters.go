package stats

import (
	"sort"

	"github.com/verte-zerg/tuistat/internal/model"
)

// MaxDensityLetters caps the letter-density ranking.
const MaxDensityLetters = 12

// LetterDensity returns the top entries of LetterCounts.
func LetterDensity(text string) []model.LetterCount {
	items := LetterCounts(text)
	if len(items) > MaxDensityLetters {
		items = items[:MaxDensityLetters]
	}
	return items
}

// LetterCounts counts ASCII letters case-insensitively, ordered by descending
// count. Equal counts keep the order in which letters first appear.
func LetterCounts(text string) []model.LetterCount {
	var counts [26]int
	order := make([]byte, 0, 26)
	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
			ch += 'a' - 'A'
		default:
			continue
		}
		idx := ch - 'a'
		if counts[idx] == 0 {
			order = append(order, ch)
		}
		counts[idx]++
	}

	items := make([]model.LetterCount, 0, len(order))
	for _, ch := range order {
		items = append(items, model.LetterCount{
			Letter: string(ch),
			Count:  counts[ch-'a'],
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	return items
}

// TopLetters returns the top N letters from aggregated history counts.
func TopLetters(aggs []model.LetterAggregate, n int) []model.LetterAggregate {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.LetterAggregate, len(aggs))
	copy(items, aggs)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Letter < items[j].Letter
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
