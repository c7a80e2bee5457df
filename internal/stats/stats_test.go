package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuistat/internal/model"
)

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
}

func TestRenderSummary(t *testing.T) {
	sessions := []model.SessionAggregate{
		{SessionID: 1, EndedAt: time.Unix(0, 0), WordCount: 200, CharacterCount: 1000},
		{SessionID: 2, EndedAt: time.Unix(60, 0), WordCount: 400, CharacterCount: 2000, LimitExceeded: true},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, sessions); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Sessions: 2", "Total words: 600", "Avg words: 300.00", "Best words: 400", "Total reading time: 3.0 min", "Over limit: 1"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("summary missing %q: %s", needle, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No sessions found.") {
		t.Fatalf("expected empty message, got %q", buf.String())
	}
}

func TestRenderCurvesKeepsLatestPoints(t *testing.T) {
	sessions := make([]model.SessionAggregate, 5)
	for i := range sessions {
		sessions[i] = model.SessionAggregate{SessionID: int64(i + 1), WordCount: i * 10, CharacterCount: i * 50}
	}
	var buf bytes.Buffer
	if err := RenderCurves(&buf, sessions, 1, 3); err != nil {
		t.Fatalf("render curves: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Session Curves") {
		t.Fatalf("expected title: %s", out)
	}
	if !strings.Contains(out, " +@") || !strings.Contains(out, "40.0") {
		t.Fatalf("expected trimmed curve ending at latest value: %s", out)
	}
	if !strings.Contains(out, "200.0") {
		t.Fatalf("expected latest characters value: %s", out)
	}
}

func TestRenderLetterTable(t *testing.T) {
	aggs := []model.LetterAggregate{{Letter: "e", Count: 3}, {Letter: "t", Count: 1}}
	var buf bytes.Buffer
	if err := RenderLetterTable(&buf, aggs); err != nil {
		t.Fatalf("render letters: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[2] != "E          3 75.00%" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}
