package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	statsPkg "github.com/verte-zerg/tuistat/internal/stats"
)

const densityPerRow = 6

const helpText = "alt+t theme · alt+s spaces · alt+l limit · alt+c copy · esc unfocus · ctrl+c quit"

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.editor.View(),
		m.renderCards(),
		m.renderDensity(),
	}
	if warning := m.renderWarning(); warning != "" {
		sections = append(sections, warning)
	}
	if m.editingLimit {
		sections = append(sections, m.theme.modal.Render(m.limitInput.View()))
	}
	sections = append(sections, m.renderFooter())
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
}

func (m *Model) renderHeader() string {
	spaces := "with spaces"
	if !m.config.IncludeSpaces {
		spaces = "without spaces"
	}
	title := m.theme.primary.Render("tuistat")
	info := m.theme.muted.Render(fmt.Sprintf("%s theme · characters %s", m.theme.name, spaces))
	return title + "  " + info
}

func (m *Model) renderCards() string {
	charValue := m.theme.primary.Render(humanize.Comma(int64(m.result.CharacterCount)))
	if m.result.LimitExceeded {
		charValue = m.theme.warning.Render(humanize.Comma(int64(m.result.CharacterCount)))
	}
	limitValue := fmt.Sprintf("%s/%s", humanize.Comma(int64(m.rawLength)), humanize.Comma(int64(m.config.CharLimit)))
	limitStyle := m.theme.text
	if m.result.LimitExceeded {
		limitStyle = m.theme.warning
	}
	cards := []string{
		m.metricCard("Characters", charValue),
		m.metricCard("Words", m.theme.primary.Render(humanize.Comma(int64(m.result.WordCount)))),
		m.metricCard("Sentences", m.theme.primary.Render(humanize.Comma(int64(m.result.SentenceCount)))),
		m.metricCard("Reading (min)", m.theme.primary.Render(statsPkg.FormatReadingTime(m.result.EstimatedReadingMinutes))),
		m.metricCard("Limit", limitStyle.Render(limitValue)),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m *Model) metricCard(label, value string) string {
	return m.theme.card.Render(m.theme.cardTitle.Render(label) + "\n" + value)
}

func (m *Model) renderDensity() string {
	title := m.theme.cardTitle.Render("Letter Density")
	letters := m.result.LetterFrequencies
	if len(letters) == 0 {
		return title + "\n" + m.theme.muted.Render(statsPkg.NoLettersMessage)
	}
	cells := make([]string, len(letters))
	cellWidth := 0
	for i, lc := range letters {
		cells[i] = fmt.Sprintf("%s %d", strings.ToUpper(lc.Letter), lc.Count)
		if w := runewidth.StringWidth(cells[i]); w > cellWidth {
			cellWidth = w
		}
	}
	rows := make([]string, 0, (len(cells)+densityPerRow-1)/densityPerRow)
	for start := 0; start < len(cells); start += densityPerRow {
		end := start + densityPerRow
		if end > len(cells) {
			end = len(cells)
		}
		boxes := make([]string, 0, end-start)
		for _, cell := range cells[start:end] {
			boxes = append(boxes, m.theme.densityBox.Render(m.theme.text.Render(runewidth.FillRight(cell, cellWidth))))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return title + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderWarning() string {
	if !m.result.LimitExceeded {
		return ""
	}
	return m.theme.warning.Render(fmt.Sprintf("Limit exceeded: %s characters over %s",
		humanize.Comma(int64(m.rawLength-m.config.CharLimit)),
		humanize.Comma(int64(m.config.CharLimit))))
}

func (m *Model) renderFooter() string {
	if m.status != "" {
		return m.theme.footer.Render(m.status + "  ·  " + helpText)
	}
	return m.theme.footer.Render(helpText)
}
