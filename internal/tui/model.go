// Package tui provides the Bubble Tea text statistics interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuistat/internal/config"
	"github.com/verte-zerg/tuistat/internal/model"
	statsPkg "github.com/verte-zerg/tuistat/internal/stats"
	"github.com/verte-zerg/tuistat/internal/store"
)

const (
	minEditorHeight = 5
	panelHeight     = 14
)

const tabNotice = "Tabs become spaces once you start editing"

// Model implements the Bubble Tea editor with live statistics.
type Model struct {
	config model.StatsConfig
	theme  theme
	store  *store.Store

	editor       textarea.Model
	limitInput   textinput.Model
	editingLimit bool

	// preloaded holds the file text verbatim until the first edit. The
	// textarea expands tabs on load, so its value is not the file's text.
	preloaded string
	pristine  bool

	result    model.StatsResult
	rawLength int
	status    string

	width  int
	height int

	started   bool
	startedAt time.Time

	copyText func(string) error
}

// NewModel constructs the editor model. st may be nil to disable history.
func NewModel(cfg model.StatsConfig, themeName string, st *store.Store, initial string) *Model {
	editor := textarea.New()
	editor.Placeholder = "Start typing..."
	editor.ShowLineNumbers = false
	editor.MaxHeight = 0
	editor.CharLimit = 0
	if initial != "" {
		editor.SetValue(initial)
	}
	editor.CharLimit = cfg.CharLimit
	editor.Focus()

	limitInput := textinput.New()
	limitInput.Prompt = "Character limit: "
	limitInput.CharLimit = 12

	m := &Model{
		config:     cfg,
		theme:      newTheme(themeName),
		store:      st,
		editor:     editor,
		limitInput: limitInput,
		copyText:   clipboard.WriteAll,
	}
	if initial != "" {
		m.started = true
		m.startedAt = time.Now()
		m.preloaded = initial
		m.pristine = true
		if strings.ContainsRune(initial, '\t') {
			m.status = tabNotice
		}
	}
	m.recompute()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEditor()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.finishSession()
			return m, tea.Quit
		}
		if m.editingLimit {
			return m.updateLimitInput(msg)
		}
		switch msg.String() {
		case "alt+t":
			m.theme = m.theme.toggled()
			return m, nil
		case "alt+s":
			m.config.IncludeSpaces = !m.config.IncludeSpaces
			m.recompute()
			return m, nil
		case "alt+l":
			return m.startLimitInput()
		case "alt+c":
			m.copyStats()
			return m, nil
		}
		if !m.editor.Focused() {
			switch msg.String() {
			case "q":
				m.finishSession()
				return m, tea.Quit
			case "i", "enter":
				m.status = ""
				return m, m.editor.Focus()
			}
			return m, nil
		}
		if msg.Type == tea.KeyEsc {
			m.editor.Blur()
			m.status = "Editor unfocused (i to edit, q to quit)"
			return m, nil
		}
		return m.updateEditor(msg)
	default:
		return m.updateEditor(msg)
	}
}

func (m *Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		if m.pristine {
			m.pristine = false
			m.preloaded = ""
			if m.status == tabNotice {
				m.status = "Tabs expanded to spaces"
			}
		}
		if !m.started {
			m.started = true
			m.startedAt = time.Now()
		}
		m.recompute()
	}
	return m, cmd
}

func (m *Model) startLimitInput() (tea.Model, tea.Cmd) {
	m.editingLimit = true
	m.editor.Blur()
	m.limitInput.SetValue(strconv.Itoa(m.config.CharLimit))
	m.limitInput.CursorEnd()
	return m, m.limitInput.Focus()
}

func (m *Model) updateLimitInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.closeLimitInput()
	case tea.KeyEnter:
		limit, err := config.ParseCharLimit(m.limitInput.Value())
		if err != nil {
			m.status = fmt.Sprintf("Invalid limit ignored: %v", err)
		} else {
			m.setCharLimit(limit)
			m.status = fmt.Sprintf("Character limit set to %d", limit)
		}
		return m, m.closeLimitInput()
	}
	var cmd tea.Cmd
	m.limitInput, cmd = m.limitInput.Update(msg)
	return m, cmd
}

func (m *Model) closeLimitInput() tea.Cmd {
	m.editingLimit = false
	m.limitInput.Blur()
	return m.editor.Focus()
}

func (m *Model) setCharLimit(limit int) {
	m.config.CharLimit = limit
	m.editor.CharLimit = limit
	m.recompute()
}

// currentText is the text statistics are computed from.
func (m *Model) currentText() string {
	if m.pristine {
		return m.preloaded
	}
	return m.editor.Value()
}

func (m *Model) recompute() {
	text := m.currentText()
	m.rawLength = utf8.RuneCountInString(text)
	m.result = statsPkg.Compute(text, m.config)
}

func (m *Model) copyStats() {
	summary := strings.Join(statsPkg.SummaryLines(m.result), "\n")
	if err := m.copyText(summary); err != nil {
		m.status = fmt.Sprintf("Clipboard unavailable: %v", err)
		return
	}
	m.status = "Copied stats to clipboard"
}

func (m *Model) resizeEditor() {
	if m.width <= 0 {
		return
	}
	m.editor.SetWidth(maxInt(m.width-4, 10))
	height := m.height - panelHeight
	if height < minEditorHeight {
		height = minEditorHeight
	}
	m.editor.SetHeight(height)
}

func (m *Model) finishSession() {
	if m.store == nil || !m.started || m.rawLength == 0 {
		return
	}
	session := model.SessionStats{
		StartedAt:      m.startedAt,
		EndedAt:        time.Now(),
		IncludeSpaces:  m.config.IncludeSpaces,
		CharLimit:      m.config.CharLimit,
		RawLength:      m.rawLength,
		CharacterCount: m.result.CharacterCount,
		WordCount:      m.result.WordCount,
		SentenceCount:  m.result.SentenceCount,
		LimitExceeded:  m.result.LimitExceeded,
	}
	letters := statsPkg.LetterCounts(m.currentText())
	if _, err := m.store.InsertSession(context.Background(), session, letters); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
	m.started = false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
