// Package main provides the CLI entrypoint for tuistat.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuistat/internal/config"
	"github.com/verte-zerg/tuistat/internal/model"
	"github.com/verte-zerg/tuistat/internal/stats"
	"github.com/verte-zerg/tuistat/internal/store"
	"github.com/verte-zerg/tuistat/internal/tui"
)

const (
	defaultTheme        = "light"
	defaultIncludeSpace = true
	defaultHistory      = true
	defaultCurveWindow  = 5
)

var (
	editorLimit     int
	editorSpaces    bool
	editorTheme     string
	editorNoHistory bool
	editorFile      string

	countLimit     int
	countSpaces    bool
	countFormat    string
	countFailLimit bool

	historySince       string
	historyLast        int
	historyCurveWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuistat",
		Short:         "Live text statistics in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runEditorCmd,
	}

	rootCmd.Flags().IntVar(&editorLimit, "limit", config.DefaultCharLimit, "character limit")
	rootCmd.Flags().BoolVar(&editorSpaces, "include-spaces", defaultIncludeSpace, "count whitespace in the character count")
	rootCmd.Flags().StringVar(&editorTheme, "theme", defaultTheme, "color theme (light or dark)")
	rootCmd.Flags().BoolVar(&editorNoHistory, "no-history", !defaultHistory, "do not record the session in history")
	rootCmd.Flags().StringVar(&editorFile, "file", "", "preload text from a file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runEditorCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "limit", &editorLimit, fileCfg.Editor.CharLimit)
	applyBoolConfig(cmd, "include-spaces", &editorSpaces, fileCfg.Editor.IncludeSpaces)
	applyStringConfig(cmd, "theme", &editorTheme, fileCfg.Editor.Theme)
	if fileCfg.Editor.History != nil && !cmd.Flags().Changed("no-history") {
		editorNoHistory = !*fileCfg.Editor.History
	}

	if err := config.ValidateCharLimit(editorLimit); err != nil {
		return fmt.Errorf("--limit: %w", err)
	}
	if !tui.ValidTheme(editorTheme) {
		return fmt.Errorf("--theme must be %q or %q", "light", "dark")
	}

	initial := ""
	if editorFile != "" {
		data, err := os.ReadFile(editorFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", editorFile, err)
		}
		initial = string(data)
	}

	var st *store.Store
	if !editorNoHistory {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	cfg := model.StatsConfig{
		IncludeSpaces: editorSpaces,
		CharLimit:     editorLimit,
	}
	m := tui.NewModel(cfg, editorTheme, st, initial)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count [file...]",
		Short: "Print statistics for files or stdin",
		RunE:  runCountCmd,
	}
	cmd.Flags().IntVar(&countLimit, "limit", config.DefaultCharLimit, "character limit")
	cmd.Flags().BoolVar(&countSpaces, "include-spaces", defaultIncludeSpace, "count whitespace in the character count")
	cmd.Flags().StringVar(&countFormat, "format", stats.FormatText, "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&countFailLimit, "fail-over-limit", false, "exit with an error when the limit is exceeded")
	return cmd
}

func runCountCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "limit", &countLimit, fileCfg.Editor.CharLimit)
	applyBoolConfig(cmd, "include-spaces", &countSpaces, fileCfg.Editor.IncludeSpaces)
	if err := config.ValidateCharLimit(countLimit); err != nil {
		return fmt.Errorf("--limit: %w", err)
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	res := stats.Compute(text, model.StatsConfig{
		IncludeSpaces: countSpaces,
		CharLimit:     countLimit,
	})
	out := cmd.OutOrStdout()
	opts := stats.RenderOptions{
		Format: countFormat,
		Color:  stats.ShouldUseColor(out, false),
		Width:  stats.WriterWidth(out),
	}
	if err := stats.RenderResult(out, res, opts); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	if countFailLimit && res.LimitExceeded {
		return fmt.Errorf("character limit of %d exceeded", countLimit)
	}
	return nil
}

func readInput(stdin io.Reader, paths []string) (string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	var b strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		b.Write(data)
	}
	return b.String(), nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded editing sessions",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&historyCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cfg := model.HistoryConfig{
		Since:       sinceTime,
		Last:        historyLast,
		CurveWindow: historyCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	out := cmd.OutOrStdout()
	return renderHistory(out, report, cfg.CurveWindow, stats.WriterWidth(out))
}

func renderHistory(w io.Writer, report stats.Report, window, width int) error {
	if err := stats.RenderSummary(w, report.Sessions); err != nil {
		return err
	}
	if len(report.Sessions) == 0 {
		return nil
	}
	// Series label and latest value take roughly 25 columns.
	if err := stats.RenderCurves(w, report.Sessions, window, width-25); err != nil {
		return err
	}
	return stats.RenderLetterTable(w, report.Letters)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuistat configuration
# Uncomment a value to enable it. CLI flags override config values.
# Changes made inside the editor (alt+l, alt+s, alt+t) are not saved here.

[editor]
# limit = %d              # Character limit
# include-spaces = %t     # Count whitespace in the character count
# theme = %q          # Color theme: "light" or "dark"
# history = %t            # Record finished sessions for "tuistat history"
`,
		config.DefaultCharLimit,
		defaultIncludeSpace,
		defaultTheme,
		defaultHistory,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
