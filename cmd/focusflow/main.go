// Package main provides the CLI entrypoint for focusflow.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LEGENDBOLT/StudioFocusOn/internal/backup"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/coach"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/config"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/limiter"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/model"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/stats"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/store"
	"github.com/LEGENDBOLT/StudioFocusOn/internal/tui"
)

const defaultCurveWindow = 3

const apiKeyEnv = "GEMINI_API_KEY"

var (
	statsLast        int
	statsCurveWindow int

	exportOut string

	importYes bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "focusflow",
		Short:         "Pomodoro study timer with analytics and an AI coach",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAppCmd,
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

func runAppCmd(_ *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	// Best-effort: a .env in the working directory supplies the API key
	// during development.
	if err := godotenv.Load(); err != nil {
		zap.S().Debugw("no .env file loaded", "error", err)
	}

	ctx := context.Background()
	sessions := store.NewSessions(st)
	profiles := store.NewProfiles(st)
	lim := limiter.New(ctx, st, intOr(fileCfg.Coach.DailyLimit, 0))
	client := coach.New(
		os.Getenv(apiKeyEnv),
		stringOr(fileCfg.Coach.ChatModel, ""),
		stringOr(fileCfg.Coach.SummaryModel, ""),
	)

	m := tui.New(ctx, tui.Options{
		Sessions:    sessions,
		Profiles:    profiles,
		Limiter:     lim,
		Coach:       client,
		ExportDir:   config.DefaultExportDir(),
		CurveWindow: intOr(fileCfg.Analytics.CurveWindow, defaultCurveWindow),
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
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

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show study session stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", 10, "limit the table to the last N sessions (0 = all)")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window for trend curves")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	sessions := store.NewSessions(st).Load(context.Background())
	report := stats.BuildReport(sessions, statsCurveWindow)

	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, report); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if report.Count >= stats.MinSessionsForChart {
		if err := stats.RenderChart(out, report.Series, 0, stats.DefaultChartHeight, stats.ShouldColor(os.Stdout)); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if report.Count > 0 {
		if _, err := fmt.Fprintln(out, stats.NoChartNotice); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := stats.RenderSessionTable(out, report.Sessions, statsLast); err != nil {
		return fmt.Errorf("failed to render session table: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions and profiles to a JSON backup",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportOut, "out", config.DefaultExportDir(), "directory for the backup file")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	st, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	data := model.BackupData{
		Sessions: store.NewSessions(st).Load(ctx),
		Profiles: store.NewProfiles(st).Load(ctx),
	}
	path, err := backup.WriteFile(exportOut, data, time.Now())
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Backup salvato in %s\n", path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace sessions and profiles from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
	cmd.Flags().BoolVar(&importYes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	// Validate the document before touching stored data.
	data, err := backup.ParseFile(args[0])
	if err != nil {
		return err
	}

	if !importYes {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(),
			"Il backup contiene %d sessioni e %d profili.\nSostituirà tutti i dati attuali. Continuare? [y/N]: ",
			len(data.Sessions), len(data.Profiles)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes", "s", "si", "sì":
		default:
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Importazione annullata."); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		}
	}

	st, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	store.NewSessions(st).Replace(ctx, data.Sessions)
	store.NewProfiles(st).Replace(ctx, data.Profiles)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Dati importati con successo."); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// setup wires the file logger and opens the database. The returned cleanup
// closes both.
func setup() (*store.Store, func(), error) {
	closeLogger, err := initLogger(config.DefaultLogPath())
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		closeLogger()
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	cleanup := func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
		closeLogger()
	}
	return st, cleanup, nil
}

// initLogger replaces the zap globals with a logger writing to path. The TUI
// owns the terminal, so nothing may log to stdout or stderr while it runs.
func initLogger(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	return func() {
		// Best-effort flush on shutdown.
		_ = logger.Sync()
	}, nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# focusflow configuration
# Uncomment a value to enable it. CLI flags override config values.

[coach]
# chat-model = %q
# summary-model = %q
# daily-limit = %d            # Coach messages allowed per day

[analytics]
# curve-window = %d           # Moving average window for trend curves
`,
		coach.DefaultChatModel,
		coach.DefaultSummaryModel,
		limiter.DailyLimit,
		defaultCurveWindow,
	)
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func stringOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
