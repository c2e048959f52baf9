// Package main provides the CLI entrypoint for typestorm.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/halcyonix/typestorm/internal/audio"
	"github.com/halcyonix/typestorm/internal/config"
	"github.com/halcyonix/typestorm/internal/game"
	"github.com/halcyonix/typestorm/internal/model"
	"github.com/halcyonix/typestorm/internal/scoresui"
	"github.com/halcyonix/typestorm/internal/sshserve"
	"github.com/halcyonix/typestorm/internal/stats"
	"github.com/halcyonix/typestorm/internal/store"
	"github.com/halcyonix/typestorm/internal/trivia"
	"github.com/halcyonix/typestorm/internal/tui"
	"github.com/halcyonix/typestorm/internal/words"
)

const (
	defaultMode        = "normal"
	defaultLang        = "en"
	defaultVolume      = 0.7
	defaultCurveWindow = 5
	defaultServeHost   = "0.0.0.0"
	defaultServePort   = "23234"
)

var (
	playMode   string
	playLang   string
	playPlayer string
	playSound  bool
	playVolume float64
	playResume bool

	scoresMode string
	scoresLang string

	statsMode        string
	statsLang        string
	statsSince       string
	statsLast        int
	statsCurveWindow int

	serveMode    string
	serveLang    string
	serveHost    string
	servePort    string
	serveHostKey string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typestorm",
		Short:         "Typing arcade game in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playMode, "mode", defaultMode, "game mode (normal, programming)")
	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "dictionary language")
	rootCmd.Flags().StringVar(&playPlayer, "player", "", "player name for the high-score table")
	rootCmd.Flags().BoolVar(&playSound, "sound", true, "enable sound effects")
	rootCmd.Flags().Float64Var(&playVolume, "volume", defaultVolume, "sound volume (0-1)")
	rootCmd.Flags().BoolVar(&playResume, "resume", false, "resume the saved game")

	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &playMode, fileCfg.Game.Mode)
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Game.Language)
	applyStringConfig(cmd, "player", &playPlayer, fileCfg.Game.Player)
	applyBoolConfig(cmd, "sound", &playSound, fileCfg.Sound.Enabled)
	applyFloatConfig(cmd, "volume", &playVolume, fileCfg.Sound.Volume)

	cfg := model.GameConfig{
		Mode:     model.Mode(playMode),
		Language: playLang,
		Player:   playPlayer,
		Sound:    playSound,
		Volume:   playVolume,
		Resume:   playResume,
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	extra, err := loadWordOverrides(playMode, playLang)
	if err != nil {
		return err
	}
	source, err := words.New(cfg.Mode, cfg.Language, extra)
	if err != nil {
		return dictionaryLoadError(playMode, playLang, err)
	}
	bank, err := trivia.Load(nil)
	if err != nil {
		return fmt.Errorf("failed to load trivia questions: %w", err)
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

	session, err := newOrResumedSession(cfg, st, source, bank)
	if err != nil {
		return err
	}

	var cue tui.CuePlayer
	if cfg.Sound && cfg.Volume > 0 {
		player := audio.NewPlayer(cfg.Volume)
		if err := player.Init(); err != nil {
			logErrf("sound disabled: %v\n", err)
		} else {
			defer player.Close()
			cue = player
		}
	}

	program := tea.NewProgram(tui.NewModel(cfg, session, st, cue), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newOrResumedSession(cfg model.GameConfig, st *store.Store, source *words.Source, bank *trivia.Bank) (*game.Session, error) {
	if !cfg.Resume {
		return game.NewSession(cfg, source, bank), nil
	}
	save, found, err := st.LoadGame(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load saved game: %w", err)
	}
	if !found {
		logErrln("no saved game found; starting a new run")
		return game.NewSession(cfg, source, bank), nil
	}
	if save.Mode != cfg.Mode || save.Language != cfg.Language {
		resumed, err := words.New(save.Mode, save.Language, nil)
		if err != nil {
			return nil, dictionaryLoadError(string(save.Mode), save.Language, err)
		}
		source = resumed
	}
	return game.Resume(cfg, save, source, bank), nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Browse high scores and achievements",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().StringVar(&scoresMode, "mode", "", "mode filter")
	cmd.Flags().StringVar(&scoresLang, "lang", "", "language filter")
	return cmd
}

func runScoresCmd(_ *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	cfg := model.StatsConfig{
		Mode:        scoresMode,
		Language:    scoresLang,
		CurveWindow: defaultCurveWindow,
	}
	program := tea.NewProgram(scoresui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run scores TUI: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print session stats and progress curves",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter")
	cmd.Flags().StringVar(&statsLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Mode:        statsMode,
		Language:    statsLang,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
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

	fd := int(os.Stdout.Fd())
	useColor := term.IsTerminal(fd)
	width := 80
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		width = w
	}
	if err := stats.Render(os.Stdout, report, cfg, width, useColor); err != nil {
		return fmt.Errorf("failed to render stats: %w", err)
	}
	return nil
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over SSH",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
	cmd.Flags().StringVar(&serveMode, "mode", defaultMode, "game mode offered to SSH players")
	cmd.Flags().StringVar(&serveLang, "lang", defaultLang, "dictionary language")
	cmd.Flags().StringVar(&serveHost, "host", defaultServeHost, "listen host")
	cmd.Flags().StringVar(&servePort, "port", defaultServePort, "listen port")
	cmd.Flags().StringVar(&serveHostKey, "host-key", "", "SSH host key path (generated if empty)")
	return cmd
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &serveMode, fileCfg.Game.Mode)
	applyStringConfig(cmd, "lang", &serveLang, fileCfg.Game.Language)

	gameCfg := model.GameConfig{
		Mode:     model.Mode(serveMode),
		Language: serveLang,
	}
	if err := validateConfig(gameCfg); err != nil {
		return err
	}
	if _, err := words.New(gameCfg.Mode, gameCfg.Language, nil); err != nil {
		return dictionaryLoadError(serveMode, serveLang, err)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveCfg := sshserve.Config{
		Host:        serveHost,
		Port:        servePort,
		HostKeyPath: serveHostKey,
		Game:        gameCfg,
	}
	if err := sshserve.Serve(ctx, serveCfg, st); err != nil {
		return fmt.Errorf("ssh server failed: %w", err)
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available dictionaries",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	names, err := words.Dictionaries()
	if err != nil {
		return err
	}
	overrides := overrideDictionaries()
	for _, name := range names {
		line := name
		if _, ok := overrides[name]; ok {
			line += " (with overrides)"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// overrideDictionaries scans the user word list directory for mode-lang
// override files. A missing directory just means no overrides.
func overrideDictionaries() map[string]struct{} {
	out := map[string]struct{}{}
	entries, err := os.ReadDir(config.DefaultWordListDir())
	if err != nil {
		return out
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		out[strings.TrimSuffix(name, ".txt")] = struct{}{}
	}
	return out
}

// loadWordOverrides reads the user override word list for the mode/lang
// pair, one word per line. Missing file is not an error.
func loadWordOverrides(mode, lang string) ([]string, error) {
	path := config.DefaultWordListPath(mode, lang)
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		// Best-effort close of a read-only file.
		_ = file.Close()
	}()

	var extra []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		extra = append(extra, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return extra, nil
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
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
	return fmt.Sprintf(`# typestorm configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# mode = %q          # Game mode: normal or programming
# language = %q           # Dictionary language (normal: en; programming: go, python, javascript)
# player = ""             # Default player name for the high-score table

[sound]
# enabled = true          # Enable sound effects
# volume = %.1f            # Sound volume (0-1)
`,
		defaultMode,
		defaultLang,
		defaultVolume,
	)
}

func validateConfig(cfg model.GameConfig) error {
	switch cfg.Mode {
	case model.ModeNormal, model.ModeProgramming:
	default:
		return fmt.Errorf("--mode must be normal or programming")
	}
	if cfg.Language == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	return nil
}

func dictionaryLoadError(mode, lang string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load dictionary: %v", err),
		fmt.Sprintf("no dictionary for mode %q language %q", mode, lang),
		"List available dictionaries: typestorm langs",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
