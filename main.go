package main

import (
	"fmt"
	"os"
	"strings"

	"hstr/internal/config"
	"hstr/internal/engine"
	"hstr/internal/history"
	"hstr/internal/logging"
	"hstr/internal/shell"
	"hstr/internal/store"
	"hstr/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds command line overrides for the config file
type options struct {
	configPath    string
	shell         string
	historyFile   string
	favoritesFile string
	printMode     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hstr [query...]",
		Short: "Browse, search and reuse your shell history",
		Long: `hstr shows your shell history ranked by how often and how recently each
command was used. Type to filter, pick an entry and it is placed on your
command line.

Any arguments are joined into the initial search query.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default: ./hstr.yaml or ~/.config/hstr/config.yaml)")
	cmd.Flags().StringVar(&opts.shell, "shell", "", "Shell name used to locate history files (default: from $SHELL)")
	cmd.Flags().StringVar(&opts.historyFile, "history-file", "", "History file (default: $HISTFILE or ~/.<shell>_history)")
	cmd.Flags().StringVar(&opts.favoritesFile, "favorites-file", "", "Favorites file (default: ~/.config/hstr/<shell>_favorites)")
	cmd.Flags().BoolVar(&opts.printMode, "print", false, "Print the selection to stdout instead of typing it into the terminal")

	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadFromDefaultPath()
	}
	if err != nil {
		return nil, err
	}

	if opts.shell != "" {
		cfg.Shell = opts.shell
	}
	if opts.historyFile != "" {
		cfg.HistoryFile = opts.historyFile
	}
	if opts.favoritesFile != "" {
		cfg.FavoritesFile = opts.favoritesFile
	}
	return cfg, nil
}

// resolvePaths fills in the shell and file locations left empty by the config
func resolvePaths(cfg *config.Config) error {
	if cfg.Shell == "" {
		cfg.Shell = shell.Detect()
	}
	if cfg.HistoryFile != "" && cfg.FavoritesFile != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = shell.HistoryPath(home, cfg.Shell)
	}
	if cfg.FavoritesFile == "" {
		cfg.FavoritesFile = shell.FavoritesPath(home, cfg.Shell)
	}
	return nil
}

func run(opts options, query string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := resolvePaths(cfg); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	session := history.NewSession(
		store.NewLineFile(cfg.HistoryFile),
		store.NewLineFile(cfg.FavoritesFile),
		history.Options{DeleteFromFavorites: cfg.DeleteFromFavorites},
	)
	if err := session.Load(); err != nil {
		return err
	}
	logger.Debug("history loaded",
		zap.String("shell", cfg.Shell),
		zap.String("history", cfg.HistoryFile),
		zap.String("favorites", cfg.FavoritesFile),
		zap.Int("entries", len(session.Entries())))

	// capacity is set from the first window size message
	eng := engine.New(session, 1, logger)
	if query != "" {
		eng.SetQuery(query)
	}

	var watcher *store.Watcher
	if cfg.Watch {
		watcher = startWatcher(cfg.HistoryFile, logger)
		if watcher != nil {
			defer func() { _ = watcher.Stop() }()
		}
	}

	model := tui.NewModel(tui.ModelOptions{
		Engine:  eng,
		Config:  cfg,
		Watcher: watcher,
		Prompt:  shell.Prompt(),
	})

	interactive := shell.StdinIsTerminal()
	printMode := opts.printMode || !interactive

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if printMode {
		// stdout carries the selection
		progOpts = append(progOpts, tea.WithOutput(os.Stderr))
	}
	if !interactive {
		progOpts = append(progOpts, tea.WithInputTTY())
	}

	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}

	res, ok := final.(tui.Model).Accepted()
	if !ok {
		return nil
	}
	logger.Info("entry selected", zap.String("entry", res.Entry), zap.Bool("run", res.Run))
	return shell.Choose(printMode, os.Stdout).Inject(res.Entry, res.Run)
}

// startWatcher watches the history file, returning nil if watching fails
func startWatcher(path string, logger *zap.Logger) *store.Watcher {
	w, err := store.NewWatcher()
	if err != nil {
		logger.Warn("file watcher unavailable", zap.Error(err))
		return nil
	}
	if err := w.Add(path); err != nil {
		logger.Warn("cannot watch history file", zap.String("path", path), zap.Error(err))
		_ = w.Stop()
		return nil
	}
	w.Start()
	return w
}
