package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/todoadmin/internal/adapter"
	"github.com/mmcdole/todoadmin/internal/adapter/source"
	"github.com/mmcdole/todoadmin/internal/admin"
	"github.com/mmcdole/todoadmin/internal/listview"
	"github.com/mmcdole/todoadmin/internal/store"
	"github.com/mmcdole/todoadmin/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

// startUser opens a single user's todos instead of a configured screen
const startUser = "user"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runFlags are the flags shared by the screen commands
type runFlags struct {
	sort     string
	pageSize int
}

func newRootCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:           "todoadmin",
		Short:         "Terminal admin console for todos and users",
		Long:          "todoadmin: browse, sort, page and delete the todos and users of a todo backend",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(flags, "", "")
		},
	}

	cmd.PersistentFlags().StringVar(&flags.sort, "sort", "", "sort for the starting screen, as field or field:asc|desc")
	cmd.PersistentFlags().IntVar(&flags.pageSize, "page-size", 0, "rows per page (0 = use config)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "todos",
			Short: "Open the list of all todos",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return run(flags, adapter.ScreenTodos, "")
			},
		},
		&cobra.Command{
			Use:   "users",
			Short: "Open the list of users",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return run(flags, adapter.ScreenUsers, "")
			},
		},
		&cobra.Command{
			Use:   "user <id>",
			Short: "Open the todos of one user",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				return run(flags, startUser, args[0])
			},
		},
		newSetupCmd(),
		newClearCacheCmd(),
		newVersionCmd(),
	)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("todoadmin %s\n", Version)
		},
	}
}

func newClearCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Remove cached todo and user lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := adapter.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := adapter.ClearCache(cfg.Cache.Dir); err != nil {
				return err
			}
			cmd.Println("✓ Cache cleared")
			return nil
		},
	}
}

// isTerminal checks if the given file is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// bootstrap loads config and sets up the file logger.
// The returned cleanup closes the log file.
func bootstrap() (*adapter.Config, *slog.Logger, func(), error) {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	cleanup := func() {}
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	} else {
		cleanup = func() { _ = closer.Close() }
	}
	slog.SetDefault(logger)

	return cfg, logger, cleanup, nil
}

func run(flags *runFlags, start, ownerID string) error {
	if !isTerminal(os.Stdout) {
		return errors.New("todoadmin needs an interactive terminal")
	}

	cfg, logger, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting todoadmin", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	if start == "" {
		start = cfg.UI.DefaultScreen
	}
	opts, err := screenOptions(cfg, flags, start, logger)
	if err != nil {
		return err
	}

	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create backend client: %w", err)
	}

	st, err := store.NewCollectionStore(cfg.CacheDir(), cfg.Server.URL)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer st.Close()

	// Create services
	svc := admin.NewService(client, st, logger)
	queries := admin.NewQueries(st)

	// Create TUI model
	model := tui.NewModel(svc, queries, opts, startScreen(start, logger))
	if start == startUser {
		model = model.WithOwner(ownerID)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "screen", start, "pageSize", opts.PageSize)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// screenOptions merges config and flags into the per-screen settings.
// --sort applies to the screen the program starts on.
func screenOptions(cfg *adapter.Config, flags *runFlags, start string, logger *slog.Logger) (tui.ScreenOptions, error) {
	todoSort, err := listview.ParseSortExpression(cfg.UI.TodoSort)
	if err != nil {
		return tui.ScreenOptions{}, fmt.Errorf("invalid ui.todo_sort: %w", err)
	}
	userSort, err := listview.ParseSortExpression(cfg.UI.UserSort)
	if err != nil {
		return tui.ScreenOptions{}, fmt.Errorf("invalid ui.user_sort: %w", err)
	}

	if flags.sort != "" {
		spec, err := listview.ParseSortExpression(flags.sort)
		if err != nil {
			return tui.ScreenOptions{}, fmt.Errorf("invalid --sort: %w", err)
		}
		if start == adapter.ScreenUsers {
			userSort = spec
		} else {
			todoSort = spec
		}
	}

	pageSize := cfg.UI.PageSize
	if flags.pageSize < 0 {
		return tui.ScreenOptions{}, fmt.Errorf("--page-size must be >= 0, got %d", flags.pageSize)
	}
	if flags.pageSize > 0 {
		pageSize = flags.pageSize
	}

	return tui.ScreenOptions{
		PageSize: pageSize,
		TodoSort: todoSort,
		UserSort: userSort,
		Logger:   logger,
	}, nil
}

func startScreen(start string, logger *slog.Logger) tui.ScreenID {
	switch start {
	case adapter.ScreenTodos:
		return tui.ScreenAllTodos
	case adapter.ScreenUsers:
		return tui.ScreenAllUsers
	case startUser:
		return tui.ScreenUserTodos
	default:
		logger.Warn("unknown default screen, using todos", "screen", start)
		return tui.ScreenAllTodos
	}
}
