package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/balkashynov/huepick/internal/clipboard"
	"github.com/balkashynov/huepick/internal/config"
	"github.com/balkashynov/huepick/internal/db"
	"github.com/balkashynov/huepick/internal/i18n"
	"github.com/balkashynov/huepick/internal/state"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagDB        string
	flagList      string
	flagEphemeral bool
	flagVerbose   int
)

var log = commonlog.GetLogger("huepick.commands")

var rootCmd = &cobra.Command{
	Use:   "huepick",
	Short: "A terminal color picker",
	Long: `huepick converts hex colors to RGB, HSL and ARGB, copies them to the clipboard
and keeps up to 20 saved colors between sessions.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          withSession(runPick),
}

// session is everything a command needs for one invocation
type session struct {
	cfg     *config.Config
	lang    string
	list    string
	store   state.Store
	manager *state.Manager
	clip    *clipboard.Tracker
	close   func() error
}

// t translates key into the session language
func (s *session) t(key string) string {
	return i18n.T(s.lang, key)
}

// copier is swapped out by tests
var copier clipboard.Copier = clipboard.System{}

// openSession loads the config, sets up logging and opens the store.
// The saved list is restored before it is returned.
func openSession(interactive bool) (*session, error) {
	cfg, cfgErr := config.Load()

	configureLogging(cfg, interactive)
	if cfgErr != nil {
		log.Warningf("%s", cfgErr)
	}

	s := &session{
		cfg:   cfg,
		lang:  i18n.Detect(cfg.Language),
		close: func() error { return nil },
	}

	if flagEphemeral {
		s.store = state.NewMemoryStore()
	} else {
		path := flagDB
		if path == "" {
			path = cfg.Database
		}
		if path == "" {
			var err error
			if path, err = db.DefaultPath(); err != nil {
				return nil, fmt.Errorf("failed to get database path: %w", err)
			}
		}
		store, err := db.Open(path)
		if err != nil {
			return nil, err
		}
		s.store = store
		s.close = store.Close
	}

	list := cfg.List
	if flagList != "" {
		list = flagList
	}

	s.list = list
	s.manager = state.New(s.store,
		state.WithDefaultColor(cfg.DefaultColor),
		state.WithKey(list),
		state.WithLogger(commonlog.GetLogger("huepick.state")),
	)
	s.manager.Restore()
	s.clip = clipboard.NewTracker(copier)

	return s, nil
}

// configureLogging sends logs to the configured file. Without one, commands
// log to stderr and the TUI stays silent so it does not draw over the screen.
func configureLogging(cfg *config.Config, interactive bool) {
	verbosity := cfg.Verbosity + flagVerbose
	if cfg.LogFile != "" {
		commonlog.Configure(verbosity, &cfg.LogFile)
		return
	}
	if interactive {
		commonlog.Configure(-4, nil)
		return
	}
	commonlog.Configure(verbosity, nil)
}

// withSession wraps a command function to open a session first
func withSession(fn func(*cobra.Command, []string, *session) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(isInteractive(cmd))
		if err != nil {
			return err
		}
		defer s.close()
		return fn(cmd, args, s)
	}
}

// isInteractive reports whether cmd runs the TUI
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "pick"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "huepick %s (%s, %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&flagList, "list", "", "name of the saved color list")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "keep saved colors in memory only")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
