package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/chris-regnier/protocolctl/internal/config"
	"github.com/chris-regnier/protocolctl/internal/daily"
	"github.com/chris-regnier/protocolctl/internal/logging"
	"github.com/chris-regnier/protocolctl/internal/storage"
	"github.com/chris-regnier/protocolctl/internal/storage/jsonfile"
	"github.com/chris-regnier/protocolctl/internal/storage/sqlite"
	"github.com/chris-regnier/protocolctl/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.Storage
	svc            *daily.Service
)

var rootCmd = &cobra.Command{
	Use:   "protocolctl",
	Short: "A daily protocol and biometrics tracker",
	Long: `protocolctl tracks a fixed daily routine checklist, training, sleep and
cognitive self-ratings, and derives adherence, knee-pain warnings and social
jet lag from the history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		logging.Setup(logging.SetupParams{
			LogFileName: appConfig.LogFile,
			LogLevel:    appConfig.LogLevel,
		})

		store, err = openStore(appConfig)
		if err != nil {
			return err
		}
		svc = daily.NewService(store)

		logrus.WithFields(logrus.Fields{
			"storage":  appConfig.Storage,
			"data_dir": appConfig.DataDir,
		}).Debug("storage ready")
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to today's summary
			return exitOnError(todayRun(os.Stdout, ""))
		}
		return ui.RunDashboard(svc, ui.DashboardConfig{
			MaxWidth: appConfig.MaxWidth,
			Theme:    ui.ResolveTheme(appConfig.Theme),
		})
	},
}

func openStore(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage {
	case config.BackendJSON:
		s, err := jsonfile.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing json storage: %w", err)
		}
		return s, nil
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initializing sqlite storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage)
	}
}

// exitCode maps an error to the process exit status: 1 for bad input or a
// missing log, 2 for anything the storage layer failed on.
func exitCode(err error) int {
	switch {
	case errors.Is(err, storage.ErrValidation), errors.Is(err, storage.ErrNotFound):
		return 1
	default:
		return 2
	}
}

// exitOnError prints err and exits with its exit code. A nil error returns nil.
func exitOnError(err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(exitCode(err))
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (json|sqlite)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
