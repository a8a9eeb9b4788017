// Package root contains the root command and shared wiring for the
// application.
package root

import (
	"fmt"

	"fintrack/bankstmt/internal/categorizer"
	"fintrack/bankstmt/internal/config"
	"fintrack/bankstmt/internal/kvstore"
	"fintrack/bankstmt/internal/logging"
	"fintrack/bankstmt/internal/mappingstore"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger for commands
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Store is the shared mapping store
	Store *mappingstore.MappingStore

	sqliteStore *kvstore.SQLiteStore

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bankstmt",
		Short: "Parse bank statement exports and categorize transactions.",
		Long: `bankstmt parses CSV bank statement exports using configurable
field mappings and auto-categorizes transactions with keyword rules.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankstmt!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if sqliteStore != nil {
				if err := sqliteStore.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close store")
				}
			}
		},
	}
)

// Init initializes the root command flags.
func Init() {
	Cmd.PersistentFlags().String("log-level", "", "Override configured log level")
}

func setup(cmd *cobra.Command) error {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	Cfg = cfg

	level := cfg.Log.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	Log = logging.NewLogrusAdapter(level, cfg.Log.Format)
	logging.SetDefaultLogger(Log)

	kv, err := openStore(cfg)
	if err != nil {
		return err
	}
	Store = mappingstore.New(kv, Log)
	Store.SetDefaultMappingID(cfg.Parser.DefaultMapping)
	return nil
}

func openStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		s, err := kvstore.OpenSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite store: %w", err)
		}
		sqliteStore = s
		return s, nil
	case config.BackendMemory:
		return kvstore.NewMemoryStore(), nil
	default:
		return kvstore.NewFileStore(cfg.Storage.Directory)
	}
}

// NewCategorizer builds a categorizer over the shared store, attaching the
// AI fallback when it is enabled and an API key is configured.
func NewCategorizer() *categorizer.Categorizer {
	c := categorizer.New(Store, Log)
	if Cfg != nil && Cfg.AI.Enabled && Cfg.AI.APIKey != "" {
		c.SetAIClient(categorizer.NewGeminiClient(Cfg.AI.APIKey, Cfg.AI.Model, Log))
	}
	return c
}
