// Copyright (c) 2026 Digitcipher Team
// Digitcipher - six-digit code cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading and the shared
// services used by every subcommand.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toeirei/digitcipher/buildvars"
	"github.com/toeirei/digitcipher/internal/config"
	"github.com/toeirei/digitcipher/internal/core"
	"github.com/toeirei/digitcipher/internal/db"
	"github.com/toeirei/digitcipher/internal/i18n"
	"github.com/toeirei/digitcipher/internal/logging"
	"github.com/toeirei/digitcipher/internal/tui"
)

// app holds the services shared by the commands of one root command.
type app struct {
	cfg     config.Config
	verbose bool

	store     db.Store
	storeErr  error
	storeOpen bool
}

func (a *app) setupDefaultServices(cmd *cobra.Command, _ []string) error {
	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), explicitPath)
	// A missing file is expected on first run; write the defaults so the
	// user has something to edit.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&a.cfg, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if a.cfg.Language == "" {
		a.cfg.Language = "en"
	}
	i18n.Init(a.cfg.Language)

	if err := logging.SetLevel(a.cfg.Log.Level); err != nil {
		logging.Warnf("ignoring log.level: %v", err)
	}
	if a.verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}
	return nil
}

// historyStore opens the configured store on first use. It returns nil
// without error when history is disabled.
func (a *app) historyStore() (db.Store, error) {
	if !a.cfg.History.Enabled {
		return nil, nil
	}
	if !a.storeOpen {
		a.storeOpen = true
		a.store, a.storeErr = db.NewStoreFromDSN(a.cfg.Database.Type, a.cfg.Database.Dsn)
		if a.storeErr != nil {
			a.storeErr = fmt.Errorf("open history database: %w", a.storeErr)
		}
	}
	return a.store, a.storeErr
}

// requireHistory is historyStore for commands that cannot work without one.
func (a *app) requireHistory() (db.Store, error) {
	st, err := a.historyStore()
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.New(i18n.T("cli.history_disabled"))
	}
	return st, nil
}

// converter records into the history store when one is available. An
// unavailable store only costs the history, never the conversion.
func (a *app) converter() *core.Converter {
	st, err := a.historyStore()
	if err != nil {
		logging.Warnf("history disabled for this run: %v", err)
		return core.NewConverter(nil)
	}
	if st == nil {
		return core.NewConverter(nil)
	}
	return core.NewConverter(st)
}

func (a *app) saveLanguage(lang string) error {
	a.cfg.Language = lang
	return config.WriteConfigFile(&a.cfg, false)
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logging.Warnf("closing history database: %v", err)
		}
		a.store = nil
	}
	a.storeOpen = false
}

// Execute runs the CLI. The caller handles process exit.
func Execute() error {
	a := &app{}
	defer a.close()
	return a.rootCmd().Execute()
}

// NewRootCmd returns a fresh root command, used by Execute and by tests.
func NewRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digitcipher",
		Short: "Encode and decode six-digit numeric codes.",
		Long: `digitcipher obfuscates six-digit numbers with a reversible transform:
each digit is shifted by 7 modulo 10, then digit positions are swapped
in pairs (1<->3, 2<->4, 5<->6). Decoding applies the exact inverse.

This is an obfuscation scheme, not encryption.

Running without a subcommand launches the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := tui.Options{Converter: a.converter(), SaveLanguage: a.saveLanguage}
			if st, _ := a.historyStore(); st != nil {
				opts.History = st
			}
			return tui.Run(opts)
		},
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Message language ("en", "es")`)
	cmd.PersistentFlags().Bool("history.enabled", true, "Record conversions in the history database")
	cmd.PersistentFlags().String("database.type", "sqlite", "History database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", config.DefaultDatabaseDSN(), "History database connection string (DSN)")
	cmd.PersistentFlags().String("log.level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.convertCmd(core.DirectionEncode),
		a.convertCmd(core.DirectionDecode),
		a.validateCmd(),
		a.historyCmd(),
		a.dbMaintainCmd(),
		newVersionCmd(),
	)
	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		// No config or database needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date. If info is nil it reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := buildvars.CommitOrDefault("dev")
	resolvedDate := buildvars.Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/digitcipher" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// Last resort: show the linker-provided commit to aid support.
	if resolvedVersion == "dev" && buildvars.Commit != "" {
		resolvedVersion = buildvars.Commit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
