package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/revoraorg/librevshare-go/auth"
	"github.com/revoraorg/librevshare-go/config"
	"github.com/revoraorg/librevshare-go/events"
	"github.com/revoraorg/librevshare-go/revshare"
	"github.com/revoraorg/librevshare-go/store"
)

var (
	cfgFile string
	dataDir string
	cfg     config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "revshare",
	Short: "Revenue-share offering registry tool",
	Long: `revshare manages a persisted registry of revenue-share offerings and
per-token investor blacklists, and emits revenue-report notifications for
off-chain distribution engines.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is {data-dir}/revshare.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "data directory")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".revshare"
	}
	return filepath.Join(home, ".revshare")
}

func initConfig() error {
	path := cfgFile
	if path == "" {
		path = config.ConfigPath(dataDir)
	}

	loaded, err := config.LoadConfig(path)
	switch {
	case err == nil:
		cfg = loaded
	case errors.Is(err, config.ErrConfigNotFound) && cfgFile == "":
		cfg = config.DefaultConfig(dataDir)
	default:
		return err
	}

	logger = newLogger(cfg.LogLevel)
	return nil
}

// newLogger builds a JSON slog logger on stderr at the configured level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// openRegistry wires a registry from the loaded config. The returned cleanup
// closes the store and the event log.
func openRegistry() (*revshare.Registry, func(), error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	emitter, closeEmitter, err := openEmitter()
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	// Local tooling: the operator controls the store, so every principal is
	// accepted. Hosted deployments should front this with a signature check.
	reg, err := revshare.New(st, auth.AllowAll{}, emitter)
	if err != nil {
		_ = st.Close()
		closeEmitter()
		return nil, nil, err
	}

	cleanup := func() {
		if err := st.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
		closeEmitter()
	}
	return reg, cleanup, nil
}

func openStore() (store.Store, error) {
	switch cfg.Store {
	case "memory":
		return store.NewMemStore(), nil
	case "leveldb":
		return store.OpenLevelStore(filepath.Join(cfg.DataDir, "leveldb"))
	default:
		return store.OpenBoltStore(filepath.Join(cfg.DataDir, "state.db"))
	}
}

func openEmitter() (events.Emitter, func(), error) {
	if cfg.EventLog == "" {
		return events.NewJSONEmitter(os.Stdout), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.EventLog), 0700); err != nil {
		return nil, nil, fmt.Errorf("create event log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.EventLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			logger.Warn("close event log", "error", err)
		}
	}
	return events.NewJSONEmitter(f), closeFn, nil
}

// writeJSON prints v as indented JSON on the command's stdout.
func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
