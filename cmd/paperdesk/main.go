// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperdesk desktop application.
// Implements: prd006-shell (CLI surface);
//
//	docs/ARCHITECTURE § Shell.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperdesk/internal/gui"
	"github.com/pdiddy/paperdesk/internal/history"
	"github.com/pdiddy/paperdesk/internal/logging"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd launches the interactive application. Conversion behavior itself
// takes no flags; everything beyond the config file lives in the window.
var rootCmd = &cobra.Command{
	Use:   "paperdesk",
	Short: "Desktop PDF to Markdown converter",
	Long: `paperdesk opens a window where you pick a PDF file and obtain its content
as Markdown (layout-aware structure engine) or plain text (simpler per-page
engine). Conversion runs in the background; the converted text can be saved
to a file of your choosing.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperdesk.yaml or ~/.config/paperdesk/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperdesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperdesk"))
		}
	}

	viper.SetEnvPrefix("PAPERDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("conversion.backend", string(types.BackendStructure))
	viper.SetDefault("conversion.accurate", false)
	viper.SetDefault("save.chunk_size", 1<<20)
	viper.SetDefault("logging.file", "converter.log")
	viper.SetDefault("history.path", "paperdesk.db")
	viper.SetDefault("history.max_entries", 200)
	viper.SetDefault("window.width", 800)
	viper.SetDefault("window.height", 600)
}

func loadConfig() (types.AppConfig, error) {
	var cfg types.AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// run builds the application and blocks in the event loop until the window
// closes. Any startup failure propagates and exits the process non-zero.
func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := history.NewStore(cfg.History)
	if err != nil {
		// The converter works without history; log and continue.
		logger.Warn("conversion history unavailable", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	w, err := gui.New(cfg, store, logger, version)
	if err != nil {
		logger.Error("could not construct application window", "error", err)
		return err
	}

	logger.Info("paperdesk starting", "version", version, "backend", string(cfg.Conversion.Backend))
	w.Run()
	logger.Info("paperdesk exiting")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
