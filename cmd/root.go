package cmd

import (
	"bbsync/internal/config"
	"bbsync/internal/db"
	"bbsync/internal/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfg   *config.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:          "bbsync",
	Short:        "Sync local scripts into Bitburner",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		logger.Init(debug)

		for _, key := range []string{"host", "port"} {
			if f := cmd.Flags().Lookup(key); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		clientCmds := map[string]bool{
			"status": true, "stop": true, "history": true,
			"install": true, "uninstall": true,
		}
		if !clientCmds[cmd.Name()] {
			if err := db.Init(cfg.DBPath); err != nil {
				return err
			}
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func daemonURL(path string) string {
	return fmt.Sprintf("http://localhost:%d%s", cfg.DaemonPort, path)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}
