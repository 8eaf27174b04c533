package cmd

import (
	"bbsync/internal/autostart"
	"bbsync/internal/config"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Run the watcher on login",
	RunE: func(cmd *cobra.Command, args []string) error {
		execPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to get executable path: %w", err)
		}

		dir, err := filepath.Abs(watchDir)
		if err != nil {
			return fmt.Errorf("invalid watch dir: %w", err)
		}
		if err := config.DirExists(dir); err != nil {
			return err
		}

		as := autostart.New()
		if installed, err := as.IsInstalled(); err == nil && installed {
			fmt.Println("bbsync watcher already installed, updating")
		}

		if err := as.Install(execPath, autostart.WatchArgs(dir, cfg.Host, cfg.Port, token)); err != nil {
			return err
		}

		fmt.Println("bbsync watcher registered for autostart")
		return nil
	},
}

func init() {
	addTargetFlags(installCmd)
	rootCmd.AddCommand(installCmd)
}
