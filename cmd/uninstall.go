package cmd

import (
	"bbsync/internal/autostart"
	"fmt"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the login watcher",
	RunE: func(cmd *cobra.Command, args []string) error {
		as := autostart.New()
		installed, err := as.IsInstalled()
		if err != nil {
			return err
		}
		if !installed {
			fmt.Println("bbsync watcher not installed")
			return nil
		}

		if err := as.Uninstall(); err != nil {
			return err
		}

		fmt.Println("bbsync watcher autostart removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
