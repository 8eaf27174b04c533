package cmd

import (
	"bbsync/internal/model"
	"bbsync/internal/repository"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running watcher's status",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := http.Get(daemonURL("/status"))
		if err != nil {
			return fmt.Errorf("watcher not running: %w", err)
		}

		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		var result struct {
			Session model.SessionSnapshot `json:"session"`
			Stats   repository.Stats      `json:"stats"`
		}

		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("failed to decode status response: %w", err)
		}

		printTable(os.Stdout, []string{"field", "value"}, statusRows(result.Session, result.Stats, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
