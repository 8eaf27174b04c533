package cmd

import (
	"bbsync/internal/model"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	historyN      int
	historyFailed bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent uploads",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := fmt.Sprintf("%s?n=%d", daemonURL("/history"), historyN)
		if historyFailed {
			url += "&failed=true"
		}
		resp, err := http.Get(url)
		if err != nil {
			return fmt.Errorf("watcher not running: %w", err)
		}

		defer func(Body io.ReadCloser) {
			_ = Body.Close()
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("history unavailable: %s", resp.Status)
		}

		var histories []model.History
		if err := json.NewDecoder(resp.Body).Decode(&histories); err != nil {
			return err
		}

		if len(histories) == 0 {
			fmt.Println("no history yet")
			return nil
		}

		printTable(os.Stdout,
			[]string{"", "time", "strategy", "file", "ram", "error"},
			historyRows(histories))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyN, "limit", "n", 20, "number of history entries to show")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "show failed uploads only")
	rootCmd.AddCommand(historyCmd)
}
