package cmd

import (
	"bbsync/internal/logger"
	"bbsync/internal/metrics"
	"bbsync/internal/pipeline"
	"bbsync/internal/repository"
	"bbsync/internal/syncer"
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upload all files once",
	RunE: func(cmd *cobra.Command, args []string) error {
		defer logger.Sync()

		opts, ok, err := loadOptions()
		if err != nil || !ok {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Log.Info("starting full sync",
			zap.String("dir", opts.WatchDir),
			zap.String("api", opts.APIAddr()))

		s := newSyncer(opts, pipeline.NewChecksumFilter(), metrics.New())
		results, err := s.FullSync(ctx)
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", opts.WatchDir, err)
		}

		repo := repository.NewHistoryRepository()

		var synced, failed int
		for _, r := range results {
			if err := repo.Save(r); err != nil {
				logger.Log.Warn("failed to save history",
					zap.Error(err))
			}

			if r.Succeeded() {
				synced++
			} else {
				failed++
			}
		}

		fmt.Printf("done: %d synced, %d failed\n", synced, failed)
		return syncer.Failures(results)
	},
}

func init() {
	addTargetFlags(syncCmd)
	rootCmd.AddCommand(syncCmd)
}
