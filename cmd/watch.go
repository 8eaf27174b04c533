package cmd

import (
	"bbsync/internal/daemon"
	"bbsync/internal/logger"
	"bbsync/internal/metrics"
	"bbsync/internal/pipeline"
	"bbsync/internal/repository"
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and upload changed scripts",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	opts, ok, err := loadOptions()
	if err != nil || !ok {
		return err
	}

	m := metrics.New()
	checksums := pipeline.NewChecksumFilter()
	histRepo := repository.NewHistoryRepository()

	runner := daemon.NewRunner(opts, daemon.RunnerConfig{
		Debounce:   cfg.Debounce,
		BufferSize: cfg.BufferSize,
		IgnoreList: cfg.IgnoreList,
	}, newSyncer(opts, checksums, m), checksums, histRepo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.DaemonPort != 0 {
		srv := daemon.NewServer(runner.Session(), histRepo, m, cfg.DaemonPort)
		srv.Start()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				logger.Log.Warn("failed to stop control server", zap.Error(err))
			}
		}()

		go func() {
			select {
			case <-srv.StopCh():
				logger.Log.Info("stop requested via API")
				stop()
			case <-ctx.Done():
			}
		}()
	}

	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Log.Info("shutting down")
	return nil
}

func init() {
	addTargetFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}
