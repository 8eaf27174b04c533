package daemon

import (
	"bbsync/internal/config"
	"bbsync/internal/logger"
	"bbsync/internal/model"
	"bbsync/internal/pipeline"
	"bbsync/internal/repository"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Syncer interface {
	Sync(ctx context.Context, path string) model.SyncResult
}

type RunnerConfig struct {
	Debounce   time.Duration
	BufferSize int
	IgnoreList []string
}

// Runner is the watch loop. It waits for filesystem events, debounces them
// per path and starts one sync goroutine per settled change.
type Runner struct {
	opts      config.Options
	cfg       RunnerConfig
	syncer    Syncer
	checksums *pipeline.ChecksumFilter
	history   *repository.HistoryRepository
	session   *Session
	jobs      sync.WaitGroup
}

func NewRunner(opts config.Options, cfg RunnerConfig, s Syncer, checksums *pipeline.ChecksumFilter, history *repository.HistoryRepository) *Runner {
	if checksums == nil {
		checksums = pipeline.NewChecksumFilter()
	}

	return &Runner{
		opts:      opts,
		cfg:       cfg,
		syncer:    s,
		checksums: checksums,
		history:   history,
		session:   NewSession(opts),
	}
}

func (r *Runner) Session() *Session {
	return r.session
}

// Run blocks until ctx is cancelled or the watcher shuts down. Only a
// failure to start watching is returned; per-file failures are logged.
func (r *Runner) Run(ctx context.Context) error {
	w, err := NewWatcher(r.cfg.BufferSize)
	if err != nil {
		return err
	}

	if err := w.Watch(r.opts.WatchDir); err != nil {
		w.Stop()
		return err
	}

	filtered := pipeline.Filter(w.Events(), r.opts.WatchDir, r.cfg.IgnoreList)
	debounced := pipeline.Debounce(filtered, r.cfg.Debounce)
	changed := r.checksums.Run(debounced)

	defer func() {
		w.Stop()
		for range changed {
		}
		r.jobs.Wait()
	}()

	logger.Log.Info("watching for changes",
		zap.String("dir", r.opts.WatchDir),
		zap.String("api", r.opts.APIAddr()))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-changed:
			if !ok {
				return nil
			}
			r.dispatch(ctx, event.Path())
		}
	}
}

func (r *Runner) dispatch(ctx context.Context, path string) {
	r.session.Begin()
	r.jobs.Add(1)

	go func() {
		defer r.jobs.Done()

		result := r.syncer.Sync(ctx, path)
		r.session.RecordSync(result)

		if r.history == nil {
			return
		}

		if err := r.history.Save(result); err != nil {
			logger.Log.Warn("failed to save history",
				zap.Error(err))
		}
	}()
}
