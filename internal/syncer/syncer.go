// Package syncer runs one file through the full pipeline: name
// normalization, transform, content fixes, upload and the RAM header write
// back.
package syncer

import (
	"bbsync/internal/client"
	"bbsync/internal/config"
	"bbsync/internal/header"
	"bbsync/internal/logger"
	"bbsync/internal/metrics"
	"bbsync/internal/model"
	"bbsync/internal/pipeline"
	"bbsync/internal/script"
	"bbsync/internal/transform"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Uploader interface {
	Upload(ctx context.Context, filename, code string) (*client.UploadResponse, error)
}

type Deps struct {
	Transformers transform.Set
	Uploader     Uploader
	Checksums    *pipeline.ChecksumFilter
	Metrics      *metrics.Metrics
	IgnoreList   []string
}

type Syncer struct {
	opts config.Options
	deps Deps
}

func New(opts config.Options, deps Deps) *Syncer {
	return &Syncer{opts: opts, deps: deps}
}

// Sync uploads the file at path. Failures are reported in the result and
// logged; they never affect later calls.
func (s *Syncer) Sync(ctx context.Context, path string) model.SyncResult {
	start := time.Now()

	if s.deps.Metrics != nil {
		s.deps.Metrics.JobStarted()
		defer s.deps.Metrics.JobDone()
	}

	result := s.sync(ctx, path)
	result.Duration = time.Since(start)

	s.record(result)
	return result
}

func (s *Syncer) sync(ctx context.Context, path string) model.SyncResult {
	rel, err := filepath.Rel(s.opts.WatchDir, path)
	if err != nil {
		rel = path
	}

	result := model.SyncResult{Job: model.NewSyncJob(path, rel)}

	filename, err := script.Normalize(rel)
	if err != nil {
		return fail(result, model.FailureInvalidName,
			fmt.Errorf("failed to copy %q, please check file name: %w", rel, err))
	}
	result.Job.CanonicalFilename = filename

	if !script.Allowed(filename) {
		return fail(result, model.FailureDisallowed,
			fmt.Errorf("%s not allowed to sync to the game", filename))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fail(result, model.FailureUnreadable,
			fmt.Errorf("failed to copy %s, could not read file: %w", rel, err))
	}

	strategy := transform.Classify(string(data))
	result.Strategy = strategy.String()

	code, err := s.deps.Transformers.For(strategy).Transform(ctx, path, string(data))
	if err != nil {
		if s.deps.Metrics != nil {
			s.deps.Metrics.RecordTransformFailure(strategy.String())
		}

		return fail(result, model.FailureTransform,
			fmt.Errorf("failed to %s file %s: %w", verb(strategy), rel, err))
	}

	uploadStart := time.Now()
	resp, err := s.deps.Uploader.Upload(ctx, filename, script.Fix(code))
	if s.deps.Metrics != nil {
		s.deps.Metrics.ObserveUpload(time.Since(uploadStart))
	}
	if err != nil {
		if _, ok := errors.AsType[*client.UnreachableError](err); ok {
			return fail(result, model.FailureUnreachable, err)
		}

		return fail(result, model.FailureRejected, err)
	}

	if resp.Data == nil {
		logger.Log.Warn(fmt.Sprintf("saved %s file, no ram usage reported", past(strategy)),
			zap.String("job", result.Job.ID.String()),
			zap.String("filename", filename))

		if s.deps.Checksums != nil {
			s.deps.Checksums.Record(path, data)
		}
		return result
	}

	result.RamUsage = resp.RamUsage()

	logger.Log.Info(fmt.Sprintf("saved %s file", past(strategy)),
		zap.String("job", result.Job.ID.String()),
		zap.String("filename", filename),
		zap.Float64("ram_gb", result.RamUsage))

	s.annotate(path, data, result.RamUsage)
	return result
}

// annotate writes the RAM header back into the source. A failure here does
// not undo a successful upload. The recorded checksum is that of the uploaded
// content with its header, never what is on disk, so an edit saved during the
// upload still reaches the next sync.
func (s *Syncer) annotate(path string, uploaded []byte, ramUsage float64) {
	if _, err := header.Annotate(path, ramUsage); err != nil {
		logger.Log.Warn("failed to update ram usage header",
			zap.String("path", path),
			zap.Error(err))

		if s.deps.Checksums != nil {
			s.deps.Checksums.Forget(path)
		}
		return
	}

	if s.deps.Checksums == nil {
		return
	}

	annotated, _ := header.Render(string(uploaded), ramUsage)
	s.deps.Checksums.Record(path, []byte(annotated))
}

func (s *Syncer) record(result model.SyncResult) {
	if s.deps.Metrics != nil {
		outcome := "success"
		if !result.Succeeded() {
			outcome = string(result.Failure)
		}
		s.deps.Metrics.RecordResult(outcome)
	}

	if result.Succeeded() {
		return
	}

	fields := []zap.Field{
		zap.String("job", result.Job.ID.String()),
		zap.String("path", result.Job.SourcePath),
		zap.String("failure", string(result.Failure)),
		zap.Error(result.Err),
	}
	if result.Strategy != "" {
		fields = append(fields, zap.String("strategy", result.Strategy))
	}

	switch result.Failure {
	case model.FailureDisallowed, model.FailureInvalidName:
		logger.Log.Warn("skipped file", fields...)
	default:
		logger.Log.Error("sync failed", fields...)
	}
}

// FullSync runs every file under the watched directory through Sync once.
// Files the game would not accept are skipped without being reported.
func (s *Syncer) FullSync(ctx context.Context) ([]model.SyncResult, error) {
	var results []model.SyncResult

	err := filepath.WalkDir(s.opts.WatchDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(s.opts.WatchDir, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if pipeline.Ignored(rel, s.deps.IgnoreList) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if name, err := script.Normalize(rel); err == nil && !script.Allowed(name) {
			logger.Log.Debug("not a game file, skipping",
				zap.String("path", rel))
			return nil
		}

		results = append(results, s.Sync(ctx, path))
		return nil
	})

	return results, err
}

// Failures combines the errors of all failed results.
func Failures(results []model.SyncResult) error {
	var errs error
	for _, r := range results {
		if !r.Succeeded() {
			errs = multierr.Append(errs, r.Err)
		}
	}

	return errs
}

func fail(result model.SyncResult, kind model.FailureKind, err error) model.SyncResult {
	result.Failure = kind
	result.Err = err
	return result
}

func verb(strategy transform.Strategy) string {
	if strategy.Bundles() {
		return "bundle"
	}

	return "transform"
}

func past(strategy transform.Strategy) string {
	if strategy.Bundles() {
		return "bundled"
	}

	return "transformed"
}
