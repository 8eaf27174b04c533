package pipeline

import (
	"bbsync/internal/logger"
	"bbsync/internal/model"
	"bytes"
	"crypto/sha256"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

// ChecksumFilter drops events for files whose content matches what was last
// recorded for them. Recording is left to the caller so that only content
// the game actually accepted is remembered.
type ChecksumFilter struct {
	mu    sync.Mutex
	cache map[string][]byte
}

func NewChecksumFilter() *ChecksumFilter {
	return &ChecksumFilter{
		cache: make(map[string][]byte),
	}
}

func (cf *ChecksumFilter) Run(inCh <-chan model.ChangeEvent) <-chan model.ChangeEvent {
	outCh := make(chan model.ChangeEvent, cap(inCh))

	go func() {
		defer close(outCh)

		for event := range inCh {
			if cf.Unchanged(event.Path()) {
				logger.Log.Debug("checksum unchanged, skipping",
					zap.String("path", event.Path()))
				continue
			}
			outCh <- event
		}
	}()

	return outCh
}

func (cf *ChecksumFilter) Unchanged(path string) bool {
	cf.mu.Lock()
	prev, exists := cf.cache[path]
	cf.mu.Unlock()

	if !exists {
		return false
	}

	sum, err := checksum(path)
	if err != nil {
		return false
	}

	return bytes.Equal(prev, sum)
}

func (cf *ChecksumFilter) Record(path string, content []byte) {
	sum := sha256.Sum256(content)

	cf.mu.Lock()
	cf.cache[path] = sum[:]
	cf.mu.Unlock()
}

func (cf *ChecksumFilter) Forget(path string) {
	cf.mu.Lock()
	delete(cf.cache, path)
	cf.mu.Unlock()
}

func checksum(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}
