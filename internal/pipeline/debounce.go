package pipeline

import (
	"bbsync/internal/model"
	"time"
)

// Debounce holds each event until its path has been quiet for delay, then
// emits only the latest one. Paths are debounced independently. Pending
// events are flushed when inCh closes.
func Debounce(inCh <-chan model.ChangeEvent, delay time.Duration) <-chan model.ChangeEvent {
	outCh := make(chan model.ChangeEvent, cap(inCh))

	type fired struct {
		path string
		seq  uint64
	}

	type pending struct {
		event model.ChangeEvent
		timer *time.Timer
		seq   uint64
	}

	go func() {
		defer close(outCh)

		fireCh := make(chan fired)
		doneCh := make(chan struct{})
		defer close(doneCh)

		events := make(map[string]*pending)
		var seq uint64

		for {
			select {
			case event, ok := <-inCh:
				if !ok {
					for path, p := range events {
						p.timer.Stop()
						delete(events, path)
						outCh <- p.event
					}
					return
				}

				path := event.Path()
				if p, exists := events[path]; exists {
					p.timer.Stop()
				}

				seq++
				f := fired{path: path, seq: seq}
				events[path] = &pending{
					event: event,
					seq:   seq,
					timer: time.AfterFunc(delay, func() {
						select {
						case fireCh <- f:
						case <-doneCh:
						}
					}),
				}

			case f := <-fireCh:
				p, exists := events[f.path]
				if !exists || p.seq != f.seq {
					continue
				}

				delete(events, f.path)
				outCh <- p.event
			}
		}
	}()

	return outCh
}
