package pipeline

import (
	"bbsync/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modify(paths ...string) model.ChangeEvent {
	return model.ChangeEvent{Kind: model.KindModify, Paths: paths, Timestamp: time.Now()}
}

func collect(t *testing.T, ch <-chan model.ChangeEvent, wait time.Duration) []model.ChangeEvent {
	t.Helper()

	var got []model.ChangeEvent
	timeout := time.After(wait)
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, ev)
		case <-timeout:
			return got
		}
	}
}

func TestDebounce_CoalescesSamePath(t *testing.T) {
	inCh := make(chan model.ChangeEvent, 10)
	outCh := Debounce(inCh, 100*time.Millisecond)

	first := modify("/w/main.ts")
	second := modify("/w/main.ts")
	second.Timestamp = first.Timestamp.Add(time.Millisecond)

	inCh <- first
	time.Sleep(20 * time.Millisecond)
	inCh <- second

	got := collect(t, outCh, 400*time.Millisecond)
	require.Len(t, got, 1)
	assert.Equal(t, second.Timestamp, got[0].Timestamp)
}

func TestDebounce_DistinctPathsDoNotCoalesce(t *testing.T) {
	inCh := make(chan model.ChangeEvent, 10)
	outCh := Debounce(inCh, 100*time.Millisecond)

	inCh <- modify("/w/a.ts")
	inCh <- modify("/w/b.ts")
	inCh <- modify("/w/a.ts")

	got := collect(t, outCh, 400*time.Millisecond)
	require.Len(t, got, 2)

	paths := []string{got[0].Path(), got[1].Path()}
	assert.ElementsMatch(t, []string{"/w/a.ts", "/w/b.ts"}, paths)
}

func TestDebounce_WaitsForQuiet(t *testing.T) {
	inCh := make(chan model.ChangeEvent, 10)
	outCh := Debounce(inCh, 100*time.Millisecond)

	start := time.Now()
	for i := 0; i < 5; i++ {
		inCh <- modify("/w/main.ts")
		time.Sleep(40 * time.Millisecond)
	}

	select {
	case <-outCh:
		assert.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for debounced event")
	}
}

func TestDebounce_FlushesOnClose(t *testing.T) {
	inCh := make(chan model.ChangeEvent, 10)
	outCh := Debounce(inCh, time.Hour)

	inCh <- modify("/w/main.ts")
	close(inCh)

	got := collect(t, outCh, time.Second)
	require.Len(t, got, 1)
	assert.Equal(t, "/w/main.ts", got[0].Path())
}
