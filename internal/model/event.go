package model

import "time"

type EventKind string

const (
	KindCreate EventKind = "CREATE"
	KindModify EventKind = "MODIFY"
	KindRemove EventKind = "REMOVE"
	KindRename EventKind = "RENAME"
	KindOther  EventKind = "OTHER"
)

// ChangeEvent is a single notification from the filesystem watcher. Paths is
// ordered; when several paths are batched the last one represents the event.
type ChangeEvent struct {
	Kind      EventKind
	Paths     []string
	Timestamp time.Time
}

// Path returns the representative path, or "" when the event carries none.
func (e ChangeEvent) Path() string {
	if len(e.Paths) == 0 {
		return ""
	}

	return e.Paths[len(e.Paths)-1]
}

// Triggers reports whether the event should start a sync.
func (e ChangeEvent) Triggers() bool {
	return e.Kind == KindModify && len(e.Paths) > 0
}
