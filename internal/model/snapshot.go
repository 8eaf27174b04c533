package model

import "time"

type SessionSnapshot struct {
	WatchDir  string     `json:"watch_dir"`
	Target    string     `json:"target"`
	StartedAt time.Time  `json:"started_at"`
	Synced    int        `json:"synced"`
	Failed    int        `json:"failed"`
	InFlight  int        `json:"in_flight"`
	LastSync  *time.Time `json:"last_sync"`
	LastFile  string     `json:"last_file"`
}
