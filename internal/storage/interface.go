package storage

import "github.com/julianstephens/lifelog/internal/state"

// Provider persists whole state snapshots. Mutators save after every
// change, so Save is called often and must replace the persisted copy
// wholesale.
type Provider interface {
	// Lifecycle
	Init() error
	Load() (state.Snapshot, error)
	Save(state.Snapshot) error
	Close() error

	// Utils
	Path() string
}
