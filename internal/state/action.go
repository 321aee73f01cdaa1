package state

import "github.com/amicly/appearance/internal/domain"

// Action is one of Select, SelectAndPersist, Rehydrate or Reset.
// The set is closed: only this package can add variants.
type Action interface {
	action()
}

// Select replaces the current theme in memory.
type Select struct {
	ID domain.ThemeID
}

// SelectAndPersist selects ID and writes it to the preference store.
type SelectAndPersist struct {
	ID domain.ThemeID
}

// Rehydrate restores the stored theme, falling back to the default.
type Rehydrate struct{}

// Reset removes the stored theme and selects the default.
type Reset struct{}

func (Select) action()           {}
func (SelectAndPersist) action() {}
func (Rehydrate) action()        {}
func (Reset) action()            {}

// Source tells where a committed theme came from.
type Source int

const (
	// SourceNone means nothing was committed.
	SourceNone Source = iota
	// SourceSelection is an explicit choice by the caller.
	SourceSelection
	// SourceStorage is a valid value read from the preference store.
	SourceStorage
	// SourceDefault is the fallback used when storage had nothing usable.
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceSelection:
		return "selection"
	case SourceStorage:
		return "storage"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

// Result reports the outcome of an action.
//
// State is always a valid theme state: the committed one when Applied is
// true, otherwise the state current when the action finished. Err carries
// storage failures and rejected input; it never means State is unusable.
type Result struct {
	State   domain.ThemeState
	Applied bool
	Source  Source
	Err     error
	OpID    string
}
