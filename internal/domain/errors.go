package domain

import "errors"

var (
	// ErrUnknownTheme is returned when a string does not name a catalog theme.
	ErrUnknownTheme = errors.New("unknown theme")

	// ErrInvalidStored marks a persisted theme value that is not a known theme.
	ErrInvalidStored = errors.New("stored theme is not a known theme")

	// ErrPersist wraps a failed write of the theme preference.
	ErrPersist = errors.New("persist theme preference")

	// ErrLoad wraps a failed read of the theme preference.
	ErrLoad = errors.New("load theme preference")
)
