// Package usage defines the user-facing errors returned at the CLI boundary.
package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrUnknownTheme
	ErrInvalidValue
	ErrInvalidConfigKey
	ErrNotInteractive
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid config key
//	  - Not a terminal
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Unknown theme
//	  - Invalid value
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrUnknownTheme:     2,
	ErrInvalidValue:     2,
	ErrInvalidConfigKey: 1,
	ErrNotInteractive:   1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ExitCode returns the process exit code for this error.
func (e *Error) ExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
