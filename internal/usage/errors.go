package usage

import (
	"fmt"
	"strings"
)

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("amicly: invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("amicly: missing required argument '%s'", arg),
	}
}

// UnknownCommand is returned for a command that does not exist.
// Suggestions, when given, are listed git-style.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("amicly: '%s' is not an amicly command. See 'amicly --help'.", command)

	if len(suggestions) == 1 {
		msg += "\n\nThe most similar command is\n\t" + suggestions[0]
	} else if len(suggestions) > 1 {
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}

	return &Error{Kind: ErrUnknownCommand, Message: msg}
}

// UnknownTheme is returned when a theme name is not in the catalog.
func UnknownTheme(name string, known []string) *Error {
	return &Error{
		Kind: ErrUnknownTheme,
		Message: fmt.Sprintf("amicly: unknown theme '%s' (available: %s)",
			name, strings.Join(known, ", ")),
	}
}

// InvalidValue is returned when an argument or flag value cannot be used.
func InvalidValue(name, value, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("amicly: invalid %s '%s': %s", name, value, reason),
	}
}

// InvalidConfigKey is returned for a key that is not a known config key.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("amicly: '%s' is not a valid config key. See 'amicly config list'.", key),
	}
}

// NotInteractive is returned when an interactive command runs without a terminal.
func NotInteractive(command string) *Error {
	return &Error{
		Kind:    ErrNotInteractive,
		Message: fmt.Sprintf("amicly: '%s' needs an interactive terminal", command),
	}
}
