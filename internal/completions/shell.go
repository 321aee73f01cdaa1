package completions

import (
	"os"
	"path/filepath"
)

// Shell names a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Valid reports whether s is a supported shell.
func (s Shell) Valid() bool {
	return s == ShellBash || s == ShellZsh || s == ShellFish
}

// RunningShell guesses the user's shell from $SHELL.
// It returns "" when the shell is unknown or unsupported.
func RunningShell() Shell {
	sh := Shell(filepath.Base(os.Getenv("SHELL")))
	if sh.Valid() {
		return sh
	}
	return ""
}

// IsBashCompletionInstalled reports whether the bash-completion package is
// present, which is what loads scripts from the user completions directory.
func IsBashCompletionInstalled() bool {
	for _, p := range []string{
		"/usr/share/bash-completion/bash_completion",
		"/etc/bash_completion",
		"/usr/local/etc/profile.d/bash_completion.sh",
		"/opt/homebrew/etc/profile.d/bash_completion.sh",
	} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
