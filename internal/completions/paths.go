package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// Install describes the ways to load completions for one shell.
type Install struct {
	// RcFile is the startup file the SourceLine goes into.
	RcFile string
	// SourceLine loads the script generated on each shell start.
	SourceLine string
	// AutoPath is a file the shell loads by itself, or "" if there is none.
	AutoPath string
}

// InstallFor returns the install options for shell.
func InstallFor(shell Shell) Install {
	bin := GetBinaryPath()

	switch shell {
	case ShellBash:
		in := Install{
			RcFile:     "~/.bashrc",
			SourceLine: fmt.Sprintf(`eval "$(%s completions bash --script)"`, bin),
		}
		if IsBashCompletionInstalled() {
			in.AutoPath = userPath(".local", "share", "bash-completion", "completions", GetBinaryName())
		}
		return in
	case ShellZsh:
		return Install{
			RcFile:     "~/.zshrc",
			SourceLine: fmt.Sprintf(`eval "$(%s completions zsh --script)"`, bin),
		}
	case ShellFish:
		return Install{
			RcFile:     "~/.config/fish/config.fish",
			SourceLine: fmt.Sprintf(`%s completions fish --script | source`, bin),
			AutoPath:   userPath(".config", "fish", "completions", GetBinaryName()+".fish"),
		}
	default:
		return Install{}
	}
}

func userPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home}, elem...)...)
}
