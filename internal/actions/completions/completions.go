package completions

import (
	"fmt"
	"io"
	"os"

	"github.com/amicly/appearance/internal/completions"
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/usage"
)

type Deps struct {
	Printf       func(string, ...any) (int, error)
	Println      func(...any) (int, error)
	Stdout       io.Writer
	RunningShell func() completions.Shell
	Print        func(io.Writer, completions.Shell) error
	InstallFor   func(completions.Shell) completions.Install
}

func DefaultDeps() Deps {
	return Deps{
		Printf:       fmt.Printf,
		Println:      fmt.Println,
		Stdout:       os.Stdout,
		RunningShell: completions.RunningShell,
		Print:        completions.PrintCompletions,
		InstallFor:   completions.InstallFor,
	}
}

// Completions prints the completion script or instructions for installing it.
func Completions(args []string, flags *dispatchers.ParsedFlags) error {
	return completionsCmd(args, flags, DefaultDeps())
}

func completionsCmd(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	var shell completions.Shell

	if len(args) > 0 {
		shell = completions.Shell(args[0])
	} else {
		shell = deps.RunningShell()
		if shell == "" {
			return usage.MissingArgument("shell")
		}
	}

	if !shell.Valid() {
		return usage.InvalidValue("shell", string(shell), "use bash, zsh or fish")
	}

	// --script prints the script itself, for eval
	if flags.Has("--script") {
		return deps.Print(deps.Stdout, shell)
	}

	printInstructions(shell, deps)
	return nil
}

func printInstructions(shell completions.Shell, deps Deps) {
	in := deps.InstallFor(shell)

	_, _ = deps.Println("To enable completions, choose one of the following:")
	_, _ = deps.Println()

	optionNum := 1

	if in.AutoPath != "" {
		_, _ = deps.Printf("%d. Write to the auto-load directory:\n", optionNum)
		_, _ = deps.Printf("   amicly completions %s --script > %s\n", shell, in.AutoPath)
		_, _ = deps.Println()
		optionNum++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", optionNum, in.RcFile)
	_, _ = deps.Printf("   %s\n", in.SourceLine)
	_, _ = deps.Println()

	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}
