package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/amicly/appearance/internal/app"
	"github.com/amicly/appearance/internal/cli"
	"github.com/amicly/appearance/internal/completions"
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/themes"
	"github.com/amicly/appearance/internal/ui/style"
	"github.com/amicly/appearance/internal/usage"
)

// valueFlags take a value either as --flag=value or as the next argument.
var valueFlags = map[string]bool{
	"--storage": true,
	"--factor":  true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	defer func() { _ = app.CloseDefault() }()

	rawFlags, commands := extractArgs(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	style.Init(enableColor, themes.Palette(domain.DefaultTheme))

	if err := configureApp(flags, enableColor); err != nil {
		return report(stderr, err)
	}

	root := cli.BuildTree()
	completions.RegisterCommandTree(root)

	if len(commands) == 0 && (flags.Has("--version") || flags.Has("-v")) {
		commands = []string{"version"}
	}

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err != nil {
		return report(stderr, err)
	}

	if err := res.Execute(res.Args, res.Flags); err != nil {
		return report(stderr, err)
	}

	// Exit with non-zero code if resolution requests it (e.g., amicly with no args)
	return res.ExitCode
}

// configureApp applies the global flags that change how the application is built.
func configureApp(flags *dispatchers.ParsedFlags, enableColor bool) error {
	storage := flags.String("--storage", "")
	switch storage {
	case "", domain.StorageSQLite, domain.StorageFile, domain.StorageMemory:
	default:
		return usage.InvalidValue("--storage", storage, "expected sqlite, file or memory")
	}

	app.Configure(func(o *app.Options) {
		o.StyleEnabled = enableColor
		if storage != "" {
			o.Storage = storage
		}
	})
	return nil
}

func report(stderr io.Writer, err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		_, _ = fmt.Fprintln(stderr, ue.Error())
		return ue.ExitCode()
	}
	_, _ = fmt.Fprintln(stderr, "amicly: "+err.Error())
	return 1
}

// extractArgs splits args into flags and command tokens. A value flag
// followed by a separate value is joined into --flag=value. Negative numbers
// are values, not flags.
func extractArgs(args []string) (flags []string, commands []string) {
	flags = []string{}
	commands = []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "" || a[0] != '-' || isNumber(a) {
			commands = append(commands, a)
			continue
		}

		if valueFlags[a] && i+1 < len(args) && (!strings.HasPrefix(args[i+1], "-") || isNumber(args[i+1])) {
			flags = append(flags, a+"="+args[i+1])
			i++
			continue
		}

		flags = append(flags, a)
	}

	return flags, commands
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
