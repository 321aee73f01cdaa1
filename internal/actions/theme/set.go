package theme

import (
	"errors"

	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/themes"
	"github.com/amicly/appearance/internal/ui/style"
	"github.com/amicly/appearance/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("theme")
	}

	id, err := themes.Parse(args[0])
	if err != nil {
		return usage.UnknownTheme(args[0], themeNames())
	}

	res := deps.Store().SelectAndPersist(deps.Context(), id)
	if res.Err != nil {
		if !errors.Is(res.Err, domain.ErrPersist) {
			return res.Err
		}
		_, _ = deps.Printf("%s theme %s is active but could not be saved\n", style.Warning("warning:"), id)
		return nil
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(id.String()))
	return nil
}

func themeNames() []string {
	ids := themes.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
