package theme

import (
	"encoding/json"
	"errors"

	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/themes"
	"github.com/amicly/appearance/internal/ui/style"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

type themeJSON struct {
	ThemeType domain.ThemeID `json:"themeType"`
	Dark      bool           `json:"dark"`
	Source    string         `json:"source"`
	Theme     domain.Palette `json:"theme"`
}

func get(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	startup := deps.Startup()
	current := deps.Store().State()

	if flags.Has("--json") {
		data, err := json.MarshalIndent(themeJSON{
			ThemeType: current.ThemeType,
			Dark:      themes.IsDark(current.ThemeType),
			Source:    startup.Source.String(),
			Theme:     current.Palette,
		}, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	if startup.Err != nil {
		_, _ = deps.Printf("%s %s\n", style.Warning("warning:"), startupWarning(startup.Err))
	}

	_, _ = deps.Printf("%s %s (%s)\n", style.Header("theme:"), current.ThemeType, variant(current.ThemeType))
	for _, c := range current.Palette.Colors() {
		_, _ = deps.Printf("  %-11s %s %s\n", c.Name, style.Swatch(c.Value), c.Value)
	}
	_, _ = deps.Printf("  %-11s %s\n", "status bar", current.Palette.StatusBar)

	return nil
}

func startupWarning(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidStored):
		return "the saved theme is not recognised, using the default"
	case errors.Is(err, domain.ErrLoad):
		return "the saved theme could not be read, using the default"
	default:
		return err.Error()
	}
}
