package cli

import (
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/themes"
)

var (
	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
			Values:      configKeyNames(),
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
			Values:      configKeyNames(),
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeIDArg = []dispatchers.ArgSpec{
		{
			Name:        "id",
			Description: "Theme id (light, lightBlue, lightWarm, dark, darkBlue, darkPurple)",
			Required:    true,
			Values:      themeIDNames(),
		},
	}

	StyleTokenArg = []dispatchers.ArgSpec{
		{
			Name:        "token",
			Description: "Style token such as B32 or R16, or a preset name such as H1",
			Required:    true,
		},
	}

	SizeArg = []dispatchers.ArgSpec{
		{
			Name:        "size",
			Description: "Size in design-reference units",
			Required:    true,
		},
	}

	ShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "Shell to generate completions for (defaults to $SHELL)",
			Required:    false,
			Values:      []string{"bash", "zsh", "fish"},
		},
	}
)

func themeIDNames() []string {
	ids := themes.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}

func configKeyNames() []string {
	keys := domain.VisibleConfigKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.Name
	}
	return names
}
