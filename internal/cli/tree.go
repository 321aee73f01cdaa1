package cli

import (
	"github.com/amicly/appearance/internal/actions"
	completionsactions "github.com/amicly/appearance/internal/actions/completions"
	configactions "github.com/amicly/appearance/internal/actions/config"
	themeactions "github.com/amicly/appearance/internal/actions/theme"
	typeactions "github.com/amicly/appearance/internal/actions/typography"
	"github.com/amicly/appearance/internal/dispatchers"
)

func BuildTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "amicly",
		Summary: "Choose and inspect the amicly appearance",
		Usage:   "amicly <command> [flags]",
		Flags:   RootFlags,
	})

	addThemeCommands(root)
	addTypographyCommands(root)
	addConfigCommands(root)

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "version",
		Parent:   root,
		Summary:  "Show amicly version",
		Usage:    "amicly version",
		Action:   actions.ShowVersion,
		Category: dispatchers.CategoryUncategorized,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Set up shell completions",
		Usage:    "amicly completions [bash|zsh|fish] [--script]",
		Flags:    CompletionsFlags,
		Args:     ShellArg,
		Action:   completionsactions.Completions,
		Category: dispatchers.CategoryUncategorized,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "help",
		Parent:  root,
		Summary: "Show help for a command",
		Usage:   "amicly help [command]",
		Action: func(args []string, flags *dispatchers.ParsedFlags) error {
			return dispatchers.HelpAction(root, root)(args, flags)
		},
		Category: dispatchers.CategoryUncategorized,
	})

	return root
}

func addThemeCommands(root *dispatchers.DispatchNode) {
	theme := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "theme",
		Parent:  root,
		Summary: "Show and change the active theme",
		Usage:   "amicly theme <command>",
		Description: `The active theme decides every color amicly draws with. Six themes
are available, three light and three dark. The choice is saved and
restored on the next run; if the saved value cannot be read the light
theme is used.`,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   theme,
		Summary:  "List themes with their colors",
		Usage:    "amicly theme list",
		Action:   themeactions.List,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   theme,
		Summary:  "Show the active theme and its palette",
		Usage:    "amicly theme get [--json]",
		Flags:    JSONFlag,
		Action:   themeactions.Get,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   theme,
		Summary:  "Activate and save a theme",
		Usage:    "amicly theme set <id>",
		Args:     ThemeIDArg,
		Action:   themeactions.Set,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "reset",
		Parent:   theme,
		Summary:  "Forget the saved theme and use the default",
		Usage:    "amicly theme reset",
		Action:   themeactions.Reset,
		Category: dispatchers.CategoryTheme,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "pick",
		Parent:      theme,
		Summary:     "Choose a theme interactively",
		Usage:       "amicly theme pick",
		Description: "Move through the themes to preview them. Enter saves the highlighted theme, q restores the previous one.",
		Action:      themeactions.Pick,
		Category:    dispatchers.CategoryTheme,
	})
}

func addTypographyCommands(root *dispatchers.DispatchNode) {
	typ := dispatchers.Command(dispatchers.CommandSpec{
		Name:     "type",
		Parent:   root,
		Summary:  "Resolve a style token to font family and size",
		Usage:    "amicly type <token> [--json]",
		Flags:    JSONFlag,
		Args:     StyleTokenArg,
		Action:   typeactions.Resolve,
		Category: dispatchers.CategoryTypography,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "styles",
		Parent:   typ,
		Summary:  "List text presets and scaled sizes",
		Usage:    "amicly type styles",
		Action:   typeactions.Styles,
		Category: dispatchers.CategoryTypography,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "scale",
		Parent:   root,
		Summary:  "Scale a design size to the configured viewport",
		Usage:    "amicly scale <size> [--factor=<0..1>]",
		Flags:    ScaleFlags,
		Args:     SizeArg,
		Action:   actions.Scale,
		Category: dispatchers.CategoryTypography,
	})
}

func addConfigCommands(root *dispatchers.DispatchNode) {
	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "config",
		Parent:  root,
		Summary: "Manage configuration",
		Usage:   "amicly config <command>",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Get a config value",
		Usage:    "amicly config get <key>",
		Args:     ConfigKeyArg,
		Action:   configactions.Get,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "amicly config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Action:   configactions.Set,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "amicly config unset <key> | --all",
		Flags:    ConfigUnsetFlags,
		Action:   configactions.Unset,
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List config values",
		Usage:    "amicly config list [--json]",
		Flags:    JSONFlag,
		Action:   configactions.List,
		Category: dispatchers.CategoryConfig,
	})
}
