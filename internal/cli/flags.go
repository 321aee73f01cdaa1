package cli

import "github.com/amicly/appearance/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{"--storage"},
			ValueHint:   "<sqlite|file|memory>",
			Description: "Where the theme choice is kept for this command",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	JSONFlag = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--json"},
			Description: "Output result as JSON",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	ScaleFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--factor"},
			ValueHint:   "<0..1>",
			Description: "Moderate scale factor (default 0.5)",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	CompletionsFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--script"},
			Description: "Print the completion script instead of instructions",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
