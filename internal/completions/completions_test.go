package completions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amicly/appearance/internal/dispatchers"
)

func buildTestTree() *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "amicly",
		Summary: "Test CLI",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--storage"}, ValueHint: "<backend>", Description: "Storage backend"},
		},
	})

	theme := dispatchers.Group(dispatchers.GroupSpec{
		Name:    "theme",
		Parent:  root,
		Summary: "Manage themes",
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "get",
		Parent:  theme,
		Summary: "Show the user's theme",
		Flags: []dispatchers.FlagDescriptor{
			{Names: []string{"--json"}, Description: "Output as JSON"},
		},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "set",
		Parent:  theme,
		Summary: "Set the theme",
		Args:    []dispatchers.ArgSpec{{Name: "id", Required: true, Values: []string{"light", "dark"}}},
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "version",
		Parent:  root,
		Summary: "Show version",
	})

	return root
}

func TestExtractCommands(t *testing.T) {
	commands := ExtractCommands(buildTestTree())
	require.Len(t, commands, 5)

	root := FindCommand(commands, []string{"amicly"})
	require.NotNil(t, root)
	require.Equal(t, []string{"theme", "version"}, root.Subcommands)
	require.Len(t, root.Flags, 2)
	require.True(t, root.Flags[1].HasValue)

	theme := FindCommand(commands, []string{"amicly", "theme"})
	require.NotNil(t, theme)
	require.Equal(t, []string{"get", "set"}, theme.Subcommands)

	set := FindCommand(commands, []string{"amicly", "theme", "set"})
	require.NotNil(t, set)
	require.Equal(t, "Set the theme", set.Summary)
	require.Equal(t, []string{"light", "dark"}, set.Values)
}

func TestFindCommand_NotFound(t *testing.T) {
	commands := []CommandInfo{{Name: "amicly", Path: []string{"amicly"}}}
	require.Nil(t, FindCommand(commands, []string{"amicly", "nonexistent"}))
}

func TestGenerateBash(t *testing.T) {
	script := GenerateBash("amicly", ExtractCommands(buildTestTree()))

	require.True(t, strings.HasPrefix(script, "# amicly bash completion script"))
	for _, check := range []string{
		"_amicly_completions()",
		"complete -F _amicly_completions amicly",
		`"amicly") opts="theme version --help -h --storage" ;;`,
		`"amicly theme set") opts="light dark --help -h --storage" ;;`,
		`"amicly theme get") opts="--json --help -h --storage" ;;`,
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerateZsh(t *testing.T) {
	script := GenerateZsh("amicly", ExtractCommands(buildTestTree()))

	for _, check := range []string{
		"#compdef amicly",
		"_amicly()",
		"_amicly_commands()",
		"_describe",
		"'theme:Manage themes'",
		"'version:Show version'",
		`'get:Show the user'\''s theme'`,
		"'dark'",
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerateFish(t *testing.T) {
	script := GenerateFish("amicly", ExtractCommands(buildTestTree()))

	for _, check := range []string{
		"complete -c amicly -f",
		"complete -c amicly -n '__fish_use_subcommand' -a 'theme' -d 'Manage themes'",
		"-a 'set' -d 'Set the theme'",
		"__fish_seen_subcommand_from theme; and not __fish_seen_subcommand_from get set",
		"complete -c amicly -n '__fish_seen_subcommand_from theme; and __fish_seen_subcommand_from set' -a 'light dark'",
		"complete -c amicly -l help -s h -d 'Show help'",
		"complete -c amicly -l storage -r -d 'Storage backend'",
		`-d 'Show the user\'s theme'`,
	} {
		require.Contains(t, script, check)
	}
}

func TestGenerate_EmptyTree(t *testing.T) {
	root := dispatchers.Root(dispatchers.RootSpec{Name: "amicly", Summary: "Test CLI"})
	commands := ExtractCommands(root)

	require.Contains(t, GenerateBash("amicly", commands), "_amicly_completions()")
	require.Contains(t, GenerateZsh("amicly", commands), "#compdef amicly")
	require.Contains(t, GenerateFish("amicly", commands), "complete -c amicly -f")
}

func TestGenerate_BinaryNameWithDash(t *testing.T) {
	script := GenerateBash("amicly-dev", nil)
	require.Contains(t, script, "_amicly_dev_completions()")
	require.Contains(t, script, "complete -F _amicly_dev_completions amicly-dev")
}

func TestPrintCompletions(t *testing.T) {
	t.Cleanup(func() { commandTree = nil })

	commandTree = nil
	require.Error(t, PrintCompletions(&bytes.Buffer{}, ShellBash))

	RegisterCommandTree(buildTestTree())

	var out bytes.Buffer
	require.NoError(t, PrintCompletions(&out, ShellFish))
	require.Contains(t, out.String(), "complete -c "+GetBinaryName()+" -f")

	require.Error(t, PrintCompletions(&bytes.Buffer{}, Shell("tcsh")))
}

func TestRunningShell(t *testing.T) {
	tests := map[string]Shell{
		"/bin/zsh":            ShellZsh,
		"/usr/local/bin/fish": ShellFish,
		"/bin/bash":           ShellBash,
		"/bin/tcsh":           "",
		"":                    "",
	}

	for env, want := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv("SHELL", env)
			require.Equal(t, want, RunningShell())
		})
	}
}

func TestInstallFor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	zsh := InstallFor(ShellZsh)
	require.Equal(t, "~/.zshrc", zsh.RcFile)
	require.Contains(t, zsh.SourceLine, "completions zsh --script")
	require.Empty(t, zsh.AutoPath)

	fish := InstallFor(ShellFish)
	require.Contains(t, fish.SourceLine, "| source")
	require.True(t, strings.HasSuffix(fish.AutoPath, ".fish"))

	require.Equal(t, Install{}, InstallFor(Shell("tcsh")))
}
