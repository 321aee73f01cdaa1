package dispatchers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amicly/appearance/internal/usage"
)

func mockAction(args []string, flags *ParsedFlags) error {
	return nil
}

// createTestTree builds:
//
//	amicly
//	├── version
//	├── theme
//	│   ├── list
//	│   └── set <id>   --quiet
//	└── type [token]   (has action and a "styles" child)
func createTestTree() *DispatchNode {
	root := Root(RootSpec{
		Name:    "amicly",
		Summary: "Test CLI",
		Usage:   "amicly <command> [flags]",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--no-color"}, Description: "Disable colors"},
			{Names: []string{"--storage"}, ValueHint: "<backend>", Description: "Storage"},
		},
	})

	Command(CommandSpec{Name: "version", Parent: root, Summary: "Show version", Action: mockAction})

	theme := Group(GroupSpec{Name: "theme", Parent: root, Summary: "Manage themes", Usage: "amicly theme <command>"})
	Command(CommandSpec{Name: "list", Parent: theme, Summary: "List themes", Action: mockAction, Category: CategoryTheme})
	Command(CommandSpec{
		Name:     "set",
		Parent:   theme,
		Summary:  "Set theme",
		Usage:    "amicly theme set <id>",
		Args:     []ArgSpec{{Name: "id", Description: "Theme id", Required: true}},
		Flags:    []FlagDescriptor{{Names: []string{"--quiet"}, Description: "No output"}},
		Action:   mockAction,
		Category: CategoryTheme,
	})

	typ := Command(CommandSpec{
		Name:     "type",
		Parent:   root,
		Summary:  "Resolve a token",
		Args:     []ArgSpec{{Name: "token", Description: "Style token", Required: true}},
		Action:   mockAction,
		Category: CategoryTypography,
	})
	Command(CommandSpec{Name: "styles", Parent: typ, Summary: "List presets", Action: mockAction, Category: CategoryTypography})

	return root
}

func TestDispatch_SimpleCommand(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"version"}, NewParsedFlags(nil))
	require.NoError(t, err)
	require.Equal(t, "version", res.Node.Name)
	require.Empty(t, res.Args)
	require.NotNil(t, res.Execute)
}

func TestDispatch_NestedCommandWithArgs(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"theme", "set", "dark"}, NewParsedFlags([]string{"--quiet"}))
	require.NoError(t, err)
	require.Equal(t, []string{"amicly", "theme", "set"}, res.Node.Path)
	require.Equal(t, []string{"dark"}, res.Args)
	require.True(t, res.Flags.Has("--quiet"))
}

func TestDispatch_CommandWithActionAndChildren(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"type", "B32"}, nil)
	require.NoError(t, err)
	require.Equal(t, "type", res.Node.Name)
	require.Equal(t, []string{"B32"}, res.Args)

	res, err = Dispatch(root, []string{"type", "styles"}, nil)
	require.NoError(t, err)
	require.Equal(t, "styles", res.Node.Name)
}

func TestDispatch_MissingArgument(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"theme", "set"}, nil)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
	require.Contains(t, ue.Error(), "'id'")
}

func TestDispatch_InvalidFlag(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"version"}, NewParsedFlags([]string{"--quiet"}))

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrInvalidFlag, ue.Kind)
}

func TestDispatch_GlobalFlagWithValue(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"theme", "list"}, NewParsedFlags([]string{"--storage=memory", "--no-color"}))
	require.NoError(t, err)
	require.Equal(t, "memory", res.Flags.String("--storage", ""))
}

func TestDispatch_UnknownTopLevelCommand(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"thme"}, nil)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrUnknownCommand, ue.Kind)
	require.Contains(t, ue.Error(), "'thme'")
	require.Contains(t, ue.Error(), "theme")
}

func TestDispatch_UnknownSubcommand(t *testing.T) {
	root := createTestTree()

	_, err := Dispatch(root, []string{"theme", "lst"}, nil)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Contains(t, ue.Error(), "'theme lst'")
	require.Contains(t, ue.Error(), "list")
}

func TestDispatch_GroupShowsHelp(t *testing.T) {
	root := createTestTree()

	res, err := Dispatch(root, []string{"theme"}, nil)
	require.NoError(t, err)
	require.Equal(t, "theme", res.Node.Name)
	require.Zero(t, res.ExitCode)

	res, err = Dispatch(root, nil, nil)
	require.NoError(t, err)
	require.Same(t, root, res.Node)
	require.Equal(t, 1, res.ExitCode)
}

func TestDispatch_HelpFlag(t *testing.T) {
	root := createTestTree()

	// --help skips argument validation
	res, err := Dispatch(root, []string{"theme", "set"}, NewParsedFlags([]string{"-h"}))
	require.NoError(t, err)
	require.Equal(t, "set", res.Node.Name)
	require.Zero(t, res.ExitCode)
}

func TestDispatch_HelpCommand(t *testing.T) {
	root := createTestTree()

	tests := []struct {
		name     string
		tokens   []string
		wantNode string
	}{
		{"help alone", []string{"help"}, "amicly"},
		{"help before path", []string{"help", "theme", "set"}, "set"},
		{"help after path", []string{"theme", "help"}, "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Dispatch(root, tt.tokens, nil)
			require.NoError(t, err)
			require.Equal(t, tt.wantNode, res.Node.Name)
		})
	}

	_, err := Dispatch(root, []string{"help", "thme"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "theme")
}

func TestParsedFlags(t *testing.T) {
	flags := NewParsedFlags([]string{"--json", "--factor=0.25", "--bad=x"})

	require.True(t, flags.Has("--json"))
	require.False(t, flags.Has("--factor"))
	require.Equal(t, "0.25", flags.String("--factor", ""))
	require.Equal(t, "def", flags.String("--missing", "def"))

	v, ok, err := flags.Float("--factor")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0.25, v)

	_, ok, err = flags.Float("--missing")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = flags.Float("--bad")
	require.Error(t, err)
	require.True(t, ok)

	var nilFlags *ParsedFlags
	require.False(t, nilFlags.Has("--json"))
}
