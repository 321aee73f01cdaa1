// Package completions generates bash, zsh and fish completion scripts from
// the command tree.
package completions

import (
	"sort"

	"github.com/amicly/appearance/internal/dispatchers"
)

// CommandInfo represents a command extracted from the dispatch tree
type CommandInfo struct {
	Name        string
	Path        []string // Full path from root (e.g., ["amicly", "theme", "set"])
	Summary     string
	Subcommands []string
	Flags       []FlagInfo
	// Values are the accepted values of the first argument, if closed.
	Values []string
}

// FlagInfo represents a flag for a command
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the dispatch tree and extracts all commands.
// Commands and subcommands are sorted by name so scripts are stable.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	subcommands := make([]string, 0, len(node.Children))
	for name := range node.Children {
		subcommands = append(subcommands, name)
	}
	sort.Strings(subcommands)

	var flags []FlagInfo
	for _, f := range node.Flags {
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}

	var values []string
	if len(node.Args) > 0 {
		values = node.Args[0].Values
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path,
		Summary:     node.Summary,
		Subcommands: subcommands,
		Flags:       flags,
		Values:      values,
	})

	for _, name := range subcommands {
		extractNode(node.Children[name], commands)
	}
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if pathsEqual(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

func pathsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
