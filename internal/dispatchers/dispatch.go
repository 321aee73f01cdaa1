package dispatchers

import (
	"strings"

	"github.com/amicly/appearance/internal/usage"
)

const defaultSuggestionsCount = 3

// handleHelpCommand resolves "help" anywhere in tokens: "amicly help theme set"
// and "amicly theme help" both show help for the named node.
func handleHelpCommand(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error, bool) {
	for i, tok := range tokens {
		if tok != "help" {
			continue
		}

		targetPath := tokens[:i]
		if len(tokens[i+1:]) > 0 {
			targetPath = tokens[i+1:]
		}

		if target := resolveNode(root, targetPath); target != nil {
			return Resolution{Node: target, Flags: flags, Execute: HelpAction(target, root)}, nil, true
		}

		suggestions := FindSimilarCommands(targetPath[len(targetPath)-1], root, defaultSuggestionsCount)
		return Resolution{}, usage.UnknownCommand(strings.Join(targetPath, " "), suggestions...), true
	}
	return Resolution{}, nil, false
}

// Dispatch walks tokens down the tree from root and returns the command to
// run. Tokens after the deepest matching node become arguments.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	if flags == nil {
		flags = NewParsedFlags(nil)
	}

	if res, err, handled := handleHelpCommand(root, tokens, flags); handled {
		return res, err
	}

	current := root
	pathLen := 0

	for _, tok := range tokens {
		child, ok := current.Children[tok]
		if !ok {
			// A group has no action, so an unknown token is a typo, not an argument.
			if current.Action == nil && len(current.Children) > 0 {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				cmdPath := strings.Join(append(append([]string(nil), current.Path[1:]...), tok), " ")
				return Resolution{}, usage.UnknownCommand(cmdPath, suggestions...)
			}
			break
		}
		current = child
		pathLen++
	}

	args := tokens[pathLen:]

	if hasHelpFlag(flags) {
		return Resolution{Node: current, Flags: flags, Execute: HelpAction(current, root)}, nil
	}

	if err := validateFlags(flags, validFlagsForNode(current, root)); err != nil {
		return Resolution{}, err
	}

	if current.Action == nil {
		// No command specified: show help but exit with code 1 (like git)
		exitCode := 0
		if current == root {
			exitCode = 1
		}
		return Resolution{
			Node:     current,
			Flags:    flags,
			Execute:  HelpAction(current, root),
			ExitCode: exitCode,
		}, nil
	}

	if err := validateArgs(current.Args, args); err != nil {
		return Resolution{}, err
	}

	return Resolution{
		Node:    current,
		Args:    args,
		Flags:   flags,
		Execute: current.Action,
	}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help") || flags.Has("-h")
}

// validFlagsForNode returns the root's global flags plus the node's own.
func validFlagsForNode(node *DispatchNode, root *DispatchNode) map[string]bool {
	valid := make(map[string]bool)

	for _, f := range root.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	for _, f := range node.Flags {
		for _, name := range f.Names {
			valid[name] = true
		}
	}

	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]bool) error {
	for _, f := range flags.Raw() {
		name, _, _ := strings.Cut(f, "=")
		if !valid[name] {
			return usage.InvalidFlag(f)
		}
	}
	return nil
}

// validateArgs reports the first required argument that was not given.
func validateArgs(spec []ArgSpec, args []string) error {
	for i, a := range spec {
		if a.Required && i >= len(args) {
			return usage.MissingArgument(a.Name)
		}
	}
	return nil
}

func resolveNode(root *DispatchNode, path []string) *DispatchNode {
	current := root

	for _, p := range path {
		child, ok := current.Children[p]
		if !ok {
			return nil
		}
		current = child
	}

	return current
}
