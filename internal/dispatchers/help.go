package dispatchers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/amicly/appearance/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"theme list":  1,
	"theme get":   2,
	"theme set":   3,
	"theme pick":  4,
	"theme reset": 5,

	"type":        1,
	"type styles": 2,
	"scale":       3,

	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
}

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := strings.IndexAny(usage, "[<")
	if cmdEnd < 0 {
		return style.Info(usage)
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	return style.Info(cmd) + " " + style.Muted(usage[cmdEnd:])
}

// collectLeafCommands gathers every node with an action below node.
// A node with both an action and children ("type" and "type styles")
// contributes itself and its children.
func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
	}

	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func displayName(n *DispatchNode) string {
	return strings.Join(n.Path[1:], " ")
}

func sortForDisplay(nodes []*DispatchNode) {
	sort.Slice(nodes, func(i, j int) bool {
		nameI, nameJ := displayName(nodes[i]), displayName(nodes[j])
		orderI, hasI := commandDisplayOrder[nameI]
		orderJ, hasJ := commandDisplayOrder[nameJ]
		switch {
		case hasI && hasJ:
			return orderI < orderJ
		case hasI:
			return true
		case hasJ:
			return false
		}
		return nameI < nameJ
	})
}

// HelpText renders help for node. The root gets the command overview.
func HelpText(node *DispatchNode, root *DispatchNode) string {
	var out strings.Builder

	if node == root {
		fmt.Fprintf(&out, "%s - %s\n\n", root.Name, node.Summary)
		out.WriteString("USAGE\n   ")
		out.WriteString(formatUsage(node.Usage))
		out.WriteString("\n\n")

		var leaves []*DispatchNode
		for _, child := range root.Children {
			collectLeafCommands(child, &leaves)
		}

		grouped := make(map[CommandCategory][]*DispatchNode)
		for _, cmd := range leaves {
			grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
		}

		for _, cat := range categoryOrder {
			cmds := grouped[cat]
			if len(cmds) == 0 {
				continue
			}

			out.WriteString(style.Header(cat.String()))
			out.WriteString("\n")

			sortForDisplay(cmds)
			for _, cmd := range cmds {
				fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-16s", displayName(cmd))), cmd.Summary)
			}
			out.WriteString("\n")
		}

		if len(root.Flags) > 0 {
			writeFlags(&out, root.Flags)
		}

		fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
		return out.String()
	}

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	if node.Usage != "" {
		out.WriteString("USAGE\n   ")
		out.WriteString(formatUsage(node.Usage))
		out.WriteString("\n\n")
	}

	if node.Description != "" {
		out.WriteString(node.Description)
		out.WriteString("\n\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGUMENTS\n")
		for _, a := range node.Args {
			name := "<" + a.Name + ">"
			if !a.Required {
				name = "[" + a.Name + "]"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), a.Description)
		}
		out.WriteString("\n")
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")

		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortForDisplay(children)

		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Flags) > 0 {
		writeFlags(&out, node.Flags)
	}

	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
	return out.String()
}

func writeFlags(out *strings.Builder, flags []FlagDescriptor) {
	out.WriteString("FLAGS\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name = name + "=" + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
	out.WriteString("\n")
}

// HelpAction prints HelpText for node to stdout.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(_ []string, _ *ParsedFlags) error {
		_, err := fmt.Print(HelpText(node, root))
		return err
	}
}
