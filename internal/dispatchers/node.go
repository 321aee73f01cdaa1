// Package dispatchers resolves command-line tokens against a tree of commands.
package dispatchers

// CommandFunc runs a resolved command.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is the outcome of Dispatch: what to run and with which input.
type Resolution struct {
	Node     *DispatchNode
	Args     []string
	Flags    *ParsedFlags
	Execute  CommandFunc
	ExitCode int
}

type FlagScope int

const (
	FlagScopeGlobal FlagScope = iota
	FlagScopeLocal
)

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
	Scope       FlagScope
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
	// Values lists the accepted values, when the set is closed.
	Values []string
}

type DispatchNode struct {
	Name        string
	Path        []string
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Children    map[string]*DispatchNode
	Action      CommandFunc
	Category    CommandCategory
}
