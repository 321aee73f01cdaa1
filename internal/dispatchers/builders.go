package dispatchers

type RootSpec struct {
	Name    string
	Summary string
	Usage   string
	Flags   []FlagDescriptor
}

type GroupSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
}

type CommandSpec struct {
	Name        string
	Parent      *DispatchNode
	Summary     string
	Description string
	Usage       string
	Flags       []FlagDescriptor
	Args        []ArgSpec
	Action      CommandFunc
	Category    CommandCategory
}

func newNode(name string, parent *DispatchNode) *DispatchNode {
	node := &DispatchNode{
		Name:     name,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
		return node
	}

	node.Path = append(append([]string(nil), parent.Path...), name)
	parent.Children[name] = node
	return node
}

func Root(spec RootSpec) *DispatchNode {
	node := newNode(spec.Name, nil)
	node.Summary = spec.Summary
	node.Usage = spec.Usage
	node.Flags = spec.Flags
	return node
}

// Group adds a node that only holds subcommands.
func Group(spec GroupSpec) *DispatchNode {
	node := newNode(spec.Name, spec.Parent)
	node.Summary = spec.Summary
	node.Description = spec.Description
	node.Usage = spec.Usage
	return node
}

func Command(spec CommandSpec) *DispatchNode {
	node := newNode(spec.Name, spec.Parent)
	node.Summary = spec.Summary
	node.Description = spec.Description
	node.Usage = spec.Usage
	node.Flags = spec.Flags
	node.Args = spec.Args
	node.Action = spec.Action
	node.Category = spec.Category
	return node
}
