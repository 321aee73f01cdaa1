package completions

import (
	"os"
	"path/filepath"

	"github.com/amicly/appearance/internal/dispatchers"
)

const defaultBinary = "amicly"

var commandTree *dispatchers.DispatchNode
var binaryPath string
var binaryName string

// RegisterCommandTree stores the command tree for the completion generators.
// main calls it after building the tree.
func RegisterCommandTree(root *dispatchers.DispatchNode) {
	commandTree = root

	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			binaryPath = resolved
		} else {
			binaryPath = exe
		}
		binaryName = filepath.Base(binaryPath)
	} else if len(os.Args) > 0 {
		binaryPath = os.Args[0]
		binaryName = filepath.Base(os.Args[0])
	}

	if binaryName == "" {
		binaryName = defaultBinary
		binaryPath = defaultBinary
	}
}

// GetCommandTree returns the registered command tree
func GetCommandTree() *dispatchers.DispatchNode {
	return commandTree
}

// GetBinaryName returns the name of the binary (e.g., "amicly")
func GetBinaryName() string {
	if binaryName == "" {
		return defaultBinary
	}
	return binaryName
}

// GetBinaryPath returns the full path to the binary
func GetBinaryPath() string {
	if binaryPath == "" {
		return defaultBinary
	}
	return binaryPath
}
