package completions

import (
	"fmt"
	"io"
)

// PrintCompletions writes the completion script for the given shell to w
func PrintCompletions(w io.Writer, shell Shell) error {
	root := GetCommandTree()
	if root == nil {
		return fmt.Errorf("command tree not registered")
	}

	script := generateScript(shell, GetBinaryName(), ExtractCommands(root))
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

func generateScript(shell Shell, bin string, commands []CommandInfo) string {
	switch shell {
	case ShellBash:
		return GenerateBash(bin, commands)
	case ShellZsh:
		return GenerateZsh(bin, commands)
	case ShellFish:
		return GenerateFish(bin, commands)
	default:
		return ""
	}
}
