package theme

import (
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/ui/style"
)

func Reset(args []string, flags *dispatchers.ParsedFlags) error {
	return reset(args, flags, DefaultDeps())
}

func reset(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	res := deps.Store().Reset(deps.Context())
	if res.Err != nil {
		_, _ = deps.Printf("%s could not clear the saved theme: %v\n", style.Warning("warning:"), res.Err)
		return nil
	}

	_, _ = deps.Printf("theme reset to %s\n", style.Success(res.State.ThemeType.String()))
	return nil
}
