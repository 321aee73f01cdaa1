package typography

import (
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/typography"
	"github.com/amicly/appearance/internal/ui/style"
)

func Styles(args []string, flags *dispatchers.ParsedFlags) error {
	return styles(args, flags, DefaultDeps())
}

func styles(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	r := deps.Resolver()

	_, _ = deps.Println(style.Header("Presets"))
	for _, p := range typography.Presets {
		t := r.Resolve(p.Token)
		_, _ = deps.Printf("  %-12s %-4s %-18s %6.2f\n", p.Name, p.Token, t.FontFamily, t.FontSize)
	}

	_, _ = deps.Println("")
	_, _ = deps.Println(style.Header("Sizes"))
	for _, size := range typography.Sizes {
		_, _ = deps.Printf("  %-4d %6.2f\n", size, r.Size(size))
	}

	return nil
}
