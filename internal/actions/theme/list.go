package theme

import (
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/themes"
	"github.com/amicly/appearance/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current := deps.Store().State().ThemeType

	for _, id := range themes.IDs() {
		marker := "  "
		name := padRight(id.String(), 12)
		if id == current {
			marker = "* "
			name = style.Success(name)
		}

		_, _ = deps.Printf("%s%s %s  %s\n", marker, name, style.Muted(padRight(variant(id), 5)), style.Strip(themes.Palette(id)))
	}

	return nil
}

func variant(id domain.ThemeID) string {
	if themes.IsDark(id) {
		return "dark"
	}
	return "light"
}

func padRight(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}
