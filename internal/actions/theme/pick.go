package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/themes"
	"github.com/amicly/appearance/internal/ui/style"
	"github.com/amicly/appearance/internal/usage"
)

func Pick(args []string, flags *dispatchers.ParsedFlags) error {
	return pick(args, flags, DefaultDeps())
}

func pick(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	// Bubble Tea needs a real terminal on both ends.
	if !deps.IsTerminal() {
		return usage.NotInteractive("theme pick")
	}

	store := deps.Store()
	m := newPickModel(store)

	final, err := deps.RunPicker(m)
	if err != nil {
		// Leave the theme as it was before the picker opened.
		store.Select(m.original)
		return err
	}

	fm, ok := final.(pickModel)
	if !ok || fm.chosen == "" {
		_, _ = deps.Println("cancelled")
		return nil
	}

	if fm.chosen == fm.original {
		_, _ = deps.Printf("theme %s is already active\n", style.Info(fm.chosen.String()))
		return nil
	}

	res := store.SelectAndPersist(deps.Context(), fm.chosen)
	if res.Err != nil {
		_, _ = deps.Printf("%s theme %s is active but could not be saved\n", style.Warning("warning:"), fm.chosen)
		return nil
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(fm.chosen.String()))
	return nil
}

type pickKeys struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Select key.Binding
	Cancel key.Binding
}

func defaultPickKeys() pickKeys {
	return pickKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:   key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:    key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
	}
}

func (k pickKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Home, k.End, k.Select, k.Cancel}
}

func (k pickKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// pickModel previews each theme as the cursor moves by selecting it in the
// store. Nothing is persisted until the user confirms.
type pickModel struct {
	store     ThemeStore
	ids       []domain.ThemeID
	cursor    int
	original  domain.ThemeID
	chosen    domain.ThemeID
	cancelled bool
	keys      pickKeys
	help      help.Model
}

func newPickModel(store ThemeStore) pickModel {
	ids := themes.IDs()
	original := store.State().ThemeType

	cursor := 0
	for i, id := range ids {
		if id == original {
			cursor = i
			break
		}
	}

	return pickModel{
		store:    store,
		ids:      ids,
		cursor:   cursor,
		original: original,
		keys:     defaultPickKeys(),
		help:     help.New(),
	}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Cancel):
		m.cancelled = true
		m.store.Select(m.original)
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Select):
		m.chosen = m.ids[m.cursor]
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = (m.cursor - 1 + len(m.ids)) % len(m.ids)

	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = (m.cursor + 1) % len(m.ids)

	case key.Matches(keyMsg, m.keys.Home):
		m.cursor = 0

	case key.Matches(keyMsg, m.keys.End):
		m.cursor = len(m.ids) - 1

	default:
		return m, nil
	}

	m.store.Select(m.ids[m.cursor])
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString(style.Header("Select a theme") + "\n\n")

	left := make([]string, len(m.ids))
	for i, id := range m.ids {
		cursor := "   "
		if i == m.cursor {
			cursor = " → "
		}

		current := "  "
		if id == m.original {
			current = "✓ "
		}

		name := lipgloss.NewStyle().Width(12)
		if i == m.cursor {
			name = name.Bold(true)
		}

		left[i] = cursor + current + name.Render(id.String())
	}

	id := m.ids[m.cursor]
	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		strings.Join(left, "\n"),
		"    ",
		style.Card(themes.Palette(id), previewText(id), 32),
	))

	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	return b.String()
}

func previewText(id domain.ThemeID) string {
	p := themes.Palette(id)
	colored := func(color, text string) string {
		if !style.Enabled() {
			return text
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	lines := []string{
		colored(p.Primary, id.String()) + " " + colored(p.Accent, "("+variant(id)+")"),
		"",
		colored(p.Text, "Hello there, how are you?"),
		colored(p.Secondary, "Seen 2 min ago"),
		"",
		style.Strip(p),
		fmt.Sprintf("status bar: %s", p.StatusBar),
	}
	return strings.Join(lines, "\n")
}
