package theme

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/amicly/appearance/internal/app"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/state"
)

// ThemeStore is the part of the state store the theme commands use.
type ThemeStore interface {
	State() domain.ThemeState
	Select(id domain.ThemeID) state.Result
	SelectAndPersist(ctx context.Context, id domain.ThemeID) state.Result
	Reset(ctx context.Context) state.Result
}

type Deps struct {
	Context    func() context.Context
	Store      func() ThemeStore
	Startup    func() state.Result
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	IsTerminal func() bool
	RunPicker  func(tea.Model) (tea.Model, error)
}

func DefaultDeps() Deps {
	return Deps{
		Context: context.Background,
		Store:   func() ThemeStore { return app.Default().Themes },
		Startup: func() state.Result { return app.Default().Startup },
		Printf: func(format string, args ...any) (int, error) {
			return app.Default().Output.Printf(format, args...)
		},
		Println: func(args ...any) (int, error) {
			return app.Default().Output.Println(args...)
		},
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunPicker: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		},
	}
}
