package actions

import (
	"fmt"

	"github.com/amicly/appearance/internal/app"
	"github.com/amicly/appearance/internal/scale"
)

type actionDependencies struct {
	Printf  func(format string, a ...any) (n int, err error)
	Version func() string
	Scaler  func() scale.Scaler
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Printf:  fmt.Printf,
		Version: func() string { return app.Version },
		Scaler:  func() scale.Scaler { return app.Default().Scaler },
	}
}
