package typography

import (
	"fmt"

	"github.com/amicly/appearance/internal/app"
	"github.com/amicly/appearance/internal/typography"
)

type Deps struct {
	Resolver func() *typography.Resolver
	Printf   func(string, ...any) (int, error)
	Println  func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Resolver: func() *typography.Resolver { return app.Default().Typography },
		Printf:   fmt.Printf,
		Println:  fmt.Println,
	}
}
