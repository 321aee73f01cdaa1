package typography

import (
	"encoding/json"

	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/usage"
)

func Resolve(args []string, flags *dispatchers.ParsedFlags) error {
	return resolve(args, flags, DefaultDeps())
}

type typographyJSON struct {
	Token      string  `json:"token"`
	FontFamily string  `json:"fontFamily"`
	FontSize   float64 `json:"fontSize"`
}

// resolve accepts a style token or a preset name. Unknown tokens still
// resolve, to Regular at the default size.
func resolve(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("token")
	}

	r := deps.Resolver()
	input := args[0]

	t, ok := r.Preset(input)
	if !ok {
		t = r.Resolve(domain.StyleToken(input))
	}

	if flags.Has("--json") {
		data, err := json.Marshal(typographyJSON{Token: input, FontFamily: t.FontFamily, FontSize: t.FontSize})
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	_, _ = deps.Printf("%s  %s %.2f\n", input, t.FontFamily, t.FontSize)
	return nil
}
