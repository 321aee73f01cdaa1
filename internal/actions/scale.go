package actions

import (
	"math"
	"strconv"

	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/scale"
	"github.com/amicly/appearance/internal/ui/style"
	"github.com/amicly/appearance/internal/usage"
)

func Scale(args []string, flags *dispatchers.ParsedFlags) error {
	return scaleSize(args, flags, defaultDeps())
}

func scaleSize(args []string, flags *dispatchers.ParsedFlags, deps actionDependencies) error {
	if len(args) < 1 {
		return usage.MissingArgument("size")
	}

	size, err := strconv.ParseFloat(args[0], 64)
	if err != nil || math.IsNaN(size) || math.IsInf(size, 0) {
		return usage.InvalidValue("size", args[0], "expected a number")
	}

	factor, ok, err := flags.Float("--factor")
	if err != nil {
		return usage.InvalidValue("--factor", flags.String("--factor", ""), "expected a number")
	}
	if !ok {
		factor = scale.DefaultFactor
	}

	s := deps.Scaler()
	v := s.Viewport()

	_, _ = deps.Printf("%s %gx%g\n", style.Header("viewport:"), v.Width, v.Height)
	_, _ = deps.Printf("  %-22s %s\n", "horizontal", formatSize(s.Horizontal(size)))
	_, _ = deps.Printf("  %-22s %s\n", "vertical", formatSize(s.Vertical(size)))
	_, _ = deps.Printf("  %-22s %s\n", "moderate (factor "+strconv.FormatFloat(factor, 'g', -1, 64)+")", formatSize(s.Moderate(size, factor)))
	return nil
}

func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
