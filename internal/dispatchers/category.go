package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryTheme                         // Choosing and inspecting themes
	CategoryTypography                    // Text styles and responsive sizes
	CategoryConfig                        // Configuration
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryTheme:
		return "choose a theme"
	case CategoryTypography:
		return "typography and scale"
	case CategoryConfig:
		return "configure amicly"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryTheme,
	CategoryTypography,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
