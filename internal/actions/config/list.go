package config

import (
	"encoding/json"

	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/domain"
	"github.com/amicly/appearance/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	if flags.Has("--json") {
		visible := make(map[string]string)
		for _, key := range domain.VisibleConfigKeys() {
			if value, exists := configMap[key.Name]; exists {
				visible[key.Name] = value
			}
		}
		data, err := json.MarshalIndent(visible, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	for i, section := range domain.ConfigSections() {
		if i > 0 {
			_, _ = deps.Println("")
		}
		_, _ = deps.Println(style.Header(section))

		for _, key := range domain.VisibleConfigKeys() {
			if key.Section != section {
				continue
			}
			value, exists := configMap[key.Name]
			if !exists {
				continue
			}
			_, _ = deps.Printf("  %s=%s  %s\n", key.Name, value, style.Muted("# "+key.Description))
		}
	}

	return nil
}
