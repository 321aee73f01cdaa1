package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in config list (Storage, Display, Logging)
	Hidden      bool   // Hidden keys are not shown in help or config list
}

// Storage backends accepted by the "storage" key.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

// ConfigKeys defines all available configuration keys.
// Order determines display order in `amicly config list`.
var ConfigKeys = []ConfigKey{
	// Storage
	{
		Name:        "storage",
		Default:     StorageSQLite,
		Description: "Where the theme choice is kept: sqlite, file, memory",
		Section:     "Storage",
	},
	{
		Name:        "db_path",
		Default:     "", // Set dynamically to paths.DBFilePath()
		Description: "Path to the preferences database",
		Section:     "Storage",
	},
	// Display
	{
		Name:        "viewport_width",
		Default:     "375",
		Description: "Device viewport width used for responsive scaling",
		Section:     "Display",
	},
	{
		Name:        "viewport_height",
		Default:     "812",
		Description: "Device viewport height used for responsive scaling",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "debug",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Hidden (internal), used by the file storage backend
	{
		Name:        ThemeStorageKey,
		Default:     "",
		Description: "Selected theme when storage=file",
		Section:     "Storage",
		Hidden:      true,
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Storage", "Display", "Logging"}
}
