package config

import (
	"github.com/amicly/appearance/internal/dispatchers"
	"github.com/amicly/appearance/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !isUserKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)
	_, _ = deps.Println(value)
	return nil
}
