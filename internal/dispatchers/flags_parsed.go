package dispatchers

import (
	"strconv"
	"strings"
)

// ParsedFlags provides typed access to command-line flags.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags creates a ParsedFlags from a slice of flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	if f == nil {
		return nil
	}
	return f.raw
}

// Has returns true if the flag is present (for boolean flags).
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.Raw() {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the value of a --flag=value flag, or defaultVal if not present.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.Raw() {
		if strings.HasPrefix(flag, prefix) {
			return strings.TrimPrefix(flag, prefix)
		}
	}
	return defaultVal
}

// Float returns the numeric value of a flag. ok is false when the flag is
// absent; err is set when it is present but not a number.
func (f *ParsedFlags) Float(name string) (value float64, ok bool, err error) {
	str := f.String(name, "")
	if str == "" {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, true, err
	}
	return value, true, nil
}
