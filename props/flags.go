package props

import "github.com/spf13/pflag"

// Flags reads properties from command-line flags the user explicitly set.
// Flags left at their default value are reported as unset so that lower
// priority sources in a Chain still apply.
type Flags struct {
	fs    *pflag.FlagSet
	names map[string]string
}

// NewFlags returns a flag Source. names maps property keys to flag names.
func NewFlags(fs *pflag.FlagSet, names map[string]string) *Flags {
	return &Flags{fs: fs, names: names}
}

// Property implements Source. A nil Flags has no properties.
func (f *Flags) Property(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	name, ok := f.names[key]
	if !ok || f.fs == nil {
		return "", false
	}
	flag := f.fs.Lookup(name)
	if flag == nil || !flag.Changed {
		return "", false
	}
	return flag.Value.String(), true
}
