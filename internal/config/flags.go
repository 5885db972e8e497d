package config

import (
	"flag"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FlagKeys maps command line flag names to configuration keys.
type FlagKeys map[string]string

// BindFlags binds every flag set on the command line to its configuration
// key on v, so Load resolves it above env and file values. Flags left at
// their default are not bound and never shadow the other layers.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, keys FlagKeys) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("unknown flag %q for key %q", name, key)
		}
		if !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// FromGoFlags wraps a parsed standard flag set. Flags visited during the
// parse are marked as changed.
func FromGoFlags(goFlags *flag.FlagSet) *pflag.FlagSet {
	fs := pflag.NewFlagSet(goFlags.Name(), pflag.ContinueOnError)
	fs.AddGoFlagSet(goFlags)
	goFlags.Visit(func(f *flag.Flag) {
		if pf := fs.Lookup(f.Name); pf != nil {
			pf.Changed = true
		}
	})
	return fs
}
