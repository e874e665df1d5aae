package config

import (
	"os"
	"strconv"
)

// EnvPrefix starts every environment variable the configuration reads.
const EnvPrefix = "NBTERM_"

// envMapping maps environment variables to the fields they set.
var envMapping = map[string]func(*Config, string) error{
	"NBTERM_LOG_LEVEL": func(c *Config, v string) error {
		c.Log.Level = v
		return nil
	},
	"NBTERM_LOG_FILE": func(c *Config, v string) error {
		c.Log.File = v
		return nil
	},
	"NBTERM_READ_ONLY": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid("$NBTERM_READ_ONLY", "editor.read_only", "%q is not a boolean", v)
		}
		c.Editor.ReadOnly = b
		return nil
	},
	"NBTERM_TAB_WIDTH": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid("$NBTERM_TAB_WIDTH", "editor.tab_width", "%q is not a number", v)
		}
		c.Editor.TabWidth = n
		return nil
	},
}

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for name, set := range envMapping {
		if v, ok := lookup(name); ok {
			if err := set(c, v); err != nil {
				return err
			}
		}
	}
	return c.Validate()
}
