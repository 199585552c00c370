// Package config loads the retainrange command configuration from .env and
// .env.toml files (looked up from a directory upwards), the process
// environment and command line flags.
//
// Precedence, highest first: flags, dotenv files, RETAIN_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	KeyCases   = "cases"
	KeyOnly    = "only"
	KeyVerbose = "verbose"

	envPrefix = "RETAIN_"

	DefaultCases = "retain.toml"
)

type Config struct {
	// Cases is the path of the TOML case file.
	Cases string
	// Only restricts the run to the case with this name.
	Only    string
	Verbose bool
}

func Default() Config {
	return Config{
		Cases: DefaultCases,
	}
}

// Load builds the configuration for a command started in dir with args
// (without the program name). A single positional argument is taken as the
// case file.
func Load(dir string, args []string) (Config, error) {
	vs := map[string]any{}
	for _, key := range []string{KeyCases, KeyOnly, KeyVerbose} {
		if v, ok := os.LookupEnv(envPrefix + strings.ToUpper(key)); ok {
			vs[key] = v
		}
	}
	dvs, err := lookupDotenv(dir)
	if err != nil {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	for k, v := range dvs {
		vs[k] = v
	}
	fvs, positional := parseFlags(args)
	for k, v := range fvs {
		vs[k] = v
	}
	switch len(positional) {
	case 0:
	case 1:
		vs[KeyCases] = positional[0]
	default:
		return Config{}, fmt.Errorf("too many arguments: %q", positional)
	}
	return decode(vs)
}

func decode(vs map[string]any) (Config, error) {
	c := Default()
	if v, ok := vs[KeyCases]; ok {
		s, err := asString(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyCases, err)
		}
		c.Cases = s
	}
	if v, ok := vs[KeyOnly]; ok {
		s, err := asString(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyOnly, err)
		}
		c.Only = s
	}
	if v, ok := vs[KeyVerbose]; ok {
		b, err := asBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyVerbose, err)
		}
		c.Verbose = b
	}
	return c, nil
}

func asString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return "", fmt.Errorf("missing value")
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func asBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, fmt.Errorf("not a boolean: %v", v)
	}
}
