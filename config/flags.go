package config

import "strings"

// parseFlags parses command line flags into key/value pairs.
// The following forms are permitted:
// -flag     => just a boolean flag
// --flag    => double dashes are also permitted
// -flag=x   => single dash
// -flag x   => single dash, no equal
// Arguments which don't belong to a flag are returned as positional args.
func parseFlags(args []string) (map[string]any, []string) {
	fs := map[string]any{}
	var positional []string

	flag := func(s string) (string, bool) {
		switch {
		case s == "-" || s == "--":
			return "", false
		case strings.HasPrefix(s, "--"):
			return strings.TrimPrefix(s, "--"), true
		case strings.HasPrefix(s, "-"):
			return strings.TrimPrefix(s, "-"), true
		default:
			return "", false
		}
	}

	var currName string
	for _, arg := range args {
		name, ok := flag(arg)
		if ok {
			if currName != "" {
				// prev is a bool flag
				fs[currName] = true
				currName = ""
			}
			if n, val, ok := strings.Cut(name, "="); ok {
				fs[n] = val
			} else {
				currName = name
			}
			continue
		}
		if currName != "" {
			fs[currName] = arg
			currName = ""
			continue
		}
		positional = append(positional, arg)
	}
	if currName != "" {
		fs[currName] = true
	}
	return fs, positional
}
