// Package flagx lets several configuration layers share os.Args without
// tripping over each other's flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments that belong to the given flags.
//
// valueFlags take a value, either as the next argument (-d dsn) or inline
// (-d=dsn). boolFlags never consume the next argument. Everything else in args
// is dropped, so the result can be handed to a dedicated flag.FlagSet.
func FilterArgs(args []string, valueFlags []string, boolFlags ...string) []string {
	takesValue := make(map[string]bool, len(valueFlags)+len(boolFlags))
	for _, f := range valueFlags {
		takesValue[f] = true
	}
	for _, f := range boolFlags {
		takesValue[f] = false
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := takesValue[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		wantsValue, ok := takesValue[arg]
		if !ok {
			continue
		}
		filtered = append(filtered, arg)
		if wantsValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// JsonConfigFlags returns the config file path given with -c or -config,
// or "" when neither is present.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
