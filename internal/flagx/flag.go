// Package flagx holds helpers that let several components parse their own
// subset of os.Args without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs returns the subset of args that belongs to allowedFlags,
// keeping each flag's value when it is given as a separate argument.
//
// Supported forms:
//
//	-c conf.json
//	--config=conf.json
//
// A token following an allowed flag is treated as its value only when it
// does not itself start with '-'.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// StringFlag extracts a single string value from args that may be spelled
// with any of names (without the leading dash). The last occurrence wins.
// An absent flag yields "".
func StringFlag(args []string, names ...string) string {
	var value string

	dashed := make([]string, 0, len(names)*2)
	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		fs.StringVar(&value, n, "", "")
		dashed = append(dashed, "-"+n, "--"+n)
	}
	_ = fs.Parse(FilterArgs(args, dashed))

	return value
}

// JSONConfigFlag returns the config file path given with -c or -config.
func JSONConfigFlag() string {
	return StringFlag(os.Args[1:], "c", "config")
}

// EnvFileFlag returns the dotenv file path given with -env.
func EnvFileFlag() string {
	return StringFlag(os.Args[1:], "env")
}
