package cmd

import (
	"strconv"
	"strings"

	"github.com/grovetools/hyprdispatch/errors"
	"github.com/grovetools/hyprdispatch/pkg/action"
	"github.com/spf13/pflag"
)

const (
	flagHelp           = "help"
	flagVersion        = "version"
	flagVerbose        = "verbose"
	flagConfig         = "config"
	flagPrintSignature = "print-signature"
)

// actionFlags maps value-taking flags to the action they enqueue.
var actionFlags = map[string]action.Kind{
	"workspace":   action.KindWorkspace,
	"fullscreen":  action.KindFullscreen,
	"monitor":     action.KindMonitor,
	"move-window": action.KindMoveWindow,
}

// Invocation is the parsed command line.
type Invocation struct {
	Queue      action.Queue
	Help       bool
	Version    bool
	Verbose    bool
	ConfigPath string
}

// NewFlagSet returns a standalone flag set carrying the command-line flags.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("hyprdispatch", pflag.ContinueOnError)
	DefineFlags(fs)
	return fs
}

// DefineFlags adds the command-line flags to fs. Definition order is the
// order shown in help.
func DefineFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false

	fs.String("workspace", "", "Switch to `workspace` (number, name:<name>, or relative like -1)")
	fs.String("fullscreen", "", "Set fullscreen `mode`: enable, disable, toggle")
	fs.String("monitor", "", "Focus monitor by `name` or index")
	fs.String("move-window", "", "Move the focused window to `workspace`")
	fs.Bool(flagPrintSignature, false, "Print HYPRLAND_INSTANCE_SIGNATURE=<value> for the resolved session")
	fs.StringP(flagConfig, "c", "", "Load configuration from `path`")
	fs.BoolP(flagVerbose, "v", false, "Enable debug logging on stderr")
	fs.Bool(flagVersion, false, "Print version information")
	fs.BoolP(flagHelp, "h", false, "Show this help")
}

// ParseArgs turns args into an Invocation. Actions are queued in the order
// their flags appear. Help wins over everything before "--"; anything after
// "--" is ignored.
func ParseArgs(fs *pflag.FlagSet, args []string) (Invocation, error) {
	var inv Invocation

	if wantsHelp(args) {
		inv.Help = true
		return inv, nil
	}

	if err := checkTokens(fs, args); err != nil {
		return inv, err
	}

	var actions []action.Action
	err := fs.ParseAll(args, func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case flagVersion:
			inv.Version = true
		case flagVerbose:
			inv.Verbose = true
		case flagConfig:
			inv.ConfigPath = value
		case flagPrintSignature:
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return errors.InvalidArgument("--"+flagPrintSignature+" value", value, "true", "false")
			}
			if enabled {
				actions = append(actions, action.PrintSignature{})
			}
		default:
			kind, ok := actionFlags[flag.Name]
			if !ok {
				return errors.UnknownOption("--" + flag.Name)
			}
			a, err := action.New(kind, value)
			if err != nil {
				return err
			}
			actions = append(actions, a)
		}
		return nil
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return inv, err
		}
		return inv, errors.Wrap(err, errors.ErrCodeUnknownOption, err.Error())
	}

	inv.Queue = action.NewQueue(actions...)
	return inv, nil
}

// wantsHelp reports whether -h or --help appears before "--".
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// checkTokens walks args the way pflag will and rejects unknown flags,
// flags missing their value, and stray positional arguments, naming the
// offending token.
func checkTokens(fs *pflag.FlagSet, args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return nil

		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag := fs.Lookup(name)
			if name == "" || flag == nil {
				return errors.UnknownOption(arg)
			}
			if hasValue || flag.NoOptDefVal != "" {
				continue
			}
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				return errors.MissingValue("--" + name)
			}
			i++

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			shorthands := arg[1:]
			for j := 0; j < len(shorthands); j++ {
				flag := fs.ShorthandLookup(shorthands[j : j+1])
				if flag == nil {
					return errors.UnknownOption(arg)
				}
				if flag.NoOptDefVal != "" {
					continue
				}
				// A value-taking shorthand consumes the rest of the token
				// or, failing that, the next argument.
				if j+1 < len(shorthands) {
					break
				}
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
					return errors.MissingValue("-" + shorthands[j:j+1])
				}
				i++
			}

		default:
			return errors.UnknownOption(arg)
		}
	}
	return nil
}
