package cli

import (
	"fmt"

	"github.com/saturnines/product-search/pkg/errors"
)

// Recognized flags. Every other token is ignored.
const (
	NameFlag   = "--name"
	ConfigFlag = "--config"
)

// ErrMissingName is the usage error reported when --name has no value.
var ErrMissingName = fmt.Errorf("missing required name parameter: please provide a product name using %s", NameFlag)

// flagIndex returns the position of the first occurrence of flag, or -1.
func flagIndex(args []string, flag string) int {
	for i, a := range args {
		if a == flag {
			return i
		}
	}
	return -1
}

// LookupFlag returns the token following the first occurrence of flag.
// found is false when flag is absent; value is "" when flag is the last token.
func LookupFlag(args []string, flag string) (value string, found bool) {
	i := flagIndex(args, flag)
	switch {
	case i < 0:
		return "", false
	case i+1 < len(args):
		return args[i+1], true
	default:
		return "", true
	}
}

// ReadName extracts the search string. The value is taken verbatim, even
// when it looks like another flag.
func ReadName(args []string) (string, error) {
	name, _ := LookupFlag(args, NameFlag)
	if name == "" {
		return "", errors.WrapError(ErrMissingName, errors.ErrUsage, "read arguments")
	}
	return name, nil
}

// ConfigPath returns the --config value. The token consumed as the --name
// value is never read as a flag, and --name itself is never a path.
func ConfigPath(args []string) (path string, found bool) {
	nameIdx := flagIndex(args, NameFlag)
	for i, a := range args {
		if a != ConfigFlag || (nameIdx >= 0 && i == nameIdx+1) {
			continue
		}
		if i+1 < len(args) && i+1 != nameIdx {
			return args[i+1], true
		}
		return "", true
	}
	return "", false
}

// wantsHelp is true for -h/--help when there is no --name to search for.
func wantsHelp(args []string) bool {
	if flagIndex(args, NameFlag) >= 0 {
		return false
	}
	return flagIndex(args, "-h") >= 0 || flagIndex(args, "--help") >= 0
}
