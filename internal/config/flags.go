package config

import (
	"fmt"
	"github.com/icinga/rules-search/internal"
	"github.com/icinga/rules-search/internal/utils"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ErrHelp is returned by ParseFlags if the help message was requested.
var ErrHelp = errors.New("help requested")

// Flags defines the CLI flags supported by rules-search.
type Flags struct {
	// Version decides whether to just print the version and exit.
	Version bool `long:"version" description:"print version and exit"`
	// Config is the path to the config file.
	Config string `short:"c" long:"config" description:"path to config file"`
	// Rules overrides the rules-file of the config file.
	Rules string `short:"r" long:"rules" description:"path to a YAML rule inventory to search"`
	// Output overrides the output format of the config file.
	Output string `short:"o" long:"output" description:"output format" choice:"yaml" choice:"json"`
	// FromFilter is the path to a filter document to be converted into a query.
	FromFilter string `long:"from-filter" description:"print the search query of the filter in this YAML or JSON file"`
}

// ParseFlags parses the given CLI arguments into flags and returns the remaining positional arguments.
//
// The help message is written to stdout, in which case ErrHelp is returned.
func ParseFlags(args []string, f *Flags) ([]string, error) {
	parser := flags.NewParser(f, flags.Default^flags.PrintErrors)
	parser.Usage = "[OPTIONS] [QUERY...]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(os.Stdout, flagErr.Message)

			return nil, ErrHelp
		}

		return nil, errors.Wrap(err, "can't parse CLI flags")
	}

	return rest, nil
}

// ParseFlagsAndConfig parses the CLI flags provided to the executable and tries to load the config from the YAML file.
//
// Prints any error during parsing or config loading to os.Stderr and exits, otherwise returns the flags,
// the loaded ConfigFile with the flag overrides applied and the positional arguments.
func ParseFlagsAndConfig() (*Flags, *ConfigFile, []string) {
	var f Flags
	args, err := ParseFlags(os.Args[1:], &f)
	if err != nil {
		if errors.Is(err, ErrHelp) {
			os.Exit(ExitSuccess)
		}

		utils.PrintErrorThenExit(err, ExitFailure)
	}

	if f.Version {
		internal.Version.Print("Rules Search")
		os.Exit(ExitSuccess)
	}

	c, err := FromYAMLFile(f.Config)
	if err != nil {
		utils.PrintErrorThenExit(err, ExitFailure)
	}

	f.apply(c)

	return &f, c, args
}

// apply overrides the values of c set by flags.
func (f *Flags) apply(c *ConfigFile) {
	if f.Rules != "" {
		c.RulesFile = f.Rules
	}
	if f.Output != "" {
		c.Output = f.Output
	}
}
