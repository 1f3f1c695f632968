package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all CLI flags.
type cliFlags struct {
	output   string
	config   string
	style    string
	title    string
	creator  string
	language string
	verbose  bool
	version  bool
}

// usage is the one-line usage string shown on flag errors.
const usage = "usage: md2epub <input.md> [flags]"

// parseFlags parses CLI arguments into flags and positional arguments.
// args is the full argument vector including the program name.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("md2epub", flag.ContinueOnError)
	fs.StringVarP(&flags.output, "output", "o", "", "output path (default: input with .epub extension)")
	fs.StringVar(&flags.config, "config", "", "YAML config file path")
	fs.StringVar(&flags.style, "style", "", "style name, CSS file path, or literal CSS")
	fs.StringVar(&flags.title, "title", "", "override the book title")
	fs.StringVar(&flags.creator, "creator", "", "override the creator metadata")
	fs.StringVar(&flags.language, "language", "", "override the language metadata")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "print progress to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, fmt.Errorf("%s\n%w", usage, err)
	}

	return flags, fs.Args(), nil
}
