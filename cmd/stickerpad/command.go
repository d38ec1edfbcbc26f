package main

import (
	"flag"
	"strings"
)

// subcommand is the shared shape of every command below root.
type subcommand struct {
	*root
	name string
	fs   *flag.FlagSet
}

func newSubcommand(r *root, name string) subcommand {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(r.stderr)
	return subcommand{root: r, name: name, fs: fs}
}

func (s subcommand) Program() string {
	return strings.TrimSpace(strings.Join([]string{s.root.program, s.name}, " "))
}

func (s subcommand) FlagSet() *flag.FlagSet {
	return s.fs
}
