package main

import (
	"fmt"
	"text/tabwriter"
)

type toolsCmd struct {
	subcommand
}

func parseToolsCmd(args []string, r *root) (*toolsCmd, error) {
	c := &toolsCmd{subcommand: newSubcommand(r, "tools")}
	c.fs.Usage = usageFunc(c)
	if err := c.fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (t *toolsCmd) Run() error {
	w := tabwriter.NewWriter(t.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tLABEL\tTOOL")
	for i, tool := range t.catalog.Tools() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, t.catalog.Label(i), tool)
	}
	return w.Flush()
}
