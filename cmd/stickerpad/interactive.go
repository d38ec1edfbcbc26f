package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/example/stickerpad/internal/script"
)

type interactiveCmd struct {
	subcommand
	quiet bool
}

func parseInteractiveCmd(args []string, r *root) (*interactiveCmd, error) {
	c := &interactiveCmd{subcommand: newSubcommand(r, "interactive")}
	c.fs.Usage = usageFunc(c)
	c.fs.BoolVar(&c.quiet, "q", false, "do not print a prompt")
	if err := c.fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

// Run executes script lines from stdin until EOF or "exit". Errors are
// reported and the session carries on.
func (i *interactiveCmd) Run() error {
	_, s := i.newSession()
	runner := script.NewRunner(s, i.stdout, i.logger)
	if !i.quiet {
		fmt.Fprintln(i.stdout, "Enter commands (type 'exit' to quit)")
	}
	scanner := bufio.NewScanner(i.stdin)
	for n := 1; ; n++ {
		if !i.quiet {
			fmt.Fprint(i.stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "help" {
			fmt.Fprintln(i.stdout, "enter X Y | move X Y | press X Y | release | leave | tool ... | undo | redo | clear | state | exit")
			continue
		}
		if err := runner.ExecLine(n, line); err != nil {
			fmt.Fprintln(i.stdout, err)
		}
	}
	return scanner.Err()
}
