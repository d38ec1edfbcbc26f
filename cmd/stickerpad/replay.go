package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/example/stickerpad/internal/script"
	"github.com/example/stickerpad/internal/sketch"
	"github.com/example/stickerpad/internal/surface"
)

type replayCmd struct {
	subcommand
	file  string
	trace bool
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	c := &replayCmd{subcommand: newSubcommand(r, "replay")}
	c.fs.Usage = usageFunc(c)
	c.fs.StringVar(&c.file, "file", "", "script to run (- for stdin)")
	c.fs.BoolVar(&c.trace, "trace", false, "print the surface calls of the final frame")
	if err := c.fs.Parse(args); err != nil {
		return nil, err
	}
	if c.file == "" {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *replayCmd) Run() error {
	src := c.stdin
	if c.file != "-" {
		f, err := os.Open(c.file)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	tr, s := c.newSession()
	if err := script.NewRunner(s, c.stdout, c.logger).Run(src); err != nil {
		return fmt.Errorf("%s: %w", c.file, err)
	}
	if err := script.Describe(c.stdout, s); err != nil {
		return err
	}
	if c.trace {
		tr.Reset()
		s.Redraw()
		fmt.Fprint(c.stdout, tr.String())
	}
	return nil
}

// newSession builds a headless session drawing into a call trace.
func (r *root) newSession() (*surface.Trace, *sketch.Session) {
	tr := surface.NewTrace(float64(r.config.Canvas.Width), float64(r.config.Canvas.Height))
	s := sketch.New(tr, sketch.WithCatalog(r.catalog), sketch.WithLogger(r.logger))
	return tr, s
}

func splitToolArgs(s string) []string {
	return strings.Fields(s)
}
