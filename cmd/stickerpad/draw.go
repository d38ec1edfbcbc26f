package main

import (
	"fmt"

	"github.com/example/stickerpad/internal/appstate"
	"github.com/example/stickerpad/internal/script"
	"github.com/example/stickerpad/internal/surface"
)

type drawCmd struct {
	subcommand
	tool string
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	c := &drawCmd{subcommand: newSubcommand(r, "draw")}
	c.fs.Usage = usageFunc(c)
	c.fs.StringVar(&c.tool, "tool", "", "initial tool: a label such as thin, an index, or \"marker N\"")
	if err := c.fs.Parse(args); err != nil {
		return nil, err
	}
	if c.fs.NArg() > 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (d *drawCmd) Run() error {
	face, err := surface.LoadGlyphFace(d.config.GlyphFont, surface.DefaultGlyphSize)
	if err != nil {
		return fmt.Errorf("glyph font: %w", err)
	}
	opts := []appstate.Option{
		appstate.WithTheme(d.activeTheme),
		appstate.WithCatalog(d.catalog),
		appstate.WithCanvasSize(d.config.Canvas.Width, d.config.Canvas.Height),
		appstate.WithGlyphFace(face),
		appstate.WithLogger(d.logger),
	}
	if d.tool != "" {
		t, err := script.ResolveTool(d.catalog, splitToolArgs(d.tool))
		if err != nil {
			return err
		}
		if err := t.Validate(); err != nil {
			return err
		}
		opts = append(opts, appstate.WithTool(t))
	}
	appstate.New(opts...).Run()
	return nil
}
