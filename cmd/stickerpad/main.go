package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/stickerpad/internal/config"
	"github.com/example/stickerpad/internal/sketch"
	"github.com/example/stickerpad/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs      *flag.FlagSet
	program string
	config  *config.Config
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer

	themeName string
	width     int
	height    int
	stickers  string
	verbose   bool

	logger      *slog.Logger
	activeTheme *theme.Theme
	catalog     sketch.Catalog
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot(stdin io.Reader, stdout, stderr io.Writer) *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:      flag.NewFlagSet("stickerpad", flag.ContinueOnError),
		program: "stickerpad",
		config:  cfg,
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}
	r.fs.SetOutput(stderr)
	// Precedence: CLI > Env > Config > Default. The loader already applied
	// env over the file, so flags default to the loaded values.
	r.fs.StringVar(&r.themeName, "theme", cfg.Theme, "color theme to use (default, dark, high_contrast, or a file)")
	r.fs.IntVar(&r.width, "width", cfg.Canvas.Width, "canvas width in pixels")
	r.fs.IntVar(&r.height, "height", cfg.Canvas.Height, "canvas height in pixels")
	r.fs.StringVar(&r.stickers, "stickers", strings.Join(cfg.Tools.Stickers, ","), "comma separated sticker glyphs")
	r.fs.BoolVar(&r.verbose, "v", false, "debug logging")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	level := slog.LevelWarn
	if r.verbose {
		level = slog.LevelDebug
	}
	r.logger = slog.New(slog.NewTextHandler(r.stderr, &slog.HandlerOptions{Level: level}))

	if err := r.applyFlags(); err != nil {
		return err
	}
	r.activeTheme = r.loadTheme(r.themeName)

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r)
	case "interactive":
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "tools":
		cmd, err = parseToolsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// applyFlags folds the global flags into the config and builds the catalog.
func (r *root) applyFlags() error {
	r.config.Theme = r.themeName
	r.config.Canvas = config.Canvas{Width: r.width, Height: r.height}
	var stickers []string
	for _, s := range strings.Split(r.stickers, ",") {
		if s = strings.TrimSpace(s); s != "" {
			stickers = append(stickers, s)
		}
	}
	r.config.Tools.Stickers = stickers
	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	cat, err := r.config.Catalog()
	if err != nil {
		return err
	}
	r.catalog = cat
	return nil
}

// loadTheme resolves name against the config's inline themes, then the
// theme loader. Unknown names fall back to the default theme.
func (r *root) loadTheme(name string) *theme.Theme {
	if t, ok := r.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		if name != "default" {
			fmt.Fprintf(r.stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		}
		return theme.Default()
	}
	return t
}

func main() {
	r := newRoot(os.Stdin, os.Stdout, os.Stderr)
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		case errors.Is(err, flag.ErrHelp):
			os.Exit(0)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
