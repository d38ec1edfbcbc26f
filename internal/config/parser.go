package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/stickerpad/internal/theme"
)

// Parse reads configuration in RC format. Keys may be separated from their
// values by "=" or ":". Unknown keys and sections are ignored.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *theme.Theme

	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}

		var err error
		switch {
		case current != nil:
			err = theme.Set(current, key, value)
		case section == "":
			setRootField(cfg, key, value)
		case section == "canvas":
			err = setCanvasField(&cfg.Canvas, key, value)
		case section == "tools":
			err = setToolsField(&cfg.Tools, key, value)
		}
		if err != nil {
			if section == "" {
				return nil, fmt.Errorf("line %d: root section: %w", n, err)
			}
			return nil, fmt.Errorf("line %d: section [%s]: %w", n, section, err)
		}
	}

	return cfg, scanner.Err()
}

// splitKeyValue splits on the first "=" or ":", whichever comes first, so
// colour values such as "#FF0000" and glyphs survive intact.
func splitKeyValue(line string) (string, string, bool) {
	i := strings.IndexAny(line, "=:")
	if i < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(line[:i])
	value := strings.TrimSpace(line[i+1:])
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func setRootField(cfg *Config, key, value string) {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "glyph_font":
		cfg.GlyphFont = value
	}
}

func setCanvasField(c *Canvas, key, value string) error {
	var dst *int
	switch strings.ToLower(key) {
	case "width":
		dst = &c.Width
	case "height":
		dst = &c.Height
	default:
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	if v <= 0 {
		return fmt.Errorf("%s must be positive, got %d", key, v)
	}
	*dst = v
	return nil
}

func setToolsField(t *Tools, key, value string) error {
	switch strings.ToLower(key) {
	case "markers":
		ms, err := parseMarkers(value)
		if err != nil {
			return err
		}
		t.Markers = ms
	case "stickers":
		t.Stickers = splitList(value)
	}
	return nil
}

func parseMarkers(value string) ([]float64, error) {
	var out []float64
	for _, s := range splitList(value) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid marker thickness %q: %w", s, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("marker thickness %g must be positive", v)
		}
		out = append(out, v)
	}
	return out, nil
}

func splitList(value string) []string {
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
