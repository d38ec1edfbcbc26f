package theme

import (
	"image/color"
)

// Theme defines the colours of the sketchpad window and drawing.
type Theme struct {
	Name string

	// Window
	Background color.RGBA // behind toolbar and stage
	Foreground color.RGBA // title text

	// Toolbar and control bar
	ToolbarBackground      color.RGBA
	ButtonBackground       color.RGBA
	ButtonBackgroundHover  color.RGBA
	ButtonBackgroundPress  color.RGBA // also the selected tool
	ButtonBackgroundDimmed color.RGBA // disabled undo/redo
	ButtonText             color.RGBA
	ButtonTextDimmed       color.RGBA
	ButtonBorder           color.RGBA

	// Stage
	Paper  color.RGBA // canvas clear colour
	Ink    color.RGBA // strokes, glyphs and preview rings
	Shadow color.RGBA // drop shadow under the stage; alpha is the strength
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                   "Default",
		Background:             color.RGBA{236, 236, 236, 255},
		Foreground:             color.RGBA{0, 0, 0, 255},
		ToolbarBackground:      color.RGBA{220, 220, 220, 255},
		ButtonBackground:       color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover:  color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress:  color.RGBA{150, 150, 150, 255},
		ButtonBackgroundDimmed: color.RGBA{215, 215, 215, 255},
		ButtonText:             color.RGBA{0, 0, 0, 255},
		ButtonTextDimmed:       color.RGBA{150, 150, 150, 255},
		ButtonBorder:           color.RGBA{0, 0, 0, 255},
		Paper:                  color.RGBA{255, 255, 255, 255},
		Ink:                    color.RGBA{34, 34, 34, 255},
		Shadow:                 color.RGBA{0, 0, 0, 110},
	}
}
