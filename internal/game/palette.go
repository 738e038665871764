package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

// Theme is a named board colour scheme, selectable from settings.
type Theme struct {
	Name       string
	Background RGB
	Board      RGB
	GridLine   RGB
	SnakeHead  RGB
	SnakeBody  RGB
	SnakeTail  RGB
	Food       RGB
	PadIdle    RGB
	PadPressed RGB
	Text       RGB
	TextDim    RGB
	Accent     RGB
	Danger     RGB
}

var Themes = []Theme{
	{
		Name:       "classic",
		Background: RGB{R: 24, G: 26, B: 32},
		Board:      RGB{R: 34, G: 38, B: 46},
		GridLine:   RGB{R: 44, G: 48, B: 58},
		SnakeHead:  RGB{R: 120, G: 220, B: 110},
		SnakeBody:  RGB{R: 90, G: 180, B: 90},
		SnakeTail:  RGB{R: 60, G: 130, B: 70},
		Food:       RGB{R: 235, G: 90, B: 80},
		PadIdle:    RGB{R: 58, G: 62, B: 74},
		PadPressed: RGB{R: 96, G: 104, B: 124},
		Text:       RGB{R: 235, G: 235, B: 235},
		TextDim:    RGB{R: 150, G: 155, B: 165},
		Accent:     RGB{R: 255, G: 210, B: 90},
		Danger:     RGB{R: 255, G: 85, B: 75},
	},
	{
		Name:       "paper",
		Background: RGB{R: 228, G: 222, B: 204},
		Board:      RGB{R: 240, G: 235, B: 218},
		GridLine:   RGB{R: 214, G: 207, B: 188},
		SnakeHead:  RGB{R: 48, G: 96, B: 56},
		SnakeBody:  RGB{R: 72, G: 120, B: 80},
		SnakeTail:  RGB{R: 104, G: 146, B: 110},
		Food:       RGB{R: 190, G: 58, B: 48},
		PadIdle:    RGB{R: 206, G: 199, B: 180},
		PadPressed: RGB{R: 178, G: 170, B: 150},
		Text:       RGB{R: 50, G: 46, B: 40},
		TextDim:    RGB{R: 120, G: 114, B: 102},
		Accent:     RGB{R: 172, G: 120, B: 24},
		Danger:     RGB{R: 180, G: 50, B: 42},
	},
	{
		Name:       "phosphor",
		Background: RGB{R: 6, G: 12, B: 8},
		Board:      RGB{R: 10, G: 20, B: 12},
		GridLine:   RGB{R: 16, G: 34, B: 20},
		SnakeHead:  RGB{R: 140, G: 255, B: 150},
		SnakeBody:  RGB{R: 90, G: 210, B: 110},
		SnakeTail:  RGB{R: 50, G: 150, B: 75},
		Food:       RGB{R: 220, G: 255, B: 120},
		PadIdle:    RGB{R: 20, G: 44, B: 26},
		PadPressed: RGB{R: 40, G: 84, B: 50},
		Text:       RGB{R: 150, G: 255, B: 160},
		TextDim:    RGB{R: 70, G: 140, B: 85},
		Accent:     RGB{R: 230, G: 255, B: 140},
		Danger:     RGB{R: 255, G: 170, B: 90},
	},
}

// ThemeByName returns the named theme, falling back to the first one.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}
