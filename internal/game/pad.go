package game

// Pad is the on-screen directional pad below the board. Taps feed the
// same router entry point as the keyboard, so the router stays
// source-agnostic.
type padButton struct {
	dir   Direction
	x, y  int // top-left, window pixel space
	glyph string
}

type Pad struct {
	buttons [4]padButton
	flash   [4]float64 // press highlight time left, seconds
}

func NewPad() *Pad {
	cx := WindowWidth / 2
	top := BoardTop + GridSize*CellPixels + BoardMargin + 8
	b := PadButtonSize
	g := PadGap
	return &Pad{
		buttons: [4]padButton{
			{dir: DirUp, x: cx - b/2, y: top, glyph: "^"},
			{dir: DirLeft, x: cx - b/2 - b - g, y: top + b + g, glyph: "<"},
			{dir: DirDown, x: cx - b/2, y: top + b + g, glyph: "v"},
			{dir: DirRight, x: cx + b/2 + g, y: top + b + g, glyph: ">"},
		},
	}
}

// Hit maps a click in window coordinates to a pad direction and lights
// up the pressed button.
func (p *Pad) Hit(x, y float64) (Direction, bool) {
	for i, btn := range p.buttons {
		if x >= float64(btn.x) && x < float64(btn.x+PadButtonSize) &&
			y >= float64(btn.y) && y < float64(btn.y+PadButtonSize) {
			p.flash[i] = 0.15
			return btn.dir, true
		}
	}
	return Direction{}, false
}

// Update decays press highlights.
func (p *Pad) Update(dt float64) {
	for i := range p.flash {
		if p.flash[i] > 0 {
			p.flash[i] -= dt
		}
	}
}

// Render queues the pad buttons and their glyphs.
func (p *Pad) Render(r *Renderer, theme Theme, fbW int) {
	s := float32(fbW) / WindowWidth
	for i, btn := range p.buttons {
		col := theme.PadIdle
		if p.flash[i] > 0 {
			col = theme.PadPressed
		}
		cx := (float32(btn.x) + PadButtonSize/2) * s
		cy := (float32(btn.y) + PadButtonSize/2) * s
		r.Sprite(cx, cy, PadButtonSize*s, col, 1, 0)
		r.Sprite(cx, cy, PadButtonSize*s, theme.GridLine, 1, 2)

		gx := btn.x + (PadButtonSize-TextWidth(btn.glyph, 2))/2
		gy := btn.y + (PadButtonSize-2*FontCellH)/2
		r.DrawString(btn.glyph, int(float32(gx)*s), int(float32(gy)*s), 2*s, theme.Text)
	}
}
