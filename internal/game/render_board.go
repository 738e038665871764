package game

// cellCenter returns the framebuffer pixel center of a board cell.
// fbScale maps window coordinates to framebuffer pixels (hidpi).
func cellCenter(c Cell, fbScale float32) (float32, float32) {
	x := (float32(BoardLeft) + (float32(c.X)+0.5)*CellPixels) * fbScale
	y := (float32(BoardTop) + (float32(c.Y)+0.5)*CellPixels) * fbScale
	return x, y
}

// RenderBoard queues the board background, the food, and the snake.
func RenderBoard(r *Renderer, snap Snapshot, theme Theme, fbW int) {
	s := float32(fbW) / WindowWidth

	// Two layers per cell: the outer one shows through as grid lines.
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			cx, cy := cellCenter(Cell{X: x, Y: y}, s)
			r.Sprite(cx, cy, CellPixels*s, theme.GridLine, 1, 0)
			r.Sprite(cx, cy, (CellPixels-2)*s, theme.Board, 1, 0)
		}
	}

	// Food first so the snake draws over it on the game-over freeze.
	fx, fy := cellCenter(snap.Food, s)
	r.Sprite(fx, fy, (CellPixels-6)*s, theme.Food, 1, 1)

	// Snake: head brightest, body fading toward the tail. Tail-to-head
	// draw order keeps the head on top when the run just ended.
	n := len(snap.Snake)
	for i := n - 1; i >= 0; i-- {
		cx, cy := cellCenter(snap.Snake[i], s)
		col := theme.SnakeHead
		if i > 0 {
			col = lerpRGB(theme.SnakeBody, theme.SnakeTail, float64(i)/float64(n))
		}
		if snap.Phase == PhaseGameOver {
			col = lerpRGB(col, theme.Danger, 0.35)
		}
		r.Sprite(cx, cy, (CellPixels-4)*s, col, 1, 0)
	}
}

// dimBoard queues a translucent scrim over the board for overlays.
func dimBoard(r *Renderer, theme Theme, fbW int) {
	s := float32(fbW) / WindowWidth
	for y := 0; y < GridSize; y++ {
		for x := 0; x < GridSize; x++ {
			cx, cy := cellCenter(Cell{X: x, Y: y}, s)
			r.Sprite(cx, cy, CellPixels*s, theme.Background, 0.65, 0)
		}
	}
}
