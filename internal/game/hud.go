package game

import "fmt"

// RenderHUD draws the score bar and the pause/game-over overlays.
func RenderHUD(r *Renderer, snap Snapshot, theme Theme, fbW int) {
	s := float32(fbW) / WindowWidth
	hs := 1.5 * s

	scoreStr := fmt.Sprintf("SCORE %d", snap.Score)
	r.DrawString(scoreStr, int(12*s), int(14*s), hs, theme.Text)

	bestStr := fmt.Sprintf("BEST %d", snap.Best)
	r.DrawString(bestStr, fbW-TextWidth(bestStr, hs)-int(12*s), int(14*s), hs, theme.Accent)

	speedStr := fmt.Sprintf("x%.1f", float64(StartInterval)/float64(snap.Interval))
	r.DrawString(speedStr, fbW/2-TextWidth(speedStr, hs)/2, int(14*s), hs, theme.TextDim)

	midY := int((float32(BoardTop) + float32(GridSize*CellPixels)/2) * s)

	switch snap.Phase {
	case PhasePaused:
		dimBoard(r, theme, fbW)
		msg := "PAUSED"
		r.DrawString(msg, fbW/2-TextWidth(msg, 3*s)/2, midY-int(30*s), 3*s, theme.Text)
		hint := "SPACE to resume"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1.5*s)/2, midY+int(20*s), 1.5*s, theme.TextDim)

	case PhaseGameOver:
		dimBoard(r, theme, fbW)
		msg := "GAME OVER"
		r.DrawString(msg, fbW/2-TextWidth(msg, 3*s)/2, midY-int(50*s), 3*s, theme.Danger)

		result := fmt.Sprintf("Score %d   Best %d", snap.Score, snap.Best)
		r.DrawString(result, fbW/2-TextWidth(result, 1.5*s)/2, midY+int(4*s), 1.5*s, theme.Text)

		hint := "SPACE or R for a new run"
		r.DrawString(hint, fbW/2-TextWidth(hint, 1.5*s)/2, midY+int(34*s), 1.5*s, theme.TextDim)
	}
}
