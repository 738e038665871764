package game

import "time"

// Board dimensions (in cells).
const GridSize = 20

// Window layout. The board is square; the strip above holds the HUD
// text and the area below the board holds the on-screen pad.
const (
	CellPixels   = 28
	BoardMargin  = 20
	HUDHeight    = 44
	PadHeight    = 150
	WindowWidth  = GridSize*CellPixels + 2*BoardMargin
	WindowHeight = HUDHeight + GridSize*CellPixels + 2*BoardMargin + PadHeight
	BoardTop     = HUDHeight + BoardMargin
	BoardLeft    = BoardMargin
)

// Tick speed ramp. The interval shrinks by SpeedStep per food eaten and
// never drops below MinInterval.
const (
	StartInterval = 200 * time.Millisecond
	SpeedStep     = 10 * time.Millisecond
	MinInterval   = 70 * time.Millisecond
)

// Starting snake: length 2, centered, moving right.
const StartLength = 2

// Font atlas layout (rasterized from basicfont.Face7x13 at startup:
// 32 cols x 3 rows covering ASCII 32-126).
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)

// On-screen directional pad geometry (window pixel space, below board).
const (
	PadButtonSize = 42
	PadGap        = 6
)

// Audio.
const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Key under which the best score is persisted.
const BestScoreKey = "best"
