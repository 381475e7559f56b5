package constants

import "time"

// UI Layout Constants
const (
	// CellWidth is the number of terminal columns per grid cell, rows stay 1:1
	// Two columns keep cells close to square in most terminal fonts
	CellWidth = 2

	// WallThickness is the border drawn around the arena, in cells
	WallThickness = 1

	// HeaderRows is the number of rows reserved above the arena for title and score
	HeaderRows = 1

	// FooterRows is the optional key hint row below the arena, drawn only when it fits
	FooterRows = 1
)

// UI Text
const (
	TitleText        = " GRID SNAKE "
	ScoreFormat      = "Score: %d"
	PausedText       = " PAUSED - press p to resume "
	HintText         = "wasd/hjkl/arrows move  p pause  m mute  q quit"
	RestartHint      = "[r] Restart   [q] Quit"
	GameOverTitle    = "Game Over!"
	FinalScoreFormat = "Your Score: %d"
	TooSmallText     = "Terminal too small"
)

// UI Timing Constants
const (
	// ScoreBlinkTimeout is how long the score highlight lasts after eating
	ScoreBlinkTimeout = 200 * time.Millisecond
)

// Glyphs
const (
	GlyphSegment = '█'
	GlyphApple   = '●'
	GlyphWall    = '▓'
	GlyphGrass   = '·'
)
