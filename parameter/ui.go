package parameter

import "time"

// Layout
const (
	// TopMargin is the HUD height in terminal rows
	TopMargin = 1

	// PixelRatioX and PixelRatioY are canvas pixels per terminal cell (half-block encoding)
	PixelRatioX = 1
	PixelRatioY = 2
)

// Snake & Fruit Shapes (divisors of the smaller cell edge)
const (
	SegmentRadiusDivisor = 2.3
	HeadRadiusDivisor    = 2.0
	FruitRadiusDivisor   = 2.5

	// EyeMinCellSize is the smallest cell edge (pixels) that shows head eyes
	EyeMinCellSize = 5.0

	// GlowBlend is how far the head glow ring is blended toward the head colour
	GlowBlend = 0.45

	// OutlineBlend is how far the fruit outline moves toward white/black from the background
	OutlineBlend = 0.65

	// LuminanceDarkThreshold splits dark from light backgrounds (relative luminance)
	LuminanceDarkThreshold = 0.4
)

// Overlays & Feedback
const (
	// PhaseAnnounceDuration is how long the phase banner stays visible
	PhaseAnnounceDuration = 1500 * time.Millisecond

	// SavedToastDuration is how long the saved toast stays visible
	SavedToastDuration = 1200 * time.Millisecond

	// SwipeMinCells is the minimum drag distance (terminal cells) recognized as a swipe
	SwipeMinCells = 2

	// PauseDimFactor darkens the board under the pause and game over overlays
	PauseDimFactor = 0.45
)

// UI Text
const (
	TextPaused       = "PAUSED"
	TextResumeHint   = "space to resume"
	TextGameOver     = "GAME OVER"
	TextWon          = "BOARD CLEARED"
	TextRestartHint  = "r restart  q quit"
	TextSaved        = "SAVED"
	TextIdle         = "press space to start"
	TextPhaseFormat  = "PHASE %d"
	TextTrainingFlag = "TRAINING"
)
