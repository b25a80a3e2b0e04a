package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// FrameBaseline is the frame duration that maps to dt = 1.0
	FrameBaseline = 16670 * time.Microsecond

	// FrameMaxDelta clamps dt after long stalls (inactive terminal, suspended process)
	FrameMaxDelta = 3.0

	// EventChannelSize is the buffered capacity of the terminal event channel
	EventChannelSize = 256

	// FPSSampleWindow is the number of frames averaged for the fps metric
	FPSSampleWindow = 30
)
