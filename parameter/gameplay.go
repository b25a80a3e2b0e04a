package parameter

// Board Limits
const (
	// BoardMinDim is the floor applied to both board columns and rows
	BoardMinDim = 8

	// BoardMaxDim caps board columns and rows regardless of viewport size
	BoardMaxDim = 80

	// MinCellSize is the smallest cell edge in canvas pixels at zoom 1.0
	MinCellSize = 2.0

	// ZoomMin and ZoomMax bound the zoom multiplier applied to MinCellSize
	ZoomMin = 0.8
	ZoomMax = 2.0

	// ZoomStep is the zoom change per +/- keypress
	ZoomStep = 0.1

	// DefaultZoom is the zoom used when no setting is present
	DefaultZoom = 1.0
)

// Snake & Fruit
const (
	// InitialSnakeLength is the segment count of a freshly started snake
	InitialSnakeLength = 3

	// FruitScore is the score awarded per fruit
	FruitScore = 10

	// FruitPlacementAttempts is the number of random probes before enumerating free cells
	FruitPlacementAttempts = 32
)

// Phase Progression
const (
	// PointsPerPhase is the score span of one phase
	PointsPerPhase = 50

	// ThemeChangeEvery is the phase stride between theme changes
	ThemeChangeEvery = 3

	// MinTickSpeedMs is the fastest allowed tick interval
	MinTickSpeedMs = 50

	// InitialThemeIndex is the palette used when a round starts (Modern)
	InitialThemeIndex = 6

	// ThemeCount is the number of palettes available for phase rotation
	ThemeCount = 11
)

// Difficulty Table (ms per tick, ms removed per phase, tail segments exempt from collision)
const (
	EasyBaseSpeedMs        = 280
	EasySpeedIncrementMs   = 6
	EasyCollisionTolerance = 1

	MediumBaseSpeedMs        = 240
	MediumSpeedIncrementMs   = 8
	MediumCollisionTolerance = 0

	HardBaseSpeedMs        = 200
	HardSpeedIncrementMs   = 10
	HardCollisionTolerance = 0
)
