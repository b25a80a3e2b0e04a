package service

// Service is the lifecycle contract for long-lived subsystems
// such as the tick scheduler, the frame loop, audio output and metrics
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed settings
//  3. Start() - launch goroutines
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier used for dependency references
	Name() string

	// Dependencies names the services that must Init and Start first
	Dependencies() []string

	// Init configures the service, args are service specific
	Init(args ...any) error

	// Start begins operation once every service has initialized
	Start() error

	// Stop halts operation, must be idempotent
	Stop() error
}
