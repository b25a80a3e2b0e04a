package status

// Service exposes the registry through the service lifecycle
type Service struct {
	registry *Registry
}

// NewService creates the service with an empty registry
func NewService() *Service {
	return &Service{registry: NewRegistry()}
}

func (s *Service) Name() string           { return "status" }
func (s *Service) Dependencies() []string { return nil }
func (s *Service) Init(...any) error      { return nil }
func (s *Service) Start() error           { return nil }
func (s *Service) Stop() error            { return nil }

// Registry returns the shared registry
func (s *Service) Registry() *Registry {
	return s.registry
}
