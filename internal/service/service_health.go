package service

import "context"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	deps []Pinger
}

func NewHealthService(deps ...Pinger) HealthService {
	return &healthService{deps: deps}
}

func (s *healthService) Check(ctx context.Context) error {
	for _, dep := range s.deps {
		if err := dep.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
