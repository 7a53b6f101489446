package service

import (
	"context"
	"sync"

	"dealflow-backend/internal/logger"
	"dealflow-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// HealthStatus reports spreadsheet connectivity and per-collection row counts
type HealthStatus struct {
	Connected bool           `json:"connected"`
	Counts    map[string]int `json:"counts"`
	Error     string         `json:"error,omitempty"`
}

type counter func(ctx context.Context) (int, error)

func count[T any](list func(context.Context) ([]T, error)) counter {
	return func(ctx context.Context) (int, error) {
		items, err := list(ctx)
		return len(items), err
	}
}

// HealthService checks that every collection can be read
type HealthService struct {
	counters map[string]counter
}

// NewHealthService creates a health service over all repositories
func NewHealthService(repos *repository.Repositories) *HealthService {
	return &HealthService{counters: map[string]counter{
		"team":              count(repos.Team.List),
		"startups":          count(repos.Startups.List),
		"projects":          count(repos.Projects.List),
		"tasks":             count(repos.Tasks.List),
		"investors":         count(repos.Investors.List),
		"project_investors": count(repos.ProjectInvestors.List),
		"startup_investors": count(repos.StartupInvestors.List),
		"config":            count(repos.Config.List),
	}}
}

// Check reads every collection in parallel. Any failure reports the service
// as disconnected with the first error's message and no counts.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	var (
		mu     sync.Mutex
		counts = make(map[string]int, len(s.counters))
	)

	g, gctx := errgroup.WithContext(ctx)
	for name, fn := range s.counters {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			counts[name] = n
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("health check failed")
		return &HealthStatus{Connected: false, Counts: map[string]int{}, Error: err.Error()}
	}
	return &HealthStatus{Connected: true, Counts: counts}
}
