package service

import (
	"context"

	"github.com/calyxcontainers/supplytrack/internal/domain"
	"github.com/calyxcontainers/supplytrack/internal/metrics"
)

// metricsService snapshots the project set under the read lock and hands
// it to the pure functions in the metrics package.
type metricsService struct {
	state *state
}

func (s *metricsService) Summary(ctx context.Context) metrics.Summary {
	return metrics.Summarize(s.state.snapshot(), s.state.today())
}

func (s *metricsService) StatusBreakdown(ctx context.Context) ([]domain.Status, map[domain.Status]int) {
	return metrics.StatusCounts(s.state.snapshot(), s.state.today())
}

func (s *metricsService) PriorityBreakdown(ctx context.Context) ([]domain.Priority, map[domain.Priority]int) {
	return metrics.PriorityCounts(s.state.snapshot())
}

func (s *metricsService) OwnerWorkload(ctx context.Context) []metrics.Workload {
	return metrics.OwnerWorkload(s.state.snapshot())
}

func (s *metricsService) UpcomingDeadlines(ctx context.Context, limit int) []metrics.Deadline {
	return metrics.UpcomingDeadlines(s.state.snapshot(), s.state.today(), limit)
}

func (s *metricsService) MonthlyMilestones(ctx context.Context) []metrics.MonthBucket {
	return metrics.MonthlyMilestones(s.state.snapshot())
}

func (s *metricsService) CompletionByProject(ctx context.Context) []float64 {
	return metrics.CompletionHistory(s.state.snapshot())
}
