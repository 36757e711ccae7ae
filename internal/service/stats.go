package service

import (
	"context"
	"time"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/pkg/telemetry"
)

// StatsService exposes the time-bucketed reporting queries behind a plain
// interface so any presentation layer (API, dashboard, CLI) can reuse them.
// All methods are read-only and tolerate empty tables.
type StatsService struct {
	stats *db.StatsRepository
}

// NewStatsService creates a new stats service
func NewStatsService(stats *db.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// UsersByYear counts users per join year, ascending
func (s *StatsService) UsersByYear(ctx context.Context) ([]db.YearCount, error) {
	ctx, span := telemetry.StartSpan(ctx, "stats.users_by_year")
	defer span.End()
	return s.stats.UsersByYear(ctx)
}

// PostsByYear counts posts per creation year, ascending
func (s *StatsService) PostsByYear(ctx context.Context) ([]db.YearCount, error) {
	ctx, span := telemetry.StartSpan(ctx, "stats.posts_by_year")
	defer span.End()
	return s.stats.PostsByYear(ctx)
}

// PostsByMonth counts one year's posts per (year, month), ascending. A zero
// year means the current calendar year at call time. The result is sparse:
// months with no posts yield no row, dense series are the caller's problem.
func (s *StatsService) PostsByMonth(ctx context.Context, year int) ([]db.MonthCount, error) {
	ctx, span := telemetry.StartSpan(ctx, "stats.posts_by_month")
	defer span.End()

	if year == 0 {
		year = time.Now().UTC().Year()
	}
	return s.stats.PostsByMonth(ctx, year)
}

// PostsByQuarter counts posts per (year, quarter), ascending
func (s *StatsService) PostsByQuarter(ctx context.Context) ([]db.QuarterCount, error) {
	ctx, span := telemetry.StartSpan(ctx, "stats.posts_by_quarter")
	defer span.End()
	return s.stats.PostsByQuarter(ctx)
}
