package db

import (
	"context"
	"fmt"

	"github.com/advaita02/social-media-network/internal/models"
)

// YearCount is one row of a per-year aggregation
type YearCount struct {
	Year  int   `json:"year"`
	Count int64 `json:"count"`
}

// MonthCount is one row of a per-month aggregation
type MonthCount struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// QuarterCount is one row of a per-quarter aggregation
type QuarterCount struct {
	Year    int   `json:"year"`
	Quarter int   `json:"quarter"`
	Count   int64 `json:"count"`
}

// StatsRepository runs the time-bucketed reporting queries. Calendar units
// are extracted natively by the dialect: EXTRACT on PostgreSQL, strftime on
// SQLite (used by the test suite). Output is sparse, buckets with no rows are
// simply absent.
type StatsRepository struct {
	*Repository
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(repo *Repository) *StatsRepository {
	return &StatsRepository{Repository: repo}
}

func (r *StatsRepository) yearExpr(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", column)
	}
	return fmt.Sprintf("CAST(EXTRACT(YEAR FROM %s) AS INTEGER)", column)
}

func (r *StatsRepository) monthExpr(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("CAST(strftime('%%m', %s) AS INTEGER)", column)
	}
	return fmt.Sprintf("CAST(EXTRACT(MONTH FROM %s) AS INTEGER)", column)
}

func (r *StatsRepository) quarterExpr(column string) string {
	if r.db.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("((CAST(strftime('%%m', %s) AS INTEGER) + 2) / 3)", column)
	}
	return fmt.Sprintf("CAST(EXTRACT(QUARTER FROM %s) AS INTEGER)", column)
}

// UsersByYear counts users grouped by join year, ascending
func (r *StatsRepository) UsersByYear(ctx context.Context) ([]YearCount, error) {
	year := r.yearExpr("date_joined")
	rows := []YearCount{}
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select(year + " AS year, COUNT(id) AS count").
		Group(year).
		Order("year ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PostsByYear counts posts grouped by creation year, ascending
func (r *StatsRepository) PostsByYear(ctx context.Context) ([]YearCount, error) {
	year := r.yearExpr("created_at")
	rows := []YearCount{}
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select(year + " AS year, COUNT(id) AS count").
		Group(year).
		Order("year ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PostsByMonth counts one year's posts grouped by (year, month), ascending.
// Months with no posts produce no row.
func (r *StatsRepository) PostsByMonth(ctx context.Context, year int) ([]MonthCount, error) {
	yearCol := r.yearExpr("created_at")
	monthCol := r.monthExpr("created_at")
	rows := []MonthCount{}
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select(yearCol+" AS year, "+monthCol+" AS month, COUNT(id) AS count").
		Where(yearCol+" = ?", year).
		Group(yearCol).
		Group(monthCol).
		Order("year ASC, month ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// PostsByQuarter counts posts grouped by (year, quarter 1-4), ascending
func (r *StatsRepository) PostsByQuarter(ctx context.Context) ([]QuarterCount, error) {
	yearCol := r.yearExpr("created_at")
	quarterCol := r.quarterExpr("created_at")
	rows := []QuarterCount{}
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select(yearCol+" AS year, "+quarterCol+" AS quarter, COUNT(id) AS count").
		Group(yearCol).
		Group(quarterCol).
		Order("year ASC, quarter ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
