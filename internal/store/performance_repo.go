package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arjun/studyflow/internal/plan"
)

type performanceRepo struct {
	db *sql.DB
}

func (r *performanceRepo) Add(ctx context.Context, p plan.PerformanceDataPoint) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO performance_points (date, score, tool_type, difficulty, time_spent)
		 VALUES (?, ?, ?, ?, ?)`,
		p.Date.UTC().Format(time.RFC3339), p.Score, p.ToolType, p.Difficulty, p.TimeSpent)
	if err != nil {
		return fmt.Errorf("add performance point: %w", err)
	}
	return nil
}

func (r *performanceRepo) List(ctx context.Context) ([]plan.PerformanceDataPoint, error) {
	return r.query(ctx,
		`SELECT date, score, tool_type, difficulty, time_spent
		 FROM performance_points ORDER BY date`)
}

func (r *performanceRepo) Since(ctx context.Context, from time.Time) ([]plan.PerformanceDataPoint, error) {
	return r.query(ctx,
		`SELECT date, score, tool_type, difficulty, time_spent
		 FROM performance_points WHERE date >= ? ORDER BY date`,
		from.UTC().Format(time.RFC3339))
}

func (r *performanceRepo) query(ctx context.Context, q string, args ...any) ([]plan.PerformanceDataPoint, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query performance points: %w", err)
	}
	defer rows.Close()

	var points []plan.PerformanceDataPoint
	for rows.Next() {
		var p plan.PerformanceDataPoint
		var date string
		if err := rows.Scan(&date, &p.Score, &p.ToolType, &p.Difficulty, &p.TimeSpent); err != nil {
			return nil, fmt.Errorf("scan performance point: %w", err)
		}
		p.Date, err = time.Parse(time.RFC3339, date)
		if err != nil {
			return nil, fmt.Errorf("parse point date %q: %w", date, err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
