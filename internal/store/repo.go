package store

import (
	"context"
	"time"

	"github.com/arjun/studyflow/internal/plan"
	"github.com/arjun/studyflow/internal/schedule"
)

// PlanRepo manages imported study plans.
type PlanRepo interface {
	// Save inserts or replaces a plan.
	Save(ctx context.Context, p *plan.StudyPlan) error

	// Get returns the plan with the given id.
	Get(ctx context.Context, id string) (*plan.StudyPlan, error)

	// List returns all plans ordered by name.
	List(ctx context.Context) ([]*plan.StudyPlan, error)

	// Delete removes a plan. Deleting a missing plan is not an error.
	Delete(ctx context.Context, id string) error
}

// PerformanceRepo manages the raw performance telemetry the insights
// commands run on.
type PerformanceRepo interface {
	// Add appends a data point.
	Add(ctx context.Context, p plan.PerformanceDataPoint) error

	// List returns all points ordered by date ascending.
	List(ctx context.Context) ([]plan.PerformanceDataPoint, error)

	// Since returns points on or after from, ordered by date ascending.
	Since(ctx context.Context, from time.Time) ([]plan.PerformanceDataPoint, error)
}

// BlockRepo manages the generated schedule. Regeneration replaces the
// whole schedule rather than patching it.
type BlockRepo interface {
	// ReplaceAll drops the stored schedule and writes blocks in its place.
	ReplaceAll(ctx context.Context, blocks []schedule.Block) error

	// List returns all blocks ordered by date then start time.
	List(ctx context.Context) ([]schedule.Block, error)
}

// AssignmentRepo manages tracked assignments.
type AssignmentRepo interface {
	// Save inserts or replaces an assignment.
	Save(ctx context.Context, a plan.Assignment) error

	// List returns all assignments ordered by due date.
	List(ctx context.Context) ([]plan.Assignment, error)
}
