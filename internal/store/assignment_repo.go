package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arjun/studyflow/internal/plan"
)

type assignmentRepo struct {
	db *sql.DB
}

func (r *assignmentRepo) Save(ctx context.Context, a plan.Assignment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assignments (id, title, course_name, due_date, completed)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title, course_name = excluded.course_name,
		   due_date = excluded.due_date, completed = excluded.completed`,
		a.ID, a.Title, a.CourseName, a.DueDate.UTC().Format(time.RFC3339), a.Completed)
	if err != nil {
		return fmt.Errorf("save assignment %s: %w", a.ID, err)
	}
	return nil
}

func (r *assignmentRepo) List(ctx context.Context) ([]plan.Assignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, course_name, due_date, completed
		 FROM assignments ORDER BY due_date`)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []plan.Assignment
	for rows.Next() {
		var a plan.Assignment
		var due string
		if err := rows.Scan(&a.ID, &a.Title, &a.CourseName, &due, &a.Completed); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		a.DueDate, err = time.Parse(time.RFC3339, due)
		if err != nil {
			return nil, fmt.Errorf("parse due date %q: %w", due, err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
