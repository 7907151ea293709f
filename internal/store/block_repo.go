package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arjun/studyflow/internal/schedule"
)

const blockDateLayout = "2006-01-02"

type blockRepo struct {
	db *sql.DB
}

func (r *blockRepo) ReplaceAll(ctx context.Context, blocks []schedule.Block) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedule_blocks`); err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}

	for _, b := range blocks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO schedule_blocks
			 (id, title, type, date, start_time, end_time, duration, priority, difficulty, course_name, ai_generated, locked)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			b.ID, b.Title, string(b.Type), b.Date.Format(blockDateLayout),
			b.StartTime, b.End(), b.Duration, string(b.Priority),
			b.Difficulty, b.CourseName, b.AIGenerated, b.Locked)
		if err != nil {
			return fmt.Errorf("insert block %s: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

func (r *blockRepo) List(ctx context.Context) ([]schedule.Block, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, type, date, start_time, end_time, duration, priority, difficulty, course_name, ai_generated, locked
		 FROM schedule_blocks ORDER BY date, start_time`)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []schedule.Block
	for rows.Next() {
		var b schedule.Block
		var blockType, priority, date string
		if err := rows.Scan(&b.ID, &b.Title, &blockType, &date, &b.StartTime, &b.EndTime,
			&b.Duration, &priority, &b.Difficulty, &b.CourseName, &b.AIGenerated, &b.Locked); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		b.Type = schedule.BlockType(blockType)
		b.Priority = schedule.Priority(priority)
		b.Date, err = time.Parse(blockDateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parse block date %q: %w", date, err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}
