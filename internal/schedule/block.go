package schedule

import (
	"fmt"
	"time"
)

// BlockType categorizes a schedule block.
type BlockType string

const (
	TypeStudy      BlockType = "study"
	TypeAssignment BlockType = "assignment"
	TypeExamPrep   BlockType = "exam-prep"
	TypeBreak      BlockType = "break"
)

// Priority orders blocks by importance.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Rank returns the numeric ordering of a priority (low first).
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 3
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	}
	return 0
}

// Block is a single dated, timed unit of study, assignment, or break work.
// Blocks are created wholesale by Generate; Balance may reassign Date on
// unlocked blocks; everything else treats them as read-only.
type Block struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        BlockType `json:"type"`
	Date        time.Time `json:"date"` // midnight of the scheduled day
	StartTime   string    `json:"start_time"` // "HH:MM"
	EndTime     string    `json:"end_time"`   // "HH:MM", derived from start + duration
	Duration    int       `json:"duration"`   // minutes
	Priority    Priority  `json:"priority"`
	Difficulty  int       `json:"difficulty"` // 1-5
	CourseName  string    `json:"course_name"`
	AIGenerated bool      `json:"ai_generated"`
	Locked      bool      `json:"locked"`
}

// Hours returns the block duration in hours.
func (b *Block) Hours() float64 {
	return float64(b.Duration) / 60.0
}

// End returns the block's end time computed from start and duration.
func (b *Block) End() string {
	return AddClock(b.StartTime, b.Duration)
}

// DayKey returns the block's date as a grouping key.
func (b *Block) DayKey() string {
	return b.Date.Format("2006-01-02")
}

// ClockMinutes parses an "HH:MM" wall-clock time into minutes since
// midnight. Unparseable input counts as midnight, keeping the scheduling
// functions total on degenerate data.
func ClockMinutes(clock string) int {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0
	}
	return h*60 + m
}

// AddClock adds minutes to an "HH:MM" time, wrapping within a single day.
// There is no cross-midnight day rollover: a block that would run past
// midnight keeps its original date. Known limitation.
func AddClock(clock string, minutes int) string {
	total := (ClockMinutes(clock) + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
