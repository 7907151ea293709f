package schedule

import (
	"fmt"
	"math"
	"time"

	"github.com/arjun/studyflow/internal/plan"
)

// Slot names recognized in a plan's time availability, with their fixed
// start times.
var slotStartTimes = map[string]string{
	"morning":   "09:00",
	"afternoon": "14:00",
	"evening":   "18:00",
	"night":     "22:00",
}

// SlotStart returns the wall-clock start for a named slot, falling back to
// the default start for unknown names.
func SlotStart(slot string) string {
	if start, ok := slotStartTimes[slot]; ok {
		return start
	}
	return plan.DefaultSlotStart
}

// HoursPerTopic is the baseline study hours budgeted per topic at neutral
// difficulty.
const HoursPerTopic = 2.0

// Assignment prep block placement.
const (
	assignmentPrepStart   = "18:00"
	assignmentPrepMinutes = 90
)

// Generate turns active study plans and pending assignments into concrete
// schedule blocks between start and end (both at midnight).
//
// For each active plan the session quota is
// ceil(topics * 2 * (avgDifficulty/3) / sessionHours). Days are walked from
// start to the plan's goal date, placing one block per day in the first
// available slot; if the quota is still unmet at the goal, the walk repeats,
// stacking additional sessions into the same slots. A plan without declared
// time availability produces no blocks. Each pending assignment gets one
// prep block on the day before it is due.
//
// Output is deterministic for identical input: block IDs derive from the
// source plan or assignment rather than random identifiers.
func Generate(plans []plan.StudyPlan, assignments []plan.Assignment, start, end time.Time) []Block {
	var blocks []Block
	for i := range plans {
		blocks = append(blocks, generatePlanBlocks(&plans[i], start, end)...)
	}
	blocks = append(blocks, generateAssignmentBlocks(assignments, start, end)...)
	return blocks
}

// SessionsNeeded returns the session quota for a plan.
func SessionsNeeded(p *plan.StudyPlan) int {
	sessionHours := float64(p.SessionMinutes()) / 60.0
	if sessionHours <= 0 {
		return 0
	}
	totalHours := float64(len(p.Topics)) * HoursPerTopic * (p.AverageDifficulty() / difficultyNeutral)
	return int(math.Ceil(totalHours / sessionHours))
}

func generatePlanBlocks(p *plan.StudyPlan, start, end time.Time) []Block {
	if !p.Active() || len(p.TimeAvailability) == 0 {
		return nil
	}

	remaining := SessionsNeeded(p)
	if remaining <= 0 {
		return nil
	}

	// Study happens before the goal, never on it: the walk stops at the
	// goal date. The requested window end still bounds it.
	limit := p.GoalDate
	if !end.IsZero() && end.AddDate(0, 0, 1).Before(limit) {
		limit = end.AddDate(0, 0, 1)
	}

	var blocks []Block
	for remaining > 0 {
		placed := 0
		for day := start; day.Before(limit) && remaining > 0; day = day.AddDate(0, 0, 1) {
			slots := p.TimeAvailability[day.Weekday().String()]
			if len(slots) == 0 {
				continue
			}
			blocks = append(blocks, Block{
				ID:          fmt.Sprintf("%s-%s-%d", p.ID, day.Format("20060102"), len(blocks)),
				Title:       fmt.Sprintf("Study: %s", p.Name),
				Type:        TypeStudy,
				Date:        day,
				StartTime:   SlotStart(slots[0]),
				EndTime:     AddClock(SlotStart(slots[0]), p.SessionMinutes()),
				Duration:    p.SessionMinutes(),
				Priority:    priorityForDaysLeft(daysBetween(day, p.GoalDate)),
				Difficulty:  int(math.Round(p.AverageDifficulty())),
				CourseName:  p.CourseName,
				AIGenerated: true,
			})
			remaining--
			placed++
		}
		// No available day in the whole window: stop rather than spin.
		if placed == 0 {
			break
		}
	}
	return blocks
}

func generateAssignmentBlocks(assignments []plan.Assignment, start, end time.Time) []Block {
	var blocks []Block
	for _, a := range assignments {
		if a.Completed {
			continue
		}
		prepDay := a.DueDate.AddDate(0, 0, -1)
		if prepDay.Before(start) {
			prepDay = start
		}
		if prepDay.After(a.DueDate) || (!end.IsZero() && prepDay.After(end)) {
			continue
		}
		blocks = append(blocks, Block{
			ID:          fmt.Sprintf("asg-%s", a.ID),
			Title:       fmt.Sprintf("Work on: %s", a.Title),
			Type:        TypeAssignment,
			Date:        prepDay,
			StartTime:   assignmentPrepStart,
			EndTime:     AddClock(assignmentPrepStart, assignmentPrepMinutes),
			Duration:    assignmentPrepMinutes,
			Priority:    priorityForDaysLeft(daysBetween(prepDay, a.DueDate)),
			Difficulty:  plan.DefaultDifficulty,
			CourseName:  a.CourseName,
			AIGenerated: true,
		})
	}
	return blocks
}

// priorityForDaysLeft maps remaining lead time to a block priority.
func priorityForDaysLeft(days int) Priority {
	switch {
	case days <= 2:
		return PriorityCritical
	case days <= 5:
		return PriorityHigh
	case days <= 10:
		return PriorityMedium
	}
	return PriorityLow
}

// daysBetween returns whole calendar days from a to b (negative if b is
// earlier).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
