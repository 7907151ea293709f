package schedule

import (
	"testing"
	"time"

	"github.com/arjun/studyflow/internal/plan"
)

func mondayPlan() plan.StudyPlan {
	return plan.StudyPlan{
		ID:     "p1",
		Name:   "Algebra",
		Topics: []string{"A", "B"},
		Preferences: plan.StudyPreferences{
			SessionDuration: 60,
		},
		TimeAvailability: map[string][]string{
			"Monday": {"morning"},
		},
		GoalDate: monday.AddDate(0, 0, 14), // two Mondays later
		Status:   plan.StatusActive,
	}
}

func TestSessionsNeeded_DefaultDifficulty(t *testing.T) {
	p := mondayPlan()
	// 2 topics * 2h * (3/3) = 4h at 1h sessions -> 4 sessions.
	if got := SessionsNeeded(&p); got != 4 {
		t.Errorf("SessionsNeeded = %d, want 4", got)
	}
}

func TestGenerate_TwoMondayScenario(t *testing.T) {
	p := mondayPlan()
	blocks := Generate([]plan.StudyPlan{p}, nil, monday, p.GoalDate)

	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4", len(blocks))
	}

	// Only one slot per available day, so the quota stacks two sessions
	// onto each of the two included Mondays. The generator does not split
	// across slots or days automatically; this is expected behavior.
	perDay := make(map[string]int)
	for _, b := range blocks {
		perDay[b.DayKey()]++
		if b.Date.Weekday() != time.Monday {
			t.Errorf("block %s on %s, want Monday only", b.ID, b.Date.Weekday())
		}
		if b.StartTime != "09:00" {
			t.Errorf("StartTime = %s, want 09:00 (morning slot)", b.StartTime)
		}
		if b.Duration != 60 {
			t.Errorf("Duration = %d, want preferred 60", b.Duration)
		}
	}
	if len(perDay) != 2 {
		t.Errorf("blocks spread over %d days, want the 2 included Mondays", len(perDay))
	}
	for key, n := range perDay {
		if n != 2 {
			t.Errorf("day %s got %d blocks, want 2", key, n)
		}
	}
}

func TestGenerate_InactivePlanProducesNothing(t *testing.T) {
	p := mondayPlan()
	p.Status = plan.StatusPaused
	if got := Generate([]plan.StudyPlan{p}, nil, monday, p.GoalDate); len(got) != 0 {
		t.Errorf("got %d blocks for paused plan, want 0", len(got))
	}
}

func TestGenerate_NoAvailabilityProducesNothing(t *testing.T) {
	p := mondayPlan()
	p.TimeAvailability = nil
	if got := Generate([]plan.StudyPlan{p}, nil, monday, p.GoalDate); len(got) != 0 {
		t.Errorf("got %d blocks for plan without availability, want 0", len(got))
	}
}

func TestGenerate_PriorityFromDaysUntilGoal(t *testing.T) {
	p := mondayPlan()
	p.Topics = []string{"A"} // 2 sessions
	p.TimeAvailability = map[string][]string{
		"Monday":  {"morning"},
		"Tuesday": {"morning"},
	}
	p.GoalDate = monday.AddDate(0, 0, 2) // Wednesday

	blocks := Generate([]plan.StudyPlan{p}, nil, monday, p.GoalDate)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	for _, b := range blocks {
		if b.Priority != PriorityCritical {
			t.Errorf("block on %s has priority %s, want critical within 2 days of goal",
				b.Date.Weekday(), b.Priority)
		}
	}
}

func TestGenerate_SlotStartTimes(t *testing.T) {
	cases := []struct {
		slot string
		want string
	}{
		{"morning", "09:00"},
		{"afternoon", "14:00"},
		{"evening", "18:00"},
		{"night", "22:00"},
		{"unheard-of", "09:00"}, // fallback
	}
	for _, c := range cases {
		if got := SlotStart(c.slot); got != c.want {
			t.Errorf("SlotStart(%q) = %q, want %q", c.slot, got, c.want)
		}
	}
}

func TestGenerate_AssignmentPrepBlock(t *testing.T) {
	due := monday.AddDate(0, 0, 4)
	assignments := []plan.Assignment{
		{ID: "a1", Title: "Essay draft", CourseName: "History", DueDate: due},
		{ID: "a2", Title: "Done already", DueDate: due, Completed: true},
	}
	blocks := Generate(nil, assignments, monday, monday.AddDate(0, 0, 7))
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (completed assignment skipped)", len(blocks))
	}
	b := blocks[0]
	if b.Type != TypeAssignment {
		t.Errorf("Type = %s, want assignment", b.Type)
	}
	if !b.Date.Equal(due.AddDate(0, 0, -1)) {
		t.Errorf("Date = %s, want day before due date", b.Date)
	}
	if b.Priority != PriorityCritical {
		t.Errorf("Priority = %s, want critical one day before due", b.Priority)
	}
}

func TestGenerate_RoundTripNoOverlapAcrossSlots(t *testing.T) {
	// Two plans sharing Mondays but anchored to different slots. The
	// generator places them in non-overlapping slots; the detector must
	// not report an overlap between them.
	a := mondayPlan()
	a.ID = "pa"
	b := mondayPlan()
	b.ID = "pb"
	b.TimeAvailability = map[string][]string{"Monday": {"afternoon"}}

	blocks := Generate([]plan.StudyPlan{a, b}, nil, monday, a.GoalDate)
	if len(blocks) == 0 {
		t.Fatal("expected generated blocks")
	}

	analysis := AnalyzeWorkload(blocks)
	if analysis.TotalHours == 0 {
		t.Error("expected non-zero workload from generated blocks")
	}

	for _, w := range DetectConflicts(blocks) {
		if w.Type != ConflictOverlap {
			continue
		}
		// Overlaps between the two plans' slots would pair a 09:00 block
		// with a 14:00 block; same-slot stacking from a single plan is the
		// only overlap the generator can produce.
		var ids []Block
		for _, blk := range blocks {
			for _, id := range w.AffectedItems {
				if blk.ID == id {
					ids = append(ids, blk)
				}
			}
		}
		if len(ids) == 2 && ids[0].StartTime != ids[1].StartTime {
			t.Errorf("overlap reported across distinct slots: %v", w.AffectedItems)
		}
	}
}
