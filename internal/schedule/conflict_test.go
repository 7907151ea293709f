package schedule

import (
	"strings"
	"testing"
)

func TestDetectConflicts_NoBlocks(t *testing.T) {
	if got := DetectConflicts(nil); len(got) != 0 {
		t.Errorf("DetectConflicts(nil) = %v, want none", got)
	}
}

func TestDetectConflicts_OverlappingPair(t *testing.T) {
	blocks := []Block{
		studyBlock("first", monday, "09:00", 90, 3),  // 09:00-10:30
		studyBlock("second", monday, "10:00", 60, 3), // starts inside first
	}
	got := DetectConflicts(blocks)
	if len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(got))
	}
	w := got[0]
	if w.Type != ConflictOverlap {
		t.Errorf("Type = %s, want overlap", w.Type)
	}
	if w.Severity != SeverityHigh {
		t.Errorf("Severity = %s, want high", w.Severity)
	}
	if len(w.AffectedItems) != 2 || w.AffectedItems[0] != "first" || w.AffectedItems[1] != "second" {
		t.Errorf("AffectedItems = %v, want [first second]", w.AffectedItems)
	}
	if !strings.Contains(w.SuggestedResolution, "10:30") {
		t.Errorf("SuggestedResolution = %q, want suggested start 10:30", w.SuggestedResolution)
	}
	if !w.AutoResolvable {
		t.Error("expected overlap between unlocked blocks to be auto-resolvable")
	}
}

func TestDetectConflicts_LockedBlockNotAutoResolvable(t *testing.T) {
	a := studyBlock("a", monday, "09:00", 90, 3)
	b := studyBlock("b", monday, "10:00", 60, 3)
	b.Locked = true
	got := DetectConflicts([]Block{a, b})
	if len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(got))
	}
	if got[0].AutoResolvable {
		t.Error("overlap touching a locked block must not be auto-resolvable")
	}
}

func TestDetectConflicts_AdjacentBlocksDoNotOverlap(t *testing.T) {
	blocks := []Block{
		studyBlock("a", monday, "09:00", 60, 3), // ends 10:00
		studyBlock("b", monday, "10:00", 60, 3), // starts exactly at the end
	}
	if got := DetectConflicts(blocks); len(got) != 0 {
		t.Errorf("got %v, want no conflict for back-to-back blocks", got)
	}
}

func TestDetectConflicts_DifferentDatesNeverOverlap(t *testing.T) {
	blocks := []Block{
		studyBlock("a", monday, "09:00", 600, 3),
		studyBlock("b", monday.AddDate(0, 0, 1), "09:00", 600, 3),
	}
	for _, w := range DetectConflicts(blocks) {
		if w.Type == ConflictOverlap {
			t.Errorf("unexpected overlap across dates: %v", w)
		}
	}
}

func TestDetectConflicts_DayOverload(t *testing.T) {
	// 3 + 4 hours = 7h > 6h threshold; no overlap (blocks disjoint).
	blocks := []Block{
		studyBlock("a", monday, "08:00", 180, 3),
		studyBlock("b", monday, "13:00", 240, 3),
	}
	got := DetectConflicts(blocks)
	if len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1 overload", len(got))
	}
	w := got[0]
	if w.Type != ConflictOverload {
		t.Errorf("Type = %s, want overload", w.Type)
	}
	if w.Severity != SeverityMedium {
		t.Errorf("Severity = %s, want medium", w.Severity)
	}
	if !w.AutoResolvable {
		t.Error("overloaded day with unlocked blocks should be resolvable")
	}
	if len(w.AffectedItems) != 2 {
		t.Errorf("AffectedItems = %v, want both block IDs", w.AffectedItems)
	}
}

func TestDetectConflicts_OverloadAllLocked(t *testing.T) {
	a := studyBlock("a", monday, "08:00", 240, 3)
	b := studyBlock("b", monday, "14:00", 240, 3)
	a.Locked = true
	b.Locked = true
	got := DetectConflicts([]Block{a, b})
	if len(got) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(got))
	}
	if got[0].AutoResolvable {
		t.Error("overload with every block locked must not be resolvable")
	}
}

func TestAddClock_Wraparound(t *testing.T) {
	cases := []struct {
		start   string
		minutes int
		want    string
	}{
		{"09:00", 60, "10:00"},
		{"09:45", 30, "10:15"},
		{"23:30", 60, "00:30"}, // wraps, no day rollover
		{"00:00", 0, "00:00"},
		{"garbage", 90, "01:30"}, // unparseable start counts as midnight
	}
	for _, c := range cases {
		if got := AddClock(c.start, c.minutes); got != c.want {
			t.Errorf("AddClock(%q, %d) = %q, want %q", c.start, c.minutes, got, c.want)
		}
	}
}
