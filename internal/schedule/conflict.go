package schedule

import (
	"fmt"
	"sort"
)

// DayOverloadHours is the per-day total above which an overload conflict
// is reported.
const DayOverloadHours = 6.0

// ConflictType distinguishes conflict categories.
type ConflictType string

const (
	ConflictOverlap  ConflictType = "overlap"
	ConflictOverload ConflictType = "overload"
)

// Severity grades how pressing a conflict is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ConflictWarning describes a single detected scheduling conflict.
type ConflictWarning struct {
	Type                ConflictType `json:"type"`
	Severity            Severity     `json:"severity"`
	AffectedItems       []string     `json:"affected_items"` // block IDs
	SuggestedResolution string       `json:"suggested_resolution"`
	AutoResolvable      bool         `json:"auto_resolvable"`
}

// DetectConflicts scans a block set for same-day overlaps and overloaded
// days. Overlap checking compares adjacent blocks after sorting each day by
// start time; end times wrap within the day (see AddClock), so blocks
// crossing midnight are not tracked onto the next date.
func DetectConflicts(blocks []Block) []ConflictWarning {
	byDay := make(map[string][]Block)
	for _, b := range blocks {
		key := b.DayKey()
		byDay[key] = append(byDay[key], b)
	}

	days := make([]string, 0, len(byDay))
	for key := range byDay {
		days = append(days, key)
	}
	sort.Strings(days)

	var warnings []ConflictWarning
	for _, key := range days {
		day := byDay[key]
		sort.Slice(day, func(i, j int) bool {
			return ClockMinutes(day[i].StartTime) < ClockMinutes(day[j].StartTime)
		})

		for i := 0; i+1 < len(day); i++ {
			current, next := &day[i], &day[i+1]
			if ClockMinutes(current.End()) > ClockMinutes(next.StartTime) {
				warnings = append(warnings, ConflictWarning{
					Type:     ConflictOverlap,
					Severity: SeverityHigh,
					AffectedItems: []string{current.ID, next.ID},
					SuggestedResolution: fmt.Sprintf(
						"Move %q to start at %s", next.Title, current.End()),
					AutoResolvable: !current.Locked && !next.Locked,
				})
			}
		}

		totalMinutes := 0
		hasUnlocked := false
		ids := make([]string, 0, len(day))
		for i := range day {
			totalMinutes += day[i].Duration
			if !day[i].Locked {
				hasUnlocked = true
			}
			ids = append(ids, day[i].ID)
		}
		if float64(totalMinutes)/60.0 > DayOverloadHours {
			warnings = append(warnings, ConflictWarning{
				Type:          ConflictOverload,
				Severity:      SeverityMedium,
				AffectedItems: ids,
				SuggestedResolution: fmt.Sprintf(
					"%s is scheduled for %.1f hours; move a block to another day",
					key, float64(totalMinutes)/60.0),
				AutoResolvable: hasUnlocked,
			})
		}
	}

	return warnings
}
