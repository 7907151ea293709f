// Package review ranks topics by forgetting-curve retention risk.
package review

import (
	"sort"
	"time"

	"github.com/arjun/studyflow/internal/mastery"
)

// Urgency grades how soon a topic needs review.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// Rank returns the numeric ordering of an urgency (low first).
func (u Urgency) Rank() int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	}
	return 0
}

// NeverReviewedDays is the sentinel for topics without any recorded
// practice.
const NeverReviewedDays = 999

// Retention-risk model constants. Time risk ramps to 50 at the 7-day mark
// and keeps growing to the 100 cap; current mastery shields up to half of
// it.
const (
	riskRampDays    = 7.0
	riskAtRampMark  = 50.0
	riskCap         = 100.0
	masteryShieldDiv = 2.0
)

// Priority is one topic's review ranking.
type Priority struct {
	Topic               string  `json:"topic"`
	Urgency             Urgency `json:"urgency"`
	DaysSinceLastReview int     `json:"days_since_last_review"`
	CurrentMastery      float64 `json:"current_mastery"`
	RetentionRisk       float64 `json:"retention_risk"` // 0-100
	RecommendedAction   string  `json:"recommended_action"`
}

// Prioritize converts mastery profiles into a review queue ordered by
// urgency, most pressing first. Ties break on retention risk, then topic
// name for determinism.
func Prioritize(profiles []mastery.Profile, now time.Time) []Priority {
	priorities := make([]Priority, 0, len(profiles))
	for i := range profiles {
		priorities = append(priorities, prioritizeTopic(&profiles[i], now))
	}

	sort.Slice(priorities, func(i, j int) bool {
		a, b := &priorities[i], &priorities[j]
		if a.Urgency.Rank() != b.Urgency.Rank() {
			return a.Urgency.Rank() > b.Urgency.Rank()
		}
		if a.RetentionRisk != b.RetentionRisk {
			return a.RetentionRisk > b.RetentionRisk
		}
		return a.Topic < b.Topic
	})
	return priorities
}

func prioritizeTopic(profile *mastery.Profile, now time.Time) Priority {
	days := NeverReviewedDays
	if profile.LastPracticed != nil {
		days = int(now.Sub(*profile.LastPracticed).Hours() / 24)
		if days < 0 {
			days = 0
		}
	}

	risk := RetentionRisk(days, profile.Score)
	urgency := urgencyFor(risk, days)

	return Priority{
		Topic:               profile.TopicID,
		Urgency:             urgency,
		DaysSinceLastReview: days,
		CurrentMastery:      profile.Score,
		RetentionRisk:       risk,
		RecommendedAction:   actionFor(urgency),
	}
}

// RetentionRisk estimates how likely a topic is to be forgotten, from
// elapsed days and current mastery.
func RetentionRisk(daysSince int, masteryScore float64) float64 {
	timeRisk := float64(daysSince) / riskRampDays * riskAtRampMark
	if timeRisk > riskCap {
		timeRisk = riskCap
	}
	risk := timeRisk - masteryScore/masteryShieldDiv
	if risk < 0 {
		risk = 0
	}
	return risk
}

func urgencyFor(risk float64, days int) Urgency {
	switch {
	case risk > 70 || days > 14:
		return UrgencyCritical
	case risk > 50 || days > 7:
		return UrgencyHigh
	case risk > 30 || days > 4:
		return UrgencyMedium
	}
	return UrgencyLow
}

func actionFor(u Urgency) string {
	switch u {
	case UrgencyCritical:
		return "Review now; this topic is at serious risk of being forgotten"
	case UrgencyHigh:
		return "Schedule a review session within the next day"
	case UrgencyMedium:
		return "Work in a short refresher this week"
	}
	return "On track; keep the current review rhythm"
}
