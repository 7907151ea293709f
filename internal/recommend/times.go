// Package recommend turns performance telemetry and mastery output into
// actionable study recommendations. Everything here is a pure function;
// the caller composes them.
package recommend

import (
	"sort"

	"github.com/arjun/studyflow/internal/plan"
)

// Time-of-day windows used for study-time bucketing.
const (
	WindowMorning   = "morning"
	WindowAfternoon = "afternoon"
	WindowEvening   = "evening"
	WindowNight     = "night"
)

const (
	// minWindowSamples is required before a window is recommendable.
	minWindowSamples = 3

	// fullConfidenceSamples is the sample count at which confidence
	// saturates.
	fullConfidenceSamples = 10

	// maxTimeRecommendations caps the returned windows.
	maxTimeRecommendations = 2
)

// StudyTimeRecommendation names a time-of-day window where the learner has
// historically scored well.
type StudyTimeRecommendation struct {
	Window       string  `json:"window"`
	AverageScore float64 `json:"average_score"`
	SampleCount  int     `json:"sample_count"`
	Confidence   float64 `json:"confidence"` // 0-1
}

// windowForHour buckets an hour of day into one of the four windows.
func windowForHour(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return WindowMorning
	case hour >= 12 && hour < 17:
		return WindowAfternoon
	case hour >= 17 && hour < 21:
		return WindowEvening
	}
	return WindowNight
}

// StudyTimes buckets performance points by time of day and returns the top
// two windows with at least three samples, best average score first.
// Confidence grows with sample count and saturates at ten samples.
func StudyTimes(points []plan.PerformanceDataPoint) []StudyTimeRecommendation {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[string]*bucket, 4)

	for _, pt := range points {
		window := windowForHour(pt.Date.Hour())
		b := buckets[window]
		if b == nil {
			b = &bucket{}
			buckets[window] = b
		}
		b.sum += pt.Score
		b.count++
	}

	var recs []StudyTimeRecommendation
	for window, b := range buckets {
		if b.count < minWindowSamples {
			continue
		}
		confidence := float64(b.count) / float64(fullConfidenceSamples)
		if confidence > 1 {
			confidence = 1
		}
		recs = append(recs, StudyTimeRecommendation{
			Window:       window,
			AverageScore: b.sum / float64(b.count),
			SampleCount:  b.count,
			Confidence:   confidence,
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].AverageScore != recs[j].AverageScore {
			return recs[i].AverageScore > recs[j].AverageScore
		}
		return recs[i].Window < recs[j].Window
	})

	if len(recs) > maxTimeRecommendations {
		recs = recs[:maxTimeRecommendations]
	}
	return recs
}
