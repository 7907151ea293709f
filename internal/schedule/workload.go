package schedule

import (
	"fmt"
	"time"
)

const (
	// OverloadedDayHours is the daily load above which a day is flagged
	// as overloaded.
	OverloadedDayHours = 4.0

	// UnderutilizedDayHours is the daily load below which a non-empty day
	// is flagged as underutilized.
	UnderutilizedDayHours = 1.0

	// difficultyNeutral is the midpoint of the 1-5 difficulty scale;
	// difficulty-weighted hours use difficulty/difficultyNeutral as the
	// multiplier so medium difficulty weighs 1.0.
	difficultyNeutral = 3.0
)

// weekdayNames lists the seven canonical weekday names in time.Weekday order.
var weekdayNames = []string{
	time.Sunday.String(),
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
}

// WorkloadAnalysis summarizes the weekly distribution of a block set.
type WorkloadAnalysis struct {
	TotalHours              float64            `json:"total_hours"`
	DifficultyWeightedHours float64            `json:"difficulty_weighted_hours"`
	AverageDailyLoad        float64            `json:"average_daily_load"`
	PeakLoad                float64            `json:"peak_load"`
	WeeklyDistribution      map[string]float64 `json:"weekly_distribution"` // weekday name -> hours
	OverloadedDays          []string           `json:"overloaded_days"`
	UnderutilizedDays       []string           `json:"underutilized_days"`
	Recommendations         []string           `json:"recommendations"`
}

// AnalyzeWorkload groups blocks by weekday and derives load metrics and
// threshold-driven recommendations. Empty input yields all-zero output;
// there are no error conditions.
func AnalyzeWorkload(blocks []Block) WorkloadAnalysis {
	dist := make(map[string]float64, len(weekdayNames))
	for _, name := range weekdayNames {
		dist[name] = 0
	}

	var total, weighted float64
	for i := range blocks {
		b := &blocks[i]
		hours := b.Hours()
		dist[b.Date.Weekday().String()] += hours
		total += hours
		weighted += hours * float64(b.Difficulty) / difficultyNeutral
	}

	analysis := WorkloadAnalysis{
		TotalHours:              total,
		DifficultyWeightedHours: weighted,
		AverageDailyLoad:        total / 7,
		WeeklyDistribution:      dist,
	}

	// Walk days in canonical order so flags and recommendations are
	// deterministic.
	for _, name := range weekdayNames {
		hours := dist[name]
		if hours > analysis.PeakLoad {
			analysis.PeakLoad = hours
		}
		switch {
		case hours > OverloadedDayHours:
			analysis.OverloadedDays = append(analysis.OverloadedDays, name)
		case hours > 0 && hours < UnderutilizedDayHours:
			analysis.UnderutilizedDays = append(analysis.UnderutilizedDays, name)
		}
	}

	for _, name := range analysis.OverloadedDays {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("%s carries %.1f hours; move some of it to a lighter day", name, dist[name]))
	}
	if analysis.DifficultyWeightedHours > analysis.TotalHours*1.5 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Difficult material is concentrated; spread hard topics across more days")
	}
	if analysis.PeakLoad > analysis.AverageDailyLoad*2 && analysis.TotalHours > 0 {
		analysis.Recommendations = append(analysis.Recommendations,
			"Workload is uneven; the busiest day holds more than twice the daily average")
	}

	return analysis
}
