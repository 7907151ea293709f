package mastery

import (
	"math"
	"time"

	"github.com/arjun/studyflow/internal/plan"
)

// Thresholds for weak/strong area flags, computed over the most recent
// samples.
const (
	recentSampleWindow  = 5
	weakRecentAverage   = 60.0
	strongRecentAverage = 85.0
	volatileStdDev      = 25.0
)

// Analyze derives a mastery profile for every topic of the plan from its
// quiz attempts and flashcard mastery scores. now anchors streak counting
// and recency; passing it explicitly keeps the function pure.
//
// Topics with no performance data get a zero-confidence "no data" profile
// instead of an error; the function is total on well-typed input.
func Analyze(p *plan.StudyPlan, now time.Time) []Profile {
	profiles := make([]Profile, 0, len(p.Topics))
	for _, topic := range p.Topics {
		profiles = append(profiles, analyzeTopic(p, topic, now))
	}
	return profiles
}

func analyzeTopic(p *plan.StudyPlan, topic string, now time.Time) Profile {
	history, practiceTime := collectHistory(p, topic)

	if len(history) == 0 {
		return Profile{
			TopicID:               topic,
			Level:                 LevelNovice,
			Confidence:            0,
			WeakAreas:             []string{"No practice data yet"},
			RecommendedDifficulty: 1,
		}
	}

	scores := make([]float64, len(history))
	for i, pt := range history {
		scores[i] = pt.Score
	}
	avg := mean(scores)
	sd := stdDev(scores, avg)
	confidence := math.Max(0, 100-sd)

	profile := Profile{
		TopicID:               topic,
		Level:                 LevelForScore(avg),
		Score:                 avg,
		Confidence:            confidence,
		StreakDays:            streakDays(history, now),
		TotalPracticeTime:     practiceTime,
		PerformanceHistory:    history,
		RecommendedDifficulty: recommendDifficulty(avg, confidence),
	}

	if last := latestDate(history); !last.IsZero() {
		t := last
		profile.LastPracticed = &t
	}

	profile.WeakAreas, profile.StrongAreas = flagAreas(scores)
	return profile
}

// collectHistory merges quiz-question scores and flashcard mastery scores
// for one topic into a single performance list. Quiz questions carry no
// per-question difficulty, so the neutral default stands in; flashcard
// difficulty labels map onto the 1-5 scale.
func collectHistory(p *plan.StudyPlan, topic string) ([]plan.PerformanceDataPoint, int) {
	var history []plan.PerformanceDataPoint
	practiceTime := 0

	for _, quiz := range p.Tools.Quizzes {
		for _, attempt := range quiz.Attempts {
			matched := false
			for _, result := range attempt.Results {
				if result.Topic != topic {
					continue
				}
				matched = true
				history = append(history, plan.PerformanceDataPoint{
					Date:       attempt.Date,
					Score:      result.Score,
					ToolType:   plan.ToolQuiz,
					Difficulty: plan.DefaultDifficulty,
					TimeSpent:  attempt.TimeSpent,
				})
			}
			if matched {
				practiceTime += attempt.TimeSpent
			}
		}
	}

	for _, card := range p.Tools.Flashcards {
		if card.Topic != topic {
			continue
		}
		point := plan.PerformanceDataPoint{
			Score:      card.MasteryScore,
			ToolType:   plan.ToolFlashcard,
			Difficulty: plan.FlashcardDifficulty(card.Difficulty),
		}
		if card.LastReviewed != nil {
			point.Date = *card.LastReviewed
		}
		history = append(history, point)
	}

	return history, practiceTime
}

// flagAreas derives weak/strong free-text flags from the most recent
// samples and their spread.
func flagAreas(scores []float64) (weak, strong []string) {
	recent := scores
	if len(recent) > recentSampleWindow {
		recent = recent[len(recent)-recentSampleWindow:]
	}
	recentAvg := mean(recent)
	sd := stdDev(scores, mean(scores))

	if recentAvg < weakRecentAverage {
		weak = append(weak, "Recent scores below target")
	}
	if sd > volatileStdDev {
		weak = append(weak, "Inconsistent results across sessions")
	}
	if recentAvg >= strongRecentAverage && sd <= volatileStdDev {
		strong = append(strong, "Consistently high recent scores")
	}
	return weak, strong
}

// recommendDifficulty buckets (average score, confidence) into a 1-5
// practice difficulty.
func recommendDifficulty(avg, confidence float64) int {
	switch {
	case avg >= 90 && confidence >= 80:
		return 5
	case avg >= 75 && confidence >= 60:
		return 4
	case avg >= 60:
		return 3
	case avg >= 40:
		return 2
	}
	return 1
}

// streakDays counts consecutive practiced calendar days anchored at now:
// the most recent practice day must be today, the one before yesterday,
// and so on. A run that ended before today counts as zero. This mirrors
// the recency-biased behavior of the original product; see DESIGN.md.
func streakDays(history []plan.PerformanceDataPoint, now time.Time) int {
	seen := make(map[string]bool)
	for _, pt := range history {
		if pt.Date.IsZero() {
			continue
		}
		seen[pt.Date.Format("2006-01-02")] = true
	}

	streak := 0
	for offset := 0; ; offset++ {
		day := now.AddDate(0, 0, -offset).Format("2006-01-02")
		if !seen[day] {
			break
		}
		streak++
	}
	return streak
}

func latestDate(history []plan.PerformanceDataPoint) time.Time {
	var latest time.Time
	for _, pt := range history {
		if pt.Date.After(latest) {
			latest = pt.Date
		}
	}
	return latest
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64, avg float64) float64 {
	if len(values) == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	return math.Sqrt(variance / float64(len(values)))
}
