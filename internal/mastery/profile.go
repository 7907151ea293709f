package mastery

import (
	"time"

	"github.com/arjun/studyflow/internal/plan"
)

// Level buckets a mastery score into a named band.
type Level string

const (
	LevelNovice       Level = "novice"
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Score boundaries for the level bands.
const (
	noviceCeiling       = 30.0
	beginnerCeiling     = 50.0
	intermediateCeiling = 70.0
	advancedCeiling     = 90.0
)

// LevelForScore returns the band for a 0-100 mastery score.
func LevelForScore(score float64) Level {
	switch {
	case score < noviceCeiling:
		return LevelNovice
	case score < beginnerCeiling:
		return LevelBeginner
	case score < intermediateCeiling:
		return LevelIntermediate
	case score < advancedCeiling:
		return LevelAdvanced
	}
	return LevelExpert
}

// Profile holds the derived mastery picture for one topic. Profiles are
// recomputed fresh on every analysis call and never persisted by the
// engine itself.
type Profile struct {
	TopicID               string                      `json:"topic_id"`
	Level                 Level                       `json:"level"`
	Score                 float64                     `json:"score"`      // 0-100
	Confidence            float64                     `json:"confidence"` // 0-100
	StreakDays            int                         `json:"streak_days"`
	TotalPracticeTime     int                         `json:"total_practice_time"` // minutes
	LastPracticed         *time.Time                  `json:"last_practiced,omitempty"`
	PerformanceHistory    []plan.PerformanceDataPoint `json:"performance_history"`
	WeakAreas             []string                    `json:"weak_areas"`
	StrongAreas           []string                    `json:"strong_areas"`
	RecommendedDifficulty int                         `json:"recommended_difficulty"` // 1-5
}
