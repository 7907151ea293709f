package recommend

import (
	"fmt"
	"sort"

	"github.com/arjun/studyflow/internal/mastery"
	"github.com/arjun/studyflow/internal/plan"
	"github.com/arjun/studyflow/internal/review"
)

// Recommendation kinds in the daily feed.
const (
	KindStudyTime  = "study-time"
	KindReview     = "review"
	KindDifficulty = "difficulty"
	KindBreak      = "break"
	KindTool       = "tool"
)

// RecPriority orders feed entries.
type RecPriority string

const (
	RecLow    RecPriority = "low"
	RecMedium RecPriority = "medium"
	RecHigh   RecPriority = "high"
)

func (p RecPriority) rank() int {
	switch p {
	case RecHigh:
		return 2
	case RecMedium:
		return 1
	}
	return 0
}

// Recommendation is one entry of the daily actionable feed.
type Recommendation struct {
	Kind     string      `json:"kind"`
	Priority RecPriority `json:"priority"`
	Message  string      `json:"message"`
}

// Thresholds for daily feed nudges.
const (
	easingScoreThreshold = 60.0
	longSessionMinutes   = 90
)

// DailyInput is the snapshot the daily feed is assembled from.
type DailyInput struct {
	Preferences        plan.StudyPreferences
	Profiles           []mastery.Profile
	ReviewQueue        []review.Priority // ordered, most urgent first
	Tools              plan.GeneratedTools
	LastSessionMinutes int
}

// Daily assembles the ranked recommendation feed: a morning nudge when the
// learner prefers mornings, the single most urgent review item, a
// difficulty-easing nudge for struggling topics, a break reminder after an
// overlong session, and a pointer at the richest generated tool type.
func Daily(in DailyInput) []Recommendation {
	var feed []Recommendation

	if in.Preferences.StudyTimePreference == WindowMorning {
		feed = append(feed, Recommendation{
			Kind:     KindStudyTime,
			Priority: RecMedium,
			Message:  "You focus best in the morning; put today's hardest topic before noon",
		})
	}

	if len(in.ReviewQueue) > 0 {
		top := in.ReviewQueue[0]
		priority := RecMedium
		if top.Urgency == review.UrgencyCritical || top.Urgency == review.UrgencyHigh {
			priority = RecHigh
		}
		feed = append(feed, Recommendation{
			Kind:     KindReview,
			Priority: priority,
			Message:  fmt.Sprintf("Review %q: %s", top.Topic, top.RecommendedAction),
		})
	}

	for i := range in.Profiles {
		p := &in.Profiles[i]
		if len(p.PerformanceHistory) > 0 && p.Score < easingScoreThreshold {
			feed = append(feed, Recommendation{
				Kind:     KindDifficulty,
				Priority: RecMedium,
				Message:  fmt.Sprintf("Ease off on %q for a session or two; rebuild confidence at a lower difficulty", p.TopicID),
			})
			break // one easing nudge is enough
		}
	}

	if in.LastSessionMinutes > longSessionMinutes {
		feed = append(feed, Recommendation{
			Kind:     KindBreak,
			Priority: RecHigh,
			Message:  fmt.Sprintf("Your last session ran %d minutes; plan regular breaks today", in.LastSessionMinutes),
		})
	}

	if kind, count := richestTool(in.Tools); count > 0 {
		feed = append(feed, Recommendation{
			Kind:     KindTool,
			Priority: RecLow,
			Message:  fmt.Sprintf("You have %d %s items ready; work a few into today's plan", count, kind),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Priority.rank() > feed[j].Priority.rank()
	})
	return feed
}

// richestTool returns the generated tool type with the most items.
func richestTool(tools plan.GeneratedTools) (string, int) {
	kind, count := plan.ToolFlashcard, len(tools.Flashcards)
	if len(tools.Quizzes) > count {
		kind, count = plan.ToolQuiz, len(tools.Quizzes)
	}
	if len(tools.Summaries) > count {
		kind, count = plan.ToolSummary, len(tools.Summaries)
	}
	return kind, count
}
