package plan

import "time"

// Tool types appearing in performance telemetry.
const (
	ToolQuiz      = "quiz"
	ToolFlashcard = "flashcard"
	ToolPractice  = "practice"
	ToolSummary   = "summary"
)

// PerformanceDataPoint is one unit of raw performance telemetry.
// Points are immutable; the engine never writes them back.
type PerformanceDataPoint struct {
	Date       time.Time `json:"date"`
	Score      float64   `json:"score"` // 0-100
	ToolType   string    `json:"tool_type"`
	Difficulty int       `json:"difficulty"` // 1-5
	TimeSpent  int       `json:"time_spent"` // minutes
}
