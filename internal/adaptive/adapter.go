// Package adaptive implements the per-session difficulty controller.
// An Adapter is owned by exactly one active study session; it must never
// be shared across sessions or goroutines.
package adaptive

// Level is the four-step ordinal difficulty scale the controller moves on.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// levelOrder is the adjustment sequence, clamped at both ends.
var levelOrder = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Direction of a recommended difficulty change.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Tuning constants for the feedback loop.
const (
	// windowSize caps the rolling answer window.
	windowSize = 10

	// minSamples is the number of recorded answers required before any
	// adjustment is recommended.
	minSamples = 3

	// stepUpStreak and stepUpAccuracy gate upward moves.
	stepUpStreak   = 4
	stepUpAccuracy = 0.85

	// stepDownStreak triggers a downward move on its own;
	// stepDownAccuracy does so once stepDownMinSamples are recorded.
	stepDownStreak     = 3
	stepDownAccuracy   = 0.50
	stepDownMinSamples = 5
)

// Recommendation is the controller's verdict on whether difficulty should
// change.
type Recommendation struct {
	ShouldAdjust bool
	Direction    Direction
	Reason       string
}

type answer struct {
	correct   bool
	timeSpent int // seconds
}

// Adapter adjusts session difficulty from a rolling window of answers.
// The zero value is not usable; construct with New.
type Adapter struct {
	level              Level
	window             []answer
	consecutiveCorrect int
	consecutiveWrong   int
	totalTimeSpent     int
	accuracy           float64
}

// New returns an Adapter starting at the given level. An empty level
// starts at beginner.
func New(start Level) *Adapter {
	if start == "" {
		start = LevelBeginner
	}
	return &Adapter{level: start}
}

// CurrentLevel returns the controller's current difficulty level.
func (a *Adapter) CurrentLevel() Level {
	return a.level
}

// SampleCount returns the number of answers in the rolling window.
func (a *Adapter) SampleCount() int {
	return len(a.window)
}

// Accuracy returns the fraction of correct answers in the window.
func (a *Adapter) Accuracy() float64 {
	return a.accuracy
}

// TotalTimeSpent returns the accumulated answer time in seconds.
func (a *Adapter) TotalTimeSpent() int {
	return a.totalTimeSpent
}

// RecordAnswer appends an answer to the rolling window, updates the
// mutually-resetting streak counters, and recomputes window accuracy.
func (a *Adapter) RecordAnswer(correct bool, timeSpent int) {
	a.window = append(a.window, answer{correct: correct, timeSpent: timeSpent})
	if len(a.window) > windowSize {
		a.window = a.window[len(a.window)-windowSize:]
	}

	if correct {
		a.consecutiveCorrect++
		a.consecutiveWrong = 0
	} else {
		a.consecutiveWrong++
		a.consecutiveCorrect = 0
	}
	a.totalTimeSpent += timeSpent

	correctCount := 0
	for _, ans := range a.window {
		if ans.correct {
			correctCount++
		}
	}
	a.accuracy = float64(correctCount) / float64(len(a.window))
}

// ShouldAdjust reports whether the recorded window justifies a difficulty
// change. Downward triggers win over upward ones.
func (a *Adapter) ShouldAdjust() Recommendation {
	if len(a.window) < minSamples {
		return Recommendation{Reason: "not enough answers yet"}
	}

	if a.consecutiveWrong >= stepDownStreak {
		return Recommendation{
			ShouldAdjust: true,
			Direction:    DirectionDown,
			Reason:       "several wrong answers in a row",
		}
	}
	if a.accuracy < stepDownAccuracy && len(a.window) >= stepDownMinSamples {
		return Recommendation{
			ShouldAdjust: true,
			Direction:    DirectionDown,
			Reason:       "accuracy below half over the window",
		}
	}
	if a.consecutiveCorrect >= stepUpStreak && a.accuracy >= stepUpAccuracy {
		return Recommendation{
			ShouldAdjust: true,
			Direction:    DirectionUp,
			Reason:       "sustained streak with high accuracy",
		}
	}
	return Recommendation{}
}

// Adjust steps one level in the given direction, clamped at both ends of
// the scale, and resets only the counter that triggered the move. The
// answer window itself is preserved.
func (a *Adapter) Adjust(direction Direction) Level {
	idx := levelIndex(a.level)
	switch direction {
	case DirectionUp:
		if idx < len(levelOrder)-1 {
			a.level = levelOrder[idx+1]
		}
		a.consecutiveCorrect = 0
	case DirectionDown:
		if idx > 0 {
			a.level = levelOrder[idx-1]
		}
		a.consecutiveWrong = 0
	}
	return a.level
}

// Reset clears all session state, keeping the current level.
func (a *Adapter) Reset() {
	a.window = nil
	a.consecutiveCorrect = 0
	a.consecutiveWrong = 0
	a.totalTimeSpent = 0
	a.accuracy = 0
}

func levelIndex(l Level) int {
	for i, candidate := range levelOrder {
		if candidate == l {
			return i
		}
	}
	return 0
}
