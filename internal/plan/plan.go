package plan

import "time"

// Status represents a study plan's lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// StudyPreferences holds a learner's session preferences.
type StudyPreferences struct {
	SessionDuration     int    `json:"session_duration"` // minutes
	LearningStyle       string `json:"learning_style"`
	StudyTimePreference string `json:"study_time_preference"` // morning/afternoon/evening/night
	BreakFrequency      int    `json:"break_frequency"`       // minutes between breaks
}

// StudyTask is a single actionable item inside a plan.
type StudyTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// UploadedFile references course material attached to a plan.
type UploadedFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Flashcard is a generated study card with per-card mastery tracking.
type Flashcard struct {
	ID           string     `json:"id"`
	Topic        string     `json:"topic"`
	Front        string     `json:"front"`
	Back         string     `json:"back"`
	Difficulty   string     `json:"difficulty"` // easy/medium/hard
	MasteryScore float64    `json:"mastery_score"`
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
}

// QuestionResult is one graded question from a quiz attempt,
// tagged with the topic it tests.
type QuestionResult struct {
	Topic string  `json:"topic"`
	Score float64 `json:"score"` // 0-100
}

// QuizAttempt is a single completed quiz run.
type QuizAttempt struct {
	Date      time.Time        `json:"date"`
	TimeSpent int              `json:"time_spent"` // minutes
	Results   []QuestionResult `json:"results"`
}

// Quiz is a generated quiz plus its attempt history.
type Quiz struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Attempts []QuizAttempt `json:"attempts"`
}

// Summary is a generated prose summary of plan material.
type Summary struct {
	ID      string `json:"id"`
	Topic   string `json:"topic"`
	Content string `json:"content"`
}

// GeneratedTools groups the study tools generated for a plan.
type GeneratedTools struct {
	Flashcards []Flashcard `json:"flashcards"`
	Quizzes    []Quiz      `json:"quizzes"`
	Summaries  []Summary   `json:"summaries"`
}

// StudyPlan is the central planning record. The engine only reads it;
// ownership stays with the surrounding application.
type StudyPlan struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	CourseName        string              `json:"course_name"`
	Topics            []string            `json:"topics"`
	StudyTasks        []StudyTask         `json:"study_tasks"`
	UploadedFiles     []UploadedFile      `json:"uploaded_files"`
	Tools             GeneratedTools      `json:"generated_tools"`
	Preferences       StudyPreferences    `json:"preferences"`
	DifficultyRatings map[string]int      `json:"difficulty_ratings,omitempty"` // topic -> 1..5
	TimeAvailability  map[string][]string `json:"time_availability,omitempty"`  // weekday name -> slot names
	GoalDate          time.Time           `json:"goal_date"`
	Status            Status              `json:"status"`
}

// Active reports whether the plan should participate in scheduling.
func (p *StudyPlan) Active() bool {
	return p.Status == StatusActive
}

// AverageDifficulty returns the mean of the plan's difficulty ratings,
// or DefaultDifficulty when no ratings exist.
func (p *StudyPlan) AverageDifficulty() float64 {
	if len(p.DifficultyRatings) == 0 {
		return DefaultDifficulty
	}
	sum := 0
	for _, r := range p.DifficultyRatings {
		sum += r
	}
	return float64(sum) / float64(len(p.DifficultyRatings))
}

// SessionMinutes returns the preferred session length,
// falling back to the default when unset.
func (p *StudyPlan) SessionMinutes() int {
	if p.Preferences.SessionDuration > 0 {
		return p.Preferences.SessionDuration
	}
	return DefaultSessionMinutes
}

// Assignment is a dated deliverable consumed from the assignment tracker.
type Assignment struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CourseName string    `json:"course_name"`
	DueDate    time.Time `json:"due_date"`
	Completed  bool      `json:"completed"`
}
