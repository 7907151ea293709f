package phase

import (
	"time"

	"github.com/google/uuid"

	"github.com/arjun/studyflow/internal/plan"
)

// SessionStats accumulates what happened across a session. TotalTime is
// the wall-clock elapsed since the manager was built; Accuracy is
// derived from the answer counters.
type SessionStats struct {
	TotalTime         time.Duration `json:"total_time"`
	TopicsCovered     int           `json:"topics_covered"`
	TasksCompleted    int           `json:"tasks_completed"`
	QuestionsAnswered int           `json:"questions_answered"`
	CorrectAnswers    int           `json:"correct_answers"`
	Accuracy          float64       `json:"accuracy"` // 0.0-1.0
	FinalDifficulty   string        `json:"final_difficulty"`
}

// StatsDelta is a partial stats update merged by UpdateStats. Counters
// add; FinalDifficulty overwrites when non-empty.
type StatsDelta struct {
	TopicsCovered     int
	TasksCompleted    int
	QuestionsAnswered int
	CorrectAnswers    int
	FinalDifficulty   string
}

// Manager walks one guided study session through its phase sequence.
// The walk only ever moves forward; once the current phase is nil the
// session is over and callers must stop driving it. One Manager serves
// exactly one session and must not be shared.
type Manager struct {
	SessionID string

	phases    []StudyPhase
	index     int
	stats     SessionStats
	startTime time.Time
}

// NewManager builds the phase sequence from a plan snapshot. Later
// changes to the plan do not affect an already-built session.
func NewManager(p *plan.StudyPlan) *Manager {
	return &Manager{
		SessionID: uuid.NewString(),
		phases:    buildPhases(p),
		startTime: time.Now(),
	}
}

// Phases returns the full phase list, for preview rendering.
func (m *Manager) Phases() []StudyPhase {
	return m.phases
}

// CurrentPhase returns the active phase, or nil when the session is over.
func (m *Manager) CurrentPhase() *StudyPhase {
	if m.index >= len(m.phases) {
		return nil
	}
	return &m.phases[m.index]
}

// NextPhase peeks at the phase after the current one without advancing.
func (m *Manager) NextPhase() *StudyPhase {
	if m.index+1 >= len(m.phases) {
		return nil
	}
	return &m.phases[m.index+1]
}

// Advance moves to the next phase and returns it, or nil once the
// session is over. The index never moves backward and stops one past
// the final phase.
func (m *Manager) Advance() *StudyPhase {
	if m.index < len(m.phases) {
		m.index++
	}
	return m.CurrentPhase()
}

// Skip abandons the current phase and moves on. State-wise it is the
// same forward step as Advance; the skipped phase simply never gets
// its stats recorded.
func (m *Manager) Skip() *StudyPhase {
	return m.Advance()
}

// Insert places an extra phase immediately after the current one, e.g.
// a remedial break mid-session. Ignored once the session has reached
// completion: the terminal phase stays terminal.
func (m *Manager) Insert(p StudyPhase) {
	cur := m.CurrentPhase()
	if cur == nil || cur.Type == PhaseCompletion {
		return
	}
	at := m.index + 1
	m.phases = append(m.phases, StudyPhase{})
	copy(m.phases[at+1:], m.phases[at:])
	m.phases[at] = p
}

// Progress reports how far the walk has come as a percentage. It
// reaches 100 once the index has moved past the final phase.
func (m *Manager) Progress() float64 {
	if len(m.phases) == 0 || m.index >= len(m.phases) {
		return 100
	}
	return float64(m.index) / float64(len(m.phases)) * 100
}

// UpdateStats merges a partial update into the session stats.
func (m *Manager) UpdateStats(d StatsDelta) {
	m.stats.TopicsCovered += d.TopicsCovered
	m.stats.TasksCompleted += d.TasksCompleted
	m.stats.QuestionsAnswered += d.QuestionsAnswered
	m.stats.CorrectAnswers += d.CorrectAnswers
	if d.FinalDifficulty != "" {
		m.stats.FinalDifficulty = d.FinalDifficulty
	}
}

// Stats returns the accumulated stats with elapsed wall-clock time and
// derived accuracy filled in.
func (m *Manager) Stats() SessionStats {
	s := m.stats
	s.TotalTime = time.Since(m.startTime)
	if s.QuestionsAnswered > 0 {
		s.Accuracy = float64(s.CorrectAnswers) / float64(s.QuestionsAnswered)
	}
	return s
}
