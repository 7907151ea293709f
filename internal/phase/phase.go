package phase

import (
	"fmt"

	"github.com/arjun/studyflow/internal/plan"
)

// PhaseType identifies one step of a guided study session.
type PhaseType string

const (
	PhaseIntroduction      PhaseType = "introduction"
	PhaseMaterialReview    PhaseType = "material_review"
	PhaseConceptCheck      PhaseType = "concept_check"
	PhaseBreakPrompt       PhaseType = "break_prompt"
	PhaseFlashcardPractice PhaseType = "flashcard_practice"
	PhaseQuizPrompt        PhaseType = "quiz_prompt"
	PhaseSummaryReview     PhaseType = "summary_review"
	PhaseCompletion        PhaseType = "completion"
)

const (
	// maxMaterialPhases caps how many uploaded files get their own
	// review phase.
	maxMaterialPhases = 2

	// maxConceptPhases caps how many topics get a concept check.
	maxConceptPhases = 2

	// flashcardBatchSize is the most cards a single practice phase holds.
	flashcardBatchSize = 10

	// breakMinSessionMinutes is the shortest preferred session length
	// that still earns a mid-session break.
	breakMinSessionMinutes = 30
)

// Per-phase duration estimates, in minutes.
const (
	introMinutes     = 2
	materialMinutes  = 10
	conceptMinutes   = 5
	breakMinutes     = 5
	flashcardMinutes = 10
	quizMinutes      = 15
	summaryMinutes   = 5
	doneMinutes      = 1
)

// StudyPhase is one step of the session walk. The payload fields are
// populated per type: Topic for concept checks, File for material
// reviews, Flashcards for practice, Summary for the summary review.
type StudyPhase struct {
	Type             PhaseType        `json:"type"`
	Title            string           `json:"title"`
	EstimatedMinutes int              `json:"estimated_minutes"`
	Topic            string           `json:"topic,omitempty"`
	File             string           `json:"file,omitempty"`
	Flashcards       []plan.Flashcard `json:"flashcards,omitempty"`
	Summary          *plan.Summary    `json:"summary,omitempty"`
}

// buildPhases assembles the ordered phase list from a plan snapshot.
// Introduction, quiz prompt and completion are always present; the
// rest depend on what the plan carries.
func buildPhases(p *plan.StudyPlan) []StudyPhase {
	phases := []StudyPhase{{
		Type:             PhaseIntroduction,
		Title:            fmt.Sprintf("Session kickoff: %s", p.Name),
		EstimatedMinutes: introMinutes,
	}}

	for i, f := range p.UploadedFiles {
		if i >= maxMaterialPhases {
			break
		}
		phases = append(phases, StudyPhase{
			Type:             PhaseMaterialReview,
			Title:            fmt.Sprintf("Review %s", f.Name),
			EstimatedMinutes: materialMinutes,
			File:             f.Name,
		})
	}

	for i, topic := range p.Topics {
		if i >= maxConceptPhases {
			break
		}
		phases = append(phases, StudyPhase{
			Type:             PhaseConceptCheck,
			Title:            fmt.Sprintf("Concept check: %s", topic),
			EstimatedMinutes: conceptMinutes,
			Topic:            topic,
		})
	}

	if p.SessionMinutes() >= breakMinSessionMinutes {
		phases = append(phases, StudyPhase{
			Type:             PhaseBreakPrompt,
			Title:            "Take a short break",
			EstimatedMinutes: breakMinutes,
		})
	}

	if cards := p.Tools.Flashcards; len(cards) > 0 {
		batch := cards
		if len(batch) > flashcardBatchSize {
			batch = batch[:flashcardBatchSize]
		}
		phases = append(phases, StudyPhase{
			Type:             PhaseFlashcardPractice,
			Title:            fmt.Sprintf("Flashcard practice (%d cards)", len(batch)),
			EstimatedMinutes: flashcardMinutes,
			Flashcards:       batch,
		})
	}

	phases = append(phases, StudyPhase{
		Type:             PhaseQuizPrompt,
		Title:            "Quiz time",
		EstimatedMinutes: quizMinutes,
	})

	if len(p.Tools.Summaries) > 0 {
		s := p.Tools.Summaries[0]
		phases = append(phases, StudyPhase{
			Type:             PhaseSummaryReview,
			Title:            fmt.Sprintf("Summary review: %s", s.Topic),
			EstimatedMinutes: summaryMinutes,
			Summary:          &s,
		})
	}

	phases = append(phases, StudyPhase{
		Type:             PhaseCompletion,
		Title:            "Session complete",
		EstimatedMinutes: doneMinutes,
	})
	return phases
}
