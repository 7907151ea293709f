package plan

// Neutral fallbacks applied when a plan omits optional fields. Centralized
// here so the engine's no-error contract on degenerate input stays auditable.
const (
	// DefaultDifficulty is the neutral 1-5 difficulty assumed when a topic
	// has no rating and when estimating quiz-question difficulty.
	DefaultDifficulty = 3

	// DefaultSessionMinutes is the session length assumed when preferences
	// don't declare one.
	DefaultSessionMinutes = 60

	// DefaultSlotStart is the wall-clock start used when a slot name
	// doesn't match any known slot.
	DefaultSlotStart = "09:00"
)

// FlashcardDifficulty maps a flashcard difficulty label to the 1-5 scale.
// Unknown labels map to the neutral default.
func FlashcardDifficulty(label string) int {
	switch label {
	case "easy":
		return 1
	case "medium":
		return 3
	case "hard":
		return 5
	}
	return DefaultDifficulty
}
