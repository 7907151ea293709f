package plan

import (
	"strings"
	"testing"
)

const validPlanJSON = `{
	"id": "p1",
	"name": "Calculus",
	"course_name": "MATH 101",
	"topics": ["Limits", "Derivatives"],
	"preferences": {
		"session_duration": 60,
		"study_time_preference": "morning"
	},
	"difficulty_ratings": {"Limits": 4},
	"time_availability": {"Monday": ["morning"]},
	"goal_date": "2025-06-01T00:00:00Z",
	"status": "active"
}`

func TestParseFile_Valid(t *testing.T) {
	p, err := ParseFile([]byte(validPlanJSON))
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if p.Name != "Calculus" || len(p.Topics) != 2 {
		t.Errorf("parsed %q with %d topics, want Calculus with 2", p.Name, len(p.Topics))
	}
	if !p.Active() {
		t.Error("status active should parse as an active plan")
	}
	if p.Preferences.SessionDuration != 60 {
		t.Errorf("SessionDuration = %d, want 60", p.Preferences.SessionDuration)
	}
	if got := p.TimeAvailability["Monday"]; len(got) != 1 || got[0] != "morning" {
		t.Errorf("TimeAvailability[Monday] = %v, want [morning]", got)
	}
}

func TestParseFile_MissingRequiredField(t *testing.T) {
	raw := strings.Replace(validPlanJSON, `"name": "Calculus",`, "", 1)
	if _, err := ParseFile([]byte(raw)); err == nil {
		t.Error("plan without a name should fail validation")
	}
}

func TestParseFile_BadStatus(t *testing.T) {
	raw := strings.Replace(validPlanJSON, `"active"`, `"running"`, 1)
	if _, err := ParseFile([]byte(raw)); err == nil {
		t.Error("unknown status should fail validation")
	}
}

func TestParseFile_DifficultyOutOfRange(t *testing.T) {
	raw := strings.Replace(validPlanJSON, `{"Limits": 4}`, `{"Limits": 9}`, 1)
	if _, err := ParseFile([]byte(raw)); err == nil {
		t.Error("difficulty rating above 5 should fail validation")
	}
}

func TestParseFile_InvalidJSON(t *testing.T) {
	if _, err := ParseFile([]byte(`{"name": `)); err == nil {
		t.Error("truncated JSON should fail")
	}
}

func TestPlanDefaults(t *testing.T) {
	p := &StudyPlan{}
	if got := p.AverageDifficulty(); got != DefaultDifficulty {
		t.Errorf("AverageDifficulty = %.1f, want default %d", got, DefaultDifficulty)
	}
	if got := p.SessionMinutes(); got != DefaultSessionMinutes {
		t.Errorf("SessionMinutes = %d, want default %d", got, DefaultSessionMinutes)
	}
}

func TestFlashcardDifficulty(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"easy", 1},
		{"medium", 3},
		{"hard", 5},
		{"unknown", DefaultDifficulty},
		{"", DefaultDifficulty},
	}
	for _, tc := range cases {
		if got := FlashcardDifficulty(tc.label); got != tc.want {
			t.Errorf("FlashcardDifficulty(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}
