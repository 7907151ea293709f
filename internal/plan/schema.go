package plan

// fileSchema is the JSON schema for imported plan files. Validation runs
// before unmarshalling so a malformed file is rejected with a field-level
// error instead of silently producing a zero-valued plan.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":   map[string]any{"type": "string"},
		"name": map[string]any{"type": "string", "minLength": 1},
		"course_name": map[string]any{
			"type": "string",
		},
		"topics": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"preferences": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"session_duration": map[string]any{"type": "integer", "minimum": 0},
				"learning_style":   map[string]any{"type": "string"},
				"study_time_preference": map[string]any{
					"type": "string",
					"enum": []any{"morning", "afternoon", "evening", "night", ""},
				},
				"break_frequency": map[string]any{"type": "integer", "minimum": 0},
			},
		},
		"difficulty_ratings": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 5,
			},
		},
		"time_availability": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"enum": []any{"morning", "afternoon", "evening", "night"},
				},
			},
		},
		"goal_date": map[string]any{"type": "string"},
		"status": map[string]any{
			"type": "string",
			"enum": []any{"active", "paused", "completed", "archived"},
		},
	},
	"required": []any{"name", "topics", "goal_date", "status"},
}
