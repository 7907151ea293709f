package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/arjun/studyflow/internal/plan"
)

func toolPoint(tool string, day int, score float64) plan.PerformanceDataPoint {
	return plan.PerformanceDataPoint{
		Date:     time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC),
		Score:    score,
		ToolType: tool,
	}
}

func TestAnalyzeToolEffectiveness_Empty(t *testing.T) {
	if got := AnalyzeToolEffectiveness(nil); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestAnalyzeToolEffectiveness_AveragesAndRanking(t *testing.T) {
	points := []plan.PerformanceDataPoint{
		toolPoint(plan.ToolQuiz, 1, 60),
		toolPoint(plan.ToolQuiz, 2, 80),
		toolPoint(plan.ToolFlashcard, 1, 90),
		toolPoint(plan.ToolFlashcard, 2, 90),
	}
	got := AnalyzeToolEffectiveness(points)
	if len(got) != 2 {
		t.Fatalf("got %d tools, want 2", len(got))
	}
	if got[0].ToolType != plan.ToolFlashcard {
		t.Errorf("top tool = %s, want flashcard (higher average)", got[0].ToolType)
	}
	if math.Abs(got[1].AverageScore-70) > 1e-9 {
		t.Errorf("quiz average = %f, want 70", got[1].AverageScore)
	}
}

func TestAnalyzeToolEffectiveness_ImprovementDelta(t *testing.T) {
	// Quiz scores climb 60 -> 70 -> 80: mean per-attempt delta is +10.
	points := []plan.PerformanceDataPoint{
		toolPoint(plan.ToolQuiz, 3, 80),
		toolPoint(plan.ToolQuiz, 1, 60),
		toolPoint(plan.ToolQuiz, 2, 70),
	}
	got := AnalyzeToolEffectiveness(points)
	if len(got) != 1 {
		t.Fatalf("got %d tools, want 1", len(got))
	}
	if math.Abs(got[0].ImprovementDelta-10) > 1e-9 {
		t.Errorf("ImprovementDelta = %f, want 10 (sorted by date, not input order)", got[0].ImprovementDelta)
	}
}

func TestAnalyzeToolEffectiveness_SingleSampleHasZeroDelta(t *testing.T) {
	got := AnalyzeToolEffectiveness([]plan.PerformanceDataPoint{toolPoint(plan.ToolSummary, 1, 75)})
	if len(got) != 1 {
		t.Fatalf("got %d tools, want 1", len(got))
	}
	if got[0].ImprovementDelta != 0 {
		t.Errorf("ImprovementDelta = %f, want 0 without a preceding attempt", got[0].ImprovementDelta)
	}
}

func TestAnalyzeToolEffectiveness_IgnoresUnrankedTools(t *testing.T) {
	got := AnalyzeToolEffectiveness([]plan.PerformanceDataPoint{toolPoint(plan.ToolPractice, 1, 99)})
	if len(got) != 0 {
		t.Errorf("got %v, want practice telemetry excluded from tool ranking", got)
	}
}
