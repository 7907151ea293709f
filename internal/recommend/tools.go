package recommend

import (
	"sort"

	"github.com/arjun/studyflow/internal/plan"
)

// rankedToolTypes are the tool types considered in effectiveness analysis,
// in a fixed order for deterministic output.
var rankedToolTypes = []string{plan.ToolFlashcard, plan.ToolQuiz, plan.ToolSummary}

// ToolEffectiveness summarizes how well one study tool works for the
// learner.
type ToolEffectiveness struct {
	ToolType     string  `json:"tool_type"`
	AverageScore float64 `json:"average_score"`
	// ImprovementDelta is the mean score change against the immediately
	// preceding attempt with the same tool. Positive means the tool
	// trends upward.
	ImprovementDelta float64 `json:"improvement_delta"`
	SampleCount      int     `json:"sample_count"`
}

// AnalyzeToolEffectiveness computes per-tool average score and improvement
// trend, ranked most effective first. Tools without any samples are
// omitted.
func AnalyzeToolEffectiveness(points []plan.PerformanceDataPoint) []ToolEffectiveness {
	byTool := make(map[string][]plan.PerformanceDataPoint)
	for _, pt := range points {
		byTool[pt.ToolType] = append(byTool[pt.ToolType], pt)
	}

	var out []ToolEffectiveness
	for _, tool := range rankedToolTypes {
		samples := byTool[tool]
		if len(samples) == 0 {
			continue
		}
		sort.Slice(samples, func(i, j int) bool {
			return samples[i].Date.Before(samples[j].Date)
		})

		sum := 0.0
		deltaSum := 0.0
		for i, pt := range samples {
			sum += pt.Score
			if i > 0 {
				deltaSum += pt.Score - samples[i-1].Score
			}
		}

		eff := ToolEffectiveness{
			ToolType:     tool,
			AverageScore: sum / float64(len(samples)),
			SampleCount:  len(samples),
		}
		if len(samples) > 1 {
			eff.ImprovementDelta = deltaSum / float64(len(samples)-1)
		}
		out = append(out, eff)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageScore != out[j].AverageScore {
			return out[i].AverageScore > out[j].AverageScore
		}
		if out[i].ImprovementDelta != out[j].ImprovementDelta {
			return out[i].ImprovementDelta > out[j].ImprovementDelta
		}
		return out[i].ToolType < out[j].ToolType
	})
	return out
}
