package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arjun/studyflow/internal/plan"
)

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Record performance data points",
}

var perfAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one scored practice attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		score, _ := cmd.Flags().GetFloat64("score")
		tool, _ := cmd.Flags().GetString("tool")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		minutes, _ := cmd.Flags().GetInt("minutes")

		if score < 0 || score > 100 {
			return fmt.Errorf("score %.1f out of range 0-100", score)
		}
		switch tool {
		case plan.ToolQuiz, plan.ToolFlashcard, plan.ToolPractice, plan.ToolSummary:
		default:
			return fmt.Errorf("unknown tool type %q", tool)
		}
		if difficulty < 1 || difficulty > 5 {
			return fmt.Errorf("difficulty %d out of range 1-5", difficulty)
		}

		date, err := flagDate(cmd, "date", time.Now())
		if err != nil {
			return err
		}
		// Date flags land at midnight; keep the current wall-clock time
		// so study-time windows stay meaningful for today's entries.
		if raw, _ := cmd.Flags().GetString("date"); raw == "" {
			date = time.Now()
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		point := plan.PerformanceDataPoint{
			Date:       date,
			Score:      score,
			ToolType:   tool,
			Difficulty: difficulty,
			TimeSpent:  minutes,
		}
		if err := st.Performance().Add(cmd.Context(), point); err != nil {
			return err
		}
		fmt.Printf("Recorded %s attempt: %.1f (difficulty %d, %d min)\n", tool, score, difficulty, minutes)
		return nil
	},
}

func init() {
	perfAddCmd.Flags().Float64("score", 0, "Score 0-100 (required)")
	perfAddCmd.Flags().String("tool", plan.ToolQuiz, "Tool type: quiz, flashcard, practice or summary")
	perfAddCmd.Flags().Int("difficulty", 3, "Difficulty 1-5")
	perfAddCmd.Flags().Int("minutes", 0, "Minutes spent")
	perfAddCmd.Flags().String("date", "", "Attempt date (YYYY-MM-DD, default now)")
	perfAddCmd.MarkFlagRequired("score")

	perfCmd.AddCommand(perfAddCmd)
}
