package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arjun/studyflow/internal/mastery"
	planpkg "github.com/arjun/studyflow/internal/plan"
	"github.com/arjun/studyflow/internal/ui/theme"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Import and inspect study plans",
}

var planImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Validate and import a study plan from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read plan file: %w", err)
		}
		p, err := planpkg.ParseFile(raw)
		if err != nil {
			return fmt.Errorf("invalid plan file: %w", err)
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Plans().Save(cmd.Context(), p); err != nil {
			return err
		}
		fmt.Printf("Imported plan %s (%s, %d topics)\n", p.ID, p.Name, len(p.Topics))
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		plans, err := st.Plans().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println(theme.Dim.Render("No plans imported yet. Try: studyflow plan import <file.json>"))
			return nil
		}

		fmt.Printf("%-36s  %-24s  %-10s  %6s  %s\n", "ID", "Name", "Status", "Topics", "Goal")
		for _, p := range plans {
			goal := "-"
			if !p.GoalDate.IsZero() {
				goal = p.GoalDate.Format("2006-01-02")
			}
			fmt.Printf("%-36s  %-24s  %-10s  %6d  %s\n",
				p.ID, truncate(p.Name, 24), p.Status, len(p.Topics), goal)
		}
		fmt.Printf("\n%d plans\n", len(plans))
		return nil
	},
}

var planStatusCmd = &cobra.Command{
	Use:   "status <plan-id>",
	Short: "Show one plan with its tools and mastery overview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.Plans().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(p.Name))
		if p.CourseName != "" {
			fmt.Println(theme.Subtitle.Render(p.CourseName))
		}
		fmt.Printf("Status: %s   Session: %d min   Goal: %s\n",
			p.Status, p.SessionMinutes(), p.GoalDate.Format("2006-01-02"))
		fmt.Printf("Tools: %d flashcards, %d quizzes, %d summaries\n",
			len(p.Tools.Flashcards), len(p.Tools.Quizzes), len(p.Tools.Summaries))

		profiles := mastery.Analyze(p, time.Now())
		if len(profiles) == 0 {
			fmt.Println(theme.Dim.Render("No topics on this plan."))
			return nil
		}
		fmt.Printf("\n%-28s  %-12s  %6s  %10s\n", "Topic", "Level", "Score", "Confidence")
		for _, prof := range profiles {
			fmt.Printf("%-28s  %-12s  %6.1f  %10.1f\n",
				truncate(prof.TopicID, 28), prof.Level, prof.Score, prof.Confidence)
		}
		return nil
	},
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	planCmd.AddCommand(planImportCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planStatusCmd)
}
