package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arjun/studyflow/internal/mastery"
	"github.com/arjun/studyflow/internal/recommend"
	"github.com/arjun/studyflow/internal/review"
	"github.com/arjun/studyflow/internal/ui/theme"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Mastery, review urgency and study recommendations",
}

var insightsMasteryCmd = &cobra.Command{
	Use:   "mastery <plan-id>",
	Short: "Per-topic mastery profiles derived from recorded practice",
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

		profiles := mastery.Analyze(p, time.Now())
		if len(profiles) == 0 {
			fmt.Println(theme.Dim.Render("Plan has no topics."))
			return nil
		}

		fmt.Printf("%-28s  %-12s  %6s  %6s  %6s  %5s\n",
			"Topic", "Level", "Score", "Conf", "Streak", "Diff")
		for _, prof := range profiles {
			fmt.Printf("%-28s  %-12s  %6.1f  %6.1f  %5dd  %5d\n",
				truncate(prof.TopicID, 28), prof.Level, prof.Score,
				prof.Confidence, prof.StreakDays, prof.RecommendedDifficulty)
			for _, w := range prof.WeakAreas {
				fmt.Println(theme.Warn.Render("    ▾ " + w))
			}
			for _, s := range prof.StrongAreas {
				fmt.Println(theme.Good.Render("    ▴ " + s))
			}
		}
		return nil
	},
}

var insightsReviewCmd = &cobra.Command{
	Use:   "review <plan-id>",
	Short: "Topics ranked by how urgently they need review",
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

		now := time.Now()
		queue := review.Prioritize(mastery.Analyze(p, now), now)
		if len(queue) == 0 {
			fmt.Println(theme.Dim.Render("Nothing to review."))
			return nil
		}

		for _, item := range queue {
			label := theme.Severity(string(item.Urgency)).Render(strings.ToUpper(string(item.Urgency)))
			fmt.Printf("%s %-28s  risk %5.1f  last reviewed %dd ago\n",
				label, truncate(item.Topic, 28), item.RetentionRisk, item.DaysSinceLastReview)
			fmt.Println(theme.Dim.Render("    " + item.RecommendedAction))
		}
		return nil
	},
}

var insightsRecommendCmd = &cobra.Command{
	Use:   "recommend <plan-id>",
	Short: "Daily recommendation feed for a plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		p, err := st.Plans().Get(ctx, args[0])
		if err != nil {
			return err
		}
		points, err := st.Performance().List(ctx)
		if err != nil {
			return err
		}

		now := time.Now()
		profiles := mastery.Analyze(p, now)

		if times := recommend.StudyTimes(points); len(times) > 0 {
			fmt.Println(theme.Title.Render("Best study windows"))
			for _, w := range times {
				fmt.Printf("  %-10s avg %5.1f over %d sessions (confidence %.0f%%)\n",
					w.Window, w.AverageScore, w.SampleCount, w.Confidence*100)
			}
		}

		if tools := recommend.AnalyzeToolEffectiveness(points); len(tools) > 0 {
			fmt.Println(theme.Title.Render("Tool effectiveness"))
			for _, tool := range tools {
				trend := fmt.Sprintf("%+.1f", tool.ImprovementDelta)
				fmt.Printf("  %-10s avg %5.1f  trend %s  (%d uses)\n",
					tool.ToolType, tool.AverageScore, trend, tool.SampleCount)
			}
		}

		if related := recommend.RelatedTopics(p); len(related) > 0 {
			fmt.Println(theme.Title.Render("Related topics"))
			for _, rel := range related {
				fmt.Printf("  %s ↔ %s  (%s, %.1f)\n", rel.TopicA, rel.TopicB, rel.Type, rel.Strength)
			}
		}

		feed := recommend.Daily(recommend.DailyInput{
			Preferences: p.Preferences,
			Profiles:    profiles,
			ReviewQueue: review.Prioritize(profiles, now),
			Tools:       p.Tools,
		})
		if len(feed) == 0 {
			fmt.Println(theme.Dim.Render("No recommendations for today."))
			return nil
		}
		fmt.Println(theme.Title.Render("Today"))
		for _, r := range feed {
			label := theme.Severity(string(r.Priority)).Render(strings.ToUpper(string(r.Priority)))
			fmt.Printf("%s %s\n", label, r.Message)
		}
		return nil
	},
}

func init() {
	insightsCmd.AddCommand(insightsMasteryCmd)
	insightsCmd.AddCommand(insightsReviewCmd)
	insightsCmd.AddCommand(insightsRecommendCmd)
}
