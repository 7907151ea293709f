package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arjun/studyflow/internal/plan"
	"github.com/arjun/studyflow/internal/schedule"
	"github.com/arjun/studyflow/internal/ui/theme"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Generate and inspect the study schedule",
}

var scheduleGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the schedule from active plans and assignments",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		start, err := flagDate(cmd, "start", time.Now())
		if err != nil {
			return err
		}
		days, _ := cmd.Flags().GetInt("days")
		if days <= 0 {
			days = cfg.HorizonDays
		}
		end := start.AddDate(0, 0, days)

		stored, err := st.Plans().List(ctx)
		if err != nil {
			return err
		}
		plans := make([]plan.StudyPlan, len(stored))
		for i, p := range stored {
			plans[i] = *p
		}
		assignments, err := st.Assignments().List(ctx)
		if err != nil {
			return err
		}

		blocks := schedule.Generate(plans, assignments, start, end)
		if err := st.Blocks().ReplaceAll(ctx, blocks); err != nil {
			return err
		}

		for i := range plans {
			p := &plans[i]
			if !p.Active() || len(p.TimeAvailability) == 0 {
				continue
			}
			placed := 0
			for _, b := range blocks {
				if b.Type == schedule.TypeStudy && strings.HasPrefix(b.ID, p.ID+"-") {
					placed++
				}
			}
			if quota := schedule.SessionsNeeded(p); placed < quota {
				logrus.Warnf("plan %s: placed %d of %d needed sessions; availability is too sparse before the goal date",
					p.Name, placed, quota)
				fmt.Println(theme.Warn.Render(fmt.Sprintf(
					"Note: %q fits only %d of %d sessions before its goal date", p.Name, placed, quota)))
			}
		}

		fmt.Printf("Generated %d blocks between %s and %s\n",
			len(blocks), start.Format("2006-01-02"), end.Format("2006-01-02"))
		return nil
	},
}

var scheduleConflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Detect overlaps and overloaded days in the stored schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		blocks, err := st.Blocks().List(cmd.Context())
		if err != nil {
			return err
		}
		conflicts := schedule.DetectConflicts(blocks)
		if len(conflicts) == 0 {
			fmt.Println(theme.Good.Render("No conflicts detected"))
			return nil
		}

		for _, c := range conflicts {
			label := theme.Severity(string(c.Severity)).Render(strings.ToUpper(string(c.Severity)))
			fmt.Printf("%s %s: %s\n", label, c.Type, strings.Join(c.AffectedItems, ", "))
			fmt.Printf("  %s", c.SuggestedResolution)
			if c.AutoResolvable {
				fmt.Print(theme.Dim.Render("  (auto-resolvable)"))
			}
			fmt.Println()
		}
		fmt.Printf("\n%d conflicts\n", len(conflicts))
		return nil
	},
}

var scheduleWorkloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Analyze weekly workload distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		blocks, err := st.Blocks().List(cmd.Context())
		if err != nil {
			return err
		}
		a := schedule.AnalyzeWorkload(blocks)

		fmt.Println(theme.Title.Render("Weekly workload"))
		for d := time.Sunday; d <= time.Saturday; d++ {
			name := d.String()
			hours := a.WeeklyDistribution[name]
			bar := strings.Repeat("█", int(hours*2))
			fmt.Printf("%-10s %5.1fh  %s\n", name, hours, bar)
		}
		fmt.Printf("\nTotal: %.1fh   Weighted: %.1fh   Daily avg: %.1fh   Peak: %.1fh\n",
			a.TotalHours, a.DifficultyWeightedHours, a.AverageDailyLoad, a.PeakLoad)
		if len(a.OverloadedDays) > 0 {
			fmt.Println(theme.Warn.Render("Overloaded: " + strings.Join(a.OverloadedDays, ", ")))
		}
		if len(a.UnderutilizedDays) > 0 {
			fmt.Println(theme.Dim.Render("Underutilized: " + strings.Join(a.UnderutilizedDays, ", ")))
		}
		for _, r := range a.Recommendations {
			fmt.Println("• " + r)
		}
		return nil
	},
}

var scheduleBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Move low-priority blocks off overloaded days",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		target, _ := cmd.Flags().GetFloat64("target")
		if target <= 0 {
			target = cfg.TargetMaxHours
		}

		blocks, err := st.Blocks().List(ctx)
		if err != nil {
			return err
		}
		balanced := schedule.Balance(blocks, target)

		moved := 0
		for i := range blocks {
			if !blocks[i].Date.Equal(balanced[i].Date) {
				moved++
				fmt.Printf("Moved %q from %s to %s\n",
					balanced[i].Title, blocks[i].DayKey(), balanced[i].DayKey())
			}
		}
		if moved == 0 {
			fmt.Println(theme.Good.Render("Schedule already within target"))
			return nil
		}

		if err := st.Blocks().ReplaceAll(ctx, balanced); err != nil {
			return err
		}
		fmt.Printf("Rebalanced %d blocks (target %.1fh/day)\n", moved, target)
		return nil
	},
}

// flagDate parses a YYYY-MM-DD flag, defaulting to fallback at midnight.
func flagDate(cmd *cobra.Command, name string, fallback time.Time) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		y, m, d := fallback.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: %w", name, err)
	}
	return t, nil
}

func init() {
	scheduleGenerateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD, default today)")
	scheduleGenerateCmd.Flags().Int("days", 0, "Generation window in days (default from config)")
	scheduleBalanceCmd.Flags().Float64("target", 0, "Target max hours per day (default from config)")

	scheduleCmd.AddCommand(scheduleGenerateCmd)
	scheduleCmd.AddCommand(scheduleConflictsCmd)
	scheduleCmd.AddCommand(scheduleWorkloadCmd)
	scheduleCmd.AddCommand(scheduleBalanceCmd)
}
