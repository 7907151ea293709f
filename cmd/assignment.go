package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arjun/studyflow/internal/plan"
	"github.com/arjun/studyflow/internal/ui/theme"
)

var assignmentCmd = &cobra.Command{
	Use:   "assignment",
	Short: "Track dated assignments",
}

var assignmentAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an assignment with a due date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		due, err := flagDate(cmd, "due", time.Time{})
		if err != nil {
			return err
		}
		if due.IsZero() {
			return fmt.Errorf("--due is required (YYYY-MM-DD)")
		}
		course, _ := cmd.Flags().GetString("course")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		a := plan.Assignment{
			ID:         uuid.NewString(),
			Title:      args[0],
			CourseName: course,
			DueDate:    due,
		}
		if err := st.Assignments().Save(cmd.Context(), a); err != nil {
			return err
		}
		fmt.Printf("Added assignment %s due %s\n", a.ID, due.Format("2006-01-02"))
		return nil
	},
}

var assignmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments by due date",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		assignments, err := st.Assignments().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(assignments) == 0 {
			fmt.Println(theme.Dim.Render("No assignments tracked."))
			return nil
		}

		fmt.Printf("%-36s  %-28s  %-16s  %-10s  %s\n", "ID", "Title", "Course", "Due", "Done")
		for _, a := range assignments {
			done := ""
			if a.Completed {
				done = theme.Good.Render("✓")
			}
			fmt.Printf("%-36s  %-28s  %-16s  %-10s  %s\n",
				a.ID, truncate(a.Title, 28), truncate(a.CourseName, 16),
				a.DueDate.Format("2006-01-02"), done)
		}
		return nil
	},
}

var assignmentDoneCmd = &cobra.Command{
	Use:   "done <assignment-id>",
	Short: "Mark an assignment completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		assignments, err := st.Assignments().List(ctx)
		if err != nil {
			return err
		}
		for _, a := range assignments {
			if a.ID == args[0] {
				a.Completed = true
				if err := st.Assignments().Save(ctx, a); err != nil {
					return err
				}
				fmt.Printf("Marked %q complete\n", a.Title)
				return nil
			}
		}
		return fmt.Errorf("assignment %s not found", args[0])
	},
}

func init() {
	assignmentAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD, required)")
	assignmentAddCmd.Flags().String("course", "", "Course name")

	assignmentCmd.AddCommand(assignmentAddCmd)
	assignmentCmd.AddCommand(assignmentListCmd)
	assignmentCmd.AddCommand(assignmentDoneCmd)
}
