package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arjun/studyflow/internal/phase"
	"github.com/arjun/studyflow/internal/ui/theme"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Guided study sessions",
}

var sessionPreviewCmd = &cobra.Command{
	Use:   "preview <plan-id>",
	Short: "Show the phase walk a guided session would take",
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

		m := phase.NewManager(p)
		phases := m.Phases()

		fmt.Println(theme.Title.Render("Session preview: " + p.Name))
		total := 0
		for i, ph := range phases {
			fmt.Printf("%2d. %-20s %-40s %3d min\n",
				i+1, ph.Type, truncate(ph.Title, 40), ph.EstimatedMinutes)
			total += ph.EstimatedMinutes
		}
		fmt.Printf("\n%d phases, about %d minutes\n", len(phases), total)
		return nil
	},
}

func init() {
	sessionCmd.AddCommand(sessionPreviewCmd)
}
