package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Show earned points and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		ctx := cmd.Context()

		if _, ok := svcs.identity.CurrentUserID(); !ok {
			fmt.Println("Not signed in. Run 'launchpad login' to start earning points.")
			return nil
		}

		total, err := svcs.ledger.TotalPoints(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Total: %d pts\n\n", total)

		events, err := svcs.ledger.History(ctx, svcs.cfg.HistoryDisplayLimit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No activity yet.")
			return nil
		}
		for _, e := range events {
			line := fmt.Sprintf("%s  %-18s  +%d pts", e.Kind.Icon(), e.Kind.Label(), e.Points())
			if title := e.Title(); title != "" {
				line += "  " + title
			}
			fmt.Printf("%s  %s\n", line, e.Time.Local().Format("Jan 02 15:04"))
		}
		return nil
	},
}
