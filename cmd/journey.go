package cmd

import (
	"fmt"
	"strings"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/spf13/cobra"
)

var journeyCmd = &cobra.Command{
	Use:   "journey <interest>",
	Short: "Get a course and exercise for a creative interest",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		interest := strings.Join(args, " ")
		rec, found, err := svcs.assist.SkillJourney(cmd.Context(), interest)
		if err != nil {
			return err
		}

		if !found {
			_, hint := svcs.assist.ValidateInterest(interest)
			fmt.Println(hint)
			return nil
		}

		fmt.Printf("Course:   %s\n", rec.Course)
		fmt.Printf("Exercise: %s\n", rec.Exercise)

		accept, _ := cmd.Flags().GetBool("accept")
		if accept {
			detail := map[string]any{ledger.DetailTitle: rec.Course}
			if err := record(cmd.Context(), svcs, ledger.KindCourseSelected, detail); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	journeyCmd.Flags().Bool("accept", false, "Record the recommended course as selected")
}
