package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "List interest suggestions matching a partial query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		query := strings.Join(args, " ")
		matches := svcs.ranker.Suggest(query, svcs.cfg.SuggestLimit)
		if len(matches) == 0 {
			fmt.Println("No matching interests.")
			return nil
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	},
}
