package cmd

import (
	"fmt"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/catalog"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Browse the course library",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		ctx := cmd.Context()
		limit, _ := cmd.Flags().GetInt("limit")
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		listCats, _ := cmd.Flags().GetBool("categories")

		if listCats {
			for _, c := range svcs.assist.Categories() {
				fmt.Printf("%-24s %s\n", c.Slug, c.Name)
			}
			return nil
		}

		var list []catalog.Course
		switch {
		case search != "":
			list, err = svcs.assist.SearchCourses(ctx, search, limit)
		case category != "":
			list, err = svcs.assist.CoursesByCategory(ctx, category, limit)
		default:
			list, err = svcs.assist.PopularCourses(ctx, limit)
		}
		if err != nil {
			return err
		}

		if len(list) == 0 {
			fmt.Println("No courses found.")
			return nil
		}
		for _, c := range list {
			fmt.Printf("%s\n  %s · %s · ★ %.1f · %d students · %s\n",
				c.Title, c.Instructor, c.Category, c.Rating, c.Students, c.Price)
		}
		return nil
	},
}

func init() {
	coursesCmd.Flags().Int("limit", 10, "Maximum number of courses to list")
	coursesCmd.Flags().String("category", "", "Filter by category slug")
	coursesCmd.Flags().String("search", "", "Search courses by keyword")
	coursesCmd.Flags().Bool("categories", false, "List available categories")
}
