package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/assist"
	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/ledger"
	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [description]",
	Short: "Get AI feedback on a project description or image",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		description := strings.Join(args, " ")
		imagePath, _ := cmd.Flags().GetString("image")

		if ok, hint := svcs.assist.ValidateFeedbackInput(description, imagePath != ""); !ok {
			fmt.Println(hint)
			return nil
		}

		ctx := cmd.Context()

		var fileName string
		if imagePath != "" {
			fileName = filepath.Base(imagePath)
		}

		if imagePath != "" {
			userID := "guest"
			if id, ok := svcs.identity.CurrentUserID(); ok {
				userID = id
			}
			stored, err := svcs.uploads.SaveFile(userID, imagePath)
			if err != nil {
				return fmt.Errorf("upload image: %w", err)
			}
			fmt.Printf("Uploaded %s\n", stored)

			detail := map[string]any{ledger.DetailFilename: fileName}
			if err := record(ctx, svcs, ledger.KindProjectUpload, detail); err != nil {
				return err
			}
		}

		resp, err := svcs.assist.ProjectFeedback(ctx, assist.FeedbackInput{
			Description: description,
			HasImage:    imagePath != "",
			FileName:    fileName,
		})
		if err != nil {
			return err
		}

		fmt.Printf("[%s] %s\n", resp.Kind, resp.Feedback)

		detail := map[string]any{
			ledger.DetailFeedback: resp.Feedback,
			ledger.DetailRating:   string(resp.Kind),
		}
		return record(ctx, svcs, ledger.KindFeedbackReceived, detail)
	},
}

func init() {
	feedbackCmd.Flags().String("image", "", "Path to a project image to upload")
}
