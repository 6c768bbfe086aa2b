package cmd

import (
	"fmt"

	"github.com/som23ya/domestika-creative-assistant-launchpad/internal/identity"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Sign in so activity and points persist across sessions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		provider, _ := cmd.Flags().GetString("provider")
		user, err := svcs.identity.SignIn(cmd.Context(), args[0], provider)
		if err != nil {
			return err
		}
		fmt.Printf("Signed in as %s (%s)\n", user.Email, user.Provider)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		if err := svcs.identity.SignOut(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		user, ok := svcs.identity.Current()
		if !ok {
			fmt.Println("Not signed in.")
			return nil
		}
		fmt.Printf("%s (%s)\n", user.Email, user.Provider)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("provider", identity.ProviderGoogle, "Identity provider (google or github)")
}
