package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [name]",
	Short: "Log in as a user, creating them on first use",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("name is required")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		user, err := store.Sessions.Login(cmd.Context(), name)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged in as %s\n", user.Name)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out the current user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Sessions.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("👋 Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		userID, err := store.Sessions.CurrentUser(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(userID)
		return nil
	},
}
