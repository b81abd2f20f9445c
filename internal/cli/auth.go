package cli

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and open a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		email := args[0]

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		if err := appInstance.AuthService.Login(ctx, email, string(password)); err != nil {
			return err
		}

		fmt.Printf("✓ Logged in as %s\n", email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := appInstance.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("failed to log out: %w", err)
		}

		fmt.Println("✓ Logged out")
		return nil
	},
}

// requireAuth gates data commands behind an active session
func requireAuth(ctx context.Context) error {
	ok, err := appInstance.AuthService.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !ok {
		return fmt.Errorf("not logged in: run 'kaludra login <email>' first")
	}
	return nil
}
