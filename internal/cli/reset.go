package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rezapahlevi/kaludra/internal/repository"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset data in the store",
	Long: `Reset data in the store.

Examples:
  kaludra reset invoices   # Delete all invoices
  kaludra reset all        # Wipe everything: clients, services, invoices, session`,
}

var resetInvoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Delete all invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL invoices. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		ctx := context.Background()
		if err := appInstance.Store.Delete(ctx, repository.KeyInvoices); err != nil {
			return fmt.Errorf("failed to clear invoices: %w", err)
		}

		fmt.Println("All invoices have been deleted.")
		return nil
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete ALL data: clients, services, invoices, session",
	Long: `Delete ALL data. The next start seeds the starter clients and
services again because the collections are gone entirely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL data (clients, services, invoices, session). Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		ctx := context.Background()
		keys := []string{
			repository.KeyInvoices,
			repository.KeyServices,
			repository.KeyClients,
			repository.KeySession,
		}

		for _, key := range keys {
			if err := appInstance.Store.Delete(ctx, key); err != nil {
				return fmt.Errorf("failed to clear %s: %w", key, err)
			}
		}

		fmt.Println("All data has been deleted.")
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.AddCommand(resetInvoicesCmd)
	resetCmd.AddCommand(resetAllCmd)
}
