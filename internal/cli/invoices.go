package cli

import (
	"context"
	"fmt"

	"github.com/rezapahlevi/kaludra/internal/format"
	"github.com/rezapahlevi/kaludra/internal/render"
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices",
	Long:  `List, show, toggle, delete, and export invoices. New invoices are drafted in the TUI editor.`,
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		invoices, err := appInstance.InvoiceService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}

		if len(invoices) == 0 {
			fmt.Println("No invoices found")
			return nil
		}

		// Print table header
		fmt.Printf("%-38s %-15s %-22s %-12s %-15s %-8s\n", "ID", "Number", "Client", "Date", "Total", "Status")
		fmt.Println("-------------------------------------------------------------------------------------------------------------------")

		// Print invoices
		for _, inv := range invoices {
			fmt.Printf("%-38s %-15s %-22s %-12s %-15s %-8s\n",
				inv.ID,
				inv.InvoiceNumber,
				truncate(inv.ClientName, 22),
				format.Date(inv.Date),
				format.Money(inv.Subtotal),
				inv.Status,
			)
		}

		fmt.Printf("\nTotal: %d invoice(s)\n", len(invoices))
		return nil
	},
}

var invoicesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show the printable form of an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		inv, err := appInstance.InvoiceService.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		fmt.Print(render.InvoiceText(inv, appInstance.Config.Company, appInstance.Config.Payment))
		return nil
	},
}

var invoicesStatusCmd = &cobra.Command{
	Use:   "status [id]",
	Short: "Advance an invoice's status",
	Long: `Advance an invoice's status one step.

A DRAFT becomes UNPAID, then the status toggles between UNPAID and PAID.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		inv, err := appInstance.InvoiceService.ToggleStatus(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		fmt.Printf("✓ Invoice %s is now %s\n", inv.InvoiceNumber, inv.Status)
		return nil
	},
}

var invoicesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		if err := appInstance.InvoiceService.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete invoice: %w", err)
		}

		fmt.Printf("✓ Invoice deleted (ID: %s)\n", args[0])
		return nil
	},
}

var invoicesExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export an invoice as a text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		inv, err := appInstance.InvoiceService.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get invoice: %w", err)
		}

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = appInstance.Config.Invoice.ExportDir
		}

		path, err := render.WriteInvoiceFile(inv, appInstance.Config.Company, appInstance.Config.Payment, dir)
		if err != nil {
			return fmt.Errorf("failed to export invoice: %w", err)
		}

		fmt.Printf("✓ Invoice exported: %s\n", path)
		return nil
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesShowCmd)
	invoicesCmd.AddCommand(invoicesStatusCmd)
	invoicesCmd.AddCommand(invoicesDeleteCmd)
	invoicesCmd.AddCommand(invoicesExportCmd)

	// Export flags
	invoicesExportCmd.Flags().String("dir", "", "Output directory (defaults to the configured export dir)")
}
