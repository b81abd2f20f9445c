package cli

import (
	"context"
	"fmt"

	"github.com/rezapahlevi/kaludra/internal/domain"
	"github.com/rezapahlevi/kaludra/internal/format"
	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Manage the billable service catalog",
	Long:  `List, add, edit, and delete catalog services used to quick-fill invoice items.`,
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all services",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		services, err := appInstance.CatalogService.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list services: %w", err)
		}

		if len(services) == 0 {
			fmt.Println("No services found")
			return nil
		}

		fmt.Printf("%-38s %-35s %-15s\n", "ID", "Name", "Rate")
		fmt.Println("------------------------------------------------------------------------------------------")

		for _, svc := range services {
			fmt.Printf("%-38s %-35s %-15s\n",
				svc.ID,
				truncate(svc.Name, 35),
				format.Money(svc.Rate),
			)
		}

		fmt.Printf("\nTotal: %d service(s)\n", len(services))
		return nil
	},
}

var servicesAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		rate, _ := cmd.Flags().GetFloat64("rate")
		svc := domain.NewService(args[0], rate)

		created, err := appInstance.CatalogService.Create(ctx, *svc)
		if err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}

		fmt.Printf("✓ Service created: %s (ID: %s)\n", created.Name, created.ID)
		fmt.Printf("  Rate: %s\n", format.Money(created.Rate))
		return nil
	},
}

var servicesEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing service",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		svc, err := appInstance.CatalogService.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get service: %w", err)
		}

		if cmd.Flags().Changed("name") {
			svc.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("rate") {
			svc.Rate, _ = cmd.Flags().GetFloat64("rate")
		}

		if err := appInstance.CatalogService.Update(ctx, *svc); err != nil {
			return fmt.Errorf("failed to update service: %w", err)
		}

		fmt.Printf("✓ Service updated: %s\n", svc.Name)
		return nil
	},
}

var servicesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a service",
	Long:  `Delete a catalog service. Invoice items keep their copied description and rate.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := requireAuth(ctx); err != nil {
			return err
		}

		if err := appInstance.CatalogService.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete service: %w", err)
		}

		fmt.Printf("✓ Service deleted (ID: %s)\n", args[0])
		return nil
	},
}

func init() {
	servicesCmd.AddCommand(servicesListCmd)
	servicesCmd.AddCommand(servicesAddCmd)
	servicesCmd.AddCommand(servicesEditCmd)
	servicesCmd.AddCommand(servicesDeleteCmd)

	// Add flags
	servicesAddCmd.Flags().Float64("rate", 0, "Service rate (required)")
	servicesAddCmd.MarkFlagRequired("rate")

	// Edit flags
	servicesEditCmd.Flags().String("name", "", "New name")
	servicesEditCmd.Flags().Float64("rate", 0, "New rate")
}
