package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/RavDas/fleet-management-backend/internal/inventory"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/spf13/cobra"
)

func newPartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part",
		Short: "Parts inventory commands",
	}

	cmd.AddCommand(newPartCreateCmd())
	cmd.AddCommand(newPartListCmd())
	cmd.AddCommand(newPartShowCmd())
	cmd.AddCommand(newPartUpdateCmd())
	cmd.AddCommand(newPartDeleteCmd())
	return cmd
}

func newPartCreateCmd() *cobra.Command {
	var (
		configPath  string
		name        string
		partNumber  string
		category    string
		quantity    int
		minQuantity int
		unitCost    float64
		supplier    string
		location    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a part to inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartCreate(cmd, configPath, inventory.CreateOpts{
				Name:        name,
				PartNumber:  partNumber,
				Category:    category,
				Quantity:    quantity,
				MinQuantity: minQuantity,
				UnitCost:    unitCost,
				Supplier:    supplier,
				Location:    location,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&name, "name", "", "part name (required)")
	cmd.Flags().StringVar(&partNumber, "number", "", "manufacturer part number (required)")
	cmd.Flags().StringVar(&category, "category", "", "part category")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "stock on hand")
	cmd.Flags().IntVar(&minQuantity, "min-quantity", 0, "reorder threshold")
	cmd.Flags().Float64Var(&unitCost, "unit-cost", 0, "cost per unit")
	cmd.Flags().StringVar(&supplier, "supplier", "", "supplier name")
	cmd.Flags().StringVar(&location, "location", "", "storage location")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("number")
	return cmd
}

func runPartCreate(cmd *cobra.Command, configPath string, opts inventory.CreateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	part, err := svcs.Inventory.Create(cmd.Context(), opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created part %s (%s)\n", part.ID, part.Name)
	return nil
}

func newPartListCmd() *cobra.Command {
	var (
		configPath string
		category   string
		lowStock   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List inventory parts",
		Long:  "Lists parts, optionally restricted to one category or to parts at or below their reorder threshold.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartList(cmd, configPath, category, lowStock)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().BoolVar(&lowStock, "low-stock", false, "only parts at or below their reorder threshold")
	return cmd
}

func runPartList(cmd *cobra.Command, configPath, category string, lowStock bool) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	var parts []models.Part
	if lowStock {
		parts, err = svcs.Inventory.LowStock(cmd.Context())
	} else {
		parts, err = svcs.Inventory.List(cmd.Context(), category)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(parts) == 0 {
		fmt.Fprintln(out, "No parts found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tNUMBER\tCATEGORY\tQTY\tMIN\tUNIT COST")
	for _, part := range parts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			part.ID, truncate(part.Name, 30), part.PartNumber, part.Category,
			part.Quantity, part.MinQuantity, money(part.UnitCost))
	}
	w.Flush()
	return nil
}

func newPartShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show part details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runPartShow(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	part, err := svcs.Inventory.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  (%s)\n", part.ID, part.Name, part.PartNumber)
	fmt.Fprintf(out, "Category:  %s\n", part.Category)
	fmt.Fprintf(out, "Stock:     %d (reorder at %d)\n", part.Quantity, part.MinQuantity)
	fmt.Fprintf(out, "Unit cost: %s\n", money(part.UnitCost))
	if part.Supplier != "" {
		fmt.Fprintf(out, "Supplier:  %s\n", part.Supplier)
	}
	if part.Location != "" {
		fmt.Fprintf(out, "Location:  %s\n", part.Location)
	}
	if part.LastRestocked != nil {
		fmt.Fprintf(out, "Restocked: %s\n", part.LastRestocked.Format("2006-01-02"))
	}
	return nil
}

func newPartUpdateCmd() *cobra.Command {
	var (
		configPath  string
		quantity    int
		minQuantity int
		unitCost    float64
		location    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a part",
		Long:  "Updates only the fields whose flags are set. Raising the quantity records a restock.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := inventory.UpdateOpts{}
			if cmd.Flags().Changed("quantity") {
				opts.Quantity = &quantity
			}
			if cmd.Flags().Changed("min-quantity") {
				opts.MinQuantity = &minQuantity
			}
			if cmd.Flags().Changed("unit-cost") {
				opts.UnitCost = &unitCost
			}
			if cmd.Flags().Changed("location") {
				opts.Location = &location
			}
			return runPartUpdate(cmd, configPath, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().IntVar(&quantity, "quantity", 0, "stock on hand")
	cmd.Flags().IntVar(&minQuantity, "min-quantity", 0, "reorder threshold")
	cmd.Flags().Float64Var(&unitCost, "unit-cost", 0, "cost per unit")
	cmd.Flags().StringVar(&location, "location", "", "storage location")
	return cmd
}

func runPartUpdate(cmd *cobra.Command, configPath, id string, opts inventory.UpdateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	part, err := svcs.Inventory.Update(cmd.Context(), id, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (stock: %d)\n", part.ID, part.Quantity)
	return nil
}

func newPartDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a part from inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPartDelete(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runPartDelete(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	if err := svcs.Inventory.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}
