package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/RavDas/fleet-management-backend/internal/maintenance"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/spf13/cobra"
)

func newMaintenanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Maintenance item commands",
	}

	cmd.AddCommand(newMaintenanceCreateCmd())
	cmd.AddCommand(newMaintenanceListCmd())
	cmd.AddCommand(newMaintenanceShowCmd())
	cmd.AddCommand(newMaintenanceUpdateCmd())
	cmd.AddCommand(newMaintenanceCompleteCmd())
	cmd.AddCommand(newMaintenanceDeleteCmd())
	cmd.AddCommand(newMaintenanceHistoryCmd())
	return cmd
}

func newMaintenanceCreateCmd() *cobra.Command {
	var (
		configPath     string
		vehicleID      string
		itemType       string
		description    string
		priority       string
		dueDate        string
		currentMileage int
		dueMileage     int
		estimatedCost  float64
		assignedTo     string
		notes          string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a maintenance item",
		Long:  "Creates a maintenance item with an auto-generated ID and a status derived from its due date and mileage.",
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := time.Parse("2006-01-02", dueDate)
			if err != nil {
				return fmt.Errorf("parse --due %q: %w", dueDate, err)
			}
			return runMaintenanceCreate(cmd, configPath, maintenance.CreateOpts{
				VehicleID:      vehicleID,
				Type:           itemType,
				Description:    description,
				Priority:       models.Priority(priority),
				DueDate:        due,
				CurrentMileage: currentMileage,
				DueMileage:     dueMileage,
				EstimatedCost:  estimatedCost,
				AssignedTo:     assignedTo,
				Notes:          notes,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&vehicleID, "vehicle", "", "vehicle ID (required)")
	cmd.Flags().StringVar(&itemType, "type", "", "maintenance type (required)")
	cmd.Flags().StringVar(&description, "description", "", "detailed description")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, medium, high, critical)")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date as YYYY-MM-DD (required)")
	cmd.Flags().IntVar(&currentMileage, "mileage", 0, "current vehicle mileage")
	cmd.Flags().IntVar(&dueMileage, "due-mileage", 0, "mileage at which the work is due (required)")
	cmd.Flags().Float64Var(&estimatedCost, "cost", 0, "estimated cost")
	cmd.Flags().StringVar(&assignedTo, "assignee", "", "assigned technician name")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	cmd.MarkFlagRequired("vehicle")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("due")
	cmd.MarkFlagRequired("priority")
	cmd.MarkFlagRequired("due-mileage")
	return cmd
}

func runMaintenanceCreate(cmd *cobra.Command, configPath string, opts maintenance.CreateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	item, err := svcs.Maintenance.Create(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created maintenance item %s\n", item.ID)
	fmt.Fprintf(out, "Status: %s\n", item.Status)
	fmt.Fprintf(out, "Due: %s at %d mi\n", item.DueDate.Format("2006-01-02"), item.DueMileage)
	return nil
}

func newMaintenanceListCmd() *cobra.Command {
	var (
		configPath string
		vehicleID  string
		status     string
		priority   string
		assignee   string
		search     string
		page       int
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List maintenance items",
		Long:  "Lists maintenance items ordered by urgency, with optional filters. Output is formatted as a table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := store.MaintenanceFilter{
				VehicleID: vehicleID,
				Assignee:  assignee,
				Search:    search,
			}
			if status != "" {
				for _, s := range strings.Split(status, ",") {
					f.Statuses = append(f.Statuses, models.Status(s))
				}
			}
			if priority != "" {
				for _, p := range strings.Split(priority, ",") {
					f.Priorities = append(f.Priorities, models.Priority(p))
				}
			}
			return runMaintenanceList(cmd, configPath, f, store.Page{Number: page, Size: pageSize})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&vehicleID, "vehicle", "", "filter by vehicle ID")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (comma-separated)")
	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority (comma-separated)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "filter by assignee")
	cmd.Flags().StringVar(&search, "search", "", "search type, description, and vehicle")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", store.DefaultPageSize, "items per page")
	return cmd
}

func runMaintenanceList(cmd *cobra.Command, configPath string, f store.MaintenanceFilter, p store.Page) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	result, err := svcs.Maintenance.List(cmd.Context(), f, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(result.Items) == 0 {
		fmt.Fprintln(out, "No maintenance items found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVEHICLE\tTYPE\tSTATUS\tPRIORITY\tDUE\tMILEAGE")
	for _, item := range result.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d/%d\n",
			item.ID, item.VehicleID, truncate(item.Type, 30), item.Status, item.Priority,
			item.DueDate.Format("2006-01-02"), item.CurrentMileage, item.DueMileage)
	}
	w.Flush()
	fmt.Fprintf(out, "\nPage %d of %d (%d items)\n", result.Page, result.Pages, result.Total)
	return nil
}

func newMaintenanceShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show maintenance item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaintenanceShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runMaintenanceShow(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	item, err := svcs.Maintenance.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  [%s/%s]\n", item.ID, item.Type, item.Status, item.Priority)
	fmt.Fprintf(out, "Vehicle:   %s\n", item.VehicleID)
	fmt.Fprintf(out, "Due:       %s at %d mi (current %d mi)\n",
		item.DueDate.Format("2006-01-02"), item.DueMileage, item.CurrentMileage)
	if item.ScheduledDate != nil {
		fmt.Fprintf(out, "Scheduled: %s\n", item.ScheduledDate.Format("2006-01-02"))
	}
	if item.CompletedDate != nil {
		fmt.Fprintf(out, "Completed: %s\n", item.CompletedDate.Format("2006-01-02"))
	}
	fmt.Fprintf(out, "Estimated: %s\n", money(item.EstimatedCost))
	if item.ActualCost != nil {
		fmt.Fprintf(out, "Actual:    %s\n", money(*item.ActualCost))
	}
	if item.AssignedTo != "" {
		fmt.Fprintf(out, "Assignee:  %s\n", item.AssignedTo)
	}
	if item.Description != "" {
		fmt.Fprintf(out, "\n%s\n", item.Description)
	}
	if item.Notes != "" {
		fmt.Fprintf(out, "\nNotes: %s\n", item.Notes)
	}
	if len(item.PartsNeeded) > 0 {
		fmt.Fprintln(out, "\nParts needed:")
		for _, p := range item.PartsNeeded {
			fmt.Fprintf(out, "  %s x%d\n", p.Name, p.Quantity)
		}
	}
	return nil
}

func newMaintenanceUpdateCmd() *cobra.Command {
	var (
		configPath string
		status     string
		priority   string
		mileage    int
		cost       float64
		assignee   string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a maintenance item",
		Long:  "Updates only the fields whose flags are set; everything else is preserved.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := maintenance.UpdateOpts{}
			if cmd.Flags().Changed("status") {
				s := models.Status(status)
				opts.Status = &s
			}
			if cmd.Flags().Changed("priority") {
				p := models.Priority(priority)
				opts.Priority = &p
			}
			if cmd.Flags().Changed("mileage") {
				opts.CurrentMileage = &mileage
			}
			if cmd.Flags().Changed("actual-cost") {
				opts.ActualCost = &cost
			}
			if cmd.Flags().Changed("assignee") {
				opts.AssignedTo = &assignee
			}
			if cmd.Flags().Changed("notes") {
				opts.Notes = &notes
			}
			return runMaintenanceUpdate(cmd, configPath, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&priority, "priority", "", "new priority")
	cmd.Flags().IntVar(&mileage, "mileage", 0, "current vehicle mileage")
	cmd.Flags().Float64Var(&cost, "actual-cost", 0, "actual cost")
	cmd.Flags().StringVar(&assignee, "assignee", "", "assigned technician name")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")
	return cmd
}

func runMaintenanceUpdate(cmd *cobra.Command, configPath, id string, opts maintenance.UpdateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	item, err := svcs.Maintenance.Update(cmd.Context(), id, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (status: %s)\n", item.ID, item.Status)
	return nil
}

func newMaintenanceCompleteCmd() *cobra.Command {
	var (
		configPath string
		cost       float64
	)

	cmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a maintenance item completed",
		Long:  "Sets the item status to completed and stamps the completion date. Optionally records the actual cost.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completed := models.StatusCompleted
			opts := maintenance.UpdateOpts{Status: &completed}
			if cmd.Flags().Changed("actual-cost") {
				opts.ActualCost = &cost
			}
			return runMaintenanceComplete(cmd, configPath, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().Float64Var(&cost, "actual-cost", 0, "actual cost of the work")
	return cmd
}

func runMaintenanceComplete(cmd *cobra.Command, configPath, id string, opts maintenance.UpdateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	item, err := svcs.Maintenance.Update(cmd.Context(), id, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Completed %s", item.ID)
	if item.CompletedDate != nil {
		fmt.Fprintf(out, " on %s", item.CompletedDate.Format("2006-01-02"))
	}
	fmt.Fprintln(out)
	return nil
}

func newMaintenanceDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a maintenance item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaintenanceDelete(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runMaintenanceDelete(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	if err := svcs.Maintenance.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

func newMaintenanceHistoryCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "history <vehicle-id>",
		Short: "Show completed maintenance for a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaintenanceHistory(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runMaintenanceHistory(cmd *cobra.Command, configPath, vehicleID string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	items, err := svcs.Maintenance.History(cmd.Context(), vehicleID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		fmt.Fprintf(out, "No completed maintenance for %s.\n", vehicleID)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tCOMPLETED\tCOST")
	for _, item := range items {
		completed := "-"
		if item.CompletedDate != nil {
			completed = item.CompletedDate.Format("2006-01-02")
		}
		cost := "-"
		if item.ActualCost != nil {
			cost = money(*item.ActualCost)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.ID, truncate(item.Type, 30), completed, cost)
	}
	w.Flush()
	return nil
}
