package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/RavDas/fleet-management-backend/internal/schedule"
	"github.com/spf13/cobra"
)

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Recurring schedule commands",
	}

	cmd.AddCommand(newScheduleCreateCmd())
	cmd.AddCommand(newScheduleListCmd())
	cmd.AddCommand(newScheduleShowCmd())
	cmd.AddCommand(newScheduleUpdateCmd())
	cmd.AddCommand(newScheduleDeleteCmd())
	cmd.AddCommand(newScheduleExecuteCmd())
	return cmd
}

func newScheduleCreateCmd() *cobra.Command {
	var (
		configPath      string
		name            string
		vehicleID       string
		maintenanceType string
		description     string
		frequency       string
		frequencyValue  int
		estimatedCost   float64
		assignedTo      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recurring schedule",
		Long:  "Creates an active recurring schedule and projects its first occurrence from today.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleCreate(cmd, configPath, schedule.CreateOpts{
				Name:            name,
				VehicleID:       vehicleID,
				MaintenanceType: maintenanceType,
				Description:     description,
				Frequency:       models.Frequency(frequency),
				FrequencyValue:  frequencyValue,
				EstimatedCost:   estimatedCost,
				AssignedTo:      assignedTo,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&name, "name", "", "schedule name (required)")
	cmd.Flags().StringVar(&vehicleID, "vehicle", "", "vehicle ID (required)")
	cmd.Flags().StringVar(&maintenanceType, "type", "", "maintenance type (required)")
	cmd.Flags().StringVar(&description, "description", "", "detailed description")
	cmd.Flags().StringVar(&frequency, "frequency", "", "daily, weekly, monthly, quarterly, yearly, or mileage-based (required)")
	cmd.Flags().IntVar(&frequencyValue, "every", 1, "interval multiplier, or the mileage interval for mileage-based")
	cmd.Flags().Float64Var(&estimatedCost, "cost", 0, "estimated cost per occurrence")
	cmd.Flags().StringVar(&assignedTo, "assignee", "", "assigned technician name")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("vehicle")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("frequency")
	return cmd
}

func runScheduleCreate(cmd *cobra.Command, configPath string, opts schedule.CreateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	sched, err := svcs.Schedules.Create(cmd.Context(), opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created schedule %s (%s)\n", sched.ID, sched.Name)
	fmt.Fprintf(out, "Next occurrence: %s\n", sched.NextScheduled.Format("2006-01-02"))
	return nil
}

func newScheduleListCmd() *cobra.Command {
	var (
		configPath string
		activeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recurring schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleList(cmd, configPath, activeOnly)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active schedules")
	return cmd
}

func runScheduleList(cmd *cobra.Command, configPath string, activeOnly bool) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	scheds, err := svcs.Schedules.List(cmd.Context(), activeOnly)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(scheds) == 0 {
		fmt.Fprintln(out, "No schedules found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tVEHICLE\tFREQUENCY\tNEXT\tRUNS\tACTIVE")
	for _, sched := range scheds {
		active := "yes"
		if !sched.IsActive {
			active = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s x%d\t%s\t%d\t%s\n",
			sched.ID, truncate(sched.Name, 30), sched.VehicleID, sched.Frequency, sched.FrequencyValue,
			sched.NextScheduled.Format("2006-01-02"), sched.TotalExecutions, active)
	}
	w.Flush()
	return nil
}

func newScheduleShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show schedule details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runScheduleShow(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	sched, err := svcs.Schedules.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s\n", sched.ID, sched.Name)
	fmt.Fprintf(out, "Vehicle:    %s\n", sched.VehicleID)
	fmt.Fprintf(out, "Type:       %s\n", sched.MaintenanceType)
	fmt.Fprintf(out, "Frequency:  %s x%d\n", sched.Frequency, sched.FrequencyValue)
	fmt.Fprintf(out, "Next:       %s\n", sched.NextScheduled.Format("2006-01-02"))
	if sched.LastExecuted != nil {
		fmt.Fprintf(out, "Last run:   %s\n", sched.LastExecuted.Format("2006-01-02"))
	}
	fmt.Fprintf(out, "Runs:       %d\n", sched.TotalExecutions)
	fmt.Fprintf(out, "Estimated:  %s\n", money(sched.EstimatedCost))
	fmt.Fprintf(out, "Active:     %t\n", sched.IsActive)
	if sched.AssignedTo != "" {
		fmt.Fprintf(out, "Assignee:   %s\n", sched.AssignedTo)
	}
	if sched.Description != "" {
		fmt.Fprintf(out, "\n%s\n", sched.Description)
	}
	return nil
}

func newScheduleUpdateCmd() *cobra.Command {
	var (
		configPath     string
		name           string
		frequency      string
		frequencyValue int
		cost           float64
		active         bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a recurring schedule",
		Long:  "Updates only the fields whose flags are set. Changing the frequency re-projects the next occurrence.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := schedule.UpdateOpts{}
			if cmd.Flags().Changed("name") {
				opts.Name = &name
			}
			if cmd.Flags().Changed("frequency") {
				f := models.Frequency(frequency)
				opts.Frequency = &f
			}
			if cmd.Flags().Changed("every") {
				opts.FrequencyValue = &frequencyValue
			}
			if cmd.Flags().Changed("cost") {
				opts.EstimatedCost = &cost
			}
			if cmd.Flags().Changed("active") {
				opts.IsActive = &active
			}
			return runScheduleUpdate(cmd, configPath, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&name, "name", "", "schedule name")
	cmd.Flags().StringVar(&frequency, "frequency", "", "new frequency")
	cmd.Flags().IntVar(&frequencyValue, "every", 1, "interval multiplier")
	cmd.Flags().Float64Var(&cost, "cost", 0, "estimated cost per occurrence")
	cmd.Flags().BoolVar(&active, "active", true, "whether the schedule is active")
	return cmd
}

func runScheduleUpdate(cmd *cobra.Command, configPath, id string, opts schedule.UpdateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	sched, err := svcs.Schedules.Update(cmd.Context(), id, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (next: %s)\n", sched.ID, sched.NextScheduled.Format("2006-01-02"))
	return nil
}

func newScheduleDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recurring schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleDelete(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runScheduleDelete(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	if err := svcs.Schedules.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}

func newScheduleExecuteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "execute <id>",
		Short: "Record an execution of a schedule",
		Long:  "Stamps the schedule as executed now and projects its next occurrence.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScheduleExecute(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runScheduleExecute(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	sched, err := svcs.Schedules.MarkExecuted(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Executed %s (run %d)\n", sched.ID, sched.TotalExecutions)
	fmt.Fprintf(out, "Next occurrence: %s\n", sched.NextScheduled.Format("2006-01-02"))
	return nil
}
