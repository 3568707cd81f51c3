package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/RavDas/fleet-management-backend/internal/crew"
	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/spf13/cobra"
)

func newTechnicianCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "technician",
		Short: "Technician roster commands",
	}

	cmd.AddCommand(newTechnicianCreateCmd())
	cmd.AddCommand(newTechnicianListCmd())
	cmd.AddCommand(newTechnicianShowCmd())
	cmd.AddCommand(newTechnicianUpdateCmd())
	cmd.AddCommand(newTechnicianDeleteCmd())
	return cmd
}

func newTechnicianCreateCmd() *cobra.Command {
	var (
		configPath     string
		name           string
		email          string
		phone          string
		specialization []string
		certifications []string
		hourlyRate     float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a technician to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTechnicianCreate(cmd, configPath, crew.CreateOpts{
				Name:           name,
				Email:          email,
				Phone:          phone,
				Specialization: specialization,
				Certifications: certifications,
				HourlyRate:     hourlyRate,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&name, "name", "", "technician name (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringSliceVar(&specialization, "specialization", nil, "specializations (repeatable)")
	cmd.Flags().StringSliceVar(&certifications, "certification", nil, "certifications (repeatable)")
	cmd.Flags().Float64Var(&hourlyRate, "rate", 0, "hourly rate")
	cmd.MarkFlagRequired("name")
	return cmd
}

func runTechnicianCreate(cmd *cobra.Command, configPath string, opts crew.CreateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	tech, err := svcs.Crew.Create(cmd.Context(), opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created technician %s (%s)\n", tech.ID, tech.Name)
	return nil
}

func newTechnicianListCmd() *cobra.Command {
	var (
		configPath string
		status     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List technicians",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTechnicianList(cmd, configPath, models.TechnicianStatus(status))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (available, busy, off-duty)")
	return cmd
}

func runTechnicianList(cmd *cobra.Command, configPath string, status models.TechnicianStatus) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	techs, err := svcs.Crew.List(cmd.Context(), status)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(techs) == 0 {
		fmt.Fprintln(out, "No technicians found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tRATING\tACTIVE\tDONE\tSPECIALIZATION")
	for _, tech := range techs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\t%d\t%s\n",
			tech.ID, tech.Name, tech.Status, tech.Rating, tech.ActiveJobs, tech.CompletedJobs,
			truncate(strings.Join(tech.Specialization, ", "), 40))
	}
	w.Flush()
	return nil
}

func newTechnicianShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show technician details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTechnicianShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runTechnicianShow(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	tech, err := svcs.Crew.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s  [%s]\n", tech.ID, tech.Name, tech.Status)
	if tech.Email != "" {
		fmt.Fprintf(out, "Email:   %s\n", tech.Email)
	}
	if tech.Phone != "" {
		fmt.Fprintf(out, "Phone:   %s\n", tech.Phone)
	}
	fmt.Fprintf(out, "Rating:  %.1f\n", tech.Rating)
	fmt.Fprintf(out, "Jobs:    %d active, %d completed\n", tech.ActiveJobs, tech.CompletedJobs)
	fmt.Fprintf(out, "Rate:    %s/hr\n", money(tech.HourlyRate))
	fmt.Fprintf(out, "Joined:  %s\n", tech.JoinDate.Format("2006-01-02"))
	if len(tech.Specialization) > 0 {
		fmt.Fprintf(out, "Skills:  %s\n", strings.Join(tech.Specialization, ", "))
	}
	if len(tech.Certifications) > 0 {
		fmt.Fprintf(out, "Certs:   %s\n", strings.Join(tech.Certifications, ", "))
	}
	return nil
}

func newTechnicianUpdateCmd() *cobra.Command {
	var (
		configPath string
		status     string
		rating     float64
		rate       float64
		phone      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a technician",
		Long:  "Updates only the fields whose flags are set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := crew.UpdateOpts{}
			if cmd.Flags().Changed("status") {
				s := models.TechnicianStatus(status)
				opts.Status = &s
			}
			if cmd.Flags().Changed("rating") {
				opts.Rating = &rating
			}
			if cmd.Flags().Changed("rate") {
				opts.HourlyRate = &rate
			}
			if cmd.Flags().Changed("phone") {
				opts.Phone = &phone
			}
			return runTechnicianUpdate(cmd, configPath, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&status, "status", "", "new status (available, busy, off-duty)")
	cmd.Flags().Float64Var(&rating, "rating", 0, "performance rating (0-5)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "hourly rate")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func runTechnicianUpdate(cmd *cobra.Command, configPath, id string, opts crew.UpdateOpts) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	tech, err := svcs.Crew.Update(cmd.Context(), id, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (status: %s)\n", tech.ID, tech.Status)
	return nil
}

func newTechnicianDeleteCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a technician from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTechnicianDelete(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runTechnicianDelete(cmd *cobra.Command, configPath, id string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	if err := svcs.Crew.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
	return nil
}
