package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/RavDas/fleet-management-backend/internal/models"
	"github.com/spf13/cobra"
)

func newAnalyticsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Fleet maintenance analytics",
	}

	cmd.AddCommand(newAnalyticsSummaryCmd())
	cmd.AddCommand(newAnalyticsCostsCmd())
	cmd.AddCommand(newAnalyticsTrendsCmd())
	return cmd
}

func newAnalyticsSummaryCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show status and cost summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyticsSummary(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runAnalyticsSummary(cmd *cobra.Command, configPath string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	summary, err := svcs.Analytics.Summary(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Total items: %d (%d overdue, %d due soon)\n\n", summary.Total, summary.Overdue, summary.DueSoon)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCOUNT")
	for _, status := range models.AllStatuses {
		if n := summary.ByStatus[status]; n > 0 {
			fmt.Fprintf(w, "%s\t%d\n", status, n)
		}
	}
	fmt.Fprintln(w, "\nPRIORITY\tCOUNT")
	for _, priority := range []models.Priority{models.PriorityCritical, models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if n := summary.ByPriority[priority]; n > 0 {
			fmt.Fprintf(w, "%s\t%d\n", priority, n)
		}
	}
	w.Flush()

	fmt.Fprintf(out, "\nEstimated cost (active): %s\n", money(summary.EstimatedCost))
	fmt.Fprintf(out, "Actual cost (completed): %s\n", money(summary.ActualCost))
	return nil
}

func newAnalyticsCostsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Show cost breakdown and variance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyticsCosts(cmd, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	return cmd
}

func runAnalyticsCosts(cmd *cobra.Command, configPath string) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	costs, err := svcs.Analytics.Costs(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Estimated: %s\n", money(costs.TotalEstimated))
	fmt.Fprintf(out, "Actual:    %s\n", money(costs.TotalActual))
	fmt.Fprintf(out, "Variance:  %s (%.1f%%)\n\n", money(costs.Variance), costs.VariancePercent)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VEHICLE\tESTIMATED\tACTUAL")
	for _, v := range costs.ByVehicle {
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.VehicleID, money(v.EstimatedCost), money(v.ActualCost))
	}
	fmt.Fprintln(w, "\nTYPE\tCOUNT\tESTIMATED\tACTUAL")
	for _, tc := range costs.ByType {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", truncate(tc.Type, 30), tc.Count, money(tc.EstimatedCost), money(tc.ActualCost))
	}
	w.Flush()
	return nil
}

func newAnalyticsTrendsCmd() *cobra.Command {
	var (
		configPath string
		period     string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show maintenance volume and cost trends",
		Long:  "Buckets maintenance items into consecutive periods ending at the current one, oldest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyticsTrends(cmd, configPath, period, limit)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().StringVar(&period, "period", "month", "bucket size (week, month, quarter, year)")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of buckets (default 6)")
	return cmd
}

func runAnalyticsTrends(cmd *cobra.Command, configPath, period string, limit int) error {
	_, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	buckets, err := svcs.Analytics.Trends(cmd.Context(), period, limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tITEMS\tCOMPLETED\tESTIMATED\tACTUAL")
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", b.Period, b.Items, b.Completed, money(b.EstimatedCost), money(b.ActualCost))
	}
	w.Flush()
	return nil
}
