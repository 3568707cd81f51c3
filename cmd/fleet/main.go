package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/RavDas/fleet-management-backend/internal/analytics"
	"github.com/RavDas/fleet-management-backend/internal/api"
	"github.com/RavDas/fleet-management-backend/internal/config"
	"github.com/RavDas/fleet-management-backend/internal/crew"
	"github.com/RavDas/fleet-management-backend/internal/db"
	"github.com/RavDas/fleet-management-backend/internal/inventory"
	"github.com/RavDas/fleet-management-backend/internal/maintenance"
	"github.com/RavDas/fleet-management-backend/internal/schedule"
	"github.com/RavDas/fleet-management-backend/internal/store"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Fleet — vehicle maintenance tracking",
		Long:  "Fleet tracks vehicle maintenance items, technicians, parts, and recurring schedules.",
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newMaintenanceCmd())
	cmd.AddCommand(newTechnicianCmd())
	cmd.AddCommand(newPartCmd())
	cmd.AddCommand(newScheduleCmd())
	cmd.AddCommand(newAnalyticsCmd())
	cmd.AddCommand(newReconcileCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fleet %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

// loadConfig reads the config file at path. A missing file falls back to the
// sqlite defaults so the CLI works out of the box.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

// servicesFromConfig wires the full service layer against the configured
// database.
func servicesFromConfig(configPath string) (*config.Config, api.Services, error) {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return nil, api.Services{}, err
	}
	stores := store.New(gormDB)
	svcs := api.Services{
		Maintenance: maintenance.NewService(stores.Maintenance),
		Reconciler:  maintenance.NewReconciler(stores.Maintenance),
		Analytics:   analytics.NewAggregator(stores.Maintenance),
		Crew:        crew.NewService(stores.Technicians),
		Inventory:   inventory.NewService(stores.Parts),
		Schedules:   schedule.NewService(stores.Schedules),
	}
	return cfg, svcs, nil
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	godotenv.Load() // best effort; env vars may carry notifier tokens
	os.Exit(execute(newRootCmd()))
}
