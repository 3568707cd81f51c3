package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/RavDas/fleet-management-backend/internal/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  "Serves the fleet maintenance API until interrupted, then shuts down gracefully.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logrus.New()
	if cfg.Reconciler.Enabled {
		notifiers, err := buildNotifiers(cfg)
		if err != nil {
			return err
		}
		defer func() {
			for _, n := range notifiers {
				n.Close()
			}
		}()
		go func() {
			if err := svcs.Reconciler.RunDaemon(ctx, cfg.Reconciler.Schedule, log, notifiers); err != nil {
				log.WithError(err).Error("reconciler daemon stopped")
			}
		}()
	}

	return api.Start(ctx, api.StartOpts{
		Services: svcs,
		Port:     port,
		Log:      log,
		Out:      cmd.OutOrStdout(),
	})
}
