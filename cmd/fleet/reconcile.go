package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/RavDas/fleet-management-backend/internal/config"
	"github.com/RavDas/fleet-management-backend/internal/notify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newReconcileCmd() *cobra.Command {
	var (
		configPath string
		daemon     bool
	)

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Re-derive maintenance item statuses",
		Long: "Runs one reconciliation pass over scheduled and due-soon items. With --daemon, " +
			"keeps running on the configured cron schedule and sends chat digests when items turn overdue.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(cmd, configPath, daemon)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to fleet config file")
	cmd.Flags().BoolVar(&daemon, "daemon", false, "run continuously on the configured schedule")
	return cmd
}

// buildNotifiers constructs a notifier per configured chat integration.
func buildNotifiers(cfg *config.Config) ([]notify.Notifier, error) {
	var notifiers []notify.Notifier
	if cfg.Notify.Slack.BotToken != "" {
		notifiers = append(notifiers, notify.NewSlack(cfg.Notify.Slack.BotToken, cfg.Notify.Slack.Channel))
	}
	if cfg.Notify.Discord.BotToken != "" {
		discord, err := notify.NewDiscord(cfg.Notify.Discord.BotToken, cfg.Notify.Discord.ChannelID)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, discord)
	}
	return notifiers, nil
}

func runReconcile(cmd *cobra.Command, configPath string, daemon bool) error {
	cfg, svcs, err := servicesFromConfig(configPath)
	if err != nil {
		return err
	}

	if !daemon {
		changed, err := svcs.Reconciler.Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reconciled: %d status change(s)\n", changed)
		return nil
	}

	notifiers, err := buildNotifiers(cfg)
	if err != nil {
		return err
	}
	defer func() {
		for _, n := range notifiers {
			n.Close()
		}
	}()

	log := logrus.New()
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Reconciler daemon running on schedule %q (%d notifier(s))\n",
		cfg.Reconciler.Schedule, len(notifiers))
	return svcs.Reconciler.RunDaemon(ctx, cfg.Reconciler.Schedule, log, notifiers)
}
