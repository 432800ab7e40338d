package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/CardBuilder_Go/internal/metrics"
)

// PickCommand picks the starting player
type PickCommand struct{}

func (c *PickCommand) Name() string {
	return "pick"
}

func (c *PickCommand) Description() string {
	return "Pick a random starting player out of <count>"
}

func (c *PickCommand) Run(_ context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return usageError("%s: player count", ErrMsgMissingArgument)
	}
	player, err := app.Repos.Picker.PickFromInput(strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(app.Out, MsgPlayerPicked+"\n", player)
	return nil
}

// AboutCommand prints the app store and policy links
type AboutCommand struct{}

func (c *AboutCommand) Name() string {
	return "about"
}

func (c *AboutCommand) Description() string {
	return "Show app store and policy links"
}

func (c *AboutCommand) Run(_ context.Context, app *App, _ []string) error {
	return writeFields(app.Out,
		"share", app.Config.AppShareURL,
		"review", app.Config.AppReviewURL,
		"usage_policy", app.Config.AppUsagePolicyURL,
		"version", app.Config.Version,
	)
}

// MetricsCommand prints the counters gathered during this process
type MetricsCommand struct{}

func (c *MetricsCommand) Name() string {
	return "metrics"
}

func (c *MetricsCommand) Description() string {
	return "Print store metrics collected by this invocation"
}

func (c *MetricsCommand) Run(_ context.Context, app *App, _ []string) error {
	return metrics.WriteReport(app.Out, prometheus.DefaultGatherer)
}
