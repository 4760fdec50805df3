package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shenikar/drone_analytics_dashboard/internal/config"
	"github.com/shenikar/drone_analytics_dashboard/internal/dashboard"
	"github.com/shenikar/drone_analytics_dashboard/internal/models"
	"github.com/shenikar/drone_analytics_dashboard/pkg/client"
	"github.com/shenikar/drone_analytics_dashboard/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app - состояние, которое корневая команда готовит для подкоманд
type app struct {
	configPath string
	cfg        *config.DashboardConfig
	dashboard  *dashboard.Dashboard
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Drone safety violation dashboard client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadDashboardConfig(a.configPath)
			if err != nil {
				return err
			}
			log := logger.NewConsole(cfg.LogLevel, cmd.ErrOrStderr())
			a.cfg = cfg
			a.dashboard = dashboard.New(client.New(cfg.APIURL, cfg.APIKey, cfg.Timeout, log), log)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("DASHBOARD_CONFIG"), "path to YAML config")

	root.AddCommand(
		newShowCmd(a),
		newUploadCmd(a),
		newOptionsCmd(a),
		newResetCmd(a),
	)
	return root
}

func newShowCmd(a *app) *cobra.Command {
	var (
		filters   models.Filters
		sortField string
		sortDir   string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render KPI cards, charts, recent activity, table and map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Незаданные флаги берутся из конфигурации
			flags := cmd.Flags()
			if !flags.Changed("drone") {
				filters.DroneID = a.cfg.Filters.DroneID
			}
			if !flags.Changed("date") {
				filters.Date = a.cfg.Filters.Date
			}
			if !flags.Changed("type") {
				filters.ViolationType = a.cfg.Filters.ViolationType
			}
			if !flags.Changed("sort") {
				sortField = a.cfg.SortField
			}
			if !flags.Changed("dir") {
				sortDir = a.cfg.SortDirection
			}

			field, err := dashboard.ParseSortField(sortField)
			if err != nil {
				return err
			}
			direction, err := dashboard.ParseSortDirection(sortDir)
			if err != nil {
				return err
			}

			var markers dashboard.MarkerRenderer
			switch strings.ToLower(format) {
			case "text":
				markers = dashboard.TextMarkerRenderer{}
			case "geojson":
				markers = dashboard.GeoJSONMarkerRenderer{Indent: "  "}
			case "none":
			default:
				return fmt.Errorf("unknown map format %q", format)
			}

			d := a.dashboard
			d.SetSort(dashboard.SortState{Field: field, Direction: direction})
			if filters.IsEmpty() {
				err = d.Refresh(cmd.Context())
			} else {
				err = d.SetFilters(cmd.Context(), filters)
			}
			if err != nil {
				return statusError(d)
			}

			return dashboard.NewRenderer(cmd.OutOrStdout(), markers).Render(d)
		},
	}

	cmd.Flags().StringVar(&filters.DroneID, "drone", "", "filter by drone ID")
	cmd.Flags().StringVar(&filters.Date, "date", "", "filter by report date")
	cmd.Flags().StringVar(&filters.ViolationType, "type", "", "filter by violation type")
	cmd.Flags().StringVar(&sortField, "sort", "", "sort column: date, timestamp, type, drone_id, location")
	cmd.Flags().StringVar(&sortDir, "dir", "", "sort direction: asc or desc")
	cmd.Flags().StringVar(&format, "format", "text", "map output: text, geojson or none")
	return cmd
}

func newUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.json>",
		Short: "Upload a drone report (.json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.dashboard
			result, err := d.Upload(cmd.Context(), args[0])
			if err != nil {
				return statusError(d)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\nDrone: %s\nDate: %s\nViolations: %d\n",
				d.Status().Message, result.DroneID, result.Date, result.ViolationsCount)
			return nil
		},
	}
}

func newOptionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List available filter values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.dashboard
			if err := d.LoadOptions(cmd.Context()); err != nil {
				return statusError(d)
			}
			opts := d.Options()
			fmt.Fprintf(cmd.OutOrStdout(), "Drones: %s\nDates: %s\nViolation types: %s\n",
				strings.Join(opts.Drones, ", "),
				strings.Join(opts.Dates, ", "),
				strings.Join(opts.ViolationTypes, ", "))
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove all stored violations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.dashboard
			if err := d.Reset(cmd.Context()); err != nil {
				return statusError(d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Status().Message)
			return nil
		},
	}
}

func statusError(d *dashboard.Dashboard) error {
	return errors.New(d.Status().Message)
}
