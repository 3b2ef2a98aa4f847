package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/chris-regnier/protocolctl/internal/dailylog"
	"github.com/chris-regnier/protocolctl/internal/shell"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// statusData holds the template data for status formatting.
type statusData struct {
	TodayIcon   string
	Checked     int
	Total       int
	Adherence   int
	Streak      int
	StreakIcon  string
	Warning     string
	KneeWarning bool
	HasToday    bool
	Backend     string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show protocol prompt status",
	Long: `Show today's protocol status for shell prompt integration.

Outputs the checklist progress, logging streak and knee-pain warning.
Reads from cache when fresh, queries storage when stale.

Use --env to output shell environment variable assignments.
Use --refresh to force a cache refresh.
Use --format with a Go template for custom output.`,
	Example: `  protocolctl status
  protocolctl status --env
  protocolctl status --refresh
  protocolctl status --format "{{.Checked}}/{{.Total}} {{.Streak}}{{.StreakIcon}}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFlag, _ := cmd.Flags().GetBool("env")
		refreshFlag, _ := cmd.Flags().GetBool("refresh")
		formatFlag, _ := cmd.Flags().GetString("format")

		if err := statusRun(os.Stdout, time.Now(), refreshFlag, envFlag, formatFlag); err != nil {
			fmt.Fprintln(os.Stderr, "Error computing status:", err)
			os.Exit(2)
		}
		return nil
	},
}

func statusRun(w io.Writer, now time.Time, refresh, env bool, format string) error {
	ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
	if err != nil {
		ttl = 5 * time.Minute
	}

	cache := shell.ReadCache(appConfig.DataDir)
	if refresh || !cache.FreshAt(now, ttl) {
		logs, err := svc.Load()
		if err != nil {
			return err
		}
		today := svc.Today()
		cache = &shell.PromptCache{
			Status:         shell.ComputeStatus(logs, today),
			TodayDate:      today,
			StorageBackend: appConfig.Storage,
			UpdatedAt:      now,
		}

		if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
			// Non-fatal: the status above is still printed
			logrus.WithError(err).Warn("could not write prompt cache")
		}
	}

	data := buildStatusData(cache)

	if env {
		return outputEnv(w, data)
	}
	if format != "" {
		return outputTemplate(w, data, format)
	}
	return outputDefault(w, data)
}

func buildStatusData(cache *shell.PromptCache) statusData {
	total := len(dailylog.Checklist())
	icon := appConfig.Shell.PendingIcon
	if cache.Checked == total {
		icon = appConfig.Shell.DoneIcon
	}
	warning := ""
	if cache.KneeWarning {
		warning = appConfig.Shell.WarningIcon
	}

	return statusData{
		TodayIcon:   icon,
		Checked:     cache.Checked,
		Total:       total,
		Adherence:   cache.Adherence,
		Streak:      cache.Streak,
		StreakIcon:  appConfig.Shell.StreakIcon,
		Warning:     warning,
		KneeWarning: cache.KneeWarning,
		HasToday:    cache.HasToday,
		Backend:     cache.StorageBackend,
	}
}

func outputEnv(w io.Writer, data statusData) error {
	fmt.Fprintf(w, "export PROTOCOLCTL_TODAY=%q\n", data.TodayIcon)
	fmt.Fprintf(w, "export PROTOCOLCTL_CHECKED=%q\n", fmt.Sprintf("%d/%d", data.Checked, data.Total))
	fmt.Fprintf(w, "export PROTOCOLCTL_ADHERENCE=%q\n", fmt.Sprintf("%d", data.Adherence))
	fmt.Fprintf(w, "export PROTOCOLCTL_STREAK=%q\n", fmt.Sprintf("%d", data.Streak))
	fmt.Fprintf(w, "export PROTOCOLCTL_STREAK_ICON=%q\n", data.StreakIcon)
	fmt.Fprintf(w, "export PROTOCOLCTL_WARNING=%q\n", data.Warning)
	if data.Backend != "" {
		fmt.Fprintf(w, "export PROTOCOLCTL_BACKEND=%q\n", data.Backend)
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	parts := []string{
		fmt.Sprintf("%s %d/%d", data.TodayIcon, data.Checked, data.Total),
		fmt.Sprintf("%d%s", data.Streak, data.StreakIcon),
	}
	if data.Warning != "" {
		parts = append(parts, data.Warning)
	}
	if appConfig.Shell.ShowBackend && data.Backend != "" {
		parts = append(parts, data.Backend)
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
	return nil
}

func init() {
	statusCmd.Flags().Bool("env", false, "output shell environment variable assignments")
	statusCmd.Flags().Bool("refresh", false, "force cache refresh")
	statusCmd.Flags().String("format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
