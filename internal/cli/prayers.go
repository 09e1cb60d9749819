package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwulff/kaza-go/internal/domain"
	"github.com/jwulff/kaza-go/internal/render"
)

var addCmd = &cobra.Command{
	Use:   "add <type> [date]",
	Short: "Record a missed prayer",
	Long: `Record a missed prayer.

The type is one of fajr, dhuhr, asr, maghrib or isha, or its Turkish
name as shown by 'kaza types'. The date is YYYY-MM-DD and defaults
to today.

Examples:
  kaza add fajr
  kaza add isha 2024-03-05
  kaza add Yatsı 2024-03-05`,
	Args: cobra.RangeArgs(1, 2),
	RunE: withApp(runAdd),
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List missed prayers grouped by type",
	Args:    cobra.NoArgs,
	RunE:    withApp(runList),
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a missed prayer record (alias: rm)",
	Long: `Delete a missed prayer record by id.

Use 'kaza list' to see record ids. Deleting an id that does not
exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runDelete),
}

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of missed prayers",
	Args:  cobra.NoArgs,
	RunE:  withApp(runCount),
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the prayer types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprint(cmd.OutOrStdout(), render.PrayerTypes())
		return err
	},
}

// resolvePrayerType accepts a type key in any case or a display name.
func resolvePrayerType(arg string) domain.PrayerType {
	if t, ok := domain.ParsePrayerType(strings.ToLower(arg)); ok {
		return t
	}
	if t, ok := domain.PrayerTypeForLabel(arg); ok {
		return t
	}
	return domain.PrayerType(arg)
}

func runAdd(cmd *cobra.Command, args []string, a *app) error {
	prayerType := resolvePrayerType(args[0])
	date := domain.FormatDate(time.Now())
	if len(args) > 1 {
		date = args[1]
	}

	id, err := a.tracker.AddMissedPrayer(cmd.Context(), prayerType, date)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s on %s (id %d)\n",
		prayerType.Display().Name, render.DisplayDate(date), id)
	return err
}

func runList(cmd *cobra.Command, args []string, a *app) error {
	ctx := cmd.Context()
	p, err := a.palette(ctx)
	if err != nil {
		return err
	}
	aggs := a.tracker.MissedPrayers(ctx)
	_, err = fmt.Fprint(cmd.OutOrStdout(), render.MissedPrayers(p, aggs, domain.TotalItems(aggs)))
	return err
}

func runDelete(cmd *cobra.Command, args []string, a *app) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}
	if err := a.tracker.DeleteMissedPrayer(cmd.Context(), id); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d\n", id)
	return err
}

func runCount(cmd *cobra.Command, args []string, a *app) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), a.tracker.TotalCount(cmd.Context()))
	return err
}
