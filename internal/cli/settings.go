package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jwulff/kaza-go/internal/config"
	"github.com/jwulff/kaza-go/internal/render"
	"github.com/jwulff/kaza-go/internal/tracker"
	"github.com/jwulff/kaza-go/internal/vakit"
)

var cityClear bool

var cityCmd = &cobra.Command{
	Use:   "city [name]",
	Short: "Show or select the city used for prayer times",
	Long: `Show or select the city used for prayer times.

The name must be one of the cities listed by 'kaza cities'. Matching
ignores case and Turkish diacritics, so "istanbul" selects İstanbul.

Examples:
  kaza city istanbul
  kaza city --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: withApp(runCity),
}

func init() {
	cityCmd.Flags().BoolVar(&cityClear, "clear", false, "Forget the selected city")
}

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the selectable cities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(vakit.Cities, "\n"))
		return err
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the colour theme",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(tracker.ThemeLight), string(tracker.ThemeDark)},
	RunE:      withApp(runTheme),
}

var timesCmd = &cobra.Command{
	Use:   "times",
	Short: "Show today's prayer times for the selected city",
	Args:  cobra.NoArgs,
	RunE:  withApp(runTimes),
}

func runCity(cmd *cobra.Command, args []string, a *app) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if cityClear {
		if len(args) > 0 {
			return errors.New("--clear takes no city name")
		}
		if err := a.tracker.ClearCityName(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "City cleared")
		return err
	}

	if len(args) == 0 {
		city, ok, err := a.tracker.CityName(ctx)
		if err != nil {
			return err
		}
		if !ok {
			_, err := fmt.Fprintln(out, "No city selected. Use 'kaza city <name>' to pick one.")
			return err
		}
		_, err := fmt.Fprintln(out, city)
		return err
	}

	city, ok := vakit.LookupCity(args[0])
	if !ok {
		return fmt.Errorf("unknown city %q, see 'kaza cities'", args[0])
	}
	if err := a.tracker.SetCityName(ctx, city); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "City set to %s\n", city)
	return err
}

func runTheme(cmd *cobra.Command, args []string, a *app) error {
	ctx := cmd.Context()
	if len(args) == 0 {
		theme, err := a.tracker.Theme(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), theme)
		return err
	}
	if err := a.tracker.SetTheme(ctx, tracker.Theme(args[0])); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
	return err
}

func runTimes(cmd *cobra.Command, args []string, a *app) error {
	ctx := cmd.Context()
	city, times, err := a.tracker.PrayerTimes(ctx)
	switch {
	case errors.Is(err, tracker.ErrNoCity):
		return errors.New("no city selected, use 'kaza city <name>' first")
	case errors.Is(err, vakit.ErrNotConfigured):
		return fmt.Errorf("prayer time feed not configured, set %s", config.EnvPrayerURL)
	case err != nil:
		return err
	}

	p, err := a.palette(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), render.PrayerTimes(p, city, times, time.Now()))
	return err
}
