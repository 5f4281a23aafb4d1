package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RMTN1/silicon-prairie/internal/config"
	"github.com/RMTN1/silicon-prairie/internal/theme"
)

func themeCmd() *cobra.Command {
	var (
		hour int
		name string
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the entry screen theme for an hour of the day or by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var t theme.Theme
			switch {
			case name != "":
				found, ok := theme.Lookup(theme.Name(name))
				if !ok {
					return fmt.Errorf("unknown theme %q", name)
				}
				t = found
			case cmd.Flags().Changed("hour"):
				if hour < 0 || hour > 23 {
					return fmt.Errorf("hour must be between 0 and 23, got %d", hour)
				}
				t = theme.ForHour(hour)
			default:
				loadEnv()
				cfg, err := config.Parse()
				if err != nil {
					return err
				}
				t = theme.Current(theme.SystemClock{}, cfg.Location())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "theme: %s\n", t.Name)
			fmt.Fprintf(out, "orb:   %s\n", t.Orb)
			fmt.Fprintf(out, "grid:  %s\n", t.Grid)
			fmt.Fprintf(out, "label: %s\n", t.Label)
			return nil
		},
	}

	cmd.Flags().IntVar(&hour, "hour", 0, "hour of day 0-23 (default: current hour in SITE_TIMEZONE)")
	cmd.Flags().StringVar(&name, "name", "", "theme name: dawn, day, dusk or night")
	cmd.MarkFlagsMutuallyExclusive("hour", "name")
	return cmd
}
