package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/datemetrics"
)

func weekCmd(_ *state) *cobra.Command {
	return &cobra.Command{
		Use:   "week DATE...",
		Short: "Print the ISO 8601 week date (YYYY-Www-D) of each date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				d, err := datemetrics.ParseDate(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), isoWeekDate(d))
			}
			return nil
		},
	}
}

func isoWeekDate(d datemetrics.Date) string {
	year, week := datemetrics.ISOWeek(d)
	return fmt.Sprintf("%04d-W%02d-%d", year, week, d.Weekday())
}
