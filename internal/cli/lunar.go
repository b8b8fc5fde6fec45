package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/datemetrics"
)

func lunarCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "lunar YEAR...",
		Short: "Print the Gregorian date of Lunar New Year for each year",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				year, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid year %q", arg)
				}
				d, err := datemetrics.LunarNewYear(year)
				if err != nil {
					return err
				}
				st.log.Debug().Int("year", year).Stringer("date", d).Msg("lunar new year")
				fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", year, d)
			}
			return nil
		},
	}
}
