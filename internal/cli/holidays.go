package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func holidaysCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "holidays YEAR",
		Short: "List the market closures of a year on the active calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			hs := st.cal.HolidaysInYear(year)
			if len(hs) == 0 {
				st.log.Warn().Int("year", year).Msg("no closures listed; only weekends are closed")
			}
			for _, h := range hs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.Date, h.Name)
			}
			return nil
		},
	}
}
