package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rabitt1ove/datemetrics"
)

type infoRecord struct {
	Date             string `yaml:"date"`
	datemetrics.Info `yaml:",inline"`
}

func infoCmd(st *state) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info DATE...",
		Short: "Print week,weekday,day_of_year,days_left,days_to_lunar_ny,days_to_trading for each date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
			out := cmd.OutOrStdout()

			var enc *yaml.Encoder
			if format == "yaml" {
				enc = yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer enc.Close()
			}

			failed := 0
			for _, arg := range args {
				info, err := computeInfo(st, arg)
				if err != nil {
					failed++
					st.log.Error().Err(err).Str("date", arg).Msg("cannot compute metrics")
					continue
				}
				st.log.Debug().Str("date", arg).Str("metrics", info.String()).Msg("computed")

				if enc != nil {
					if err := enc.Encode(infoRecord{Date: arg, Info: info}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(out, info)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d dates failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or yaml")
	return cmd
}

func computeInfo(st *state, s string) (datemetrics.Info, error) {
	d, err := datemetrics.ParseDate(s)
	if err != nil {
		return datemetrics.Info{}, err
	}
	return datemetrics.Compute(d, st.cal)
}
