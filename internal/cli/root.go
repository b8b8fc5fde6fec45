// Package cli implements the datemetrics command line.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/datemetrics"
	"github.com/rabitt1ove/datemetrics/internal/config"
	"github.com/rabitt1ove/datemetrics/internal/logger"
)

// state is shared by the root command and its subcommands. It is filled in
// by the root's PersistentPreRunE.
type state struct {
	log zerolog.Logger
	cal *datemetrics.TradingCalendar

	logLevel      string
	pretty        bool
	holidays      string
	extraHolidays string
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	st := &state{log: logger.New(logger.Config{Output: stderr})}
	cmd := newRootCmd(st)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		st.log.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

func newRootCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "datemetrics",
		Short:         "Calendar metrics for Gregorian dates",
		Long:          "Computes ISO week, weekday, day of year, days left, days to Lunar New Year and days to the next Shanghai Stock Exchange trading day.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&st.logLevel, "log-level", "info", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	pf.BoolVar(&st.pretty, "pretty", false, "human-readable log output (env "+config.EnvLogPretty+")")
	pf.StringVar(&st.holidays, "holidays", "", "YAML closure file replacing the built-in calendar (env "+config.EnvHolidays+")")
	pf.StringVar(&st.extraHolidays, "extra-holidays", "", "YAML closure file added to the active calendar")

	cmd.AddCommand(infoCmd(st))
	cmd.AddCommand(lunarCmd(st))
	cmd.AddCommand(holidaysCmd(st))
	cmd.AddCommand(weekCmd(st))
	return cmd
}

// setup applies the environment, then explicitly set flags, and builds the
// logger and trading calendar.
func (st *state) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = st.logLevel
	}
	if flags.Changed("pretty") {
		cfg.LogPretty = st.pretty
	}
	if flags.Changed("holidays") {
		cfg.HolidaysPath = st.holidays
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	st.log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
		Output: cmd.ErrOrStderr(),
	})

	st.cal = datemetrics.DefaultTradingCalendar()
	if cfg.HolidaysPath != "" {
		f, err := config.LoadHolidays(cfg.HolidaysPath)
		if err != nil {
			return err
		}
		st.cal = f.Calendar()
		st.log.Debug().Str("path", cfg.HolidaysPath).Str("market", f.Market).
			Int("closures", st.cal.Len()).Msg("replaced built-in closures")
	}
	if st.extraHolidays != "" {
		f, err := config.LoadHolidays(st.extraHolidays)
		if err != nil {
			return err
		}
		st.cal = st.cal.With(f.Holidays...)
		st.log.Debug().Str("path", st.extraHolidays).Int("added", len(f.Holidays)).
			Int("closures", st.cal.Len()).Msg("added closures")
	}
	return nil
}
