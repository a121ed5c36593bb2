package cmd

import (
	"io"

	parsecmd "github.com/flarebyte/timers/cmd/parse"
	"github.com/flarebyte/timers/internal/cliargs"
	"github.com/flarebyte/timers/internal/clock"
	cfgpkg "github.com/flarebyte/timers/internal/config"
	"github.com/flarebyte/timers/internal/countdown"
	"github.com/flarebyte/timers/internal/display"
	"github.com/flarebyte/timers/internal/duration"
	"github.com/flarebyte/timers/internal/logger"
	"github.com/flarebyte/timers/internal/notify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Collaborators of the countdown; tests swap them out.
var (
	loadConfig  = cfgpkg.Load
	newClock    = func() clock.Clock { return clock.Real{} }
	newLogger   = logger.New
	newDisplay  = func(w io.Writer, font string) (countdown.Display, error) { return display.New(w, font) }
	newNotifier = func(cfg cfgpkg.NotifyConfig) countdown.Notifier {
		return notify.NewDesktop(cfg.Title, cfg.Body, cfg.Icon)
	}
)

var rootCmd = &cobra.Command{
	Use:   "timers <duration>",
	Short: "Terminal countdown timer",
	Long: `Count down from a duration such as 1h2m30s, 10m or 45s, showing the
remaining seconds in large text and sending a desktop notification at zero.

Durations are <number><unit> pairs with units h, m and s, each unit used at
most once and no spaces in between.`,
	Example:       "  timers 25m\n  timers 1h30m\n  timers parse 90s",
	Args:          cliargs.OneDuration,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		total, err := duration.Parse(args[0])
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cfg.LogLevel)
		defer func() { _ = log.Sync() }()

		// Font problems surface before the first tick.
		d, err := newDisplay(cmd.OutOrStdout(), cfg.Font)
		if err != nil {
			return err
		}
		log.Debug("starting countdown",
			zap.String("input", args[0]),
			zap.Int64("seconds", total),
			zap.String("font", cfg.Font),
		)
		s := &countdown.Scheduler{
			Clock:    newClock(),
			Display:  d,
			Notifier: newNotifier(cfg.Notify),
			Log:      log,
		}
		return s.Run(cmd.Context(), total)
	},
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetFlagErrorFunc(cliargs.FlagError)
	rootCmd.AddCommand(parsecmd.ParseCmd)
}
