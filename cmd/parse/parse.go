package parse

import (
	"encoding/json"
	"strconv"

	"github.com/flarebyte/timers/internal/cliargs"
	"github.com/flarebyte/timers/internal/duration"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var flagJSON bool

type result struct {
	Input string `json:"input"`
	duration.Components
	TotalSeconds int64  `json:"total_seconds"`
	Canonical    string `json:"canonical"`
}

// ParseCmd shows how a duration string is read without starting a countdown.
var ParseCmd = &cobra.Command{
	Use:   "parse <duration>",
	Short: "Show the hours, minutes and seconds a duration string adds up to",
	Args:  cliargs.OneDuration,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := duration.ParseComponents(args[0])
		if err != nil {
			return err
		}
		res := result{
			Input:        args[0],
			Components:   c,
			TotalSeconds: c.Total(),
			Canonical:    duration.Format(c.Total()),
		}
		out := cmd.OutOrStdout()
		if flagJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"UNIT", "VALUE", "SECONDS"})
		table.Append([]string{"hours", strconv.FormatInt(c.Hours, 10), strconv.FormatInt(c.Hours*3600, 10)})
		table.Append([]string{"minutes", strconv.FormatInt(c.Minutes, 10), strconv.FormatInt(c.Minutes*60, 10)})
		table.Append([]string{"seconds", strconv.FormatInt(c.Seconds, 10), strconv.FormatInt(c.Seconds, 10)})
		table.Append([]string{"total", res.Canonical, strconv.FormatInt(res.TotalSeconds, 10)})
		table.Render()
		return nil
	},
}

func init() {
	ParseCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the breakdown as JSON")
	ParseCmd.SetFlagErrorFunc(cliargs.FlagError)
}
