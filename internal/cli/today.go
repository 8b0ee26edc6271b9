package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dateFlag string

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the signs for today (or --date)",
	Long: `Today refreshes every enabled system once and prints the resulting signs.

The local date is used unless --date is given. A system whose table has no
entry for the date prints "unknown".

Example:
  calsigns today
  calsigns today --date 2024-03-21
  calsigns today --date 12-30 --systems celtic_signs -o json`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)

	todayCmd.Flags().StringVar(&dateFlag, "date", "", "date to classify (YYYY-MM-DD or MM-DD, default: today)")
}

// parseWhen resolves the --date flag to a local time
func parseWhen(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now, nil
	}
	for _, layout := range []string{"2006-01-02", "01-02"} {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			if layout == "01-02" {
				// Feb 29 stays in year 0 when the current year has none
				if inYear := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location()); inYear.Day() == t.Day() {
					t = inYear
				}
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD or MM-DD", s)
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	when, err := parseWhen(dateFlag, time.Now())
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	states := reg.UpdateAll(when)
	return renderStates(cmd.OutOrStdout(), cfg.Output.Format, when.Format("Monday, January 2"), states)
}
