package commands

import (
	"time"

	"github.com/spf13/cobra"

	"dayflow/internal/parser"
	"dayflow/internal/tui"
)

var todayCmd = &cobra.Command{
	Use:   "today [date]",
	Short: "Open the daily planner",
	Long: `Open the interactive daily planner. With no argument it shows today;
pass "tomorrow", a weekday name, or a date to start elsewhere.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if len(args) == 1 {
			parsed, err := parser.ParseDay(args[0], time.Now())
			if err != nil {
				return err
			}
			day = parsed
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		userID, err := requireUser(cmd.Context(), store)
		if err != nil {
			return err
		}

		return tui.RunPlanner(store, userID, day)
	},
}
