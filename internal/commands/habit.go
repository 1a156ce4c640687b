package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dayflow/internal/parser"
	"dayflow/internal/recur"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Check habits off and inspect their schedule",
}

var habitListCmd = &cobra.Command{
	Use:   "list [date]",
	Short: "List habits scheduled on a date with their done-state",
	Args:  cobra.MaximumNArgs(1),
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

		habits, err := store.Habits.ListByUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		completions, err := store.Habits.ListCompletions(cmd.Context(), userID)
		if err != nil {
			return err
		}

		done := recur.NewCompletionSet(completions)
		scheduled := 0
		for _, h := range habits {
			if !recur.OccursOn(h, day) {
				continue
			}
			scheduled++
			box := "[ ]"
			if done.Done(h.ID, day) {
				box = "[x]"
			}
			fmt.Printf("%s %s (%s)  %s\n", box, h.Title, h.Frequency, h.ID)
		}
		if scheduled == 0 {
			fmt.Printf("No habits scheduled on %s\n", day.Format("Mon Jan 2"))
		}
		return nil
	},
}

var habitCheckCmd = &cobra.Command{
	Use:   "check [id] [date]",
	Short: "Mark a habit completed for a day",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runHabitToggle(true),
}

var habitUncheckCmd = &cobra.Command{
	Use:   "uncheck [id] [date]",
	Short: "Remove a habit completion for a day",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runHabitToggle(false),
}

func runHabitToggle(completed bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id := args[0]
		day := time.Now()
		if len(args) == 2 {
			parsed, err := parser.ParseDay(args[1], time.Now())
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

		if err := store.Habits.SetCompleted(cmd.Context(), userID, id, day, completed); err != nil {
			return err
		}

		if completed {
			fmt.Printf("🌱 Habit checked for %s\n", day.Format("Mon Jan 2"))
		} else {
			fmt.Printf("↩️  Habit unchecked for %s\n", day.Format("Mon Jan 2"))
		}
		return nil
	}
}

func init() {
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitCheckCmd)
	habitCmd.AddCommand(habitUncheckCmd)
}
