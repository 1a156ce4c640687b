package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dayflow/internal/repo"
)

var doneUndo bool

var doneCmd = &cobra.Command{
	Use:   "done [kind] [id]",
	Short: "Mark a priority, task or reminder as done",
	Long: `Mark an item as done by id. Kinds: priority, task, reminder.
Use --undo to flip it back.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id := args[0], args[1]

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if _, err := requireUser(cmd.Context(), store); err != nil {
			return err
		}

		target := !doneUndo
		switch kind {
		case "priority":
			err = store.Priorities.SetDone(cmd.Context(), id, target)
		case "task":
			err = store.Tasks.SetDone(cmd.Context(), id, target)
		case "reminder":
			err = store.Reminders.SetCompleted(cmd.Context(), id, target)
		default:
			return fmt.Errorf("unknown kind %q. Use: priority, task, or reminder", kind)
		}
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("no %s with id %s", kind, id)
		}
		if err != nil {
			return err
		}

		if target {
			fmt.Printf("✅ Marked %s %s as done\n", kind, id)
		} else {
			fmt.Printf("↩️  Marked %s %s as not done\n", kind, id)
		}
		return nil
	},
}

func init() {
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "flip the item back to not done")
}
