package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dayflow/internal/models"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders [bucket]",
	Short: "List reminders by bucket",
	Long: `List reminders. Buckets: all, today, scheduled, completed. The bucket
is recomputed from each reminder's due date and completion flag as of now,
so a reminder created "today" shows under "scheduled" the next morning.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bucket := models.CategoryAll
		if len(args) == 1 {
			bucket = models.Category(args[0])
			switch bucket {
			case models.CategoryAll, models.CategoryToday, models.CategoryScheduled, models.CategoryCompleted:
			default:
				return fmt.Errorf("unknown bucket %q. Use: all, today, scheduled, completed", args[0])
			}
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

		reminders, err := store.Reminders.ListByUser(cmd.Context(), userID)
		if err != nil {
			return err
		}

		now := time.Now()
		shown := 0
		for _, r := range reminders {
			// The stored category is only a write-time cache; the live
			// bucket comes from reclassifying now.
			category := r.Classify(now)
			if bucket != models.CategoryAll && category != bucket {
				continue
			}
			shown++

			box := "[ ]"
			if r.IsCompleted {
				box = "[x]"
			}
			due := ""
			if r.DueDate != nil {
				due = " · due " + r.DueDate.Format("Mon Jan 2 15:04")
			}
			fmt.Printf("%s %s (%s)%s  %s\n", box, r.Title, category, due, r.ID)
		}
		if shown == 0 {
			fmt.Printf("No reminders in %q\n", bucket)
		}
		return nil
	},
}
