package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dayflow/internal/models"
	"dayflow/internal/parser"
	"dayflow/internal/repo"
)

var (
	addDate    string
	addNote    string
	addColor   string
	addDue     string
	addFreq    string
	addDays    string
	addMinutes int
	addProject string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a priority, task, note, reminder or habit",
}

var addPriorityCmd = &cobra.Command{
	Use:   "priority [title]",
	Short: "Add one of the day's (at most three) priorities",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		day, err := parser.ParseDay(addDate, time.Now())
		if err != nil {
			return err
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

		p := models.Priority{
			UserID: userID,
			Title:  title,
			Date:   day,
			Note:   addNote,
			Color:  addColor,
		}
		if err := store.Priorities.Insert(cmd.Context(), &p); err != nil {
			if errors.Is(err, repo.ErrDayFull) {
				return fmt.Errorf("%s already has %d priorities — finish one first", day.Format("Jan 2"), models.MaxPrioritiesPerDay)
			}
			return err
		}

		fmt.Printf("⭐ Priority added for %s: %s\n", day.Format("Mon Jan 2"), p.Title)
		return nil
	},
}

var addTaskCmd = &cobra.Command{
	Use:   "task [title]",
	Short: "Add a planner task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		day, err := parser.ParseDay(addDate, time.Now())
		if err != nil {
			return err
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

		t := models.Task{
			UserID:      userID,
			Title:       title,
			Description: addNote,
			Date:        &day,
			Color:       addColor,
		}
		if err := store.Tasks.Insert(cmd.Context(), &t); err != nil {
			return err
		}

		fmt.Printf("✅ Task added for %s: %s\n", day.Format("Mon Jan 2"), t.Title)
		return nil
	},
}

var addNoteCmd = &cobra.Command{
	Use:   "note [title]",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		userID, err := requireUser(cmd.Context(), store)
		if err != nil {
			return err
		}

		n := models.Note{
			UserID:      userID,
			Title:       title,
			Description: addNote,
			Color:       addColor,
		}
		if addDate != "" {
			day, err := parser.ParseDay(addDate, time.Now())
			if err != nil {
				return err
			}
			n.Date = &day
		}
		if err := store.Notes.Insert(cmd.Context(), &n); err != nil {
			return err
		}

		fmt.Printf("📝 Note added: %s\n", n.Title)
		return nil
	},
}

var addReminderCmd = &cobra.Command{
	Use:   "reminder [title]",
	Short: "Add a reminder",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		due, err := parser.ParseDueDate(addDue, time.Now())
		if err != nil {
			return err
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

		r := models.Reminder{
			UserID:  userID,
			Title:   title,
			DueDate: due,
			Color:   addColor,
		}
		if err := store.Reminders.Insert(cmd.Context(), &r); err != nil {
			return err
		}

		if r.DueDate != nil {
			fmt.Printf("⏰ Reminder added (%s), due %s\n", r.Category, r.DueDate.Format("Mon Jan 2 15:04"))
		} else {
			fmt.Printf("⏰ Reminder added (%s)\n", r.Category)
		}
		return nil
	},
}

var addHabitCmd = &cobra.Command{
	Use:   "habit [title]",
	Short: "Add a recurring habit",
	Long: `Add a habit with a recurrence rule. Frequencies:
  daily        every day
  three_times  Monday, Wednesday and Friday
  custom       the weekdays given with --days (e.g. --days sun,sat)`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")

		freq := models.Frequency(addFreq)
		var customDays []int
		switch freq {
		case models.FrequencyDaily, models.FrequencyThreeTimes:
		case models.FrequencyCustom:
			parsed, err := parser.ParseWeekdays(addDays)
			if err != nil {
				return err
			}
			customDays = parsed
		default:
			return fmt.Errorf("invalid frequency %q. Use: daily, three_times, or custom", addFreq)
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

		h := models.Habit{
			UserID:          userID,
			Title:           title,
			Frequency:       freq,
			CustomDays:      customDays,
			DurationMinutes: addMinutes,
			Color:           addColor,
		}
		if err := store.Habits.Insert(cmd.Context(), &h); err != nil {
			return err
		}

		fmt.Printf("🌱 Habit added (%s): %s\n", h.Frequency, h.Title)
		return nil
	},
}

var addCardCmd = &cobra.Command{
	Use:   "card [title]",
	Short: "Add a task card to a project's board",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		if addProject == "" {
			return fmt.Errorf("--project is required")
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

		project, err := findProject(cmd.Context(), store, userID, addProject)
		if err != nil {
			return err
		}

		t := models.BoardTask{
			UserID:    userID,
			ProjectID: project.ID,
			Title:     title,
			Note:      addNote,
			Status:    models.StatusWillDo,
		}
		if err := store.BoardTasks.Insert(cmd.Context(), &t); err != nil {
			return err
		}

		fmt.Printf("🗂  Card added to %s: %s\n", project.Name, t.Title)
		return nil
	},
}

func init() {
	addCmd.PersistentFlags().StringVar(&addDate, "date", "", "date (today, tomorrow, a weekday, yyyy-mm-dd)")
	addCmd.PersistentFlags().StringVar(&addNote, "note", "", "extra note or description")
	addCmd.PersistentFlags().StringVar(&addColor, "color", "#7C3AED", "background color")

	addReminderCmd.Flags().StringVar(&addDue, "due", "", "due moment (e.g. \"tomorrow 15:00\")")

	addHabitCmd.Flags().StringVar(&addFreq, "freq", "daily", "recurrence: daily, three_times, custom")
	addHabitCmd.Flags().StringVar(&addDays, "days", "", "weekdays for custom frequency (e.g. sun,wed,sat)")
	addHabitCmd.Flags().IntVar(&addMinutes, "minutes", 0, "duration per occurrence, minutes")

	addCardCmd.Flags().StringVar(&addProject, "project", "", "project name")

	addCmd.AddCommand(addPriorityCmd)
	addCmd.AddCommand(addTaskCmd)
	addCmd.AddCommand(addNoteCmd)
	addCmd.AddCommand(addReminderCmd)
	addCmd.AddCommand(addHabitCmd)
	addCmd.AddCommand(addCardCmd)
}
