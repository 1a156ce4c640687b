package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dayflow/internal/config"
	"dayflow/internal/repo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "dayflow",
	Short: "A daily planner for priorities, tasks, habits and reminders",
	Long: `dayflow is a personal daily planner for the terminal. Plan up to three
priorities per day, track tasks, notes and reminders, build habits with
recurring schedules, and move project tasks across a kanban board.`,
}

// openStore opens the configured database with all repositories wired.
func openStore() (*repo.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return repo.Open(cfg.DBPath)
}

// requireUser resolves the logged-in user; mutations abort without one.
func requireUser(ctx context.Context, store *repo.Store) (string, error) {
	userID, err := store.Sessions.CurrentUser(ctx)
	if err != nil {
		return "", fmt.Errorf("no active user (run `dayflow login <name>` first): %w", err)
	}
	return userID, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dayflow %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(habitCmd)
	rootCmd.AddCommand(remindersCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(versionCmd)
}
