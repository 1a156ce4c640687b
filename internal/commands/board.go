package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dayflow/internal/models"
	"dayflow/internal/repo"
	"dayflow/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board [project]",
	Short: "Open a project's kanban board",
	Long: `Open the interactive kanban board for a project. Cards move between
the Will do, In progress and Completed columns by dragging them with the
mouse. With no argument the first project is opened.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		userID, err := requireUser(cmd.Context(), store)
		if err != nil {
			return err
		}

		var project *models.Project
		if len(args) == 1 {
			project, err = findProject(cmd.Context(), store, userID, args[0])
			if err != nil {
				return err
			}
		} else {
			projects, err := store.Projects.ListByUser(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				return fmt.Errorf("no projects yet. Create one with `dayflow projects add <name>`")
			}
			project = &projects[0]
		}

		return tui.RunBoard(store, *project)
	},
}

// findProject resolves a project by case-insensitive name.
func findProject(ctx context.Context, store *repo.Store, userID, name string) (*models.Project, error) {
	projects, err := store.Projects.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if strings.EqualFold(projects[i].Name, name) {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q not found", name)
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		userID, err := requireUser(cmd.Context(), store)
		if err != nil {
			return err
		}

		projects, err := store.Projects.ListByUser(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No projects yet. Create one with `dayflow projects add <name>`")
			return nil
		}
		for _, p := range projects {
			tasks, err := store.BoardTasks.ListByProject(cmd.Context(), p.ID)
			if err != nil {
				return err
			}
			fmt.Printf("🗂  %s (%d cards)\n", p.Name, len(tasks))
		}
		return nil
	},
}

var projectsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Create a project",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		userID, err := requireUser(cmd.Context(), store)
		if err != nil {
			return err
		}

		p := models.Project{UserID: userID, Name: name}
		if err := store.Projects.Insert(cmd.Context(), &p); err != nil {
			return err
		}
		fmt.Printf("🗂  Project created: %s\n", p.Name)
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectsAddCmd)
}
