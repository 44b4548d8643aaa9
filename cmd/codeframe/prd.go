package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frankbria/codeframe/ent/project"
	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/services"
)

var prdCmd = &cobra.Command{
	Use:   "prd",
	Short: "Manage the project's requirements document",
}

var prdAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Attach a requirements document and move the project to planning",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := requireProject()
		if err != nil {
			return err
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading requirements document: %w", err)
		}

		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		_, err = services.NewMemoryService(db.Client).UpsertMemory(ctx, models.UpsertMemoryRequest{
			ProjectID: projectID,
			Category:  "cold",
			Key:       "prd",
			Content:   string(content),
		})
		if err != nil {
			return fmt.Errorf("storing requirements document: %w", err)
		}

		projects := services.NewProjectService(db.Client)
		if _, err := projects.TransitionPhase(ctx, projectID, project.PhasePlanning); err != nil {
			// Re-adding a PRD while already planning is fine.
			if !errors.Is(err, services.ErrInvalidTransition) {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Stored requirements document (%d bytes) for project %s\n",
			len(content), projectID)
		return nil
	},
}

func init() {
	prdCmd.AddCommand(prdAddCmd)
}
