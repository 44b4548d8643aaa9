package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/frankbria/codeframe/pkg/models"
	"github.com/frankbria/codeframe/pkg/probe"
	"github.com/frankbria/codeframe/pkg/services"
)

var (
	flagInitDetect bool
	flagInitName   string
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialise a project for the given workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		projectID := flagProject
		if projectID == "" {
			projectID = filepath.Base(workspace)
		}
		name := flagInitName
		if name == "" {
			name = projectID
		}

		req := models.CreateProjectRequest{
			ProjectID:     projectID,
			Name:          name,
			WorkspacePath: workspace,
		}

		var detection probe.Detection
		if flagInitDetect {
			detection = probe.Detect(workspace)
			req.Metadata = map[string]any{
				"language":     string(detection.Language),
				"framework":    detection.Framework,
				"confidence":   detection.Confidence,
				"test_command": detection.TestCommand,
			}
		}

		ctx := cmd.Context()
		db, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		p, err := services.NewProjectService(db.Client).CreateProject(ctx, req)
		if err != nil {
			return fmt.Errorf("initialising project: %w", err)
		}

		if flagInitDetect && detection.TestCommand != "" {
			_, err = services.NewMemoryService(db.Client).UpsertMemory(ctx, models.UpsertMemoryRequest{
				ProjectID: p.ID,
				Category:  "hot",
				Key:       "test_command",
				Content:   detection.TestCommand,
			})
			if err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialised project %s (%s)\n", p.ID, workspace)
		if flagInitDetect {
			fmt.Fprintf(cmd.OutOrStdout(), "Detected %s/%s (confidence %.1f), test command: %s\n",
				detection.Language, detection.Framework, detection.Confidence, detection.TestCommand)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&flagInitDetect, "detect", false, "probe the workspace for language and test framework")
	initCmd.Flags().StringVar(&flagInitName, "name", "", "human-readable project name")
}
