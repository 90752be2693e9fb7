package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/spf13/cobra"
)

var initProfilePath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and optionally load a profile",
	Long: `Init creates the SQLite database with the full schema. With
--profile it also loads personal info, work experience, projects, and
skills from a JSON file.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initProfilePath, "profile", "", "Path to a JSON profile to load")
	rootCmd.AddCommand(initCmd)
}

// profileFile is the JSON shape accepted by init --profile.
type profileFile struct {
	Personal   types.PersonalInfo `json:"personal"`
	Experience []types.Entity     `json:"experience"`
	Projects   []types.Entity     `json:"projects"`
	Skills     []types.Skill      `json:"skills"`
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", cfg.DatabasePath)

	if initProfilePath == "" {
		return nil
	}

	raw, err := os.ReadFile(initProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	var profile profileFile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	ctx := cmd.Context()
	if profile.Personal.Name != "" {
		if err := st.UpsertPersonalInfo(ctx, profile.Personal); err != nil {
			return err
		}
	}

	for _, job := range profile.Experience {
		jobID, err := st.AddWorkExperience(ctx, job)
		if err != nil {
			return err
		}
		for _, b := range job.Bullets {
			if _, err := st.AddJobBullet(ctx, jobID, b); err != nil {
				return err
			}
		}
	}

	for _, project := range profile.Projects {
		projectID, err := st.AddProject(ctx, project)
		if err != nil {
			return err
		}
		for _, b := range project.Bullets {
			if _, err := st.AddProjectBullet(ctx, projectID, b); err != nil {
				return err
			}
		}
	}

	for _, skill := range profile.Skills {
		if _, err := st.AddSkill(ctx, skill); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d jobs, %d projects, %d skills\n",
		len(profile.Experience), len(profile.Projects), len(profile.Skills))
	return nil
}
