package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the stored profile and tracked applications",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	info, err := st.PersonalInfo(ctx)
	if err != nil {
		return err
	}
	if info.Name != "" {
		fmt.Fprintf(out, "Profile: %s <%s>\n\n", info.Name, info.Email)
	}

	jobs, err := st.WorkExperience(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Work experience (%d):\n", len(jobs))
	for _, job := range jobs {
		fmt.Fprintf(out, "  [%d] %s, %s (%d bullets)\n", job.ID, job.Title, job.Company, len(job.Bullets))
	}

	projects, err := st.Projects(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nProjects (%d):\n", len(projects))
	for _, project := range projects {
		fmt.Fprintf(out, "  [%d] %s (%d bullets)\n", project.ID, project.Name, len(project.Bullets))
	}

	skills, err := st.Skills(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nSkills (%d):\n", len(skills))
	for _, skill := range skills {
		if skill.Category != "" {
			fmt.Fprintf(out, "  %s (%s)\n", skill.Name, skill.Category)
		} else {
			fmt.Fprintf(out, "  %s\n", skill.Name)
		}
	}

	apps, err := st.Applications(ctx)
	if err != nil {
		return err
	}
	if len(apps) == 0 {
		return nil
	}
	fmt.Fprintf(out, "\nApplications (%d):\n", len(apps))
	for _, app := range apps {
		outcome := app.Outcome
		if outcome == "" {
			outcome = "pending"
		}
		fmt.Fprintf(out, "  [%d] %s / %s  ATS %.1f%%  %s\n",
			app.ID, app.Company, app.Title, app.ATSScore, outcome)
	}
	return nil
}
