package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GOPIVARDHAN1965/resumes/internal/generation"
	"github.com/GOPIVARDHAN1965/resumes/internal/ingest"
	"github.com/GOPIVARDHAN1965/resumes/internal/observability"
	"github.com/GOPIVARDHAN1965/resumes/internal/render"
	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/spf13/cobra"
)

var (
	generateJobFile    string
	generateJobURL     string
	generateTopN       int
	generateProjectN   int
	generateTrack      bool
	generateCompany    string
	generateTitle      string
	generateOutput     string
	generateJSONOutput bool
	generateVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume for a job description",
	Long: `Generate scores every profile bullet against the job description,
keeps the top bullets per job and project, and writes an HTML resume
plus an ATS coverage report. Reads the job description from --job,
--job-url, or stdin.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateJobFile, "job", "j", "", "Path to job description file")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL to fetch the job description from")
	generateCmd.Flags().IntVar(&generateTopN, "top-n", 0, "Bullets kept per job (default from config)")
	generateCmd.Flags().IntVar(&generateProjectN, "project-top-n", 0, "Bullets kept per project (default from config)")
	generateCmd.Flags().BoolVar(&generateTrack, "track", false, "Record keyword and selection analytics for this run")
	generateCmd.Flags().StringVar(&generateCompany, "company", "", "Company name for application tracking")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "Job title for application tracking")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the HTML resume to this path")
	generateCmd.Flags().BoolVar(&generateJSONOutput, "json", false, "Print the full result as JSON")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print stage-by-stage details")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jd, err := readJobDescription(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	v, err := loadVocabulary(cfg)
	if err != nil {
		return err
	}

	topN := generateTopN
	if topN == 0 {
		topN = cfg.TopN
	}
	projectTopN := generateProjectN
	if projectTopN == 0 {
		projectTopN = cfg.ProjectTopN
	}

	gen := generation.New(st, st, v)
	result, err := gen.Generate(cmd.Context(), jd, generation.Options{
		TopN:        topN,
		ProjectTopN: projectTopN,
		MaxProjects: cfg.MaxProjects,
		Track:       generateTrack,
	})
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if generateTrack && generateCompany != "" {
		if _, err := st.TrackApplication(cmd.Context(), generateCompany, generateTitle,
			jd, result.Role, result.ATS.Percentage, result.SelectedBulletIDs); err != nil {
			return fmt.Errorf("failed to track application: %w", err)
		}
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if generateVerbose || cfg.Verbose {
		printer.PrintExtraction(result.Role, types.NewSkillSet(result.SkillSet...))
		printer.PrintSelectedBullets("experience", result.Experience)
		printer.PrintSelectedBullets("projects", result.Projects)
		printer.PrintATSReport(result.ATS)
	}
	printer.PrintSummary(result)

	if generateJSONOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	}

	if generateOutput != "" {
		personal, err := st.PersonalInfo(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load personal info: %w", err)
		}

		f, err := os.Create(generateOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", generateOutput, err)
		}
		defer f.Close()

		if err := render.HTML(f, render.Document{
			Personal:   personal,
			Experience: result.Experience,
			Projects:   result.Projects,
			Skills:     result.Skills,
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Resume written to %s\n", generateOutput)
	}

	return nil
}

// readJobDescription resolves the job description from the file flag, the
// URL flag, or stdin, then normalizes it for extraction.
func readJobDescription(cmd *cobra.Command) (string, error) {
	if generateJobFile != "" && generateJobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	if generateJobURL != "" {
		return ingest.FetchURL(cmd.Context(), generateJobURL)
	}

	var raw []byte
	var err error
	if generateJobFile != "" {
		raw, err = os.ReadFile(generateJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read job description from stdin: %w", err)
		}
	}
	return ingest.Normalize(string(raw))
}
