package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/GOPIVARDHAN1965/resumes/internal/extract"
	"github.com/GOPIVARDHAN1965/resumes/internal/ingest"
	"github.com/GOPIVARDHAN1965/resumes/internal/roles"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ingestConcurrency bounds how many job descriptions are read and parsed
// at once.
const ingestConcurrency = 4

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Feed job descriptions into the keyword analytics",
	Long: `Ingest extracts keywords from each job description file and updates
the frequency and role counters without generating a resume. Use it to
build up the analytics corpus from postings you are not applying to.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
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

	type parsed struct {
		path  string
		terms []string
		role  string
	}

	// Parsing fans out; the store writes stay on this goroutine because
	// SQLite serializes writers anyway.
	var mu sync.Mutex
	var results []parsed

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(ingestConcurrency)
	for _, path := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			text, err := ingest.Normalize(string(raw))
			if err != nil {
				return fmt.Errorf("failed to normalize %s: %w", path, err)
			}

			skills := extract.Keywords(text, v)
			role := roles.DefaultLabel
			if strings.TrimSpace(text) != "" {
				role = roles.Classify(text, v)
			}

			mu.Lock()
			results = append(results, parsed{path: path, terms: skills.Sorted(), role: role})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range results {
		if len(p.terms) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%-30s no recognized keywords, skipped\n", p.path)
			continue
		}
		if err := st.RecordIngestion(cmd.Context(), p.terms, p.role); err != nil {
			return fmt.Errorf("failed to record %s: %w", p.path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-30s %d keywords (%s)\n", p.path, len(p.terms), p.role)
	}
	return nil
}
