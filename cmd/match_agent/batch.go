package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score one resume against a directory of job descriptions",
	Long: `Scores every .txt and .md file in the jobs directory against the resume
and prints a ranked table, best match first. Batch runs use the deterministic
scorer only; no LLM calls are made.`,
	RunE: runBatchCmd,
}

var (
	batchResume      string
	batchJobsDir     string
	batchTop         int
	batchConcurrency int
	batchJSON        bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchResume, "resume", "r", "", "Path to resume text file")
	batchCmd.Flags().StringVar(&batchJobsDir, "jobs", "", "Directory of job description files")
	batchCmd.Flags().IntVar(&batchTop, "top", 0, "Show only the N best matches (0 shows all)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Number of job descriptions scored in parallel")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Emit the ranked results as JSON instead of the table")

	_ = batchCmd.MarkFlagRequired("resume")
	_ = batchCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if batchConcurrency < 1 {
		batchConcurrency = 1
	}

	resumeText, err := ingestion.FromFile(batchResume, ingestion.DefaultMaxInputBytes)
	if err != nil {
		return err
	}

	files, err := listJobFiles(batchJobsDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt or .md job descriptions found in %s", batchJobsDir)
	}

	// One slot per file keeps results writable without a mutex.
	results := make([]observability.BatchResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, name := range files {
		g.Go(func() error {
			jobText, err := ingestion.FromFile(filepath.Join(batchJobsDir, name), ingestion.DefaultMaxInputBytes)
			if err != nil {
				return fmt.Errorf("read %s: %w", name, err)
			}

			result, err := analysis.Run(ctx, analysis.Options{
				ResumeText: resumeText,
				JobText:    jobText,
			})
			if err != nil {
				return fmt.Errorf("analyze %s: %w", name, err)
			}

			matched, total := coverageTotals(result.ScoreBreakdown)
			results[i] = observability.BatchResult{
				Name:       name,
				MatchScore: result.MatchScore,
				Matched:    matched,
				Total:      total,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].MatchScore > results[b].MatchScore
	})
	if batchTop > 0 && len(results) > batchTop {
		results = results[:batchTop]
	}

	if batchJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintBatchTable(results)
	return nil
}

// listJobFiles returns the plain-text job description files in dir, sorted
// by name so ties in the ranked output stay stable across runs.
func listJobFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md":
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// coverageTotals sums matched and total key terms across active sections.
func coverageTotals(breakdown types.ScoreBreakdown) (int, int) {
	matched, total := 0, 0
	for _, part := range []types.ScorePart{
		breakdown.Requirements,
		breakdown.Responsibilities,
		breakdown.Preferred,
		breakdown.Other,
	} {
		matched += part.Matched
		total += part.Total
	}
	return matched, total
}
