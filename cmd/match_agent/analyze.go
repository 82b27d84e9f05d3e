package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score one resume against one job description",
	Long: `Runs the full analysis: keyword coverage per job-description section,
compensation fit when salary ranges are provided, and a narrative written by
the LLM (or by a local heuristic with --offline).

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath   string
	analyzeResume       string
	analyzeJob          string
	analyzeJobURL       string
	analyzeCandidateMin int
	analyzeCandidateMax int
	analyzeRoleMin      int
	analyzeRoleMax      int
	analyzeSkillWeight  float64
	analyzeMaxBytes     int
	analyzeAPIKey       string
	analyzeOffline      bool
	analyzeJSON         bool
	analyzeVerbose      bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	analyzeCmd.Flags().IntVar(&analyzeCandidateMin, "candidate-min", 0, "Candidate desired salary, lower bound")
	analyzeCmd.Flags().IntVar(&analyzeCandidateMax, "candidate-max", 0, "Candidate desired salary, upper bound")
	analyzeCmd.Flags().IntVar(&analyzeRoleMin, "role-min", 0, "Role advertised salary, lower bound")
	analyzeCmd.Flags().IntVar(&analyzeRoleMax, "role-max", 0, "Role advertised salary, upper bound")
	analyzeCmd.Flags().Float64Var(&analyzeSkillWeight, "skill-weight", 0, "Match-score weight in the overall score (0, 1)")
	analyzeCmd.Flags().IntVar(&analyzeMaxBytes, "max-input-bytes", 0, "Maximum size of a resume or job description")
	analyzeCmd.Flags().BoolVar(&analyzeOffline, "offline", false, "Skip the LLM and use the heuristic narrative")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the result as JSON instead of the report")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("candidate-min") {
		cfg.CandidateSalaryMin = &analyzeCandidateMin
	}
	if cmd.Flags().Changed("candidate-max") {
		cfg.CandidateSalaryMax = &analyzeCandidateMax
	}
	if cmd.Flags().Changed("role-min") {
		cfg.RoleSalaryMin = &analyzeRoleMin
	}
	if cmd.Flags().Changed("role-max") {
		cfg.RoleSalaryMax = &analyzeRoleMax
	}
	if cmd.Flags().Changed("skill-weight") {
		cfg.SkillWeight = analyzeSkillWeight
	}
	if cmd.Flags().Changed("max-input-bytes") {
		cfg.MaxInputBytes = analyzeMaxBytes
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("offline") {
		cfg.Offline = analyzeOffline
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	defaults := config.Config{
		SkillWeight:   scoring.DefaultSkillWeight,
		MaxInputBytes: ingestion.DefaultMaxInputBytes,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API key handling; --offline forces the heuristic narrative
	if cfg.Offline {
		cfg.APIKey = ""
	} else if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	resumeText, err := ingestion.FromFile(cfg.Resume, cfg.MaxInputBytes)
	if err != nil {
		return err
	}

	var jobText string
	if cfg.Job != "" {
		jobText, err = ingestion.FromFile(cfg.Job, cfg.MaxInputBytes)
	} else {
		jobText, err = ingestion.FromURL(ctx, cfg.JobURL, cfg.MaxInputBytes, cfg.Verbose)
	}
	if err != nil {
		return err
	}

	result, err := analysis.Run(ctx, analysis.Options{
		ResumeText:      resumeText,
		JobText:         jobText,
		CandidateSalary: types.NewSalaryRange(cfg.CandidateSalaryMin, cfg.CandidateSalaryMax),
		RoleSalary:      types.NewSalaryRange(cfg.RoleSalaryMin, cfg.RoleSalaryMax),
		SkillWeight:     cfg.SkillWeight,
		APIKey:          cfg.APIKey,
		Verbose:         cfg.Verbose,
	})
	if err != nil {
		return err
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis(result)
	return nil
}
