package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/server"
)

var (
	servePort          int
	serveSkillWeight   float64
	serveMaxInputBytes int
	serveVerbose       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the resume/job-description analysis endpoint.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().Float64Var(&serveSkillWeight, "skill-weight", scoring.DefaultSkillWeight, "Match-score weight in the overall score (0, 1)")
	serveCmd.Flags().IntVar(&serveMaxInputBytes, "max-input-bytes", ingestion.DefaultMaxInputBytes, "Maximum size of a resume or job description")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// An explicit --port wins over the PORT environment variable.
	if !cmd.Flags().Changed("port") {
		if p := os.Getenv("PORT"); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil {
				return fmt.Errorf("invalid PORT value %q: %w", p, err)
			}
			servePort = n
		}
	}

	// The key is optional; narratives fall back to the local heuristic
	// writer when it is absent.
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "GEMINI_API_KEY not set; narratives will use the offline fallback")
	}

	srv := server.New(server.Config{
		Port:          servePort,
		APIKey:        apiKey,
		SkillWeight:   serveSkillWeight,
		MaxInputBytes: serveMaxInputBytes,
		Verbose:       serveVerbose,
	})

	return srv.Start()
}
