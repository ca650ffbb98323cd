package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/pipeline"
)

var (
	parseEmailHint string
	parseOffline   bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume file and print the extracted record as JSON",
	Long: `Parse a local PDF or DOCX resume through the extraction pipeline.
Uses the Gemini analyzer when GEMINI_API_KEY is set, otherwise falls back
to regex extraction.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseEmailHint, "email", "", "Known candidate email, used as an extraction hint")
	parseCmd.Flags().BoolVar(&parseOffline, "offline", false, "Skip the AI analyzer and use regex extraction only")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := config.FromEnv()
	ctx := cmd.Context()

	var client llm.Client
	if !parseOffline && cfg.APIKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	}

	parser := pipeline.NewParser(analyzer.New(client), 60*time.Second)
	record := parser.Parse(ctx, data, filepath.Base(path), parseEmailHint)

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
