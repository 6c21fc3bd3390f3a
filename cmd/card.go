// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/statscard/github-stats-card/internal/badge"
	"github.com/statscard/github-stats-card/internal/config"
	"github.com/statscard/github-stats-card/internal/domain"
	"github.com/statscard/github-stats-card/internal/gateway"
	"github.com/statscard/github-stats-card/internal/usecase"
)

var cardCmd = &cobra.Command{
	Use:   "card [username]",
	Short: "Generates a stats card SVG for a GitHub user",
	Long: `Fetches activity for the given GitHub user (or the one configured via
GITHUB_USERNAME / GITHUB_REPOSITORY_OWNER), derives a grade from a weighted
score, and writes the rendered SVG card to the output path.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// Identity resolution happens before any network call; a missing
		// username aborts immediately.
		var arg string
		if len(args) > 0 {
			arg = args[0]
		}
		username, err := cfg.ResolveUsername(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = cfg.OutputPath
		}

		// Inject dependencies and run the pipeline.
		githubGateway := gateway.NewGitHubGateway(cfg.Token, logger)
		grade, err := generateCard(ctx, githubGateway, logger, username, outputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Card generated successfully: %s (grade %s)\n", outputPath, grade)
	},
}

// generateCard runs the aggregate-grade-render pipeline and writes the card.
// Nothing is written to outputPath unless the whole pipeline succeeds.
func generateCard(ctx context.Context, fetcher gateway.Fetcher, logger *log.Logger, username, outputPath string) (domain.Grade, error) {
	aggregator := usecase.NewAggregator(fetcher, logger)

	record, err := aggregator.Aggregate(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate stats: %w", err)
	}

	grade := domain.GradeOf(*record)
	svg, err := badge.Render(record, grade)
	if err != nil {
		return "", fmt.Errorf("failed to render card: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, svg, 0o644); err != nil {
		return "", fmt.Errorf("failed to write card: %w", err)
	}
	return grade, nil
}

func init() {
	rootCmd.AddCommand(cardCmd)
	cardCmd.Flags().StringP("output", "o", "", "Output file path (overrides OUTPUT_PATH)")
}
