// Copyright 2025 Supertruth Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	violet "github.com/supertruth/violet"
	"github.com/supertruth/violet/ai"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/pipeline"
)

func main() {
	app := &cli.App{
		Name:  "violet",
		Usage: "Medical search interest intelligence pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load the curated taxonomy into the database",
				Action: seedCommand,
				Flags:  databaseFlags(),
			},
			{
				Name:   "run",
				Usage:  "Execute a full pipeline run",
				Action: runCommand,
				Flags: append(databaseFlags(),
					&cli.BoolFlag{
						Name:  "trends",
						Usage: "Fetch weekly and regional trend data",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "hourly",
						Usage: "Fetch hourly search patterns",
					},
					&cli.BoolFlag{
						Name:  "questions",
						Usage: "Fetch surfaced questions",
					},
					&cli.StringFlag{
						Name:  "timeframe",
						Usage: "Trend timeframe",
						Value: "today 3-m",
					},
					&cli.StringFlag{
						Name:  "geo",
						Usage: "Country scope for trend fetches",
						Value: "US",
					},
				),
			},
			{
				Name:      "status",
				Usage:     "Show a run's status, or recent runs if no ID is given",
				Action:    statusCommand,
				ArgsUsage: "[run-id]",
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of recent runs to list",
						Value: 10,
					},
				),
			},
			{
				Name:   "insights",
				Usage:  "Recompute and print anomaly insights",
				Action: insightsCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:  "severity",
						Usage: "Keep only insights at this severity (high, medium, low)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of insights to print",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
		&cli.IntFlag{
			Name:  "embedding-dim",
			Usage: "Embedding vector width",
			Value: 768,
		},
	}
}

func openDatabase(c *cli.Context) (*violet.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithEmbeddingDim(c.Int("embedding-dim")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := violet.NewDatabase(c.String("db"), violet.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func seedCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	created, err := db.SeedTaxonomy(context.Background())
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %d terms\n", created)
	return nil
}

func runCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	cfg := core.RunConfig{
		FetchTrends:    c.Bool("trends"),
		FetchHourly:    c.Bool("hourly"),
		FetchQuestions: c.Bool("questions"),
		Timeframe:      c.String("timeframe"),
		Geo:            c.String("geo"),
	}

	run, err := db.Run(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("run failed to start: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Run %d (%s) finished: %s\n", run.Id, run.Handle, run.Status)
	fmt.Fprintf(os.Stderr, "Records processed: %d\n", run.RecordsProcessed)
	for _, msg := range run.Errors {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	if run.Status == core.RunFailed {
		return fmt.Errorf("run %d failed", run.Id)
	}
	return nil
}

func statusCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()
	ctx := context.Background()

	if c.Args().Len() > 0 {
		id, err := strconv.ParseUint(c.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", c.Args().First())
		}
		run, err := db.RunStatus(ctx, core.ID(id))
		if err != nil {
			return err
		}
		printRun(run)
		return nil
	}

	runs, err := db.ListRuns(ctx, c.Int("limit"))
	if err != nil {
		return err
	}
	for _, run := range runs {
		printRun(run)
	}
	return nil
}

func printRun(run *core.PipelineRun) {
	fmt.Printf("run %d  %-9s  started %s", run.Id, run.Status, run.StartedAt.Format("2006-01-02 15:04:05"))
	if !run.CompletedAt.IsZero() {
		fmt.Printf("  finished %s  processed %d", run.CompletedAt.Format("2006-01-02 15:04:05"), run.RecordsProcessed)
	}
	fmt.Println()
	for _, msg := range run.Errors {
		fmt.Printf("  error: %s\n", msg)
	}
}

func insightsCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	filter := pipeline.InsightFilter{
		Severity: core.Severity(strings.ToLower(c.String("severity"))),
		Limit:    c.Int("limit"),
	}

	insights, err := db.Insights(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("insight detection failed: %w", err)
	}

	if len(insights) == 0 {
		fmt.Println("No insights detected")
		return nil
	}
	for _, insight := range insights {
		fmt.Printf("[%s] %s\n", strings.ToUpper(string(insight.Severity)), insight.Title)
		fmt.Printf("  %s\n", insight.Description)
	}
	return nil
}

func setup(c *cli.Context) error {
	// Missing .env is fine; environment variables still apply
	_ = godotenv.Load()

	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
