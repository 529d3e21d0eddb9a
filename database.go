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


package violet

import (
	"context"
	"log/slog"

	"github.com/supertruth/violet/ai"
	"github.com/supertruth/violet/ai/openai"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/geo"
	"github.com/supertruth/violet/pipeline"
	"github.com/supertruth/violet/questions"
	"github.com/supertruth/violet/storage"
	"github.com/supertruth/violet/storage/badger"
	"github.com/supertruth/violet/taxonomy"
	"github.com/supertruth/violet/trends"
)

// Database is the top-level handle over storage, the AI provider and the
// pipeline. It is the entry point library consumers and the CLI share.
type Database struct {
	backend  *badger.Backend
	repos    *storage.Repositories
	provider ai.AIProvider
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig        *ai.Config
	inMemory        bool
	fetcher         trends.Fetcher
	questionFetcher questions.Fetcher
	overlayLoader   geo.OverlayLoader
	pipelineOpts    []pipeline.Option
}

// WithAIConfig sets the embedding provider configuration.
func WithAIConfig(cfg *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		o.aiConfig = cfg
	}
}

// WithInMemory opens the storage backend without a backing directory.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithFetcher sets the trends fetcher. Defaults to the deterministic stub.
func WithFetcher(fetcher trends.Fetcher) DatabaseOption {
	return func(o *databaseOptions) {
		o.fetcher = fetcher
	}
}

// WithQuestionFetcher sets the question fetcher. Defaults to the stub.
func WithQuestionFetcher(fetcher questions.Fetcher) DatabaseOption {
	return func(o *databaseOptions) {
		o.questionFetcher = fetcher
	}
}

// WithOverlayLoader sets the vulnerability overlay source. Defaults to
// the built-in static snapshot.
func WithOverlayLoader(loader geo.OverlayLoader) DatabaseOption {
	return func(o *databaseOptions) {
		o.overlayLoader = loader
	}
}

// WithPipelineOptions passes extra options through to the pipeline.
func WithPipelineOptions(opts ...pipeline.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.pipelineOpts = append(o.pipelineOpts, opts...)
	}
}

// NewDatabase opens storage at filePath and wires the default providers.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig:        ai.DefaultConfig(),
		fetcher:         trends.NewStubFetcher(),
		questionFetcher: questions.NewStubFetcher(),
		overlayLoader:   geo.NewStaticOverlayLoader(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	repos, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		repos.Close()
		backend.Close()
		return nil, err
	}

	p, err := pipeline.New(repos, provider.Embedder(),
		options.fetcher, options.questionFetcher, options.overlayLoader,
		options.pipelineOpts...)
	if err != nil {
		provider.Close()
		repos.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:  backend,
		repos:    repos,
		provider: provider,
		pipeline: p,
		logger:   slog.Default(),
	}, nil
}

// Close shuts down the pipeline, provider and storage.
func (db *Database) Close() error {
	if err := db.pipeline.Close(); err != nil {
		db.logger.Error("error closing pipeline", "err", err)
	}
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}
	if err := db.repos.Close(); err != nil {
		db.logger.Error("error closing repositories", "err", err)
		return err
	}
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Repositories exposes the storage layer.
func (db *Database) Repositories() *storage.Repositories {
	return db.repos
}

// SeedTaxonomy loads the curated vocabulary, returning how many terms
// were created.
func (db *Database) SeedTaxonomy(ctx context.Context) (int, error) {
	return taxonomy.Seed(ctx, db.repos.Terms)
}

// StartRun schedules a pipeline run and returns its record immediately.
func (db *Database) StartRun(ctx context.Context, cfg core.RunConfig) (*core.PipelineRun, error) {
	return db.pipeline.StartRun(ctx, cfg)
}

// Run executes a pipeline run synchronously and returns the terminal
// run record.
func (db *Database) Run(ctx context.Context, cfg core.RunConfig) (*core.PipelineRun, error) {
	return db.pipeline.Run(ctx, cfg)
}

// RunStatus retrieves the current state of a run.
func (db *Database) RunStatus(ctx context.Context, id core.ID) (*core.PipelineRun, error) {
	return db.pipeline.RunStatus(ctx, id)
}

// ListRuns retrieves up to limit runs, most recent first.
func (db *Database) ListRuns(ctx context.Context, limit int) ([]*core.PipelineRun, error) {
	return db.pipeline.ListRuns(ctx, limit)
}

// Insights recomputes anomaly insights from stored trend data.
func (db *Database) Insights(ctx context.Context, filter pipeline.InsightFilter) ([]*core.Insight, error) {
	return db.pipeline.Insights(ctx, filter)
}
