package pipeline

import (
	"context"
	"time"

	"github.com/supertruth/violet/cluster"
	"github.com/supertruth/violet/core"
	"github.com/supertruth/violet/embed"
	"github.com/supertruth/violet/geo"
	"github.com/supertruth/violet/questions"
	"github.com/supertruth/violet/taxonomy"
	"github.com/supertruth/violet/trends"
)

// execute drives one run through every stage. Stage errors marked fatal
// fail the run; the rest tolerate per-item failures inside the stage.
func (p *Pipeline) execute(ctx context.Context, runID core.ID) {
	run, err := p.repos.Runs.GetRun(ctx, runID)
	if err != nil {
		p.logger.Error("run lookup failed", "run", runID, "error", err)
		return
	}

	run.Status = core.RunRunning
	run, err = p.repos.Runs.UpdateRun(ctx, run)
	if err != nil {
		p.logger.Error("run start failed", "run", runID, "error", err)
		return
	}
	p.logger.Info("run started", "run", run.Id, "handle", run.Handle)

	processed := 0

	// Stage 1: seed the curated taxonomy
	created, err := taxonomy.Seed(ctx, p.repos.Terms)
	if err != nil {
		p.failRun(ctx, run, err)
		return
	}
	processed += created

	// Stage 2: embed terms without vectors
	embedded, err := p.embedTerms(ctx)
	if err != nil {
		p.failRun(ctx, run, err)
		return
	}
	processed += embedded

	// Stage 3: layout and cluster
	clustered, err := p.clusterTerms(ctx)
	if err != nil {
		p.failRun(ctx, run, err)
		return
	}
	processed += clustered

	// Stage 4: trend fetch, tolerant per term
	if run.Config.FetchTrends {
		terms, err := p.repos.Terms.ListTerms(ctx)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		loader, err := trends.NewLoader(p.fetcher, p.repos, loaderOptions(run.Config)...)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		loaded, err := loader.Refresh(ctx, terms)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		processed += loaded
	}

	// Stage 5: promote breakout signals, then refit if anything changed
	expander, err := taxonomy.NewExpander(p.repos.Terms, p.repos.Signals, p.expansionCfg)
	if err != nil {
		p.failRun(ctx, run, err)
		return
	}
	promoted, err := expander.Expand(ctx)
	if err != nil {
		p.failRun(ctx, run, err)
		return
	}
	if len(promoted) > 0 {
		embedded, err := p.embedTerms(ctx)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		clustered, err := p.clusterTerms(ctx)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		processed += len(promoted) + embedded + clustered
	}

	// Stage 6: hourly patterns, tolerant per term
	if run.Config.FetchHourly {
		terms, err := p.repos.Terms.ListTerms(ctx)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		loader, err := trends.NewLoader(p.fetcher, p.repos, loaderOptions(run.Config)...)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		stored, err := loader.RefreshHourly(ctx, terms)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		processed += stored
	}

	// Stage 7: questions, tolerant per term
	if run.Config.FetchQuestions {
		terms, err := p.repos.Terms.ListTerms(ctx)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		loader, err := questions.NewLoader(p.questionFetcher, p.repos.Questions)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		refreshed, err := loader.Refresh(ctx, terms)
		if err != nil {
			p.failRun(ctx, run, err)
			return
		}
		processed += refreshed
	}

	// Stage 8: vulnerability overlay
	updated, err := geo.Refresh(ctx, p.overlayLoader, p.repos.Regions)
	if err != nil {
		p.failRun(ctx, run, err)
		return
	}
	processed += updated

	run.Status = core.RunCompleted
	run.CompletedAt = time.Now()
	run.RecordsProcessed = processed
	if _, err := p.repos.Runs.UpdateRun(ctx, run); err != nil {
		p.logger.Error("run completion update failed", "run", run.Id, "error", err)
		return
	}
	p.logger.Info("run completed", "run", run.Id, "processed", processed)
}

// loaderOptions maps the run configuration onto trend loader options.
func loaderOptions(cfg core.RunConfig) []trends.LoaderOption {
	var opts []trends.LoaderOption
	if cfg.Geo != "" {
		opts = append(opts, trends.WithGeo(cfg.Geo))
	}
	if cfg.Timeframe != "" {
		opts = append(opts, trends.WithTimeframe(cfg.Timeframe))
	}
	return opts
}

// failRun moves the run to the failed state, recording the error verbatim.
func (p *Pipeline) failRun(ctx context.Context, run *core.PipelineRun, cause error) {
	p.logger.Error("run failed", "run", run.Id, "error", cause)

	run.Status = core.RunFailed
	run.CompletedAt = time.Now()
	run.Errors = append(run.Errors, cause.Error())
	if _, err := p.repos.Runs.UpdateRun(ctx, run); err != nil {
		p.logger.Error("run failure update failed", "run", run.Id, "error", err)
	}
}

// embedTerms embeds every term lacking a vector. Individual failed chunks
// leave their terms unembedded for the next run; a fully failed batch is
// a stage error.
func (p *Pipeline) embedTerms(ctx context.Context) (int, error) {
	terms, err := p.repos.Terms.ListUnembeddedTerms(ctx)
	if err != nil {
		return 0, err
	}
	if len(terms) == 0 {
		return 0, nil
	}

	texts := make([]string, len(terms))
	for i, term := range terms {
		texts[i] = embed.Contextualize(term.Text, term.Category)
	}

	batcher, err := embed.NewBatcher(p.embedder)
	if err != nil {
		return 0, err
	}
	results, err := batcher.EmbedAll(ctx, texts)
	if err != nil {
		return 0, err
	}

	var updated []*core.Term
	for i, result := range results {
		if result.Err != nil {
			continue
		}
		terms[i].Vector = result.Vector
		updated = append(updated, terms[i])
	}
	if len(updated) > 0 {
		if _, err := p.repos.Terms.UpdateTerms(ctx, updated...); err != nil {
			return 0, err
		}
	}

	p.logger.Info("embedding stage complete",
		"pending", len(terms), "embedded", len(updated))
	return len(updated), nil
}

// clusterTerms refits the layout over every embedded term, assigns
// cluster IDs and wholesale-replaces the cluster records. Density noise
// keeps cluster ID zero.
func (p *Pipeline) clusterTerms(ctx context.Context) (int, error) {
	terms, err := p.repos.Terms.ListEmbeddedTerms(ctx)
	if err != nil {
		return 0, err
	}
	if len(terms) == 0 {
		return 0, nil
	}

	vectors := make([][]float32, len(terms))
	for i, term := range terms {
		vectors[i] = term.Vector
	}

	engine := cluster.NewEngine(p.clusterCfg)
	result, err := engine.FitTransform(vectors)
	if err != nil {
		return 0, err
	}

	for i, term := range terms {
		term.Coords = result.Coordinates[i]
		if result.Labels[i] >= 0 {
			term.ClusterId = core.ID(result.Labels[i] + 1)
		} else {
			term.ClusterId = 0
		}
	}
	if _, err := p.repos.Terms.UpdateTerms(ctx, terms...); err != nil {
		return 0, err
	}

	clusters := make([]*core.Cluster, 0, len(result.Centroids))
	for label, centroid := range result.Centroids {
		var members []string
		var meanVector []float64
		count := 0
		for i, term := range terms {
			if result.Labels[i] != label {
				continue
			}
			members = append(members, term.Text)
			if meanVector == nil {
				meanVector = make([]float64, len(term.Vector))
			}
			for d, v := range term.Vector {
				meanVector[d] += float64(v)
			}
			count++
		}

		mean := make([]float32, len(meanVector))
		for d, sum := range meanVector {
			mean[d] = float32(sum / float64(count))
		}

		clusters = append(clusters, &core.Cluster{
			Id:         core.ID(label + 1),
			Name:       cluster.ClusterName(members),
			Centroid:   centroid,
			MeanVector: mean,
			TermCount:  count,
		})
	}
	if err := p.repos.Clusters.ReplaceClusters(ctx, clusters...); err != nil {
		return 0, err
	}

	p.logger.Info("clustering stage complete",
		"terms", len(terms), "clusters", len(clusters))
	return len(terms), nil
}
