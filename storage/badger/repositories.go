package badger

import (
	"github.com/supertruth/violet/storage"
)

// NewRepositories builds the full repository bundle on a shared backend.
// The caller owns the backend and must close it after the bundle.
func NewRepositories(backend *Backend) (*storage.Repositories, error) {
	repos := &storage.Repositories{}

	termRepo, err := NewTermRepository(backend)
	if err != nil {
		return nil, err
	}
	repos.Terms = termRepo

	clusterRepo, err := NewClusterRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Clusters = clusterRepo

	trendRepo, err := NewTrendRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Trends = trendRepo

	signalRepo, err := NewSignalRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Signals = signalRepo

	runRepo, err := NewRunRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Runs = runRepo

	regionRepo, err := NewRegionRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Regions = regionRepo

	hourlyRepo, err := NewHourlyRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Hourly = hourlyRepo

	questionRepo, err := NewQuestionRepository(backend)
	if err != nil {
		repos.Close()
		return nil, err
	}
	repos.Questions = questionRepo

	return repos, nil
}
