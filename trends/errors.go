package trends

import "errors"

var (
	// ErrNilFetcher is returned when a Loader is constructed without a fetcher.
	ErrNilFetcher = errors.New("fetcher cannot be nil")

	// ErrNilRepositories is returned when a Loader is constructed without
	// storage repositories.
	ErrNilRepositories = errors.New("repositories cannot be nil")

	// ErrUnknownSignalKind is returned when a fetched related item carries
	// a kind name the transform does not recognize.
	ErrUnknownSignalKind = errors.New("unknown signal kind")

	// ErrNoHourlyData is returned when hourly aggregation receives no points.
	ErrNoHourlyData = errors.New("no hourly data points")
)
