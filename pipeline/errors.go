package pipeline

import "errors"

var (
	// ErrNilRepositories is returned when a Pipeline is constructed
	// without storage repositories.
	ErrNilRepositories = errors.New("repositories cannot be nil")

	// ErrNilEmbedder is returned when a Pipeline is constructed without
	// an embedder.
	ErrNilEmbedder = errors.New("embedder cannot be nil")

	// ErrNilFetcher is returned when a Pipeline is constructed without a
	// trends fetcher.
	ErrNilFetcher = errors.New("trends fetcher cannot be nil")

	// ErrNilQuestionFetcher is returned when a Pipeline is constructed
	// without a question fetcher.
	ErrNilQuestionFetcher = errors.New("question fetcher cannot be nil")

	// ErrNilOverlayLoader is returned when a Pipeline is constructed
	// without an overlay loader.
	ErrNilOverlayLoader = errors.New("overlay loader cannot be nil")

	// ErrPipelineClosed is returned when starting a run on a closed
	// pipeline.
	ErrPipelineClosed = errors.New("pipeline is closed")

	// ErrInvalidRunConfig is returned when a run configuration fails
	// validation before a run record is created.
	ErrInvalidRunConfig = errors.New("invalid run configuration")
)
