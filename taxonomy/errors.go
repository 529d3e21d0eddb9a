package taxonomy

import "errors"

var (
	// ErrNilTermRepository is returned when an Expander is constructed
	// without a term repository.
	ErrNilTermRepository = errors.New("term repository cannot be nil")

	// ErrNilSignalRepository is returned when an Expander is constructed
	// without a signal repository.
	ErrNilSignalRepository = errors.New("signal repository cannot be nil")
)
