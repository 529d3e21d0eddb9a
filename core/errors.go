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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidTerm indicates a Term failed validation.
	ErrInvalidTerm = errors.New("invalid term")

	// ErrInvalidSignal indicates a RelatedSignal failed validation.
	ErrInvalidSignal = errors.New("invalid related signal")

	// ErrInvalidObservation indicates a TrendObservation failed validation.
	ErrInvalidObservation = errors.New("invalid trend observation")

	// ErrInvalidRegion indicates a Region failed validation.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrEmptyTermText indicates the term Text field is empty.
	ErrEmptyTermText = errors.New("term text cannot be empty")

	// ErrEmptyCategory indicates the term Category field is empty.
	ErrEmptyCategory = errors.New("term category cannot be empty")

	// ErrEmptySignalQuery indicates the signal Query field is empty.
	ErrEmptySignalQuery = errors.New("signal query cannot be empty")

	// ErrEmptyGeoCode indicates the GeoCode field is empty.
	ErrEmptyGeoCode = errors.New("geo code cannot be empty")

	// ErrInvalidSignalKind indicates an invalid SignalKind value.
	ErrInvalidSignalKind = errors.New("invalid signal kind")

	// ErrInvalidGeoLevel indicates an invalid GeoLevel value.
	ErrInvalidGeoLevel = errors.New("invalid geo level")

	// ErrInvalidGranularity indicates an invalid Granularity value.
	ErrInvalidGranularity = errors.New("invalid granularity")

	// ErrInterestOutOfRange indicates an interest value outside 0-100.
	ErrInterestOutOfRange = errors.New("interest must be between 0 and 100")

	// ErrInvalidRunStatus indicates an invalid RunStatus value.
	ErrInvalidRunStatus = errors.New("invalid run status")

	// ErrRunTerminal indicates an attempt to mutate a terminal run.
	ErrRunTerminal = errors.New("run is in a terminal state")
)
