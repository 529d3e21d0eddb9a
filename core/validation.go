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

import "fmt"

// ValidateTerm validates a Term according to domain rules.
//
// Validation rules:
//   - Text must not be empty
//   - Category must not be empty
//
// NOT validated (populated by pipeline stages):
//   - Vector (empty until the embedding stage runs)
//   - Coords and ClusterId (zero until the clustering stage runs)
func ValidateTerm(term *Term) error {
	if term == nil {
		return fmt.Errorf("%w: term is nil", ErrInvalidTerm)
	}

	if NormalizeTermText(term.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTerm, ErrEmptyTermText)
	}

	if term.Category == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTerm, ErrEmptyCategory)
	}

	return nil
}

// ValidateSignal validates a RelatedSignal according to domain rules.
//
// Validation rules:
//   - Query must not be empty
//   - Kind must be a recognized SignalKind
//   - SourceTermId must be set
func ValidateSignal(signal *RelatedSignal) error {
	if signal == nil {
		return fmt.Errorf("%w: signal is nil", ErrInvalidSignal)
	}

	if signal.Query == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSignal, ErrEmptySignalQuery)
	}

	if err := ValidateSignalKind(signal.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignal, err)
	}

	if signal.SourceTermId == 0 {
		return fmt.Errorf("%w: source term id is required", ErrInvalidSignal)
	}

	return nil
}

// ValidateObservation validates a TrendObservation according to domain rules.
//
// Validation rules:
//   - TermId and GeoCode must be set
//   - GeoLevel and Granularity must be recognized values
//   - Interest must be within 0-100
func ValidateObservation(obs *TrendObservation) error {
	if obs == nil {
		return fmt.Errorf("%w: observation is nil", ErrInvalidObservation)
	}

	if obs.TermId == 0 {
		return fmt.Errorf("%w: term id is required", ErrInvalidObservation)
	}

	if obs.GeoCode == "" {
		return fmt.Errorf("%w: %w", ErrInvalidObservation, ErrEmptyGeoCode)
	}

	if err := ValidateGeoLevel(obs.GeoLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidObservation, err)
	}

	if obs.Granularity != GranularityWeekly && obs.Granularity != GranularitySnapshot {
		return fmt.Errorf("%w: %w", ErrInvalidObservation, ErrInvalidGranularity)
	}

	if obs.Interest < 0 || obs.Interest > 100 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidObservation, ErrInterestOutOfRange, obs.Interest)
	}

	return nil
}

// ValidateRegion validates a Region according to domain rules.
func ValidateRegion(region *Region) error {
	if region == nil {
		return fmt.Errorf("%w: region is nil", ErrInvalidRegion)
	}

	if region.GeoCode == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, ErrEmptyGeoCode)
	}

	if err := ValidateGeoLevel(region.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegion, err)
	}

	return nil
}

// ValidateSignalKind validates that a SignalKind has a valid value.
func ValidateSignalKind(kind SignalKind) error {
	switch kind {
	case SignalRisingQuery, SignalTopQuery, SignalRisingTopic, SignalTopTopic:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidSignalKind, kind)
	}
}

// ValidateGeoLevel validates that a GeoLevel has a valid value.
func ValidateGeoLevel(level GeoLevel) error {
	if level != GeoLevelCountry && level != GeoLevelState {
		return fmt.Errorf("%w: value %d", ErrInvalidGeoLevel, level)
	}
	return nil
}

// ValidateRunStatus validates that a RunStatus has a valid value.
func ValidateRunStatus(status RunStatus) error {
	switch status {
	case RunQueued, RunRunning, RunCompleted, RunFailed:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidRunStatus, status)
	}
}
