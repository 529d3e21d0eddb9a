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


package storage

import (
	"github.com/supertruth/violet/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalTerm serializes a Term to bytes.
func MarshalTerm(term *core.Term) []byte {
	buf := make([]byte, core.TermMUS.Size(*term))
	core.TermMUS.Marshal(*term, buf)
	return buf
}

// UnmarshalTerm deserializes a Term from bytes.
func UnmarshalTerm(data []byte) (*core.Term, error) {
	term, _, err := core.TermMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &term, nil
}

// MarshalCluster serializes a Cluster to bytes.
func MarshalCluster(cluster *core.Cluster) []byte {
	buf := make([]byte, core.ClusterMUS.Size(*cluster))
	core.ClusterMUS.Marshal(*cluster, buf)
	return buf
}

// UnmarshalCluster deserializes a Cluster from bytes.
func UnmarshalCluster(data []byte) (*core.Cluster, error) {
	cluster, _, err := core.ClusterMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &cluster, nil
}

// MarshalObservation serializes a TrendObservation to bytes.
func MarshalObservation(obs *core.TrendObservation) []byte {
	buf := make([]byte, core.TrendObservationMUS.Size(*obs))
	core.TrendObservationMUS.Marshal(*obs, buf)
	return buf
}

// UnmarshalObservation deserializes a TrendObservation from bytes.
func UnmarshalObservation(data []byte) (*core.TrendObservation, error) {
	obs, _, err := core.TrendObservationMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

// MarshalSignal serializes a RelatedSignal to bytes.
func MarshalSignal(signal *core.RelatedSignal) []byte {
	buf := make([]byte, core.RelatedSignalMUS.Size(*signal))
	core.RelatedSignalMUS.Marshal(*signal, buf)
	return buf
}

// UnmarshalSignal deserializes a RelatedSignal from bytes.
func UnmarshalSignal(data []byte) (*core.RelatedSignal, error) {
	signal, _, err := core.RelatedSignalMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &signal, nil
}

// MarshalRun serializes a PipelineRun to bytes.
func MarshalRun(run *core.PipelineRun) []byte {
	buf := make([]byte, core.PipelineRunMUS.Size(*run))
	core.PipelineRunMUS.Marshal(*run, buf)
	return buf
}

// UnmarshalRun deserializes a PipelineRun from bytes.
func UnmarshalRun(data []byte) (*core.PipelineRun, error) {
	run, _, err := core.PipelineRunMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// MarshalHourlyPattern serializes an HourlyPattern to bytes.
func MarshalHourlyPattern(pattern *core.HourlyPattern) []byte {
	buf := make([]byte, core.HourlyPatternMUS.Size(*pattern))
	core.HourlyPatternMUS.Marshal(*pattern, buf)
	return buf
}

// UnmarshalHourlyPattern deserializes an HourlyPattern from bytes.
func UnmarshalHourlyPattern(data []byte) (*core.HourlyPattern, error) {
	pattern, _, err := core.HourlyPatternMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// MarshalQuestion serializes a TermQuestion to bytes.
func MarshalQuestion(question *core.TermQuestion) []byte {
	buf := make([]byte, core.TermQuestionMUS.Size(*question))
	core.TermQuestionMUS.Marshal(*question, buf)
	return buf
}

// UnmarshalQuestion deserializes a TermQuestion from bytes.
func UnmarshalQuestion(data []byte) (*core.TermQuestion, error) {
	question, _, err := core.TermQuestionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// MarshalRegion serializes a Region to bytes.
func MarshalRegion(region *core.Region) []byte {
	buf := make([]byte, core.RegionMUS.Size(*region))
	core.RegionMUS.Marshal(*region, buf)
	return buf
}

// UnmarshalRegion deserializes a Region from bytes.
func UnmarshalRegion(data []byte) (*core.Region, error) {
	region, _, err := core.RegionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &region, nil
}
