// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice5C6mRBpsioΔQcP2UEp81TQΞΞ = ord.NewSliceSer[int](varint.Int)
	sliceFUxIsknRJwRrAIdUVAKyEQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicePtQRe1b6PclnGLtS8ps2ywΞΞ = ord.NewSliceSer[float64](varint.Float64)
	slicepJpKOesUzDrECEUX2YzR8AΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var GeoLevelMUS = geoLevelMUS{}

type geoLevelMUS struct{}

func (s geoLevelMUS) Marshal(v GeoLevel, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s geoLevelMUS) Unmarshal(bs []byte) (v GeoLevel, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = GeoLevel(tmp)
	return
}

func (s geoLevelMUS) Size(v GeoLevel) (size int) {
	return varint.Int.Size(int(v))
}

func (s geoLevelMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var GranularityMUS = granularityMUS{}

type granularityMUS struct{}

func (s granularityMUS) Marshal(v Granularity, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s granularityMUS) Unmarshal(bs []byte) (v Granularity, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Granularity(tmp)
	return
}

func (s granularityMUS) Size(v Granularity) (size int) {
	return varint.Int.Size(int(v))
}

func (s granularityMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var SignalKindMUS = signalKindMUS{}

type signalKindMUS struct{}

func (s signalKindMUS) Marshal(v SignalKind, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s signalKindMUS) Unmarshal(bs []byte) (v SignalKind, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = SignalKind(tmp)
	return
}

func (s signalKindMUS) Size(v SignalKind) (size int) {
	return varint.Int.Size(int(v))
}

func (s signalKindMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var QuestionSourceMUS = questionSourceMUS{}

type questionSourceMUS struct{}

func (s questionSourceMUS) Marshal(v QuestionSource, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s questionSourceMUS) Unmarshal(bs []byte) (v QuestionSource, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = QuestionSource(tmp)
	return
}

func (s questionSourceMUS) Size(v QuestionSource) (size int) {
	return varint.Int.Size(int(v))
}

func (s questionSourceMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var RunStatusMUS = runStatusMUS{}

type runStatusMUS struct{}

func (s runStatusMUS) Marshal(v RunStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s runStatusMUS) Unmarshal(bs []byte) (v RunStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = RunStatus(tmp)
	return
}

func (s runStatusMUS) Size(v RunStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s runStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var TermMUS = termMUS{}

type termMUS struct{}

func (s termMUS) Marshal(v Term, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Text, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += ord.String.Marshal(v.Subcategory, bs[n:])
	n += IDMUS.Marshal(v.ParentId, bs[n:])
	n += sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Marshal(v.Vector, bs[n:])
	n += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Marshal(v.Coords, bs[n:])
	n += IDMUS.Marshal(v.ClusterId, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s termMUS) Unmarshal(bs []byte) (v Term, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Subcategory, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ParentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Coords, n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ClusterId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s termMUS) Size(v Term) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Text)
	size += ord.String.Size(v.Category)
	size += ord.String.Size(v.Subcategory)
	size += IDMUS.Size(v.ParentId)
	size += sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Size(v.Vector)
	size += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Size(v.Coords)
	size += IDMUS.Size(v.ClusterId)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s termMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ClusterMUS = clusterMUS{}

type clusterMUS struct{}

func (s clusterMUS) Marshal(v Cluster, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Marshal(v.Centroid, bs[n:])
	n += sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Marshal(v.MeanVector, bs[n:])
	return n + varint.Int.Marshal(v.TermCount, bs[n:])
}

func (s clusterMUS) Unmarshal(bs []byte) (v Cluster, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Centroid, n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.MeanVector, n1, err = sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TermCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s clusterMUS) Size(v Cluster) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Size(v.Centroid)
	size += sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Size(v.MeanVector)
	return size + varint.Int.Size(v.TermCount)
}

func (s clusterMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceFUxIsknRJwRrAIdUVAKyEQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var TrendObservationMUS = trendObservationMUS{}

type trendObservationMUS struct{}

func (s trendObservationMUS) Marshal(v TrendObservation, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.TermId, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.Date, bs[n:])
	n += GranularityMUS.Marshal(v.Granularity, bs[n:])
	n += ord.String.Marshal(v.GeoCode, bs[n:])
	n += ord.String.Marshal(v.GeoName, bs[n:])
	n += GeoLevelMUS.Marshal(v.GeoLevel, bs[n:])
	n += varint.Int.Marshal(v.Interest, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.FetchedAt, bs[n:])
}

func (s trendObservationMUS) Unmarshal(bs []byte) (v TrendObservation, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.TermId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Date, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Granularity, n1, err = GranularityMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GeoCode, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GeoName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.GeoLevel, n1, err = GeoLevelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Interest, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FetchedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s trendObservationMUS) Size(v TrendObservation) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.TermId)
	size += raw.TimeUnixMicro.Size(v.Date)
	size += GranularityMUS.Size(v.Granularity)
	size += ord.String.Size(v.GeoCode)
	size += ord.String.Size(v.GeoName)
	size += GeoLevelMUS.Size(v.GeoLevel)
	size += varint.Int.Size(v.Interest)
	return size + raw.TimeUnixMicro.Size(v.FetchedAt)
}

func (s trendObservationMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = GranularityMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = GeoLevelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var RelatedSignalMUS = relatedSignalMUS{}

type relatedSignalMUS struct{}

func (s relatedSignalMUS) Marshal(v RelatedSignal, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.SourceTermId, bs[n:])
	n += ord.String.Marshal(v.Query, bs[n:])
	n += SignalKindMUS.Marshal(v.Kind, bs[n:])
	n += ord.String.Marshal(v.TopicType, bs[n:])
	n += ord.String.Marshal(v.Value, bs[n:])
	n += varint.Int.Marshal(v.ExtractedValue, bs[n:])
	n += ord.Bool.Marshal(v.Promoted, bs[n:])
	n += IDMUS.Marshal(v.PromotedTermId, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.DiscoveredAt, bs[n:])
}

func (s relatedSignalMUS) Unmarshal(bs []byte) (v RelatedSignal, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SourceTermId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Query, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Kind, n1, err = SignalKindMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TopicType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Value, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExtractedValue, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Promoted, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PromotedTermId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DiscoveredAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s relatedSignalMUS) Size(v RelatedSignal) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.SourceTermId)
	size += ord.String.Size(v.Query)
	size += SignalKindMUS.Size(v.Kind)
	size += ord.String.Size(v.TopicType)
	size += ord.String.Size(v.Value)
	size += varint.Int.Size(v.ExtractedValue)
	size += ord.Bool.Size(v.Promoted)
	size += IDMUS.Size(v.PromotedTermId)
	return size + raw.TimeUnixMicro.Size(v.DiscoveredAt)
}

func (s relatedSignalMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SignalKindMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var RunConfigMUS = runConfigMUS{}

type runConfigMUS struct{}

func (s runConfigMUS) Marshal(v RunConfig, bs []byte) (n int) {
	n = ord.Bool.Marshal(v.FetchTrends, bs)
	n += ord.Bool.Marshal(v.FetchHourly, bs[n:])
	n += ord.Bool.Marshal(v.FetchQuestions, bs[n:])
	n += ord.String.Marshal(v.Timeframe, bs[n:])
	return n + ord.String.Marshal(v.Geo, bs[n:])
}

func (s runConfigMUS) Unmarshal(bs []byte) (v RunConfig, n int, err error) {
	v.FetchTrends, n, err = ord.Bool.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.FetchHourly, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FetchQuestions, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Timeframe, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Geo, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s runConfigMUS) Size(v RunConfig) (size int) {
	size = ord.Bool.Size(v.FetchTrends)
	size += ord.Bool.Size(v.FetchHourly)
	size += ord.Bool.Size(v.FetchQuestions)
	size += ord.String.Size(v.Timeframe)
	return size + ord.String.Size(v.Geo)
}

func (s runConfigMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.Bool.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var PipelineRunMUS = pipelineRunMUS{}

type pipelineRunMUS struct{}

func (s pipelineRunMUS) Marshal(v PipelineRun, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Handle, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += RunStatusMUS.Marshal(v.Status, bs[n:])
	n += RunConfigMUS.Marshal(v.Config, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.StartedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CompletedAt, bs[n:])
	n += varint.Int.Marshal(v.RecordsProcessed, bs[n:])
	return n + slicepJpKOesUzDrECEUX2YzR8AΞΞ.Marshal(v.Errors, bs[n:])
}

func (s pipelineRunMUS) Unmarshal(bs []byte) (v PipelineRun, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Handle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = RunStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Config, n1, err = RunConfigMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StartedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CompletedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RecordsProcessed, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Errors, n1, err = slicepJpKOesUzDrECEUX2YzR8AΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s pipelineRunMUS) Size(v PipelineRun) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Handle)
	size += ord.String.Size(v.Name)
	size += RunStatusMUS.Size(v.Status)
	size += RunConfigMUS.Size(v.Config)
	size += raw.TimeUnixMicro.Size(v.StartedAt)
	size += raw.TimeUnixMicro.Size(v.CompletedAt)
	size += varint.Int.Size(v.RecordsProcessed)
	return size + slicepJpKOesUzDrECEUX2YzR8AΞΞ.Size(v.Errors)
}

func (s pipelineRunMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RunStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RunConfigMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicepJpKOesUzDrECEUX2YzR8AΞΞ.Skip(bs[n:])
	n += n1
	return
}

var HourlyPatternMUS = hourlyPatternMUS{}

type hourlyPatternMUS struct{}

func (s hourlyPatternMUS) Marshal(v HourlyPattern, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.TermId, bs[n:])
	n += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Marshal(v.HourlyAvg, bs[n:])
	n += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Marshal(v.DayOfWeekAvg, bs[n:])
	n += slice5C6mRBpsioΔQcP2UEp81TQΞΞ.Marshal(v.PeakHours, bs[n:])
	n += varint.Float64.Marshal(v.LateNightAvg, bs[n:])
	n += varint.Float64.Marshal(v.DaytimeAvg, bs[n:])
	n += varint.Float64.Marshal(v.AnxietyIndex, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.FetchedAt, bs[n:])
}

func (s hourlyPatternMUS) Unmarshal(bs []byte) (v HourlyPattern, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.TermId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.HourlyAvg, n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DayOfWeekAvg, n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PeakHours, n1, err = slice5C6mRBpsioΔQcP2UEp81TQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LateNightAvg, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DaytimeAvg, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AnxietyIndex, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FetchedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s hourlyPatternMUS) Size(v HourlyPattern) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.TermId)
	size += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Size(v.HourlyAvg)
	size += slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Size(v.DayOfWeekAvg)
	size += slice5C6mRBpsioΔQcP2UEp81TQΞΞ.Size(v.PeakHours)
	size += varint.Float64.Size(v.LateNightAvg)
	size += varint.Float64.Size(v.DaytimeAvg)
	size += varint.Float64.Size(v.AnxietyIndex)
	return size + raw.TimeUnixMicro.Size(v.FetchedAt)
}

func (s hourlyPatternMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicePtQRe1b6PclnGLtS8ps2ywΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice5C6mRBpsioΔQcP2UEp81TQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var TermQuestionMUS = termQuestionMUS{}

type termQuestionMUS struct{}

func (s termQuestionMUS) Marshal(v TermQuestion, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.SourceTermId, bs[n:])
	n += ord.String.Marshal(v.Question, bs[n:])
	n += ord.String.Marshal(v.Snippet, bs[n:])
	n += ord.String.Marshal(v.SourceTitle, bs[n:])
	n += ord.String.Marshal(v.SourceURL, bs[n:])
	n += QuestionSourceMUS.Marshal(v.SourceKind, bs[n:])
	n += varint.Int.Marshal(v.Rank, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.FetchedAt, bs[n:])
}

func (s termQuestionMUS) Unmarshal(bs []byte) (v TermQuestion, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SourceTermId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Question, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Snippet, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceTitle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceKind, n1, err = QuestionSourceMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Rank, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FetchedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s termQuestionMUS) Size(v TermQuestion) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.SourceTermId)
	size += ord.String.Size(v.Question)
	size += ord.String.Size(v.Snippet)
	size += ord.String.Size(v.SourceTitle)
	size += ord.String.Size(v.SourceURL)
	size += QuestionSourceMUS.Size(v.SourceKind)
	size += varint.Int.Size(v.Rank)
	return size + raw.TimeUnixMicro.Size(v.FetchedAt)
}

func (s termQuestionMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = QuestionSourceMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var RegionMUS = regionMUS{}

type regionMUS struct{}

func (s regionMUS) Marshal(v Region, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.GeoCode, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += GeoLevelMUS.Marshal(v.Level, bs[n:])
	n += varint.Float64.Marshal(v.Latitude, bs[n:])
	n += varint.Float64.Marshal(v.Longitude, bs[n:])
	n += varint.Int.Marshal(v.Population, bs[n:])
	n += varint.Float64.Marshal(v.Vulnerability, bs[n:])
	n += varint.Float64.Marshal(v.UninsuredRate, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s regionMUS) Unmarshal(bs []byte) (v Region, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.GeoCode, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Level, n1, err = GeoLevelMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Latitude, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Longitude, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Population, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vulnerability, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UninsuredRate, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s regionMUS) Size(v Region) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.GeoCode)
	size += ord.String.Size(v.Name)
	size += GeoLevelMUS.Size(v.Level)
	size += varint.Float64.Size(v.Latitude)
	size += varint.Float64.Size(v.Longitude)
	size += varint.Int.Size(v.Population)
	size += varint.Float64.Size(v.Vulnerability)
	size += varint.Float64.Size(v.UninsuredRate)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s regionMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = GeoLevelMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
