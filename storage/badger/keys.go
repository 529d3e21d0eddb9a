package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/supertruth/violet/core"
)

// Key prefixes for different data types
const (
	termRecordPrefix     = "termrec"
	clusterRecordPrefix  = "clurec"
	trendRecordPrefix    = "trdrec"
	trendTermPrefix      = "trdterm"
	trendIDSeq           = "trdrecseq"
	signalRecordPrefix   = "sigrec"
	signalTermPrefix     = "sigterm"
	signalIDSeq          = "sigrecseq"
	runRecordPrefix      = "runrec"
	runIDSeq             = "runrecseq"
	regionRecordPrefix   = "georec"
	hourlyRecordPrefix   = "hourec"
	questionRecordPrefix = "querec"
	questionTermPrefix   = "queterm"
	questionIDSeq        = "querecseq"
)

// makeTermKey generates a key for a term by ID.
func makeTermKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", termRecordPrefix, id))
}

// makeClusterKey generates a key for a cluster by ID.
func makeClusterKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", clusterRecordPrefix, id))
}

// makeTrendKey generates a key for a trend observation by ID.
func makeTrendKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", trendRecordPrefix, id))
}

// makeTrendTermKey generates a composite key for the per-term trend index.
// Format: prefix:termID:level:date:id
func makeTrendTermKey(termID core.ID, level core.GeoLevel, date time.Time, id core.ID) []byte {
	prefix := trendTermPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 32 // 8 bytes each for termID, level, date, id
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(termID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(level))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(date.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialTrendTermKey generates a partial key for per-term trend scans.
// Format: prefix:termID:level
func makePartialTrendTermKey(termID core.ID, level core.GeoLevel) []byte {
	prefix := trendTermPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for termID + 8 bytes for level
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(termID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(level))
	return buf
}

// makePartialTrendDateKey generates a partial key for date range scans
// within a term and geo level.
// Format: prefix:termID:level:date
func makePartialTrendDateKey(termID core.ID, level core.GeoLevel, date time.Time) []byte {
	prefix := trendTermPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 24 // 8 bytes each for termID, level, date
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(termID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(level))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(date.UnixMicro()))
	return buf
}

// makeSignalKey generates a key for a related signal by ID.
func makeSignalKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", signalRecordPrefix, id))
}

// makeSignalTermKey generates a composite key for the per-term signal index.
// Format: prefix:termID:id
func makeSignalTermKey(termID, id core.ID) []byte {
	prefix := signalTermPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for termID + 8 bytes for id
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(termID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialSignalTermKey generates a partial key for per-term signal scans.
// Format: prefix:termID
func makePartialSignalTermKey(termID core.ID) []byte {
	prefix := signalTermPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for termID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(termID))
	return buf
}

// makeRunKey generates a key for a pipeline run by ID.
func makeRunKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", runRecordPrefix, id))
}

// makeRegionKey generates a key for a region by its content-based ID.
func makeRegionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", regionRecordPrefix, id))
}

// makeHourlyKey generates a key for a term's hourly pattern. Pattern IDs
// equal the owning term's ID, so the key is per-term unique.
func makeHourlyKey(termID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", hourlyRecordPrefix, termID))
}

// makeQuestionKey generates a key for a term question by ID.
func makeQuestionKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", questionRecordPrefix, id))
}

// makeQuestionTermKey generates a composite key for the per-term question index.
// Rank precedes ID so scans come back in rank order.
// Format: prefix:termID:rank:id
func makeQuestionTermKey(termID core.ID, rank int, id core.ID) []byte {
	prefix := questionTermPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 24 // 8 bytes each for termID, rank, id
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(termID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(rank))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialQuestionTermKey generates a partial key for per-term question scans.
// Format: prefix:termID
func makePartialQuestionTermKey(termID core.ID) []byte {
	prefix := questionTermPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for termID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(termID))
	return buf
}
