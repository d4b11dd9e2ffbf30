package sim

import (
	"encoding/binary"
	"hash/fnv"
)

// Region and purpose labels for sub-stream derivation.
const (
	regionFlorida = "florida"
	regionGulf    = "gulf"

	streamCounts = "counts"
	streamLosses = "losses"
)

// deriveSeed deterministically derives a sub-stream seed from a region label,
// a stream purpose, and a global simulated-year index.
//
// Hash-based derivation keeps streams order-independent: the draws for any
// (region, purpose, year) do not depend on which other streams have been
// consumed, so neither batch partitioning nor scheduling order can change the
// sampled data. The derived value is combined with the run's top-level seed in
// the PCG state (see EventSampler).
func deriveSeed(region, purpose string, year int64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(region))
	h.Write([]byte{':'})
	h.Write([]byte(purpose))
	h.Write([]byte{':'})
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(year))
	h.Write(buf[:])
	return h.Sum64()
}
