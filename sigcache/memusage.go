package sigcache

const (
	wordSize = 8 // 64-bit platforms

	// entryUsage approximates the dynamic footprint of one fingerprint
	// resident in a shard map: the key itself plus the map's per-entry
	// overhead (tophash byte and amortized bucket/overflow pointers).
	entryUsage = FingerprintSize + 3*wordSize

	// shardUsage approximates the footprint of one empty shard map header.
	shardUsage = 6 * wordSize
)

// dynamicUsage estimates the heap footprint, in bytes, of the shard set when
// it holds n fingerprints. It is an estimate the eviction loop works against,
// not a measurement.
func dynamicUsage(n int) int64 {
	return numShards*shardUsage + int64(n)*entryUsage
}

// capacityFor returns how many fingerprints fit under a byte bound.
func capacityFor(maxBytes int64) int64 {
	avail := maxBytes - numShards*shardUsage
	if avail <= 0 {
		return 0
	}
	return avail / entryUsage
}

// CacheSizeBytes translates the configured cache size in mebibytes to the
// byte bound NewCache expects. A non-positive value disables population.
func CacheSizeBytes(mib int64) int64 {
	if mib <= 0 {
		return 0
	}
	return mib << 20
}
