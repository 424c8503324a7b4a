package rngbench

// Mix64 is the 64 bit finalizer of MurmurHash3 (fmix64).
// The benchmark driver applies it to every generated value to simulate downstream work.
func Mix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}
