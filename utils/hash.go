package utils

import "hash/fnv"

// FingerprintString returns the fnv-1a hash of a string.
func FingerprintString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// Mix64 combines two fingerprints into one. The statement cache mixes a
// per-handle fingerprint (dialect and prefix) into each query fingerprint,
// so handles sharing a cache cannot collide on identical SQL.
func Mix64(a, b uint64) uint64 {
	h := fnv.New64a()
	h.Write(u64ToBytes(a))
	h.Write(u64ToBytes(b))
	return h.Sum64()
}

func u64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}
