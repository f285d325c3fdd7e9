// Package hashkit derives wide digests for multi-probe placement.
package hashkit

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum128 returns a 128-bit digest of (key, salt) as two 64-bit halves.
// The halves come from two domain-separated xxhash evaluations so the
// four 32-bit lanes callers carve out of them are independent.
func Sum128(key, salt uint64) (hi, lo uint64) {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:8], key)
	binary.LittleEndian.PutUint64(buf[8:16], salt)
	buf[16] = 0
	lo = xxhash.Sum64(buf[:])
	buf[16] = 1
	hi = xxhash.Sum64(buf[:])
	return hi, lo
}
