package homeledger

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"
)

// NewID returns a fresh record identifier: the unix-millisecond timestamp in
// base 36 followed by 64 random bits in base 36. Two calls in the same
// millisecond still differ, the random part alone carries uniqueness then.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails when the platform randomness source is
		// broken; there is no sensible fallback for identifiers.
		panic("homeledger: randomness source unavailable: " + err.Error())
	}
	return ts + strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
}
