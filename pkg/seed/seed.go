// Package seed derives generator seed material from system entropy or
// from human-readable labels.
package seed

import (
	cr "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/sot-tech/pcg32"
)

// labelStreamSeed keys the stream hash in FromLabel so a label's
// stream word differs from its state word.
const labelStreamSeed = 0x9e3779b97f4a7c15

// CryptoSource draws 64-bit words from crypto/rand source or
// from current time, if crypto random error occurred.
type CryptoSource struct{}

var _ pcg32.Source = CryptoSource{}

// Uint64 returns the next entropy word.
func (CryptoSource) Uint64() (out uint64) {
	r := make([]byte, 8)
	if _, err := cr.Read(r); err == nil {
		out = binary.BigEndian.Uint64(r)
	} else {
		out = uint64(time.Now().UnixNano())
	}
	return
}

// Words returns a pair of entropy words for pcg32.FromSeed.
func Words() (seed0, seed1 uint64) {
	var src CryptoSource
	return src.Uint64(), src.Uint64()
}

// FromLabel maps a human-readable label to a deterministic
// (state, stream) seed pair for pcg32.FromSeed.
func FromLabel(label string) (state, stream uint64) {
	state = xxhash.Sum64String(label)
	h := xxhash.NewWithSeed(labelStreamSeed)
	h.WriteString(label)
	stream = h.Sum64()
	return
}
