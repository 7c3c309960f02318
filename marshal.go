package pcg32

import (
	"encoding"
	"encoding/binary"
	"errors"
)

// statePrefix marks marshaled Generator state. The full encoding is the
// prefix followed by the state and increment words, big-endian.
const (
	statePrefix = "pcg32:"
	stateLen    = len(statePrefix) + 16
)

// ErrInvalidStateEncoding is returned by UnmarshalBinary if the input is
// not a marshaled Generator state.
var ErrInvalidStateEncoding = errors.New("invalid pcg32 state encoding")

var (
	_ encoding.BinaryMarshaler   = Generator{}
	_ encoding.BinaryUnmarshaler = (*Generator)(nil)
)

// MarshalBinary implements encoding.BinaryMarshaler. The returned bytes
// capture the Generator completely: unmarshaling them yields a Generator
// that continues the sequence exactly where this one stands.
func (g Generator) MarshalBinary() ([]byte, error) {
	b := make([]byte, stateLen)
	copy(b, statePrefix)
	binary.BigEndian.PutUint64(b[len(statePrefix):], g.state)
	binary.BigEndian.PutUint64(b[len(statePrefix)+8:], g.inc)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, restoring a
// Generator marshaled with MarshalBinary. Data of the wrong length or
// without the state prefix is rejected with ErrInvalidStateEncoding and
// the receiver is left unchanged.
func (g *Generator) UnmarshalBinary(data []byte) error {
	if len(data) != stateLen || string(data[:len(statePrefix)]) != statePrefix {
		return ErrInvalidStateEncoding
	}
	g.state = binary.BigEndian.Uint64(data[len(statePrefix):])
	g.inc = binary.BigEndian.Uint64(data[len(statePrefix)+8:])
	return nil
}
