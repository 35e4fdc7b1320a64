// Package seeder expands a fixed 32-byte seed into reproducible streams of
// bounded 256-bit values, for test data and fuzz inputs. It is not a source
// of secure randomness: the same seed always yields the same values.
package seeder

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

const (
	// SeedLength is the byte length of a seed.
	SeedLength = 32

	// padByte fills the tail of seeds built from short inputs, so that an
	// empty input never yields the all-zero seed. Changing it changes every
	// derived sequence.
	padByte = 0x01
)

// RandSeed is a 32-byte seed. Interpreted as an integer it is little-endian.
// The zero value is a valid (all-zero) seed.
type RandSeed struct {
	seed [SeedLength]byte
}

// NewRandSeed returns a seed drawn from the system randomness source.
// NewRandSeed panics if the source cannot be read.
func NewRandSeed() RandSeed {
	var s RandSeed
	if _, err := rand.Read(s.seed[:]); err != nil {
		panic(errors.Wrap(err, "failed to read seed randomness"))
	}
	return s
}

// FromBytes builds a seed from b. Inputs longer than 32 bytes are truncated,
// shorter inputs are right-padded with 0x01.
func FromBytes(b []byte) RandSeed {
	var s RandSeed
	n := copy(s.seed[:], b)
	for i := n; i < SeedLength; i++ {
		s.seed[i] = padByte
	}
	return s
}

// FromString builds a seed from the UTF-8 bytes of str.
func FromString(str string) RandSeed {
	return FromBytes([]byte(str))
}

// FromUint256 encodes x as a 32-byte little-endian seed. A nil x is zero.
func FromUint256(x *uint256.Int) RandSeed {
	var s RandSeed
	if x == nil {
		return s
	}
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(s.seed[8*i:], x[i])
	}
	return s
}

// FromHex decodes a hex string, with or without 0x prefix, and builds a seed
// from the decoded bytes the same way FromBytes does.
func FromHex(str string) (RandSeed, error) {
	if !strings.HasPrefix(str, "0x") && !strings.HasPrefix(str, "0X") {
		str = "0x" + str
	}
	b, err := hexutil.Decode(str)
	if err != nil {
		return RandSeed{}, errors.Wrapf(err, "invalid seed hex %q", str)
	}
	return FromBytes(b), nil
}

// AsBytes returns a copy of the raw seed bytes.
func (s RandSeed) AsBytes() []byte {
	b := make([]byte, SeedLength)
	copy(b, s.seed[:])
	return b
}

// Bytes32 returns the seed as an array.
func (s RandSeed) Bytes32() [SeedLength]byte {
	return s.seed
}

// AsUint64 reads bytes 0..8 as a little-endian uint64.
func (s RandSeed) AsUint64() uint64 {
	return binary.LittleEndian.Uint64(s.seed[0:8])
}

// AsUint128 reads bytes 0..16 as a little-endian 128-bit integer.
func (s RandSeed) AsUint128() Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(s.seed[0:8]),
		Hi: binary.LittleEndian.Uint64(s.seed[8:16]),
	}
}

// AsUint256 reads all 32 bytes as a little-endian 256-bit integer.
func (s RandSeed) AsUint256() *uint256.Int {
	z := new(uint256.Int)
	for i := 0; i < 4; i++ {
		z[i] = binary.LittleEndian.Uint64(s.seed[8*i:])
	}
	return z
}

// String returns the raw seed bytes in 0x-prefixed hex.
func (s RandSeed) String() string {
	return hexutil.Encode(s.seed[:])
}

// MarshalText implements encoding.TextMarshaler.
func (s RandSeed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only full 32-byte hex
// strings are accepted, so that a marshalled seed round-trips exactly.
func (s *RandSeed) UnmarshalText(input []byte) error {
	b, err := hexutil.Decode(string(input))
	if err != nil {
		return errors.Wrap(err, "invalid seed hex")
	}
	if len(b) != SeedLength {
		return errors.Errorf("invalid seed length %d, want %d", len(b), SeedLength)
	}
	copy(s.seed[:], b)
	return nil
}

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Big returns the value as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String returns the value in decimal.
func (u Uint128) String() string {
	return u.Big().String()
}
