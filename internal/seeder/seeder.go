package seeder

import (
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/harmony-one/seedgen/crypto/hash"
)

var (
	// ErrInvalidRange is returned when the upper bound of a derivation is not
	// above its lower bound.
	ErrInvalidRange = errors.New("invalid seed range")

	// ErrInvalidAmount is returned for a negative derivation count.
	ErrInvalidAmount = errors.New("invalid seed amount")
)

//go:generate mockgen -destination mock_seeder/seeder.go github.com/harmony-one/seedgen/internal/seeder SeedValue,ValueIterator

var _ Seeder = RandSeed{}

// SeedValue is a read-only view of seed bytes as integers of different width.
// Narrower views are prefixes of the wider ones.
type SeedValue interface {
	AsBytes() []byte
	AsUint64() uint64
	AsUint128() Uint128
	AsUint256() *uint256.Int
}

// Seeder is a seed that can be expanded into further seed values.
type Seeder interface {
	SeedValue

	// SeedValues derives amount values in [min, max). A nil min is zero and a
	// nil max is 2^256. Calling it again with the same arguments yields the
	// same sequence.
	SeedValues(amount int, min, max *uint256.Int) (ValueIterator, error)
}

// ValueIterator walks a finite sequence of derived seed values.
type ValueIterator interface {
	// Next advances to the next value and reports whether there is one.
	Next() bool
	// Value returns the current value. Only valid after Next returned true.
	Value() SeedValue
	// Remaining returns how many values are left.
	Remaining() int
}

// SeedValues implements Seeder. Each value is
//
//	min + LE(keccak256(LE(seed + i))) mod (max - min)
//
// for i in [0, amount). Arguments are validated before anything is derived.
func (s RandSeed) SeedValues(amount int, min, max *uint256.Int) (ValueIterator, error) {
	return s.Iterator(amount, min, max)
}

// Iterator is SeedValues returning the concrete iterator type.
func (s RandSeed) Iterator(amount int, min, max *uint256.Int) (*SeedIterator, error) {
	if amount < 0 {
		return nil, errors.Wrapf(ErrInvalidAmount, "amount %d", amount)
	}
	it := &SeedIterator{
		amount: amount,
	}
	it.base.Set(s.AsUint256())
	if min != nil {
		it.min.Set(min)
	}

	switch {
	case max != nil:
		if !it.min.Lt(max) {
			return nil, errors.Wrapf(ErrInvalidRange, "min %v, max %v", it.min.Hex(), max.Hex())
		}
		it.width = new(uint256.Int).Sub(max, &it.min)
	case !it.min.IsZero():
		// 2^256 - min, which always fits.
		it.width = new(uint256.Int).Neg(&it.min)
	}
	return it, nil
}

// SeedIterator is the ValueIterator of RandSeed.
type SeedIterator struct {
	base  uint256.Int
	min   uint256.Int
	width *uint256.Int // nil for the full 256-bit range

	amount int
	index  int
	cur    RandSeed
}

// Next implements ValueIterator.
func (it *SeedIterator) Next() bool {
	if it.index >= it.amount {
		return false
	}
	it.cur = it.derive(it.index)
	it.index++
	return true
}

// Value implements ValueIterator.
func (it *SeedIterator) Value() SeedValue {
	return it.cur
}

// Seed returns the current value as a RandSeed.
func (it *SeedIterator) Seed() RandSeed {
	return it.cur
}

// Remaining implements ValueIterator.
func (it *SeedIterator) Remaining() int {
	return it.amount - it.index
}

func (it *SeedIterator) derive(i int) RandSeed {
	candidate := new(uint256.Int).Add(&it.base, uint256.NewInt(uint64(i)))
	input := FromUint256(candidate)
	digest := hash.Keccak256(input.seed[:])

	val := FromBytes(digest[:]).AsUint256()
	if it.width != nil {
		val.Mod(val, it.width)
		val.Add(val, &it.min)
	}
	return FromUint256(val)
}

// Collect drains it into a slice.
func Collect(it ValueIterator) []SeedValue {
	vals := make([]SeedValue, 0, it.Remaining())
	for it.Next() {
		vals = append(vals, it.Value())
	}
	return vals
}

// Derive is a shorthand for SeedValues followed by Collect.
func Derive(s Seeder, amount int, min, max *uint256.Int) ([]SeedValue, error) {
	it, err := s.SeedValues(amount, min, max)
	if err != nil {
		return nil, err
	}
	return Collect(it), nil
}
