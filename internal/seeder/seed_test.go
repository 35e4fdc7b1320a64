package seeder

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		input []byte
		exp   [SeedLength]byte
	}{
		{
			input: nil,
			exp:   filled(nil),
		},
		{
			input: []byte{},
			exp:   filled(nil),
		},
		{
			input: []byte{0, 0, 0},
			exp:   filled([]byte{0, 0, 0}),
		},
		{
			input: bytes.Repeat([]byte{0xab}, 31),
			exp:   filled(bytes.Repeat([]byte{0xab}, 31)),
		},
		{
			input: bytes.Repeat([]byte{0xab}, 32),
			exp:   filled(bytes.Repeat([]byte{0xab}, 32)),
		},
		{
			input: append(bytes.Repeat([]byte{0xab}, 32), 0xcd, 0xef),
			exp:   filled(bytes.Repeat([]byte{0xab}, 32)),
		},
	}
	for i, test := range tests {
		s := FromBytes(test.input)
		assert.Equal(t, test.exp, s.Bytes32(), "test %d", i)
	}
}

func TestFromBytes_Padding(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n <= 64; n++ {
		b := make([]byte, n)
		r.Read(b)
		s := FromBytes(b).AsBytes()

		require.Len(t, s, SeedLength)
		if n >= SeedLength {
			require.Equal(t, b[:SeedLength], s, "len %d", n)
			continue
		}
		require.Equal(t, b, s[:n], "len %d", n)
		for _, pad := range s[n:] {
			require.Equal(t, byte(0x01), pad, "len %d", n)
		}
	}
}

func TestFromBytes_DoesNotAlias(t *testing.T) {
	b := []byte{1, 2, 3}
	s := FromBytes(b)
	b[0] = 9
	require.Equal(t, byte(1), s.AsBytes()[0])

	out := s.AsBytes()
	out[0] = 9
	require.Equal(t, byte(1), s.AsBytes()[0])
}

func TestFromString(t *testing.T) {
	s := FromString("test")

	require.Equal(t, "0x7465737401010101010101010101010101010101010101010101010101010101", s.String())
	require.Equal(t, uint64(0x0101010174736574), s.AsUint64())
	require.Equal(t, Uint128{Hi: 0x0101010101010101, Lo: 0x0101010174736574}, s.AsUint128())

	for _, str := range []string{"", "test", "ünïcødé", "a string that is definitely longer than thirty two bytes"} {
		require.Equal(t, FromBytes([]byte(str)), FromString(str), str)
	}
}

func TestFromUint256(t *testing.T) {
	tests := []*uint256.Int{
		uint256.NewInt(0),
		uint256.NewInt(1),
		uint256.NewInt(0xdeadbeef),
		new(uint256.Int).Lsh(uint256.NewInt(1), 200),
		new(uint256.Int).SetAllOne(),
	}
	for i, x := range tests {
		s := FromUint256(x)
		require.Equal(t, x, s.AsUint256(), "test %d", i)
		require.Equal(t, x.Uint64(), s.AsUint64(), "test %d", i)
	}

	one := FromUint256(uint256.NewInt(1)).AsBytes()
	require.Equal(t, byte(1), one[0])
	require.Equal(t, make([]byte, SeedLength-1), one[1:])

	require.Equal(t, RandSeed{}, FromUint256(nil))
}

func TestFromUint256_RoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i != 100; i++ {
		x := &uint256.Int{r.Uint64(), r.Uint64(), r.Uint64(), r.Uint64()}
		require.Equal(t, x, FromUint256(x).AsUint256())
	}
}

func TestFromHex(t *testing.T) {
	s, err := FromHex("0x74657374")
	require.NoError(t, err)
	require.Equal(t, FromString("test"), s)

	s, err = FromHex("74657374")
	require.NoError(t, err)
	require.Equal(t, FromString("test"), s)

	s, err = FromHex("")
	require.NoError(t, err)
	require.Equal(t, FromBytes(nil), s)

	_, err = FromHex("0x123")
	require.Error(t, err)
	_, err = FromHex("zz")
	require.Error(t, err)
}

func TestViewsConsistent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i != 50; i++ {
		b := make([]byte, SeedLength)
		r.Read(b)
		s := FromBytes(b)

		u256 := s.AsUint256()
		u128 := s.AsUint128()
		require.Equal(t, u256[0], s.AsUint64())
		require.Equal(t, u256[0], u128.Lo)
		require.Equal(t, u256[1], u128.Hi)

		mask128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
		require.Equal(t, 0, new(big.Int).And(u256.ToBig(), mask128).Cmp(u128.Big()))
	}
}

func TestNewRandSeed(t *testing.T) {
	a, b := NewRandSeed(), NewRandSeed()
	require.NotEqual(t, RandSeed{}, a)
	require.NotEqual(t, a, b)
}

func TestTextMarshal(t *testing.T) {
	s := FromString("test")
	text, err := s.MarshalText()
	require.NoError(t, err)

	var got RandSeed
	require.NoError(t, got.UnmarshalText(text))
	require.Equal(t, s, got)

	require.Error(t, got.UnmarshalText([]byte("0x7465")))
	require.Error(t, got.UnmarshalText([]byte("7465737401010101010101010101010101010101010101010101010101010101")))
}

func TestUint128(t *testing.T) {
	u := Uint128{Hi: 1, Lo: 2}
	require.Equal(t, "18446744073709551618", u.String())
	require.Equal(t, "0", Uint128{}.String())
	require.Equal(t, "340282366920938463463374607431768211455", Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}.String())
}

func filled(prefix []byte) [SeedLength]byte {
	var b [SeedLength]byte
	n := copy(b[:], prefix)
	for i := n; i < SeedLength; i++ {
		b[i] = 0x01
	}
	return b
}
