package utils

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Has0xPrefix reports whether str begins with 0x or 0X.
func Has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// IsHex validates whether each byte is valid hexadecimal string.
// An optional 0x prefix is allowed.
func IsHex(str string) bool {
	if Has0xPrefix(str) {
		str = str[2:]
	}
	if len(str)%2 != 0 {
		return false
	}
	for _, c := range []byte(str) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

// isHexCharacter returns bool of c being a valid hexadecimal.
func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// ParseUint256 parses a decimal or 0x-prefixed hexadecimal unsigned integer
// that must fit in 256 bits.
func ParseUint256(str string) (*uint256.Int, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil, errors.New("empty integer string")
	}
	b, ok := new(big.Int).SetString(str, 0)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", str)
	}
	if b.Sign() < 0 {
		return nil, errors.Errorf("negative integer %q", str)
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return nil, errors.Errorf("integer %q overflows 256 bits", str)
	}
	return u, nil
}
