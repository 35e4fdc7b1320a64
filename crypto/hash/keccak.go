package hash

import (
	"hash"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

var hasherPool = sync.Pool{
	New: func() interface{} {
		return sha3.NewLegacyKeccak256()
	},
}

// Keccak256 hashes the concatenation of data with legacy Keccak-256.
func Keccak256(data ...[]byte) (h common.Hash) {
	hw := hasherPool.Get().(hash.Hash)
	defer hasherPool.Put(hw)
	hw.Reset()

	for _, b := range data {
		hw.Write(b)
	}
	hw.Sum(h[:0])
	return h
}
