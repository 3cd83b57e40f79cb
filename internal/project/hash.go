package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest — sha256 содержимого файла; ключ кеша.
type Digest [32]byte

func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest was never computed.
func (d Digest) IsZero() bool {
	return d == Digest{}
}
