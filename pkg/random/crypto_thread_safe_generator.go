package random

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

func mustCryptoRandRead(p []byte) (int, error) {
	n, err := crypto_rand.Read(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to obtain random data: %s", err))
	}
	return n, nil
}

// cryptoSource is a stateless rand.Source backed by the operating
// system's entropy pool. As it carries no state, a rand.Rand wrapping
// it may be shared between goroutines.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	mustCryptoRandRead(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

var _ rand.Source = cryptoSource{}

type cryptoThreadSafeGenerator struct {
	*rand.Rand
}

func (cryptoThreadSafeGenerator) IsThreadSafe() {}

func (cryptoThreadSafeGenerator) Read(p []byte) (int, error) {
	return mustCryptoRandRead(p)
}

// CryptoThreadSafeGenerator is an instance of ThreadSafeGenerator that
// draws all of its values from crypto/rand. Generated values carry no
// stronger guarantees than that; it is mainly used to seed other
// generators.
var CryptoThreadSafeGenerator ThreadSafeGenerator = cryptoThreadSafeGenerator{
	Rand: rand.New(cryptoSource{}),
}
