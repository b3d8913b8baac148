package random

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
	"sync"
)

// NewCryptoSource возвращает источник на основе криптографически стойкого генератора.
func NewCryptoSource() mrand.Source {
	return cryptoSource{}
}

type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewSeededSource возвращает детерминированный источник PCG.
// Источник защищен мьютексом и может использоваться из нескольких горутин.
func NewSeededSource(seed uint64) mrand.Source {
	return &lockedSource{src: mrand.NewPCG(seed, seed)}
}

type lockedSource struct {
	mu  sync.Mutex
	src mrand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	v := s.src.Uint64()
	s.mu.Unlock()
	return v
}
