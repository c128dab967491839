package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Source supplies uniformly distributed floats in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

// Float64 draws from the process-wide generator, which is safe for concurrent use.
func (globalSource) Float64() float64 {
	return rand.Float64()
}

// NewSeededSource returns a deterministic source. It must not be shared
// between goroutines.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed draws a high-entropy seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Option configures a dice at construction.
type Option func(cfg *config)

type config struct {
	source Source
}

func newConfig(options []Option) config {
	cfg := config{source: globalSource{}} // Default values
	for _, option := range options {
		option(&cfg)
	}
	return cfg
}

// WithSource makes the dice draw from src instead of the process-wide generator.
func WithSource(src Source) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.source = src
		}
	}
}

// WithSeed gives the dice its own generator seeded with seed, so that a game
// session can be replayed and does not interfere with other sessions.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.source = NewSeededSource(seed)
	}
}
