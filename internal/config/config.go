// Package config holds the construction parameters of a ring and the
// capacity math derived from them.
package config

import (
	"fmt"
	"math"
)

// Config describes one ring. All fields refer to the expected
// population: the load cap is fixed from Objects at construction and
// never recomputed as objects come and go.
type Config struct {
	// Servers is the number of unique servers.
	Servers int
	// Duplicates is how many ring slots each server owns.
	Duplicates int
	// Objects is the expected object population, placed at initial load.
	Objects int
	// Epsilon is the capacity slack: (1+Epsilon)*Objects/Servers,
	// rounded up, is the per-server load cap.
	Epsilon float64
	// RingBits sizes the slot table at 1<<RingBits, independent of
	// server and object counts so slot indices come straight from
	// hash bits.
	RingBits int
	// MaxProbes bounds slots examined per placement; 0 means unbounded.
	MaxProbes int
	// Seed feeds the pseudo-random source.
	Seed int64
}

// Default mirrors the canonical experiment setup: a thousand servers,
// ten thousand objects, 30% slack, a megaslot ring.
func Default() Config {
	return Config{
		Servers:    1000,
		Duplicates: 1,
		Objects:    10000,
		Epsilon:    0.3,
		RingBits:   20,
		MaxProbes:  0,
		Seed:       1,
	}
}

// RingSize returns the slot count.
func (c Config) RingSize() int { return 1 << c.RingBits }

// LoadCap returns the per-server object capacity.
func (c Config) LoadCap() int {
	return int(math.Ceil((1 + c.Epsilon) * float64(c.Objects) / float64(c.Servers)))
}

// Validate checks the construction constraints. Violations are fatal
// configuration errors; nothing downstream rechecks them.
func (c Config) Validate() error {
	if c.Servers <= 0 {
		return fmt.Errorf("servers must be positive, got %d", c.Servers)
	}
	if c.Duplicates <= 0 {
		return fmt.Errorf("duplicates must be positive, got %d", c.Duplicates)
	}
	if c.Objects <= 0 {
		return fmt.Errorf("objects must be positive, got %d", c.Objects)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be non-negative, got %v", c.Epsilon)
	}
	if c.RingBits < 1 || c.RingBits > 30 {
		return fmt.Errorf("ring bits must be in [1,30], got %d", c.RingBits)
	}
	if c.MaxProbes < 0 {
		return fmt.Errorf("max probes must be non-negative, got %d", c.MaxProbes)
	}
	if c.Servers*c.Duplicates > c.RingSize() {
		return fmt.Errorf("ring of %d slots cannot hold %d servers with %d slots each",
			c.RingSize(), c.Servers, c.Duplicates)
	}
	if c.LoadCap() < 1 {
		return fmt.Errorf("derived load cap %d is below 1", c.LoadCap())
	}
	return nil
}
