package config

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Servers:    4,
		Duplicates: 2,
		Objects:    8,
		Epsilon:    0,
		RingBits:   4,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "default", mutate: func(c *Config) { *c = Default() }},
		{name: "zero servers", mutate: func(c *Config) { c.Servers = 0 }, wantErr: true},
		{name: "zero duplicates", mutate: func(c *Config) { c.Duplicates = 0 }, wantErr: true},
		{name: "zero objects", mutate: func(c *Config) { c.Objects = 0 }, wantErr: true},
		{name: "negative epsilon", mutate: func(c *Config) { c.Epsilon = -0.5 }, wantErr: true},
		{name: "zero ring bits", mutate: func(c *Config) { c.RingBits = 0 }, wantErr: true},
		{name: "oversized ring bits", mutate: func(c *Config) { c.RingBits = 31 }, wantErr: true},
		{name: "negative max probes", mutate: func(c *Config) { c.MaxProbes = -1 }, wantErr: true},
		{name: "ring too small", mutate: func(c *Config) { c.RingBits = 2 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_LoadCap(t *testing.T) {
	tests := []struct {
		name    string
		servers int
		objects int
		epsilon float64
		want    int
	}{
		{name: "canonical", servers: 1000, objects: 10000, epsilon: 0.3, want: 13},
		{name: "zero slack exact", servers: 4, objects: 8, epsilon: 0, want: 2},
		{name: "rounds up", servers: 3, objects: 10, epsilon: 0, want: 4},
		{name: "slack rounds up", servers: 4, objects: 10, epsilon: 0.1, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Servers: tt.servers, Objects: tt.objects, Epsilon: tt.epsilon}
			if got := cfg.LoadCap(); got != tt.want {
				t.Errorf("LoadCap() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfig_RingSize(t *testing.T) {
	cfg := Config{RingBits: 20}
	if got := cfg.RingSize(); got != 1<<20 {
		t.Errorf("RingSize() = %d, want %d", got, 1<<20)
	}
}
