package it

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jumpringpb "jumpring/internal/gen/api"
)

func TestSmoke_AddRemoveStats(t *testing.T) {
	// Build binary if needed
	binaryPath := "./jumpring"
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test. Build with: go build -o jumpring ./cmd/jumpring")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ring, err := StartRing(ctx, binaryPath, 61051, RingParams{
		Servers:    100,
		Duplicates: 4,
		Objects:    1000,
		Epsilon:    0.3,
		RingBits:   12,
		Seed:       7,
	})
	require.NoError(t, err, "Failed to start ring server")
	defer ring.Stop()

	client := ring.Client()

	// Baseline population from the initial load
	statsCtx, statsCancel := context.WithTimeout(ctx, 10*time.Second)
	stats, err := client.Stats(statsCtx, &jumpringpb.StatsRequest{})
	statsCancel()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), stats.LiveObjects)
	assert.Equal(t, uint64(100), stats.ServerCount)
	assert.Equal(t, uint64(13), stats.LoadCap)

	// Add
	addCtx, addCancel := context.WithTimeout(ctx, 10*time.Second)
	addResp, err := client.AddObject(addCtx, &jumpringpb.AddObjectRequest{})
	addCancel()
	require.NoError(t, err)
	assert.Greater(t, addResp.Probes, uint32(0))

	// Remove the object just added
	rmCtx, rmCancel := context.WithTimeout(ctx, 10*time.Second)
	rmResp, err := client.RemoveObject(rmCtx, &jumpringpb.RemoveObjectRequest{
		ObjectId: addResp.ObjectId,
	})
	rmCancel()
	require.NoError(t, err)
	assert.Equal(t, addResp.ServerId, rmResp.ServerId)

	// Population is back where it started
	statsCtx2, statsCancel2 := context.WithTimeout(ctx, 10*time.Second)
	stats2, err := client.Stats(statsCtx2, &jumpringpb.StatsRequest{})
	statsCancel2()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), stats2.LiveObjects)

	// Probe sampling leaves the ring untouched
	probeCtx, probeCancel := context.WithTimeout(ctx, 10*time.Second)
	sample, err := client.SampleProbes(probeCtx, &jumpringpb.SampleProbesRequest{})
	probeCancel()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sample.SlotsProbed, sample.ServersTried)
	assert.GreaterOrEqual(t, sample.ServersTried, uint32(1))
}
