package it

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	jumpringpb "jumpring/internal/gen/api"
)

// Ring is a ring server process under test.
type Ring struct {
	Addr    string
	cmd     *exec.Cmd
	logFile *os.File
	conn    *grpc.ClientConn
	client  jumpringpb.JumpRingClient
}

// RingParams are the flags passed to the spawned server.
type RingParams struct {
	Servers    int
	Duplicates int
	Objects    int
	Epsilon    float64
	RingBits   int
	Seed       int64
}

// StartRing spawns binaryPath in serve mode on port and connects a
// gRPC client to it.
func StartRing(ctx context.Context, binaryPath string, port int, params RingParams) (*Ring, error) {
	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, fmt.Sprintf("ring-%d.log", port))
	logFile, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	cmd := exec.CommandContext(ctx, binaryPath,
		"--listen", fmt.Sprintf(":%d", port),
		"--servers", fmt.Sprintf("%d", params.Servers),
		"--duplicates", fmt.Sprintf("%d", params.Duplicates),
		"--objects", fmt.Sprintf("%d", params.Objects),
		"--epsilon", fmt.Sprintf("%g", params.Epsilon),
		"--ring-bits", fmt.Sprintf("%d", params.RingBits),
		"--seed", fmt.Sprintf("%d", params.Seed),
	)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to start ring server: %w", err)
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		cmd.Process.Kill()
		logFile.Close()
		return nil, fmt.Errorf("failed to dial ring server: %w", err)
	}

	r := &Ring{
		Addr:    addr,
		cmd:     cmd,
		logFile: logFile,
		conn:    conn,
		client:  jumpringpb.NewJumpRingClient(conn),
	}

	if err := r.waitForReady(ctx, 10*time.Second); err != nil {
		r.Stop()
		return nil, fmt.Errorf("ring server failed to become ready: %w", err)
	}

	return r, nil
}

// waitForReady polls Stats until the server answers.
func (r *Ring) waitForReady(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for %s", r.Addr)
			}

			statsCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			_, err := r.client.Stats(statsCtx, &jumpringpb.StatsRequest{})
			cancel()

			if err == nil {
				return nil
			}
		}
	}
}

// Stop kills the server process and closes the client connection.
func (r *Ring) Stop() {
	if r.conn != nil {
		r.conn.Close()
	}
	if r.cmd != nil && r.cmd.Process != nil {
		r.cmd.Process.Kill()
		r.cmd.Wait()
	}
	if r.logFile != nil {
		r.logFile.Close()
	}
}

// Client returns the JumpRing client for the server.
func (r *Ring) Client() jumpringpb.JumpRingClient {
	return r.client
}
