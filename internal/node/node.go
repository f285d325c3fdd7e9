package node

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"jumpring/internal/config"
	"jumpring/internal/diag"
	jumpringpb "jumpring/internal/gen/api"
	"jumpring/internal/placement"
	"jumpring/internal/rebalance"
	"jumpring/internal/registry"
	"jumpring/internal/ring"
)

// defaultMaxProbes bounds served placements when the config leaves the
// probe budget unset.
const defaultMaxProbes = 1 << 16

// Node hosts one ring behind a gRPC endpoint. All ring state is
// mutated under a single mutex; every RPC observes a ring that
// satisfies the capacity and probe-history invariants.
type Node struct {
	listenAddr string
	cfg        config.Config
	grpcServer *grpc.Server

	mu      sync.Mutex
	table   *ring.Table
	servers *registry.ServerSet
	objects *registry.ObjectSet
	engine  *placement.Engine
	rebal   *rebalance.Rebalancer
	rng     *rand.Rand
}

// NewNode builds the ring from cfg, places the initial object
// population, and returns a node ready to serve.
func NewNode(listenAddr string, cfg config.Config) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	table, err := ring.Build(cfg.Servers, cfg.Duplicates, cfg.RingSize(), rng)
	if err != nil {
		return nil, fmt.Errorf("failed to build ring: %w", err)
	}

	servers, err := registry.NewServerSet(cfg.Servers, cfg.LoadCap())
	if err != nil {
		return nil, fmt.Errorf("failed to build server set: %w", err)
	}
	objects := registry.NewObjectSet()

	// An RPC placement must terminate even on a saturated ring.
	maxProbes := cfg.MaxProbes
	if maxProbes == 0 {
		maxProbes = defaultMaxProbes
	}
	engine := placement.NewEngine(table, servers, objects, rng, placement.MultiProbe, maxProbes)
	if err := engine.InitialLoad(context.Background(), cfg.Objects); err != nil {
		return nil, fmt.Errorf("initial load failed: %w", err)
	}

	n := &Node{
		listenAddr: listenAddr,
		cfg:        cfg,
		table:      table,
		servers:    servers,
		objects:    objects,
		engine:     engine,
		rebal:      rebalance.NewRebalancer(table, servers, objects, rng),
		rng:        rng,
	}

	log.Printf("[node] ring ready: %d servers x %d slots, %d objects, load cap %d",
		cfg.Servers, cfg.Duplicates, objects.Len(), cfg.LoadCap())

	return n, nil
}

// AddObject places one new object on the ring.
func (n *Node) AddObject(ctx context.Context) (placement.Placement, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.engine.AddObject(ctx)
}

// RemoveObject deletes a live object and refills its server if needed.
func (n *Node) RemoveObject(id uint64) (rebalance.Removal, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rebal.RemoveObject(id)
}

// RingStats is a point-in-time view of ring balance.
type RingStats struct {
	LoadVariance float64
	FractionFull float64
	LiveObjects  int
	ServerCount  int
	LoadCap      int
	UnderFilled  int
}

// Stats reports current balance figures.
func (n *Node) Stats() RingStats {
	n.mu.Lock()
	defer n.mu.Unlock()
	return RingStats{
		LoadVariance: diag.LoadVariance(n.servers),
		FractionFull: diag.FractionFull(n.servers),
		LiveObjects:  n.objects.Len(),
		ServerCount:  n.servers.Count(),
		LoadCap:      n.servers.LoadCap(),
		UnderFilled:  diag.UnderFilled(n.servers),
	}
}

// SampleProbes runs one hypothetical single-probe placement against
// the live ring without mutating it.
func (n *Node) SampleProbes() (diag.ProbeSample, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return diag.SampleProbes(n.table, n.servers, n.rng)
}

// Start starts the gRPC server and begins listening.
func (n *Node) Start() error {
	lis, err := net.Listen("tcp", n.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.listenAddr, err)
	}

	n.grpcServer = grpc.NewServer()
	jumpringpb.RegisterJumpRingServer(n.grpcServer, NewServer(n))

	// Enable gRPC reflection for grpcurl
	reflection.Register(n.grpcServer)

	log.Printf("[node] starting on %s", n.listenAddr)

	if err := n.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop gracefully stops the node.
func (n *Node) Stop() {
	if n.grpcServer != nil {
		log.Printf("[node] stopping")
		n.grpcServer.GracefulStop()
	}
}
