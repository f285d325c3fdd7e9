package node

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"jumpring/internal/diag"
	jumpringpb "jumpring/internal/gen/api"
	"jumpring/internal/placement"
	"jumpring/internal/registry"
)

// Server implements the JumpRing gRPC service.
type Server struct {
	jumpringpb.UnimplementedJumpRingServer
	node *Node
}

// NewServer creates a new gRPC server instance backed by node.
func NewServer(node *Node) *Server {
	return &Server{node: node}
}

// AddObject handles AddObject requests.
func (s *Server) AddObject(ctx context.Context, req *jumpringpb.AddObjectRequest) (*jumpringpb.AddObjectResponse, error) {
	p, err := s.node.AddObject(ctx)
	if err != nil {
		if errors.Is(err, placement.ErrSaturated) {
			return nil, status.Error(codes.ResourceExhausted, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	log.Printf("[node] AddObject: id=%d server=%d slot=%d probes=%d",
		p.ObjectID, p.Server, p.Slot, p.Probes)

	return &jumpringpb.AddObjectResponse{
		ObjectId: p.ObjectID,
		ServerId: uint64(p.Server),
		Slot:     uint64(p.Slot),
		Probes:   uint32(p.Probes),
	}, nil
}

// RemoveObject handles RemoveObject requests.
func (s *Server) RemoveObject(ctx context.Context, req *jumpringpb.RemoveObjectRequest) (*jumpringpb.RemoveObjectResponse, error) {
	rm, err := s.node.RemoveObject(req.ObjectId)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownObject) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	log.Printf("[node] RemoveObject: id=%d server=%d was_full=%t refilled=%t",
		req.ObjectId, rm.Server, rm.WasFull, rm.Refilled)

	return &jumpringpb.RemoveObjectResponse{
		WasFull:  rm.WasFull,
		Refilled: rm.Refilled,
		ServerId: uint64(rm.Server),
	}, nil
}

// Stats handles Stats requests.
func (s *Server) Stats(ctx context.Context, req *jumpringpb.StatsRequest) (*jumpringpb.StatsResponse, error) {
	st := s.node.Stats()
	return &jumpringpb.StatsResponse{
		LoadVariance: st.LoadVariance,
		FractionFull: st.FractionFull,
		LiveObjects:  uint64(st.LiveObjects),
		ServerCount:  uint64(st.ServerCount),
		LoadCap:      uint64(st.LoadCap),
		UnderFilled:  uint64(st.UnderFilled),
	}, nil
}

// SampleProbes handles SampleProbes requests.
func (s *Server) SampleProbes(ctx context.Context, req *jumpringpb.SampleProbesRequest) (*jumpringpb.SampleProbesResponse, error) {
	sample, err := s.node.SampleProbes()
	if err != nil {
		if errors.Is(err, diag.ErrAllFull) {
			return nil, status.Error(codes.FailedPrecondition, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &jumpringpb.SampleProbesResponse{
		ServersTried: uint32(sample.ServersTried),
		SlotsProbed:  uint32(sample.SlotsProbed),
	}, nil
}
