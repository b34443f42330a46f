// Package service exposes hosted agents over gRPC. Each agent is keyed by
// an ID and owns its own cycle lock, so independent agents run concurrently
// while calls against one agent are serialized.
package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/FrancescoBalzan/pymdp/gen/agentpb"
	"github.com/FrancescoBalzan/pymdp/internal/agent"
	"github.com/FrancescoBalzan/pymdp/internal/inference"
	"github.com/FrancescoBalzan/pymdp/internal/model"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
	"github.com/FrancescoBalzan/pymdp/internal/selector"
)

// #region server

type session struct {
	mu sync.Mutex
	ag *agent.Agent
}

// AgentServer implements pb.AgentServiceServer over an in-memory
// registry of agents.
type AgentServer struct {
	pb.UnimplementedAgentServiceServer

	mu     sync.Mutex
	agents map[string]*session
}

// NewAgentServer returns an empty agent registry.
func NewAgentServer() *AgentServer {
	return &AgentServer{agents: make(map[string]*session)}
}

func (s *AgentServer) lookup(agentID string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.agents[agentID]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "agent %q not found", agentID)
	}
	return sess, nil
}

// rpcError maps domain errors onto gRPC status codes. Phase violations are
// failed preconditions so clients can distinguish them from bad inputs.
func rpcError(err error) error {
	var obsErr *agent.InvalidObservationError
	if errors.As(err, &obsErr) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	var phaseErr *agent.InvalidStateTransitionError
	if errors.As(err, &phaseErr) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// #endregion server

// #region create

// CreateAgent builds a model and agent from the request and registers it.
func (s *AgentServer) CreateAgent(_ context.Context, req *pb.CreateAgentRequest) (*pb.CreateAgentResponse, error) {
	if req.Model == nil {
		return nil, status.Error(codes.InvalidArgument, "model is required")
	}
	spec, err := specFromProto(req.Model)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "model: %v", err)
	}
	m, err := model.New(spec)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "model: %v", err)
	}
	ag, err := agent.New(configFromProto(m, req.Config))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "agent config: %v", err)
	}

	id := req.AgentId
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.agents[id]; exists {
		return nil, status.Errorf(codes.AlreadyExists, "agent %q already exists", id)
	}
	s.agents[id] = &session{ag: ag}
	return &pb.CreateAgentResponse{AgentId: id}, nil
}

func specFromProto(pm *pb.ModelSpec) (model.Spec, error) {
	spec := model.Spec{}
	for _, t := range pm.A {
		tensor, err := numeric.NewTensor(toInts(t.Shape), append([]float64(nil), t.Data...))
		if err != nil {
			return model.Spec{}, err
		}
		spec.A = append(spec.A, tensor)
	}
	for _, t := range pm.B {
		tensor, err := numeric.NewTensor(toInts(t.Shape), append([]float64(nil), t.Data...))
		if err != nil {
			return model.Spec{}, err
		}
		spec.B = append(spec.B, tensor)
	}
	for _, v := range pm.C {
		spec.C = append(spec.C, append([]float64(nil), v.Values...))
	}
	for _, v := range pm.D {
		spec.D = append(spec.D, append([]float64(nil), v.Values...))
	}
	spec.Controllable = toInts(pm.Controllable)
	return spec, nil
}

func configFromProto(m *model.GenerativeModel, pc *pb.AgentConfig) agent.Config {
	cfg := agent.Config{Model: m, Horizon: 1}
	if pc == nil {
		return cfg
	}
	if pc.Horizon > 0 {
		cfg.Horizon = int(pc.Horizon)
	}
	inf := inference.DefaultConfig()
	if pc.MaxIterations > 0 {
		inf.MaxIterations = int(pc.MaxIterations)
	}
	if pc.Tolerance > 0 {
		inf.Tolerance = pc.Tolerance
	}
	cfg.Inference = inf
	sel := selector.DefaultConfig()
	if pc.Precision > 0 {
		sel.Precision = pc.Precision
	}
	sel.Deterministic = pc.Deterministic
	cfg.Selection = sel
	cfg.Seed = pc.Seed
	return cfg
}

func toInts(v []int32) []int {
	if v == nil {
		return nil
	}
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}

// #endregion create

// #region cycle

// InferStates folds an observation into the named agent's belief.
func (s *AgentServer) InferStates(_ context.Context, req *pb.InferStatesRequest) (*pb.InferStatesResponse, error) {
	sess, err := s.lookup(req.AgentId)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	beliefs, err := sess.ag.InferStates(toInts(req.Observation))
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.InferStatesResponse{
		Beliefs: vectorsToProto(beliefs),
		Step:    int32(sess.ag.Step()),
	}, nil
}

// InferPolicies scores candidate policies for the named agent.
func (s *AgentServer) InferPolicies(_ context.Context, req *pb.InferPoliciesRequest) (*pb.InferPoliciesResponse, error) {
	sess, err := s.lookup(req.AgentId)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	posterior, efe, err := sess.ag.InferPolicies()
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.InferPoliciesResponse{
		Posterior: posterior,
		Efe:       efe,
	}, nil
}

// SampleAction draws the next action for the named agent.
func (s *AgentServer) SampleAction(_ context.Context, req *pb.SampleActionRequest) (*pb.SampleActionResponse, error) {
	sess, err := s.lookup(req.AgentId)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	action, err := sess.ag.SampleAction()
	if err != nil {
		return nil, rpcError(err)
	}
	return &pb.SampleActionResponse{Action: toInt32s(action)}, nil
}

// GetBeliefs reports the named agent's belief, phase, and step.
func (s *AgentServer) GetBeliefs(_ context.Context, req *pb.GetBeliefsRequest) (*pb.GetBeliefsResponse, error) {
	sess, err := s.lookup(req.AgentId)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &pb.GetBeliefsResponse{
		Beliefs: vectorsToProto(sess.ag.Beliefs()),
		Phase:   sess.ag.Phase().String(),
		Step:    int32(sess.ag.Step()),
	}, nil
}

// ResetAgent returns the named agent to its prior belief.
func (s *AgentServer) ResetAgent(_ context.Context, req *pb.ResetAgentRequest) (*pb.ResetAgentResponse, error) {
	sess, err := s.lookup(req.AgentId)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.ag.Reset(); err != nil {
		return nil, rpcError(err)
	}
	return &pb.ResetAgentResponse{}, nil
}

// DeleteAgent removes the named agent from the registry.
func (s *AgentServer) DeleteAgent(_ context.Context, req *pb.DeleteAgentRequest) (*pb.DeleteAgentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.agents[req.AgentId]; !ok {
		return nil, status.Errorf(codes.NotFound, "agent %q not found", req.AgentId)
	}
	delete(s.agents, req.AgentId)
	return &pb.DeleteAgentResponse{}, nil
}

func vectorsToProto(beliefs [][]float64) []*pb.Vector {
	out := make([]*pb.Vector, len(beliefs))
	for i, b := range beliefs {
		out[i] = &pb.Vector{Values: append([]float64(nil), b...)}
	}
	return out
}

func toInt32s(v []int) []int32 {
	out := make([]int32, len(v))
	for i, x := range v {
		out[i] = int32(x)
	}
	return out
}

// #endregion cycle
