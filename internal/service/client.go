package service

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/FrancescoBalzan/pymdp/gen/agentpb"
	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/model"
)

// #region types
// PolicyResult holds the response from an InferPolicies RPC call.
type PolicyResult struct {
	Posterior []float64
	EFE       []float64
}

// BeliefsResult holds the response from a GetBeliefs RPC call.
type BeliefsResult struct {
	Beliefs belief.BeliefState
	Phase   string
	Step    int
}

// AgentParams mirrors the wire-level agent configuration.
type AgentParams struct {
	Horizon       int
	Precision     float64
	MaxIterations int
	Tolerance     float64
	Seed          uint64
	Deterministic bool
}
// #endregion types

// #region client-struct
// AgentClient wraps the gRPC connection to an agent server.
type AgentClient struct {
	conn   *grpc.ClientConn
	client pb.AgentServiceClient
}
// #endregion client-struct

// #region constructor
// NewAgentClient connects to an agent gRPC server.
func NewAgentClient(addr string) (*AgentClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &AgentClient{
		conn:   conn,
		client: pb.NewAgentServiceClient(conn),
	}, nil
}

// NewAgentClientWithService creates an AgentClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewAgentClientWithService(svc pb.AgentServiceClient) *AgentClient {
	return &AgentClient{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *AgentClient) Close() error {
	return c.conn.Close()
}
// #endregion close

// #region create-agent
// CreateAgent registers a new agent built from the given model spec.
func (c *AgentClient) CreateAgent(ctx context.Context, agentID string, spec model.Spec, params AgentParams) (string, error) {
	resp, err := c.client.CreateAgent(ctx, &pb.CreateAgentRequest{
		AgentId: agentID,
		Model:   specToProto(spec),
		Config: &pb.AgentConfig{
			Horizon:       int32(params.Horizon),
			Precision:     params.Precision,
			MaxIterations: int32(params.MaxIterations),
			Tolerance:     params.Tolerance,
			Seed:          params.Seed,
			Deterministic: params.Deterministic,
		},
	})
	if err != nil {
		return "", fmt.Errorf("create agent rpc: %w", err)
	}
	return resp.AgentId, nil
}

func specToProto(spec model.Spec) *pb.ModelSpec {
	pm := &pb.ModelSpec{Controllable: toInt32s(spec.Controllable)}
	for _, t := range spec.A {
		pm.A = append(pm.A, &pb.Tensor{Shape: toInt32s(t.Shape), Data: t.Data})
	}
	for _, t := range spec.B {
		pm.B = append(pm.B, &pb.Tensor{Shape: toInt32s(t.Shape), Data: t.Data})
	}
	for _, v := range spec.C {
		pm.C = append(pm.C, &pb.Vector{Values: v})
	}
	for _, v := range spec.D {
		pm.D = append(pm.D, &pb.Vector{Values: v})
	}
	return pm
}
// #endregion create-agent

// #region cycle
// InferStates sends an observation and returns the updated belief.
func (c *AgentClient) InferStates(ctx context.Context, agentID string, observation []int) (belief.BeliefState, error) {
	resp, err := c.client.InferStates(ctx, &pb.InferStatesRequest{
		AgentId:     agentID,
		Observation: toInt32s(observation),
	})
	if err != nil {
		return nil, fmt.Errorf("infer states rpc: %w", err)
	}
	return vectorsFromProto(resp.Beliefs), nil
}

// InferPolicies asks the server to score candidate policies.
func (c *AgentClient) InferPolicies(ctx context.Context, agentID string) (PolicyResult, error) {
	resp, err := c.client.InferPolicies(ctx, &pb.InferPoliciesRequest{AgentId: agentID})
	if err != nil {
		return PolicyResult{}, fmt.Errorf("infer policies rpc: %w", err)
	}
	return PolicyResult{
		Posterior: resp.Posterior,
		EFE:       resp.Efe,
	}, nil
}

// SampleAction draws the next action from the server-side agent.
func (c *AgentClient) SampleAction(ctx context.Context, agentID string) ([]int, error) {
	resp, err := c.client.SampleAction(ctx, &pb.SampleActionRequest{AgentId: agentID})
	if err != nil {
		return nil, fmt.Errorf("sample action rpc: %w", err)
	}
	return toInts(resp.Action), nil
}

// GetBeliefs reads the current belief without advancing the cycle.
func (c *AgentClient) GetBeliefs(ctx context.Context, agentID string) (BeliefsResult, error) {
	resp, err := c.client.GetBeliefs(ctx, &pb.GetBeliefsRequest{AgentId: agentID})
	if err != nil {
		return BeliefsResult{}, fmt.Errorf("get beliefs rpc: %w", err)
	}
	return BeliefsResult{
		Beliefs: vectorsFromProto(resp.Beliefs),
		Phase:   resp.Phase,
		Step:    int(resp.Step),
	}, nil
}

// ResetAgent returns the server-side agent to its prior belief.
func (c *AgentClient) ResetAgent(ctx context.Context, agentID string) error {
	if _, err := c.client.ResetAgent(ctx, &pb.ResetAgentRequest{AgentId: agentID}); err != nil {
		return fmt.Errorf("reset agent rpc: %w", err)
	}
	return nil
}

// DeleteAgent removes the server-side agent.
func (c *AgentClient) DeleteAgent(ctx context.Context, agentID string) error {
	if _, err := c.client.DeleteAgent(ctx, &pb.DeleteAgentRequest{AgentId: agentID}); err != nil {
		return fmt.Errorf("delete agent rpc: %w", err)
	}
	return nil
}

func vectorsFromProto(vs []*pb.Vector) belief.BeliefState {
	out := make(belief.BeliefState, len(vs))
	for i, v := range vs {
		out[i] = append([]float64(nil), v.Values...)
	}
	return out
}
// #endregion cycle
