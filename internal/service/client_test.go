package service

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/FrancescoBalzan/pymdp/gen/agentpb"
	"github.com/FrancescoBalzan/pymdp/internal/worlds"
)

// #region mock
type mockAgentService struct {
	pb.AgentServiceClient

	createResp *pb.CreateAgentResponse
	createErr  error

	inferResp *pb.InferStatesResponse
	inferErr  error

	policyResp *pb.InferPoliciesResponse
	policyErr  error

	actionResp *pb.SampleActionResponse
	actionErr  error

	beliefsResp *pb.GetBeliefsResponse
	beliefsErr  error
}

func (m *mockAgentService) CreateAgent(_ context.Context, _ *pb.CreateAgentRequest, _ ...grpc.CallOption) (*pb.CreateAgentResponse, error) {
	return m.createResp, m.createErr
}

func (m *mockAgentService) InferStates(_ context.Context, _ *pb.InferStatesRequest, _ ...grpc.CallOption) (*pb.InferStatesResponse, error) {
	return m.inferResp, m.inferErr
}

func (m *mockAgentService) InferPolicies(_ context.Context, _ *pb.InferPoliciesRequest, _ ...grpc.CallOption) (*pb.InferPoliciesResponse, error) {
	return m.policyResp, m.policyErr
}

func (m *mockAgentService) SampleAction(_ context.Context, _ *pb.SampleActionRequest, _ ...grpc.CallOption) (*pb.SampleActionResponse, error) {
	return m.actionResp, m.actionErr
}

func (m *mockAgentService) GetBeliefs(_ context.Context, _ *pb.GetBeliefsRequest, _ ...grpc.CallOption) (*pb.GetBeliefsResponse, error) {
	return m.beliefsResp, m.beliefsErr
}

// #endregion mock

// #region constructor-tests
func TestNewAgentClientWithService(t *testing.T) {
	c := NewAgentClientWithService(&mockAgentService{})
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.client == nil {
		t.Fatal("expected non-nil internal client")
	}
}

// #endregion constructor-tests

// #region create-tests
func TestClientCreateAgent_Success(t *testing.T) {
	mock := &mockAgentService{
		createResp: &pb.CreateAgentResponse{AgentId: "bandit-7"},
	}
	c := &AgentClient{client: mock}

	id, err := c.CreateAgent(context.Background(), "", worlds.EpistemicBanditSpec(), AgentParams{Horizon: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "bandit-7" {
		t.Errorf("expected id 'bandit-7', got %q", id)
	}
}

func TestClientCreateAgent_Error(t *testing.T) {
	mock := &mockAgentService{
		createErr: errors.New("rpc failed"),
	}
	c := &AgentClient{client: mock}

	_, err := c.CreateAgent(context.Background(), "", worlds.EpistemicBanditSpec(), AgentParams{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.createErr) {
		t.Errorf("expected wrapped rpc error, got: %v", err)
	}
}

// #endregion create-tests

// #region cycle-tests
func TestClientInferStates_Success(t *testing.T) {
	mock := &mockAgentService{
		inferResp: &pb.InferStatesResponse{
			Beliefs: []*pb.Vector{
				{Values: []float64{0.8, 0.2}},
				{Values: []float64{0, 0, 1}},
			},
			Step: 2,
		},
	}
	c := &AgentClient{client: mock}

	beliefs, err := c.InferStates(context.Background(), "bandit-7", []int{1, 0, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(beliefs) != 2 {
		t.Fatalf("expected 2 factors, got %d", len(beliefs))
	}
	if beliefs[0][0] != 0.8 {
		t.Errorf("expected belief 0.8, got %v", beliefs[0])
	}
}

func TestClientInferStates_Error(t *testing.T) {
	mock := &mockAgentService{
		inferErr: errors.New("infer failed"),
	}
	c := &AgentClient{client: mock}

	_, err := c.InferStates(context.Background(), "bandit-7", []int{0, 0, 0})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, mock.inferErr) {
		t.Errorf("expected wrapped infer error, got: %v", err)
	}
}

func TestClientInferPolicies_Success(t *testing.T) {
	mock := &mockAgentService{
		policyResp: &pb.InferPoliciesResponse{
			Posterior: []float64{0.1, 0.3, 0.6},
			Efe:       []float64{0.5, -0.1, -0.9},
		},
	}
	c := &AgentClient{client: mock}

	res, err := c.InferPolicies(context.Background(), "bandit-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Posterior) != 3 || len(res.EFE) != 3 {
		t.Fatalf("expected 3 policies, got %d/%d", len(res.Posterior), len(res.EFE))
	}
	if res.EFE[2] != -0.9 {
		t.Errorf("expected EFE -0.9, got %v", res.EFE[2])
	}
}

func TestClientSampleAction_Success(t *testing.T) {
	mock := &mockAgentService{
		actionResp: &pb.SampleActionResponse{Action: []int32{0, 2}},
	}
	c := &AgentClient{client: mock}

	action, err := c.SampleAction(context.Background(), "bandit-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(action) != 2 || action[1] != 2 {
		t.Errorf("expected action [0 2], got %v", action)
	}
}

func TestClientGetBeliefs_Success(t *testing.T) {
	mock := &mockAgentService{
		beliefsResp: &pb.GetBeliefsResponse{
			Beliefs: []*pb.Vector{{Values: []float64{0.5, 0.5}}},
			Phase:   "awaiting_observation",
			Step:    4,
		},
	}
	c := &AgentClient{client: mock}

	res, err := c.GetBeliefs(context.Background(), "bandit-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Step != 4 {
		t.Errorf("expected step 4, got %d", res.Step)
	}
	if res.Phase != "awaiting_observation" {
		t.Errorf("expected phase name, got %q", res.Phase)
	}
}

// #endregion cycle-tests
