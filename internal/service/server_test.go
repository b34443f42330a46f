package service

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/FrancescoBalzan/pymdp/gen/agentpb"
	"github.com/FrancescoBalzan/pymdp/internal/worlds"
)

// helper: registers a deterministic bandit agent and returns its ID.
func createBandit(t *testing.T, s *AgentServer) string {
	t.Helper()
	resp, err := s.CreateAgent(context.Background(), &pb.CreateAgentRequest{
		Model: specToProto(worlds.EpistemicBanditSpec()),
		Config: &pb.AgentConfig{
			Horizon:       1,
			Precision:     16,
			Seed:          7,
			Deterministic: true,
		},
	})
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	if resp.AgentId == "" {
		t.Fatal("expected a server-assigned agent ID")
	}
	return resp.AgentId
}

func TestCreateAgent_AssignsID(t *testing.T) {
	s := NewAgentServer()
	id1 := createBandit(t, s)
	id2 := createBandit(t, s)
	if id1 == id2 {
		t.Error("expected distinct IDs for distinct agents")
	}
}

func TestCreateAgent_ExplicitIDConflict(t *testing.T) {
	s := NewAgentServer()
	req := &pb.CreateAgentRequest{
		AgentId: "bandit-1",
		Model:   specToProto(worlds.EpistemicBanditSpec()),
	}
	if _, err := s.CreateAgent(context.Background(), req); err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	_, err := s.CreateAgent(context.Background(), req)
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists, got %v", err)
	}
}

func TestCreateAgent_InvalidModel(t *testing.T) {
	s := NewAgentServer()
	spec := worlds.EpistemicBanditSpec()
	spec.D[0] = []float64{0.9, 0.9}
	_, err := s.CreateAgent(context.Background(), &pb.CreateAgentRequest{Model: specToProto(spec)})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestCreateAgent_MissingModel(t *testing.T) {
	s := NewAgentServer()
	_, err := s.CreateAgent(context.Background(), &pb.CreateAgentRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

// Full cycle over RPC: observe, plan, act, and the epistemic-to-pragmatic
// switch once evidence arrives.
func TestServer_FullCycle(t *testing.T) {
	s := NewAgentServer()
	id := createBandit(t, s)
	ctx := context.Background()

	inf, err := s.InferStates(ctx, &pb.InferStatesRequest{
		AgentId:     id,
		Observation: []int32{worlds.NoEvidence, worlds.Neutral, worlds.Start},
	})
	if err != nil {
		t.Fatalf("InferStates: %v", err)
	}
	if inf.Step != 1 {
		t.Errorf("expected step 1, got %d", inf.Step)
	}
	if len(inf.Beliefs) != 2 {
		t.Fatalf("expected 2 factors, got %d", len(inf.Beliefs))
	}

	pol, err := s.InferPolicies(ctx, &pb.InferPoliciesRequest{AgentId: id})
	if err != nil {
		t.Fatalf("InferPolicies: %v", err)
	}
	if len(pol.Efe) != 3 || len(pol.Posterior) != 3 {
		t.Fatalf("expected 3 policies, got %d EFE / %d posterior", len(pol.Efe), len(pol.Posterior))
	}

	act, err := s.SampleAction(ctx, &pb.SampleActionRequest{AgentId: id})
	if err != nil {
		t.Fatalf("SampleAction: %v", err)
	}
	if int(act.Action[worlds.FactorStage]) != worlds.ActSample {
		t.Errorf("expected the uncertain agent to sample, got action %v", act.Action)
	}

	inf, err = s.InferStates(ctx, &pb.InferStatesRequest{
		AgentId:     id,
		Observation: []int32{worlds.HighRewardEvidence, worlds.Neutral, worlds.Sampling},
	})
	if err != nil {
		t.Fatalf("InferStates: %v", err)
	}
	ctxBelief := inf.Beliefs[worlds.FactorContext].Values
	if ctxBelief[worlds.HighReward] < 0.79 || ctxBelief[worlds.HighReward] > 0.81 {
		t.Errorf("expected context belief near 0.8, got %v", ctxBelief)
	}
	if _, err := s.InferPolicies(ctx, &pb.InferPoliciesRequest{AgentId: id}); err != nil {
		t.Fatalf("InferPolicies: %v", err)
	}
	act, err = s.SampleAction(ctx, &pb.SampleActionRequest{AgentId: id})
	if err != nil {
		t.Fatalf("SampleAction: %v", err)
	}
	if int(act.Action[worlds.FactorStage]) != worlds.ActPlay {
		t.Errorf("expected the informed agent to play, got action %v", act.Action)
	}
}

func TestServer_PhaseViolation(t *testing.T) {
	s := NewAgentServer()
	id := createBandit(t, s)

	_, err := s.SampleAction(context.Background(), &pb.SampleActionRequest{AgentId: id})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestServer_BadObservation(t *testing.T) {
	s := NewAgentServer()
	id := createBandit(t, s)

	_, err := s.InferStates(context.Background(), &pb.InferStatesRequest{
		AgentId:     id,
		Observation: []int32{99, 0, 0},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestServer_UnknownAgent(t *testing.T) {
	s := NewAgentServer()
	ctx := context.Background()

	if _, err := s.InferStates(ctx, &pb.InferStatesRequest{AgentId: "ghost"}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := s.DeleteAgent(ctx, &pb.DeleteAgentRequest{AgentId: "ghost"}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestServer_GetBeliefsAndReset(t *testing.T) {
	s := NewAgentServer()
	id := createBandit(t, s)
	ctx := context.Background()

	if _, err := s.InferStates(ctx, &pb.InferStatesRequest{
		AgentId:     id,
		Observation: []int32{worlds.NoEvidence, worlds.Neutral, worlds.Start},
	}); err != nil {
		t.Fatalf("InferStates: %v", err)
	}

	got, err := s.GetBeliefs(ctx, &pb.GetBeliefsRequest{AgentId: id})
	if err != nil {
		t.Fatalf("GetBeliefs: %v", err)
	}
	if got.Step != 1 {
		t.Errorf("expected step 1, got %d", got.Step)
	}
	if got.Phase == "" {
		t.Error("expected a phase name")
	}

	if _, err := s.ResetAgent(ctx, &pb.ResetAgentRequest{AgentId: id}); err != nil {
		t.Fatalf("ResetAgent: %v", err)
	}
	got, err = s.GetBeliefs(ctx, &pb.GetBeliefsRequest{AgentId: id})
	if err != nil {
		t.Fatalf("GetBeliefs: %v", err)
	}
	if got.Step != 0 {
		t.Errorf("expected step 0 after reset, got %d", got.Step)
	}
}

func TestServer_DeleteAgent(t *testing.T) {
	s := NewAgentServer()
	id := createBandit(t, s)
	ctx := context.Background()

	if _, err := s.DeleteAgent(ctx, &pb.DeleteAgentRequest{AgentId: id}); err != nil {
		t.Fatalf("DeleteAgent: %v", err)
	}
	if _, err := s.GetBeliefs(ctx, &pb.GetBeliefsRequest{AgentId: id}); status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
}
