// Generate with:
//   protoc --go_out=. --go_opt=module=github.com/FrancescoBalzan/pymdp \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/FrancescoBalzan/pymdp \
//          proto/agent.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: proto/agent.proto

package agentpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Tensor is a dense array in row-major order, last axis fastest.
type Tensor struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Shape         []int32                `protobuf:"varint,1,rep,packed,name=shape,proto3" json:"shape,omitempty"`
	Data          []float64              `protobuf:"fixed64,2,rep,packed,name=data,proto3" json:"data,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Tensor) Reset() {
	*x = Tensor{}
	mi := &file_proto_agent_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Tensor) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Tensor) ProtoMessage() {}

func (x *Tensor) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Tensor.ProtoReflect.Descriptor instead.
func (*Tensor) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{0}
}

func (x *Tensor) GetShape() []int32 {
	if x != nil {
		return x.Shape
	}
	return nil
}

func (x *Tensor) GetData() []float64 {
	if x != nil {
		return x.Data
	}
	return nil
}

// Vector is one categorical distribution or preference vector.
type Vector struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Values        []float64              `protobuf:"fixed64,1,rep,packed,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Vector) Reset() {
	*x = Vector{}
	mi := &file_proto_agent_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Vector) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Vector) ProtoMessage() {}

func (x *Vector) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Vector.ProtoReflect.Descriptor instead.
func (*Vector) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{1}
}

func (x *Vector) GetValues() []float64 {
	if x != nil {
		return x.Values
	}
	return nil
}

type ModelSpec struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	A             []*Tensor              `protobuf:"bytes,1,rep,name=a,proto3" json:"a,omitempty"` // one per modality
	B             []*Tensor              `protobuf:"bytes,2,rep,name=b,proto3" json:"b,omitempty"` // one per factor
	C             []*Vector              `protobuf:"bytes,3,rep,name=c,proto3" json:"c,omitempty"` // log preferences, one per modality
	D             []*Vector              `protobuf:"bytes,4,rep,name=d,proto3" json:"d,omitempty"` // priors, one per factor
	Controllable  []int32                `protobuf:"varint,5,rep,packed,name=controllable,proto3" json:"controllable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ModelSpec) Reset() {
	*x = ModelSpec{}
	mi := &file_proto_agent_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ModelSpec) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ModelSpec) ProtoMessage() {}

func (x *ModelSpec) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ModelSpec.ProtoReflect.Descriptor instead.
func (*ModelSpec) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{2}
}

func (x *ModelSpec) GetA() []*Tensor {
	if x != nil {
		return x.A
	}
	return nil
}

func (x *ModelSpec) GetB() []*Tensor {
	if x != nil {
		return x.B
	}
	return nil
}

func (x *ModelSpec) GetC() []*Vector {
	if x != nil {
		return x.C
	}
	return nil
}

func (x *ModelSpec) GetD() []*Vector {
	if x != nil {
		return x.D
	}
	return nil
}

func (x *ModelSpec) GetControllable() []int32 {
	if x != nil {
		return x.Controllable
	}
	return nil
}

type AgentConfig struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Horizon       int32                  `protobuf:"varint,1,opt,name=horizon,proto3" json:"horizon,omitempty"`
	Precision     float64                `protobuf:"fixed64,2,opt,name=precision,proto3" json:"precision,omitempty"`
	MaxIterations int32                  `protobuf:"varint,3,opt,name=max_iterations,json=maxIterations,proto3" json:"max_iterations,omitempty"`
	Tolerance     float64                `protobuf:"fixed64,4,opt,name=tolerance,proto3" json:"tolerance,omitempty"`
	Seed          uint64                 `protobuf:"varint,5,opt,name=seed,proto3" json:"seed,omitempty"`
	Deterministic bool                   `protobuf:"varint,6,opt,name=deterministic,proto3" json:"deterministic,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentConfig) Reset() {
	*x = AgentConfig{}
	mi := &file_proto_agent_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentConfig) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentConfig) ProtoMessage() {}

func (x *AgentConfig) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AgentConfig.ProtoReflect.Descriptor instead.
func (*AgentConfig) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{3}
}

func (x *AgentConfig) GetHorizon() int32 {
	if x != nil {
		return x.Horizon
	}
	return 0
}

func (x *AgentConfig) GetPrecision() float64 {
	if x != nil {
		return x.Precision
	}
	return 0
}

func (x *AgentConfig) GetMaxIterations() int32 {
	if x != nil {
		return x.MaxIterations
	}
	return 0
}

func (x *AgentConfig) GetTolerance() float64 {
	if x != nil {
		return x.Tolerance
	}
	return 0
}

func (x *AgentConfig) GetSeed() uint64 {
	if x != nil {
		return x.Seed
	}
	return 0
}

func (x *AgentConfig) GetDeterministic() bool {
	if x != nil {
		return x.Deterministic
	}
	return false
}

type CreateAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Model         *ModelSpec             `protobuf:"bytes,1,opt,name=model,proto3" json:"model,omitempty"`
	Config        *AgentConfig           `protobuf:"bytes,2,opt,name=config,proto3" json:"config,omitempty"`
	AgentId       string                 `protobuf:"bytes,3,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"` // server assigns one when empty
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAgentRequest) Reset() {
	*x = CreateAgentRequest{}
	mi := &file_proto_agent_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAgentRequest) ProtoMessage() {}

func (x *CreateAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAgentRequest.ProtoReflect.Descriptor instead.
func (*CreateAgentRequest) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{4}
}

func (x *CreateAgentRequest) GetModel() *ModelSpec {
	if x != nil {
		return x.Model
	}
	return nil
}

func (x *CreateAgentRequest) GetConfig() *AgentConfig {
	if x != nil {
		return x.Config
	}
	return nil
}

func (x *CreateAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type CreateAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAgentResponse) Reset() {
	*x = CreateAgentResponse{}
	mi := &file_proto_agent_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAgentResponse) ProtoMessage() {}

func (x *CreateAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAgentResponse.ProtoReflect.Descriptor instead.
func (*CreateAgentResponse) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{5}
}

func (x *CreateAgentResponse) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type InferStatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Observation   []int32                `protobuf:"varint,2,rep,packed,name=observation,proto3" json:"observation,omitempty"` // one outcome index per modality
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InferStatesRequest) Reset() {
	*x = InferStatesRequest{}
	mi := &file_proto_agent_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InferStatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferStatesRequest) ProtoMessage() {}

func (x *InferStatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferStatesRequest.ProtoReflect.Descriptor instead.
func (*InferStatesRequest) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{6}
}

func (x *InferStatesRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *InferStatesRequest) GetObservation() []int32 {
	if x != nil {
		return x.Observation
	}
	return nil
}

type InferStatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Beliefs       []*Vector              `protobuf:"bytes,1,rep,name=beliefs,proto3" json:"beliefs,omitempty"` // posterior, one per factor
	Step          int32                  `protobuf:"varint,2,opt,name=step,proto3" json:"step,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InferStatesResponse) Reset() {
	*x = InferStatesResponse{}
	mi := &file_proto_agent_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InferStatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferStatesResponse) ProtoMessage() {}

func (x *InferStatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferStatesResponse.ProtoReflect.Descriptor instead.
func (*InferStatesResponse) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{7}
}

func (x *InferStatesResponse) GetBeliefs() []*Vector {
	if x != nil {
		return x.Beliefs
	}
	return nil
}

func (x *InferStatesResponse) GetStep() int32 {
	if x != nil {
		return x.Step
	}
	return 0
}

type InferPoliciesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InferPoliciesRequest) Reset() {
	*x = InferPoliciesRequest{}
	mi := &file_proto_agent_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InferPoliciesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferPoliciesRequest) ProtoMessage() {}

func (x *InferPoliciesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferPoliciesRequest.ProtoReflect.Descriptor instead.
func (*InferPoliciesRequest) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{8}
}

func (x *InferPoliciesRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type InferPoliciesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Posterior     []float64              `protobuf:"fixed64,1,rep,packed,name=posterior,proto3" json:"posterior,omitempty"` // over policies, same order as efe
	Efe           []float64              `protobuf:"fixed64,2,rep,packed,name=efe,proto3" json:"efe,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InferPoliciesResponse) Reset() {
	*x = InferPoliciesResponse{}
	mi := &file_proto_agent_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InferPoliciesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InferPoliciesResponse) ProtoMessage() {}

func (x *InferPoliciesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InferPoliciesResponse.ProtoReflect.Descriptor instead.
func (*InferPoliciesResponse) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{9}
}

func (x *InferPoliciesResponse) GetPosterior() []float64 {
	if x != nil {
		return x.Posterior
	}
	return nil
}

func (x *InferPoliciesResponse) GetEfe() []float64 {
	if x != nil {
		return x.Efe
	}
	return nil
}

type SampleActionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SampleActionRequest) Reset() {
	*x = SampleActionRequest{}
	mi := &file_proto_agent_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SampleActionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampleActionRequest) ProtoMessage() {}

func (x *SampleActionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampleActionRequest.ProtoReflect.Descriptor instead.
func (*SampleActionRequest) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{10}
}

func (x *SampleActionRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type SampleActionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Action        []int32                `protobuf:"varint,1,rep,packed,name=action,proto3" json:"action,omitempty"` // one action index per factor
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SampleActionResponse) Reset() {
	*x = SampleActionResponse{}
	mi := &file_proto_agent_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SampleActionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SampleActionResponse) ProtoMessage() {}

func (x *SampleActionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SampleActionResponse.ProtoReflect.Descriptor instead.
func (*SampleActionResponse) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{11}
}

func (x *SampleActionResponse) GetAction() []int32 {
	if x != nil {
		return x.Action
	}
	return nil
}

type GetBeliefsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBeliefsRequest) Reset() {
	*x = GetBeliefsRequest{}
	mi := &file_proto_agent_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBeliefsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBeliefsRequest) ProtoMessage() {}

func (x *GetBeliefsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBeliefsRequest.ProtoReflect.Descriptor instead.
func (*GetBeliefsRequest) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{12}
}

func (x *GetBeliefsRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type GetBeliefsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Beliefs       []*Vector              `protobuf:"bytes,1,rep,name=beliefs,proto3" json:"beliefs,omitempty"`
	Phase         string                 `protobuf:"bytes,2,opt,name=phase,proto3" json:"phase,omitempty"`
	Step          int32                  `protobuf:"varint,3,opt,name=step,proto3" json:"step,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBeliefsResponse) Reset() {
	*x = GetBeliefsResponse{}
	mi := &file_proto_agent_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBeliefsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBeliefsResponse) ProtoMessage() {}

func (x *GetBeliefsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBeliefsResponse.ProtoReflect.Descriptor instead.
func (*GetBeliefsResponse) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{13}
}

func (x *GetBeliefsResponse) GetBeliefs() []*Vector {
	if x != nil {
		return x.Beliefs
	}
	return nil
}

func (x *GetBeliefsResponse) GetPhase() string {
	if x != nil {
		return x.Phase
	}
	return ""
}

func (x *GetBeliefsResponse) GetStep() int32 {
	if x != nil {
		return x.Step
	}
	return 0
}

type ResetAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetAgentRequest) Reset() {
	*x = ResetAgentRequest{}
	mi := &file_proto_agent_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetAgentRequest) ProtoMessage() {}

func (x *ResetAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetAgentRequest.ProtoReflect.Descriptor instead.
func (*ResetAgentRequest) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{14}
}

func (x *ResetAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type ResetAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetAgentResponse) Reset() {
	*x = ResetAgentResponse{}
	mi := &file_proto_agent_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetAgentResponse) ProtoMessage() {}

func (x *ResetAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetAgentResponse.ProtoReflect.Descriptor instead.
func (*ResetAgentResponse) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{15}
}

type DeleteAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAgentRequest) Reset() {
	*x = DeleteAgentRequest{}
	mi := &file_proto_agent_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAgentRequest) ProtoMessage() {}

func (x *DeleteAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAgentRequest.ProtoReflect.Descriptor instead.
func (*DeleteAgentRequest) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{16}
}

func (x *DeleteAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type DeleteAgentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteAgentResponse) Reset() {
	*x = DeleteAgentResponse{}
	mi := &file_proto_agent_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteAgentResponse) ProtoMessage() {}

func (x *DeleteAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_agent_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteAgentResponse.ProtoReflect.Descriptor instead.
func (*DeleteAgentResponse) Descriptor() ([]byte, []int) {
	return file_proto_agent_proto_rawDescGZIP(), []int{17}
}

var File_proto_agent_proto protoreflect.FileDescriptor

const file_proto_agent_proto_rawDesc = "" +
	"\n" +
	"\x11proto/agent.proto\x12\aagentpb\"2\n" +
	"\x06Tensor\x12\x14\n" +
	"\x05shape\x18\x01 \x03(\x05R\x05shape\x12\x12\n" +
	"\x04data\x18\x02 \x03(\x01R\x04data\" \n" +
	"\x06Vector\x12\x16\n" +
	"\x06values\x18\x01 \x03(\x01R\x06values\"\xab\x01\n" +
	"\tModelSpec\x12\x1d\n" +
	"\x01a\x18\x01 \x03(\v2\x0f.agentpb.TensorR\x01a\x12\x1d\n" +
	"\x01b\x18\x02 \x03(\v2\x0f.agentpb.TensorR\x01b\x12\x1d\n" +
	"\x01c\x18\x03 \x03(\v2\x0f.agentpb.VectorR\x01c\x12\x1d\n" +
	"\x01d\x18\x04 \x03(\v2\x0f.agentpb.VectorR\x01d\x12\"\n" +
	"\fcontrollable\x18\x05 \x03(\x05R\fcontrollable\"\xc4\x01\n" +
	"\vAgentConfig\x12\x18\n" +
	"\ahorizon\x18\x01 \x01(\x05R\ahorizon\x12\x1c\n" +
	"\tprecision\x18\x02 \x01(\x01R\tprecision\x12%\n" +
	"\x0emax_iterations\x18\x03 \x01(\x05R\rmaxIterations\x12\x1c\n" +
	"\ttolerance\x18\x04 \x01(\x01R\ttolerance\x12\x12\n" +
	"\x04seed\x18\x05 \x01(\x04R\x04seed\x12$\n" +
	"\rdeterministic\x18\x06 \x01(\bR\rdeterministic\"\x87\x01\n" +
	"\x12CreateAgentRequest\x12(\n" +
	"\x05model\x18\x01 \x01(\v2\x12.agentpb.ModelSpecR\x05model\x12,\n" +
	"\x06config\x18\x02 \x01(\v2\x14.agentpb.AgentConfigR\x06config\x12\x19\n" +
	"\bagent_id\x18\x03 \x01(\tR\aagentId\"0\n" +
	"\x13CreateAgentResponse\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\"Q\n" +
	"\x12InferStatesRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12 \n" +
	"\vobservation\x18\x02 \x03(\x05R\vobservation\"T\n" +
	"\x13InferStatesResponse\x12)\n" +
	"\abeliefs\x18\x01 \x03(\v2\x0f.agentpb.VectorR\abeliefs\x12\x12\n" +
	"\x04step\x18\x02 \x01(\x05R\x04step\"1\n" +
	"\x14InferPoliciesRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\"G\n" +
	"\x15InferPoliciesResponse\x12\x1c\n" +
	"\tposterior\x18\x01 \x03(\x01R\tposterior\x12\x10\n" +
	"\x03efe\x18\x02 \x03(\x01R\x03efe\"0\n" +
	"\x13SampleActionRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\".\n" +
	"\x14SampleActionResponse\x12\x16\n" +
	"\x06action\x18\x01 \x03(\x05R\x06action\".\n" +
	"\x11GetBeliefsRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\"i\n" +
	"\x12GetBeliefsResponse\x12)\n" +
	"\abeliefs\x18\x01 \x03(\v2\x0f.agentpb.VectorR\abeliefs\x12\x14\n" +
	"\x05phase\x18\x02 \x01(\tR\x05phase\x12\x12\n" +
	"\x04step\x18\x03 \x01(\x05R\x04step\".\n" +
	"\x11ResetAgentRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\"\x14\n" +
	"\x12ResetAgentResponse\"/\n" +
	"\x12DeleteAgentRequest\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\"\x15\n" +
	"\x13DeleteAgentResponse2\x97\x04\n" +
	"\fAgentService\x12H\n" +
	"\vCreateAgent\x12\x1b.agentpb.CreateAgentRequest\x1a\x1c.agentpb.CreateAgentResponse\x12H\n" +
	"\vInferStates\x12\x1b.agentpb.InferStatesRequest\x1a\x1c.agentpb.InferStatesResponse\x12N\n" +
	"\rInferPolicies\x12\x1d.agentpb.InferPoliciesRequest\x1a\x1e.agentpb.InferPoliciesResponse\x12K\n" +
	"\fSampleAction\x12\x1c.agentpb.SampleActionRequest\x1a\x1d.agentpb.SampleActionResponse\x12E\n" +
	"\n" +
	"GetBeliefs\x12\x1a.agentpb.GetBeliefsRequest\x1a\x1b.agentpb.GetBeliefsResponse\x12E\n" +
	"\n" +
	"ResetAgent\x12\x1a.agentpb.ResetAgentRequest\x1a\x1b.agentpb.ResetAgentResponse\x12H\n" +
	"\vDeleteAgent\x12\x1b.agentpb.DeleteAgentRequest\x1a\x1c.agentpb.DeleteAgentResponseB.Z,github.com/FrancescoBalzan/pymdp/gen/agentpbb\x06proto3"

var (
	file_proto_agent_proto_rawDescOnce sync.Once
	file_proto_agent_proto_rawDescData []byte
)

func file_proto_agent_proto_rawDescGZIP() []byte {
	file_proto_agent_proto_rawDescOnce.Do(func() {
		file_proto_agent_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_agent_proto_rawDesc), len(file_proto_agent_proto_rawDesc)))
	})
	return file_proto_agent_proto_rawDescData
}

var file_proto_agent_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_proto_agent_proto_goTypes = []any{
	(*Tensor)(nil),                // 0: agentpb.Tensor
	(*Vector)(nil),                // 1: agentpb.Vector
	(*ModelSpec)(nil),             // 2: agentpb.ModelSpec
	(*AgentConfig)(nil),           // 3: agentpb.AgentConfig
	(*CreateAgentRequest)(nil),    // 4: agentpb.CreateAgentRequest
	(*CreateAgentResponse)(nil),   // 5: agentpb.CreateAgentResponse
	(*InferStatesRequest)(nil),    // 6: agentpb.InferStatesRequest
	(*InferStatesResponse)(nil),   // 7: agentpb.InferStatesResponse
	(*InferPoliciesRequest)(nil),  // 8: agentpb.InferPoliciesRequest
	(*InferPoliciesResponse)(nil), // 9: agentpb.InferPoliciesResponse
	(*SampleActionRequest)(nil),   // 10: agentpb.SampleActionRequest
	(*SampleActionResponse)(nil),  // 11: agentpb.SampleActionResponse
	(*GetBeliefsRequest)(nil),     // 12: agentpb.GetBeliefsRequest
	(*GetBeliefsResponse)(nil),    // 13: agentpb.GetBeliefsResponse
	(*ResetAgentRequest)(nil),     // 14: agentpb.ResetAgentRequest
	(*ResetAgentResponse)(nil),    // 15: agentpb.ResetAgentResponse
	(*DeleteAgentRequest)(nil),    // 16: agentpb.DeleteAgentRequest
	(*DeleteAgentResponse)(nil),   // 17: agentpb.DeleteAgentResponse
}
var file_proto_agent_proto_depIdxs = []int32{
	0,  // 0: agentpb.ModelSpec.a:type_name -> agentpb.Tensor
	0,  // 1: agentpb.ModelSpec.b:type_name -> agentpb.Tensor
	1,  // 2: agentpb.ModelSpec.c:type_name -> agentpb.Vector
	1,  // 3: agentpb.ModelSpec.d:type_name -> agentpb.Vector
	2,  // 4: agentpb.CreateAgentRequest.model:type_name -> agentpb.ModelSpec
	3,  // 5: agentpb.CreateAgentRequest.config:type_name -> agentpb.AgentConfig
	1,  // 6: agentpb.InferStatesResponse.beliefs:type_name -> agentpb.Vector
	1,  // 7: agentpb.GetBeliefsResponse.beliefs:type_name -> agentpb.Vector
	4,  // 8: agentpb.AgentService.CreateAgent:input_type -> agentpb.CreateAgentRequest
	6,  // 9: agentpb.AgentService.InferStates:input_type -> agentpb.InferStatesRequest
	8,  // 10: agentpb.AgentService.InferPolicies:input_type -> agentpb.InferPoliciesRequest
	10, // 11: agentpb.AgentService.SampleAction:input_type -> agentpb.SampleActionRequest
	12, // 12: agentpb.AgentService.GetBeliefs:input_type -> agentpb.GetBeliefsRequest
	14, // 13: agentpb.AgentService.ResetAgent:input_type -> agentpb.ResetAgentRequest
	16, // 14: agentpb.AgentService.DeleteAgent:input_type -> agentpb.DeleteAgentRequest
	5,  // 15: agentpb.AgentService.CreateAgent:output_type -> agentpb.CreateAgentResponse
	7,  // 16: agentpb.AgentService.InferStates:output_type -> agentpb.InferStatesResponse
	9,  // 17: agentpb.AgentService.InferPolicies:output_type -> agentpb.InferPoliciesResponse
	11, // 18: agentpb.AgentService.SampleAction:output_type -> agentpb.SampleActionResponse
	13, // 19: agentpb.AgentService.GetBeliefs:output_type -> agentpb.GetBeliefsResponse
	15, // 20: agentpb.AgentService.ResetAgent:output_type -> agentpb.ResetAgentResponse
	17, // 21: agentpb.AgentService.DeleteAgent:output_type -> agentpb.DeleteAgentResponse
	15, // [15:22] is the sub-list for method output_type
	8,  // [8:15] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_proto_agent_proto_init() }
func file_proto_agent_proto_init() {
	if File_proto_agent_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_agent_proto_rawDesc), len(file_proto_agent_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_agent_proto_goTypes,
		DependencyIndexes: file_proto_agent_proto_depIdxs,
		MessageInfos:      file_proto_agent_proto_msgTypes,
	}.Build()
	File_proto_agent_proto = out.File
	file_proto_agent_proto_goTypes = nil
	file_proto_agent_proto_depIdxs = nil
}
