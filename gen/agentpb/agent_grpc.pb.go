// Generate with:
//   protoc --go_out=. --go_opt=module=github.com/FrancescoBalzan/pymdp \
//          --go-grpc_out=. --go-grpc_opt=module=github.com/FrancescoBalzan/pymdp \
//          proto/agent.proto

// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: proto/agent.proto

package agentpb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AgentService_CreateAgent_FullMethodName   = "/agentpb.AgentService/CreateAgent"
	AgentService_InferStates_FullMethodName   = "/agentpb.AgentService/InferStates"
	AgentService_InferPolicies_FullMethodName = "/agentpb.AgentService/InferPolicies"
	AgentService_SampleAction_FullMethodName  = "/agentpb.AgentService/SampleAction"
	AgentService_GetBeliefs_FullMethodName    = "/agentpb.AgentService/GetBeliefs"
	AgentService_ResetAgent_FullMethodName    = "/agentpb.AgentService/ResetAgent"
	AgentService_DeleteAgent_FullMethodName   = "/agentpb.AgentService/DeleteAgent"
)

// AgentServiceClient is the client API for AgentService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AgentService hosts discrete-state agents keyed by ID and drives their
// observe/plan/act cycle over RPC.
type AgentServiceClient interface {
	CreateAgent(ctx context.Context, in *CreateAgentRequest, opts ...grpc.CallOption) (*CreateAgentResponse, error)
	InferStates(ctx context.Context, in *InferStatesRequest, opts ...grpc.CallOption) (*InferStatesResponse, error)
	InferPolicies(ctx context.Context, in *InferPoliciesRequest, opts ...grpc.CallOption) (*InferPoliciesResponse, error)
	SampleAction(ctx context.Context, in *SampleActionRequest, opts ...grpc.CallOption) (*SampleActionResponse, error)
	GetBeliefs(ctx context.Context, in *GetBeliefsRequest, opts ...grpc.CallOption) (*GetBeliefsResponse, error)
	ResetAgent(ctx context.Context, in *ResetAgentRequest, opts ...grpc.CallOption) (*ResetAgentResponse, error)
	DeleteAgent(ctx context.Context, in *DeleteAgentRequest, opts ...grpc.CallOption) (*DeleteAgentResponse, error)
}

type agentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAgentServiceClient(cc grpc.ClientConnInterface) AgentServiceClient {
	return &agentServiceClient{cc}
}

func (c *agentServiceClient) CreateAgent(ctx context.Context, in *CreateAgentRequest, opts ...grpc.CallOption) (*CreateAgentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateAgentResponse)
	err := c.cc.Invoke(ctx, AgentService_CreateAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) InferStates(ctx context.Context, in *InferStatesRequest, opts ...grpc.CallOption) (*InferStatesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InferStatesResponse)
	err := c.cc.Invoke(ctx, AgentService_InferStates_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) InferPolicies(ctx context.Context, in *InferPoliciesRequest, opts ...grpc.CallOption) (*InferPoliciesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InferPoliciesResponse)
	err := c.cc.Invoke(ctx, AgentService_InferPolicies_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) SampleAction(ctx context.Context, in *SampleActionRequest, opts ...grpc.CallOption) (*SampleActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SampleActionResponse)
	err := c.cc.Invoke(ctx, AgentService_SampleAction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) GetBeliefs(ctx context.Context, in *GetBeliefsRequest, opts ...grpc.CallOption) (*GetBeliefsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBeliefsResponse)
	err := c.cc.Invoke(ctx, AgentService_GetBeliefs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) ResetAgent(ctx context.Context, in *ResetAgentRequest, opts ...grpc.CallOption) (*ResetAgentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResetAgentResponse)
	err := c.cc.Invoke(ctx, AgentService_ResetAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agentServiceClient) DeleteAgent(ctx context.Context, in *DeleteAgentRequest, opts ...grpc.CallOption) (*DeleteAgentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteAgentResponse)
	err := c.cc.Invoke(ctx, AgentService_DeleteAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AgentServiceServer is the server API for AgentService service.
// All implementations must embed UnimplementedAgentServiceServer
// for forward compatibility.
//
// AgentService hosts discrete-state agents keyed by ID and drives their
// observe/plan/act cycle over RPC.
type AgentServiceServer interface {
	CreateAgent(context.Context, *CreateAgentRequest) (*CreateAgentResponse, error)
	InferStates(context.Context, *InferStatesRequest) (*InferStatesResponse, error)
	InferPolicies(context.Context, *InferPoliciesRequest) (*InferPoliciesResponse, error)
	SampleAction(context.Context, *SampleActionRequest) (*SampleActionResponse, error)
	GetBeliefs(context.Context, *GetBeliefsRequest) (*GetBeliefsResponse, error)
	ResetAgent(context.Context, *ResetAgentRequest) (*ResetAgentResponse, error)
	DeleteAgent(context.Context, *DeleteAgentRequest) (*DeleteAgentResponse, error)
	mustEmbedUnimplementedAgentServiceServer()
}

// UnimplementedAgentServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAgentServiceServer struct{}

func (UnimplementedAgentServiceServer) CreateAgent(context.Context, *CreateAgentRequest) (*CreateAgentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAgent not implemented")
}
func (UnimplementedAgentServiceServer) InferStates(context.Context, *InferStatesRequest) (*InferStatesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InferStates not implemented")
}
func (UnimplementedAgentServiceServer) InferPolicies(context.Context, *InferPoliciesRequest) (*InferPoliciesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InferPolicies not implemented")
}
func (UnimplementedAgentServiceServer) SampleAction(context.Context, *SampleActionRequest) (*SampleActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SampleAction not implemented")
}
func (UnimplementedAgentServiceServer) GetBeliefs(context.Context, *GetBeliefsRequest) (*GetBeliefsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBeliefs not implemented")
}
func (UnimplementedAgentServiceServer) ResetAgent(context.Context, *ResetAgentRequest) (*ResetAgentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResetAgent not implemented")
}
func (UnimplementedAgentServiceServer) DeleteAgent(context.Context, *DeleteAgentRequest) (*DeleteAgentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteAgent not implemented")
}
func (UnimplementedAgentServiceServer) mustEmbedUnimplementedAgentServiceServer() {}
func (UnimplementedAgentServiceServer) testEmbeddedByValue()                      {}

// UnsafeAgentServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AgentServiceServer will
// result in compilation errors.
type UnsafeAgentServiceServer interface {
	mustEmbedUnimplementedAgentServiceServer()
}

func RegisterAgentServiceServer(s grpc.ServiceRegistrar, srv AgentServiceServer) {
	// If the following call pancis, it indicates UnimplementedAgentServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AgentService_ServiceDesc, srv)
}

func _AgentService_CreateAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).CreateAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_CreateAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).CreateAgent(ctx, req.(*CreateAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_InferStates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InferStatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).InferStates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_InferStates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).InferStates(ctx, req.(*InferStatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_InferPolicies_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InferPoliciesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).InferPolicies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_InferPolicies_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).InferPolicies(ctx, req.(*InferPoliciesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_SampleAction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SampleActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).SampleAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_SampleAction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).SampleAction(ctx, req.(*SampleActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_GetBeliefs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBeliefsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).GetBeliefs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_GetBeliefs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).GetBeliefs(ctx, req.(*GetBeliefsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_ResetAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResetAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).ResetAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_ResetAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).ResetAgent(ctx, req.(*ResetAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgentService_DeleteAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgentServiceServer).DeleteAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgentService_DeleteAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgentServiceServer).DeleteAgent(ctx, req.(*DeleteAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AgentService_ServiceDesc is the grpc.ServiceDesc for AgentService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AgentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agentpb.AgentService",
	HandlerType: (*AgentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateAgent",
			Handler:    _AgentService_CreateAgent_Handler,
		},
		{
			MethodName: "InferStates",
			Handler:    _AgentService_InferStates_Handler,
		},
		{
			MethodName: "InferPolicies",
			Handler:    _AgentService_InferPolicies_Handler,
		},
		{
			MethodName: "SampleAction",
			Handler:    _AgentService_SampleAction_Handler,
		},
		{
			MethodName: "GetBeliefs",
			Handler:    _AgentService_GetBeliefs_Handler,
		},
		{
			MethodName: "ResetAgent",
			Handler:    _AgentService_ResetAgent_Handler,
		},
		{
			MethodName: "DeleteAgent",
			Handler:    _AgentService_DeleteAgent_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/agent.proto",
}
