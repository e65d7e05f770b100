// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: contracts/v1/contracts.proto

package contractspb

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
	ExtractionService_ExtractContract_FullMethodName = "/contracts.v1.ExtractionService/ExtractContract"
	ExtractionService_GetExtractJob_FullMethodName   = "/contracts.v1.ExtractionService/GetExtractJob"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionService accepts OCR token dumps and runs the extraction
// pipeline asynchronously.
type ExtractionServiceClient interface {
	// Starts an extraction job from uploaded page token dumps.
	ExtractContract(ctx context.Context, in *ExtractContractRequest, opts ...grpc.CallOption) (*ExtractContractResponse, error)
	// Fetches the status of an extraction job.
	GetExtractJob(ctx context.Context, in *GetExtractJobRequest, opts ...grpc.CallOption) (*GetExtractJobResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) ExtractContract(ctx context.Context, in *ExtractContractRequest, opts ...grpc.CallOption) (*ExtractContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractContractResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetExtractJob(ctx context.Context, in *GetExtractJobRequest, opts ...grpc.CallOption) (*GetExtractJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetExtractJobResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetExtractJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
//
// ExtractionService accepts OCR token dumps and runs the extraction
// pipeline asynchronously.
type ExtractionServiceServer interface {
	// Starts an extraction job from uploaded page token dumps.
	ExtractContract(context.Context, *ExtractContractRequest) (*ExtractContractResponse, error)
	// Fetches the status of an extraction job.
	GetExtractJob(context.Context, *GetExtractJobRequest) (*GetExtractJobResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) ExtractContract(context.Context, *ExtractContractRequest) (*ExtractContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractContract not implemented")
}
func (UnimplementedExtractionServiceServer) GetExtractJob(context.Context, *GetExtractJobRequest) (*GetExtractJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetExtractJob not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_ExtractContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractContract(ctx, req.(*ExtractContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetExtractJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetExtractJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetExtractJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetExtractJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetExtractJob(ctx, req.(*GetExtractJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractContract",
			Handler:    _ExtractionService_ExtractContract_Handler,
		},
		{
			MethodName: "GetExtractJob",
			Handler:    _ExtractionService_GetExtractJob_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}

const (
	ContractsService_GetContract_FullMethodName     = "/contracts.v1.ContractsService/GetContract"
	ContractsService_ListContracts_FullMethodName   = "/contracts.v1.ContractsService/ListContracts"
	ContractsService_ExportContracts_FullMethodName = "/contracts.v1.ContractsService/ExportContracts"
)

// ContractsServiceClient is the client API for ContractsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ContractsService exposes extracted contract data.
type ContractsServiceClient interface {
	// Fetches one contract with its termin schedule.
	GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error)
	// Lists contracts, optionally bounded by validity start date.
	ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error)
	// Exports contracts to an XLSX workbook.
	ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportContractsResponse, error)
}

type contractsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContractsServiceClient(cc grpc.ClientConnInterface) ContractsServiceClient {
	return &contractsServiceClient{cc}
}

func (c *contractsServiceClient) GetContract(ctx context.Context, in *GetContractRequest, opts ...grpc.CallOption) (*GetContractResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetContractResponse)
	err := c.cc.Invoke(ctx, ContractsService_GetContract_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ListContracts(ctx context.Context, in *ListContractsRequest, opts ...grpc.CallOption) (*ListContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ListContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contractsServiceClient) ExportContracts(ctx context.Context, in *ExportContractsRequest, opts ...grpc.CallOption) (*ExportContractsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportContractsResponse)
	err := c.cc.Invoke(ctx, ContractsService_ExportContracts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContractsServiceServer is the server API for ContractsService service.
// All implementations must embed UnimplementedContractsServiceServer
// for forward compatibility.
//
// ContractsService exposes extracted contract data.
type ContractsServiceServer interface {
	// Fetches one contract with its termin schedule.
	GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error)
	// Lists contracts, optionally bounded by validity start date.
	ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error)
	// Exports contracts to an XLSX workbook.
	ExportContracts(context.Context, *ExportContractsRequest) (*ExportContractsResponse, error)
	mustEmbedUnimplementedContractsServiceServer()
}

// UnimplementedContractsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedContractsServiceServer struct{}

func (UnimplementedContractsServiceServer) GetContract(context.Context, *GetContractRequest) (*GetContractResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetContract not implemented")
}
func (UnimplementedContractsServiceServer) ListContracts(context.Context, *ListContractsRequest) (*ListContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListContracts not implemented")
}
func (UnimplementedContractsServiceServer) ExportContracts(context.Context, *ExportContractsRequest) (*ExportContractsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportContracts not implemented")
}
func (UnimplementedContractsServiceServer) mustEmbedUnimplementedContractsServiceServer() {}
func (UnimplementedContractsServiceServer) testEmbeddedByValue()                          {}

// UnsafeContractsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ContractsServiceServer will
// result in compilation errors.
type UnsafeContractsServiceServer interface {
	mustEmbedUnimplementedContractsServiceServer()
}

func RegisterContractsServiceServer(s grpc.ServiceRegistrar, srv ContractsServiceServer) {
	// If the following call pancis, it indicates UnimplementedContractsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ContractsService_ServiceDesc, srv)
}

func _ContractsService_GetContract_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetContractRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).GetContract(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_GetContract_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).GetContract(ctx, req.(*GetContractRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ListContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ListContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ListContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ListContracts(ctx, req.(*ListContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ContractsService_ExportContracts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportContractsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContractsServiceServer).ExportContracts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ContractsService_ExportContracts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContractsServiceServer).ExportContracts(ctx, req.(*ExportContractsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ContractsService_ServiceDesc is the grpc.ServiceDesc for ContractsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ContractsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "contracts.v1.ContractsService",
	HandlerType: (*ContractsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetContract",
			Handler:    _ContractsService_GetContract_Handler,
		},
		{
			MethodName: "ListContracts",
			Handler:    _ContractsService_ListContracts_Handler,
		},
		{
			MethodName: "ExportContracts",
			Handler:    _ContractsService_ExportContracts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "contracts/v1/contracts.proto",
}
