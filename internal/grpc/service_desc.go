package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service is declared by hand over well-known types; payloads are JSON
// objects carried in google.protobuf.Struct.
const (
	ServiceName                   = "assessment.v1.AssessmentService"
	ListQuestionsFullMethod       = "/" + ServiceName + "/ListQuestions"
	ProcessAssessmentFullMethod   = "/" + ServiceName + "/ProcessAssessment"
	assessmentServiceMetadataFile = "assessment/v1/assessment.proto"
)

// AssessmentServer is the server API for assessment.v1.AssessmentService.
type AssessmentServer interface {
	ListQuestions(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	ProcessAssessment(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterAssessmentServer(s grpc.ServiceRegistrar, srv AssessmentServer) {
	s.RegisterService(&AssessmentServiceDesc, srv)
}

var AssessmentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AssessmentServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListQuestions",
			Handler:    listQuestionsHandler,
		},
		{
			MethodName: "ProcessAssessment",
			Handler:    processAssessmentHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: assessmentServiceMetadataFile,
}

func listQuestionsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssessmentServer).ListQuestions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListQuestionsFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AssessmentServer).ListQuestions(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func processAssessmentHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AssessmentServer).ProcessAssessment(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ProcessAssessmentFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AssessmentServer).ProcessAssessment(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// AssessmentClient is the client API for assessment.v1.AssessmentService.
type AssessmentClient struct {
	cc grpc.ClientConnInterface
}

func NewAssessmentClient(cc grpc.ClientConnInterface) *AssessmentClient {
	return &AssessmentClient{cc: cc}
}

func (c *AssessmentClient) ListQuestions(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListQuestionsFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AssessmentClient) ProcessAssessment(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ProcessAssessmentFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
