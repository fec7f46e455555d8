package grpcv1

import (
	"context"

	"github.com/Egor213/LogBoard/internal/controller/common/payloads"
	"google.golang.org/grpc"
)

const (
	ServiceName = "logboard.v1.LogService"

	GetLogsFullMethod           = "/" + ServiceName + "/GetLogs"
	GetAggregatedLogsFullMethod = "/" + ServiceName + "/GetAggregatedLogs"
	GetLogFullMethod            = "/" + ServiceName + "/GetLog"
)

type LogServiceServer interface {
	GetLogs(ctx context.Context, req *payloads.LogQuery) (*payloads.LogsResponse, error)
	GetAggregatedLogs(ctx context.Context, req *payloads.LogQuery) (*payloads.AggregatedLogsResponse, error)
	GetLog(ctx context.Context, req *payloads.GetLogRequest) (*payloads.LogResponse, error)
}

var LogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetLogs", Handler: getLogsHandler},
		{MethodName: "GetAggregatedLogs", Handler: getAggregatedLogsHandler},
		{MethodName: "GetLog", Handler: getLogHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "logboard/v1/log.json",
}

func RegisterLogServiceServer(s grpc.ServiceRegistrar, srv LogServiceServer) {
	s.RegisterService(&LogServiceDesc, srv)
}

func getLogsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := payloads.NewLogQuery(payloads.DefaultListLimit)
	if err := dec(&in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LogServiceServer).GetLogs(ctx, &in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetLogsFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LogServiceServer).GetLogs(ctx, req.(*payloads.LogQuery))
	}
	return interceptor(ctx, &in, info, handler)
}

func getAggregatedLogsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := payloads.NewLogQuery(payloads.DefaultAggregateLimit)
	if err := dec(&in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LogServiceServer).GetAggregatedLogs(ctx, &in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetAggregatedLogsFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LogServiceServer).GetAggregatedLogs(ctx, req.(*payloads.LogQuery))
	}
	return interceptor(ctx, &in, info, handler)
}

func getLogHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(payloads.GetLogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LogServiceServer).GetLog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetLogFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LogServiceServer).GetLog(ctx, req.(*payloads.GetLogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LogServiceClient calls LogService with the JSON codec.
type LogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewLogServiceClient(cc grpc.ClientConnInterface) *LogServiceClient {
	return &LogServiceClient{cc: cc}
}

func (c *LogServiceClient) GetLogs(ctx context.Context, in *payloads.LogQuery, opts ...grpc.CallOption) (*payloads.LogsResponse, error) {
	out := new(payloads.LogsResponse)
	if err := c.cc.Invoke(ctx, GetLogsFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LogServiceClient) GetAggregatedLogs(ctx context.Context, in *payloads.LogQuery, opts ...grpc.CallOption) (*payloads.AggregatedLogsResponse, error) {
	out := new(payloads.AggregatedLogsResponse)
	if err := c.cc.Invoke(ctx, GetAggregatedLogsFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *LogServiceClient) GetLog(ctx context.Context, in *payloads.GetLogRequest, opts ...grpc.CallOption) (*payloads.LogResponse, error) {
	out := new(payloads.LogResponse)
	if err := c.cc.Invoke(ctx, GetLogFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
