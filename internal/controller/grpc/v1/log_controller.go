package grpcv1

import (
	"context"
	"errors"

	logginghelper "github.com/Egor213/LogBoard/internal/controller/common/logging"
	"github.com/Egor213/LogBoard/internal/controller/common/payloads"
	"github.com/Egor213/LogBoard/internal/controller/validators"
	"github.com/Egor213/LogBoard/internal/service"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type LogController struct {
	logService service.Log
}

func NewLogController(ls service.Log) *LogController {
	return &LogController{
		logService: ls,
	}
}

func (c *LogController) GetLogs(ctx context.Context, req *payloads.LogQuery) (*payloads.LogsResponse, error) {
	const op = "GetLogs"
	logginghelper.LogReceived(logginghelper.TransportGRPC, op, log.Fields{"source": req.Source, "severity": req.Severity})

	filter, page, err := req.Parse(validators.MaxListLimit)
	if err != nil {
		logginghelper.LogInvalid(logginghelper.TransportGRPC, op, err)
		return nil, status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	}

	logsPage, err := c.logService.GetLogs(ctx, filter, page)
	if err != nil {
		return nil, toStatus(op, err)
	}

	resp := payloads.NewLogsResponse(logsPage)
	return &resp, nil
}

func (c *LogController) GetAggregatedLogs(ctx context.Context, req *payloads.LogQuery) (*payloads.AggregatedLogsResponse, error) {
	const op = "GetAggregatedLogs"
	logginghelper.LogReceived(logginghelper.TransportGRPC, op, log.Fields{"source": req.Source, "severity": req.Severity})

	filter, _, err := req.Parse(validators.MaxAggregateLimit)
	if err != nil {
		logginghelper.LogInvalid(logginghelper.TransportGRPC, op, err)
		return nil, status.Errorf(codes.InvalidArgument, "invalid argument: %s", err)
	}

	agg, err := c.logService.GetAggregatedLogs(ctx, filter)
	if err != nil {
		return nil, toStatus(op, err)
	}

	resp := payloads.NewAggregatedLogsResponse(agg)
	return &resp, nil
}

func (c *LogController) GetLog(ctx context.Context, req *payloads.GetLogRequest) (*payloads.LogResponse, error) {
	const op = "GetLog"
	logginghelper.LogReceived(logginghelper.TransportGRPC, op, log.Fields{"id": req.Id})

	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "id must be specified")
	}

	logObj, err := c.logService.GetLog(ctx, req.Id)
	if err != nil {
		return nil, toStatus(op, err)
	}

	resp := payloads.NewLogResponse(logObj)
	return &resp, nil
}

func toStatus(op string, err error) error {
	if errors.Is(err, service.ErrLogNotFound) {
		return status.Error(codes.NotFound, service.ErrLogNotFound.Error())
	}
	logginghelper.LogError(logginghelper.TransportGRPC, op, err)
	return status.Error(codes.Internal, "internal error")
}
