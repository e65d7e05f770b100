package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/prasetyadi/contracts-tracker/internal/common"
)

// UnaryRequestID tags every call with a request ID and logs method timing.
// Errors that are not already gRPC statuses get mapped through the common
// error taxonomy.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := common.RequestIDFromContext(ctx)
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			if _, ok := status.FromError(err); !ok {
				err = common.GRPCStatus(err)
			}
			logger.Error("rpc failed",
				"method", info.FullMethod,
				"request_id", requestID,
				"elapsed_ms", elapsed.Milliseconds(),
				"error", err,
			)
			return resp, err
		}

		logger.Info("rpc ok",
			"method", info.FullMethod,
			"request_id", requestID,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return resp, nil
	}
}
