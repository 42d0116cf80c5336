package middleware

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/auth"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// ContextInterceptor lifts the session and language metadata into the
// request context and logs every call.
func ContextInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		sc := auth.ShopperContext{
			SessionID: auth.GetSessionID(ctx),
			Language:  auth.GetLanguage(ctx),
		}
		ctx = auth.WithShopper(ctx, sc)

		start := time.Now()
		resp, err := handler(ctx, req)

		log.Debug("grpc request",
			zap.String("method", info.FullMethod),
			zap.String("session_id", sc.SessionID),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}
