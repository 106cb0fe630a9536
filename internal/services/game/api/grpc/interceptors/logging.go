// Package interceptors holds the unary interceptors of the game server.
package interceptors

import (
	"context"
	"strings"
	"time"

	grpcmeta "github.com/louisbranch/masks/internal/services/game/api/grpc/metadata"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type playerIDGetter interface {
	GetPlayerId() string
}

// LoggingInterceptor writes one structured line per unary call handled by
// the game service. Failed calls log at warn, internal failures at error.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := codes.OK
		if err != nil {
			code = status.Code(err)
		}
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("method_kind", classifyMethodKind(info.FullMethod)),
			zap.String("code", code.String()),
			zap.Duration("duration", time.Since(start)),
		}
		if playerID := playerIDFromRequest(ctx, req); playerID != "" {
			fields = append(fields, zap.String("player_id", playerID))
		}
		if requestID := grpcmeta.RequestIDFromContext(ctx); requestID != "" {
			fields = append(fields, zap.String("request_id", requestID))
		}
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		logger.Check(levelFor(code), "grpc call").Write(fields...)
		return resp, err
	}
}

func playerIDFromRequest(ctx context.Context, req any) string {
	if getter, ok := req.(playerIDGetter); ok {
		if id := strings.TrimSpace(getter.GetPlayerId()); id != "" {
			return id
		}
	}
	return grpcmeta.PlayerIDFromContext(ctx)
}

func levelFor(code codes.Code) zapcore.Level {
	switch code {
	case codes.OK:
		return zapcore.InfoLevel
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// classifyMethodKind splits methods into reads and writes by name.
func classifyMethodKind(fullMethod string) string {
	name := fullMethod
	if i := strings.LastIndex(fullMethod, "/"); i >= 0 {
		name = fullMethod[i+1:]
	}
	switch {
	case strings.HasPrefix(name, "Get"), strings.HasPrefix(name, "List"), name == "RollEvent":
		return "read"
	default:
		return "write"
	}
}
