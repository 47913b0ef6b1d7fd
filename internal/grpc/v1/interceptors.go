package v1

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/Totarae/SecondBrain/internal/middleware"
)

// publicMethods не требуют токена.
var publicMethods = map[string]bool{
	FullMethod("Signup"):       true,
	FullMethod("Signin"):       true,
	FullMethod("ResolveShare"): true,
}

// AuthInterceptor проверяет токен из метаданных "authorization"
// и кладёт ID пользователя в контекст, как HTTP-middleware Auth.
func AuthInterceptor(verifier middleware.TokenVerifier, logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		var token string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("authorization"); len(values) > 0 {
				token = middleware.TokenFromHeader(values[0])
			}
		}
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing authorization token")
		}

		userID, err := verifier.Verify(token)
		if err != nil {
			logger.Debug("token rejected", zap.String("method", info.FullMethod), zap.Error(err))
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		return handler(middleware.WithUserID(ctx, userID), req)
	}
}

// LoggingInterceptor пишет в лог метод, код ответа и длительность вызова.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		logger.Info("gRPC Request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

// NewServer собирает grpc.Server с интерсепторами и зарегистрированным BrainService.
func NewServer(srv *GRPCServer, verifier middleware.TokenVerifier, logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(
		LoggingInterceptor(logger),
		AuthInterceptor(verifier, logger),
	))
	s := grpc.NewServer(opts...)
	RegisterBrainServiceServer(s, srv)
	return s
}
