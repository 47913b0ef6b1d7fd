package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Totarae/SecondBrain/internal/auth"
	"github.com/Totarae/SecondBrain/internal/config"
	"github.com/Totarae/SecondBrain/internal/database"
	grpcv1 "github.com/Totarae/SecondBrain/internal/grpc/v1"
	"github.com/Totarae/SecondBrain/internal/handlers"
	"github.com/Totarae/SecondBrain/internal/repositories"
	"github.com/Totarae/SecondBrain/internal/router"
	"github.com/Totarae/SecondBrain/internal/service"
	"github.com/Totarae/SecondBrain/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, _ := zap.NewProduction()

	// Инициализация конфигурации
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	l, err := newLogger(cfg.LogLevel)
	if err != nil {
		logger.Fatal("Ошибка инициализации логгера", zap.Error(err))
	}
	logger = l
	defer logger.Sync()

	logger.Info("Инициализация конфигурации",
		zap.String("address", cfg.ServerAddress),
		zap.String("grpc_address", cfg.GRPCAddress),
		zap.String("mode", cfg.Mode),
		zap.String("file_storage_path", cfg.FileStoragePath),
		zap.Bool("https", cfg.EnableHTTPS),
		zap.Duration("token_ttl", cfg.TokenTTL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Ошибка при работе сервера", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}

// openRepository выбирает хранилище по режиму: PostgreSQL, файл или память.
func openRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.Repository, func(), error) {
	if cfg.Mode == config.ModeDatabase {
		if err := database.Migrate(cfg.DatabaseDSN, logger); err != nil {
			return nil, nil, err
		}
		db, err := database.NewDB(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewBrainRepository(db), db.Close, nil
	}

	store, err := storage.NewMemoryStore(cfg.FileStoragePath, logger)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	repo, closeRepo, err := openRepository(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer closeRepo()

	tokens := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	users := service.NewUserService(repo, tokens, logger)
	content := service.NewContentService(repo, logger)

	handler := handlers.NewHandler(users, content, logger)
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router.NewRouter(handler, cfg.AllowedOrigins, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress))
		var err error
		if cfg.EnableHTTPS {
			err = srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var grpcSrv *grpc.Server
	if cfg.GRPCAddress != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			_ = srv.Close()
			return fmt.Errorf("grpc listen: %w", err)
		}
		grpcSrv = grpcv1.NewServer(grpcv1.NewGRPCServer(users, content, logger), users, logger)
		go func() {
			logger.Info("gRPC сервер запущен", zap.String("address", cfg.GRPCAddress))
			if err := grpcSrv.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("Получен сигнал завершения")
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(shutdownErr))
	}
	logger.Info("Сервер остановлен")
	return err
}
