package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	platformgrpc "github.com/louisbranch/masks/internal/platform/grpc"
	"github.com/louisbranch/masks/internal/platform/timeouts"
	"github.com/louisbranch/masks/internal/random"
	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	"github.com/louisbranch/masks/internal/services/game/api/grpc/interceptors"
	grpcmeta "github.com/louisbranch/masks/internal/services/game/api/grpc/metadata"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
	"github.com/louisbranch/masks/internal/services/game/gameplay"
	"github.com/louisbranch/masks/internal/services/game/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config describes how the game server listens and where it keeps state.
type Config struct {
	// Addr is the listen address, for example ":8082" or "127.0.0.1:0".
	Addr string
	// DBPath locates the SQLite database. It defaults to data/game.db.
	DBPath string
	// ContentDir overrides the embedded content catalog when set.
	ContentDir string
	Logger     *zap.Logger
	// Roller replaces the crypto-seeded event and corruption roller.
	Roller mask.Roller
}

// Server hosts the game gRPC service.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *sqlite.Store
	logger     *zap.Logger
}

// New opens storage and content, and binds the listener.
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("listen address is required")
	}

	catalog, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	roller := cfg.Roller
	if roller == nil {
		seeded, err := random.NewCryptoSeededRoller()
		if err != nil {
			return nil, fmt.Errorf("seed roller: %w", err)
		}
		roller = seeded
	}

	store, err := openStore(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	svc, err := gameplay.NewService(store, catalog, gameplay.WithRoller(roller))
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("new gameplay service: %w", err)
	}
	gameServer, err := gamegrpc.NewServer(svc)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("new game server: %w", err)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcmeta.UnaryServerInterceptor(nil),
			interceptors.LoggingInterceptor(logger),
		),
	)
	gamegrpc.RegisterGameServer(grpcServer, gameServer)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(gamegrpc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		logger:     logger,
	}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates a server and serves until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	s, err := New(cfg)
	if err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve accepts requests until ctx is canceled, then drains in-flight calls
// and closes the store.
func (s *Server) Serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.closeStore()

	s.logger.Info("game server listening", zap.String("addr", s.Addr()), zap.String("codec", platformgrpc.JSONCodecName))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	handleErr := func(err error) error {
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.stop()
		return handleErr(<-serveErr)
	case err := <-serveErr:
		return handleErr(err)
	}
}

// stop drains in-flight calls, forcing the server down once
// timeouts.Shutdown elapses.
func (s *Server) stop() {
	drained := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(timeouts.Shutdown):
		s.logger.Warn("graceful stop timed out, forcing shutdown")
		s.grpcServer.Stop()
		<-drained
	}
}

func (s *Server) closeStore() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("close game store", zap.Error(err))
	}
}

func openStore(path string) (*sqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join("data", "game.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	return store, nil
}
