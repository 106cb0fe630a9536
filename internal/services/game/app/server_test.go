package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type fixedRoller int

func (r fixedRoller) IntN(n int) int { return int(r) % n }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{
		Addr:   "127.0.0.1:0",
		DBPath: filepath.Join(t.TempDir(), "nested", "game.db"),
		Roller: fixedRoller(0),
	})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s
}

func dial(t *testing.T, addr string) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.WaitForReady(true)),
	)
	if err != nil {
		t.Fatalf("dial server: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// TestServeStopsOnContext verifies the server serves and stops on cancel.
func TestServeStopsOnContext(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve(ctx)
	}()

	client := gamegrpc.NewClient(dial(t, s.Addr()))
	callCtx, callCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer callCancel()
	resp, err := client.CreatePlayer(callCtx, &gamegrpc.CreatePlayerRequest{Username: "kai"})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	if resp.Player.Username != "kai" {
		t.Fatalf("username = %q, want kai", resp.Player.Username)
	}

	cancel()

	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop in time")
	}
}

// TestHealthCheckReportsServing ensures gRPC health checks report SERVING.
func TestHealthCheckReportsServing(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve(ctx)
	}()
	defer func() {
		cancel()
		<-serveErr
	}()

	healthClient := grpc_health_v1.NewHealthClient(dial(t, s.Addr()))
	callCtx, callCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer callCancel()
	for _, service := range []string{"", gamegrpc.ServiceName} {
		resp, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		if err != nil {
			t.Fatalf("health check %q: %v", service, err)
		}
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			t.Fatalf("health %q = %v, want SERVING", service, resp.GetStatus())
		}
	}
}

func TestNewRequiresAddr(t *testing.T) {
	if _, err := New(Config{DBPath: filepath.Join(t.TempDir(), "game.db")}); err == nil {
		t.Fatal("expected error without listen address")
	}
}

func TestNewRejectsMissingContentDir(t *testing.T) {
	_, err := New(Config{
		Addr:       "127.0.0.1:0",
		DBPath:     filepath.Join(t.TempDir(), "game.db"),
		ContentDir: filepath.Join(t.TempDir(), "missing"),
	})
	if err == nil {
		t.Fatal("expected error for missing content dir")
	}
}
