package maskctl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	gamegrpc "github.com/louisbranch/masks/internal/services/game/api/grpc/game"
	server "github.com/louisbranch/masks/internal/services/game/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
)

type fixedRoller int

func (r fixedRoller) IntN(n int) int { return int(r) % n }

func startGame(t *testing.T) string {
	t.Helper()
	s, err := server.New(server.Config{
		Addr:   "127.0.0.1:0",
		DBPath: filepath.Join(t.TempDir(), "game.db"),
		Roller: fixedRoller(1),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return s.Addr()
}

func execute(t *testing.T, cfg Config, dial DialFunc, args ...string) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	root := NewRootCommand(cfg, nil, dial)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func decode[T any](t *testing.T, out string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), "output: %s", out)
	return v
}

func TestPlayerLifecycle(t *testing.T) {
	cfg := Config{Addr: startGame(t), Locale: "en-US"}

	out, err := execute(t, cfg, nil, "player", "create", "kai", "--mask", "mask_trick")
	require.NoError(t, err)
	created := decode[gamegrpc.PlayerResponse](t, out)
	require.NotEmpty(t, created.Player.ID)
	assert.Equal(t, "kai", created.Player.Username)
	assert.Equal(t, "mask_trick", created.Player.EquippedMask)

	out, err = execute(t, cfg, nil, "player", "find", "kai")
	require.NoError(t, err)
	assert.Equal(t, created.Player.ID, decode[gamegrpc.PlayerResponse](t, out).Player.ID)

	out, err = execute(t, cfg, nil, "action", "run", created.Player.ID, "mislead_npc_rumor")
	require.NoError(t, err)
	executed := decode[gamegrpc.ExecuteActionResponse](t, out)
	assert.Equal(t, 6, executed.Player.Reputation)
	assert.Equal(t, 2, executed.TriggeredCorruption)
	assert.Equal(t, "08:20", executed.Player.Time)

	out, err = execute(t, cfg, nil, "player", "stats", created.Player.ID, "--energy", "40", "--time", "09:15")
	require.NoError(t, err)
	stats := decode[gamegrpc.Outcome](t, out)
	assert.Equal(t, 40, stats.Player.Energy)
	assert.Equal(t, "09:15", stats.Player.Time)
	assert.Equal(t, 6, stats.Player.Reputation, "reputation flag was not given")

	out, err = execute(t, cfg, nil, "recap", created.Player.ID)
	require.NoError(t, err)
	recapResp := decode[gamegrpc.GetDayRecapResponse](t, out)
	assert.Equal(t, []string{"mislead_npc_rumor"}, recapResp.Recap.ActionsCompleted)

	out, err = execute(t, cfg, nil, "mask", "list", created.Player.ID)
	require.NoError(t, err)
	masks := decode[gamegrpc.ListMasksResponse](t, out)
	assert.Len(t, masks.Owned, 3)

	out, err = execute(t, cfg, nil, "log", created.Player.ID, "--page-size", "1")
	require.NoError(t, err)
	page := decode[gamegrpc.ListEffectLogResponse](t, out)
	assert.Len(t, page.Entries, 1)
	assert.NotEmpty(t, page.NextPageToken)

	_, err = execute(t, cfg, nil, "player", "delete", created.Player.ID)
	require.NoError(t, err)

	_, err = execute(t, cfg, nil, "player", "get", created.Player.ID)
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, codes.NotFound, callErr.Code)
	assert.Equal(t, "PLAYER_NOT_FOUND", callErr.Reason)
}

func TestLocalizedCallError(t *testing.T) {
	cfg := Config{Addr: startGame(t), Locale: "pt-BR"}

	out, err := execute(t, cfg, nil, "player", "create", "kai")
	require.NoError(t, err)
	created := decode[gamegrpc.PlayerResponse](t, out)

	_, err = execute(t, cfg, nil, "item", "use", created.Player.ID, "bento")
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, codes.FailedPrecondition, callErr.Code)
	assert.Equal(t, "ITEM_NOT_IN_INVENTORY", callErr.Reason)
	assert.NotEmpty(t, callErr.Message)
	assert.Contains(t, callErr.Error(), "ITEM_NOT_IN_INVENTORY")
}

func TestContentQueries(t *testing.T) {
	cfg := Config{Addr: startGame(t)}

	out, err := execute(t, cfg, nil, "zone", "get", "cafeteria", "--time", "12:00")
	require.NoError(t, err)
	zone := decode[gamegrpc.GetZoneResponse](t, out)
	require.Len(t, zone.Zone.NPCs, 1)
	assert.Equal(t, "hana", zone.Zone.NPCs[0].ID)

	out, err = execute(t, cfg, nil, "item", "list", "--type", "key")
	require.NoError(t, err)
	assert.Len(t, decode[gamegrpc.ListItemsResponse](t, out).Items, 2)

	out, err = execute(t, cfg, nil, "npc", "at", "03:00")
	require.NoError(t, err)
	assert.Empty(t, decode[gamegrpc.ListNPCsResponse](t, out).NPCs)
}

func TestArgumentErrorsSkipDial(t *testing.T) {
	dialed := false
	dial := func(context.Context, string) (*grpc.ClientConn, error) {
		dialed = true
		return nil, errors.New("unreachable")
	}
	cfg := Config{Addr: "127.0.0.1:1"}

	_, err := execute(t, cfg, dial, "mask", "corrupt", "p1", "mask_trick", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delta must be an integer")

	_, err = execute(t, cfg, dial, "player", "get")
	require.Error(t, err)
	assert.False(t, dialed)
}

func TestDialFailure(t *testing.T) {
	dial := func(context.Context, string) (*grpc.ClientConn, error) {
		return nil, errors.New("connection refused")
	}
	_, err := execute(t, Config{Addr: "127.0.0.1:1"}, dial, "zone", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect to game server at 127.0.0.1:1")

	_, err = execute(t, Config{}, dial, "zone", "list")
	require.EqualError(t, err, "game server address is required")
}
