package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
)

// ErrNotFound indicates a requested persistence record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ErrUsernameTaken indicates a create collided with an existing username.
var ErrUsernameTaken = apperrors.New(apperrors.CodePlayerUsernameTaken, "username already taken")

// SourceKind names what produced a resolution.
type SourceKind string

const (
	SourceAction   SourceKind = "action"
	SourceEvent    SourceKind = "event"
	SourceItem     SourceKind = "item"
	SourceMinigame SourceKind = "minigame"
	SourceMask     SourceKind = "mask"
	SourcePlayer   SourceKind = "player"
)

// Source identifies the content entry behind a resolution.
type Source struct {
	Kind SourceKind `json:"kind"`
	ID   string     `json:"id,omitempty"`
}

// Resolution is the unit of persistence: every mutation from one handler
// call, applied all-or-nothing.
type Resolution struct {
	PlayerID string
	// Day is the in-game day the resolution started on; every log entry is
	// filed under it.
	Day        int
	Source     Source
	Mutations  []effect.Mutation
	RecordedAt time.Time
}

// EffectLogEntry is one persisted mutation.
type EffectLogEntry struct {
	Seq        uint64          `json:"seq"`
	PlayerID   string          `json:"player_id"`
	Day        int             `json:"day"`
	Source     Source          `json:"source"`
	Mutation   effect.Mutation `json:"mutation"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// PlayerStore owns player snapshots.
type PlayerStore interface {
	// CreatePlayer inserts a new player with its owned masks and equipped mask.
	CreatePlayer(ctx context.Context, p player.State) error
	GetPlayer(ctx context.Context, id string) (player.State, error)
	GetPlayerByUsername(ctx context.Context, username string) (player.State, error)
	// DeletePlayer removes the player and every row that belongs to it.
	DeletePlayer(ctx context.Context, id string) error
	// ApplyResolution persists the mutations and their log entries in one
	// transaction and returns the stored entries.
	ApplyResolution(ctx context.Context, r Resolution) ([]EffectLogEntry, error)
}

// Effect log page bounds shared by every store and the gRPC surface.
const (
	DefaultEffectLogPageSize = 50
	MaxEffectLogPageSize     = 200
)

// ListEffectLogRequest selects a page of log entries in sequence order.
type ListEffectLogRequest struct {
	PlayerID string
	// Day filters to one in-game day when positive.
	Day      int
	AfterSeq uint64
	PageSize int
}

// Limit returns PageSize bounded to the effect log page limits.
func (r ListEffectLogRequest) Limit() int {
	switch {
	case r.PageSize <= 0:
		return DefaultEffectLogPageSize
	case r.PageSize > MaxEffectLogPageSize:
		return MaxEffectLogPageSize
	default:
		return r.PageSize
	}
}

// EffectLogPage is a page of log entries. NextAfterSeq is zero on the last
// page.
type EffectLogPage struct {
	Entries      []EffectLogEntry
	NextAfterSeq uint64
}

// EffectLogStore reads the mutation history.
type EffectLogStore interface {
	ListEffectLog(ctx context.Context, req ListEffectLogRequest) (EffectLogPage, error)
	// ListDayEffects returns every entry of one day, oldest first.
	ListDayEffects(ctx context.Context, playerID string, day int) ([]EffectLogEntry, error)
}

// Store is the full persistence surface of the game service.
type Store interface {
	PlayerStore
	EffectLogStore
	Close() error
}
