package gameplay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/platform/id"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
	"github.com/louisbranch/masks/internal/services/game/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/masks/internal/services/game/gameplay"

// Outcome is what every mutating operation returns: the persisted snapshot,
// the values that took effect and the mutations behind them.
type Outcome struct {
	Player    player.State             `json:"-"`
	Applied   effect.Applied           `json:"applied"`
	Mutations []effect.Mutation        `json:"mutations"`
	Entries   []storage.EffectLogEntry `json:"-"`
}

// Service runs gameplay operations.
type Service struct {
	store   storage.Store
	catalog *content.Catalog
	roller  mask.Roller
	clock   func() time.Time
	newID   func() (string, error)
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithRoller sets the random source for corruption triggers and event rolls.
func WithRoller(r mask.Roller) Option {
	return func(s *Service) {
		if r != nil {
			s.roller = r
		}
	}
}

// WithClock sets the wall clock used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator sets the player id generator.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewService builds a service over store and catalog. A roller is required
// unless supplied through WithRoller.
func NewService(store storage.Store, catalog *content.Catalog, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if catalog == nil {
		return nil, errors.New("content catalog is required")
	}
	s := &Service{
		store:   store,
		catalog: catalog,
		clock:   time.Now,
		newID:   id.NewID,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.roller == nil {
		return nil, errors.New("roller is required")
	}
	return s, nil
}

// Catalog exposes the content the service was built with.
func (s *Service) Catalog() *content.Catalog {
	return s.catalog
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

func (s *Service) start(ctx context.Context, name, playerID string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "gameplay."+name, trace.WithAttributes(attribute.String("masks.player_id", playerID)))
}

func finish(span trace.Span, err *error) {
	if err != nil && *err != nil {
		span.RecordError(*err)
		span.SetStatus(otelcodes.Error, (*err).Error())
	}
	span.End()
}

func (s *Service) loadPlayer(ctx context.Context, playerID string) (player.State, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.State{}, apperrors.New(apperrors.CodePlayerIDEmpty, "player id is required")
	}
	p, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return player.State{}, apperrors.WithMetadata(apperrors.CodePlayerNotFound, "player not found", map[string]string{"PlayerID": playerID})
		}
		return player.State{}, fmt.Errorf("load player: %w", err)
	}
	return p, nil
}

// commit persists res as one resolution and returns the stored snapshot.
func (s *Service) commit(ctx context.Context, before player.State, source storage.Source, res *effect.Result) (Outcome, error) {
	out := Outcome{Player: res.Player, Applied: res.Applied, Mutations: res.Mutations}
	if !res.Changed() {
		return out, nil
	}
	entries, err := s.store.ApplyResolution(ctx, storage.Resolution{
		PlayerID:   before.ID,
		Day:        before.Day,
		Source:     source,
		Mutations:  res.Mutations,
		RecordedAt: s.now(),
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("apply resolution: %w", err)
	}
	stored, err := s.store.GetPlayer(ctx, before.ID)
	if err != nil {
		return Outcome{}, fmt.Errorf("reload player: %w", err)
	}
	out.Player = stored
	out.Entries = entries
	return out, nil
}

func notFound(code apperrors.Code, what, key, id string) error {
	return apperrors.WithMetadata(code, what+" not found", map[string]string{key: id})
}

func modifierFor(mods effect.Modifiers, p player.State) *effect.Modifier {
	return mods.For(p.EquippedMask())
}
