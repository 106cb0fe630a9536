package gameplay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// CreatePlayerInput describes a new player.
type CreatePlayerInput struct {
	Username string
	// StartingMask, when set, must be a starter mask and is equipped.
	StartingMask string
}

// CreatePlayer registers a player who owns every starter mask.
func (s *Service) CreatePlayer(ctx context.Context, in CreatePlayerInput) (_ player.State, err error) {
	ctx, span := s.start(ctx, "CreatePlayer", "")
	defer finish(span, &err)

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return player.State{}, apperrors.New(apperrors.CodePlayerUsernameEmpty, "username is required")
	}
	id, err := s.newID()
	if err != nil {
		return player.State{}, fmt.Errorf("generate player id: %w", err)
	}

	p := player.New(id, username, s.now())
	for _, m := range s.catalog.StarterMasks() {
		p.Masks.Add(m.ID)
	}
	if start := strings.TrimSpace(in.StartingMask); start != "" {
		if _, ok := s.catalog.Mask(start); !ok {
			return player.State{}, notFound(apperrors.CodeMaskNotFound, "mask", "Mask", start)
		}
		if !p.Masks.Equip(start) {
			return player.State{}, apperrors.WithMetadata(apperrors.CodeMaskLocked, "mask is locked", map[string]string{"Mask": start})
		}
	}

	if err := s.store.CreatePlayer(ctx, p); err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			return player.State{}, apperrors.WithMetadata(apperrors.CodePlayerUsernameTaken, "username already taken", map[string]string{"Username": username})
		}
		return player.State{}, fmt.Errorf("create player: %w", err)
	}
	return s.store.GetPlayer(ctx, id)
}

// GetPlayer returns a player snapshot.
func (s *Service) GetPlayer(ctx context.Context, playerID string) (_ player.State, err error) {
	ctx, span := s.start(ctx, "GetPlayer", playerID)
	defer finish(span, &err)
	return s.loadPlayer(ctx, playerID)
}

// GetPlayerByUsername returns the player registered under username.
func (s *Service) GetPlayerByUsername(ctx context.Context, username string) (_ player.State, err error) {
	ctx, span := s.start(ctx, "GetPlayerByUsername", "")
	defer finish(span, &err)

	username = strings.TrimSpace(username)
	if username == "" {
		return player.State{}, apperrors.New(apperrors.CodePlayerUsernameEmpty, "username is required")
	}
	p, err := s.store.GetPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return player.State{}, apperrors.WithMetadata(apperrors.CodePlayerNotFound, "player not found", map[string]string{"PlayerID": username})
		}
		return player.State{}, fmt.Errorf("load player: %w", err)
	}
	return p, nil
}

// DeletePlayer removes a player with all of its progress and history.
func (s *Service) DeletePlayer(ctx context.Context, playerID string) (err error) {
	ctx, span := s.start(ctx, "DeletePlayer", playerID)
	defer finish(span, &err)

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return apperrors.New(apperrors.CodePlayerIDEmpty, "player id is required")
	}
	if err := s.store.DeletePlayer(ctx, playerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.WithMetadata(apperrors.CodePlayerNotFound, "player not found", map[string]string{"PlayerID": playerID})
		}
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

// MoveToZone sets the player's current zone.
func (s *Service) MoveToZone(ctx context.Context, playerID, zoneID string) (_ Outcome, err error) {
	ctx, span := s.start(ctx, "MoveToZone", playerID)
	defer finish(span, &err)

	zone, ok := s.catalog.Zone(zoneID)
	if !ok {
		return Outcome{}, notFound(apperrors.CodeZoneNotFound, "zone", "ZoneID", zoneID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	res := effect.NewResult(p)
	res.SetZone(zone.ID)
	return s.commit(ctx, p, storage.Source{Kind: storage.SourcePlayer, ID: "move"}, res)
}

// StatsUpdate overwrites the fields that are set.
type StatsUpdate struct {
	Energy     *int
	Mood       *string
	Time       *string
	Reputation *int
}

// UpdateStats overwrites stats directly, outside any content effect.
func (s *Service) UpdateStats(ctx context.Context, playerID string, update StatsUpdate) (_ Outcome, err error) {
	ctx, span := s.start(ctx, "UpdateStats", playerID)
	defer finish(span, &err)

	var mood string
	if update.Mood != nil {
		if mood = strings.TrimSpace(*update.Mood); mood == "" {
			return Outcome{}, apperrors.New(apperrors.CodePlayerMoodEmpty, "mood is required")
		}
	}
	var clock daytime.Clock
	if update.Time != nil {
		clock, err = daytime.Parse(*update.Time)
		if err != nil {
			return Outcome{}, err
		}
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}

	res := effect.NewResult(p)
	if update.Energy != nil {
		res.SetEnergy(*update.Energy)
	}
	if update.Mood != nil {
		res.SetMood(mood, true)
	}
	if update.Time != nil {
		res.SetTime(clock)
	}
	if update.Reputation != nil {
		res.SetReputation(*update.Reputation)
	}
	return s.commit(ctx, p, storage.Source{Kind: storage.SourcePlayer, ID: "stats"}, res)
}

// GrantItem adds quantity of an item; quantity defaults to one.
func (s *Service) GrantItem(ctx context.Context, playerID, itemID string, quantity int) (_ Outcome, err error) {
	ctx, span := s.start(ctx, "GrantItem", playerID)
	defer finish(span, &err)
	return s.changeItem(ctx, playerID, itemID, defaultQuantity(quantity))
}

// RemoveItem takes quantity of an item away, deleting the entry when none
// remain. Removing an item the player does not hold changes nothing.
func (s *Service) RemoveItem(ctx context.Context, playerID, itemID string, quantity int) (_ Outcome, err error) {
	ctx, span := s.start(ctx, "RemoveItem", playerID)
	defer finish(span, &err)
	return s.changeItem(ctx, playerID, itemID, -defaultQuantity(quantity))
}

func (s *Service) changeItem(ctx context.Context, playerID, itemID string, delta int) (Outcome, error) {
	item, ok := s.catalog.Item(itemID)
	if !ok {
		return Outcome{}, notFound(apperrors.CodeItemNotFound, "item", "Item", itemID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	res := effect.NewResult(p)
	res.AddItem(item.ID, delta)
	return s.commit(ctx, p, storage.Source{Kind: storage.SourcePlayer, ID: "inventory"}, res)
}

func defaultQuantity(quantity int) int {
	if quantity <= 0 {
		return 1
	}
	return quantity
}
