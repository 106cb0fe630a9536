package gameplay

import (
	"context"
	"fmt"

	"github.com/louisbranch/masks/internal/services/game/recap"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// DayRecap summarizes one in-game day. A non-positive day means the player's
// current day.
func (s *Service) DayRecap(ctx context.Context, playerID string, day int) (_ recap.Recap, err error) {
	ctx, span := s.start(ctx, "DayRecap", playerID)
	defer finish(span, &err)

	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return recap.Recap{}, err
	}
	if day <= 0 {
		day = p.Day
	}
	entries, err := s.store.ListDayEffects(ctx, p.ID, day)
	if err != nil {
		return recap.Recap{}, fmt.Errorf("list day effects: %w", err)
	}
	return recap.Build(day, entries), nil
}

// ListEffectLog pages through a player's mutation history.
func (s *Service) ListEffectLog(ctx context.Context, req storage.ListEffectLogRequest) (_ storage.EffectLogPage, err error) {
	ctx, span := s.start(ctx, "ListEffectLog", req.PlayerID)
	defer finish(span, &err)

	p, err := s.loadPlayer(ctx, req.PlayerID)
	if err != nil {
		return storage.EffectLogPage{}, err
	}
	req.PlayerID = p.ID
	page, err := s.store.ListEffectLog(ctx, req)
	if err != nil {
		return storage.EffectLogPage{}, fmt.Errorf("list effect log: %w", err)
	}
	return page, nil
}
