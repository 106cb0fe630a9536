package gameplay

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// ActionOutcome is the result of performing an action.
type ActionOutcome struct {
	Outcome
	Action content.Action
	// TriggeredCorruption is the extra corruption the equipped mask drew
	// from the action, before clamping.
	TriggeredCorruption int
}

// AvailableAction is an action the player meets the preconditions for.
type AvailableAction struct {
	content.Action
	// FitsPeriod is false when the time cost runs past the current period.
	FitsPeriod bool
}

// ListAvailableActions returns the actions of a zone the player can perform
// now. An empty zone means the player's current zone.
func (s *Service) ListAvailableActions(ctx context.Context, playerID, zoneID string) (_ []AvailableAction, err error) {
	ctx, span := s.start(ctx, "ListAvailableActions", playerID)
	defer finish(span, &err)

	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		zoneID = p.Zone
	}
	if zoneID != "" {
		if _, ok := s.catalog.Zone(zoneID); !ok {
			return nil, notFound(apperrors.CodeZoneNotFound, "zone", "ZoneID", zoneID)
		}
	}

	var available []AvailableAction
	for _, a := range s.catalog.Actions(content.ActionFilter{Zone: zoneID}) {
		if actionAvailable(a, p) {
			available = append(available, AvailableAction{Action: a, FitsPeriod: daytime.CanComplete(p.Time, a.TimeCost)})
		}
	}
	return available, nil
}

// ExecuteAction performs an action: checks its preconditions, spends its
// time, applies its effects and feeds the equipped mask when the action
// matches one of its corruption triggers.
func (s *Service) ExecuteAction(ctx context.Context, playerID, actionID string) (_ ActionOutcome, err error) {
	ctx, span := s.start(ctx, "ExecuteAction", playerID)
	defer finish(span, &err)

	action, ok := s.catalog.Action(actionID)
	if !ok {
		return ActionOutcome{}, notFound(apperrors.CodeActionNotFound, "action", "ActionID", actionID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return ActionOutcome{}, err
	}
	if !actionAvailable(action, p) {
		return ActionOutcome{}, apperrors.WithMetadata(apperrors.CodeActionUnavailable, "action preconditions not met", map[string]string{"Action": action.Name})
	}

	res, err := effect.Resolve(action.Bundle(), modifierFor(action.MaskModifiers, p), p)
	if err != nil {
		return ActionOutcome{}, err
	}

	triggered := 0
	if equipped := p.EquippedMask(); equipped != "" {
		if def, ok := s.catalog.Mask(equipped); ok {
			triggered = def.Definition().TriggerCorruption(action.ID+" "+action.Name, s.roller)
			res.AddEquippedCorruption(triggered)
		}
	}

	out, err := s.commit(ctx, p, storage.Source{Kind: storage.SourceAction, ID: action.ID}, res)
	if err != nil {
		return ActionOutcome{}, err
	}
	return ActionOutcome{Outcome: out, Action: action, TriggeredCorruption: triggered}, nil
}

func actionAvailable(a content.Action, p player.State) bool {
	return a.Available(p.EquippedMask(), p.Inventory.Has)
}
