package gameplay

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// EventOutcome is the result of answering an event.
type EventOutcome struct {
	Outcome
	Event  content.Event
	Choice content.Choice
}

// RollEvent draws a random event for a zone. Completed events never trigger
// again. Trigger chances accumulate in id order against a single roll in
// [0, 100); found is false when nothing triggers.
func (s *Service) RollEvent(ctx context.Context, playerID, zoneID string) (_ content.Event, found bool, err error) {
	ctx, span := s.start(ctx, "RollEvent", playerID)
	defer finish(span, &err)

	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return content.Event{}, false, err
	}
	zoneID = strings.TrimSpace(zoneID)
	if zoneID == "" {
		zoneID = p.Zone
	}
	if _, ok := s.catalog.Zone(zoneID); !ok {
		return content.Event{}, false, notFound(apperrors.CodeZoneNotFound, "zone", "ZoneID", zoneID)
	}

	roll := s.roller.IntN(100)
	cumulative := 0
	for _, e := range s.catalog.Events(zoneID) {
		if p.CompletedEvent(e.ID) {
			continue
		}
		cumulative += e.TriggerChance
		if roll < cumulative {
			return e, true, nil
		}
	}
	return content.Event{}, false, nil
}

// MakeEventChoice applies a choice of an event and marks the event
// completed. Choosing again overwrites the recorded choice.
func (s *Service) MakeEventChoice(ctx context.Context, playerID, eventID, choiceID string) (_ EventOutcome, err error) {
	ctx, span := s.start(ctx, "MakeEventChoice", playerID)
	defer finish(span, &err)

	event, ok := s.catalog.Event(eventID)
	if !ok {
		return EventOutcome{}, notFound(apperrors.CodeEventNotFound, "event", "EventID", eventID)
	}
	choice, ok := event.Choice(choiceID)
	if !ok {
		return EventOutcome{}, apperrors.WithMetadata(apperrors.CodeChoiceNotFound, "choice not found", map[string]string{"EventID": event.ID, "ChoiceID": choiceID})
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return EventOutcome{}, err
	}

	res, err := effect.Resolve(choice.Bundle(), modifierFor(event.MaskModifiers, p), p)
	if err != nil {
		return EventOutcome{}, err
	}
	res.CompleteEvent(event.ID, choice.ID)

	out, err := s.commit(ctx, p, storage.Source{Kind: storage.SourceEvent, ID: event.ID}, res)
	if err != nil {
		return EventOutcome{}, err
	}
	return EventOutcome{Outcome: out, Event: event, Choice: choice}, nil
}
