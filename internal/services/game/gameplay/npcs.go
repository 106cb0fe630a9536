package gameplay

import (
	"context"
	"strings"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
)

// NPCReaction returns how an NPC reacts to a mask. An empty mask id means no
// mask, which falls back to the default reaction.
func (s *Service) NPCReaction(npcID, maskID string) (string, error) {
	npc, ok := s.catalog.NPC(npcID)
	if !ok {
		return "", notFound(apperrors.CodeNPCNotFound, "npc", "NPCID", npcID)
	}
	return npc.Reaction(strings.TrimSpace(maskID)), nil
}

// NPCsAt returns the NPCs scheduled at an exact time, in a zone when given.
func (s *Service) NPCsAt(at, zoneID string) ([]content.NPC, error) {
	clock, err := daytime.Parse(at)
	if err != nil {
		return nil, err
	}
	zoneID = strings.TrimSpace(zoneID)
	if zoneID != "" {
		if _, ok := s.catalog.Zone(zoneID); !ok {
			return nil, notFound(apperrors.CodeZoneNotFound, "zone", "ZoneID", zoneID)
		}
	}
	return s.catalog.NPCsAt(clock, zoneID), nil
}

// Relationship returns the player's affinity with an NPC, or the NPC's
// default affinity when they have not interacted.
func (s *Service) Relationship(ctx context.Context, playerID, npcID string) (_ int, err error) {
	ctx, span := s.start(ctx, "Relationship", playerID)
	defer finish(span, &err)

	npc, ok := s.catalog.NPC(npcID)
	if !ok {
		return 0, notFound(apperrors.CodeNPCNotFound, "npc", "NPCID", npcID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return 0, err
	}
	if affinity, ok := p.Relationships.Affinity(npc.ID); ok {
		return affinity, nil
	}
	return npc.Relationship, nil
}
