package gameplay

import (
	"strings"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
)

// ListZones returns zones, optionally of one type.
func (s *Service) ListZones(zoneType string) []content.Zone {
	return s.catalog.Zones(strings.TrimSpace(zoneType))
}

// GetZone returns a zone with its NPCs, actions and events. When at is set,
// only the NPCs scheduled there at that time are included.
func (s *Service) GetZone(zoneID, at string) (content.ZoneDetail, error) {
	var (
		detail content.ZoneDetail
		ok     bool
	)
	if at = strings.TrimSpace(at); at != "" {
		clock, err := daytime.Parse(at)
		if err != nil {
			return content.ZoneDetail{}, err
		}
		detail, ok = s.catalog.ZoneDetailAt(zoneID, clock)
	} else {
		detail, ok = s.catalog.ZoneDetail(zoneID)
	}
	if !ok {
		return content.ZoneDetail{}, notFound(apperrors.CodeZoneNotFound, "zone", "ZoneID", zoneID)
	}
	return detail, nil
}

// ListNPCs returns NPCs matching filter.
func (s *Service) ListNPCs(filter content.NPCFilter) []content.NPC {
	return s.catalog.NPCs(filter)
}

// ListItems returns items, optionally of one type.
func (s *Service) ListItems(itemType string) []content.Item {
	return s.catalog.Items(strings.TrimSpace(itemType))
}

// ListMinigames returns minigames, optionally of one class.
func (s *Service) ListMinigames(classID string) []content.Minigame {
	return s.catalog.Minigames(strings.TrimSpace(classID))
}

// ListActions returns actions matching filter, regardless of any player.
func (s *Service) ListActions(filter content.ActionFilter) []content.Action {
	return s.catalog.Actions(filter)
}
