package content

import (
	"sort"
	"strings"

	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
)

// Catalog is the validated, read-only set of definitions. Query results are
// sorted by id.
type Catalog struct {
	zones     map[string]Zone
	masks     map[string]Mask
	npcs      map[string]NPC
	items     map[string]Item
	actions   map[string]Action
	events    map[string]Event
	minigames map[string]Minigame
}

// Zone returns a zone by id.
func (c *Catalog) Zone(id string) (Zone, bool) {
	z, ok := c.zones[id]
	return z, ok
}

// Zones returns every zone, optionally filtered by type.
func (c *Catalog) Zones(zoneType string) []Zone {
	return collect(c.zones, func(z Zone) bool { return zoneType == "" || z.Type == zoneType })
}

// Mask returns a mask by id.
func (c *Catalog) Mask(id string) (Mask, bool) {
	m, ok := c.masks[id]
	return m, ok
}

// Masks returns every mask.
func (c *Catalog) Masks() []Mask {
	return collect(c.masks, nil)
}

// StarterMasks returns masks without unlock requirements.
func (c *Catalog) StarterMasks() []Mask {
	return collect(c.masks, Mask.Starter)
}

// NPC returns an NPC by id.
func (c *Catalog) NPC(id string) (NPC, bool) {
	n, ok := c.npcs[id]
	return n, ok
}

// NPCFilter narrows NPC listings. Empty fields match everything.
type NPCFilter struct {
	Role  string
	Zone  string
	Trait string
}

// NPCs returns NPCs matching filter. Zone matches any schedule slot.
func (c *Catalog) NPCs(filter NPCFilter) []NPC {
	return collect(c.npcs, func(n NPC) bool {
		if filter.Role != "" && n.Role != filter.Role {
			return false
		}
		if filter.Trait != "" && !n.HasTrait(filter.Trait) {
			return false
		}
		if filter.Zone != "" {
			for _, slot := range n.Schedule {
				if slot.Zone == filter.Zone {
					return true
				}
			}
			return false
		}
		return true
	})
}

// NPCsAt returns NPCs with a schedule slot exactly at t, in zone if given.
func (c *Catalog) NPCsAt(t daytime.Clock, zone string) []NPC {
	at := t.String()
	return collect(c.npcs, func(n NPC) bool {
		for _, slot := range n.Schedule {
			if slot.Time == at && (zone == "" || slot.Zone == zone) {
				return true
			}
		}
		return false
	})
}

// Item returns an item by id.
func (c *Catalog) Item(id string) (Item, bool) {
	i, ok := c.items[id]
	return i, ok
}

// Items returns every item, optionally filtered by type.
func (c *Catalog) Items(itemType string) []Item {
	return collect(c.items, func(i Item) bool { return itemType == "" || i.Type == itemType })
}

// Action returns an action by id.
func (c *Catalog) Action(id string) (Action, bool) {
	a, ok := c.actions[id]
	return a, ok
}

// ActionFilter narrows action listings. Empty fields match everything.
type ActionFilter struct {
	Zone      string
	RiskLevel string
}

// Actions returns actions matching filter.
func (c *Catalog) Actions(filter ActionFilter) []Action {
	return collect(c.actions, func(a Action) bool {
		return (filter.Zone == "" || a.Zone == filter.Zone) &&
			(filter.RiskLevel == "" || a.RiskLevel == filter.RiskLevel)
	})
}

// Event returns an event by id.
func (c *Catalog) Event(id string) (Event, bool) {
	e, ok := c.events[id]
	return e, ok
}

// Events returns events, optionally only those triggering in zone.
func (c *Catalog) Events(zone string) []Event {
	return collect(c.events, func(e Event) bool { return zone == "" || e.TriggersIn(zone) })
}

// Minigame returns a minigame by id.
func (c *Catalog) Minigame(id string) (Minigame, bool) {
	m, ok := c.minigames[id]
	return m, ok
}

// Minigames returns minigames, optionally filtered by class.
func (c *Catalog) Minigames(classID string) []Minigame {
	return collect(c.minigames, func(m Minigame) bool { return classID == "" || m.ClassID == classID })
}

// ZoneDetail is a zone with everything that can happen in it.
type ZoneDetail struct {
	Zone    Zone     `json:"zone"`
	NPCs    []NPC    `json:"npcs"`
	Actions []Action `json:"actions"`
	Events  []Event  `json:"events"`
}

// ZoneDetail collects the NPCs, actions and events of a zone.
func (c *Catalog) ZoneDetail(id string) (ZoneDetail, bool) {
	z, ok := c.zones[id]
	if !ok {
		return ZoneDetail{}, false
	}
	return ZoneDetail{
		Zone:    z,
		NPCs:    c.NPCs(NPCFilter{Zone: id}),
		Actions: c.Actions(ActionFilter{Zone: id}),
		Events:  c.Events(id),
	}, true
}

// ZoneDetailAt is ZoneDetail with only the NPCs scheduled there at t.
func (c *Catalog) ZoneDetailAt(id string, t daytime.Clock) (ZoneDetail, bool) {
	detail, ok := c.ZoneDetail(id)
	if !ok {
		return ZoneDetail{}, false
	}
	detail.NPCs = c.NPCsAt(t, id)
	return detail, true
}

func collect[T any](entries map[string]T, keep func(T) bool) []T {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		entry := entries[id]
		if keep == nil || keep(entry) {
			out = append(out, entry)
		}
	}
	return out
}

func normalizeID(id string) string {
	return strings.TrimSpace(id)
}
