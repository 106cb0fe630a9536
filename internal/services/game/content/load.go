package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// File names read from a content directory.
const (
	ZonesFile     = "zones.yaml"
	MasksFile     = "masks.yaml"
	NPCsFile      = "npcs.yaml"
	ItemsFile     = "items.yaml"
	ActionsFile   = "actions.yaml"
	EventsFile    = "events.yaml"
	MinigamesFile = "minigames.yaml"
)

var (
	loadEmbeddedOnce sync.Once
	embeddedCatalog  *Catalog
	embeddedErr      error
)

// Embedded returns the catalog baked into the binary. It is decoded and
// validated once.
func Embedded() (*Catalog, error) {
	loadEmbeddedOnce.Do(func() {
		sub, err := fs.Sub(embeddedData, "data")
		if err != nil {
			embeddedErr = fmt.Errorf("open embedded content: %w", err)
			return
		}
		embeddedCatalog, embeddedErr = Load(sub)
	})
	return embeddedCatalog, embeddedErr
}

// LoadDir reads a catalog from a directory on disk, or the embedded catalog
// when dir is empty.
func LoadDir(dir string) (*Catalog, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Embedded()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load decodes every content file from fsys and validates cross references.
func Load(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}
	var (
		zones     []Zone
		masks     []Mask
		npcs      []NPC
		items     []Item
		actions   []Action
		events    []Event
		minigames []Minigame
	)
	files := []struct {
		name   string
		target any
	}{
		{ZonesFile, &zones},
		{MasksFile, &masks},
		{NPCsFile, &npcs},
		{ItemsFile, &items},
		{ActionsFile, &actions},
		{EventsFile, &events},
		{MinigamesFile, &minigames},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.target); err != nil {
			return nil, err
		}
	}

	c := &Catalog{}
	var errs []error
	var err error
	if c.zones, err = index(ZonesFile, zones, func(z Zone) string { return z.ID }); err != nil {
		errs = append(errs, err)
	}
	if c.masks, err = index(MasksFile, masks, func(m Mask) string { return m.ID }); err != nil {
		errs = append(errs, err)
	}
	if c.npcs, err = index(NPCsFile, npcs, func(n NPC) string { return n.ID }); err != nil {
		errs = append(errs, err)
	}
	if c.items, err = index(ItemsFile, items, func(i Item) string { return i.ID }); err != nil {
		errs = append(errs, err)
	}
	if c.actions, err = index(ActionsFile, actions, func(a Action) string { return a.ID }); err != nil {
		errs = append(errs, err)
	}
	if c.events, err = index(EventsFile, events, func(e Event) string { return e.ID }); err != nil {
		errs = append(errs, err)
	}
	if c.minigames, err = index(MinigamesFile, minigames, func(m Minigame) string { return m.ID }); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeFile(fsys fs.FS, name string, target any) error {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func index[T any](file string, entries []T, idOf func(T) string) (map[string]T, error) {
	out := make(map[string]T, len(entries))
	for i, entry := range entries {
		id := normalizeID(idOf(entry))
		if id == "" {
			return nil, fmt.Errorf("%s: entry %d has no id", file, i)
		}
		if _, dup := out[id]; dup {
			return nil, fmt.Errorf("%s: duplicate id %q", file, id)
		}
		out[id] = entry
	}
	return out, nil
}

func (c *Catalog) validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}
	checkModifiers := func(owner string, mods effect.Modifiers) {
		for maskID := range mods {
			if _, ok := c.masks[maskID]; !ok {
				fail("%s: mask modifier for unknown mask %q", owner, maskID)
			}
		}
	}
	checkNPCs := func(owner string, deltas map[string]int) {
		for npcID := range deltas {
			if _, ok := c.npcs[npcID]; !ok {
				fail("%s: unknown npc %q", owner, npcID)
			}
		}
	}

	for id, m := range c.masks {
		for req, eventID := range m.UnlockEvents {
			if _, ok := c.events[eventID]; !ok {
				fail("mask %s: requirement %s refers to unknown event %q", id, req, eventID)
			}
		}
	}
	for id, n := range c.npcs {
		for _, slot := range n.Schedule {
			if _, err := daytime.Parse(slot.Time); err != nil {
				fail("npc %s: invalid schedule time %q", id, slot.Time)
			}
			if _, ok := c.zones[slot.Zone]; !ok {
				fail("npc %s: schedule refers to unknown zone %q", id, slot.Zone)
			}
		}
		for maskID := range n.Reactions {
			if _, ok := c.masks[maskID]; !ok {
				fail("npc %s: reaction for unknown mask %q", id, maskID)
			}
		}
		for _, eventID := range n.Events {
			if _, ok := c.events[eventID]; !ok {
				fail("npc %s: unknown event %q", id, eventID)
			}
		}
	}
	for id, i := range c.items {
		checkNPCs("item "+id, i.Effects.Relationships)
		checkModifiers("item "+id, i.MaskModifiers)
	}
	for id, a := range c.actions {
		if _, ok := c.zones[a.Zone]; !ok {
			fail("action %s: unknown zone %q", id, a.Zone)
		}
		if a.TimeCost < 0 {
			fail("action %s: negative time cost %d", id, a.TimeCost)
		}
		for _, maskID := range a.Preconditions.Masks {
			if _, ok := c.masks[maskID]; !ok && maskID != AnyMask {
				fail("action %s: precondition on unknown mask %q", id, maskID)
			}
		}
		for _, itemID := range a.Preconditions.Inventory {
			if _, ok := c.items[itemID]; !ok {
				fail("action %s: precondition on unknown item %q", id, itemID)
			}
		}
		for itemID := range a.Effects.Items {
			if _, ok := c.items[itemID]; !ok {
				fail("action %s: effect on unknown item %q", id, itemID)
			}
		}
		checkNPCs("action "+id, a.Effects.Relationships)
		checkModifiers("action "+id, a.MaskModifiers)
	}
	for id, e := range c.events {
		if e.TriggerChance < 0 || e.TriggerChance > 100 {
			fail("event %s: trigger chance %d outside [0, 100]", id, e.TriggerChance)
		}
		for _, zoneID := range e.TriggerZones {
			if _, ok := c.zones[zoneID]; !ok {
				fail("event %s: unknown trigger zone %q", id, zoneID)
			}
		}
		if len(e.Choices) == 0 {
			fail("event %s: no choices", id)
		}
		seen := map[string]bool{}
		for _, choice := range e.Choices {
			if seen[choice.ID] {
				fail("event %s: duplicate choice %q", id, choice.ID)
			}
			seen[choice.ID] = true
			if choice.Effect.Time < 0 {
				fail("event %s choice %s: negative time %d", id, choice.ID, choice.Effect.Time)
			}
			if choice.Effect.Item != "" {
				if _, ok := c.items[choice.Effect.Item]; !ok {
					fail("event %s choice %s: unknown item %q", id, choice.ID, choice.Effect.Item)
				}
			}
			checkNPCs("event "+id+" choice "+choice.ID, choice.Effect.Relationships)
		}
		checkModifiers("event "+id, e.MaskModifiers)
	}
	for id, m := range c.minigames {
		if m.Difficulty < 0 {
			fail("minigame %s: negative difficulty %d", id, m.Difficulty)
		}
		checkModifiers("minigame "+id, m.MaskModifiers)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
