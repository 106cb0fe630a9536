// Package content holds the immutable game definitions: zones, masks, NPCs,
// items, actions, events and minigames.
package content

import (
	"strings"

	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
)

// AnyMask in an action's mask precondition accepts any equipped mask, or none.
const AnyMask = "any"

// ItemTypeConsumable items are used up one at a time.
const ItemTypeConsumable = "consumable"

// DefaultReaction is returned when an NPC has no reaction for a mask.
const DefaultReaction = "No specific reaction."

// Zone is a place on the school map.
type Zone struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
}

// DailyEffects are the passive effects of wearing a mask.
type DailyEffects struct {
	DialogueColor string     `yaml:"dialogue_color" json:"dialogue_color,omitempty"`
	Overlay       string     `yaml:"overlay" json:"overlay,omitempty"`
	BonusStats    mask.Stats `yaml:"bonus_stats" json:"bonus_stats"`
}

// Mask is a wearable persona definition.
type Mask struct {
	ID                 string          `yaml:"id" json:"id"`
	Name               string          `yaml:"name" json:"name"`
	Alias              string          `yaml:"alias" json:"alias,omitempty"`
	Description        string          `yaml:"description" json:"description,omitempty"`
	Personality        string          `yaml:"personality" json:"personality,omitempty"`
	Symbol             string          `yaml:"symbol" json:"symbol,omitempty"`
	Abilities          map[string]bool `yaml:"abilities" json:"abilities,omitempty"`
	DailyEffects       DailyEffects    `yaml:"daily_effects" json:"daily_effects"`
	CorruptionTriggers []string        `yaml:"corruption_triggers" json:"corruption_triggers,omitempty"`
	UnlockRequirements []string        `yaml:"unlock_requirements" json:"unlock_requirements,omitempty"`
	// UnlockEvents maps a requirement name to the event whose completion
	// satisfies it.
	UnlockEvents map[string]string `yaml:"unlock_events" json:"unlock_events,omitempty"`
}

// Definition converts the content entry into the domain definition.
func (m Mask) Definition() mask.Definition {
	abilities := make(map[mask.Ability]bool, len(m.Abilities))
	for name, on := range m.Abilities {
		abilities[mask.Ability(name)] = on
	}
	return mask.Definition{
		ID:                 m.ID,
		Name:               m.Name,
		Abilities:          abilities,
		BonusStats:         m.DailyEffects.BonusStats,
		CorruptionTriggers: m.CorruptionTriggers,
		UnlockRequirements: m.UnlockRequirements,
	}
}

// Starter reports whether the mask is owned from the start of a game.
func (m Mask) Starter() bool {
	return len(m.UnlockRequirements) == 0
}

// ScheduleSlot places an NPC in a zone at a given time.
type ScheduleSlot struct {
	Time string `yaml:"time" json:"time"`
	Zone string `yaml:"zone" json:"zone"`
}

// NPC is a student or teacher.
type NPC struct {
	ID          string         `yaml:"id" json:"id"`
	Name        string         `yaml:"name" json:"name"`
	Role        string         `yaml:"role" json:"role"`
	Traits      []string       `yaml:"traits" json:"traits,omitempty"`
	Personality string         `yaml:"personality" json:"personality,omitempty"`
	Schedule    []ScheduleSlot `yaml:"schedule" json:"schedule,omitempty"`
	// Relationship is the default affinity before the player has any.
	Relationship int               `yaml:"relationship" json:"relationship"`
	RumorScore   int               `yaml:"rumor_score" json:"rumor_score"`
	Reactions    map[string]string `yaml:"reactions" json:"reactions,omitempty"`
	Events       []string          `yaml:"events" json:"events,omitempty"`
}

// Reaction returns how the NPC reacts to a mask.
func (n NPC) Reaction(maskID string) string {
	if r, ok := n.Reactions[maskID]; ok {
		return r
	}
	return DefaultReaction
}

// HasTrait reports whether the NPC lists trait, ignoring case.
func (n NPC) HasTrait(trait string) bool {
	for _, t := range n.Traits {
		if strings.EqualFold(t, trait) {
			return true
		}
	}
	return false
}

// ItemEffects are applied when an item is used.
type ItemEffects struct {
	Energy        int            `yaml:"energy" json:"energy,omitempty"`
	Mood          string         `yaml:"mood" json:"mood,omitempty"`
	Relationships map[string]int `yaml:"relationships" json:"relationships,omitempty"`
}

// Item is an inventory object.
type Item struct {
	ID            string           `yaml:"id" json:"id"`
	Name          string           `yaml:"name" json:"name"`
	Type          string           `yaml:"type" json:"type"`
	Description   string           `yaml:"description" json:"description,omitempty"`
	Effects       ItemEffects      `yaml:"effects" json:"effects"`
	MaskModifiers effect.Modifiers `yaml:"mask_modifiers" json:"mask_modifiers,omitempty"`
}

// Consumable reports whether using the item consumes one.
func (i Item) Consumable() bool {
	return i.Type == ItemTypeConsumable
}

// Bundle returns the use effects.
func (i Item) Bundle() effect.Bundle {
	return effect.Bundle{
		Energy:        i.Effects.Energy,
		Mood:          i.Effects.Mood,
		Relationships: i.Effects.Relationships,
	}
}

// Preconditions gate an action.
type Preconditions struct {
	// Masks lists acceptable equipped masks. A first entry of AnyMask
	// accepts anything; empty means no requirement.
	Masks []string `yaml:"masks" json:"masks,omitempty"`
	// Inventory lists items that must all be held.
	Inventory []string `yaml:"inventory" json:"inventory,omitempty"`
}

// ActionEffects are the outcomes of performing an action.
type ActionEffects struct {
	Reputation int `yaml:"reputation" json:"reputation,omitempty"`
	// Grade is descriptive only; it is never applied to the player.
	Grade         int            `yaml:"grade" json:"grade,omitempty"`
	Corruption    int            `yaml:"corruption" json:"corruption,omitempty"`
	Energy        int            `yaml:"energy" json:"energy,omitempty"`
	Relationships map[string]int `yaml:"relationships" json:"relationships,omitempty"`
	Items         map[string]int `yaml:"items" json:"items,omitempty"`
}

// Action is something a player can do in a zone.
type Action struct {
	ID            string           `yaml:"id" json:"id"`
	Name          string           `yaml:"name" json:"name"`
	Zone          string           `yaml:"zone" json:"zone"`
	Preconditions Preconditions    `yaml:"preconditions" json:"preconditions"`
	TimeCost      int              `yaml:"time_cost" json:"time_cost"`
	Effects       ActionEffects    `yaml:"effects" json:"effects"`
	RiskLevel     string           `yaml:"risk_level" json:"risk_level"`
	MaskModifiers effect.Modifiers `yaml:"mask_modifiers" json:"mask_modifiers,omitempty"`
}

// Bundle returns the action's effects including its time cost.
func (a Action) Bundle() effect.Bundle {
	return effect.Bundle{
		TimeMinutes:   a.TimeCost,
		Reputation:    a.Effects.Reputation,
		Energy:        a.Effects.Energy,
		Corruption:    a.Effects.Corruption,
		Relationships: a.Effects.Relationships,
		Items:         a.Effects.Items,
	}
}

// Available reports whether a player with the equipped mask and inventory
// may perform the action.
func (a Action) Available(equipped string, has func(itemID string) bool) bool {
	if masks := a.Preconditions.Masks; len(masks) > 0 && masks[0] != AnyMask {
		found := false
		for _, m := range masks {
			if m == equipped && equipped != "" {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, item := range a.Preconditions.Inventory {
		if !has(item) {
			return false
		}
	}
	return true
}

// ChoiceEffect is the outcome of an event choice.
type ChoiceEffect struct {
	Time          int            `yaml:"time" json:"time,omitempty"`
	Relationships map[string]int `yaml:"relationships" json:"relationships,omitempty"`
	Corruption    int            `yaml:"corruption" json:"corruption,omitempty"`
	// Item, when set, is awarded once.
	Item string `yaml:"item" json:"item,omitempty"`
}

// Choice is one option of an event.
type Choice struct {
	ID     string       `yaml:"id" json:"id"`
	Text   string       `yaml:"text" json:"text"`
	Effect ChoiceEffect `yaml:"effect" json:"effect"`
}

// Bundle returns the choice's effects.
func (c Choice) Bundle() effect.Bundle {
	b := effect.Bundle{
		TimeMinutes:   c.Effect.Time,
		Corruption:    c.Effect.Corruption,
		Relationships: c.Effect.Relationships,
	}
	if c.Effect.Item != "" {
		b.Items = map[string]int{c.Effect.Item: 1}
	}
	return b
}

// Event is a random encounter in one or more zones.
type Event struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	// TriggerChance is a percentage weight in [0, 100].
	TriggerChance int              `yaml:"trigger_chance" json:"trigger_chance"`
	TriggerZones  []string         `yaml:"trigger_zones" json:"trigger_zones"`
	MaskModifiers effect.Modifiers `yaml:"mask_modifiers" json:"mask_modifiers,omitempty"`
	Choices       []Choice         `yaml:"choices" json:"choices"`
}

// Choice finds a choice by id.
func (e Event) Choice(id string) (Choice, bool) {
	for _, c := range e.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

// TriggersIn reports whether the event can occur in zone.
func (e Event) TriggersIn(zone string) bool {
	for _, z := range e.TriggerZones {
		if z == zone {
			return true
		}
	}
	return false
}

// Minigame is a class exercise scored against its difficulty.
type Minigame struct {
	ID            string           `yaml:"id" json:"id"`
	ClassID       string           `yaml:"class_id" json:"class_id"`
	Name          string           `yaml:"name" json:"name"`
	Description   string           `yaml:"description" json:"description,omitempty"`
	Difficulty    int              `yaml:"difficulty" json:"difficulty"`
	MaskModifiers effect.Modifiers `yaml:"mask_modifiers" json:"mask_modifiers,omitempty"`
	Rewards       map[string]int   `yaml:"rewards" json:"rewards,omitempty"`
}

// PassingScore is the minimum final score that completes the minigame.
func (m Minigame) PassingScore() int {
	return m.Difficulty * 10
}
