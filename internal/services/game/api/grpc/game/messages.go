package game

import (
	"time"

	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/recap"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// Player is the wire view of a player snapshot.
type Player struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Grade     int    `json:"grade"`
	ClassName string `json:"class_name"`
	Energy    int    `json:"energy"`
	// DisplayEnergy is Energy clamped for presentation.
	DisplayEnergy          int                         `json:"display_energy"`
	Mood                   string                      `json:"mood"`
	Time                   string                      `json:"time"`
	DisplayTime            string                      `json:"display_time"`
	Period                 string                      `json:"period"`
	MinutesUntilNextPeriod int                         `json:"minutes_until_next_period"`
	IsClassTime            bool                        `json:"is_class_time"`
	IsNight                bool                        `json:"is_night"`
	Day                    int                         `json:"day"`
	Reputation             int                         `json:"reputation"`
	ZoneID                 string                      `json:"zone_id,omitempty"`
	EquippedMask           string                      `json:"equipped_mask,omitempty"`
	Masks                  map[string]int              `json:"masks"`
	Inventory              map[string]int              `json:"inventory"`
	Relationships          map[string]int              `json:"relationships"`
	Events                 map[string]string           `json:"events"`
	Minigames              map[string]MinigameProgress `json:"minigames"`
	CreatedAt              time.Time                   `json:"created_at"`
	UpdatedAt              time.Time                   `json:"updated_at"`
}

// MinigameProgress is the recorded result of one minigame.
type MinigameProgress struct {
	ClassID   string `json:"class_id"`
	Score     int    `json:"score"`
	Completed bool   `json:"completed"`
}

// Outcome is what every mutating call returns.
type Outcome struct {
	Player    Player            `json:"player"`
	Applied   effect.Applied    `json:"applied"`
	Mutations []effect.Mutation `json:"mutations"`
}

// PlayerRequest addresses one player.
type PlayerRequest struct {
	PlayerID string `json:"player_id"`
}

func (r *PlayerRequest) GetPlayerId() string { return r.PlayerID }

// PlayerResponse carries a player snapshot.
type PlayerResponse struct {
	Player Player `json:"player"`
}

// Empty is returned by calls with no payload.
type Empty struct{}

type CreatePlayerRequest struct {
	Username     string `json:"username"`
	StartingMask string `json:"starting_mask,omitempty"`
}

type GetPlayerByUsernameRequest struct {
	Username string `json:"username"`
}

type MoveToZoneRequest struct {
	PlayerID string `json:"player_id"`
	ZoneID   string `json:"zone_id"`
}

func (r *MoveToZoneRequest) GetPlayerId() string { return r.PlayerID }

// UpdateStatsRequest overwrites the fields that are present.
type UpdateStatsRequest struct {
	PlayerID   string  `json:"player_id"`
	Energy     *int    `json:"energy,omitempty"`
	Mood       *string `json:"mood,omitempty"`
	Time       *string `json:"time,omitempty"`
	Reputation *int    `json:"reputation,omitempty"`
}

func (r *UpdateStatsRequest) GetPlayerId() string { return r.PlayerID }

// ItemQuantityRequest grants or removes items. Quantity defaults to one.
type ItemQuantityRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity,omitempty"`
}

func (r *ItemQuantityRequest) GetPlayerId() string { return r.PlayerID }

type AdjustCorruptionRequest struct {
	PlayerID string `json:"player_id"`
	MaskID   string `json:"mask_id"`
	Delta    int    `json:"delta"`
}

func (r *AdjustCorruptionRequest) GetPlayerId() string { return r.PlayerID }

// ZoneRequest addresses a player in a zone. An empty zone means the
// player's current zone.
type ZoneRequest struct {
	PlayerID string `json:"player_id"`
	ZoneID   string `json:"zone_id,omitempty"`
}

func (r *ZoneRequest) GetPlayerId() string { return r.PlayerID }

type ListActionsResponse struct {
	Actions []content.Action `json:"actions"`
}

// AvailableAction is a catalog action plus whether it ends inside the
// player's current period.
type AvailableAction struct {
	content.Action
	FitsPeriod bool `json:"fits_period"`
}

type ListAvailableActionsResponse struct {
	Actions []AvailableAction `json:"actions"`
}

type ExecuteActionRequest struct {
	PlayerID string `json:"player_id"`
	ActionID string `json:"action_id"`
}

func (r *ExecuteActionRequest) GetPlayerId() string { return r.PlayerID }

type ExecuteActionResponse struct {
	Outcome
	ActionID            string `json:"action_id"`
	TriggeredCorruption int    `json:"triggered_corruption,omitempty"`
}

type RollEventResponse struct {
	Found bool           `json:"found"`
	Event *content.Event `json:"event,omitempty"`
}

type MakeEventChoiceRequest struct {
	PlayerID string `json:"player_id"`
	EventID  string `json:"event_id"`
	ChoiceID string `json:"choice_id"`
}

func (r *MakeEventChoiceRequest) GetPlayerId() string { return r.PlayerID }

type MakeEventChoiceResponse struct {
	Outcome
	EventID  string `json:"event_id"`
	ChoiceID string `json:"choice_id"`
}

type UseItemRequest struct {
	PlayerID string `json:"player_id"`
	ItemID   string `json:"item_id"`
}

func (r *UseItemRequest) GetPlayerId() string { return r.PlayerID }

type UseItemResponse struct {
	Outcome
	ItemID   string `json:"item_id"`
	Consumed bool   `json:"consumed"`
}

type SubmitMinigameResultRequest struct {
	PlayerID   string `json:"player_id"`
	MinigameID string `json:"minigame_id"`
	Score      int    `json:"score"`
}

func (r *SubmitMinigameResultRequest) GetPlayerId() string { return r.PlayerID }

type SubmitMinigameResultResponse struct {
	Outcome
	MinigameID string         `json:"minigame_id"`
	FinalScore int            `json:"final_score"`
	Completed  bool           `json:"completed"`
	Rewards    map[string]int `json:"rewards,omitempty"`
}

// MaskRequest addresses one of a player's masks.
type MaskRequest struct {
	PlayerID string `json:"player_id"`
	MaskID   string `json:"mask_id"`
}

func (r *MaskRequest) GetPlayerId() string { return r.PlayerID }

type EquipMaskResponse struct {
	Outcome
	Equipped bool `json:"equipped"`
}

type UnlockMaskResponse struct {
	Outcome
	Unlocked bool     `json:"unlocked"`
	Missing  []string `json:"missing,omitempty"`
}

// MaskView is an owned mask with its corruption tier.
type MaskView struct {
	Mask            content.Mask `json:"mask"`
	Corruption      int          `json:"corruption"`
	Tier            string       `json:"tier,omitempty"`
	TierDescription string       `json:"tier_description,omitempty"`
	Equipped        bool         `json:"equipped"`
	Abilities       []string     `json:"abilities,omitempty"`
}

type ListMasksResponse struct {
	Owned     []MaskView     `json:"owned"`
	Available []content.Mask `json:"available"`
}

type GetNPCReactionRequest struct {
	NPCID  string `json:"npc_id"`
	MaskID string `json:"mask_id,omitempty"`
}

type GetNPCReactionResponse struct {
	Reaction string `json:"reaction"`
}

type ListNPCsAtRequest struct {
	Time   string `json:"time"`
	ZoneID string `json:"zone_id,omitempty"`
}

type ListNPCsResponse struct {
	NPCs []content.NPC `json:"npcs"`
}

type GetRelationshipRequest struct {
	PlayerID string `json:"player_id"`
	NPCID    string `json:"npc_id"`
}

func (r *GetRelationshipRequest) GetPlayerId() string { return r.PlayerID }

type GetRelationshipResponse struct {
	NPCID    string `json:"npc_id"`
	Affinity int    `json:"affinity"`
}

// GetDayRecapRequest selects a day; zero means the player's current day.
type GetDayRecapRequest struct {
	PlayerID string `json:"player_id"`
	Day      int    `json:"day,omitempty"`
}

func (r *GetDayRecapRequest) GetPlayerId() string { return r.PlayerID }

type GetDayRecapResponse struct {
	Recap recap.Recap `json:"recap"`
}

type ListEffectLogRequest struct {
	PlayerID  string `json:"player_id"`
	Day       int    `json:"day,omitempty"`
	PageSize  int32  `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

func (r *ListEffectLogRequest) GetPlayerId() string { return r.PlayerID }

type ListEffectLogResponse struct {
	Entries       []storage.EffectLogEntry `json:"entries"`
	NextPageToken string                   `json:"next_page_token,omitempty"`
}

type ListZonesRequest struct {
	Type string `json:"type,omitempty"`
}

type ListZonesResponse struct {
	Zones []content.Zone `json:"zones"`
}

// GetZoneRequest fetches a zone. With Time set, only the NPCs scheduled
// there at that time are listed.
type GetZoneRequest struct {
	ZoneID string `json:"zone_id"`
	Time   string `json:"time,omitempty"`
}

type GetZoneResponse struct {
	Zone content.ZoneDetail `json:"zone"`
}

type ListNPCsRequest struct {
	Role   string `json:"role,omitempty"`
	ZoneID string `json:"zone_id,omitempty"`
	Trait  string `json:"trait,omitempty"`
}

type ListItemsRequest struct {
	Type string `json:"type,omitempty"`
}

type ListItemsResponse struct {
	Items []content.Item `json:"items"`
}

type ListMinigamesRequest struct {
	ClassID string `json:"class_id,omitempty"`
}

type ListMinigamesResponse struct {
	Minigames []content.Minigame `json:"minigames"`
}

type ListCatalogActionsRequest struct {
	ZoneID    string `json:"zone_id,omitempty"`
	RiskLevel string `json:"risk_level,omitempty"`
}
