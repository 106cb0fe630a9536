package game

import (
	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
	"github.com/louisbranch/masks/internal/services/game/gameplay"
)

func playerToMessage(p player.State) Player {
	masks := make(map[string]int)
	for _, id := range p.Masks.Owned() {
		masks[id] = p.Masks.Corruption(id)
	}
	minigames := make(map[string]MinigameProgress, len(p.Minigames))
	for id, progress := range p.Minigames {
		minigames[id] = MinigameProgress{ClassID: progress.ClassID, Score: progress.Score, Completed: progress.Completed}
	}
	events := make(map[string]string, len(p.Events))
	for id, choice := range p.Events {
		events[id] = choice
	}
	return Player{
		ID:            p.ID,
		Username:      p.Username,
		Avatar:        p.Avatar,
		Grade:         p.Grade,
		ClassName:     p.ClassName,
		Energy:        p.Energy,
		DisplayEnergy: player.DisplayEnergy(p.Energy, player.DefaultEnergy),
		Mood:          p.Mood,
		Time:          p.Time.String(),
		DisplayTime:   p.Time.Display12h(),
		Period:        daytime.Label(p.Time),

		MinutesUntilNextPeriod: daytime.MinutesUntilNextPeriod(p.Time),
		IsClassTime:            daytime.IsClassTime(p.Time),
		IsNight:                daytime.IsNight(p.Time),

		Day:           p.Day,
		Reputation:    p.Reputation,
		ZoneID:        p.Zone,
		EquippedMask:  p.EquippedMask(),
		Masks:         masks,
		Inventory:     map[string]int(p.Inventory.Clone()),
		Relationships: map[string]int(p.Relationships.Clone()),
		Events:        events,
		Minigames:     minigames,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func outcomeToMessage(out gameplay.Outcome) Outcome {
	return Outcome{
		Player:    playerToMessage(out.Player),
		Applied:   out.Applied,
		Mutations: out.Mutations,
	}
}

func maskListToMessage(list gameplay.MaskList) *ListMasksResponse {
	resp := &ListMasksResponse{Owned: make([]MaskView, 0, len(list.Owned)), Available: list.Available}
	for _, v := range list.Owned {
		view := MaskView{Mask: v.Mask, Corruption: v.Corruption, Equipped: v.Equipped}
		for _, a := range v.Mask.Definition().GrantedAbilities() {
			view.Abilities = append(view.Abilities, string(a))
		}
		if v.HasTier {
			view.Tier = string(v.Tier.Level)
			view.TierDescription = v.Tier.Description
		}
		resp.Owned = append(resp.Owned, view)
	}
	return resp
}
