package gameplay

import (
	"context"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// ItemOutcome is the result of using an item.
type ItemOutcome struct {
	Outcome
	Item     content.Item
	Consumed bool
}

// UseItem applies a held item's effects. Consumables are used up one at a
// time; other items stay in the inventory.
func (s *Service) UseItem(ctx context.Context, playerID, itemID string) (_ ItemOutcome, err error) {
	ctx, span := s.start(ctx, "UseItem", playerID)
	defer finish(span, &err)

	item, ok := s.catalog.Item(itemID)
	if !ok {
		return ItemOutcome{}, notFound(apperrors.CodeItemNotFound, "item", "Item", itemID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return ItemOutcome{}, err
	}
	if !p.Inventory.Has(item.ID) {
		return ItemOutcome{}, apperrors.WithMetadata(apperrors.CodeItemNotInInventory, "item not in inventory", map[string]string{"Item": item.Name})
	}

	res, err := effect.Resolve(item.Bundle(), modifierFor(item.MaskModifiers, p), p)
	if err != nil {
		return ItemOutcome{}, err
	}
	consumed := false
	if item.Consumable() {
		res.AddItem(item.ID, -1)
		consumed = true
	}

	out, err := s.commit(ctx, p, storage.Source{Kind: storage.SourceItem, ID: item.ID}, res)
	if err != nil {
		return ItemOutcome{}, err
	}
	return ItemOutcome{Outcome: out, Item: item, Consumed: consumed}, nil
}
