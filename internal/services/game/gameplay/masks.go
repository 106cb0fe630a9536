package gameplay

import (
	"context"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// EquipOutcome reports whether the mask ended up equipped.
type EquipOutcome struct {
	Outcome
	Equipped bool
}

// UnlockOutcome reports an unlock attempt. Missing lists unmet requirements
// when the mask stays locked.
type UnlockOutcome struct {
	Outcome
	Mask     content.Mask
	Unlocked bool
	Missing  []string
}

// MaskView is an owned mask with its corruption.
type MaskView struct {
	Mask       content.Mask
	Corruption int
	Tier       mask.Tier
	HasTier    bool
	Equipped   bool
}

// MaskList splits the catalog into owned and still locked masks.
type MaskList struct {
	Owned     []MaskView
	Available []content.Mask
}

// EquipMask wears an owned mask. Asking for a mask the player does not own
// is not an error; the outcome reports Equipped false and nothing changes.
func (s *Service) EquipMask(ctx context.Context, playerID, maskID string) (_ EquipOutcome, err error) {
	ctx, span := s.start(ctx, "EquipMask", playerID)
	defer finish(span, &err)

	def, ok := s.catalog.Mask(maskID)
	if !ok {
		return EquipOutcome{}, notFound(apperrors.CodeMaskNotFound, "mask", "Mask", maskID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return EquipOutcome{}, err
	}
	res := effect.NewResult(p)
	if !res.EquipMask(def.ID) {
		return EquipOutcome{Outcome: Outcome{Player: p}}, nil
	}
	out, err := s.commit(ctx, p, storage.Source{Kind: storage.SourceMask, ID: def.ID}, res)
	if err != nil {
		return EquipOutcome{}, err
	}
	return EquipOutcome{Outcome: out, Equipped: true}, nil
}

// UnequipMask removes whatever mask is worn.
func (s *Service) UnequipMask(ctx context.Context, playerID string) (_ Outcome, err error) {
	ctx, span := s.start(ctx, "UnequipMask", playerID)
	defer finish(span, &err)

	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	res := effect.NewResult(p)
	prev := res.UnequipMask()
	return s.commit(ctx, p, storage.Source{Kind: storage.SourceMask, ID: prev}, res)
}

// UnlockMask grants a mask once all of its requirements hold.
func (s *Service) UnlockMask(ctx context.Context, playerID, maskID string) (_ UnlockOutcome, err error) {
	ctx, span := s.start(ctx, "UnlockMask", playerID)
	defer finish(span, &err)

	def, ok := s.catalog.Mask(maskID)
	if !ok {
		return UnlockOutcome{}, notFound(apperrors.CodeMaskNotFound, "mask", "Mask", maskID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return UnlockOutcome{}, err
	}
	if p.Masks.Owns(def.ID) {
		return UnlockOutcome{}, apperrors.WithMetadata(apperrors.CodeMaskAlreadyOwned, "mask already owned", map[string]string{"Mask": def.Name})
	}

	res := effect.NewResult(p)
	if unlocked, missing := res.UnlockMask(def.Definition(), unlockProgress(def, p)); !unlocked {
		return UnlockOutcome{Outcome: Outcome{Player: p}, Mask: def, Missing: missing}, nil
	}
	out, err := s.commit(ctx, p, storage.Source{Kind: storage.SourceMask, ID: def.ID}, res)
	if err != nil {
		return UnlockOutcome{}, err
	}
	return UnlockOutcome{Outcome: out, Mask: def, Unlocked: true}, nil
}

// AdjustCorruption changes the corruption of any owned mask, clamped to
// [0, 100].
func (s *Service) AdjustCorruption(ctx context.Context, playerID, maskID string, delta int) (_ Outcome, err error) {
	ctx, span := s.start(ctx, "AdjustCorruption", playerID)
	defer finish(span, &err)

	def, ok := s.catalog.Mask(maskID)
	if !ok {
		return Outcome{}, notFound(apperrors.CodeMaskNotFound, "mask", "Mask", maskID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	res := effect.NewResult(p)
	if _, _, ok := res.AdjustCorruption(def.ID, delta); !ok {
		return Outcome{}, apperrors.WithMetadata(apperrors.CodeMaskLocked, "mask is locked", map[string]string{"Mask": def.Name})
	}
	return s.commit(ctx, p, storage.Source{Kind: storage.SourceMask, ID: def.ID}, res)
}

// ListMasks returns the player's masks with their corruption tiers, and the
// catalog masks still locked.
func (s *Service) ListMasks(ctx context.Context, playerID string) (_ MaskList, err error) {
	ctx, span := s.start(ctx, "ListMasks", playerID)
	defer finish(span, &err)

	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return MaskList{}, err
	}
	list := MaskList{Owned: []MaskView{}, Available: []content.Mask{}}
	equipped := p.EquippedMask()
	for _, m := range s.catalog.Masks() {
		if !p.Masks.Owns(m.ID) {
			list.Available = append(list.Available, m)
			continue
		}
		corruption := p.Masks.Corruption(m.ID)
		tier, hasTier := mask.TierFor(corruption)
		list.Owned = append(list.Owned, MaskView{
			Mask:       m,
			Corruption: corruption,
			Tier:       tier,
			HasTier:    hasTier,
			Equipped:   m.ID == equipped,
		})
	}
	return list, nil
}

func unlockProgress(def content.Mask, p player.State) mask.Progress {
	flags := make(map[string]bool, len(def.UnlockEvents))
	for req, eventID := range def.UnlockEvents {
		if p.CompletedEvent(eventID) {
			flags[req] = true
		}
	}
	return mask.Progress{
		CompletedClasses: p.CompletedClasses(),
		Relationships:    p.Relationships.Clone(),
		Flags:            flags,
	}
}
