package gameplay

import (
	"context"
	"maps"

	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// MinigameOutcome is the scored result of a minigame.
type MinigameOutcome struct {
	Outcome
	Minigame   content.Minigame
	FinalScore int
	Completed  bool
	// Rewards are reported on a pass only. They are not applied.
	Rewards map[string]int
}

// SubmitMinigameResult scores a minigame attempt. The equipped mask's score
// bonus is added before comparing against the passing score.
func (s *Service) SubmitMinigameResult(ctx context.Context, playerID, minigameID string, score int) (_ MinigameOutcome, err error) {
	ctx, span := s.start(ctx, "SubmitMinigameResult", playerID)
	defer finish(span, &err)

	game, ok := s.catalog.Minigame(minigameID)
	if !ok {
		return MinigameOutcome{}, notFound(apperrors.CodeMinigameNotFound, "minigame", "MinigameID", minigameID)
	}
	p, err := s.loadPlayer(ctx, playerID)
	if err != nil {
		return MinigameOutcome{}, err
	}

	final := score
	if mod := modifierFor(game.MaskModifiers, p); mod != nil {
		final += mod.ScoreBonus
	}
	completed := final >= game.PassingScore()

	res := effect.NewResult(p)
	res.RecordMinigame(game.ID, game.ClassID, max(final, 0), completed)

	out, err := s.commit(ctx, p, storage.Source{Kind: storage.SourceMinigame, ID: game.ID}, res)
	if err != nil {
		return MinigameOutcome{}, err
	}
	result := MinigameOutcome{Outcome: out, Minigame: game, FinalScore: final, Completed: completed}
	if completed && len(game.Rewards) > 0 {
		result.Rewards = maps.Clone(game.Rewards)
	}
	return result, nil
}
