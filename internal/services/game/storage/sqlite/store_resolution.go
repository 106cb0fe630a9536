package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// ApplyResolution persists every mutation of r and appends one effect log
// entry per mutation in a single transaction. Any failure rolls back all of
// them.
func (s *Store) ApplyResolution(ctx context.Context, r storage.Resolution) ([]storage.EffectLogEntry, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(r.PlayerID) == "" {
		return nil, fmt.Errorf("player id is required")
	}
	if len(r.Mutations) == 0 {
		return nil, nil
	}
	recordedAt := r.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}
	recordedAt = recordedAt.UTC().Truncate(time.Millisecond)

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	at := toMillis(recordedAt)
	res, err := tx.ExecContext(ctx, "UPDATE players SET updated_at = ? WHERE id = ?", at, r.PlayerID)
	if err != nil {
		return nil, fmt.Errorf("touch player: %w", err)
	}
	if err := requireRow(res, storage.ErrNotFound); err != nil {
		return nil, err
	}

	entries := make([]storage.EffectLogEntry, 0, len(r.Mutations))
	for i, m := range r.Mutations {
		if err := applyMutation(ctx, tx, r.PlayerID, m, at); err != nil {
			return nil, fmt.Errorf("mutation %d (%s): %w", i, m.Kind, err)
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO effect_log (player_id, day, source_kind, source_id, kind, target, delta, before_value, after_value, value, created, completed, recorded_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.PlayerID, r.Day, string(r.Source.Kind), r.Source.ID, string(m.Kind), m.Target, m.Delta, m.Before, m.After, m.Value,
			boolToInt(m.Created), boolToInt(m.Completed), at,
		)
		if err != nil {
			return nil, fmt.Errorf("append effect log: %w", err)
		}
		seq, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("effect log seq: %w", err)
		}
		entries = append(entries, storage.EffectLogEntry{
			Seq:        uint64(seq),
			PlayerID:   r.PlayerID,
			Day:        r.Day,
			Source:     r.Source,
			Mutation:   m,
			RecordedAt: recordedAt,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return entries, nil
}

// applyMutation writes one mutation. Counters are increments; the snapshot
// values in Before/After are informational only, except for the minigame
// score which is written as-is.
func applyMutation(ctx context.Context, tx *sql.Tx, playerID string, m effect.Mutation, at int64) error {
	var (
		res sql.Result
		err error
	)
	switch m.Kind {
	case effect.KindTimeSet:
		res, err = tx.ExecContext(ctx, "UPDATE players SET time = ? WHERE id = ?", m.Value, playerID)
	case effect.KindDayAdvanced:
		res, err = tx.ExecContext(ctx, "UPDATE players SET day = day + ? WHERE id = ?", m.Delta, playerID)
	case effect.KindReputation:
		res, err = tx.ExecContext(ctx, "UPDATE players SET reputation = reputation + ? WHERE id = ?", m.Delta, playerID)
	case effect.KindEnergy:
		res, err = tx.ExecContext(ctx, "UPDATE players SET energy = energy + ? WHERE id = ?", m.Delta, playerID)
	case effect.KindMoodSet:
		res, err = tx.ExecContext(ctx, "UPDATE players SET mood = ? WHERE id = ?", m.Value, playerID)
	case effect.KindZoneSet:
		res, err = tx.ExecContext(ctx, "UPDATE players SET zone_id = ? WHERE id = ?", nullString(m.Value), playerID)
	case effect.KindMaskEquipped:
		res, err = tx.ExecContext(ctx,
			"UPDATE players SET equipped_mask_id = ? WHERE id = ? AND (? IS NULL OR EXISTS (SELECT 1 FROM player_masks WHERE player_id = ? AND mask_id = ?))",
			nullString(m.Value), playerID, nullString(m.Value), playerID, m.Value,
		)
		if err == nil {
			err = requireRow(res, fmt.Errorf("mask %s is not owned", m.Value))
		}
		return err
	case effect.KindCorruption:
		res, err = tx.ExecContext(ctx,
			"UPDATE player_masks SET corruption = MIN(100, MAX(0, corruption + ?)) WHERE player_id = ? AND mask_id = ?",
			m.Delta, playerID, m.Target,
		)
		if err == nil {
			err = requireRow(res, fmt.Errorf("mask %s is not owned", m.Target))
		}
		return err
	case effect.KindMaskUnlocked:
		_, err = tx.ExecContext(ctx,
			"INSERT INTO player_masks (player_id, mask_id, corruption) VALUES (?, ?, 0)",
			playerID, m.Target,
		)
		return err
	case effect.KindRelationship:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO player_relationships (player_id, npc_id, affinity) VALUES (?, ?, ?)
			 ON CONFLICT (player_id, npc_id) DO UPDATE SET affinity = affinity + excluded.affinity`,
			playerID, m.Target, m.Delta,
		)
		return err
	case effect.KindInventoryAdded:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO player_items (player_id, item_id, quantity) VALUES (?, ?, ?)
			 ON CONFLICT (player_id, item_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
			playerID, m.Target, m.Delta,
		)
		return err
	case effect.KindInventoryRemoved:
		res, err = tx.ExecContext(ctx,
			"UPDATE player_items SET quantity = quantity + ? WHERE player_id = ? AND item_id = ?",
			m.Delta, playerID, m.Target,
		)
		if err == nil {
			err = requireRow(res, fmt.Errorf("item %s is not held", m.Target))
		}
		return err
	case effect.KindInventoryDeleted:
		_, err = tx.ExecContext(ctx, "DELETE FROM player_items WHERE player_id = ? AND item_id = ?", playerID, m.Target)
		return err
	case effect.KindEventCompleted:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO player_events (player_id, event_id, choice_id, completed_at) VALUES (?, ?, ?, ?)
			 ON CONFLICT (player_id, event_id) DO UPDATE SET choice_id = excluded.choice_id, completed_at = excluded.completed_at`,
			playerID, m.Target, m.Value, at,
		)
		return err
	case effect.KindMinigameRecorded:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO player_minigames (player_id, minigame_id, class_id, score, completed, updated_at) VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT (player_id, minigame_id) DO UPDATE SET class_id = excluded.class_id, score = excluded.score, completed = excluded.completed, updated_at = excluded.updated_at`,
			playerID, m.Target, m.Value, m.After, boolToInt(m.Completed), at,
		)
		return err
	default:
		return fmt.Errorf("unknown mutation kind %q", m.Kind)
	}
	if err != nil {
		return err
	}
	return requireRow(res, storage.ErrNotFound)
}

func requireRow(res sql.Result, missing error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return missing
	}
	return nil
}
