package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

const effectLogColumns = "seq, player_id, day, source_kind, source_id, kind, target, delta, before_value, after_value, value, created, completed, recorded_at"

// ListEffectLog returns a page of entries after req.AfterSeq in sequence
// order.
func (s *Store) ListEffectLog(ctx context.Context, req storage.ListEffectLogRequest) (storage.EffectLogPage, error) {
	if err := s.ready(ctx); err != nil {
		return storage.EffectLogPage{}, err
	}
	if strings.TrimSpace(req.PlayerID) == "" {
		return storage.EffectLogPage{}, fmt.Errorf("player id is required")
	}
	req.PageSize = req.Limit()

	query := "SELECT " + effectLogColumns + " FROM effect_log WHERE player_id = ? AND seq > ?"
	params := []any{req.PlayerID, int64(req.AfterSeq)}
	if req.Day > 0 {
		query += " AND day = ?"
		params = append(params, req.Day)
	}
	query += " ORDER BY seq LIMIT ?"
	params = append(params, req.PageSize+1)

	entries, err := s.queryEffectLog(ctx, query, params...)
	if err != nil {
		return storage.EffectLogPage{}, err
	}
	page := storage.EffectLogPage{Entries: entries}
	if len(entries) > req.PageSize {
		page.Entries = entries[:req.PageSize]
		page.NextAfterSeq = page.Entries[len(page.Entries)-1].Seq
	}
	return page, nil
}

// ListDayEffects returns every entry filed under day.
func (s *Store) ListDayEffects(ctx context.Context, playerID string, day int) ([]storage.EffectLogEntry, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(playerID) == "" {
		return nil, fmt.Errorf("player id is required")
	}
	return s.queryEffectLog(ctx,
		"SELECT "+effectLogColumns+" FROM effect_log WHERE player_id = ? AND day = ? ORDER BY seq",
		playerID, day,
	)
}

func (s *Store) queryEffectLog(ctx context.Context, query string, params ...any) ([]storage.EffectLogEntry, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("query effect log: %w", err)
	}
	var entries []storage.EffectLogEntry
	for rows.Next() {
		entry, err := scanEffectLogEntry(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("read effect log: %w", err)
	}
	return entries, nil
}

func scanEffectLogEntry(rows *sql.Rows) (storage.EffectLogEntry, error) {
	var (
		entry      storage.EffectLogEntry
		seq        int64
		sourceKind string
		kind       string
		created    int
		completed  int
		recordedAt int64
	)
	if err := rows.Scan(
		&seq, &entry.PlayerID, &entry.Day, &sourceKind, &entry.Source.ID,
		&kind, &entry.Mutation.Target, &entry.Mutation.Delta, &entry.Mutation.Before, &entry.Mutation.After, &entry.Mutation.Value,
		&created, &completed, &recordedAt,
	); err != nil {
		return storage.EffectLogEntry{}, fmt.Errorf("scan effect log: %w", err)
	}
	entry.Seq = uint64(seq)
	entry.Source.Kind = storage.SourceKind(sourceKind)
	entry.Mutation.Kind = effect.Kind(kind)
	entry.Mutation.Created = created != 0
	entry.Mutation.Completed = completed != 0
	entry.RecordedAt = fromMillis(recordedAt)
	return entry, nil
}
