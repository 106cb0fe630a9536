package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

const playerColumns = "id, username, avatar, grade, class_name, energy, mood, time, day, reputation, zone_id, equipped_mask_id, created_at, updated_at"

// CreatePlayer inserts a player with its owned masks, inventory and
// relationships.
func (s *Store) CreatePlayer(ctx context.Context, p player.State) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("username is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO players ("+playerColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		p.ID, p.Username, p.Avatar, p.Grade, p.ClassName, p.Energy, p.Mood, p.Time.String(), p.Day, p.Reputation,
		nullString(p.Zone), nullString(p.EquippedMask()), toMillis(p.CreatedAt), toMillis(p.UpdatedAt),
	)
	if err != nil {
		if isUsernameConflict(err) {
			return storage.ErrUsernameTaken
		}
		return fmt.Errorf("insert player: %w", err)
	}
	for _, maskID := range p.Masks.Owned() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO player_masks (player_id, mask_id, corruption) VALUES (?, ?, ?)",
			p.ID, maskID, p.Masks.Corruption(maskID),
		); err != nil {
			return fmt.Errorf("insert player mask: %w", err)
		}
	}
	for _, itemID := range p.Inventory.Items() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO player_items (player_id, item_id, quantity) VALUES (?, ?, ?)",
			p.ID, itemID, p.Inventory.Quantity(itemID),
		); err != nil {
			return fmt.Errorf("insert player item: %w", err)
		}
	}
	for npcID, affinity := range p.Relationships {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO player_relationships (player_id, npc_id, affinity) VALUES (?, ?, ?)",
			p.ID, npcID, affinity,
		); err != nil {
			return fmt.Errorf("insert player relationship: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetPlayer loads a full player snapshot by id.
func (s *Store) GetPlayer(ctx context.Context, id string) (player.State, error) {
	if err := s.ready(ctx); err != nil {
		return player.State{}, err
	}
	if strings.TrimSpace(id) == "" {
		return player.State{}, fmt.Errorf("player id is required")
	}
	return s.loadPlayer(ctx, "SELECT "+playerColumns+" FROM players WHERE id = ?", id)
}

// GetPlayerByUsername loads a full player snapshot by username.
func (s *Store) GetPlayerByUsername(ctx context.Context, username string) (player.State, error) {
	if err := s.ready(ctx); err != nil {
		return player.State{}, err
	}
	if strings.TrimSpace(username) == "" {
		return player.State{}, fmt.Errorf("username is required")
	}
	return s.loadPlayer(ctx, "SELECT "+playerColumns+" FROM players WHERE username = ?", username)
}

// DeletePlayer removes a player and all of its rows.
func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("player id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"effect_log", "player_minigames", "player_events", "player_relationships", "player_items", "player_masks"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE player_id = ?", id); err != nil {
			return fmt.Errorf("delete %s: %w", table, err)
		}
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete player rows affected: %w", err)
	} else if affected == 0 {
		return storage.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) loadPlayer(ctx context.Context, query string, arg string) (player.State, error) {
	var (
		p         player.State
		clock     string
		zone      sql.NullString
		equipped  sql.NullString
		createdAt int64
		updatedAt int64
	)
	err := s.sqlDB.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Username, &p.Avatar, &p.Grade, &p.ClassName, &p.Energy, &p.Mood, &clock, &p.Day, &p.Reputation,
		&zone, &equipped, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return player.State{}, storage.ErrNotFound
	}
	if err != nil {
		return player.State{}, fmt.Errorf("get player: %w", err)
	}
	if p.Time, err = daytime.Parse(clock); err != nil {
		return player.State{}, fmt.Errorf("parse player time: %w", err)
	}
	p.Zone = zone.String
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)

	owned := map[string]int{}
	if err := s.scanPairs(ctx, "SELECT mask_id, corruption FROM player_masks WHERE player_id = ?", p.ID, owned); err != nil {
		return player.State{}, fmt.Errorf("list player masks: %w", err)
	}
	p.Masks = mask.NewState(owned, equipped.String)

	p.Inventory = player.Inventory{}
	if err := s.scanPairs(ctx, "SELECT item_id, quantity FROM player_items WHERE player_id = ?", p.ID, p.Inventory); err != nil {
		return player.State{}, fmt.Errorf("list player items: %w", err)
	}
	p.Relationships = player.Relationships{}
	if err := s.scanPairs(ctx, "SELECT npc_id, affinity FROM player_relationships WHERE player_id = ?", p.ID, p.Relationships); err != nil {
		return player.State{}, fmt.Errorf("list player relationships: %w", err)
	}

	p.Events = map[string]string{}
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT event_id, choice_id FROM player_events WHERE player_id = ?", p.ID)
	if err != nil {
		return player.State{}, fmt.Errorf("list player events: %w", err)
	}
	for rows.Next() {
		var eventID, choiceID string
		if err := rows.Scan(&eventID, &choiceID); err != nil {
			rows.Close()
			return player.State{}, fmt.Errorf("scan player event: %w", err)
		}
		p.Events[eventID] = choiceID
	}
	if err := closeRows(rows); err != nil {
		return player.State{}, fmt.Errorf("read player events: %w", err)
	}

	p.Minigames = map[string]player.MinigameProgress{}
	rows, err = s.sqlDB.QueryContext(ctx, "SELECT minigame_id, class_id, score, completed FROM player_minigames WHERE player_id = ?", p.ID)
	if err != nil {
		return player.State{}, fmt.Errorf("list player minigames: %w", err)
	}
	for rows.Next() {
		var (
			minigameID string
			progress   player.MinigameProgress
			completed  int
		)
		if err := rows.Scan(&minigameID, &progress.ClassID, &progress.Score, &completed); err != nil {
			rows.Close()
			return player.State{}, fmt.Errorf("scan player minigame: %w", err)
		}
		progress.Completed = completed != 0
		p.Minigames[minigameID] = progress
	}
	if err := closeRows(rows); err != nil {
		return player.State{}, fmt.Errorf("read player minigames: %w", err)
	}
	return p, nil
}

// scanPairs reads (key, int) rows into target.
func (s *Store) scanPairs(ctx context.Context, query, playerID string, target map[string]int) error {
	rows, err := s.sqlDB.QueryContext(ctx, query, playerID)
	if err != nil {
		return err
	}
	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			rows.Close()
			return err
		}
		target[key] = value
	}
	return closeRows(rows)
}

func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
