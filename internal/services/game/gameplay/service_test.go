package gameplay

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/content"
	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
	"github.com/louisbranch/masks/internal/services/game/storage"
	"github.com/louisbranch/masks/internal/services/game/storage/sqlite"
)

var testNow = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

// fixedRoller always rolls the same value, reduced into range.
type fixedRoller int

func (r fixedRoller) IntN(n int) int { return int(r) % n }

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "game.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func newTestService(t *testing.T, store storage.Store, roller mask.Roller) *Service {
	t.Helper()
	catalog, err := content.Embedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	n := 0
	svc, err := NewService(store, catalog,
		WithRoller(roller),
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() (string, error) {
			n++
			return fmt.Sprintf("player-%d", n), nil
		}),
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func createPlayer(t *testing.T, svc *Service, username, startingMask string) player.State {
	t.Helper()
	p, err := svc.CreatePlayer(context.Background(), CreatePlayerInput{Username: username, StartingMask: startingMask})
	if err != nil {
		t.Fatalf("create player: %v", err)
	}
	return p
}

func assertCode(t *testing.T, err error, want apperrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s", want)
	}
	if got := apperrors.GetCode(err); got != want {
		t.Fatalf("code = %s, want %s (err: %v)", got, want, err)
	}
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	catalog, err := content.Embedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	store := openTestStore(t)
	if _, err := NewService(nil, catalog, WithRoller(fixedRoller(0))); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewService(store, nil, WithRoller(fixedRoller(0))); err == nil {
		t.Fatal("expected error for nil catalog")
	}
	if _, err := NewService(store, catalog); err == nil {
		t.Fatal("expected error without a roller")
	}
}

func TestCreatePlayerGrantsStarterMasks(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))

	p := createPlayer(t, svc, "kai", "mask_joy")
	if p.ID != "player-1" || p.Username != "kai" {
		t.Fatalf("player = (%q, %q)", p.ID, p.Username)
	}
	if diff := cmp.Diff([]string{"mask_fear", "mask_joy", "mask_trick"}, p.Masks.Owned()); diff != "" {
		t.Fatalf("owned masks mismatch (-want +got):\n%s", diff)
	}
	if p.EquippedMask() != "mask_joy" {
		t.Fatalf("equipped = %q, want mask_joy", p.EquippedMask())
	}
	if p.Time.String() != "08:00" || p.Day != 1 || p.Energy != player.DefaultEnergy {
		t.Fatalf("defaults = (%s, %d, %d)", p.Time, p.Day, p.Energy)
	}

	got, err := svc.GetPlayerByUsername(context.Background(), "kai")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("get by username id = %q, want %q", got.ID, p.ID)
	}
}

func TestCreatePlayerErrors(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, CreatePlayerInput{Username: "  "})
	assertCode(t, err, apperrors.CodePlayerUsernameEmpty)

	_, err = svc.CreatePlayer(ctx, CreatePlayerInput{Username: "kai", StartingMask: "mask_anger"})
	assertCode(t, err, apperrors.CodeMaskLocked)

	_, err = svc.CreatePlayer(ctx, CreatePlayerInput{Username: "kai", StartingMask: "mask_none"})
	assertCode(t, err, apperrors.CodeMaskNotFound)

	createPlayer(t, svc, "kai", "")
	_, err = svc.CreatePlayer(ctx, CreatePlayerInput{Username: "kai"})
	assertCode(t, err, apperrors.CodePlayerUsernameTaken)
}

func TestPlayerLookupErrors(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()

	_, err := svc.GetPlayer(ctx, "")
	assertCode(t, err, apperrors.CodePlayerIDEmpty)

	_, err = svc.GetPlayer(ctx, "nobody")
	assertCode(t, err, apperrors.CodePlayerNotFound)

	_, err = svc.ExecuteAction(ctx, "nobody", "study_library")
	assertCode(t, err, apperrors.CodePlayerNotFound)

	err = svc.DeletePlayer(ctx, "nobody")
	assertCode(t, err, apperrors.CodePlayerNotFound)
}

func TestDeletePlayer(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	if err := svc.DeletePlayer(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err := svc.GetPlayer(ctx, p.ID)
	assertCode(t, err, apperrors.CodePlayerNotFound)
}

func TestMoveToZone(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	out, err := svc.MoveToZone(ctx, p.ID, "library")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if out.Player.Zone != "library" {
		t.Fatalf("zone = %q, want library", out.Player.Zone)
	}
	_, err = svc.MoveToZone(ctx, p.ID, "gym")
	assertCode(t, err, apperrors.CodeZoneNotFound)
}

func TestExecuteActionAppliesModifierAndTrigger(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(1))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "mask_trick")

	out, err := svc.ExecuteAction(ctx, p.ID, "mislead_npc_rumor")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Applied.Reputation != 6 || out.Player.Reputation != 6 {
		t.Fatalf("reputation = (%d, %d), want 6 with the trickster bonus", out.Applied.Reputation, out.Player.Reputation)
	}
	if diff := cmp.Diff(map[string]int{"ren": -3, "hana": 1}, out.Applied.Relationships); diff != "" {
		t.Fatalf("relationships mismatch (-want +got):\n%s", diff)
	}
	if out.TriggeredCorruption != 2 {
		t.Fatalf("triggered corruption = %d, want 2", out.TriggeredCorruption)
	}
	if got := out.Player.Masks.Corruption("mask_trick"); got != 2 {
		t.Fatalf("stored corruption = %d, want 2", got)
	}
	if out.Player.Time.String() != "08:20" {
		t.Fatalf("time = %s, want 08:20", out.Player.Time)
	}
	if len(out.Entries) != len(out.Mutations) {
		t.Fatalf("entries = %d, mutations = %d", len(out.Entries), len(out.Mutations))
	}
	for _, e := range out.Entries {
		if e.Source != (storage.Source{Kind: storage.SourceAction, ID: "mislead_npc_rumor"}) {
			t.Fatalf("entry source = %+v", e.Source)
		}
	}
}

func TestExecuteActionRelationshipBonus(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	withMask := createPlayer(t, svc, "kai", "mask_joy")
	bare := createPlayer(t, svc, "rin", "")

	out, err := svc.ExecuteAction(ctx, withMask.ID, "chat_hana")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := out.Player.Relationships["hana"]; got != 5 {
		t.Fatalf("hana with joy = %d, want 5", got)
	}
	out, err = svc.ExecuteAction(ctx, bare.ID, "chat_hana")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := out.Player.Relationships["hana"]; got != 3 {
		t.Fatalf("hana without mask = %d, want 3", got)
	}
}

func TestExecuteActionPreconditions(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	_, err := svc.ExecuteAction(ctx, p.ID, "fake_happiness_lunch")
	assertCode(t, err, apperrors.CodeActionUnavailable)

	_, err = svc.ExecuteAction(ctx, p.ID, "enter_dark_zone_old_wing")
	assertCode(t, err, apperrors.CodeActionUnavailable)

	_, err = svc.ExecuteAction(ctx, p.ID, "fly_away")
	assertCode(t, err, apperrors.CodeActionNotFound)

	if _, err := svc.ExecuteAction(ctx, p.ID, "buy_bread"); err != nil {
		t.Fatalf("any-mask action without a mask: %v", err)
	}
	page, err := svc.ListEffectLog(ctx, storage.ListEffectLogRequest{PlayerID: p.ID})
	if err != nil {
		t.Fatalf("list log: %v", err)
	}
	for _, e := range page.Entries {
		if e.Source.ID != "buy_bread" {
			t.Fatalf("rejected action left a log entry: %+v", e)
		}
	}
}

func TestListAvailableActionsFlagsPeriodOverrun(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "mask_fear")

	fits := func() bool {
		t.Helper()
		available, err := svc.ListAvailableActions(ctx, p.ID, "library")
		if err != nil {
			t.Fatalf("list available: %v", err)
		}
		if len(available) != 1 || available[0].ID != "study_library" {
			t.Fatalf("available = %+v", available)
		}
		return available[0].FitsPeriod
	}
	if !fits() {
		t.Fatal("expected one-hour study to fit at the start of class")
	}

	late := "11:30"
	if _, err := svc.UpdateStats(ctx, p.ID, StatsUpdate{Time: &late}); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if fits() {
		t.Fatal("expected one-hour study at 11:30 to run past class time")
	}
}

func TestExecuteActionConsumesRequiredItem(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "mask_fear")

	if _, err := svc.GrantItem(ctx, p.ID, "old_key", 0); err != nil {
		t.Fatalf("grant: %v", err)
	}
	out, err := svc.ExecuteAction(ctx, p.ID, "enter_dark_zone_old_wing")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Player.Inventory.Has("old_key") || out.Player.Inventory.Quantity("library_card") != 1 {
		t.Fatalf("inventory = %v", out.Player.Inventory)
	}
	if got := out.Player.Masks.Corruption("mask_fear"); got != 6 {
		t.Fatalf("fear corruption = %d, want 5 + 1 triggered", got)
	}
	if out.Player.Energy != 75 {
		t.Fatalf("energy = %d, want 75", out.Player.Energy)
	}

	available, err := svc.ListAvailableActions(ctx, p.ID, "library")
	if err != nil {
		t.Fatalf("list available: %v", err)
	}
	var ids []string
	for _, a := range available {
		ids = append(ids, a.ID)
	}
	if diff := cmp.Diff([]string{"read_restricted", "study_library"}, ids); diff != "" {
		t.Fatalf("available mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteActionAcrossMidnight(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	late := "23:50"
	if _, err := svc.UpdateStats(ctx, p.ID, StatsUpdate{Time: &late}); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	out, err := svc.ExecuteAction(ctx, p.ID, "study_library")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.Player.Time.String() != "00:50" || out.Player.Day != 2 {
		t.Fatalf("clock = (%s, day %d), want (00:50, day 2)", out.Player.Time, out.Player.Day)
	}
	for _, e := range out.Entries {
		if e.Day != 1 {
			t.Fatalf("entry filed under day %d, want 1", e.Day)
		}
	}

	r, err := svc.DayRecap(ctx, p.ID, 1)
	if err != nil {
		t.Fatalf("recap: %v", err)
	}
	if diff := cmp.Diff([]string{"study_library"}, r.ActionsCompleted); diff != "" {
		t.Fatalf("actions mismatch (-want +got):\n%s", diff)
	}
	if r.EnergySpent != 10 || r.ReputationChange != 1 {
		t.Fatalf("recap = (%d spent, %d rep)", r.EnergySpent, r.ReputationChange)
	}
}

func TestUpdateStats(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	energy, mood, rep := -5, "neutral", 12
	out, err := svc.UpdateStats(ctx, p.ID, StatsUpdate{Energy: &energy, Reputation: &rep})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Player.Energy != -5 || out.Player.Reputation != 12 {
		t.Fatalf("stats = (%d, %d), want (-5, 12)", out.Player.Energy, out.Player.Reputation)
	}

	happy := "happy"
	if _, err := svc.UpdateStats(ctx, p.ID, StatsUpdate{Mood: &happy}); err != nil {
		t.Fatalf("update mood: %v", err)
	}
	out, err = svc.UpdateStats(ctx, p.ID, StatsUpdate{Mood: &mood})
	if err != nil {
		t.Fatalf("update mood: %v", err)
	}
	if out.Player.Mood != player.MoodNeutral {
		t.Fatalf("mood = %q, want an explicit reset to neutral", out.Player.Mood)
	}

	blank := "  "
	_, err = svc.UpdateStats(ctx, p.ID, StatsUpdate{Mood: &blank})
	assertCode(t, err, apperrors.CodePlayerMoodEmpty)
	current, err := svc.GetPlayer(ctx, p.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if current.Mood != player.MoodNeutral {
		t.Fatalf("mood after blank update = %q, want it unchanged", current.Mood)
	}

	bad := "25:00"
	_, err = svc.UpdateStats(ctx, p.ID, StatsUpdate{Time: &bad})
	assertCode(t, err, apperrors.CodeTimeInvalid)
}

func TestRollEvent(t *testing.T) {
	tests := []struct {
		name  string
		roll  int
		want  string
		found bool
	}{
		{name: "first bucket", roll: 10, want: "hallway_collision", found: true},
		{name: "second bucket", roll: 35, want: "lost_letter", found: true},
		{name: "no event", roll: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, openTestStore(t), fixedRoller(tt.roll))
			p := createPlayer(t, svc, "kai", "")

			event, found, err := svc.RollEvent(context.Background(), p.ID, "hallway_main")
			if err != nil {
				t.Fatalf("roll: %v", err)
			}
			if found != tt.found || event.ID != tt.want {
				t.Fatalf("roll = (%q, %v), want (%q, %v)", event.ID, found, tt.want, tt.found)
			}
		})
	}
}

func TestRollEventSkipsCompleted(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(10))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	if _, err := svc.MakeEventChoice(ctx, p.ID, "hallway_collision", "apologize"); err != nil {
		t.Fatalf("choice: %v", err)
	}
	event, found, err := svc.RollEvent(ctx, p.ID, "hallway_main")
	if err != nil {
		t.Fatalf("roll: %v", err)
	}
	if !found || event.ID != "lost_letter" {
		t.Fatalf("roll = (%q, %v), want lost_letter", event.ID, found)
	}

	_, _, err = svc.RollEvent(ctx, p.ID, "")
	assertCode(t, err, apperrors.CodeZoneNotFound)
}

func TestMakeEventChoice(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "mask_joy")

	out, err := svc.MakeEventChoice(ctx, p.ID, "lost_letter", "keep")
	if err != nil {
		t.Fatalf("choice: %v", err)
	}
	if out.Player.Inventory.Quantity("love_letter") != 1 {
		t.Fatalf("love_letter = %d, want 1", out.Player.Inventory.Quantity("love_letter"))
	}
	if got := out.Player.Masks.Corruption("mask_joy"); got != 1 {
		t.Fatalf("joy corruption = %d, want 1", got)
	}
	if out.Player.Events["lost_letter"] != "keep" {
		t.Fatalf("events = %v", out.Player.Events)
	}

	_, err = svc.MakeEventChoice(ctx, p.ID, "lost_letter", "burn")
	assertCode(t, err, apperrors.CodeChoiceNotFound)
	_, err = svc.MakeEventChoice(ctx, p.ID, "alien_visit", "keep")
	assertCode(t, err, apperrors.CodeEventNotFound)
}

func TestUseItem(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	_, err := svc.UseItem(ctx, p.ID, "bento")
	assertCode(t, err, apperrors.CodeItemNotInInventory)

	if _, err := svc.GrantItem(ctx, p.ID, "bento", 1); err != nil {
		t.Fatalf("grant: %v", err)
	}
	out, err := svc.UseItem(ctx, p.ID, "bento")
	if err != nil {
		t.Fatalf("use: %v", err)
	}
	if !out.Consumed || out.Player.Inventory.Has("bento") {
		t.Fatalf("bento consumed = %v, held = %v", out.Consumed, out.Player.Inventory.Has("bento"))
	}
	if out.Player.Energy != 120 || out.Player.Mood != "happy" {
		t.Fatalf("stats = (%d, %q), want (120, happy)", out.Player.Energy, out.Player.Mood)
	}

	if _, err := svc.GrantItem(ctx, p.ID, "love_letter", 1); err != nil {
		t.Fatalf("grant: %v", err)
	}
	out, err = svc.UseItem(ctx, p.ID, "love_letter")
	if err != nil {
		t.Fatalf("use gift: %v", err)
	}
	if out.Consumed || out.Player.Inventory.Quantity("love_letter") != 1 {
		t.Fatal("expected gift to stay in the inventory")
	}
	if out.Player.Relationships["hana"] != 5 {
		t.Fatalf("hana = %d, want 5", out.Player.Relationships["hana"])
	}
}

func TestRemoveItem(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	if _, err := svc.GrantItem(ctx, p.ID, "bento", 2); err != nil {
		t.Fatalf("grant: %v", err)
	}
	out, err := svc.RemoveItem(ctx, p.ID, "bento", 5)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if out.Player.Inventory.Has("bento") {
		t.Fatal("expected overshoot to delete the entry")
	}
	out, err = svc.RemoveItem(ctx, p.ID, "bento", 1)
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(out.Mutations) != 0 {
		t.Fatalf("mutations = %v, want none", out.Mutations)
	}
	_, err = svc.GrantItem(ctx, p.ID, "sword", 1)
	assertCode(t, err, apperrors.CodeItemNotFound)
}

func TestSubmitMinigameResult(t *testing.T) {
	tests := []struct {
		name      string
		mask      string
		score     int
		wantFinal int
		wantPass  bool
		wantScore int
	}{
		{name: "one short", score: 29, wantFinal: 29, wantScore: 29},
		{name: "exact pass", score: 30, wantFinal: 30, wantPass: true, wantScore: 30},
		{name: "fear bonus", mask: "mask_fear", score: 25, wantFinal: 30, wantPass: true, wantScore: 30},
		{name: "unrelated mask", mask: "mask_joy", score: 25, wantFinal: 25, wantScore: 25},
		{name: "negative floors", score: -10, wantFinal: -10, wantScore: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, openTestStore(t), fixedRoller(0))
			p := createPlayer(t, svc, "kai", tt.mask)

			out, err := svc.SubmitMinigameResult(context.Background(), p.ID, "math_quiz", tt.score)
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if out.FinalScore != tt.wantFinal || out.Completed != tt.wantPass {
				t.Fatalf("result = (%d, %v), want (%d, %v)", out.FinalScore, out.Completed, tt.wantFinal, tt.wantPass)
			}
			progress := out.Player.Minigames["math_quiz"]
			if progress.Score != tt.wantScore || progress.Completed != tt.wantPass || progress.ClassID != "math" {
				t.Fatalf("progress = %+v", progress)
			}
			if tt.wantPass {
				if diff := cmp.Diff(map[string]int{"grade": 1, "reputation": 2}, out.Rewards); diff != "" {
					t.Fatalf("rewards mismatch (-want +got):\n%s", diff)
				}
				if out.Player.Reputation != 0 {
					t.Fatal("expected rewards not to be applied")
				}
			} else if out.Rewards != nil {
				t.Fatalf("rewards on a fail = %v", out.Rewards)
			}
		})
	}
}

func TestEquipAndUnequipMask(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	out, err := svc.EquipMask(ctx, p.ID, "mask_void")
	if err != nil {
		t.Fatalf("equip unowned: %v", err)
	}
	if out.Equipped || out.Player.EquippedMask() != "" {
		t.Fatal("expected unowned mask not to be equipped")
	}

	out, err = svc.EquipMask(ctx, p.ID, "mask_fear")
	if err != nil {
		t.Fatalf("equip: %v", err)
	}
	if !out.Equipped || out.Player.EquippedMask() != "mask_fear" {
		t.Fatalf("equipped = %q", out.Player.EquippedMask())
	}

	un, err := svc.UnequipMask(ctx, p.ID)
	if err != nil {
		t.Fatalf("unequip: %v", err)
	}
	if un.Player.EquippedMask() != "" {
		t.Fatalf("equipped after unequip = %q", un.Player.EquippedMask())
	}

	_, err = svc.EquipMask(ctx, p.ID, "mask_none")
	assertCode(t, err, apperrors.CodeMaskNotFound)
}

func TestAdjustCorruption(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	out, err := svc.AdjustCorruption(ctx, p.ID, "mask_fear", 120)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if got := out.Player.Masks.Corruption("mask_fear"); got != 100 {
		t.Fatalf("corruption = %d, want clamped 100", got)
	}
	out, err = svc.AdjustCorruption(ctx, p.ID, "mask_fear", -130)
	if err != nil {
		t.Fatalf("reduce: %v", err)
	}
	if got := out.Player.Masks.Corruption("mask_fear"); got != 0 {
		t.Fatalf("corruption = %d, want clamped 0", got)
	}
	if len(out.Mutations) != 1 || out.Mutations[0].Before != 100 || out.Mutations[0].After != 0 {
		t.Fatalf("mutations = %+v, want one 100 -> 0 change", out.Mutations)
	}
	_, err = svc.AdjustCorruption(ctx, p.ID, "mask_void", 5)
	assertCode(t, err, apperrors.CodeMaskLocked)
}

func TestUnlockMask(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	out, err := svc.UnlockMask(ctx, p.ID, "mask_anger")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if out.Unlocked {
		t.Fatal("expected anger to stay locked")
	}
	if diff := cmp.Diff([]string{"experience_conflict", "relationship_below_20"}, out.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}

	if _, err := svc.MakeEventChoice(ctx, p.ID, "rooftop_argument", "confront"); err != nil {
		t.Fatalf("choice: %v", err)
	}
	out, err = svc.UnlockMask(ctx, p.ID, "mask_anger")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if out.Unlocked {
		t.Fatal("expected anger to stay locked with one requirement met")
	}
	if diff := cmp.Diff([]string{"relationship_below_20"}, out.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}

	_, err = svc.UnlockMask(ctx, p.ID, "mask_joy")
	assertCode(t, err, apperrors.CodeMaskAlreadyOwned)
}

func TestUnlockVoidMask(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	for _, id := range []string{"mask_joy", "mask_fear", "mask_trick"} {
		if _, err := svc.AdjustCorruption(ctx, p.ID, id, 50); err != nil {
			t.Fatalf("adjust %s: %v", id, err)
		}
	}
	for id, score := range map[string]int{"math_quiz": 30, "art_sketch": 20, "history_recall": 40} {
		if _, err := svc.SubmitMinigameResult(ctx, p.ID, id, score); err != nil {
			t.Fatalf("submit %s: %v", id, err)
		}
	}

	out, err := svc.UnlockMask(ctx, p.ID, "mask_void")
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !out.Unlocked || !out.Player.Masks.Owns("mask_void") {
		t.Fatalf("unlock = %v, missing %v", out.Unlocked, out.Missing)
	}
	if got := out.Player.Masks.Corruption("mask_void"); got != 0 {
		t.Fatalf("void corruption = %d, want 0", got)
	}
	if len(out.Mutations) != 1 || out.Mutations[0].Kind != effect.KindMaskUnlocked || out.Mutations[0].Target != "mask_void" {
		t.Fatalf("mutations = %+v, want a single mask.unlocked", out.Mutations)
	}

	list, err := svc.ListMasks(ctx, p.ID)
	if err != nil {
		t.Fatalf("list masks: %v", err)
	}
	if len(list.Owned) != 4 || len(list.Available) != 2 {
		t.Fatalf("masks = %d owned, %d available", len(list.Owned), len(list.Available))
	}
	for _, v := range list.Owned {
		if v.Mask.ID == "mask_fear" && (!v.HasTier || v.Tier.Level != mask.TierModerate) {
			t.Fatalf("fear tier = %+v", v.Tier)
		}
	}
}

func TestNPCQueries(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))
	ctx := context.Background()
	p := createPlayer(t, svc, "kai", "")

	reaction, err := svc.NPCReaction("hana", "mask_joy")
	if err != nil || reaction == content.DefaultReaction {
		t.Fatalf("reaction = (%q, %v)", reaction, err)
	}
	if reaction, _ := svc.NPCReaction("hana", "mask_void"); reaction != content.DefaultReaction {
		t.Fatalf("fallback reaction = %q", reaction)
	}
	_, err = svc.NPCReaction("ghost", "")
	assertCode(t, err, apperrors.CodeNPCNotFound)

	npcs, err := svc.NPCsAt("12:00", "library")
	if err != nil || len(npcs) != 1 || npcs[0].ID != "mika" {
		t.Fatalf("npcs at library = %v, %v", npcs, err)
	}
	_, err = svc.NPCsAt("noon", "")
	assertCode(t, err, apperrors.CodeTimeInvalid)

	affinity, err := svc.Relationship(ctx, p.ID, "hana")
	if err != nil || affinity != 10 {
		t.Fatalf("default affinity = (%d, %v), want 10", affinity, err)
	}
	if _, err := svc.ExecuteAction(ctx, p.ID, "chat_hana"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if affinity, _ := svc.Relationship(ctx, p.ID, "hana"); affinity != 3 {
		t.Fatalf("affinity = %d, want 3", affinity)
	}
}

func TestContentQueries(t *testing.T) {
	svc := newTestService(t, openTestStore(t), fixedRoller(0))

	detail, err := svc.GetZone("cafeteria", "12:00")
	if err != nil {
		t.Fatalf("get zone: %v", err)
	}
	if len(detail.NPCs) != 1 || detail.NPCs[0].ID != "hana" || len(detail.Actions) != 2 {
		t.Fatalf("cafeteria = %d npcs, %d actions", len(detail.NPCs), len(detail.Actions))
	}
	_, err = svc.GetZone("gym", "")
	assertCode(t, err, apperrors.CodeZoneNotFound)

	if got := len(svc.ListItems(content.ItemTypeConsumable)); got != 3 {
		t.Fatalf("consumables = %d, want 3", got)
	}
	if got := len(svc.ListActions(content.ActionFilter{RiskLevel: "high"})); got != 2 {
		t.Fatalf("high risk actions = %d, want 2", got)
	}
	if got := len(svc.ListNPCs(content.NPCFilter{Role: "teacher"})); got != 2 {
		t.Fatalf("teachers = %d, want 2", got)
	}
	if got := len(svc.ListMinigames("math")); got != 1 {
		t.Fatalf("math minigames = %d, want 1", got)
	}
	if got := len(svc.ListZones("")); got != 7 {
		t.Fatalf("zones = %d, want 7", got)
	}
}

type failingStore struct {
	storage.Store
	err error
}

func (f failingStore) ApplyResolution(context.Context, storage.Resolution) ([]storage.EffectLogEntry, error) {
	return nil, f.err
}

func TestCommitFailureSurfaces(t *testing.T) {
	store := openTestStore(t)
	good := newTestService(t, store, fixedRoller(0))
	p := createPlayer(t, good, "kai", "")

	boom := errors.New("disk full")
	svc := newTestService(t, failingStore{Store: store, err: boom}, fixedRoller(0))

	_, err := svc.ExecuteAction(context.Background(), p.ID, "study_library")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped disk full", err)
	}
	if apperrors.GetCode(err) != apperrors.CodeUnknown {
		t.Fatalf("code = %s, want unknown", apperrors.GetCode(err))
	}
	stored, err := good.GetPlayer(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Time.String() != "08:00" || stored.Energy != player.DefaultEnergy {
		t.Fatalf("state changed after failed commit: (%s, %d)", stored.Time, stored.Energy)
	}
}
