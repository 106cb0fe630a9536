package effect

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/louisbranch/masks/internal/platform/errors"
	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
)

func newPlayer(t *testing.T) player.State {
	t.Helper()
	return player.New("p1", "kai", time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC))
}

func TestResolveReputationBonus(t *testing.T) {
	mod := &Modifier{ReputationBonus: 2}

	masked := newPlayer(t)
	masked.Masks = mask.NewState(map[string]int{"jester": 0}, "jester")
	res, err := Resolve(Bundle{Reputation: 5}, mod, masked)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Player.Reputation != 7 || res.Applied.Reputation != 7 {
		t.Fatalf("reputation = %d (applied %d), want 7", res.Player.Reputation, res.Applied.Reputation)
	}

	bare := newPlayer(t)
	res, err = Resolve(Bundle{Reputation: 5}, mod, bare)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Player.Reputation != 5 {
		t.Fatalf("reputation without mask = %d, want 5", res.Player.Reputation)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	state := newPlayer(t)
	state.Inventory["tea"] = 2
	_, err := Resolve(Bundle{Energy: -10, Items: map[string]int{"tea": -5}, Relationships: map[string]int{"mika": 3}}, nil, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if state.Energy != player.DefaultEnergy || state.Inventory["tea"] != 2 || len(state.Relationships) != 0 {
		t.Fatal("expected input snapshot to stay unchanged")
	}
}

func TestResolveTimeWrap(t *testing.T) {
	state := newPlayer(t)
	state.Time = daytime.MustParse("23:50")

	res, err := Resolve(Bundle{TimeMinutes: 20}, nil, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Player.Time.String() != "00:10" || res.Player.Day != 2 {
		t.Fatalf("time = (%s, day %d), want (00:10, day 2)", res.Player.Time, res.Player.Day)
	}
	want := []Mutation{
		{Kind: KindTimeSet, Delta: 20, Before: 1430, After: 10, Value: "00:10"},
		{Kind: KindDayAdvanced, Delta: 1, Before: 1, After: 2},
	}
	if diff := cmp.Diff(want, res.Mutations); diff != "" {
		t.Fatalf("mutations mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRejectsNegativeTime(t *testing.T) {
	_, err := Resolve(Bundle{TimeMinutes: -1}, nil, newPlayer(t))
	if !apperrors.IsCode(err, apperrors.CodeTimeCostNegative) {
		t.Fatalf("code = %s, want %s", apperrors.GetCode(err), apperrors.CodeTimeCostNegative)
	}
}

func TestResolveRelationships(t *testing.T) {
	state := newPlayer(t)
	state.Masks = mask.NewState(map[string]int{"jester": 0}, "jester")

	res, err := Resolve(Bundle{Relationships: map[string]int{"mika": 5, "ren": -1, "sora": 0}}, &Modifier{RelationshipBonus: 1}, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := res.Player.Relationships["mika"]; got != 6 {
		t.Fatalf("mika = %d, want 6", got)
	}
	if _, ok := res.Player.Relationships["ren"]; ok {
		t.Fatal("expected effective zero delta (-1 + 1) not to create a row")
	}
	if got := res.Player.Relationships["sora"]; got != 1 {
		t.Fatalf("sora = %d, want bonus-only 1", got)
	}

	res, err = Resolve(Bundle{Relationships: map[string]int{"mika": 3}}, nil, res.Player)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := res.Player.Relationships["mika"]; got != 9 {
		t.Fatalf("mika = %d, want 9", got)
	}
}

func TestResolveZeroRelationshipCreatesNothing(t *testing.T) {
	res, err := Resolve(Bundle{Relationships: map[string]int{"mika": 0}}, nil, newPlayer(t))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(res.Player.Relationships) != 0 || res.Changed() {
		t.Fatalf("expected no relationship mutation, got %v", res.Mutations)
	}
}

func TestResolveItems(t *testing.T) {
	state := newPlayer(t)
	state.Inventory["tea"] = 2
	state.Inventory["note"] = 3

	res, err := Resolve(Bundle{Items: map[string]int{"tea": -5, "note": -1, "key": 1, "ghost": -1}}, nil, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	wantInv := player.Inventory{"note": 2, "key": 1}
	if diff := cmp.Diff(wantInv, res.Player.Inventory); diff != "" {
		t.Fatalf("inventory mismatch (-want +got):\n%s", diff)
	}
	want := []Mutation{
		{Kind: KindInventoryAdded, Target: "key", Delta: 1, Before: 0, After: 1, Created: true},
		{Kind: KindInventoryRemoved, Target: "note", Delta: -1, Before: 3, After: 2},
		{Kind: KindInventoryDeleted, Target: "tea", Delta: -5, Before: 2, After: 0},
	}
	if diff := cmp.Diff(want, res.Mutations); diff != "" {
		t.Fatalf("mutations mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]int{"key": 1, "note": -1, "tea": -2}, res.Applied.Items); diff != "" {
		t.Fatalf("applied items mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCorruption(t *testing.T) {
	state := newPlayer(t)
	state.Masks = mask.NewState(map[string]int{"shadow": 95}, "shadow")

	res, err := Resolve(Bundle{Corruption: 20}, nil, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := res.Player.Masks.Corruption("shadow"); got != 100 {
		t.Fatalf("corruption = %d, want 100", got)
	}
	if res.Applied.Corruption != 5 {
		t.Fatalf("applied corruption = %d, want clamped 5", res.Applied.Corruption)
	}

	res, err = Resolve(Bundle{Corruption: -150}, nil, res.Player)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got := res.Player.Masks.Corruption("shadow"); got != 0 {
		t.Fatalf("corruption = %d, want 0", got)
	}
}

func TestResolveCorruptionWithoutMask(t *testing.T) {
	state := newPlayer(t)
	state.Masks = mask.NewState(map[string]int{"shadow": 10}, "")
	res, err := Resolve(Bundle{Corruption: 5}, nil, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Changed() || res.Player.Masks.Corruption("shadow") != 10 {
		t.Fatal("expected no corruption change without an equipped mask")
	}
}

func TestResolveEnergyAndMood(t *testing.T) {
	state := newPlayer(t)
	state.Energy = 5

	res, err := Resolve(Bundle{Energy: -20, Mood: player.MoodNeutral}, nil, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Player.Energy != -15 {
		t.Fatalf("energy = %d, want unclamped -15", res.Player.Energy)
	}
	if res.Player.Mood != player.MoodNeutral {
		t.Fatalf("mood = %q, want unchanged", res.Player.Mood)
	}

	res, err = Resolve(Bundle{Mood: "happy"}, nil, state)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Player.Mood != "happy" || res.Applied.Mood != "happy" {
		t.Fatalf("mood = %q, want happy", res.Player.Mood)
	}
}

func TestResultMaskHelpers(t *testing.T) {
	state := newPlayer(t)
	res := NewResult(state)

	if res.EquipMask("shadow") {
		t.Fatal("expected equip of unowned mask to fail")
	}
	if res.Changed() {
		t.Fatal("expected failed equip to record nothing")
	}
	shadow := mask.Definition{ID: "shadow"}
	if unlocked, _ := res.UnlockMask(shadow, mask.Progress{}); !unlocked {
		t.Fatal("expected first unlock to succeed")
	}
	if unlocked, missing := res.UnlockMask(shadow, mask.Progress{}); unlocked || len(missing) != 0 {
		t.Fatalf("second unlock = (%v, %v), want (false, [])", unlocked, missing)
	}
	if !res.EquipMask("shadow") {
		t.Fatal("expected equip of owned mask")
	}
	if _, after, ok := res.AdjustCorruption("shadow", 30); !ok || after != 30 {
		t.Fatalf("AdjustCorruption = (%d, %v), want (30, true)", after, ok)
	}
	if _, _, ok := res.AdjustCorruption("jester", 30); ok {
		t.Fatal("expected adjust on unowned mask to fail")
	}
	if prev := res.UnequipMask(); prev != "shadow" {
		t.Fatalf("unequip = %q, want shadow", prev)
	}

	kinds := make([]Kind, 0, len(res.Mutations))
	for _, m := range res.Mutations {
		kinds = append(kinds, m.Kind)
	}
	want := []Kind{KindMaskUnlocked, KindMaskEquipped, KindCorruption, KindMaskEquipped}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestResultEventAndMinigame(t *testing.T) {
	res := NewResult(newPlayer(t))
	res.CompleteEvent("storm", "hide")
	res.RecordMinigame("math-quiz", "math", 30, true)

	if !res.Player.CompletedEvent("storm") || res.Player.Events["storm"] != "hide" {
		t.Fatal("expected event recorded with choice")
	}
	if got := res.Player.Minigames["math-quiz"]; got != (player.MinigameProgress{Score: 30, Completed: true, ClassID: "math"}) {
		t.Fatalf("minigame = %+v", got)
	}
}

func TestModifiersFor(t *testing.T) {
	mods := Modifiers{"jester": {ReputationBonus: 2}}
	if mods.For("") != nil || mods.For("shadow") != nil {
		t.Fatal("expected no modifier without a matching mask")
	}
	if got := mods.For("jester"); got == nil || got.ReputationBonus != 2 {
		t.Fatalf("For(jester) = %+v", got)
	}
}

func TestResultUnlockMaskWithUnmetRequirements(t *testing.T) {
	res := NewResult(newPlayer(t))
	def := mask.Definition{ID: "phantom", UnlockRequirements: []string{mask.RequirementCompleteThreeClasses}}

	unlocked, missing := res.UnlockMask(def, mask.Progress{CompletedClasses: 1})
	if unlocked {
		t.Fatal("expected locked mask to stay locked")
	}
	if diff := cmp.Diff([]string{mask.RequirementCompleteThreeClasses}, missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
	if res.Changed() || res.Player.Masks.Owns("phantom") {
		t.Fatal("expected failed unlock to record nothing")
	}
}

func TestResultAdjustCorruptionBothDirections(t *testing.T) {
	state := newPlayer(t)
	state.Masks = mask.NewState(map[string]int{"shadow": 40, "jester": 10}, "shadow")
	res := NewResult(state)

	if before, after, ok := res.AdjustCorruption("shadow", -60); !ok || before != 40 || after != 0 {
		t.Fatalf("AdjustCorruption(-60) = (%d, %d, %v), want (40, 0, true)", before, after, ok)
	}
	if _, after, ok := res.AdjustCorruption("jester", 95); !ok || after != 100 {
		t.Fatalf("AdjustCorruption(95) = (%d, %v), want (100, true)", after, ok)
	}
	if res.Applied.Corruption != -40 {
		t.Fatalf("applied corruption = %d, want -40 from the equipped mask only", res.Applied.Corruption)
	}

	res.AddEquippedCorruption(7)
	if got := res.Player.Masks.Corruption("shadow"); got != 7 {
		t.Fatalf("equipped corruption = %d, want 7", got)
	}
	if len(res.Mutations) != 3 {
		t.Fatalf("mutations = %d, want 3", len(res.Mutations))
	}
}
