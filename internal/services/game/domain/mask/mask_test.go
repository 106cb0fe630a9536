package mask

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEquipRequiresOwnership(t *testing.T) {
	s := NewState(map[string]int{"shadow": 0}, "")

	if s.Equip("jester") {
		t.Fatal("expected equip of unowned mask to fail")
	}
	if _, ok := s.Equipped(); ok {
		t.Fatal("expected nothing equipped after failed equip")
	}
	if !s.Equip("shadow") {
		t.Fatal("expected equip of owned mask to succeed")
	}
	if id, _ := s.Equipped(); id != "shadow" {
		t.Fatalf("equipped = %q, want shadow", id)
	}
}

func TestEquipReplacesPrevious(t *testing.T) {
	s := NewState(map[string]int{"shadow": 0, "jester": 0}, "shadow")
	s.Equip("jester")
	if id, _ := s.Equipped(); id != "jester" {
		t.Fatalf("equipped = %q, want jester", id)
	}
	if prev := s.Unequip(); prev != "jester" {
		t.Fatalf("unequip returned %q, want jester", prev)
	}
	if _, ok := s.Equipped(); ok {
		t.Fatal("expected nothing equipped after unequip")
	}
}

func TestNewStateDropsUnownedEquipped(t *testing.T) {
	s := NewState(map[string]int{"shadow": 130}, "jester")
	if _, ok := s.Equipped(); ok {
		t.Fatal("expected unowned equipped id to be dropped")
	}
	if got := s.Corruption("shadow"); got != 100 {
		t.Fatalf("corruption = %d, want clamped 100", got)
	}
}

func TestAddCorruptionClamps(t *testing.T) {
	s := NewState(map[string]int{"shadow": 95}, "shadow")

	before, after, ok := s.AddCorruption(20)
	if !ok || before != 95 || after != 100 {
		t.Fatalf("AddCorruption(20) = (%d, %d, %v), want (95, 100, true)", before, after, ok)
	}
	before, after, ok = s.AddCorruption(-150)
	if !ok || before != 100 || after != 0 {
		t.Fatalf("AddCorruption(-150) = (%d, %d, %v), want (100, 0, true)", before, after, ok)
	}
}

func TestAddCorruptionWithoutEquippedMask(t *testing.T) {
	s := NewState(map[string]int{"shadow": 10}, "")
	if _, _, ok := s.AddCorruption(5); ok {
		t.Fatal("expected no effect without an equipped mask")
	}
	if got := s.Corruption("shadow"); got != 10 {
		t.Fatalf("corruption = %d, want 10", got)
	}
}

func TestReduceCorruption(t *testing.T) {
	s := NewState(map[string]int{"shadow": 30}, "")
	if _, after, ok := s.ReduceCorruption("shadow", 40); !ok || after != 0 {
		t.Fatalf("ReduceCorruption = (%d, %v), want (0, true)", after, ok)
	}
	if _, _, ok := s.ReduceCorruption("jester", 1); ok {
		t.Fatal("expected reduce on unowned mask to fail")
	}
	if _, _, ok := s.ReduceCorruption("shadow", -1); ok {
		t.Fatal("expected negative reduction to be rejected")
	}
}

func TestRaiseCorruption(t *testing.T) {
	s := NewState(map[string]int{"shadow": 90}, "")
	if before, after, ok := s.RaiseCorruption("shadow", 25); !ok || before != 90 || after != 100 {
		t.Fatalf("RaiseCorruption = (%d, %d, %v), want (90, 100, true)", before, after, ok)
	}
	if _, _, ok := s.RaiseCorruption("jester", 1); ok {
		t.Fatal("expected raise on unowned mask to fail")
	}
	if _, _, ok := s.RaiseCorruption("shadow", -1); ok {
		t.Fatal("expected negative raise to be rejected")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState(map[string]int{"shadow": 10}, "shadow")
	c := s.Clone()
	c.AddCorruption(50)
	if s.Corruption("shadow") != 10 {
		t.Fatal("expected clone mutation not to leak")
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		corruption int
		want       TierLevel
		ok         bool
	}{
		{corruption: 0},
		{corruption: 24},
		{corruption: 25, want: TierMild, ok: true},
		{corruption: 74, want: TierModerate, ok: true},
		{corruption: 75, want: TierSevere, ok: true},
		{corruption: 90, want: TierCritical, ok: true},
		{corruption: 100, want: TierConsumed, ok: true},
	}
	for _, tt := range tests {
		tier, ok := TierFor(tt.corruption)
		if ok != tt.ok || tier.Level != tt.want {
			t.Fatalf("TierFor(%d) = (%s, %v), want (%s, %v)", tt.corruption, tier.Level, ok, tt.want, tt.ok)
		}
	}
}

func TestUnlockRequiresAllRequirements(t *testing.T) {
	def := Definition{
		ID:                 "phantom",
		UnlockRequirements: []string{RequirementCompleteThreeClasses, RequirementReachRelationship60},
	}
	s := NewState(map[string]int{"shadow": 0}, "")

	unlocked, missing := s.Unlock(def, Progress{CompletedClasses: 3, Relationships: map[string]int{"mika": 40}})
	if unlocked {
		t.Fatal("expected mask to stay locked with one unmet requirement")
	}
	if diff := cmp.Diff([]string{RequirementReachRelationship60}, missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}
	if s.Owns("phantom") {
		t.Fatal("expected locked mask not to be owned")
	}

	unlocked, missing = s.Unlock(def, Progress{CompletedClasses: 3, Relationships: map[string]int{"mika": 60}})
	if !unlocked || len(missing) != 0 {
		t.Fatalf("Unlock = (%v, %v), want (true, [])", unlocked, missing)
	}
	if got := s.Corruption("phantom"); got != 0 {
		t.Fatalf("new mask corruption = %d, want 0", got)
	}
	if unlocked, _ := s.Unlock(def, Progress{CompletedClasses: 3, Relationships: map[string]int{"mika": 60}}); unlocked {
		t.Fatal("expected already-owned mask not to unlock again")
	}
}

func TestRequirementPredicates(t *testing.T) {
	tests := []struct {
		name     string
		req      string
		owned    map[string]int
		progress Progress
		want     bool
	}{
		{name: "two classes", req: RequirementCompleteThreeClasses, progress: Progress{CompletedClasses: 2}},
		{name: "low affinity", req: RequirementRelationshipBelow20, progress: Progress{Relationships: map[string]int{"a": -20}}, want: true},
		{name: "mildly negative", req: RequirementRelationshipBelow20, progress: Progress{Relationships: map[string]int{"a": -19}}},
		{name: "all masks corrupted", req: RequirementCorruption50AllMasks, owned: map[string]int{"a": 50, "b": 80}, want: true},
		{name: "one mask clean", req: RequirementCorruption50AllMasks, owned: map[string]int{"a": 50, "b": 49}},
		{name: "no masks owned", req: RequirementCorruption50AllMasks, want: true},
		{name: "flag set", req: "experience_conflict", progress: Progress{Flags: map[string]bool{"experience_conflict": true}}, want: true},
		{name: "flag unset", req: "experience_loss_event"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(tt.owned, "")
			missing := s.Missing(Definition{ID: "x", UnlockRequirements: []string{tt.req}}, tt.progress)
			if got := len(missing) == 0; got != tt.want {
				t.Fatalf("requirement %s met = %v, want %v", tt.req, got, tt.want)
			}
		})
	}
}

type fixedRoller int

func (r fixedRoller) IntN(n int) int { return int(r) % n }

func TestTriggerCorruption(t *testing.T) {
	def := Definition{ID: "shadow", CorruptionTriggers: []string{"lie", " Sneak "}}

	if got := def.TriggerCorruption("Sneak into the office", fixedRoller(2)); got != 3 {
		t.Fatalf("TriggerCorruption = %d, want 3", got)
	}
	if got := def.TriggerCorruption("Tell a white LIE", fixedRoller(0)); got != 1 {
		t.Fatalf("TriggerCorruption = %d, want 1", got)
	}
	if got := def.TriggerCorruption("Study", fixedRoller(2)); got != 0 {
		t.Fatalf("TriggerCorruption = %d, want 0", got)
	}
	if got := def.TriggerCorruption("lie", nil); got != 0 {
		t.Fatalf("TriggerCorruption without roller = %d, want 0", got)
	}
}

func TestHasAbility(t *testing.T) {
	def := Definition{Abilities: map[Ability]bool{AbilityHint: true}}
	if !def.HasAbility(AbilityHint) || def.HasAbility(AbilityIllusion) {
		t.Fatal("unexpected ability result")
	}
}

func TestGrantedAbilitiesOrder(t *testing.T) {
	def := Definition{Abilities: map[Ability]bool{AbilityEmpathy: true, AbilityHint: true, AbilityIllusion: false, "flight": true}}
	if diff := cmp.Diff([]Ability{AbilityHint, AbilityEmpathy}, def.GrantedAbilities()); diff != "" {
		t.Fatalf("granted mismatch (-want +got):\n%s", diff)
	}
	if got := (Definition{}).GrantedAbilities(); got != nil {
		t.Fatalf("granted = %v, want nil", got)
	}
}
