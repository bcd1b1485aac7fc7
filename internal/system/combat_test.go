package system

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"text-rpg/assets"
	"text-rpg/internal/component"
	"text-rpg/internal/dice"
)

func newPlayer() *component.Player {
	return &component.Player{Health: component.Health{Current: 10, Max: 10}}
}

func TestAttackThreeTimesWinsAgainstGoblin(t *testing.T) {
	p := newPlayer()
	if err := p.Equip(assets.Stick); err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(42))
	b := NewBattle(assets.Goblin)

	want := []int{2, 1, 0}
	for i, health := range want {
		var res TurnResult
		var err error
		b, res, err = ResolveTurn(b, p, ActionAttack, rng)
		if err != nil {
			t.Fatalf("turn %d: %v", i+1, err)
		}
		if b.Health != health {
			t.Fatalf("turn %d: enemy health %d, want %d", i+1, b.Health, health)
		}
		if res.DamageDealt != 1 {
			t.Errorf("turn %d: dealt %d", i+1, res.DamageDealt)
		}
		if i < 2 && b.State != Active {
			t.Fatalf("turn %d: state %v, want active", i+1, b.State)
		}
	}
	if b.State != Won {
		t.Fatalf("expected Won, got %v", b.State)
	}
	if p.Gold < 1 || p.Gold > 5 {
		t.Errorf("reward %d outside [1,5]", p.Gold)
	}
	// Two counter-attacks landed before the killing blow.
	if p.Current != 8 {
		t.Errorf("player health %d, want 8", p.Current)
	}
}

func TestResolveTurnLeavesInputUntouched(t *testing.T) {
	p := newPlayer()
	b := NewBattle(assets.OldMan)
	next, _, err := ResolveTurn(b, p, ActionAttack, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if b.Health != 5 {
		t.Errorf("input battle mutated: %+v", b)
	}
	if next.Health != 4 {
		t.Errorf("next health %d, want 4", next.Health)
	}
}

func TestDefendNegatesDamage(t *testing.T) {
	p := newPlayer()
	b := NewBattle(assets.BossMonster)
	next, res, err := ResolveTurn(b, p, ActionDefend, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if next != b {
		t.Errorf("defend changed the battle: %+v -> %+v", b, next)
	}
	if p.Current != 10 || res.DamageTaken != 0 {
		t.Errorf("defend should take no damage, health %d", p.Current)
	}
}

func TestFlee(t *testing.T) {
	cases := []struct {
		name      string
		roll      float64
		health    int
		wantState BattleState
		wantHP    int
	}{
		{"success", 0.1, 10, Fled, 10},
		{"boundary fails", 0.5, 10, Active, 9},
		{"failure", 0.9, 10, Active, 9},
		{"failure kills", 0.9, 1, Lost, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer()
			p.Current = tc.health
			rng := &dice.Scripted{Floats: []float64{tc.roll}}
			b, res, err := ResolveTurn(NewBattle(assets.Goblin), p, ActionFlee, rng)
			if err != nil {
				t.Fatal(err)
			}
			if b.State != tc.wantState {
				t.Errorf("state %v, want %v", b.State, tc.wantState)
			}
			if p.Current != tc.wantHP {
				t.Errorf("health %d, want %d", p.Current, tc.wantHP)
			}
			if b.Health != assets.Goblin.Health {
				t.Errorf("fleeing should not hurt the enemy")
			}
			if tc.wantState == Lost && !strings.Contains(res.Message, "defeated") {
				t.Errorf("message %q", res.Message)
			}
		})
	}
}

func TestCounterAttackKillsPlayer(t *testing.T) {
	p := newPlayer()
	p.Current = 1
	b, res, err := ResolveTurn(NewBattle(assets.AncientDragon), p, ActionAttack, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if b.State != Lost {
		t.Fatalf("expected Lost, got %v", b.State)
	}
	if !p.Dead() || res.DamageTaken != 1 {
		t.Errorf("player should be dead after 1 damage")
	}
}

func TestAttackWithNonPositiveWeapon(t *testing.T) {
	cases := []struct {
		damage     int
		wantHealth int
	}{
		{0, 3},
		{-2, 5},
	}
	for _, c := range cases {
		p := newPlayer()
		if err := p.Equip(component.NewWeapon("Odd", "", c.damage)); err != nil {
			t.Fatal(err)
		}
		b, _, err := ResolveTurn(NewBattle(assets.Goblin), p, ActionAttack, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatal(err)
		}
		if b.Health != c.wantHealth || b.State != Active {
			t.Errorf("damage %d: enemy health %d state %v", c.damage, b.Health, b.State)
		}
	}
}

func TestResolveFinishedBattle(t *testing.T) {
	for _, s := range []BattleState{Won, Lost, Fled} {
		b := NewBattle(assets.Goblin)
		b.State = s
		_, _, err := ResolveTurn(b, newPlayer(), ActionAttack, rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrBattleOver) {
			t.Errorf("%v: expected ErrBattleOver, got %v", s, err)
		}
	}
}

func TestParseBattleAction(t *testing.T) {
	for choice, want := range map[int]BattleAction{1: ActionAttack, 2: ActionDefend, 3: ActionFlee} {
		got, err := ParseBattleAction(choice)
		if err != nil || got != want {
			t.Errorf("ParseBattleAction(%d) = %v, %v", choice, got, err)
		}
	}
	for _, bad := range []int{0, 4, -1} {
		if _, err := ParseBattleAction(bad); !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("ParseBattleAction(%d) should fail", bad)
		}
	}
}

func TestClock(t *testing.T) {
	var c Clock
	if !c.IsDay() || c.Label() != "Day" {
		t.Fatal("clock should start at Day")
	}
	c.Advance()
	if c.IsDay() || c.Label() != "Night" {
		t.Fatal("expected Night after one advance")
	}
	c.Advance()
	if !c.IsDay() {
		t.Fatal("expected Day after two advances")
	}
}
