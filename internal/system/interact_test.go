package system

import (
	"errors"
	"testing"

	"text-rpg/assets"
	"text-rpg/internal/dice"
	"text-rpg/internal/gamemap"
)

func TestInteractTable(t *testing.T) {
	cases := []struct {
		name       string
		content    gamemap.Content
		choice     int
		gold       int
		health     int
		rng        *dice.Scripted
		wantGold   int
		wantHealth int
		wantBattle string
		wantClear  bool
	}{
		{name: "enemy attack", content: gamemap.Enemy, choice: 1, wantBattle: "Goblin"},
		{name: "enemy sneak ok", content: gamemap.Enemy, choice: 2, rng: &dice.Scripted{Floats: []float64{0.5}}},
		{name: "enemy sneak fails", content: gamemap.Enemy, choice: 2, rng: &dice.Scripted{Floats: []float64{0.7}}, wantBattle: "Goblin"},
		{name: "enemy observe", content: gamemap.Enemy, choice: 3},
		{name: "npc quest", content: gamemap.NPC, choice: 3, rng: &dice.Scripted{Ints: []int{0}}, wantGold: 3},
		{name: "merchant potion", content: gamemap.Merchant, choice: 1, gold: 12, health: 2, rng: &dice.Scripted{Ints: []int{4}}, wantGold: 2, wantHealth: 9},
		{name: "merchant potion broke", content: gamemap.Merchant, choice: 1, gold: 9, health: 2, wantGold: 9, wantHealth: 2},
		{name: "merchant upgrade unarmed", content: gamemap.Merchant, choice: 2, gold: 20, wantGold: 5},
		{name: "merchant upgrade broke", content: gamemap.Merchant, choice: 2, gold: 14, wantGold: 14},
		{name: "merchant sell", content: gamemap.Merchant, choice: 3, rng: &dice.Scripted{Ints: []int{4}}, wantGold: 6},
		{name: "treasure grab", content: gamemap.Treasure, choice: 1, rng: &dice.Scripted{Ints: []int{7}}, wantGold: 15, wantClear: true},
		{name: "treasure trap", content: gamemap.Treasure, choice: 2, rng: &dice.Scripted{Floats: []float64{0.1}, Ints: []int{0}}, wantGold: 12},
		{name: "treasure no trap", content: gamemap.Treasure, choice: 2, rng: &dice.Scripted{Floats: []float64{0.3}, Ints: []int{0}}, wantGold: 8},
		{name: "treasure restraint", content: gamemap.Treasure, choice: 3, rng: &dice.Scripted{Ints: []int{0}}, wantGold: 5},
		{name: "portal glow", content: gamemap.Portal, choice: 3, health: 5, rng: &dice.Scripted{Ints: []int{2}}, wantHealth: 8},
		{name: "empty rest clamps", content: gamemap.Empty, choice: 1, health: 9, rng: &dice.Scripted{Ints: []int{2}}, wantHealth: 10},
		{name: "empty search finds", content: gamemap.Empty, choice: 2, rng: &dice.Scripted{Floats: []float64{0.2}, Ints: []int{3}}, wantGold: 4},
		{name: "empty search nothing", content: gamemap.Empty, choice: 2, rng: &dice.Scripted{Floats: []float64{0.3}}},
		{name: "empty camp", content: gamemap.Empty, choice: 3, health: 1, rng: &dice.Scripted{Ints: []int{0}}, wantHealth: 3},
		{name: "dragon combat", content: gamemap.Dragon, choice: 1, wantBattle: "Ancient Dragon"},
		{name: "dragon bribe", content: gamemap.Dragon, choice: 2, rng: &dice.Scripted{Floats: []float64{0.29}, Ints: []int{20}}, wantGold: 50},
		{name: "dragon talks fail", content: gamemap.Dragon, choice: 2, rng: &dice.Scripted{Floats: []float64{0.3}}, wantBattle: "Ancient Dragon"},
		{name: "dragon sneak", content: gamemap.Dragon, choice: 3, rng: &dice.Scripted{Floats: []float64{0.39}}},
		{name: "dragon sneak fails", content: gamemap.Dragon, choice: 3, rng: &dice.Scripted{Floats: []float64{0.4}}, wantBattle: "Ancient Dragon"},
		{name: "vault seal", content: gamemap.TreasureVault, choice: 1, rng: &dice.Scripted{Ints: []int{0}}, wantGold: 50},
		{name: "vault key", content: gamemap.TreasureVault, choice: 2, rng: &dice.Scripted{Ints: []int{30}}, wantGold: 60},
		{name: "vault study", content: gamemap.TreasureVault, choice: 3, health: 1, rng: &dice.Scripted{Ints: []int{0}}, wantHealth: 6},
		{name: "master elixir broke", content: gamemap.MasterMerchant, choice: 2, gold: 29, wantGold: 29},
		{name: "master trade", content: gamemap.MasterMerchant, choice: 3, rng: &dice.Scripted{Ints: []int{0}}, wantGold: 20},
		{name: "ancient activate", content: gamemap.AncientPortal, choice: 1},
		{name: "ancient runes", content: gamemap.AncientPortal, choice: 2, health: 1, rng: &dice.Scripted{Ints: []int{5}}, wantHealth: 9},
		{name: "ancient channel", content: gamemap.AncientPortal, choice: 3, rng: &dice.Scripted{Ints: []int{15}}, wantGold: 25},
		{name: "boss battle", content: gamemap.BossEnemy, choice: 1, wantBattle: "Boss Monster"},
		{name: "boss weakness", content: gamemap.BossEnemy, choice: 2},
		{name: "boss retreat", content: gamemap.BossEnemy, choice: 3, rng: &dice.Scripted{Floats: []float64{0.59}}},
		{name: "boss retreat fails", content: gamemap.BossEnemy, choice: 3, rng: &dice.Scripted{Floats: []float64{0.6}}, wantBattle: "Boss Monster"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer()
			p.Gold = tc.gold
			if tc.health > 0 {
				p.Current = tc.health
			}
			wantHealth := tc.wantHealth
			if wantHealth == 0 {
				wantHealth = p.Current
			}
			rng := tc.rng
			if rng == nil {
				rng = &dice.Scripted{}
			}
			out, err := Interact(tc.content, tc.choice, p, rng)
			if err != nil {
				t.Fatal(err)
			}
			if out.Message == "" {
				t.Error("empty message")
			}
			if p.Gold != tc.wantGold {
				t.Errorf("gold %d, want %d", p.Gold, tc.wantGold)
			}
			if p.Current != wantHealth {
				t.Errorf("health %d, want %d", p.Current, wantHealth)
			}
			gotBattle := ""
			if out.Battle != nil {
				gotBattle = out.Battle.Name
			}
			if gotBattle != tc.wantBattle {
				t.Errorf("battle %q, want %q", gotBattle, tc.wantBattle)
			}
			if out.ClearCell != tc.wantClear {
				t.Errorf("ClearCell %v, want %v", out.ClearCell, tc.wantClear)
			}
		})
	}
}

func TestMerchantUpgrade(t *testing.T) {
	p := newPlayer()
	p.AddItem(assets.Stick)
	if err := p.Equip(assets.Stick); err != nil {
		t.Fatal(err)
	}

	p.Gold = 14
	Interact(gamemap.Merchant, 2, p, &dice.Scripted{})
	if p.Gold != 14 || p.AttackDamage() != assets.Stick.Damage {
		t.Fatalf("upgrade applied without enough gold: gold %d damage %d", p.Gold, p.AttackDamage())
	}

	p.Gold = 20
	if _, err := Interact(gamemap.Merchant, 2, p, &dice.Scripted{}); err != nil {
		t.Fatal(err)
	}
	want := assets.Stick.Damage + assets.UpgradeBonus
	if p.Gold != 5 || p.AttackDamage() != want {
		t.Errorf("gold %d damage %d, want 5 and %d", p.Gold, p.AttackDamage(), want)
	}
	if p.Inventory[0].Damage != want {
		t.Errorf("inventory copy damage %d, want %d", p.Inventory[0].Damage, want)
	}
	if assets.Stick.Damage != 1 {
		t.Error("upgrade leaked into the weapon registry")
	}
}

func TestMasterMerchantBlade(t *testing.T) {
	p := newPlayer()
	p.Gold = 60
	if _, err := Interact(gamemap.MasterMerchant, 1, p, &dice.Scripted{}); err != nil {
		t.Fatal(err)
	}
	if p.Gold != 10 {
		t.Errorf("gold %d, want 10", p.Gold)
	}
	if p.Equipped != assets.LegendaryBlade || p.AttackDamage() != assets.LegendaryBlade.Damage {
		t.Errorf("blade not equipped: %+v", p.Equipped)
	}
	if len(p.Inventory) != 1 {
		t.Errorf("inventory %v", p.Inventory)
	}

	p.Gold = 49
	if _, err := Interact(gamemap.MasterMerchant, 1, p, &dice.Scripted{}); err != nil {
		t.Fatal(err)
	}
	if p.Gold != 49 || len(p.Inventory) != 1 {
		t.Error("unaffordable purchase changed state")
	}
}

func TestMasterMerchantElixir(t *testing.T) {
	p := newPlayer()
	p.Gold = 30
	p.Current = 3
	if _, err := Interact(gamemap.MasterMerchant, 2, p, &dice.Scripted{}); err != nil {
		t.Fatal(err)
	}
	if p.Gold != 0 || p.Max != 15 || p.Current != 15 {
		t.Errorf("after elixir: gold %d health %d/%d", p.Gold, p.Current, p.Max)
	}
}

func TestInteractInvalidChoice(t *testing.T) {
	for _, choice := range []int{0, 4, -3} {
		_, err := Interact(gamemap.Treasure, choice, newPlayer(), &dice.Scripted{})
		if !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("choice %d: expected ErrInvalidChoice, got %v", choice, err)
		}
	}
}

func TestEveryContentHasInteractions(t *testing.T) {
	for _, c := range gamemap.AllContents() {
		for choice := 1; choice <= 3; choice++ {
			p := newPlayer()
			p.Gold = 100
			if _, err := Interact(c, choice, p, &dice.Scripted{Floats: []float64{0.99}}); err != nil {
				t.Errorf("%v/%d: %v", c, choice, err)
			}
		}
	}
}
