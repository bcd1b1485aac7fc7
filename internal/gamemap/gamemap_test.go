package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	m := New(Earth, 10)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 9, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 10, false},
	}
	for _, c := range cases {
		got := m.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestAtOutOfBounds(t *testing.T) {
	m := New(Earth, 10)
	for _, p := range []Point{{-1, 5}, {5, -1}, {15, 5}, {5, 15}} {
		if _, ok := m.At(p.X, p.Y); ok {
			t.Errorf("At(%d,%d) should report out of bounds", p.X, p.Y)
		}
	}
}

func TestMajorTakesPrecedence(t *testing.T) {
	m := New(Earth, 10)
	m.Set(2, 2, Treasure)
	if c, _ := m.At(2, 2); c != Treasure {
		t.Fatalf("expected base Treasure, got %v", c)
	}
	m.PlaceMajor(2, 2, TreasureVault)
	if c, _ := m.At(2, 2); c != TreasureVault {
		t.Fatalf("major event should override base content, got %v", c)
	}
	if !m.HasMajorAt(2, 2) || m.HasMajorAt(3, 3) {
		t.Error("HasMajorAt mismatch")
	}
	// Repeated queries are stable.
	for rangeIdx := 0; rangeIdx < 5; rangeIdx++ {
		if c, _ := m.At(2, 2); c != TreasureVault {
			t.Fatalf("major event changed on re-query: %v", c)
		}
	}
}

func TestClearLeavesMajorEvents(t *testing.T) {
	m := New(Earth, 5)
	m.Set(1, 1, Treasure)
	m.Clear(1, 1)
	if c, _ := m.At(1, 1); c != Empty {
		t.Errorf("Clear should empty base cell, got %v", c)
	}
	m.PlaceMajor(3, 3, Dragon)
	m.Clear(3, 3)
	if c, _ := m.At(3, 3); c != Dragon {
		t.Errorf("Clear must not remove a major event, got %v", c)
	}
	m.Clear(-1, 0) // out of bounds: no panic
}

func TestSetIndexesRowMajor(t *testing.T) {
	m := New(Earth, 5)
	m.Set(4, 1, Merchant)
	if m.Cells[1][4] != Merchant {
		t.Fatal("Set(x,y) should write Cells[y][x]")
	}
	if m.Count(Merchant) != 1 {
		t.Errorf("Count(Merchant) = %d, want 1", m.Count(Merchant))
	}
}

func TestContentNames(t *testing.T) {
	for _, c := range AllContents() {
		got, err := ParseContent(c.String())
		if err != nil || got != c {
			t.Errorf("ParseContent(%q) = %v, %v", c.String(), got, err)
		}
	}
	if _, err := ParseContent("castle"); err == nil {
		t.Error("expected error for unknown content")
	}
	majors := 0
	for _, c := range AllContents() {
		if c.IsMajor() {
			majors++
		}
	}
	if majors != 5 {
		t.Errorf("expected 5 major kinds, got %d", majors)
	}
	if Enemy.IsMajor() || !BossEnemy.IsMajor() {
		t.Error("IsMajor misclassifies")
	}
}
