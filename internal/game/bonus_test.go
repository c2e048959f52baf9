package game

import (
	"errors"
	"testing"
)

func TestActivateEmptySlotFails(t *testing.T) {
	s := newTestSession(t)
	s.Items.Selected = ItemHeal
	s.Health = 50

	err := s.ActivateSelected()
	if !errors.Is(err, ErrNoItem) {
		t.Fatalf("expected ErrNoItem, got %v", err)
	}
	if s.Health != 50 {
		t.Fatalf("failed activation must not change state: health=%d", s.Health)
	}
	if s.Items.Count(ItemHeal) != 0 {
		t.Fatalf("failed activation must not touch inventory")
	}
}

func TestActivateDecrementsOnce(t *testing.T) {
	s := newTestSession(t)
	s.Items.Selected = ItemShield
	s.Items.Counts[ItemShield] = 3

	if err := s.ActivateSelected(); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if got := s.Items.Count(ItemShield); got != 2 {
		t.Fatalf("quantity after activation: got %d want 2", got)
	}
	if s.Shield != shieldItemBonus {
		t.Fatalf("shield effect applied once: got %d want %d", s.Shield, shieldItemBonus)
	}
}

func TestActivateHealCapped(t *testing.T) {
	s := newTestSession(t)
	s.Items.Selected = ItemHeal
	s.Items.Counts[ItemHeal] = 1
	s.Health = 90

	if err := s.ActivateSelected(); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if s.Health != MaxHealth {
		t.Fatalf("heal caps at max health: got %d", s.Health)
	}
}

func TestActivateMissilesWithoutTargets(t *testing.T) {
	s := newTestSession(t)
	s.Items.Selected = ItemMissiles
	s.Items.Counts[ItemMissiles] = 2

	err := s.ActivateSelected()
	if !errors.Is(err, ErrNoTargets) {
		t.Fatalf("expected ErrNoTargets, got %v", err)
	}
	if s.Items.Count(ItemMissiles) != 2 {
		t.Fatalf("failed launch must not consume the item: got %d", s.Items.Count(ItemMissiles))
	}

	addEnemy(s, "target", 100, 100)
	if err := s.ActivateSelected(); err != nil {
		t.Fatalf("activate with target: %v", err)
	}
	if s.Items.Count(ItemMissiles) != 1 {
		t.Fatalf("launch consumes one item: got %d", s.Items.Count(ItemMissiles))
	}
	if len(s.Missiles) == 0 {
		t.Fatalf("launch spawns missiles")
	}
}

func TestFreezeStopsAndRestoresMotion(t *testing.T) {
	s := newTestSession(t)
	e := addEnemy(s, "icicle", 100, 100)
	e.Speed = 2.0
	s.Items.Selected = ItemFreeze
	s.Items.Counts[ItemFreeze] = 1

	if err := s.ActivateSelected(); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !e.Frozen {
		t.Fatalf("freeze must stop live enemies")
	}
	if !s.FreezeActive() {
		t.Fatalf("freeze timer must be running")
	}

	y := e.Y
	for i := 0; i < freezeDurationTks-1; i++ {
		s.Tick()
	}
	if !e.Frozen {
		t.Fatalf("freeze expired a tick early")
	}
	if e.Y != y {
		t.Fatalf("frozen enemy moved: y %v -> %v", y, e.Y)
	}
	s.Tick()
	if e.Frozen {
		t.Fatalf("freeze must expire after %d ticks", freezeDurationTks)
	}
	if e.Y == y {
		t.Fatalf("enemy must resume moving after the freeze expires")
	}
}

func TestFreezeGrantsCollisionImmunity(t *testing.T) {
	s := newTestSession(t)
	e := addEnemy(s, "ram", PlayerX, PlayerY)
	e.Frozen = true
	s.freezeTicks = 10

	s.checkCollisions()
	if s.Health != MaxHealth {
		t.Fatalf("collisions must be inert while frozen: health=%d", s.Health)
	}
	if !e.Active && len(s.Enemies) != 1 {
		t.Fatalf("enemy must survive the frozen overlap")
	}
}

func TestCycleItemWraps(t *testing.T) {
	s := newTestSession(t)
	s.Items.Selected = ItemMissiles

	s.CycleItem(-1)
	if s.Items.Selected != ItemFreeze {
		t.Fatalf("cycle back from slot 0 wraps to the last slot, got %v", s.Items.Selected)
	}
	s.CycleItem(1)
	if s.Items.Selected != ItemMissiles {
		t.Fatalf("cycle forward wraps to slot 0, got %v", s.Items.Selected)
	}
}

func TestGrantRandomItemCoversAllKinds(t *testing.T) {
	s := newTestSession(t)
	seen := make(map[ItemKind]bool)
	for i := 0; i < 200; i++ {
		seen[s.grantRandomItem()] = true
	}
	for k := 0; k < ItemKindCount; k++ {
		if !seen[ItemKind(k)] {
			t.Fatalf("item kind %v never granted in 200 draws", ItemKind(k))
		}
	}
}
