package game

import "testing"

func TestSpawnDelayMonotonicAndBounded(t *testing.T) {
	prev := SpawnDelayMs(1)
	if prev != spawnDelayBaseMs {
		t.Fatalf("level 1 delay: got %.1f want %.1f", prev, spawnDelayBaseMs)
	}
	for level := 2; level <= MaxLevel; level++ {
		d := SpawnDelayMs(level)
		if d > prev {
			t.Fatalf("delay increased at level %d: %.1f > %.1f", level, d, prev)
		}
		if d < spawnDelayFloorMs || d > spawnDelayBaseMs {
			t.Fatalf("delay out of bounds at level %d: %.1f", level, d)
		}
		prev = d
	}
	if got := SpawnDelayMs(MaxLevel); got != spawnDelayFloorMs {
		t.Fatalf("level 100 delay: got %.1f want %.1f", got, spawnDelayFloorMs)
	}
}

func TestEnemyCap(t *testing.T) {
	cases := []struct {
		level     int
		bossAlive bool
		want      int
	}{
		{1, false, 6},
		{16, false, 10},
		{100, false, 10},
		{1, true, 2},
		{18, true, 5},
		{100, true, 5},
	}
	for _, tc := range cases {
		if got := enemyCap(tc.level, tc.bossAlive); got != tc.want {
			t.Fatalf("enemyCap(%d, %v): got %d want %d", tc.level, tc.bossAlive, got, tc.want)
		}
	}
}

func TestRegularSpawnRespectsDelayAndCap(t *testing.T) {
	s := newTestSession(t)
	s.Tick()
	if len(s.Enemies) != 1 {
		t.Fatalf("expected first enemy immediately, got %d", len(s.Enemies))
	}
	// Well within the level 1 delay: no second spawn.
	for i := 0; i < TicksPerSecond; i++ {
		s.Tick()
	}
	if len(s.Enemies) != 1 {
		t.Fatalf("expected no spawn inside the delay window, got %d", len(s.Enemies))
	}
}

func TestBossSpawnIdempotentWithinFrame(t *testing.T) {
	s := newTestSession(t)
	s.Level = 5
	s.updateSpawns()
	s.updateSpawns()
	bosses := s.liveCount(KindBoss)
	if bosses != 1 {
		t.Fatalf("expected exactly one boss, got %d", bosses)
	}
	if !s.BossSpawned {
		t.Fatalf("boss-spawned flag not set")
	}
}

func TestBossSpawnKeepsRegularEnemies(t *testing.T) {
	s := newTestSession(t)
	addEnemy(s, "keep", 100, 100)
	s.Level = 10
	// Exhaust the primed spawn delay so only the boss check fires.
	s.lastSpawnMs = s.clockMs
	s.updateSpawns()
	if s.liveCount(KindRegular) != 1 {
		t.Fatalf("regular enemies must survive a boss spawn")
	}
	if s.Enemies[0].Word != "keep" {
		t.Fatalf("pre-existing enemy replaced: %q", s.Enemies[0].Word)
	}
	if s.liveCount(KindBoss) != 1 {
		t.Fatalf("expected a boss at a boss level")
	}
}

func TestNoBossOffBossLevels(t *testing.T) {
	s := newTestSession(t)
	s.Level = 7
	s.updateSpawns()
	if s.liveCount(KindBoss) != 0 {
		t.Fatalf("boss spawned on a non-boss level")
	}
}

func TestBossSpawnEmitsBossCue(t *testing.T) {
	s := newTestSession(t)
	s.Level = 5
	s.updateSpawns()
	found := false
	for _, ev := range s.DrainEvents() {
		if ev.Kind == EventSound && ev.Cue == CueBoss {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected boss sound cue on spawn")
	}
}
