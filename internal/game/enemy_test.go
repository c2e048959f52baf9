package game

import (
	"math"
	"testing"

	"github.com/halcyonix/typestorm/internal/model"
)

func TestEnemyFixedHeading(t *testing.T) {
	e := newEnemy("drift", 100, spawnY, PlayerX, PlayerY, 2.0, 1, KindRegular)
	dx1 := e.dirX
	dy1 := e.dirY
	for i := 0; i < 50; i++ {
		e.advance()
	}
	if e.dirX != dx1 || e.dirY != dy1 {
		t.Fatalf("heading changed in flight: (%v,%v) -> (%v,%v)", dx1, dy1, e.dirX, e.dirY)
	}
	norm := math.Hypot(e.dirX, e.dirY)
	if math.Abs(norm-1.0) > 1e-9 {
		t.Fatalf("heading not unit length: %v", norm)
	}
}

func TestEnemySpeedWithinClamps(t *testing.T) {
	words := []string{"at", "house", "sprawling", "overcompensating"}
	for level := 1; level <= MaxLevel; level += 11 {
		for _, w := range words {
			sp := enemySpeed(w, level)
			if sp < enemySpeedMin || sp > enemySpeedMax {
				t.Fatalf("enemySpeed(%q, %d) = %v outside [%v, %v]",
					w, level, sp, enemySpeedMin, enemySpeedMax)
			}
		}
	}
}

func TestEnemySpeedGrowsWithLevel(t *testing.T) {
	low := enemySpeed("keyboard", 1)
	high := enemySpeed("keyboard", 60)
	if high <= low {
		t.Fatalf("same word must speed up with level: %v -> %v", low, high)
	}
}

func TestBossSpeedWithinClamps(t *testing.T) {
	long := "synchronization-deadlock-contention-probe"
	for level := 5; level <= MaxLevel; level += 10 {
		for _, mode := range []model.Mode{model.ModeNormal, model.ModeProgramming} {
			sp := bossSpeed(long, level, mode)
			if sp < bossSpeedMin || sp > bossSpeedMax {
				t.Fatalf("bossSpeed(%d, %v) = %v outside [%v, %v]",
					level, mode, sp, bossSpeedMin, bossSpeedMax)
			}
		}
	}
}

func TestBossSlowerThanRegular(t *testing.T) {
	word := "practice-word-of-kind"
	for level := 5; level <= MaxLevel; level += 15 {
		if bossSpeed(word, level, model.ModeNormal) >= enemySpeed(word, level) {
			t.Fatalf("boss must be slower than a regular enemy with the same word at level %d", level)
		}
	}
}

func TestLongBossWordsMoveSlower(t *testing.T) {
	short := "deterministic-fuzzing-probe" // 27 runes
	long := "deterministic-fuzzing-probe-with-extra-chained-segments"
	if len([]rune(long)) <= bossLongWordLen {
		t.Fatalf("setup: long word must exceed %d runes", bossLongWordLen)
	}
	a := bossSpeed(short, 50, model.ModeNormal)
	b := bossSpeed(long, 50, model.ModeNormal)
	if b >= a && a > bossSpeedMin {
		t.Fatalf("long boss word must be slowed: short=%v long=%v", a, b)
	}
}

func TestEscapedBoundary(t *testing.T) {
	e := newEnemy("slip", 100, FieldHeight+escapeMargin, PlayerX, PlayerY, 0, 1, KindRegular)
	if e.escaped() {
		t.Fatalf("enemy at the escape margin has not escaped yet")
	}
	e.Y++
	if !e.escaped() {
		t.Fatalf("enemy past the escape margin must count as escaped")
	}
}

func TestOverlapScalesWithWordLength(t *testing.T) {
	near := PlayerX + playerBoxWidth/2 + 4*enemyCharWidth
	shortWord := newEnemy("ab", near, PlayerY, PlayerX, PlayerY, 0, 1, KindRegular)
	if shortWord.overlapsPlayer() {
		t.Fatalf("short word at offset %v must not overlap", near)
	}
	longWord := newEnemy("abcdefghijklmn", near, PlayerY, PlayerX, PlayerY, 0, 1, KindRegular)
	if !longWord.overlapsPlayer() {
		t.Fatalf("long word at the same offset must overlap")
	}
}

func TestTypedPrefixAccessors(t *testing.T) {
	e := newEnemy("prefix", 0, 0, PlayerX, PlayerY, 0, 1, KindRegular)
	e.Typed = 3
	if e.TypedPrefix() != "pre" || e.Remaining() != "fix" {
		t.Fatalf("prefix split wrong: %q / %q", e.TypedPrefix(), e.Remaining())
	}
	r, ok := e.NextRune()
	if !ok || r != 'f' {
		t.Fatalf("next rune: got %q ok=%v", r, ok)
	}
	e.Typed = 6
	if !e.Complete() {
		t.Fatalf("fully typed word must be complete")
	}
	if _, ok := e.NextRune(); ok {
		t.Fatalf("complete word has no next rune")
	}
}
