// Package words provides the word dictionaries the game draws from.
package words

import (
	"embed"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/halcyonix/typestorm/internal/model"
)

//go:embed data/*.txt
var dataFS embed.FS

// Boss levels are every 5th level in [5, 100].
const (
	bossLevelStep = 5
	maxLevel      = 100
)

// Source serves level-appropriate words and boss words for a mode/language pair.
type Source struct {
	words []string
	boss  []string
	rnd   *rand.Rand
}

// New loads the embedded dictionary for the mode/language pair.
// Extra words, if any, are merged into the pool (user overrides).
func New(mode model.Mode, lang string, extra []string) (*Source, error) {
	return NewWithRand(mode, lang, extra, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is New with an injected random source for deterministic tests.
func NewWithRand(mode model.Mode, lang string, extra []string, rnd *rand.Rand) (*Source, error) {
	pool, err := loadEmbedded(dictName(mode, lang))
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary %s/%s: %w", mode, lang, err)
	}
	var boss []string
	if mode == model.ModeProgramming {
		boss, err = loadEmbedded("boss-" + lang)
		if err != nil {
			return nil, fmt.Errorf("failed to load boss lines for %s: %w", lang, err)
		}
	}
	pool = append(pool, extra...)
	return &Source{words: pool, boss: boss, rnd: rnd}, nil
}

// IsBossLevel reports whether a boss is scheduled to spawn at the level.
func IsBossLevel(level int) bool {
	return level >= bossLevelStep && level <= maxLevel && level%bossLevelStep == 0
}

// Words returns the candidate pool for the level, pre-filtered by length.
// An empty result means "no spawn this cycle", never an error.
func (s *Source) Words(level int) []string {
	minLen, maxLen := lengthRange(level)
	out := make([]string, 0, len(s.words))
	for _, w := range s.words {
		n := len([]rune(w))
		if n >= minLen && n <= maxLen {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return s.words
	}
	return out
}

// Pick returns one word drawn uniformly from the level pool, or false when
// the pool is empty.
func (s *Source) Pick(level int) (string, bool) {
	pool := s.Words(level)
	if len(pool) == 0 {
		return "", false
	}
	return pool[s.rnd.Intn(len(pool))], true
}

// BossWord returns the word carried by the boss at the given level.
// Programming modes use a full code line; normal mode chains long words
// with hyphens so boss words stay far longer than the regular pool.
func (s *Source) BossWord(level int) (string, bool) {
	if len(s.boss) > 0 {
		return s.boss[s.rnd.Intn(len(s.boss))], true
	}
	long := s.longWords(6)
	if len(long) == 0 {
		return "", false
	}
	parts := 2 + level/25
	chained := make([]string, 0, parts)
	for i := 0; i < parts; i++ {
		chained = append(chained, long[s.rnd.Intn(len(long))])
	}
	return strings.Join(chained, "-"), true
}

// PoolSize returns the total dictionary size (before level filtering).
func (s *Source) PoolSize() int {
	return len(s.words)
}

// Dictionaries lists the embedded mode-language dictionary names.
func Dictionaries() ([]string, error) {
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded dictionaries: %w", err)
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") || strings.HasPrefix(name, "boss-") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Source) longWords(minLen int) []string {
	var out []string
	for _, w := range s.words {
		if len([]rune(w)) >= minLen {
			out = append(out, w)
		}
	}
	return out
}

// lengthRange maps a level to the word-length difficulty bucket.
// Short words early, longer words as the level climbs.
func lengthRange(level int) (int, int) {
	if level < 1 {
		level = 1
	}
	if level > maxLevel {
		level = maxLevel
	}
	minLen := 2 + level/20
	maxLen := 5 + level/8
	if maxLen > 16 {
		maxLen = 16
	}
	return minLen, maxLen
}

func dictName(mode model.Mode, lang string) string {
	return string(mode) + "-" + lang
}
