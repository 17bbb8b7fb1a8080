// Package rules holds the fingerspelling rule table: which codepoints are
// consonants, which dependent vowel signs pair with them, the special
// semi-consonant clusters, and which marks are silently absorbed.
package rules

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"

	"github.com/pathu11/fingerspell/internal/sign"
)

// Cluster is one special-cluster pattern. Suffix is the codepoint run that
// follows a base consonant, e.g. hal + ZWJ + ය for the yansaya.
type Cluster struct {
	Name   string `yaml:"name"`
	Suffix string `yaml:"suffix"`
}

// Config is the serializable form of a rule table. Rune categories are kept
// as plain strings so the YAML file stays readable in a Sinhala editor.
type Config struct {
	Consonants        string            `yaml:"consonants"`
	VowelSigns        map[string]string `yaml:"vowel_signs"` // dependent sign -> independent vowel
	IndependentVowels string            `yaml:"independent_vowels"`
	Marks             string            `yaml:"marks"` // standalone-signable marks
	Anusvara          string            `yaml:"anusvara"`
	HalMark           string            `yaml:"hal_mark"`
	Clusters          []Cluster         `yaml:"clusters"`
	Skip              string            `yaml:"skip"`
}

// Table answers the segmenter's lookup questions. It is immutable after New
// and safe for concurrent reads.
type Table struct {
	consonants   map[rune]bool
	vowelSigns   map[rune]rune
	independents map[rune]sign.Kind
	skip         map[rune]bool
	clusters     []Cluster
	clusterTrie  *trie.Trie
	maxSuffix    int
	hal          rune
	anusvara     rune
}

// New builds a Table from cfg. Construction fails when the rune categories
// overlap: a codepoint must belong to exactly one of consonants, vowel signs
// and skip marks, or the priority cascade becomes ambiguous.
func New(cfg Config) (*Table, error) {
	if cfg.HalMark == "" {
		return nil, fmt.Errorf("rule table: hal mark is required")
	}
	t := &Table{
		consonants:   make(map[rune]bool),
		vowelSigns:   make(map[rune]rune),
		independents: make(map[rune]sign.Kind),
		skip:         make(map[rune]bool),
		clusters:     cfg.Clusters,
		clusterTrie:  trie.New(),
		hal:          firstRune(cfg.HalMark),
		anusvara:     firstRune(cfg.Anusvara),
	}

	for _, r := range cfg.Consonants {
		t.consonants[r] = true
	}
	for depStr, indStr := range cfg.VowelSigns {
		dep := firstRune(depStr)
		if indStr == "" {
			return nil, fmt.Errorf("rule table: vowel sign %q maps to nothing", depStr)
		}
		t.vowelSigns[dep] = firstRune(indStr)
	}
	for _, r := range cfg.IndependentVowels {
		t.independents[r] = sign.KindVowel
	}
	for _, r := range cfg.Marks {
		t.independents[r] = sign.KindMark
	}
	for _, r := range cfg.Skip {
		t.skip[r] = true
	}

	for _, c := range cfg.Clusters {
		suffix := []rune(c.Suffix)
		if len(suffix) < 2 {
			return nil, fmt.Errorf("rule table: cluster %q suffix too short", c.Name)
		}
		if suffix[0] != t.hal {
			return nil, fmt.Errorf("rule table: cluster %q must start with the hal mark", c.Name)
		}
		t.clusterTrie.Add(c.Suffix, c)
		if len(suffix) > t.maxSuffix {
			t.maxSuffix = len(suffix)
		}
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate enforces the category-exclusivity invariant once at load time.
func (t *Table) validate() error {
	for r := range t.consonants {
		if _, ok := t.vowelSigns[r]; ok {
			return fmt.Errorf("rule table: %q is both consonant and vowel sign", string(r))
		}
		if t.skip[r] {
			return fmt.Errorf("rule table: %q is both consonant and skip mark", string(r))
		}
	}
	for r := range t.vowelSigns {
		if t.skip[r] {
			return fmt.Errorf("rule table: %q is both vowel sign and skip mark", string(r))
		}
	}
	if t.consonants[t.hal] {
		return fmt.Errorf("rule table: hal mark %q listed as consonant", string(t.hal))
	}
	if t.anusvara != 0 && t.consonants[t.anusvara] {
		return fmt.Errorf("rule table: anusvara %q listed as consonant", string(t.anusvara))
	}
	return nil
}

// IsConsonant reports whether r is a base consonant.
func (t *Table) IsConsonant(r rune) bool { return t.consonants[r] }

// VowelSign returns the independent vowel for a dependent vowel sign.
func (t *Table) VowelSign(r rune) (rune, bool) {
	ind, ok := t.vowelSigns[r]
	return ind, ok
}

// IsVowelSign reports whether r is a dependent vowel sign.
func (t *Table) IsVowelSign(r rune) bool {
	_, ok := t.vowelSigns[r]
	return ok
}

// Independent returns the standalone sign for r, if the table defines one.
func (t *Table) Independent(r rune) (sign.Sign, bool) {
	kind, ok := t.independents[r]
	if !ok {
		return sign.Sign{}, false
	}
	return sign.Sign{ID: string(r), Kind: kind}, true
}

// IsSkippable reports whether r is silently absorbed when nothing consumed it.
func (t *Table) IsSkippable(r rune) bool { return t.skip[r] }

// Hal returns the hal (virama) codepoint.
func (t *Table) Hal() rune { return t.hal }

// Anusvara returns the anusvara codepoint, or 0 when unconfigured.
func (t *Table) Anusvara() rune { return t.anusvara }

// MatchCluster tries the special-cluster patterns at position i of rs,
// longest suffix first. The returned length includes the base consonant.
func (t *Table) MatchCluster(rs []rune, i int) (Cluster, int, bool) {
	if i >= len(rs) || !t.consonants[rs[i]] {
		return Cluster{}, 0, false
	}
	rest := rs[i+1:]
	limit := t.maxSuffix
	if len(rest) < limit {
		limit = len(rest)
	}
	for k := limit; k >= 2; k-- {
		node, found := t.clusterTrie.Find(string(rest[:k]))
		if !found {
			continue
		}
		c, ok := node.Meta().(Cluster)
		if !ok {
			continue
		}
		return c, k + 1, true
	}
	return Cluster{}, 0, false
}

// Clusters returns the configured special-cluster patterns.
func (t *Table) Clusters() []Cluster { return t.clusters }

// Inventory lists every base sign this table can emit, sorted by identifier:
// independent vowels, standalone marks, and each consonant in bare and hal
// form. Composite pair and cluster signs are derived and not enumerated.
func (t *Table) Inventory() []sign.Sign {
	var inv []sign.Sign
	for r, kind := range t.independents {
		inv = append(inv, sign.Sign{ID: string(r), Kind: kind})
	}
	if t.anusvara != 0 {
		inv = append(inv, sign.Sign{ID: string(t.anusvara), Kind: sign.KindMark})
	}
	for r := range t.consonants {
		inv = append(inv, sign.Sign{ID: string(r), Kind: sign.KindConsonant})
		inv = append(inv, sign.Sign{ID: string(r) + string(t.hal), Kind: sign.KindConsonantHal})
	}
	sort.Slice(inv, func(i, j int) bool { return inv[i].ID < inv[j].ID })
	return inv
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
