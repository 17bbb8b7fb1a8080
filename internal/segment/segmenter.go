// Package segment turns Sinhala text into an ordered fingerspelling sign
// sequence using greedy longest-match with a fixed priority cascade.
package segment

import (
	"github.com/pathu11/fingerspell/internal/rules"
	"github.com/pathu11/fingerspell/internal/sign"
)

// Segmenter walks input codepoint by codepoint, left to right, single pass,
// no backtracking. It holds only read-only rule state and is safe for
// concurrent use.
type Segmenter struct {
	table *rules.Table
}

// New creates a segmenter over the given rule table.
func New(table *rules.Table) *Segmenter {
	return &Segmenter{table: table}
}

// Result is one segmentation outcome. Signs preserve input order; Flags
// record positions that produced no sign, as rune offsets into the input.
type Result struct {
	Signs []sign.Sign
	Flags []sign.Flag
}

// match is the outcome of one priority rule at the cursor: the emitted sign
// (if any) and how many runes it consumed.
type match struct {
	sig      sign.Sign
	emit     bool
	consumed int
}

// Segment converts text into a sign sequence. It is total: any Unicode
// string terminates with a result, the empty string yielding an empty one.
func (s *Segmenter) Segment(text string) Result {
	rs := []rune(text)
	var out Result

	// True while the previous emitted sign carries a letter the anusvara can
	// attach to. An unattached anusvara is absorbed, never an error.
	prevLetter := false

	for i := 0; i < len(rs); {
		if m, ok := s.matchCluster(rs, i); ok {
			out.Signs = append(out.Signs, m.sig)
			i += m.consumed
			prevLetter = true
			continue
		}
		if m, ok := s.matchConsonant(rs, i); ok {
			out.Signs = append(out.Signs, m.sig)
			i += m.consumed
			prevLetter = true
			continue
		}
		if m, ok := s.matchAnusvara(rs, i, prevLetter); ok {
			if m.emit {
				out.Signs = append(out.Signs, m.sig)
			}
			i += m.consumed
			prevLetter = false
			continue
		}
		if s.table.IsSkippable(rs[i]) {
			i++
			prevLetter = false
			continue
		}
		if m, ok := s.matchIndependent(rs, i); ok {
			out.Signs = append(out.Signs, m.sig)
			i += m.consumed
			prevLetter = true
			continue
		}

		out.Flags = append(out.Flags, sign.Flag{
			Pos:    i,
			Rune:   string(rs[i]),
			Reason: flagReason(rs[i]),
		})
		i++
		prevLetter = false
	}
	return out
}

// matchCluster has top priority: a special cluster always spans more
// codepoints than any simpler rule and must not be split.
func (s *Segmenter) matchCluster(rs []rune, i int) (match, bool) {
	_, length, ok := s.table.MatchCluster(rs, i)
	if !ok {
		return match{}, false
	}
	return match{
		sig:      sign.Sign{ID: string(rs[i : i+length]), Kind: sign.KindCluster},
		emit:     true,
		consumed: length,
	}, true
}

// matchConsonant covers priorities 2 and 3 plus the bare-consonant fallback:
// consonant + defined vowel sign as one composite pair, consonant + hal as
// the hal form, anything else as the bare consonant alone.
func (s *Segmenter) matchConsonant(rs []rune, i int) (match, bool) {
	if !s.table.IsConsonant(rs[i]) {
		return match{}, false
	}
	if i+1 < len(rs) {
		if _, ok := s.table.VowelSign(rs[i+1]); ok {
			return match{
				sig:      sign.Sign{ID: string(rs[i : i+2]), Kind: sign.KindVowelPair},
				emit:     true,
				consumed: 2,
			}, true
		}
		if rs[i+1] == s.table.Hal() {
			return match{
				sig:      sign.Sign{ID: string(rs[i : i+2]), Kind: sign.KindConsonantHal},
				emit:     true,
				consumed: 2,
			}, true
		}
	}
	return match{
		sig:      sign.Sign{ID: string(rs[i]), Kind: sign.KindConsonant},
		emit:     true,
		consumed: 1,
	}, true
}

// matchAnusvara emits the anusvara sign when it follows an emitted letter
// and silently absorbs it otherwise.
func (s *Segmenter) matchAnusvara(rs []rune, i int, prevLetter bool) (match, bool) {
	anusvara := s.table.Anusvara()
	if anusvara == 0 || rs[i] != anusvara {
		return match{}, false
	}
	if !prevLetter {
		return match{consumed: 1}, true
	}
	return match{
		sig:      sign.Sign{ID: string(anusvara), Kind: sign.KindMark},
		emit:     true,
		consumed: 1,
	}, true
}

// matchIndependent is the single-character fallback: independent vowels and
// standalone-signable marks, plus a dangling dependent vowel sign rendered
// as its independent vowel.
func (s *Segmenter) matchIndependent(rs []rune, i int) (match, bool) {
	if sig, ok := s.table.Independent(rs[i]); ok {
		return match{sig: sig, emit: true, consumed: 1}, true
	}
	if ind, ok := s.table.VowelSign(rs[i]); ok {
		return match{
			sig:      sign.Sign{ID: string(ind), Kind: sign.KindVowel},
			emit:     true,
			consumed: 1,
		}, true
	}
	return match{}, false
}

// flagReason distinguishes a dangling combining mark the table has no
// pairing for from a codepoint the script rules know nothing about.
func flagReason(r rune) sign.FlagReason {
	if isCombiningMark(r) {
		return sign.FlagModifierIgnored
	}
	return sign.FlagUnrecognized
}

// isCombiningMark reports whether r sits in the dependent-sign area of the
// Sinhala block.
func isCombiningMark(r rune) bool {
	switch {
	case r >= 0x0DCA && r <= 0x0DDF:
		return true
	case r == 0x0DF2 || r == 0x0DF3:
		return true
	case r == 0x0D81 || r == 0x0D83:
		return true
	}
	return false
}
