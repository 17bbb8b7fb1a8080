// Package sign provides the core types for Sinhala fingerspelling conversion.
package sign

// Kind classifies a fingerspelling sign. The set is closed: the segmenter
// only ever emits these variants, and the resolver can rely on that.
type Kind string

const (
	KindVowel        Kind = "vowel"         // independent vowel (අ, ආ, ...)
	KindConsonant    Kind = "consonant"     // bare consonant with inherent vowel (ක, ...)
	KindConsonantHal Kind = "consonant_hal" // consonant + hal mark (ක්, ...)
	KindVowelPair    Kind = "vowel_pair"    // consonant + dependent vowel sign (කා, ...)
	KindCluster      Kind = "cluster"       // consonant + semi-consonant cluster (ක්‍ය, ක්‍ර)
	KindMark         Kind = "mark"          // signable mark (ං, ෟ)
	KindDigit        Kind = "digit"         // single decimal digit 0-9
	KindNumber       Kind = "number"        // whole number with a dedicated sign (10, 100, ...)
)

// Sign is one addressable fingerspelling unit. ID is the identifier the video
// index is keyed by: for script signs the matched codepoint run, for numeric
// signs the decimal string.
type Sign struct {
	ID   string `json:"id" yaml:"id"`
	Kind Kind   `json:"kind" yaml:"kind"`
}

// FlagReason says why a position in the input could not become a sign.
type FlagReason string

const (
	FlagUnrecognized    FlagReason = "unrecognized"     // codepoint matches no rule
	FlagInvalidNumeral  FlagReason = "invalid_numeral"  // non-digit in numeral input
	FlagModifierIgnored FlagReason = "modifier_ignored" // dangling vowel sign with no pairing
)

// Flag records one skipped input position. Pos is a rune offset into the
// original input. Flags are informational: they never abort a conversion.
type Flag struct {
	Pos    int        `json:"pos"`
	Rune   string     `json:"rune"`
	Reason FlagReason `json:"reason"`
}

// Resolution is the outcome of looking one sign up in the video index.
// A missing video is an expected outcome, not an error.
type Resolution struct {
	Sign  Sign   `json:"sign"`
	Video string `json:"video,omitempty"` // reference (file or URL); empty when not found
	Found bool   `json:"found"`
}

// Summary holds the per-conversion counts surfaced to callers.
type Summary struct {
	Signs         int `json:"signs"`
	VideosFound   int `json:"videos_found"`
	VideosMissing int `json:"videos_missing"`
}

// ConversionResult is the complete outcome of converting one input.
// It is built fresh per request and never mutated afterwards.
type ConversionResult struct {
	Input       string       `json:"input"`
	Signs       []Sign       `json:"signs"`
	Resolutions []Resolution `json:"resolutions"`
	Flags       []Flag       `json:"flags,omitempty"`
	Summary     Summary      `json:"summary"`
}

// IDs returns the sign identifiers in emission order.
func (r ConversionResult) IDs() []string {
	ids := make([]string, len(r.Signs))
	for i, s := range r.Signs {
		ids[i] = s.ID
	}
	return ids
}

// Summarize recomputes the summary counts from the resolutions.
func Summarize(resolutions []Resolution) Summary {
	sum := Summary{Signs: len(resolutions)}
	for _, res := range resolutions {
		if res.Found {
			sum.VideosFound++
		} else {
			sum.VideosMissing++
		}
	}
	return sum
}
