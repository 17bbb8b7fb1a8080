package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathu11/fingerspell/internal/rules"
	"github.com/pathu11/fingerspell/internal/sign"
)

func ids(signs []sign.Sign) []string {
	if len(signs) == 0 {
		return nil
	}
	out := make([]string, len(signs))
	for i, s := range signs {
		out[i] = s.ID
	}
	return out
}

func TestSegment(t *testing.T) {
	seg := New(rules.DefaultTable())

	tests := []struct {
		name  string
		input string
		want  []string
		flags int
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "single bare consonant",
			input: "ක",
			want:  []string{"ක"},
		},
		{
			name:  "consonant with vowel sign",
			input: "කා",
			want:  []string{"කා"},
		},
		{
			name:  "consonant with hal",
			input: "ක්",
			want:  []string{"ක්"},
		},
		{
			name:  "yansaya is one sign",
			input: "ක්‍ය",
			want:  []string{"ක්‍ය"},
		},
		{
			name:  "rakaransaya is one sign",
			input: "ක්‍ර",
			want:  []string{"ක්‍ර"},
		},
		{
			name:  "cluster then dangling vowel sign",
			input: "ක්‍යාත්",
			want:  []string{"ක්‍ය", "ආ", "ත්"},
		},
		{
			name:  "word with anusvara",
			input: "සිංහල",
			want:  []string{"සි", "ං", "හ", "ල"},
		},
		{
			name:  "unattached anusvara absorbed",
			input: "ං",
			want:  nil,
		},
		{
			name:  "independent vowel",
			input: "අ",
			want:  []string{"අ"},
		},
		{
			name:  "dangling vowel sign becomes independent vowel",
			input: "ා",
			want:  []string{"ආ"},
		},
		{
			name:  "stranded hal absorbed",
			input: "්",
			want:  nil,
		},
		{
			name:  "space separated words",
			input: "අම්මා තාත්තා",
			want:  []string{"අ", "ම්", "මා", "තා", "ත්", "තා"},
		},
		{
			name:  "punctuation flagged",
			input: "අ?ක",
			want:  []string{"අ", "ක"},
			flags: 1,
		},
		{
			name:  "latin text all flagged",
			input: "abc",
			want:  nil,
			flags: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := seg.Segment(tt.input)
			assert.Equal(t, tt.want, ids(res.Signs))
			assert.Len(t, res.Flags, tt.flags)
		})
	}
}

func TestSegmentKinds(t *testing.T) {
	seg := New(rules.DefaultTable())

	res := seg.Segment("ක්‍යාත්")
	require.Len(t, res.Signs, 3)
	assert.Equal(t, sign.KindCluster, res.Signs[0].Kind)
	assert.Equal(t, sign.KindVowel, res.Signs[1].Kind)
	assert.Equal(t, sign.KindConsonantHal, res.Signs[2].Kind)

	res = seg.Segment("කා")
	require.Len(t, res.Signs, 1)
	assert.Equal(t, sign.KindVowelPair, res.Signs[0].Kind)
}

func TestSegmentFlagPositions(t *testing.T) {
	seg := New(rules.DefaultTable())

	res := seg.Segment("අ?ක!")
	require.Len(t, res.Flags, 2)

	assert.Equal(t, 1, res.Flags[0].Pos)
	assert.Equal(t, "?", res.Flags[0].Rune)
	assert.Equal(t, sign.FlagUnrecognized, res.Flags[0].Reason)

	assert.Equal(t, 3, res.Flags[1].Pos)
	assert.Equal(t, "!", res.Flags[1].Rune)
}

func TestSegmentModifierIgnored(t *testing.T) {
	seg := New(rules.DefaultTable())

	// visarga has no pairing in the default table
	res := seg.Segment("කඃ")
	require.Len(t, res.Signs, 1)
	require.Len(t, res.Flags, 1)
	assert.Equal(t, sign.FlagModifierIgnored, res.Flags[0].Reason)
}

func TestSegmentOrderPreserved(t *testing.T) {
	seg := New(rules.DefaultTable())

	res := seg.Segment("අම්මා")
	assert.Equal(t, []string{"අ", "ම්", "මා"}, ids(res.Signs))
}
