package numeral

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestConvertDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		flags int
	}{
		{
			name:  "ascii digits",
			input: "2024",
			want:  []string{"2", "0", "2", "4"},
		},
		{
			name:  "sinhala digits normalize",
			input: "෧෨෩",
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "mixed scripts",
			input: "1෨3",
			want:  []string{"1", "2", "3"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "non-digit flagged, conversion continues",
			input: "12x4",
			want:  []string{"1", "2", "4"},
			flags: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ConvertDigits(tt.input)
			assert.Equal(t, tt.want, ids(res.Signs))
			assert.Len(t, res.Flags, tt.flags)
			for _, s := range res.Signs {
				assert.Equal(t, sign.KindDigit, s.Kind)
			}
		})
	}
}

func TestConvertDigitsFlagPosition(t *testing.T) {
	res := ConvertDigits("12x4")
	require.Len(t, res.Flags, 1)
	assert.Equal(t, 2, res.Flags[0].Pos)
	assert.Equal(t, "x", res.Flags[0].Rune)
	assert.Equal(t, sign.FlagInvalidNumeral, res.Flags[0].Reason)
}

func TestParseNumber(t *testing.T) {
	n, _, ok := ParseNumber("125000")
	require.True(t, ok)
	assert.Equal(t, uint64(125000), n)

	n, _, ok = ParseNumber("෧෦")
	require.True(t, ok)
	assert.Equal(t, uint64(10), n)

	_, pos, ok := ParseNumber("12a4")
	assert.False(t, ok)
	assert.Equal(t, 2, pos)

	_, _, ok = ParseNumber("")
	assert.False(t, ok)
}

func TestParseNumberOverflow(t *testing.T) {
	n, _, ok := ParseNumber("18446744073709551615")
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), n)

	_, _, ok = ParseNumber("18446744073709551616")
	assert.False(t, ok)

	_, _, ok = ParseNumber("99999999999999999999999")
	assert.False(t, ok)
}

func TestDecompose(t *testing.T) {
	has := func(values ...uint64) func(uint64) bool {
		set := make(map[uint64]bool, len(values))
		for _, v := range values {
			set[v] = true
		}
		return func(n uint64) bool { return set[n] }
	}

	tests := []struct {
		name string
		n    uint64
		has  func(uint64) bool
		want []string
	}{
		{
			name: "direct sign wins",
			n:    25,
			has:  has(25),
			want: []string{"25"},
		},
		{
			name: "scale signs with multipliers",
			n:    2345,
			has:  has(1000, 100, 10),
			want: []string{"2", "1000", "3", "100", "4", "10", "5"},
		},
		{
			name: "signed chunk used whole",
			n:    234,
			has:  has(200, 30),
			want: []string{"200", "30", "4"},
		},
		{
			name: "lakh sign",
			n:    125000,
			has:  has(100000, 10000, 1000),
			want: []string{"100000", "2", "10000", "5", "1000"},
		},
		{
			name: "no signed components falls back to digits",
			n:    42,
			has:  has(),
			want: []string{"4", "2"},
		},
		{
			name: "unmapped scale keeps trailing zeros",
			n:    2000,
			has:  has(),
			want: []string{"2", "0", "0", "0"},
		},
		{
			name: "unmapped scale keeps interior zeros",
			n:    204,
			has:  has(),
			want: []string{"2", "0", "4"},
		},
		{
			name: "signed prefix then unmapped remainder",
			n:    2345,
			has:  has(1000),
			want: []string{"2", "1000", "3", "4", "5"},
		},
		{
			name: "beyond largest scale spelled per digit",
			n:    2000000,
			has:  has(100000, 1000),
			want: []string{"2", "0", "0", "0", "0", "0", "0"},
		},
		{
			name: "zero",
			n:    0,
			has:  has(),
			want: []string{"0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Decompose(tt.n, tt.has)))
		})
	}
}

// resum reassembles a decomposition: a digit directly before a number sign
// is its multiplier, everything else adds its own value.
func resum(t *testing.T, signs []sign.Sign) uint64 {
	t.Helper()
	var total uint64
	for i := 0; i < len(signs); i++ {
		v, err := strconv.ParseUint(signs[i].ID, 10, 64)
		require.NoError(t, err)
		if signs[i].Kind == sign.KindDigit && i+1 < len(signs) && signs[i+1].Kind == sign.KindNumber {
			scale, err := strconv.ParseUint(signs[i+1].ID, 10, 64)
			require.NoError(t, err)
			total += v * scale
			i++
			continue
		}
		total += v
	}
	return total
}

func TestDecomposeResums(t *testing.T) {
	signed := map[uint64]bool{
		10: true, 100: true, 1000: true, 10000: true, 100000: true,
		20: true, 200: true, 2000: true,
	}
	has := func(n uint64) bool { return signed[n] }

	for _, n := range []uint64{7, 42, 234, 2024, 54321, 123456, 999999} {
		assert.Equal(t, n, resum(t, Decompose(n, has)), "n=%d", n)
	}
}
