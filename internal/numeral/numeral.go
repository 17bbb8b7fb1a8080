// Package numeral converts digit strings and whole numbers to
// fingerspelling signs. Digits never combine, so there is no priority
// logic: one digit, one sign.
package numeral

import (
	"math"
	"strconv"

	"github.com/pathu11/fingerspell/internal/sign"
)

// Sinhala digits ෦..෯ (U+0DE6..U+0DEF) normalize to their ASCII value.
const sinhalaZero = 0x0DE6

// digitValue returns the decimal value of an Arabic or Sinhala digit rune.
func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= sinhalaZero && r <= sinhalaZero+9:
		return int(r - sinhalaZero), true
	}
	return 0, false
}

// Result is the outcome of a digit conversion: one sign per valid digit in
// input order, plus a flag per non-digit rune. Conversion continues past
// invalid runes, so an n-digit input with no invalid characters always
// yields exactly n signs.
type Result struct {
	Signs []sign.Sign
	Flags []sign.Flag
}

// ConvertDigits maps every digit of s to its sign, left to right.
func ConvertDigits(s string) Result {
	var out Result
	for i, r := range []rune(s) {
		v, ok := digitValue(r)
		if !ok {
			out.Flags = append(out.Flags, sign.Flag{
				Pos:    i,
				Rune:   string(r),
				Reason: sign.FlagInvalidNumeral,
			})
			continue
		}
		out.Signs = append(out.Signs, sign.Sign{
			ID:   strconv.Itoa(v),
			Kind: sign.KindDigit,
		})
	}
	return out
}

// scales a whole number is broken along, largest first.
var scales = []uint64{100000, 10000, 1000, 100, 10}

// Decompose breaks n into the largest components that carry dedicated
// number signs, per the `has` predicate. A chunk with a signed value maps
// directly (234 -> 200 30 4 when those exist); a chunk whose scale is
// signed becomes multiplier digit + scale sign (2000 -> 2 1000); a chunk
// with neither switches the whole remainder to per-digit signs, zeros
// included, so no magnitude is lost. Numbers beyond the largest scale are
// fingerspelled digit by digit.
func Decompose(n uint64, has func(uint64) bool) []sign.Sign {
	if has(n) {
		return []sign.Sign{numberSign(n)}
	}
	if n >= scales[0]*10 {
		return digitSigns(n)
	}

	var out []sign.Sign
	rem := n
	for _, scale := range scales {
		if rem < scale {
			continue
		}
		d := rem / scale
		chunk := d * scale
		switch {
		case has(chunk):
			out = append(out, numberSign(chunk))
		case has(scale):
			out = append(out, digitSign(d), numberSign(scale))
		default:
			return append(out, digitSigns(rem)...)
		}
		rem -= chunk
	}
	if rem > 0 || n == 0 {
		if has(rem) {
			out = append(out, numberSign(rem))
		} else {
			out = append(out, digitSign(rem))
		}
	}
	return out
}

// digitSigns fingerspells n digit by digit.
func digitSigns(n uint64) []sign.Sign {
	s := strconv.FormatUint(n, 10)
	out := make([]sign.Sign, len(s))
	for i, r := range s {
		out[i] = sign.Sign{ID: string(r), Kind: sign.KindDigit}
	}
	return out
}

func digitSign(d uint64) sign.Sign {
	return sign.Sign{ID: strconv.FormatUint(d, 10), Kind: sign.KindDigit}
}

func numberSign(n uint64) sign.Sign {
	return sign.Sign{ID: strconv.FormatUint(n, 10), Kind: sign.KindNumber}
}

// ParseNumber parses a digit string (Arabic or Sinhala digits) into its
// numeric value. It reports the rune offset of the first non-digit, and
// refuses values that overflow uint64 the same way.
func ParseNumber(s string) (uint64, int, bool) {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0, 0, false
	}
	var n uint64
	for i, r := range rs {
		v, ok := digitValue(r)
		if !ok {
			return 0, i, false
		}
		if n > (math.MaxUint64-uint64(v))/10 {
			return 0, i, false
		}
		n = n*10 + uint64(v)
	}
	return n, -1, true
}
