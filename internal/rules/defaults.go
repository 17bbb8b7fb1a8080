package rules

// Assigned consonant ranges of the Sinhala block (ක U+0D9A through ෆ U+0DC6,
// skipping the unassigned codepoints inside the block).
var defaultConsonantRanges = [][2]rune{
	{0x0D9A, 0x0DB1}, // ක..න
	{0x0DB3, 0x0DBB}, // ද..ර
	{0x0DBD, 0x0DBD}, // ල
	{0x0DC0, 0x0DC6}, // ව..ෆ
}

// Defaults returns the built-in rule table configuration matching the
// recorded sign inventory.
func Defaults() Config {
	var consonants []rune
	for _, rng := range defaultConsonantRanges {
		for r := rng[0]; r <= rng[1]; r++ {
			consonants = append(consonants, r)
		}
	}

	return Config{
		Consonants: string(consonants),
		VowelSigns: map[string]string{
			"ා": "ආ",
			"ැ": "ඇ",
			"ෑ": "ඈ",
			"ි": "ඉ",
			"ී": "ඊ",
			"ු": "උ",
			"ූ": "ඌ",
			"ෙ": "එ",
			"ේ": "ඒ",
			"ෛ": "ඓ",
			"ො": "ඔ",
			"ෝ": "ඕ",
			"ෞ": "ඖ",
		},
		IndependentVowels: "අආඇඈඉඊඋඌඑඒඔඕඓඖඍ",
		Marks:             "ෟ",
		Anusvara:          "ං",
		HalMark:           "්",
		Clusters: []Cluster{
			{Name: "yansaya", Suffix: "්‍ය"},     // hal + ZWJ + ය
			{Name: "rakaransaya", Suffix: "්‍ර"}, // hal + ZWJ + ර
		},
		// ZWJ, ZWSP, BOM, NBSP and space carry no sign of their own; a
		// stranded hal mark is absorbed the same way.
		Skip: "\u200d\u200b\ufeff\u00a0 \u0dca",
	}
}

// DefaultTable builds the built-in rule table. The defaults are known
// consistent, so failure here means the defaults themselves were broken.
func DefaultTable() *Table {
	t, err := New(Defaults())
	if err != nil {
		panic("rules: invalid built-in defaults: " + err.Error())
	}
	return t
}
