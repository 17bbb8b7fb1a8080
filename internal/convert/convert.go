// Package convert wires the segmenter, numeral converter and video
// resolver into the conversion entry points the CLI and server consume.
package convert

import (
	"github.com/pathu11/fingerspell/internal/numeral"
	"github.com/pathu11/fingerspell/internal/rules"
	"github.com/pathu11/fingerspell/internal/segment"
	"github.com/pathu11/fingerspell/internal/sign"
	"github.com/pathu11/fingerspell/internal/videoindex"
)

// Converter is the full pipeline: text -> signs -> video resolutions.
// All of its state is read-only after construction, so one Converter
// serves concurrent requests without coordination.
type Converter struct {
	table    *rules.Table
	seg      *segment.Segmenter
	index    *videoindex.Index
	resolver *videoindex.Resolver
}

// New builds a converter over a rule table and a loaded video index.
func New(table *rules.Table, index *videoindex.Index) *Converter {
	return &Converter{
		table:    table,
		seg:      segment.New(table),
		index:    index,
		resolver: videoindex.NewResolver(index),
	}
}

// Table returns the rule table the converter was built with.
func (c *Converter) Table() *rules.Table { return c.table }

// Index returns the video index the converter was built with.
func (c *Converter) Index() *videoindex.Index { return c.index }

// ConvertWord segments Sinhala text and resolves each sign to its video.
// Per-character findings are collected in the result, never raised.
func (c *Converter) ConvertWord(text string) sign.ConversionResult {
	seg := c.seg.Segment(text)
	return c.finish(text, seg.Signs, seg.Flags)
}

// ConvertNumber fingerspells a digit string, one sign per digit. Non-digit
// runes are flagged at their offset and conversion continues.
func (c *Converter) ConvertNumber(digits string) sign.ConversionResult {
	res := numeral.ConvertDigits(digits)
	return c.finish(digits, res.Signs, res.Flags)
}

// ConvertNumberComposite converts a whole number using the largest
// components with dedicated sign videos, falling back to digit signs.
// Input that does not parse as a number degrades to per-digit conversion.
func (c *Converter) ConvertNumberComposite(digits string) sign.ConversionResult {
	n, _, ok := numeral.ParseNumber(digits)
	if !ok {
		return c.ConvertNumber(digits)
	}
	signs := numeral.Decompose(n, c.index.HasNumber)
	return c.finish(digits, signs, nil)
}

// ConvertBatch converts each input independently; one input's flags or
// missing videos never affect the others.
func (c *Converter) ConvertBatch(inputs []string) []sign.ConversionResult {
	out := make([]sign.ConversionResult, len(inputs))
	for i, in := range inputs {
		out[i] = c.ConvertWord(in)
	}
	return out
}

func (c *Converter) finish(input string, signs []sign.Sign, flags []sign.Flag) sign.ConversionResult {
	resolutions := c.resolver.ResolveAll(signs)
	return sign.ConversionResult{
		Input:       input,
		Signs:       signs,
		Resolutions: resolutions,
		Flags:       flags,
		Summary:     sign.Summarize(resolutions),
	}
}

// Statistics reports inventory coverage of the loaded video index.
type Statistics struct {
	InventorySigns int      `json:"inventory_signs"`
	MappedVideos   int      `json:"mapped_videos"`
	Covered        int      `json:"covered"`
	MissingSigns   []string `json:"missing_signs,omitempty"`
}

// Statistics compares the rule table's base inventory against the index.
func (c *Converter) Statistics() Statistics {
	stats := Statistics{MappedVideos: c.index.Size()}
	for _, s := range c.table.Inventory() {
		stats.InventorySigns++
		if _, ok := c.index.Resolve(s.ID); ok {
			stats.Covered++
		} else {
			stats.MissingSigns = append(stats.MissingSigns, s.ID)
		}
	}
	return stats
}
