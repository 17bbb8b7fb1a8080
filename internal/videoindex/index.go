// Package videoindex maps sign identifiers to recorded video clips and
// resolves sign sequences against that mapping.
package videoindex

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// VideoReference points at one recorded clip for a sign.
type VideoReference struct {
	Sign  string `json:"sign"`
	Video string `json:"video"`
}

// Entry is one line of a JSONL video manifest.
type Entry struct {
	Sign     string  `json:"sign"`
	Video    string  `json:"video"`
	Duration float64 `json:"duration,omitempty"`
}

// Index is the loaded sign-to-video mapping. It is populated once at
// startup and read-only afterwards, so lookups need no locking.
type Index struct {
	videos map[string]string
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{videos: make(map[string]string)}
}

// NewIndexFromMap builds an index from an in-memory mapping (fixtures).
func NewIndexFromMap(videos map[string]string) *Index {
	ix := NewIndex()
	for s, v := range videos {
		ix.videos[s] = v
	}
	return ix
}

// LoadManifest reads a JSONL manifest file, one entry per line. Malformed
// lines are skipped.
func LoadManifest(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest file: %w", err)
	}
	defer file.Close()

	ix := NewIndex()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Sign == "" || entry.Video == "" {
			continue
		}
		ix.videos[entry.Sign] = entry.Video
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading manifest file: %w", err)
	}
	return ix, nil
}

// LoadCSV reads the legacy two-column mapping format: video id, sign.
// The video reference becomes "<video id>.MOV" as recorded.
func LoadCSV(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing mapping file: %w", err)
	}

	ix := NewIndex()
	for _, rec := range records {
		if len(rec) < 2 || rec[0] == "" || rec[1] == "" {
			continue
		}
		ix.videos[rec[1]] = rec[0] + ".MOV"
	}
	return ix, nil
}

// Resolve returns the video reference for a sign identifier. Missing is a
// normal outcome. Resolution is deterministic for the index lifetime.
func (ix *Index) Resolve(id string) (VideoReference, bool) {
	video, ok := ix.videos[id]
	if !ok {
		return VideoReference{}, false
	}
	return VideoReference{Sign: id, Video: video}, true
}

// Signs returns all mapped sign identifiers, sorted.
func (ix *Index) Signs() []string {
	out := make([]string, 0, len(ix.videos))
	for s := range ix.videos {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Size returns the number of mapped signs.
func (ix *Index) Size() int { return len(ix.videos) }

// HasNumber reports whether a whole number has a dedicated sign video,
// keyed by its decimal string.
func (ix *Index) HasNumber(n uint64) bool {
	_, ok := ix.videos[fmt.Sprintf("%d", n)]
	return ok
}
