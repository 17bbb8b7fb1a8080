package videoindex

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathu11/fingerspell/internal/sign"
)

func TestResolve(t *testing.T) {
	ix := NewIndexFromMap(map[string]string{
		"අ":  "A001.MOV",
		"ක්": "K002.MOV",
	})

	ref, ok := ix.Resolve("අ")
	require.True(t, ok)
	assert.Equal(t, "අ", ref.Sign)
	assert.Equal(t, "A001.MOV", ref.Video)

	_, ok = ix.Resolve("ඵ")
	assert.False(t, ok)

	// resolution is stable across calls
	again, ok := ix.Resolve("අ")
	require.True(t, ok)
	assert.Equal(t, ref, again)

	assert.Equal(t, 2, ix.Size())
	assert.Equal(t, []string{"අ", "ක්"}, ix.Signs())
}

func TestLoadManifest(t *testing.T) {
	manifest := `{"sign": "අ", "video": "A001.MOV"}
{"sign": "ක", "video": "K001.MOV", "duration": 2.5}
not json at all
{"sign": "", "video": "X.MOV"}
{"sign": "ත", "video": ""}

{"sign": "10", "video": "N010.MOV"}
`
	path := filepath.Join(t.TempDir(), "manifest.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	ix, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, 3, ix.Size())
	_, ok := ix.Resolve("අ")
	assert.True(t, ok)
	_, ok = ix.Resolve("ත")
	assert.False(t, ok)
	assert.True(t, ix.HasNumber(10))
	assert.False(t, ix.HasNumber(100))
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	data := "V001,අ\nV002,ක්\nbroken\n,ත\n"
	path := filepath.Join(t.TempDir(), "mapping.csv")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	ix, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ix.Size())
	ref, ok := ix.Resolve("ක්")
	require.True(t, ok)
	assert.Equal(t, "V002.MOV", ref.Video)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE signs (sign TEXT, video TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO signs (sign, video) VALUES (?, ?), (?, ?), (?, ?)`,
		"අ", "A001.MOV", "ක", "K001.MOV", "", "ignored.MOV")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	ix, err := LoadSQLite(path)
	require.NoError(t, err)

	assert.Equal(t, 2, ix.Size())
	ref, ok := ix.Resolve("ක")
	require.True(t, ok)
	assert.Equal(t, "K001.MOV", ref.Video)
}

func TestBackendParity(t *testing.T) {
	catalog := map[string]string{
		"අ":  "A001.MOV",
		"ක්": "K002.MOV",
		"10": "N010.MOV",
	}
	dir := t.TempDir()

	var manifest string
	for s, v := range catalog {
		line, err := json.Marshal(Entry{Sign: s, Video: v})
		require.NoError(t, err)
		manifest += string(line) + "\n"
	}
	jsonlPath := filepath.Join(dir, "manifest.jsonl")
	require.NoError(t, os.WriteFile(jsonlPath, []byte(manifest), 0644))

	dbPath := filepath.Join(dir, "catalog.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE signs (sign TEXT, video TEXT)`)
	require.NoError(t, err)
	for s, v := range catalog {
		_, err = db.Exec(`INSERT INTO signs (sign, video) VALUES (?, ?)`, s, v)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	fromJSONL, err := LoadManifest(jsonlPath)
	require.NoError(t, err)
	fromSQLite, err := LoadSQLite(dbPath)
	require.NoError(t, err)

	assert.Equal(t, fromJSONL.Signs(), fromSQLite.Signs())
	for s := range catalog {
		a, aok := fromJSONL.Resolve(s)
		b, bok := fromSQLite.Resolve(s)
		assert.Equal(t, aok, bok)
		assert.Equal(t, a, b)
	}
}

func TestResolveAll(t *testing.T) {
	ix := NewIndexFromMap(map[string]string{
		"අ": "A001.MOV",
		"ක": "K001.MOV",
	})
	resolver := NewResolver(ix)

	signs := []sign.Sign{
		{ID: "අ", Kind: sign.KindVowel},
		{ID: "ඵ", Kind: sign.KindConsonant},
		{ID: "ක", Kind: sign.KindConsonant},
	}
	resolutions := resolver.ResolveAll(signs)
	require.Len(t, resolutions, 3)

	assert.True(t, resolutions[0].Found)
	assert.Equal(t, "A001.MOV", resolutions[0].Video)

	assert.False(t, resolutions[1].Found)
	assert.Empty(t, resolutions[1].Video)

	assert.True(t, resolutions[2].Found)

	// input order is preserved
	for i, res := range resolutions {
		assert.Equal(t, signs[i].ID, res.Sign.ID)
	}
}
