package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRecords(t *testing.T) {
	records := DefaultRecords()

	require.Len(t, records, 8)
	assert.Equal(t, "Animal Crossing: New Horizons", records[0].Title)
	assert.Equal(t, 5.0, records[0].Rating)
	assert.Equal(t, "Palia", records[7].Title)
}

func TestNew_DistinctValuesKeepFirstOccurrence(t *testing.T) {
	c, err := New(DefaultRecords())
	require.NoError(t, err)

	assert.Equal(t, []string{"Simulación", "RPG", "Aventura", "Shooter", "MMO"}, c.Genres())
	assert.Equal(t, []string{"Switch", "PC", "PS5"}, c.Platforms())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		records []GameRecord
		wantErr error
	}{
		{"empty title", []GameRecord{{ID: 1, Title: "  "}}, ErrEmptyTitle},
		{"duplicate id", []GameRecord{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}}, ErrDuplicateID},
		{"rating too high", []GameRecord{{ID: 1, Title: "a", Rating: 5.1}}, ErrRatingBounds},
		{"negative rating", []GameRecord{{ID: 1, Title: "a", Rating: -1}}, ErrRatingBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalog_IsIsolatedFromCallers(t *testing.T) {
	records := []GameRecord{{ID: 1, Title: "a", Genre: "RPG"}}
	c, err := New(records)
	require.NoError(t, err)

	records[0].Title = "changed"
	got := c.Records()
	got[0].Title = "changed too"
	genres := c.Genres()
	genres[0] = "changed"

	assert.Equal(t, "a", c.Records()[0].Title)
	assert.Equal(t, []string{"RPG"}, c.Genres())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "games.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
games:
  - id: 3
    title: Celeste
    genre: Plataformas
    platform: PC
    releaseYear: 2018
    rating: 4.9
`), 0o644))

	c, err := LoadFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	assert.Equal(t, GameRecord{ID: 3, Title: "Celeste", Genre: "Plataformas", Platform: "PC", ReleaseYear: 2018, Rating: 4.9}, c.Records()[0])

	jsonPath := filepath.Join(dir, "games.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"games":[{"id":1,"title":"Hades","genre":"Roguelike","platform":"Switch","releaseYear":2020,"rating":5}]}`), 0o644))

	c, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Roguelike"}, c.Genres())
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("games: [{id: 1, title: \"\"}]"), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}
