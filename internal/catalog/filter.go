package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// AllGenres is the genre selection meaning "no genre filter".
	AllGenres = "Todos"
	// AllPlatforms is the platform selection meaning "no platform filter".
	AllPlatforms = "Todas"
)

var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey selects the ordering of a view.
type SortKey string

const (
	SortByTitle       SortKey = "title"
	SortByReleaseYear SortKey = "releaseYear"
	SortByRating      SortKey = "rating"
)

// ParseSortKey accepts only the three known keys.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByTitle, SortByReleaseYear, SortByRating:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

// FilterState is the user-editable input of the filter engine.
type FilterState struct {
	SearchTerm       string  `json:"searchTerm"`
	SelectedGenre    string  `json:"selectedGenre"`
	SelectedPlatform string  `json:"selectedPlatform"`
	SortKey          SortKey `json:"sortKey"`
}

// DefaultFilter returns the state a new session starts with.
func DefaultFilter() FilterState {
	return FilterState{
		SelectedGenre:    AllGenres,
		SelectedPlatform: AllPlatforms,
		SortKey:          SortByRating,
	}
}

// Engine evaluates filter states against a catalog. Titles are ordered with
// the collation rules of the engine's locale.
type Engine struct {
	catalog *Catalog
	locale  language.Tag
}

// NewEngine returns an engine for c. An empty or unparsable locale falls back
// to language.Und (root collation).
func NewEngine(c *Catalog, locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &Engine{catalog: c, locale: tag}
}

// Catalog returns the catalog the engine reads from.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// View returns the filtered and sorted games for f. The catalog is never
// modified; ties keep catalog order.
func (e *Engine) View(f FilterState) []GameRecord {
	games := make([]GameRecord, 0, len(e.catalog.records))
	term := strings.ToLower(f.SearchTerm)
	for _, g := range e.catalog.records {
		if term != "" && !strings.Contains(strings.ToLower(g.Title), term) {
			continue
		}
		if f.SelectedGenre != AllGenres && g.Genre != f.SelectedGenre {
			continue
		}
		if f.SelectedPlatform != AllPlatforms && g.Platform != f.SelectedPlatform {
			continue
		}
		games = append(games, g)
	}

	switch f.SortKey {
	case SortByTitle:
		// collate.Collator is not safe for concurrent use.
		col := collate.New(e.locale)
		slices.SortStableFunc(games, func(a, b GameRecord) int {
			return col.CompareString(a.Title, b.Title)
		})
	case SortByReleaseYear:
		slices.SortStableFunc(games, func(a, b GameRecord) int {
			return cmp.Compare(b.ReleaseYear, a.ReleaseYear)
		})
	case SortByRating:
		slices.SortStableFunc(games, func(a, b GameRecord) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}
	return games
}
