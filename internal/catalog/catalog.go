package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrEmptyTitle   = errors.New("game title must not be empty")
	ErrDuplicateID  = errors.New("duplicate game id")
	ErrRatingBounds = errors.New("game rating must be between 0 and 5")
)

// GameRecord is a single entry of the catalog.
type GameRecord struct {
	ID          uint    `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Genre       string  `json:"genre" yaml:"genre"`
	Platform    string  `json:"platform" yaml:"platform"`
	ReleaseYear int     `json:"releaseYear" yaml:"releaseYear"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Cover       string  `json:"cover" yaml:"cover"`
}

// Catalog is an immutable, ordered sequence of games. Distinct genres and
// platforms are computed once on construction.
type Catalog struct {
	records   []GameRecord
	genres    []string
	platforms []string
}

// New validates records and builds a catalog that owns a private copy of them.
func New(records []GameRecord) (*Catalog, error) {
	seen := make(map[uint]struct{}, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyTitle)
		}
		if _, ok := seen[r.ID]; ok {
			return nil, fmt.Errorf("record %d (id %d): %w", i, r.ID, ErrDuplicateID)
		}
		seen[r.ID] = struct{}{}
		if r.Rating < 0 || r.Rating > 5 {
			return nil, fmt.Errorf("record %d (%s): %w", i, r.Title, ErrRatingBounds)
		}
	}

	owned := slices.Clone(records)
	return &Catalog{
		records:   owned,
		genres:    distinct(owned, func(r GameRecord) string { return r.Genre }),
		platforms: distinct(owned, func(r GameRecord) string { return r.Platform }),
	}, nil
}

// Len returns the number of games in the catalog.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of the catalog in its original order.
func (c *Catalog) Records() []GameRecord { return slices.Clone(c.records) }

// Genres returns the distinct genres in first-occurrence order.
func (c *Catalog) Genres() []string { return slices.Clone(c.genres) }

// Platforms returns the distinct platforms in first-occurrence order.
func (c *Catalog) Platforms() []string { return slices.Clone(c.platforms) }

func distinct(records []GameRecord, key func(GameRecord) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
