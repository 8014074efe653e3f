package database

import (
	"context"
	"fmt"

	"pinkhub/backend/internal/catalog"
	"pinkhub/backend/internal/models"

	"gorm.io/gorm"
)

// ToRecord converts a stored game to a catalog record.
func ToRecord(g models.Game) catalog.GameRecord {
	return catalog.GameRecord{
		ID:          g.ID,
		Title:       g.Title,
		Genre:       g.Genre,
		Platform:    g.Platform,
		ReleaseYear: g.ReleaseYear,
		Rating:      g.Rating,
		Cover:       g.Cover,
	}
}

// Seed inserts records when the games table has never held a row, and
// reports how many were inserted. IDs are assigned by the database.
func Seed(ctx context.Context, db *gorm.DB, records []catalog.GameRecord) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Unscoped().Model(&models.Game{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}
	if count > 0 || len(records) == 0 {
		return 0, nil
	}

	games := make([]models.Game, len(records))
	for i, r := range records {
		games[i] = models.Game{
			Title:       r.Title,
			Genre:       r.Genre,
			Platform:    r.Platform,
			ReleaseYear: r.ReleaseYear,
			Rating:      r.Rating,
			Cover:       r.Cover,
		}
	}
	if err := db.WithContext(ctx).Create(&games).Error; err != nil {
		return 0, fmt.Errorf("seed games: %w", err)
	}
	return len(games), nil
}

// LoadCatalog snapshots the games table, ordered by id.
func LoadCatalog(ctx context.Context, db *gorm.DB) (*catalog.Catalog, error) {
	var games []models.Game
	if err := db.WithContext(ctx).Order("id ASC").Find(&games).Error; err != nil {
		return nil, fmt.Errorf("load games: %w", err)
	}

	records := make([]catalog.GameRecord, len(games))
	for i, g := range games {
		records[i] = ToRecord(g)
	}
	return catalog.New(records)
}
