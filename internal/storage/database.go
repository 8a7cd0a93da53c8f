package storage

import (
	"github.com/tcwang/elemental-cards/internal/card"
	"github.com/tcwang/elemental-cards/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens (or creates) the SQLite database at
// dataSourceName and keeps the schema current via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&CardRecord{}, &DuelRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}

// SeedCards upserts the configured starter cards at startup. A seed
// failure is logged but does not abort startup; the server is still
// usable with whatever was already in the collection.
func SeedCards(repo Repository, seeds []card.Card) {
	for _, c := range seeds {
		created, err := repo.UpsertCard(c)
		if err != nil {
			logging.Error("failed to seed card", err, logging.Fields{"name": c.Name})
			continue
		}
		if created {
			logging.Info("seed card created", logging.Fields{"name": c.Name, "element": string(c.Element)})
		}
	}
}
