package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tcwang/elemental-cards/internal/card"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetCards() ([]card.Card, error) {
	var rows []CardRecord
	if err := r.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	cards := make([]card.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.toCard()
	}
	return cards, nil
}

func (r *sqliteRepository) GetCardByName(name string) (*card.Card, error) {
	var row CardRecord
	err := r.db.Where("name = ?", name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("card %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	c := row.toCard()
	return &c, nil
}

func (r *sqliteRepository) UpsertCard(c card.Card) (bool, error) {
	var existing CardRecord
	err := r.db.Where("name = ?", c.Name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row := recordFromCard(c)
		if createErr := r.db.Create(&row).Error; createErr != nil {
			return false, createErr
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}
	// Same name means the same logical card: overwrite stats in place
	// so the row keeps its ID and with it its collection position.
	updates := recordFromCard(c)
	updates.Model = existing.Model
	if saveErr := r.db.Save(&updates).Error; saveErr != nil {
		return false, saveErr
	}
	return false, nil
}

func (r *sqliteRepository) DeleteCardByName(name string) (bool, error) {
	// Hard delete: a soft-deleted row would keep holding the unique
	// name and block re-creating a card under it.
	res := r.db.Unscoped().Where("name = ?", name).Delete(&CardRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *sqliteRepository) CountCards() (int64, error) {
	var count int64
	if err := r.db.Model(&CardRecord{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *sqliteRepository) TopCardsByScore(limit int) ([]card.Card, error) {
	var rows []CardRecord
	if err := r.db.Order("score desc, id asc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	cards := make([]card.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.toCard()
	}
	return cards, nil
}

func (r *sqliteRepository) SaveDuel(rec *DuelRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetDuels(limit int) ([]DuelRecord, error) {
	var duels []DuelRecord
	if err := r.db.Order("id desc").Limit(limit).Find(&duels).Error; err != nil {
		return nil, err
	}
	return duels, nil
}

func (r *sqliteRepository) GetDuelByID(duelID string) (*DuelRecord, error) {
	var rec DuelRecord
	err := r.db.Where("duel_id = ?", duelID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("duel %q: %w", duelID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
