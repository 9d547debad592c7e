package store

import (
	"context"
	"errors"

	"restaurant-listings-api/models"

	"gorm.io/gorm"
)

// Store mirrors the last successfully fetched restaurant list in a local
// sqlite table. It is a read-through cache, never the source of truth: the
// table is either empty or holds a complete snapshot.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ReplaceAll swaps the whole snapshot in one transaction so readers never
// observe a partial list.
func (s *Store) ReplaceAll(ctx context.Context, list []models.Restaurant) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Restaurant{}).Error; err != nil {
			return err
		}
		if len(list) == 0 {
			return nil
		}
		return tx.Create(&list).Error
	})
}

// All returns the current snapshot in id order. An empty slice means cache
// miss for callers.
func (s *Store) All(ctx context.Context) ([]models.Restaurant, error) {
	var list []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ByID returns a single cached record, or nil without error on a miss.
func (s *Store) ByID(ctx context.Context, id int) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.WithContext(ctx).First(&r, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// Count reports how many records the snapshot holds.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Restaurant{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// Clear empties the snapshot; the next read falls through to the upstream.
func (s *Store) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Restaurant{}).Error
}
