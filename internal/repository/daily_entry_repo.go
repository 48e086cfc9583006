package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/App-Genius/topline-platform/internal/models"
)

// DailyEntryRepository persists per-day revenue entries.
type DailyEntryRepository interface {
	Upsert(ctx context.Context, entry *models.DailyEntry) error
	ListInRange(ctx context.Context, from, to time.Time) ([]models.DailyEntry, error)
	SumRevenue(ctx context.Context, from, to time.Time) (float64, error)
}

type dailyEntryRepository struct {
	db *gorm.DB
}

// NewDailyEntryRepository constructs the daily entry repository.
func NewDailyEntryRepository(db *gorm.DB) DailyEntryRepository {
	return &dailyEntryRepository{db: db}
}

func (r *dailyEntryRepository) Upsert(ctx context.Context, entry *models.DailyEntry) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_revenue", "total_covers", "updated_at"}),
		}).
		Create(entry).Error
}

func (r *dailyEntryRepository) ListInRange(ctx context.Context, from, to time.Time) ([]models.DailyEntry, error) {
	var entries []models.DailyEntry
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *dailyEntryRepository) SumRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.DailyEntry{}).
		Where("date >= ? AND date <= ?", from, to).
		Select("COALESCE(SUM(total_revenue), 0)").
		Scan(&total).Error
	return total, err
}
