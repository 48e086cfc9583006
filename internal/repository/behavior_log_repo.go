package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/App-Genius/topline-platform/internal/models"
)

// BehaviorLogFilter narrows behavior log queries.
type BehaviorLogFilter struct {
	Page     int
	PageSize int
	ActorID  *uint
	Verified *bool
	From     *time.Time
	To       *time.Time
}

// BehaviorLogRepository persists behavior log occurrences.
type BehaviorLogRepository interface {
	Create(ctx context.Context, log *models.BehaviorLog) error
	GetByID(ctx context.Context, id uint) (models.BehaviorLog, error)
	Update(ctx context.Context, log *models.BehaviorLog) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter BehaviorLogFilter) ([]models.BehaviorLog, int64, error)
	ListInRange(ctx context.Context, from, to time.Time) ([]models.BehaviorLog, error)
}

type behaviorLogRepository struct {
	db *gorm.DB
}

// NewBehaviorLogRepository constructs the behavior log repository.
func NewBehaviorLogRepository(db *gorm.DB) BehaviorLogRepository {
	return &behaviorLogRepository{db: db}
}

func (r *behaviorLogRepository) Create(ctx context.Context, log *models.BehaviorLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *behaviorLogRepository) GetByID(ctx context.Context, id uint) (models.BehaviorLog, error) {
	var log models.BehaviorLog
	err := r.db.WithContext(ctx).Preload("Actor").First(&log, id).Error
	return log, err
}

func (r *behaviorLogRepository) Update(ctx context.Context, log *models.BehaviorLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *behaviorLogRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BehaviorLog{}, id).Error
}

func (r *behaviorLogRepository) List(ctx context.Context, filter BehaviorLogFilter) ([]models.BehaviorLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.BehaviorLog{})

	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}
	if filter.Verified != nil {
		query = query.Where("verified = ?", *filter.Verified)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var logs []models.BehaviorLog
	err := query.Order("created_at DESC").Find(&logs).Error
	return logs, total, err
}

func (r *behaviorLogRepository) ListInRange(ctx context.Context, from, to time.Time) ([]models.BehaviorLog, error) {
	var logs []models.BehaviorLog
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at ASC").
		Find(&logs).Error
	return logs, err
}
