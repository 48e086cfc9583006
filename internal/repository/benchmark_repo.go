package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/App-Genius/topline-platform/internal/models"
)

// BenchmarkRepository persists yearly revenue targets.
type BenchmarkRepository interface {
	GetByYear(ctx context.Context, year int) (models.Benchmark, error)
	Upsert(ctx context.Context, benchmark *models.Benchmark) error
}

type benchmarkRepository struct {
	db *gorm.DB
}

// NewBenchmarkRepository constructs the benchmark repository.
func NewBenchmarkRepository(db *gorm.DB) BenchmarkRepository {
	return &benchmarkRepository{db: db}
}

func (r *benchmarkRepository) GetByYear(ctx context.Context, year int) (models.Benchmark, error) {
	var benchmark models.Benchmark
	err := r.db.WithContext(ctx).Where("year = ?", year).First(&benchmark).Error
	return benchmark, err
}

func (r *benchmarkRepository) Upsert(ctx context.Context, benchmark *models.Benchmark) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_revenue", "days_open", "baseline_avg_check", "baseline_rating", "updated_at"}),
		}).
		Create(benchmark).Error
}
