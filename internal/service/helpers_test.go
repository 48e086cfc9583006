package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

type fakeBehaviorLogRepo struct {
	logs    []models.BehaviorLog
	deleted []uint
}

func (f *fakeBehaviorLogRepo) Create(ctx context.Context, log *models.BehaviorLog) error {
	log.ID = uint(len(f.logs) + 1)
	log.CreatedAt = time.Now()
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeBehaviorLogRepo) GetByID(ctx context.Context, id uint) (models.BehaviorLog, error) {
	for _, log := range f.logs {
		if log.ID == id {
			return log, nil
		}
	}
	return models.BehaviorLog{}, gorm.ErrRecordNotFound
}

func (f *fakeBehaviorLogRepo) Update(ctx context.Context, log *models.BehaviorLog) error {
	for i := range f.logs {
		if f.logs[i].ID == log.ID {
			f.logs[i] = *log
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeBehaviorLogRepo) Delete(ctx context.Context, id uint) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBehaviorLogRepo) List(ctx context.Context, filter repository.BehaviorLogFilter) ([]models.BehaviorLog, int64, error) {
	matched := make([]models.BehaviorLog, 0)
	for _, log := range f.logs {
		if filter.ActorID != nil && log.ActorID != *filter.ActorID {
			continue
		}
		if filter.Verified != nil && log.Verified != *filter.Verified {
			continue
		}
		matched = append(matched, log)
	}
	return matched, int64(len(matched)), nil
}

func (f *fakeBehaviorLogRepo) ListInRange(ctx context.Context, from, to time.Time) ([]models.BehaviorLog, error) {
	matched := make([]models.BehaviorLog, 0)
	for _, log := range f.logs {
		if log.CreatedAt.Before(from) || log.CreatedAt.After(to) {
			continue
		}
		matched = append(matched, log)
	}
	return matched, nil
}

type fakeAuditRecorder struct {
	entries []AuditEntry
}

func (f *fakeAuditRecorder) Record(ctx context.Context, entry AuditEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

type fakeDailyEntryRepo struct {
	entries []models.DailyEntry
}

func (f *fakeDailyEntryRepo) Upsert(ctx context.Context, entry *models.DailyEntry) error {
	for i := range f.entries {
		if f.entries[i].Date.Equal(entry.Date) {
			f.entries[i] = *entry
			return nil
		}
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeDailyEntryRepo) ListInRange(ctx context.Context, from, to time.Time) ([]models.DailyEntry, error) {
	matched := make([]models.DailyEntry, 0)
	for _, entry := range f.entries {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

func (f *fakeDailyEntryRepo) SumRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	total := 0.0
	for _, entry := range f.entries {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		total += entry.TotalRevenue
	}
	return total, nil
}

type fakeBenchmarkRepo struct {
	benchmark *models.Benchmark
}

func (f *fakeBenchmarkRepo) GetByYear(ctx context.Context, year int) (models.Benchmark, error) {
	if f.benchmark == nil || f.benchmark.Year != year {
		return models.Benchmark{}, gorm.ErrRecordNotFound
	}
	return *f.benchmark, nil
}

func (f *fakeBenchmarkRepo) Upsert(ctx context.Context, benchmark *models.Benchmark) error {
	f.benchmark = benchmark
	return nil
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	return append([]models.User(nil), f.users...), nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	count := int64(0)
	for _, user := range f.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}
