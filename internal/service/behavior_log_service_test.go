package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/models"
)

func newBehaviorLogService(repo *fakeBehaviorLogRepo, audit *fakeAuditRecorder) *behaviorLogService {
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewBehaviorLogService(repo, audit, validate, testLogger()).(*behaviorLogService)
	svc.now = func() time.Time { return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateBehaviorLog(t *testing.T) {
	repo := &fakeBehaviorLogRepo{}
	svc := newBehaviorLogService(repo, &fakeAuditRecorder{})
	actor := Actor{ID: 7, Role: "SERVER"}

	created, err := svc.Create(context.Background(), actor, dto.BehaviorLogCreateRequest{
		BehaviorID:   10,
		BehaviorName: "table touch",
		Points:       5,
	})
	require.NoError(t, err)
	require.Equal(t, uint(7), created.ActorID)
	require.Equal(t, 5, created.Points)
	require.False(t, created.Verified)

	_, err = svc.Create(context.Background(), actor, dto.BehaviorLogCreateRequest{BehaviorName: "missing id"})
	require.Error(t, err, "payload validation rejects a zero behavior id")
}

func TestListScopesStaffToOwnLogs(t *testing.T) {
	repo := &fakeBehaviorLogRepo{logs: []models.BehaviorLog{
		{ID: 1, ActorID: 1},
		{ID: 2, ActorID: 2},
		{ID: 3, ActorID: 1},
	}}
	svc := newBehaviorLogService(repo, &fakeAuditRecorder{})

	other := uint(2)
	listing, err := svc.List(context.Background(), Actor{ID: 1, Role: "SERVER"}, dto.BehaviorLogListRequest{ActorID: &other, PageSize: 10, Page: 1})
	require.NoError(t, err)
	require.Len(t, listing.Items, 2, "staff see their own logs even when asking for another actor")
	for _, item := range listing.Items {
		require.Equal(t, uint(1), item.ActorID)
	}

	managerListing, err := svc.List(context.Background(), Actor{ID: 9, Role: "MANAGER"}, dto.BehaviorLogListRequest{ActorID: &other, PageSize: 10, Page: 1})
	require.NoError(t, err)
	require.Len(t, managerListing.Items, 1)
	require.Equal(t, uint(2), managerListing.Items[0].ActorID)

	allListing, err := svc.List(context.Background(), Actor{ID: 9, Role: "MANAGER"}, dto.BehaviorLogListRequest{PageSize: 10, Page: 1})
	require.NoError(t, err)
	require.Len(t, allListing.Items, 3, "managers without a scope see everything")
	require.Equal(t, 1, allListing.Pagination.TotalPages)
}

func TestVerifyRequiresManager(t *testing.T) {
	repo := &fakeBehaviorLogRepo{logs: []models.BehaviorLog{{ID: 1, ActorID: 1, BehaviorID: 10, Points: 5}}}
	audit := &fakeAuditRecorder{}
	svc := newBehaviorLogService(repo, audit)

	_, err := svc.Verify(context.Background(), Actor{ID: 1, Role: "SERVER"}, 1)
	require.ErrorIs(t, err, ErrForbidden)
	require.Empty(t, audit.entries)

	verified, err := svc.Verify(context.Background(), Actor{ID: 9, Role: "MANAGER"}, 1)
	require.NoError(t, err)
	require.True(t, verified.Verified)
	require.NotNil(t, verified.VerifiedAt)
	require.Equal(t, uint(9), *verified.VerifiedByID)

	require.Len(t, audit.entries, 1)
	require.Equal(t, "verify", audit.entries[0].Action)
	require.Equal(t, "behavior_log", audit.entries[0].EntityType)
}

func TestVerifyMissingLog(t *testing.T) {
	svc := newBehaviorLogService(&fakeBehaviorLogRepo{}, &fakeAuditRecorder{})

	_, err := svc.Verify(context.Background(), Actor{ID: 9, Role: "MANAGER"}, 42)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletePolicy(t *testing.T) {
	logs := []models.BehaviorLog{
		{ID: 1, ActorID: 1},
		{ID: 2, ActorID: 2},
		{ID: 3, ActorID: 1, Verified: true},
	}

	t.Run("staff deletes own unverified log", func(t *testing.T) {
		repo := &fakeBehaviorLogRepo{logs: logs}
		audit := &fakeAuditRecorder{}
		svc := newBehaviorLogService(repo, audit)

		require.NoError(t, svc.Delete(context.Background(), Actor{ID: 1, Role: "SERVER"}, 1))
		require.Equal(t, []uint{1}, repo.deleted)
		require.Len(t, audit.entries, 1)
		require.Equal(t, "delete", audit.entries[0].Action)
	})

	t.Run("staff cannot delete another actor's log", func(t *testing.T) {
		svc := newBehaviorLogService(&fakeBehaviorLogRepo{logs: logs}, &fakeAuditRecorder{})

		err := svc.Delete(context.Background(), Actor{ID: 1, Role: "SERVER"}, 2)
		require.ErrorIs(t, err, ErrForbidden)
		require.EqualError(t, err, "not owner")
	})

	t.Run("staff cannot delete a verified log", func(t *testing.T) {
		svc := newBehaviorLogService(&fakeBehaviorLogRepo{logs: logs}, &fakeAuditRecorder{})

		err := svc.Delete(context.Background(), Actor{ID: 1, Role: "SERVER"}, 3)
		require.ErrorIs(t, err, ErrForbidden)
		require.EqualError(t, err, "verified logs are immutable")
	})

	t.Run("managers bypass the staff checks", func(t *testing.T) {
		repo := &fakeBehaviorLogRepo{logs: logs}
		svc := newBehaviorLogService(repo, &fakeAuditRecorder{})

		require.NoError(t, svc.Delete(context.Background(), Actor{ID: 9, Role: "MANAGER"}, 3))
		require.Equal(t, []uint{3}, repo.deleted)
	})
}
