package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/dto"
	"github.com/App-Genius/topline-platform/internal/kpi"
	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/rbac"
	"github.com/App-Genius/topline-platform/internal/repository"
)

// ErrForbidden reports a policy denial; PermissionError carries the reason
// when the policy engine produced one.
var ErrForbidden = errors.New("forbidden")

// PermissionError wraps ErrForbidden with the policy engine's reason.
type PermissionError struct {
	Reason string
}

func (e *PermissionError) Error() string {
	return e.Reason
}

func (e *PermissionError) Unwrap() error {
	return ErrForbidden
}

// BehaviorLogService manages behavior log occurrences: recording,
// listing, verification, and deletion under the RBAC policy.
type BehaviorLogService interface {
	Create(ctx context.Context, actor Actor, payload dto.BehaviorLogCreateRequest) (dto.BehaviorLogResponse, error)
	List(ctx context.Context, actor Actor, req dto.BehaviorLogListRequest) (dto.BehaviorLogListResponse, error)
	Verify(ctx context.Context, actor Actor, logID uint) (dto.BehaviorLogResponse, error)
	Delete(ctx context.Context, actor Actor, logID uint) error
}

type behaviorLogService struct {
	repo      repository.BehaviorLogRepository
	audit     AuditRecorder
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewBehaviorLogService constructs the behavior log service.
func NewBehaviorLogService(repo repository.BehaviorLogRepository, audit AuditRecorder, validate *validator.Validate, logger zerolog.Logger) BehaviorLogService {
	return &behaviorLogService{
		repo:      repo,
		audit:     audit,
		validator: validate,
		logger:    logger.With().Str("component", "behavior_log_service").Logger(),
		now:       time.Now,
	}
}

func (s *behaviorLogService) Create(ctx context.Context, actor Actor, payload dto.BehaviorLogCreateRequest) (dto.BehaviorLogResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.BehaviorLogResponse{}, err
	}

	log := models.BehaviorLog{
		ActorID:      actor.ID,
		BehaviorID:   payload.BehaviorID,
		BehaviorName: payload.BehaviorName,
		Points:       payload.Points,
	}
	if err := s.repo.Create(ctx, &log); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist behavior log")
		return dto.BehaviorLogResponse{}, err
	}

	return dto.NewBehaviorLogResponse(log), nil
}

func (s *behaviorLogService) List(ctx context.Context, actor Actor, req dto.BehaviorLogListRequest) (dto.BehaviorLogListResponse, error) {
	// Staff can only ever see their own logs; managers may scope to anyone.
	effective := rbac.EffectiveActorID(rbac.Role(actor.Role), actor.ID, req.ActorID)

	filter := repository.BehaviorLogFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
		ActorID:  &effective,
		Verified: req.Verified,
	}
	if rbac.CanViewAllUsers(rbac.Role(actor.Role)) && req.ActorID == nil {
		filter.ActorID = nil
	}

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.BehaviorLogListResponse{}, err
	}

	items := make([]dto.BehaviorLogResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, dto.NewBehaviorLogResponse(log))
	}

	return dto.BehaviorLogListResponse{
		Items:      items,
		Pagination: kpi.Paginate(total, req.Page, req.PageSize),
	}, nil
}

func (s *behaviorLogService) Verify(ctx context.Context, actor Actor, logID uint) (dto.BehaviorLogResponse, error) {
	if !rbac.CanVerifyLogs(rbac.Role(actor.Role)) {
		return dto.BehaviorLogResponse{}, &PermissionError{Reason: "verification requires a manager role"}
	}

	log, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		return dto.BehaviorLogResponse{}, err
	}

	verifiedAt := s.now()
	log.Verified = true
	log.VerifiedByID = &actor.ID
	log.VerifiedAt = &verifiedAt

	if err := s.repo.Update(ctx, &log); err != nil {
		s.logger.Error().Err(err).Uint("log_id", logID).Msg("failed to verify behavior log")
		return dto.BehaviorLogResponse{}, err
	}

	s.recordAudit(ctx, actor, "verify", logID, map[string]interface{}{
		"behavior_id": log.BehaviorID,
		"points":      log.Points,
	})

	return dto.NewBehaviorLogResponse(log), nil
}

func (s *behaviorLogService) Delete(ctx context.Context, actor Actor, logID uint) error {
	log, err := s.repo.GetByID(ctx, logID)
	if err != nil {
		return err
	}

	role := rbac.Role(actor.Role)
	if !rbac.IsManagerRole(role) {
		perm := rbac.CanStaffDeleteLog(rbac.IsStaffRole(role), log.ActorID == actor.ID, log.Verified)
		if !perm.Allowed {
			return &PermissionError{Reason: perm.Reason}
		}
	}

	if err := s.repo.Delete(ctx, logID); err != nil {
		s.logger.Error().Err(err).Uint("log_id", logID).Msg("failed to delete behavior log")
		return err
	}

	s.recordAudit(ctx, actor, "delete", logID, map[string]interface{}{
		"behavior_id": log.BehaviorID,
		"owner_id":    log.ActorID,
	})

	return nil
}

func (s *behaviorLogService) recordAudit(ctx context.Context, actor Actor, action string, logID uint, metadata map[string]interface{}) {
	if s.audit == nil {
		return
	}
	entry := AuditEntry{
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: "behavior_log",
		EntityID:   &logID,
		Metadata:   metadata,
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Msg("failed to record audit entry")
	}
}
