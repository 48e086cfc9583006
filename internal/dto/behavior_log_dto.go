package dto

import (
	"time"

	"github.com/App-Genius/topline-platform/internal/kpi"
	"github.com/App-Genius/topline-platform/internal/models"
)

// BehaviorLogCreateRequest records one behavior occurrence.
type BehaviorLogCreateRequest struct {
	BehaviorID   uint   `json:"behavior_id" validate:"required"`
	BehaviorName string `json:"behavior_name" validate:"required,min=1,max=128"`
	Points       int    `json:"points" validate:"gte=0"`
}

// BehaviorLogListRequest filters a log listing. ActorID is only honored for
// manager-tier requesters.
type BehaviorLogListRequest struct {
	Page     int
	PageSize int
	ActorID  *uint
	Verified *bool
}

// BehaviorLogResponse serializes a behavior log.
type BehaviorLogResponse struct {
	ID           uint       `json:"id"`
	ActorID      uint       `json:"actor_id"`
	BehaviorID   uint       `json:"behavior_id"`
	BehaviorName string     `json:"behavior_name"`
	Points       int        `json:"points"`
	Verified     bool       `json:"verified"`
	VerifiedByID *uint      `json:"verified_by_id,omitempty"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewBehaviorLogResponse maps a model onto the response shape.
func NewBehaviorLogResponse(log models.BehaviorLog) BehaviorLogResponse {
	return BehaviorLogResponse{
		ID:           log.ID,
		ActorID:      log.ActorID,
		BehaviorID:   log.BehaviorID,
		BehaviorName: log.BehaviorName,
		Points:       log.Points,
		Verified:     log.Verified,
		VerifiedByID: log.VerifiedByID,
		VerifiedAt:   log.VerifiedAt,
		CreatedAt:    log.CreatedAt,
	}
}

// BehaviorLogListResponse wraps a paginated log listing.
type BehaviorLogListResponse struct {
	Items      []BehaviorLogResponse `json:"items"`
	Pagination kpi.PaginationMeta    `json:"pagination"`
}
