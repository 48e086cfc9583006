package models

import "time"

// Behavior is a tracked staff action worth points when logged.
type Behavior struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Points    int       `gorm:"not null;default:0" json:"points"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BehaviorLog is one occurrence of a tracked behavior by one actor.
// VerifiedAt is set exactly when Verified is true.
type BehaviorLog struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ActorID      uint       `gorm:"index;not null" json:"actor_id"`
	Actor        User       `gorm:"foreignKey:ActorID" json:"-"`
	BehaviorID   uint       `gorm:"index;not null" json:"behavior_id"`
	BehaviorName string     `gorm:"size:128;not null" json:"behavior_name"`
	Points       int        `gorm:"not null;default:0" json:"points"`
	Verified     bool       `gorm:"not null;default:false" json:"verified"`
	VerifiedByID *uint      `json:"verified_by_id,omitempty"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
}
