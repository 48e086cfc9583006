package models

import "time"

// DailyEntry is one business day's revenue and guest count for a location.
type DailyEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Date         time.Time `gorm:"uniqueIndex;not null" json:"date"`
	TotalRevenue float64   `gorm:"not null;default:0" json:"total_revenue"`
	TotalCovers  int       `gorm:"not null;default:0" json:"total_covers"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Benchmark is the yearly target a location plays against; the daily game
// target is prorated from it.
type Benchmark struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Year             int       `gorm:"uniqueIndex;not null" json:"year"`
	TotalRevenue     float64   `gorm:"not null;default:0" json:"total_revenue"`
	DaysOpen         int       `gorm:"not null;default:0" json:"days_open"`
	BaselineAvgCheck float64   `gorm:"not null;default:0" json:"baseline_avg_check"`
	BaselineRating   float64   `gorm:"not null;default:0" json:"baseline_rating"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
