package model

import (
	"time"
)

// Result records the outcome of a single quiz submission. Rows are append-only
// and immutable; UserID is the anonymous identity cookie value, not a foreign
// key to any user table.
type Result struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Score     int       `json:"score" gorm:"not null"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	CreatedAt time.Time `json:"created_at"`
}
