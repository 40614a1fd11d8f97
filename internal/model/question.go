package model

import (
	"time"
)

// Question is one multiple-choice entry in the bank. Questions are seeded at
// startup and read-only afterwards; there is no update or delete path.
type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Text          string    `json:"text" gorm:"type:text;not null"`
	OptionA       string    `json:"option_a" gorm:"not null"`
	OptionB       string    `json:"option_b" gorm:"not null"`
	OptionC       string    `json:"option_c" gorm:"not null"`
	OptionD       string    `json:"option_d" gorm:"not null"`
	CorrectAnswer string    `json:"-" gorm:"type:varchar(1);not null"` // one of "a".."d", never serialized
	Topic         string    `json:"topic" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
}
