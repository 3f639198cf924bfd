package domain

import "time"

// Income is a single earning record owned by one user.
type Income struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	Title           string    `json:"title" gorm:"not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Category        string    `json:"category" gorm:"not null"`
	Notes           *string   `json:"notes,omitempty"`
	TransactionDate time.Time `json:"transaction_date" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
