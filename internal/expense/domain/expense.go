package domain

import "time"

// Expense is a single spend record owned by one user.
type Expense struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"index;not null"`
	Title           string    `json:"title" gorm:"not null"`
	Amount          float64   `json:"amount" gorm:"not null"`
	Category        string    `json:"category" gorm:"not null"`
	Notes           *string   `json:"notes,omitempty"`
	TransactionDate time.Time `json:"transaction_date" gorm:"not null"`
	PaymentMethod   *string   `json:"payment_method,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
