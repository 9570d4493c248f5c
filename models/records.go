package models

import "time"

// Income is money coming in. Dates are calendar strings ("2006-01-02") as
// entered by the client, not parsed timestamps.
type Income struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Amount      float64   `bson:"amount" json:"amount"`
	Source      string    `bson:"source" json:"source"`
	Category    string    `bson:"category" json:"category"`
	Date        string    `bson:"date" json:"date"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Expense is money going out. Same shape as Income minus the source.
type Expense struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Amount      float64   `bson:"amount" json:"amount"`
	Category    string    `bson:"category" json:"category"`
	Date        string    `bson:"date" json:"date"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Budget is a per-category monthly spending limit. At most one budget may
// exist per (user, category, year, month).
type Budget struct {
	ID           string    `bson:"id" json:"id"`
	UserID       string    `bson:"user_id" json:"user_id"`
	Category     string    `bson:"category" json:"category"`
	MonthlyLimit float64   `bson:"monthly_limit" json:"monthly_limit"`
	Year         int       `bson:"year" json:"year"`
	Month        int       `bson:"month" json:"month"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// SavingsGoal tracks progress toward a target amount by a deadline.
type SavingsGoal struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Title         string    `bson:"title" json:"title"`
	TargetAmount  float64   `bson:"target_amount" json:"target_amount"`
	CurrentAmount float64   `bson:"current_amount" json:"current_amount"`
	Deadline      string    `bson:"deadline" json:"deadline"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// ContactMessage is a message from the public contact form. It has no owner
// and is write-only through the API.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
