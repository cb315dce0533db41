package models

import (
	"time"
)

// RequestStatus enum
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
)

// Book model - one row per title in the catalog
type Book struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Title     string    `gorm:"column:title;index;not null" json:"title"`
	Author    string    `gorm:"column:author;not null" json:"author"`
	Copies    int       `gorm:"column:copies;not null" json:"copies"`
	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Book) TableName() string {
	return "books"
}

// BorrowRequest model - a user's reservation of a book over [StartDate, EndDate).
// Foreign keys are plain ID columns; callers join at query time.
type BorrowRequest struct {
	ID        uint          `gorm:"primaryKey;column:id" json:"id"`
	UserID    uint          `gorm:"column:user_id;index;not null" json:"user_id"`
	BookID    uint          `gorm:"column:book_id;index;not null" json:"book_id"`
	StartDate time.Time     `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   time.Time     `gorm:"column:end_date;not null" json:"end_date"`
	Status    RequestStatus `gorm:"column:status;default:pending;index" json:"status"`
	CreatedAt time.Time     `gorm:"column:created_at;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BorrowRequest) TableName() string {
	return "borrow_requests"
}
