package services

import (
	"errors"
	"time"

	"github.com/bookowl/backend/models"
	"gorm.io/gorm"
)

// Ledger tracks borrow requests and enforces the no-overlap invariant:
// for any book, approved requests must have pairwise disjoint
// [StartDate, EndDate) intervals. Touching endpoints do not overlap.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// CreateRequest admits a new borrow request for a book over [start, end).
// The request is stored as pending; only already-approved requests block
// admission. The lookup, overlap check and insert share one transaction.
func (l *Ledger) CreateRequest(userID, bookID uint, start, end time.Time) (*models.BorrowRequest, error) {
	if !start.Before(end) {
		return nil, ErrInvalidPeriod
	}

	request := models.BorrowRequest{
		UserID:    userID,
		BookID:    bookID,
		StartDate: start,
		EndDate:   end,
		Status:    models.RequestPending,
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		overlapping, err := countOverlapping(tx, bookID, start, end, 0)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrPeriodConflict
		}

		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Approve transitions a pending request to approved. Approving an
// already-approved request is a no-op that returns the row unchanged.
// The overlap invariant is re-checked against other approved requests, so
// two pending requests for overlapping periods cannot both be approved.
func (l *Ledger) Approve(requestID uint) (*models.BorrowRequest, error) {
	var request models.BorrowRequest

	err := l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, "id = ?", requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if request.Status == models.RequestApproved {
			return nil
		}

		overlapping, err := countOverlapping(tx, request.BookID, request.StartDate, request.EndDate, request.ID)
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrPeriodConflict
		}

		request.Status = models.RequestApproved
		return tx.Model(&request).Update("status", models.RequestApproved).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListForUser returns a user's borrow requests ordered by id.
func (l *Ledger) ListForUser(userID uint) ([]models.BorrowRequest, error) {
	var requests []models.BorrowRequest
	if err := l.db.Where("user_id = ?", userID).Order("id").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListAll returns every borrow request ordered by id.
func (l *Ledger) ListAll() ([]models.BorrowRequest, error) {
	var requests []models.BorrowRequest
	if err := l.db.Order("id").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// countOverlapping counts approved requests for the book whose half-open
// interval intersects [start, end), excluding excludeID when non-zero.
func countOverlapping(tx *gorm.DB, bookID uint, start, end time.Time, excludeID uint) (int64, error) {
	query := tx.Model(&models.BorrowRequest{}).
		Where("book_id = ? AND status = ?", bookID, models.RequestApproved).
		Where("end_date > ? AND start_date < ?", start, end)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
