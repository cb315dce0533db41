package services

import (
	"errors"

	"github.com/bookowl/backend/models"
	"gorm.io/gorm"
)

// CatalogService manages the book catalog.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// AddBook inserts a new book. Copies is stored as given; zero means the
// catalog lists the title with no lendable copies. Negative copies are
// rejected. Defaulting an omitted copies field is the caller's concern.
func (s *CatalogService) AddBook(title, author string, copies int) (*models.Book, error) {
	if copies < 0 {
		return nil, ErrInvalidCopies
	}

	book := models.Book{
		Title:  title,
		Author: author,
		Copies: copies,
	}
	if err := s.db.Create(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// ListBooks returns the whole catalog ordered by id.
func (s *CatalogService) ListBooks() ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook loads one book, failing with ErrBookNotFound when absent.
func (s *CatalogService) GetBook(id uint) (*models.Book, error) {
	var book models.Book
	if err := s.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}
