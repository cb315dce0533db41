// Package services provides the business logic behind the HTTP handlers:
// account management, the book catalog and the borrow ledger.
package services

import (
	"errors"

	"github.com/bookowl/backend/auth"
	"github.com/bookowl/backend/models"
	"gorm.io/gorm"
)

// AccountService manages user records and the login flow.
type AccountService struct {
	db     *gorm.DB
	tokens *auth.TokenService
}

func NewAccountService(db *gorm.DB, tokens *auth.TokenService) *AccountService {
	return &AccountService{db: db, tokens: tokens}
}

// Authenticate checks an email/password pair and mints an access token for
// the matching user. Unknown emails and wrong passwords both come back as
// auth.ErrInvalidCredentials.
func (s *AccountService) Authenticate(email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, auth.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, auth.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// CreateUser registers a new user. Fails with ErrDuplicateEmail when the
// email is already taken.
func (s *AccountService) CreateUser(email, password string, isAdmin bool) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		IsAdmin:      isAdmin,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAdminUser is the bootstrap path: it creates the single admin account
// and fails with ErrAdminExists once one is present. The existence check and
// the insert share a transaction to narrow the check-then-act window.
func (s *AccountService) CreateAdminUser(email, password string) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		IsAdmin:      true,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAdminExists
		}
		var dup int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateEmail
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by id, failing with auth.ErrUnknownUser when absent.
func (s *AccountService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrUnknownUser
		}
		return nil, err
	}
	return &user, nil
}
