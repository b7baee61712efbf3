package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "gulfacorns/internal/errors"
	"gulfacorns/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// EnsureUser finds the user with the given email, creating it when missing.
func (s *userService) EnsureUser(email, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}

	user := &models.User{Email: email, Name: name}
	if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return &existing, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrPersistenceFailure, err)
	}
	return &user, nil
}
