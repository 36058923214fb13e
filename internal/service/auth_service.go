package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todoapp/internal/models"
	"todoapp/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AccountService handles user registration.
type AccountService struct {
	userRepo repository.Users
}

func NewAccountService(repo repository.Users) *AccountService {
	return &AccountService{userRepo: repo}
}

// Register hashes the plaintext password and inserts a new active user.
// The returned record carries the store-assigned id; the hash field is
// excluded from JSON by the model tag.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	u := models.User{
		Email:          in.Email,
		Username:       in.Username,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		HashedPassword: hash,
		IsActive:       true,
		Role:           in.Role,
	}

	id, err := s.userRepo.Create(ctx, u)
	if err != nil {
		return models.User{}, err
	}
	u.ID = id
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
