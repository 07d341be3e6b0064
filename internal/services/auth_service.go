package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/terraincognita07/fertilitrack/internal/models"
	"github.com/terraincognita07/fertilitrack/internal/security"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	temporaryPasswordLength = 12
	maxDisplayNameLength    = 64
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrDisplayNameTooLong     = errors.New("display name too long")
	ErrInvalidRole            = errors.New("invalid role")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(ctx context.Context, email string) (bool, error)
	FindByNormalizedEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID uint) (models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate returns ErrAuthCredentialsInvalid for unknown emails and wrong passwords alike.
func (service *AuthService) Authenticate(ctx context.Context, emailRaw string, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrAuthCredentialsInvalid
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(ctx context.Context, userID uint) (models.User, error) {
	user, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (service *AuthService) RegisterUser(ctx context.Context, emailRaw string, password string, displayName string, role models.Role, now time.Time) (models.User, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	displayName, err := NormalizeProfileInput(displayName, role)
	if err != nil {
		return models.User{}, err
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByNormalizedEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Role:         role,
		CreatedAt:    now.UTC(),
	}
	if err := service.users.Create(ctx, &user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// ResetPassword replaces the user's password with a generated one and returns it.
func (service *AuthService) ResetPassword(ctx context.Context, emailRaw string) (string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return "", ErrAuthCredentialsInvalid
	}

	user, err := service.users.FindByNormalizedEmail(ctx, email)
	if err != nil {
		return "", notFound(err, ErrUserNotFound)
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash temporary password: %w", err)
	}
	if err := service.users.UpdatePasswordHash(ctx, user.ID, string(hash)); err != nil {
		return "", fmt.Errorf("update user password: %w", err)
	}
	slog.InfoContext(ctx, "password reset", "user_id", user.ID)
	return temporaryPassword, nil
}
