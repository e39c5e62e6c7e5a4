package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devflow/bugtracker/internal/core/domain"
	"github.com/devflow/bugtracker/internal/core/ports"
)

// tokenTTL is fixed: tokens expire one hour after issue, no refresh.
const tokenTTL = time.Hour

var emailCheck = validator.New()

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, jwtSecret string, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, log: log}
}

// Register creates a new account and returns a signed token for it.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (string, error) {
	if email == "" || password == "" || role == "" {
		return "", domain.ErrMissingFields
	}
	if emailCheck.Var(email, "email") != nil {
		return "", domain.ErrInvalidEmail
	}
	if !domain.ValidRole(role) {
		return "", domain.ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("email", email).Str("role", role).Msg("user registered")
	return s.signToken(created)
}

// Login verifies credentials and returns a freshly signed token. Unknown
// email and wrong password collapse into the same error so account
// existence cannot be probed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrMissingFields
	}
	if emailCheck.Var(email, "email") != nil {
		return "", domain.ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	s.log.Info().Str("email", email).Msg("user logged in")
	return s.signToken(user)
}

// Profile returns the account behind an authenticated identity. The
// password hash never reaches a response (json:"-" on the field).
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// signToken signs the payload {id, role} with a one hour expiry.
func (s *AuthService) signToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
