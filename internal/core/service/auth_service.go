package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipeshare/recipe-api/internal/api/metrics"
	"github.com/recipeshare/recipe-api/internal/core/domain"
	"github.com/recipeshare/recipe-api/internal/core/ports"
)

// AuthService implements signup, login and credential maintenance.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.SignupsTotal.WithLabelValues("conflict").Inc()
		}
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same rejection as a bad password so account existence stays
			// hidden.
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	user.PasswordHash = ""
	return token, user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if next == "" {
		return domain.ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	// The public projection excludes the hash; the login lookup carries it.
	withHash, err := s.users.FindByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(withHash.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	updated, err := s.users.UpdatePassword(ctx, userID, string(hash))
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *AuthService) UpgradeToChef(ctx context.Context, userID int64) error {
	updated, err := s.users.UpgradeToChef(ctx, userID)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
