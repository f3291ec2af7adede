package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Skotchmaster/category_service/internal/models"
	"github.com/Skotchmaster/category_service/internal/repo"
	"github.com/Skotchmaster/category_service/pkg/hash"
	"github.com/Skotchmaster/category_service/pkg/logging"
	"github.com/Skotchmaster/category_service/pkg/tokens"
)

const (
	// AccessTokenTTL is the default lifetime for programmatically
	// issued tokens; the login flow passes LoginTokenTTL explicitly.
	AccessTokenTTL = 15 * time.Minute
	LoginTokenTTL  = 7 * 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
)

type AuthService struct {
	Repo      *repo.GormRepo
	Method    jwt.SigningMethod
	JWTSecret []byte
}

// Authenticate returns ErrInvalidCredentials both for an unknown
// username and for a wrong password.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.authenticate")

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("authenticate_error", "status", 500, "error", err)
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) CreateAccessToken(subject string, ttl time.Duration) (string, error) {
	return tokens.NewAccessToken(subject, time.Now().Add(ttl), s.Method, s.JWTSecret)
}

// VerifyAccessToken resolves the token subject to an existing user.
// Tokens are stateless: validity is fully determined by signature,
// expiry and the subject lookup.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenStr string) (*models.User, error) {
	claims, err := tokens.AccessClaimsFromToken(tokenStr, s.Method, s.JWTSecret)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.Repo.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		// the subject may reference a never-existing user
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (s *AuthService) Register(ctx context.Context, username, email, firstName, lastName, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register", "username", username)

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
