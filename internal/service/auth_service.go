package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pdfcheck/internal/config"
	"pdfcheck/internal/domain"
)

const (
	sessionSubject  = "pdfcheck"
	sessionAudience = "session"
)

// Claims represents the JWT claims of a session token.
type Claims struct {
	jwt.RegisteredClaims
}

// Session is an issued session token.
type Session struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Password string `json:"password"`
}

// AuthService defines the shared-password authentication contract.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*Session, error)
	ValidateToken(tokenString string) (*Claims, error)
	SessionTTL() time.Duration
}

type authService struct {
	passwordHash []byte
	cfg          config.AuthConfig
	now          func() time.Time
}

// NewAuthService creates a new AuthService implementation. The configured
// password is hashed once here; an empty password leaves the service
// unconfigured and every login fails with domain.ErrNotConfigured. Without a
// session secret a random one is generated, so sessions end on restart.
func NewAuthService(cfg config.AuthConfig) (AuthService, error) {
	if cfg.SessionSecret == "" {
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
		cfg.SessionSecret = string(secret)
	}
	s := &authService{cfg: cfg, now: time.Now}
	if cfg.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing configured password: %w", err)
		}
		s.passwordHash = hash
	}
	return s, nil
}

func (s *authService) Login(_ context.Context, input LoginInput) (*Session, error) {
	if s.passwordHash == nil {
		return nil, domain.ErrNotConfigured
	}
	if input.Password == "" {
		return nil, domain.ErrPasswordRequired
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}
	return s.issue()
}

func (s *authService) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}

func (s *authService) issue() (*Session, error) {
	now := s.now()
	expiry := now.Add(s.cfg.SessionTTL)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{sessionAudience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}
	return &Session{Token: signed, ExpiresAt: expiry}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	if s.passwordHash == nil || tokenString == "" {
		return nil, domain.ErrUnauthorized
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithAudience(sessionAudience), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, errors.Join(domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
