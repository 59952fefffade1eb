package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// AuthService implements registration and login. Passwords are stored only
// as bcrypt hashes; login compares against the hash, never raw text.
type AuthService struct {
	repo     ports.UserRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle // optional, nil disables throttling
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens ports.TokenService, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and returns a signed access token. Lookup and
// compare failures collapse into ErrInvalidCredentials so the response does
// not reveal whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrEmptyCredentials
	}

	if s.throttle != nil {
		locked, err := s.throttle.TooManyFailures(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle unavailable, failing open")
		} else if locked {
			return "", domain.ErrLoginThrottled
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, username)
	}
	s.logger.Info().Str("username", username).Msg("login succeeded")
	return token, nil
}

func (s *AuthService) noteFailure(ctx context.Context, username string) {
	if s.throttle != nil {
		if err := s.throttle.NoteFailure(ctx, username); err != nil {
			s.logger.Warn().Err(err).Msg("could not record failed login")
		}
	}
}
