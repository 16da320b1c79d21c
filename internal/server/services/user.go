// Package services contains server-side business logic. This file implements
// UserService: signup, login, profile reads and updates, and the best-effort
// welcome email.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/server/auth"
	"github.com/avelichko/careernet/internal/server/config"
	"github.com/avelichko/careernet/internal/server/email"
	"github.com/avelichko/careernet/internal/server/models"
	"github.com/avelichko/careernet/internal/server/repositories/repomanager"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

const suggestionLimit = 3

// SignupParams carries the fields required to create an account.
type SignupParams struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserService handles identity: registration, credential checks, session
// token minting, and profile operations.
type UserService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	jwtSecret       []byte
	sessionValidity time.Duration
	clientBaseURL   string
	mail            *email.Dispatcher
}

// NewUserService constructs a UserService using repositories and server config.
// mail may be nil, in which case welcome emails are skipped.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, mail *email.Dispatcher) *UserService {
	return &UserService{
		db:              db,
		repomanager:     m,
		jwtSecret:       []byte(cfg.SecretKey),
		sessionValidity: cfg.SessionValidityDuration,
		clientBaseURL:   cfg.ClientBaseURL,
		mail:            mail,
	}
}

// SessionValidity reports the configured token lifetime; the HTTP layer
// aligns the cookie MaxAge with it.
func (s *UserService) SessionValidity() time.Duration {
	return s.sessionValidity
}

// Signup validates params, creates the user with a bcrypt password hash,
// and mints a session token. Uniqueness is checked up front; a concurrent
// signup losing the race still surfaces the same duplicate errors via the
// store's unique constraints.
func (s *UserService) Signup(ctx context.Context, p SignupParams) (*models.User, string, error) {

	if p.Name == "" || p.Username == "" || p.Email == "" || p.Password == "" {
		return nil, "", common.ErrMissingFields
	}
	if !emailRegex.MatchString(p.Email) {
		return nil, "", common.ErrInvalidEmailFormat
	}
	if len(p.Password) < minPasswordLength {
		return nil, "", common.ErrWeakPassword
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetByEmail(ctx, p.Email); err == nil {
		return nil, "", common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorInternal
	}

	if _, err := repo.GetByUsername(ctx, p.Username); err == nil {
		return nil, "", common.ErrDuplicateUsername
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, "", common.ErrorInternal
	}

	hash, err := auth.HashPassword(p.Password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user, err := repo.Create(ctx, &models.User{
		Name:         p.Name,
		UserName:     p.Username,
		Email:        p.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) || errors.Is(err, common.ErrDuplicateEmail) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// DispatchWelcome queues the welcome email. Call it after the signup
// response has been committed; failures surface on the dispatcher's error
// channel, never here.
func (s *UserService) DispatchWelcome(user *models.User) {
	if s.mail == nil {
		return
	}
	profileURL := fmt.Sprintf("%s/profile/%s", s.clientBaseURL, user.UserName)
	s.mail.Dispatch(user.Email, "Welcome to CareerNet", email.WelcomeBody(user.Name, profileURL))
}

// Login verifies credentials and mints a session token. Unknown username
// and wrong password both return ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.sessionValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// ResolveToken verifies a session token and loads its owner.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// GetByUsername returns a user's public profile record.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByUsername(ctx, username)
}

// UpdateProfile applies the non-nil fields of upd to the user's record.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd *models.ProfileUpdate) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}
	return user, nil
}

// Suggestions returns a few users the caller is not yet connected with.
func (s *UserService) Suggestions(ctx context.Context, userID string) ([]*models.User, error) {
	return s.repomanager.Users(s.db).Suggestions(ctx, userID, suggestionLimit)
}
