package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/swingnotes/internal/common"
	"github.com/dmitrijs2005/swingnotes/internal/cryptox"
	"github.com/dmitrijs2005/swingnotes/internal/server/models"
	"github.com/dmitrijs2005/swingnotes/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/swingnotes/internal/server/validation"
)

// TokenIssuer mints identity tokens. *auth.Issuer satisfies it.
type TokenIssuer interface {
	Issue(userID, username string) (string, error)
}

// SignupResult is returned by a successful Signup.
type SignupResult struct {
	User  *models.User
	Token string
}

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenIssuer
	now         Clock
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenIssuer) *UserService {
	return &UserService{db: db, repomanager: m, tokens: tokens, now: utcMicros}
}

// WithClock replaces the time source used for created/updated stamps.
func (s *UserService) WithClock(c Clock) *UserService {
	s.now = c
	return s
}

// Signup registers a new account and returns it with a fresh token. A taken
// username yields common.ErrDuplicateUsername.
func (s *UserService) Signup(ctx context.Context, username, password string) (*SignupResult, error) {
	in, err := validation.Credentials(username, password)
	if err != nil {
		return nil, err
	}

	user, err := models.NewUser(in.Username, in.Password, s.now())
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err = s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.UserName)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &SignupResult{User: user, Token: token}, nil
}

// Login checks the credentials and returns a new token. An unknown username
// and a wrong password both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	in, err := validation.LoginCredentials(username, password)
	if err != nil {
		return "", err
	}

	user, err := s.repomanager.Users(s.db).FindByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// spend the same bcrypt work as a real mismatch
			cryptox.CheckPassword(in.Password, decoyHash())
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error loading user: %w", err)
	}

	if !cryptox.CheckPassword(in.Password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.UserName)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

var decoyHash = sync.OnceValue(func() string {
	h, err := cryptox.HashPassword("decoy-password")
	if err != nil {
		return ""
	}
	return h
})
