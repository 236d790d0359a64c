package services

import (
	"context"
	"fmt"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/logging"
	"github.com/rohithmohanan1/Notes/internal/server/models"
	"github.com/rohithmohanan1/Notes/internal/server/repositories/repomanager"
)

// UserService resolves and registers users. Authentication itself happens
// in the external identity provider; this service only maps the provider
// uid to a local account.
type UserService struct {
	repos repomanager.RepositoryManager
	log   logging.Logger
}

func NewUserService(m repomanager.RepositoryManager, log logging.Logger) *UserService {
	return &UserService{repos: m, log: log}
}

// GetCurrent looks the account up by the identity provider uid.
func (s *UserService) GetCurrent(ctx context.Context, uid string) (*models.User, error) {
	if uid == "" {
		verr := &common.ValidationError{}
		verr.Add("uid", "is required")
		return nil, verr
	}
	return s.repos.Users().GetByUID(ctx, uid)
}

// Create registers an account on first sign-in.
func (s *UserService) Create(ctx context.Context, u *models.NewUser) (*models.User, error) {
	verr := &common.ValidationError{}
	if u.UID == "" {
		verr.Add("uid", "is required")
	}
	if u.Username == "" {
		verr.Add("username", "is required")
	}
	if u.Email == "" {
		verr.Add("email", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	created, err := s.repos.Users().Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	s.log.Info(ctx, "user registered", "userID", created.ID)
	return created, nil
}
