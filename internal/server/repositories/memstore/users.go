package memstore

import (
	"context"

	"github.com/rohithmohanan1/Notes/internal/common"
	"github.com/rohithmohanan1/Notes/internal/server/models"
)

// UserRepo implements users.Repository over the shared store.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(ctx context.Context, u *models.NewUser) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.UID == u.UID {
			return nil, common.ErrorConflict
		}
	}

	s.userID++
	user := &models.User{
		ID:        s.userID,
		UID:       u.UID,
		Username:  u.Username,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
		CreatedAt: s.now(),
	}
	s.users[user.ID] = user

	out := *user
	return &out, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *user
	return &out, nil
}

func (r *UserRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if s.users[id].UID == uid {
			out := *s.users[id]
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}
