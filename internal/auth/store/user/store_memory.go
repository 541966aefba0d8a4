package user

import (
	"context"
	"sort"
	"sync"

	"shiptrack/internal/auth/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
)

// InMemoryStore keeps users in a map with a secondary index on email.
type InMemoryStore struct {
	mu      sync.RWMutex
	users   map[id.UserID]*models.User
	byEmail map[string]id.UserID
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		users:   make(map[id.UserID]*models.User),
		byEmail: make(map[string]id.UserID),
	}
}

func (s *InMemoryStore) FindAll(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email() < out[j].Email() })
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, userID id.UserID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok {
		return u, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if userID, ok := s.byEmail[email]; ok {
		return s.users[userID], nil
	}
	return nil, sentinel.ErrNotFound
}

// Save inserts or replaces a user. It returns sentinel.ErrConflict when a
// different user already owns the email.
func (s *InMemoryStore) Save(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.byEmail[user.Email()]; ok && owner != user.ID() {
		return sentinel.ErrConflict
	}
	if prev, ok := s.users[user.ID()]; ok {
		delete(s.byEmail, prev.Email())
	}
	s.users[user.ID()] = user
	s.byEmail[user.Email()] = user.ID()
	return nil
}

func (s *InMemoryStore) Delete(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[user.ID()]
	if !ok {
		return sentinel.ErrNotFound
	}
	delete(s.byEmail, existing.Email())
	delete(s.users, user.ID())
	return nil
}
