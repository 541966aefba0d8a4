package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"shiptrack/internal/auth/models"
	"shiptrack/pkg/platform/sentinel"
)

const hash = "$2a$10$0123456789abcdefghijkl"

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) newUser(email string) *models.User {
	u, err := models.NewUser("Ana", email, "secret-pass", hash)
	s.Require().NoError(err)
	return u
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	u := s.newUser("ana@example.com")
	s.Require().NoError(s.store.Save(s.ctx, u))

	byID, err := s.store.FindByID(s.ctx, u.ID())
	s.Require().NoError(err)
	s.Equal(u, byID)

	byEmail, err := s.store.FindByEmail(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Equal(u.ID(), byEmail.ID())
}

func (s *InMemoryStoreSuite) TestFindMissing() {
	_, err := s.store.FindByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, sentinel.ErrNotFound)

	_, err = s.store.FindByID(s.ctx, s.newUser("x@example.com").ID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestEmailTakenByAnotherUser() {
	s.Require().NoError(s.store.Save(s.ctx, s.newUser("ana@example.com")))
	s.ErrorIs(s.store.Save(s.ctx, s.newUser("ana@example.com")), sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestSaveReindexesEmail() {
	u := s.newUser("ana@example.com")
	s.Require().NoError(s.store.Save(s.ctx, u))

	renamed, err := models.LoadUser(u.ID(), "Ana", "ana@new.example.com", hash)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(s.ctx, renamed))

	_, err = s.store.FindByEmail(s.ctx, "ana@example.com")
	s.ErrorIs(err, sentinel.ErrNotFound)
	got, err := s.store.FindByEmail(s.ctx, "ana@new.example.com")
	s.Require().NoError(err)
	s.Equal(u.ID(), got.ID())
}

func (s *InMemoryStoreSuite) TestFindAllAndDelete() {
	a, b := s.newUser("b@example.com"), s.newUser("a@example.com")
	s.Require().NoError(s.store.Save(s.ctx, a))
	s.Require().NoError(s.store.Save(s.ctx, b))

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("a@example.com", all[0].Email())

	s.Require().NoError(s.store.Delete(s.ctx, a))
	s.ErrorIs(s.store.Delete(s.ctx, a), sentinel.ErrNotFound)
	_, err = s.store.FindByEmail(s.ctx, "b@example.com")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
