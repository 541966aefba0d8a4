//go:build integration

package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"shiptrack/internal/auth/models"
	"shiptrack/internal/auth/store/user"
	"shiptrack/internal/platform/postgres"
	"shiptrack/pkg/platform/sentinel"
	"shiptrack/pkg/testutil/containers"
)

const hash = "$2a$10$0123456789abcdefghijkl"

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *user.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	_, err := postgres.Migrate(context.Background(), s.postgres.DB, nil)
	s.Require().NoError(err)
	s.store = user.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "users"))
}

func (s *PostgresStoreSuite) TestRoundTripAndUniqueEmail() {
	ctx := context.Background()
	u, err := models.NewUser("Ana", "ana@example.com", "secret-pass", hash)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, u))

	got, err := s.store.FindByEmail(ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Equal(u, got)

	dup, err := models.NewUser("Other", "ana@example.com", "secret-pass", hash)
	s.Require().NoError(err)
	s.ErrorIs(s.store.Save(ctx, dup), sentinel.ErrConflict)

	s.Require().NoError(s.store.Delete(ctx, u))
	_, err = s.store.FindByID(ctx, u.ID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}
