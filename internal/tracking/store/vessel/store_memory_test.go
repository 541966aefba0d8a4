package vessel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) newVessel(name string) *models.Vessel {
	v, err := models.NewVessel(name, "Owner", 2001, id.NewPortID(), s.now)
	s.Require().NoError(err)
	return v
}

func (s *InMemoryStoreSuite) TestSaveAndFind() {
	v := s.newVessel("Aurora")
	s.Require().NoError(s.store.Save(s.ctx, v))

	got, err := s.store.FindByID(s.ctx, v.ID())
	s.Require().NoError(err)
	s.Equal(v, got)
	s.NotSame(v, got)
}

func (s *InMemoryStoreSuite) TestUnsavedMutationsAreNotVisible() {
	v := s.newVessel("Aurora")
	s.Require().NoError(s.store.Save(s.ctx, v))

	loaded, err := s.store.FindByID(s.ctx, v.ID())
	s.Require().NoError(err)
	s.Require().NoError(loaded.Undock(s.now.Add(time.Hour)))

	again, err := s.store.FindByID(s.ctx, v.ID())
	s.Require().NoError(err)
	s.True(again.IsParked())

	s.Require().NoError(s.store.Save(s.ctx, loaded))
	again, err = s.store.FindByID(s.ctx, v.ID())
	s.Require().NoError(err)
	s.False(again.IsParked())
	s.Len(again.PreviousStops(), 1)
}

func (s *InMemoryStoreSuite) TestLastWriteWins() {
	v := s.newVessel("Aurora")
	s.Require().NoError(s.store.Save(s.ctx, v))

	first, err := s.store.FindByID(s.ctx, v.ID())
	s.Require().NoError(err)
	second, err := s.store.FindByID(s.ctx, v.ID())
	s.Require().NoError(err)

	s.Require().NoError(first.Undock(s.now.Add(time.Hour)))
	s.Require().NoError(s.store.Save(s.ctx, first))
	s.Require().NoError(s.store.Save(s.ctx, second))

	got, err := s.store.FindByID(s.ctx, v.ID())
	s.Require().NoError(err)
	s.True(got.IsParked())
}

func (s *InMemoryStoreSuite) TestFindAllOrderedByName() {
	for _, name := range []string{"Zephyr", "Aurora", "Maersk"} {
		s.Require().NoError(s.store.Save(s.ctx, s.newVessel(name)))
	}

	all, err := s.store.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Aurora", all[0].Name())
	s.Equal("Zephyr", all[2].Name())
}

func (s *InMemoryStoreSuite) TestDelete() {
	v := s.newVessel("Aurora")
	s.Require().NoError(s.store.Save(s.ctx, v))
	s.Require().NoError(s.store.Delete(s.ctx, v))

	_, err := s.store.FindByID(s.ctx, v.ID())
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Delete(s.ctx, v), sentinel.ErrNotFound)
}
