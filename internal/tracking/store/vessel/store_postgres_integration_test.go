//go:build integration

package vessel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"shiptrack/internal/platform/postgres"
	"shiptrack/internal/tracking/models"
	"shiptrack/internal/tracking/store/port"
	"shiptrack/internal/tracking/store/vessel"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
	"shiptrack/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	ports    *port.PostgresStore
	store    *vessel.PostgresStore
	now      time.Time
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
	s.ports = port.NewPostgres(s.postgres.DB)
	s.store = vessel.NewPostgres(s.postgres.DB)
	s.now = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "stops", "vessels", "ports"))
}

func (s *PostgresStoreSuite) newPort(name string) *models.Port {
	p, err := models.NewPort(name, 10, "Country", name, nil)
	s.Require().NoError(err)
	s.Require().NoError(s.ports.Save(context.Background(), p))
	return p
}

func (s *PostgresStoreSuite) TestVoyageRoundTrip() {
	ctx := context.Background()
	lisbon, porto, vigo := s.newPort("Lisbon"), s.newPort("Porto"), s.newPort("Vigo")

	v, err := models.NewVessel("Aurora", "Owner", 2001, lisbon.ID(), s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, v))

	s.Require().NoError(v.Undock(s.now.Add(time.Hour)))
	toPorto, err := models.NewStop(porto.ID())
	s.Require().NoError(err)
	toVigo, err := models.NewStop(vigo.ID())
	s.Require().NoError(err)
	s.Require().NoError(v.ReplaceAllNextStops([]*models.Stop{toPorto, toVigo}))
	s.Require().NoError(v.Dock(s.now.Add(5 * time.Hour)))
	s.Require().NoError(s.store.Save(ctx, v))

	got, err := s.store.FindByID(ctx, v.ID())
	s.Require().NoError(err)
	s.True(got.IsParked())
	s.Equal(porto.ID(), got.CurrentStop().PortID())
	s.Require().Len(got.PreviousStops(), 1)
	s.Equal(lisbon.ID(), got.PreviousStops()[0].PortID())
	s.Require().Len(got.NextStops(), 1)
	s.Equal(vigo.ID(), got.NextStops()[0].PortID())
	s.True(got.CurrentStop().DateIn().Equal(s.now.Add(5 * time.Hour)))
}

func (s *PostgresStoreSuite) TestUnknownPortConflict() {
	ctx := context.Background()
	lisbon := s.newPort("Lisbon")

	v, err := models.NewVessel("Aurora", "Owner", 2001, lisbon.ID(), s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, v))

	ghost, err := models.NewStop(id.NewPortID())
	s.Require().NoError(err)
	s.Require().NoError(v.ReplaceAllNextStops([]*models.Stop{ghost}))
	s.ErrorIs(s.store.Save(ctx, v), sentinel.ErrConflict)

	got, err := s.store.FindByID(ctx, v.ID())
	s.Require().NoError(err)
	s.Empty(got.NextStops())
}

func (s *PostgresStoreSuite) TestDeleteCascadesStops() {
	ctx := context.Background()
	lisbon := s.newPort("Lisbon")

	v, err := models.NewVessel("Aurora", "Owner", 2001, lisbon.ID(), s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, v))
	s.Require().NoError(s.store.Delete(ctx, v))

	_, err = s.store.FindByID(ctx, v.ID())
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.NoError(s.ports.Delete(ctx, lisbon))
}
