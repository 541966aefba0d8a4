//go:build integration

package port_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"shiptrack/internal/platform/postgres"
	"shiptrack/internal/tracking/models"
	"shiptrack/internal/tracking/store/port"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
	"shiptrack/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *port.PostgresStore
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
	s.store = port.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "stops", "vessels", "ports"))
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	p, err := models.NewPort("Lisbon", 120, "Portugal", "Lisbon", &models.Coordinates{Lat: 38.7, Long: -9.1})
	s.Require().NoError(err)

	s.Require().NoError(s.store.Save(ctx, p))
	got, err := s.store.FindByID(ctx, p.ID())
	s.Require().NoError(err)
	s.Equal(p, got)

	updated, err := models.LoadPort(p.ID(), "Lisboa", 150, "Portugal", "Lisboa", nil)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, updated))

	all, err := s.store.FindAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Lisboa", all[0].Name())
	s.Nil(all[0].Coordinates())
}

func (s *PostgresStoreSuite) TestDeleteReferencedPortConflicts() {
	ctx := context.Background()
	p, err := models.NewPort("Santos", 30, "Brazil", "Santos", nil)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Save(ctx, p))

	vesselID := id.NewVesselID()
	_, err = s.postgres.DB.ExecContext(ctx,
		`INSERT INTO vessels (id, name, ownership, status, year) VALUES ($1, 'A', 'B', 'Parked', 2000)`, vesselID.String())
	s.Require().NoError(err)
	_, err = s.postgres.DB.ExecContext(ctx,
		`INSERT INTO stops (id, vessel_id, port_id, seq, date_in) VALUES ($1, $2, $3, 0, now())`,
		id.NewStopID().String(), vesselID.String(), p.ID().String())
	s.Require().NoError(err)

	s.ErrorIs(s.store.Delete(ctx, p), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestFindMissing() {
	_, err := s.store.FindByID(context.Background(), id.NewPortID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}
