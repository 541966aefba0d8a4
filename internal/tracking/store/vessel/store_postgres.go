package vessel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
	"shiptrack/pkg/platform/tx"
)

const pgForeignKeyViolation = "23503"

const (
	selectVessels = `SELECT id, name, ownership, status, year FROM vessels`
	selectStops   = `SELECT id, vessel_id, port_id, date_in, date_out FROM stops`
)

// PostgresStore persists vessels in PostgreSQL. Stops live in their own table,
// ordered by seq: previous stops first, then the current stop, then next stops.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed vessel store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.Vessel, error) {
	exec := tx.ExecutorFrom(ctx, s.db)

	rows, err := exec.QueryContext(ctx, selectVessels+` ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list vessels: %w", err)
	}
	var heads []vesselRow
	for rows.Next() {
		var r vesselRow
		if err := rows.Scan(&r.id, &r.name, &r.ownership, &r.status, &r.year); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan vessel: %w", err)
		}
		heads = append(heads, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vessels: %w", err)
	}
	if len(heads) == 0 {
		return nil, nil
	}

	stops, err := s.queryStops(ctx, exec, selectStops+` ORDER BY vessel_id, seq`)
	if err != nil {
		return nil, err
	}

	vessels := make([]*models.Vessel, 0, len(heads))
	for _, h := range heads {
		v, err := h.toModel(stops[h.id])
		if err != nil {
			return nil, err
		}
		vessels = append(vessels, v)
	}
	return vessels, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, vesselID id.VesselID) (*models.Vessel, error) {
	exec := tx.ExecutorFrom(ctx, s.db)

	var h vesselRow
	err := exec.QueryRowContext(ctx, selectVessels+` WHERE id = $1`, vesselID.String()).
		Scan(&h.id, &h.name, &h.ownership, &h.status, &h.year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find vessel: %w", err)
	}

	stops, err := s.queryStops(ctx, exec, selectStops+` WHERE vessel_id = $1 ORDER BY seq`, vesselID.String())
	if err != nil {
		return nil, err
	}
	return h.toModel(stops[h.id])
}

// Save upserts the vessel and replaces its stops in one transaction. It
// returns sentinel.ErrConflict when a stop references an unknown port.
func (s *PostgresStore) Save(ctx context.Context, vessel *models.Vessel) error {
	return tx.RunInTx(ctx, s.db, func(ctx context.Context) error {
		exec := tx.ExecutorFrom(ctx, s.db)

		_, err := exec.ExecContext(ctx, `
			INSERT INTO vessels (id, name, ownership, status, year)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				ownership = EXCLUDED.ownership,
				status = EXCLUDED.status,
				year = EXCLUDED.year
		`, vessel.ID().String(), vessel.Name(), vessel.Ownership(), vessel.Status().String(), vessel.Year())
		if err != nil {
			return fmt.Errorf("save vessel: %w", err)
		}

		if _, err := exec.ExecContext(ctx, `DELETE FROM stops WHERE vessel_id = $1`, vessel.ID().String()); err != nil {
			return fmt.Errorf("clear vessel stops: %w", err)
		}

		for seq, stop := range vessel.Stops() {
			_, err := exec.ExecContext(ctx, `
				INSERT INTO stops (id, vessel_id, port_id, seq, date_in, date_out)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, stop.ID().String(), vessel.ID().String(), stop.PortID().String(), seq,
				nullTime(stop.DateIn()), nullTime(stop.DateOut()))
			if err != nil {
				var pqErr *pq.Error
				if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
					return fmt.Errorf("save stop at port %s: %w", stop.PortID(), sentinel.ErrConflict)
				}
				return fmt.Errorf("save stop: %w", err)
			}
		}
		return nil
	})
}

// Delete removes the vessel; its stops cascade.
func (s *PostgresStore) Delete(ctx context.Context, vessel *models.Vessel) error {
	res, err := tx.ExecutorFrom(ctx, s.db).ExecContext(ctx, `DELETE FROM vessels WHERE id = $1`, vessel.ID().String())
	if err != nil {
		return fmt.Errorf("delete vessel: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vessel: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryStops(ctx context.Context, exec tx.Executor, query string, args ...any) (map[string][]*models.Stop, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stops: %w", err)
	}
	defer rows.Close()

	byVessel := make(map[string][]*models.Stop)
	for rows.Next() {
		var (
			stopID, vesselID, portID string
			dateIn, dateOut          sql.NullTime
		)
		if err := rows.Scan(&stopID, &vesselID, &portID, &dateIn, &dateOut); err != nil {
			return nil, fmt.Errorf("scan stop: %w", err)
		}
		stop, err := models.LoadStop(id.StopID(stopID), id.PortID(portID), timePtr(dateIn), timePtr(dateOut))
		if err != nil {
			return nil, fmt.Errorf("load stop %s: %w", stopID, err)
		}
		byVessel[vesselID] = append(byVessel[vesselID], stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stops: %w", err)
	}
	return byVessel, nil
}

type vesselRow struct {
	id        string
	name      string
	ownership string
	status    string
	year      int
}

// toModel classifies stops by their derived status. Stops arrive ordered by seq.
func (r vesselRow) toModel(stops []*models.Stop) (*models.Vessel, error) {
	var (
		current        *models.Stop
		previous, next []*models.Stop
	)
	for _, stop := range stops {
		switch stop.Status() {
		case models.StopStatusPrevious:
			previous = append(previous, stop)
		case models.StopStatusCurrent:
			if current != nil {
				return nil, fmt.Errorf("vessel %s has more than one current stop", r.id)
			}
			current = stop
		case models.StopStatusNext:
			next = append(next, stop)
		}
	}

	v, err := models.LoadVessel(id.VesselID(r.id), r.name, r.ownership, models.VesselStatus(r.status), r.year, current, previous, next)
	if err != nil {
		return nil, fmt.Errorf("load vessel %s: %w", r.id, err)
	}
	return v, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
