package port

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	"shiptrack/pkg/platform/sentinel"
	"shiptrack/pkg/platform/tx"
)

const pgForeignKeyViolation = "23503"

const selectPorts = `SELECT id, name, capacity, country, city, lat, long FROM ports`

// PostgresStore persists ports in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed port store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindAll(ctx context.Context) ([]*models.Port, error) {
	rows, err := tx.ExecutorFrom(ctx, s.db).QueryContext(ctx, selectPorts+` ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list ports: %w", err)
	}
	defer rows.Close()

	var ports []*models.Port
	for rows.Next() {
		p, err := scanPort(rows)
		if err != nil {
			return nil, err
		}
		ports = append(ports, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ports: %w", err)
	}
	return ports, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, portID id.PortID) (*models.Port, error) {
	row := tx.ExecutorFrom(ctx, s.db).QueryRowContext(ctx, selectPorts+` WHERE id = $1`, portID.String())
	p, err := scanPort(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *PostgresStore) Save(ctx context.Context, port *models.Port) error {
	var lat, long sql.NullFloat64
	if c := port.Coordinates(); c != nil {
		lat = sql.NullFloat64{Float64: c.Lat, Valid: true}
		long = sql.NullFloat64{Float64: c.Long, Valid: true}
	}
	query := `
		INSERT INTO ports (id, name, capacity, country, city, lat, long)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			capacity = EXCLUDED.capacity,
			country = EXCLUDED.country,
			city = EXCLUDED.city,
			lat = EXCLUDED.lat,
			long = EXCLUDED.long
	`
	_, err := tx.ExecutorFrom(ctx, s.db).ExecContext(ctx, query,
		port.ID().String(), port.Name(), port.Capacity(), port.Country(), port.City(), lat, long)
	if err != nil {
		return fmt.Errorf("save port: %w", err)
	}
	return nil
}

// Delete removes a port. It returns sentinel.ErrConflict while stops still
// reference the port.
func (s *PostgresStore) Delete(ctx context.Context, port *models.Port) error {
	res, err := tx.ExecutorFrom(ctx, s.db).ExecContext(ctx, `DELETE FROM ports WHERE id = $1`, port.ID().String())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("delete port %s: %w", port.ID(), sentinel.ErrConflict)
		}
		return fmt.Errorf("delete port: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete port: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPort(row rowScanner) (*models.Port, error) {
	var (
		portID, name, country, city string
		capacity                    int
		lat, long                   sql.NullFloat64
	)
	if err := row.Scan(&portID, &name, &capacity, &country, &city, &lat, &long); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan port: %w", err)
	}

	var coords *models.Coordinates
	if lat.Valid && long.Valid {
		coords = &models.Coordinates{Lat: lat.Float64, Long: long.Float64}
	}
	p, err := models.LoadPort(id.PortID(portID), name, capacity, country, city, coords)
	if err != nil {
		return nil, fmt.Errorf("load port %s: %w", portID, err)
	}
	return p, nil
}
