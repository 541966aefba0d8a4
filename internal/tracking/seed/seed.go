// Package seed loads a port catalogue file and creates its ports.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"shiptrack/internal/tracking/models"
	dErrors "shiptrack/pkg/domain-errors"
)

// PortEntry is one catalogue item. Coordinates are [lat, long] and optional.
// JSON catalogues parse too since YAML is a superset.
type PortEntry struct {
	Name        string    `yaml:"name"`
	Capacity    int       `yaml:"capacity"`
	Country     string    `yaml:"country"`
	City        string    `yaml:"city"`
	Coordinates []float64 `yaml:"coordinates"`
}

func (e PortEntry) coordinates() (*models.Coordinates, error) {
	switch len(e.Coordinates) {
	case 0:
		return nil, nil
	case 2:
		return &models.Coordinates{Lat: e.Coordinates[0], Long: e.Coordinates[1]}, nil
	default:
		return nil, dErrors.New(dErrors.CodeValidation, "coordinates must be [lat, long]")
	}
}

// Load decodes a catalogue.
func Load(r io.Reader) ([]PortEntry, error) {
	var entries []PortEntry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode port catalogue: %w", err)
	}
	return entries, nil
}

func LoadFile(path string) ([]PortEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open port catalogue %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// portCreator is satisfied by service.CreatePort.
type portCreator interface {
	Execute(ctx context.Context, name string, capacity int, country, city string, coordinates *models.Coordinates) (*models.Port, error)
}

type Seeder struct {
	creator portCreator
	logger  *slog.Logger
}

func NewSeeder(creator portCreator, logger *slog.Logger) *Seeder {
	return &Seeder{creator: creator, logger: logger}
}

// Run creates every entry in order and stops at the first failure. It
// returns the ports created before that point.
func (s *Seeder) Run(ctx context.Context, entries []PortEntry) ([]*models.Port, error) {
	created := make([]*models.Port, 0, len(entries))
	for i, e := range entries {
		coords, err := e.coordinates()
		if err != nil {
			return created, fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}
		port, err := s.creator.Execute(ctx, e.Name, e.Capacity, e.Country, e.City, coords)
		if err != nil {
			return created, fmt.Errorf("entry %d (%s): %w", i, e.Name, err)
		}
		created = append(created, port)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "ports seeded", "count", len(created))
	}
	return created, nil
}
