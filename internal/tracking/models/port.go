package models

import (
	"strings"

	id "shiptrack/pkg/domain"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat  float64
	Long float64
}

func (c Coordinates) valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Long >= -180 && c.Long <= 180
}

// Port is an immutable dock location. Updates replace the value.
//
// Invariants:
//   - ID is a 36-character identifier
//   - Name, Country and City are non-empty after trimming
//   - Capacity is positive
//   - Coordinates are absent, or within [-90,90] x [-180,180]
type Port struct {
	id          id.PortID
	name        string
	capacity    int
	country     string
	city        string
	coordinates *Coordinates
}

// NewPort creates a port with a fresh identifier.
func NewPort(name string, capacity int, country, city string, coordinates *Coordinates) (*Port, error) {
	return LoadPort(id.NewPortID(), name, capacity, country, city, coordinates)
}

// LoadPort rehydrates a port from storage. It validates exactly like NewPort.
func LoadPort(portID id.PortID, name string, capacity int, country, city string, coordinates *Coordinates) (*Port, error) {
	p := &Port{
		id:       portID,
		name:     strings.TrimSpace(name),
		capacity: capacity,
		country:  strings.TrimSpace(country),
		city:     strings.TrimSpace(city),
	}
	if coordinates != nil {
		c := *coordinates
		p.coordinates = &c
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Port) validate() error {
	switch {
	case !p.id.Valid():
		return invalid("port id must be 36 characters")
	case p.name == "":
		return invalid("port name is required")
	case p.country == "":
		return invalid("port country is required")
	case p.city == "":
		return invalid("port city is required")
	case p.capacity <= 0:
		return invalid("port capacity must be positive")
	case p.coordinates != nil && !p.coordinates.valid():
		return invalid("port coordinates out of range")
	}
	return nil
}

func (p *Port) ID() id.PortID   { return p.id }
func (p *Port) Name() string    { return p.name }
func (p *Port) Capacity() int   { return p.capacity }
func (p *Port) Country() string { return p.country }
func (p *Port) City() string    { return p.city }

// Coordinates returns a copy of the coordinates, or nil when absent.
func (p *Port) Coordinates() *Coordinates {
	if p.coordinates == nil {
		return nil
	}
	c := *p.coordinates
	return &c
}
