package handler

import (
	"strings"

	"shiptrack/internal/tracking/models"
	id "shiptrack/pkg/domain"
	dErrors "shiptrack/pkg/domain-errors"
)

var errInvalidArgs = dErrors.New(dErrors.CodeBadRequest, "invalid args")

// CreatePortRequest is the body of POST /api/ports. Coordinates are [lat, long].
type CreatePortRequest struct {
	Name        string    `json:"name"`
	Capacity    *int      `json:"capacity"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Coordinates []float64 `json:"coordinates"`
}

// Validate checks presence only. Range and shape rules belong to the model.
func (r *CreatePortRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.Name) == "" || r.Capacity == nil || *r.Capacity == 0 ||
		strings.TrimSpace(r.Country) == "" || strings.TrimSpace(r.City) == "" {
		return errInvalidArgs
	}
	if r.Coordinates != nil && len(r.Coordinates) != 2 {
		return dErrors.New(dErrors.CodeBadRequest, "coordinates must be [lat, long]")
	}
	return nil
}

// ParsedCoordinates returns nil when no coordinates were sent.
func (r *CreatePortRequest) ParsedCoordinates() *models.Coordinates {
	if r.Coordinates == nil {
		return nil
	}
	return &models.Coordinates{Lat: r.Coordinates[0], Long: r.Coordinates[1]}
}

// CreateVesselRequest is the body of POST /api/vessels.
type CreateVesselRequest struct {
	Name      string `json:"name"`
	Ownership string `json:"ownership"`
	Year      *int   `json:"year"`
	PortID    string `json:"portId"`
}

func (r *CreateVesselRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Ownership) == "" ||
		r.Year == nil || *r.Year == 0 || r.PortID == "" {
		return errInvalidArgs
	}
	return nil
}

// ReplaceNextStopsRequest is the body of PUT /api/vessels/{id}/replaceNextStops.
// An empty list is valid and clears the itinerary; a missing one is not.
type ReplaceNextStopsRequest struct {
	NextPortIDs *[]string `json:"nextPortIds"`

	parsed []id.PortID
}

func (r *ReplaceNextStopsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.NextPortIDs == nil {
		return errInvalidArgs
	}
	r.parsed = make([]id.PortID, 0, len(*r.NextPortIDs))
	for _, raw := range *r.NextPortIDs {
		r.parsed = append(r.parsed, id.PortID(raw))
	}
	return nil
}

// ParsedPortIDs returns the requested itinerary in order.
func (r *ReplaceNextStopsRequest) ParsedPortIDs() []id.PortID {
	return r.parsed
}
