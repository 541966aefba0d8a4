package handler

import (
	"time"

	"shiptrack/internal/tracking/models"
	"shiptrack/internal/tracking/service"
)

// PortResponse is the JSON view of a port. Coordinates are [lat, long] or null.
type PortResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Capacity    int        `json:"capacity"`
	Country     string     `json:"country"`
	City        string     `json:"city"`
	Coordinates *[]float64 `json:"coordinates"`
}

// StopResponse is the JSON view of a stop.
type StopResponse struct {
	ID      string     `json:"id"`
	PortID  string     `json:"portId"`
	DateIn  *time.Time `json:"dateIn"`
	DateOut *time.Time `json:"dateOut"`
}

// VesselResponse is the JSON view of a vessel with its three stop slots.
type VesselResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Ownership     string         `json:"ownership"`
	Status        string         `json:"status"`
	Year          int            `json:"year"`
	CurrentStop   *StopResponse  `json:"currentStop"`
	PreviousStops []StopResponse `json:"previousStops"`
	NextStops     []StopResponse `json:"nextStops"`
}

// ItineraryStopResponse is a stop with its derived status and port details.
// Port is null when the port no longer exists.
type ItineraryStopResponse struct {
	StopResponse
	Status string             `json:"status"`
	Port   *ItineraryPortView `json:"port"`
}

type ItineraryPortView struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
}

// ItineraryResponse lists a vessel's stops in voyage order.
type ItineraryResponse struct {
	VesselID string                  `json:"vesselId"`
	Status   string                  `json:"status"`
	Stops    []ItineraryStopResponse `json:"stops"`
}

func toPortResponse(p *models.Port) PortResponse {
	resp := PortResponse{
		ID:       p.ID().String(),
		Name:     p.Name(),
		Capacity: p.Capacity(),
		Country:  p.Country(),
		City:     p.City(),
	}
	if c := p.Coordinates(); c != nil {
		coords := []float64{c.Lat, c.Long}
		resp.Coordinates = &coords
	}
	return resp
}

func toPortResponses(ports []*models.Port) []PortResponse {
	out := make([]PortResponse, 0, len(ports))
	for _, p := range ports {
		out = append(out, toPortResponse(p))
	}
	return out
}

func toStopResponse(s *models.Stop) StopResponse {
	return StopResponse{
		ID:      s.ID().String(),
		PortID:  s.PortID().String(),
		DateIn:  s.DateIn(),
		DateOut: s.DateOut(),
	}
}

func toStopResponses(stops []*models.Stop) []StopResponse {
	out := make([]StopResponse, 0, len(stops))
	for _, s := range stops {
		out = append(out, toStopResponse(s))
	}
	return out
}

func toVesselResponse(v *models.Vessel) VesselResponse {
	resp := VesselResponse{
		ID:            v.ID().String(),
		Name:          v.Name(),
		Ownership:     v.Ownership(),
		Status:        v.Status().String(),
		Year:          v.Year(),
		PreviousStops: toStopResponses(v.PreviousStops()),
		NextStops:     toStopResponses(v.NextStops()),
	}
	if current := v.CurrentStop(); current != nil {
		stop := toStopResponse(current)
		resp.CurrentStop = &stop
	}
	return resp
}

func toVesselResponses(vessels []*models.Vessel) []VesselResponse {
	out := make([]VesselResponse, 0, len(vessels))
	for _, v := range vessels {
		out = append(out, toVesselResponse(v))
	}
	return out
}

func toItineraryResponse(it *service.Itinerary) ItineraryResponse {
	resp := ItineraryResponse{
		VesselID: it.Vessel.ID().String(),
		Status:   it.Vessel.Status().String(),
		Stops:    make([]ItineraryStopResponse, 0, len(it.Stops)),
	}
	for _, s := range it.Stops {
		stop := ItineraryStopResponse{
			StopResponse: toStopResponse(s.Stop),
			Status:       string(s.Status),
		}
		if s.Port != nil {
			stop.Port = &ItineraryPortView{Name: s.Port.Name(), Country: s.Port.Country(), City: s.Port.City()}
		}
		resp.Stops = append(resp.Stops, stop)
	}
	return resp
}
