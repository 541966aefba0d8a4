package models

import (
	"strings"
	"time"

	id "shiptrack/pkg/domain"
)

// VesselStatus is either Sailing or Parked.
type VesselStatus string

const (
	VesselStatusSailing VesselStatus = "Sailing"
	VesselStatusParked  VesselStatus = "Parked"
)

func (s VesselStatus) IsValid() bool {
	return s == VesselStatusSailing || s == VesselStatusParked
}

func (s VesselStatus) String() string {
	return string(s)
}

// MinVesselYear is the earliest accepted build year.
const MinVesselYear = 1900

// Vessel is the aggregate root for a ship and its itinerary.
//
// Invariants:
//   - ID is a 36-character identifier
//   - Name and Ownership are non-empty after trimming
//   - Year is at least MinVesselYear
//   - the vessel has a current stop or at least one previous stop
//
// State machine (enforced by Dock and Undock, trusted by LoadVessel):
//   - Parked: CurrentStop is set
//   - Sailing: CurrentStop is nil
//
// NextStops is a FIFO queue; index 0 is the next port of call.
// PreviousStops is chronological and only ever appended to.
type Vessel struct {
	id            id.VesselID
	name          string
	ownership     string
	status        VesselStatus
	year          int
	currentStop   *Stop
	previousStops []*Stop
	nextStops     []*Stop
}

// NewVessel creates a vessel moored at portID, with an arrival stamped at now.
func NewVessel(name, ownership string, year int, portID id.PortID, now time.Time) (*Vessel, error) {
	if !portID.Valid() {
		return nil, invalid("vessel port id must be 36 characters")
	}
	origin, err := NewStop(portID)
	if err != nil {
		return nil, err
	}
	if err := origin.RegisterDateIn(now); err != nil {
		return nil, err
	}
	return LoadVessel(id.NewVesselID(), name, ownership, VesselStatusParked, year, origin, nil, nil)
}

// LoadVessel rehydrates a vessel from storage. Stop slices are copied.
func LoadVessel(
	vesselID id.VesselID,
	name, ownership string,
	status VesselStatus,
	year int,
	currentStop *Stop,
	previousStops, nextStops []*Stop,
) (*Vessel, error) {
	v := &Vessel{
		id:            vesselID,
		name:          strings.TrimSpace(name),
		ownership:     strings.TrimSpace(ownership),
		status:        status,
		year:          year,
		currentStop:   currentStop,
		previousStops: append([]*Stop{}, previousStops...),
		nextStops:     append([]*Stop{}, nextStops...),
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vessel) validate() error {
	switch {
	case !v.id.Valid():
		return invalid("vessel id must be 36 characters")
	case v.name == "":
		return invalid("vessel name is required")
	case v.ownership == "":
		return invalid("vessel ownership is required")
	case v.year < MinVesselYear:
		return invalid("vessel year must be 1900 or later")
	case !v.status.IsValid():
		return invalid("vessel status must be Sailing or Parked")
	case v.currentStop == nil && len(v.previousStops) == 0:
		return invalid("vessel must have a current or previous stop")
	}
	return nil
}

// CanDock checks that the vessel is sailing towards a planned stop.
func (v *Vessel) CanDock() error {
	if v.status == VesselStatusParked {
		return ErrAlreadyParked
	}
	if len(v.nextStops) == 0 {
		return ErrNoNextStop
	}
	return v.nextStops[0].CanRegisterDateIn()
}

// Dock pops the head of the next stops, stamps its arrival and parks there.
// The vessel is unchanged when it fails.
func (v *Vessel) Dock(now time.Time) error {
	if err := v.CanDock(); err != nil {
		return err
	}
	head := v.nextStops[0]
	if err := head.RegisterDateIn(now); err != nil {
		return err
	}
	v.nextStops = append([]*Stop{}, v.nextStops[1:]...)
	v.currentStop = head
	v.status = VesselStatusParked
	return nil
}

// CanUndock checks that the vessel is parked at a stop it can leave.
func (v *Vessel) CanUndock() error {
	if v.status == VesselStatusSailing {
		return ErrAlreadySailing
	}
	if v.currentStop == nil {
		return ErrNoCurrentStop
	}
	return v.currentStop.CanRegisterDateOut()
}

// Undock stamps departure from the current stop and moves it to the
// previous stops. Next stops are not required.
func (v *Vessel) Undock(now time.Time) error {
	if err := v.CanUndock(); err != nil {
		return err
	}
	if err := v.currentStop.RegisterDateOut(now); err != nil {
		return err
	}
	v.previousStops = append(v.previousStops, v.currentStop)
	v.currentStop = nil
	v.status = VesselStatusSailing
	return nil
}

// LastPortID is the most recent port the vessel touched: the current stop's
// port when parked, otherwise the last previous stop's port.
func (v *Vessel) LastPortID() id.PortID {
	if v.currentStop != nil {
		return v.currentStop.portID
	}
	if n := len(v.previousStops); n > 0 {
		return v.previousStops[n-1].portID
	}
	return ""
}

// CanReplaceAllNextStops rejects an itinerary that starts at the last port
// touched or visits the same port twice in a row. An empty itinerary is
// always accepted.
func (v *Vessel) CanReplaceAllNextStops(stops []*Stop) error {
	if len(stops) == 0 {
		return nil
	}
	if stops[0].portID == v.LastPortID() {
		return ErrDuplicateAdjacentPort
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].portID == stops[i-1].portID {
			return ErrDuplicateAdjacentPort
		}
	}
	return nil
}

// ReplaceAllNextStops swaps the whole next stops queue.
func (v *Vessel) ReplaceAllNextStops(stops []*Stop) error {
	if err := v.CanReplaceAllNextStops(stops); err != nil {
		return err
	}
	v.nextStops = append([]*Stop{}, stops...)
	return nil
}

func (v *Vessel) ID() id.VesselID      { return v.id }
func (v *Vessel) Name() string         { return v.name }
func (v *Vessel) Ownership() string    { return v.ownership }
func (v *Vessel) Status() VesselStatus { return v.status }
func (v *Vessel) Year() int            { return v.year }
func (v *Vessel) IsParked() bool       { return v.status == VesselStatusParked }

// CurrentStop returns a copy of the current stop, or nil when sailing.
func (v *Vessel) CurrentStop() *Stop {
	return v.currentStop.clone()
}

// PreviousStops returns copies of the completed stops, oldest first.
func (v *Vessel) PreviousStops() []*Stop {
	return cloneStops(v.previousStops)
}

// NextStops returns copies of the planned stops, next port of call first.
func (v *Vessel) NextStops() []*Stop {
	return cloneStops(v.nextStops)
}

// Stops returns copies of every stop in itinerary order: previous, current, next.
func (v *Vessel) Stops() []*Stop {
	all := cloneStops(v.previousStops)
	if v.currentStop != nil {
		all = append(all, v.currentStop.clone())
	}
	return append(all, cloneStops(v.nextStops)...)
}

func cloneStops(stops []*Stop) []*Stop {
	out := make([]*Stop, len(stops))
	for i, s := range stops {
		out[i] = s.clone()
	}
	return out
}
