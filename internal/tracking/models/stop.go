package models

import (
	"time"

	id "shiptrack/pkg/domain"
)

// StopStatus is derived from a stop's dates and never stored.
type StopStatus string

const (
	StopStatusNext     StopStatus = "Next"
	StopStatusCurrent  StopStatus = "Current"
	StopStatusPrevious StopStatus = "Previous"
)

// Stop is one visit of a vessel to a port.
//
// Invariants:
//   - ID and PortID are 36-character identifiers
//   - DateOut is set only when DateIn is set
//   - DateOut's day of month is not before DateIn's
//
// The date ordering check compares day-of-month only. It does not catch a
// DateOut in an earlier month that falls on a later day.
type Stop struct {
	id      id.StopID
	portID  id.PortID
	dateIn  *time.Time
	dateOut *time.Time
}

// NewStop creates a planned stop with no dates.
func NewStop(portID id.PortID) (*Stop, error) {
	return LoadStop(id.NewStopID(), portID, nil, nil)
}

// LoadStop rehydrates a stop from storage.
func LoadStop(stopID id.StopID, portID id.PortID, dateIn, dateOut *time.Time) (*Stop, error) {
	s := &Stop{
		id:      stopID,
		portID:  portID,
		dateIn:  copyTime(dateIn),
		dateOut: copyTime(dateOut),
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Stop) validate() error {
	if !s.id.Valid() {
		return invalid("stop id must be 36 characters")
	}
	if !s.portID.Valid() {
		return invalid("stop port id must be 36 characters")
	}
	if s.dateIn == nil && s.dateOut != nil {
		return ErrDateInAfterDateOut
	}
	if s.dateIn != nil && s.dateOut != nil && s.dateOut.Day() < s.dateIn.Day() {
		return ErrDateInAfterDateOut
	}
	return nil
}

// CanRegisterDateIn fails once the stop has been departed.
func (s *Stop) CanRegisterDateIn() error {
	if s.dateOut != nil {
		return ErrDateInAfterDateOut
	}
	return nil
}

// RegisterDateIn stamps arrival, overwriting any earlier arrival.
func (s *Stop) RegisterDateIn(now time.Time) error {
	if err := s.CanRegisterDateIn(); err != nil {
		return err
	}
	s.dateIn = &now
	return nil
}

// CanRegisterDateOut fails until the stop has been arrived at.
func (s *Stop) CanRegisterDateOut() error {
	if s.dateIn == nil {
		return ErrDateInMissing
	}
	return nil
}

// RegisterDateOut stamps departure.
func (s *Stop) RegisterDateOut(now time.Time) error {
	if err := s.CanRegisterDateOut(); err != nil {
		return err
	}
	s.dateOut = &now
	return nil
}

// Status derives the stop's place in an itinerary from its dates.
func (s *Stop) Status() StopStatus {
	switch {
	case s.dateIn == nil:
		return StopStatusNext
	case s.dateOut == nil:
		return StopStatusCurrent
	default:
		return StopStatusPrevious
	}
}

func (s *Stop) ID() id.StopID       { return s.id }
func (s *Stop) PortID() id.PortID   { return s.portID }
func (s *Stop) DateIn() *time.Time  { return copyTime(s.dateIn) }
func (s *Stop) DateOut() *time.Time { return copyTime(s.dateOut) }

func (s *Stop) clone() *Stop {
	if s == nil {
		return nil
	}
	return &Stop{id: s.id, portID: s.portID, dateIn: copyTime(s.dateIn), dateOut: copyTime(s.dateOut)}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
