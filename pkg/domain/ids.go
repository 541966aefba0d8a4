// Package domain holds the typed identifiers shared across bounded contexts.
//
// Identifiers are opaque 36-character strings. Fresh identifiers are random
// UUIDs, but rehydrated identifiers are only checked for shape: storage may
// hold ids minted elsewhere.
package domain

import "github.com/google/uuid"

// IDLength is the exact length of every identifier.
const IDLength = 36

type (
	PortID   string
	StopID   string
	VesselID string
	UserID   string
)

func NewPortID() PortID     { return PortID(uuid.NewString()) }
func NewStopID() StopID     { return StopID(uuid.NewString()) }
func NewVesselID() VesselID { return VesselID(uuid.NewString()) }
func NewUserID() UserID     { return UserID(uuid.NewString()) }

func (id PortID) String() string   { return string(id) }
func (id StopID) String() string   { return string(id) }
func (id VesselID) String() string { return string(id) }
func (id UserID) String() string   { return string(id) }

func (id PortID) Valid() bool   { return ValidID(string(id)) }
func (id StopID) Valid() bool   { return ValidID(string(id)) }
func (id VesselID) Valid() bool { return ValidID(string(id)) }
func (id UserID) Valid() bool   { return ValidID(string(id)) }

// ValidID reports whether s has the identifier shape. Length is measured in
// bytes, so multi-byte runes count towards the limit.
func ValidID(s string) bool {
	return len(s) == IDLength
}
