package models

import dErrors "shiptrack/pkg/domain-errors"

// Transition failures. Each is comparable with errors.Is.
var (
	ErrAlreadyParked         = dErrors.New(dErrors.CodeInvariantViolation, "vessel is already parked")
	ErrAlreadySailing        = dErrors.New(dErrors.CodeInvariantViolation, "vessel is already sailing")
	ErrNoNextStop            = dErrors.New(dErrors.CodeInvariantViolation, "vessel has no next stop")
	ErrNoCurrentStop         = dErrors.New(dErrors.CodeInvariantViolation, "vessel has no current stop")
	ErrDuplicateAdjacentPort = dErrors.New(dErrors.CodeInvariantViolation, "consecutive stops must be at different ports")
	ErrDateInAfterDateOut    = dErrors.New(dErrors.CodeInvariantViolation, "dateIn can not be registered after dateOut")
	ErrDateInMissing         = dErrors.New(dErrors.CodeInvariantViolation, "dateIn was not registered")
)

func invalid(msg string) error {
	return dErrors.New(dErrors.CodeValidation, msg)
}
