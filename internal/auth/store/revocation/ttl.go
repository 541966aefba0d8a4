package revocation

import (
	"fmt"
	"time"

	dErrors "shiptrack/pkg/domain-errors"
)

func validateTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("ttl must be positive, got %s", ttl))
	}
	return nil
}
