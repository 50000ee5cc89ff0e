package youtube

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

var (
	// ErrQuotaExceeded marks Data API calls rejected for quota reasons.
	// Callers treat it as recoverable but must log it distinctly from
	// ErrNotFound, since both degrade to the same default behavior.
	ErrQuotaExceeded = errors.New("youtube api quota exceeded")
	// ErrNotFound marks lookups for channels or videos that do not exist.
	ErrNotFound = errors.New("not found on youtube")
)

var quotaReasons = map[string]bool{
	"quotaExceeded":         true,
	"dailyLimitExceeded":    true,
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
}

// wrapAPIError maps googleapi errors onto the package's error taxonomy so
// callers can distinguish quota exhaustion from genuine not-found results.
func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	if apiErr.Code == 403 {
		for _, item := range apiErr.Errors {
			if quotaReasons[item.Reason] {
				return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
			}
		}
	}

	if apiErr.Code == 404 {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	return err
}
