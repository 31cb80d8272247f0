package tracking

import "errors"

// Sentinel errors for the tracking service layer.
var (
	ErrMissingCampaign = errors.New("campaign id is required")
	ErrMissingEmail    = errors.New("customer email is required")
	ErrMissingPart     = errors.New("part id is required")
)

// IsBadRequest reports whether err is a caller input error (HTTP 400)
// as opposed to a store failure (HTTP 500).
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrMissingCampaign) ||
		errors.Is(err, ErrMissingEmail) ||
		errors.Is(err, ErrMissingPart)
}
