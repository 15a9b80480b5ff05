package afterpay

import (
	"fmt"

	"github.com/google/go-querystring/query"
)

type trackingParams struct {
	TrackingID string `url:"t"`
	SessionID  string `url:"s"`
}

// TrackingURL builds the profile tracking pixel URL embedded into the
// checkout page when the customer consented.
func TrackingURL(base, trackingID, sessionID string) (string, error) {
	v, err := query.Values(trackingParams{TrackingID: trackingID, SessionID: sessionID})
	if err != nil {
		return "", fmt.Errorf("encode tracking params: %w", err)
	}
	return base + "?" + v.Encode(), nil
}
