package payment

import (
	"fmt"
	"strings"

	"AfterpayEngine/internal/controller/apperror"
)

// Mode selects the provider environment.
type Mode string

const (
	ModeLive Mode = "live"
	ModeTest Mode = "test"
)

// MerchantConfig carries the per-sales-channel settings the engine needs.
type MerchantConfig struct {
	Mode       Mode
	LiveAPIURL string
	TestAPIURL string
	// APIKeys maps upper-case ISO 3166-1 alpha-2 country codes to the
	// merchant's per-country authentication keys.
	APIKeys map[string]string

	CaptureOrderStates    []string
	CapturePaymentStates  []string
	CaptureDeliveryStates []string

	// ProfileTrackingSetup is disabled, optional or mandatory.
	ProfileTrackingSetup string
	ProfileTrackingID    string
	TrackingScriptURL    string

	ShopURL string
}

// ProfileTrackingEnabled reports whether risk profile tracking data may be
// attached to requests at all.
func (c MerchantConfig) ProfileTrackingEnabled() bool {
	return c.ProfileTrackingSetup == "optional" || c.ProfileTrackingSetup == "mandatory"
}

// apiSession is the resolved connection context for one sequence of provider
// calls. It is passed by value so concurrent requests for different countries
// or modes never observe each other's state.
type apiSession struct {
	url  string
	key  string
	mode Mode
}

func (s apiSession) headers() map[string]string {
	return map[string]string{
		"Cache-Control": "no-cache",
		"X-Auth-Key":    s.key,
	}
}

func (s apiSession) endpoint(path string) string {
	return s.url + path
}

// newAPISession picks the API key for the billing country and the base URL
// for the mode. An explicit mode overrides the configured one, used when
// capturing an order authorized before a mode switch.
func newAPISession(cfg MerchantConfig, countryISO string, mode Mode) (apiSession, error) {
	if mode == "" {
		mode = cfg.Mode
	}

	key, ok := cfg.APIKeys[strings.ToUpper(countryISO)]
	if !ok {
		return apiSession{}, fmt.Errorf("%w: payment not available for country %q", apperror.ErrCountryNotSupported, countryISO)
	}

	var url string
	switch mode {
	case ModeLive:
		url = cfg.LiveAPIURL
	case ModeTest:
		url = cfg.TestAPIURL
	default:
		return apiSession{}, fmt.Errorf("%w: unknown mode %q", apperror.ErrAPIConfigNotValid, mode)
	}
	if key == "" || url == "" {
		return apiSession{}, fmt.Errorf("%w: API key or API URL is not defined", apperror.ErrAPIConfigNotValid)
	}

	return apiSession{url: url, key: key, mode: mode}, nil
}
