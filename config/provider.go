package config

import (
	"AfterpayEngine/internal/domain/payment"
)

// MerchantProvider serves merchant settings from the environment. The
// deployment is single-tenant, so every sales channel resolves to the same
// configuration; multi-tenant setups can swap in their own provider.
type MerchantProvider struct {
	cfg Config
}

func NewMerchantProvider(cfg Config) *MerchantProvider {
	return &MerchantProvider{cfg: cfg}
}

func (p *MerchantProvider) Merchant(_ string) (payment.MerchantConfig, error) {
	keys := make(map[string]string)
	for country, key := range map[string]string{
		"DE": p.cfg.APIKeyDE,
		"AT": p.cfg.APIKeyAT,
		"NL": p.cfg.APIKeyNL,
		"BE": p.cfg.APIKeyBE,
	} {
		if key != "" {
			keys[country] = key
		}
	}

	return payment.MerchantConfig{
		Mode:                  payment.Mode(p.cfg.Mode),
		LiveAPIURL:            p.cfg.LiveAPIURL,
		TestAPIURL:            p.cfg.TestAPIURL,
		APIKeys:               keys,
		CaptureOrderStates:    p.cfg.CaptureOrderStates,
		CapturePaymentStates:  p.cfg.CapturePaymentStates,
		CaptureDeliveryStates: p.cfg.CaptureDeliveryStates,
		ProfileTrackingSetup:  p.cfg.ProfileTrackingSetup,
		ProfileTrackingID:     p.cfg.ProfileTrackingID,
		TrackingScriptURL:     p.cfg.TrackingScriptURL,
		ShopURL:               p.cfg.ShopURL,
	}, nil
}
