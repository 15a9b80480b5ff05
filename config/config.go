package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Payment provider API. Mode selects which base URL is used; keys are
	// issued per merchant country.
	Mode       string `env:"AFTERPAY_MODE" envDefault:"test"`
	LiveAPIURL string `env:"AFTERPAY_LIVE_API_URL" envDefault:"https://api.afterpay.io/api/v3/"`
	TestAPIURL string `env:"AFTERPAY_TEST_API_URL" envDefault:"https://sandbox.afterpay.io/api/v3/"`
	APIKeyDE   string `env:"AFTERPAY_API_KEY_DE"`
	APIKeyAT   string `env:"AFTERPAY_API_KEY_AT"`
	APIKeyNL   string `env:"AFTERPAY_API_KEY_NL"`
	APIKeyBE   string `env:"AFTERPAY_API_KEY_BE"`

	HTTPClientTimeout time.Duration `env:"AFTERPAY_HTTP_CLIENT_TIMEOUT" envDefault:"30s"`

	// Capture sweep. All three state sets must be configured or the sweep
	// refuses to run.
	CaptureInterval       time.Duration `env:"CAPTURE_INTERVAL" envDefault:"300s"`
	CaptureOrderStates    []string      `env:"CAPTURE_ORDER_STATES" envSeparator:","`
	CapturePaymentStates  []string      `env:"CAPTURE_PAYMENT_STATES" envSeparator:","`
	CaptureDeliveryStates []string      `env:"CAPTURE_DELIVERY_STATES" envSeparator:","`

	// Risk profile tracking: disabled, optional or mandatory.
	ProfileTrackingSetup string `env:"PROFILE_TRACKING_SETUP" envDefault:"disabled"`
	ProfileTrackingID    string `env:"PROFILE_TRACKING_ID"`
	TrackingScriptURL    string `env:"TRACKING_SCRIPT_URL" envDefault:"https://track.afterpay.io/collect"`

	ShopURL string `env:"SHOP_URL"`

	// Host platform bridge (order mirror, state-machine transitions, cart
	// restore).
	KafkaBrokers             []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTransitionsTopic    string   `env:"KAFKA_TRANSITIONS_TOPIC" envDefault:"host.order-transactions.transitions"`
	KafkaCartRestoreTopic    string   `env:"KAFKA_CART_RESTORE_TOPIC" envDefault:"host.carts.restore"`
	KafkaOrdersTopic         string   `env:"KAFKA_ORDERS_TOPIC" envDefault:"host.orders.snapshots"`
	KafkaOrdersConsumerGroup string   `env:"KAFKA_ORDERS_CONSUMER_GROUP" envDefault:"afterpay-engine"`

	// Payment audit trail. Disabled when no addresses are configured.
	OpensearchURLs          []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexPayments string   `env:"OPENSEARCH_INDEX_PAYMENTS" envDefault:"afterpay-payment-events"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
