// Package config holds the process-wide gateway configuration: credentials,
// default request parameters and endpoints.
//
// A Config is written once at startup and read by every call afterwards.
// Setters are safe to call concurrently with readers, but callers are
// expected to finish configuration before issuing requests.
package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"payment_gateway_client/internal/domain/entities"

	"github.com/joho/godotenv"
)

// Default parameter names understood by the action services.
const (
	ParamMerchantAccount = "merchantAccount"
)

const (
	defaultPaymentEndpoint   = "https://pal-test.adyen.com/pal/servlet/soap/Payment"
	defaultRecurringEndpoint = "https://pal-test.adyen.com/pal/servlet/soap/Recurring"
	defaultTimeout           = 30 * time.Second
)

// Credentials authenticate every call at the transport level.
type Credentials struct {
	Username string
	Password string
}

// Config is the explicit replacement for global gateway state.
type Config struct {
	mu                sync.RWMutex
	credentials       Credentials
	defaults          map[string]string
	paymentEndpoint   string
	recurringEndpoint string
	timeout           time.Duration
}

// New returns an empty configuration pointing at the test endpoints.
func New() *Config {
	return &Config{
		defaults:          map[string]string{},
		paymentEndpoint:   defaultPaymentEndpoint,
		recurringEndpoint: defaultRecurringEndpoint,
		timeout:           defaultTimeout,
	}
}

// Load builds a Config from environment variables (and a .env file when present).
//
// Supported env vars:
//   - GATEWAY_USERNAME / GATEWAY_PASSWORD
//   - GATEWAY_MERCHANT_ACCOUNT (default merchantAccount parameter)
//   - GATEWAY_PAYMENT_URL / GATEWAY_RECURRING_URL
//   - GATEWAY_TIMEOUT (Go duration, default 30s)
func Load() *Config {
	_ = godotenv.Load()

	cfg := New()
	cfg.SetCredentials(os.Getenv("GATEWAY_USERNAME"), os.Getenv("GATEWAY_PASSWORD"))
	if v := strings.TrimSpace(os.Getenv("GATEWAY_MERCHANT_ACCOUNT")); v != "" {
		cfg.MergeDefaults(map[string]string{ParamMerchantAccount: v})
	}
	cfg.SetEndpoints(
		getenvDefault("GATEWAY_PAYMENT_URL", defaultPaymentEndpoint),
		getenvDefault("GATEWAY_RECURRING_URL", defaultRecurringEndpoint),
	)
	cfg.SetTimeout(getenvDuration("GATEWAY_TIMEOUT", defaultTimeout))
	return cfg
}

func (c *Config) SetCredentials(username, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credentials = Credentials{Username: username, Password: password}
}

// Credentials returns the configured pair, or a ConfigurationError naming
// what is missing.
func (c *Config) Credentials() (Credentials, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var missing []string
	if strings.TrimSpace(c.credentials.Username) == "" {
		missing = append(missing, "username")
	}
	if c.credentials.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return Credentials{}, &entities.ConfigurationError{Missing: missing}
	}
	return c.credentials, nil
}

// MergeDefaults merges params into the defaults; later writes win.
func (c *Config) MergeDefaults(params map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range params {
		c.defaults[k] = v
	}
}

// SetDefaults replaces every default parameter.
func (c *Config) SetDefaults(params map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaults = make(map[string]string, len(params))
	for k, v := range params {
		c.defaults[k] = v
	}
}

// Default returns a default parameter value.
func (c *Config) Default(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.defaults[name]
	return v, ok
}

// Resolve returns explicit when set, the default for name otherwise.
func (c *Config) Resolve(name, explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	v, _ := c.Default(name)
	return v
}

// Defaults returns a copy of the default parameters.
func (c *Config) Defaults() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.defaults))
	for k, v := range c.defaults {
		out[k] = v
	}
	return out
}

func (c *Config) SetEndpoints(payment, recurring string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paymentEndpoint = payment
	c.recurringEndpoint = recurring
}

func (c *Config) PaymentEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paymentEndpoint
}

func (c *Config) RecurringEndpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.recurringEndpoint
}

// SetTimeout bounds a single gateway round trip. Zero disables the bound.
func (c *Config) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

func (c *Config) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeout
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
