package config

import (
	"errors"
	"testing"
	"time"

	"payment_gateway_client/internal/domain/entities"
)

func TestConfig_Credentials(t *testing.T) {
	t.Run("missing both", func(t *testing.T) {
		cfg := New()
		_, err := cfg.Credentials()
		if !errors.Is(err, entities.ErrConfiguration) {
			t.Fatalf("expected ErrConfiguration, got %v", err)
		}
		var cfgErr *entities.ConfigurationError
		if !errors.As(err, &cfgErr) || len(cfgErr.Missing) != 2 {
			t.Fatalf("expected two missing fields, got %v", err)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		cfg := New()
		cfg.SetCredentials("ws@Company.Test", "")
		_, err := cfg.Credentials()
		var cfgErr *entities.ConfigurationError
		if !errors.As(err, &cfgErr) || cfgErr.Missing[0] != "password" {
			t.Fatalf("expected missing password, got %v", err)
		}
	})

	t.Run("complete", func(t *testing.T) {
		cfg := New()
		cfg.SetCredentials("ws@Company.Test", "secret")
		creds, err := cfg.Credentials()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.Username != "ws@Company.Test" || creds.Password != "secret" {
			t.Fatalf("unexpected credentials: %+v", creds)
		}
	})
}

func TestConfig_Defaults(t *testing.T) {
	cfg := New()
	cfg.MergeDefaults(map[string]string{ParamMerchantAccount: "first", "other": "x"})
	cfg.MergeDefaults(map[string]string{ParamMerchantAccount: "second"})

	if v, _ := cfg.Default(ParamMerchantAccount); v != "second" {
		t.Fatalf("expected last write to win, got %q", v)
	}
	if v, ok := cfg.Default("other"); !ok || v != "x" {
		t.Fatalf("expected merge to keep other keys, got %q", v)
	}
	if got := cfg.Resolve(ParamMerchantAccount, "explicit"); got != "explicit" {
		t.Fatalf("expected explicit value, got %q", got)
	}
	if got := cfg.Resolve(ParamMerchantAccount, " "); got != "second" {
		t.Fatalf("expected default value, got %q", got)
	}

	cfg.SetDefaults(map[string]string{"only": "y"})
	if _, ok := cfg.Default(ParamMerchantAccount); ok {
		t.Fatalf("expected SetDefaults to replace the map")
	}

	snapshot := cfg.Defaults()
	snapshot["only"] = "mutated"
	if v, _ := cfg.Default("only"); v != "y" {
		t.Fatalf("Defaults must return a copy")
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GATEWAY_USERNAME", "ws@Company.Test")
	t.Setenv("GATEWAY_PASSWORD", "secret")
	t.Setenv("GATEWAY_MERCHANT_ACCOUNT", "TestMerchant")
	t.Setenv("GATEWAY_PAYMENT_URL", "https://example.test/Payment")
	t.Setenv("GATEWAY_RECURRING_URL", "")
	t.Setenv("GATEWAY_TIMEOUT", "5")

	cfg := Load()
	if _, err := cfg.Credentials(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := cfg.Default(ParamMerchantAccount); v != "TestMerchant" {
		t.Fatalf("unexpected merchant account %q", v)
	}
	if cfg.PaymentEndpoint() != "https://example.test/Payment" {
		t.Fatalf("unexpected payment endpoint %q", cfg.PaymentEndpoint())
	}
	if cfg.RecurringEndpoint() != defaultRecurringEndpoint {
		t.Fatalf("unexpected recurring endpoint %q", cfg.RecurringEndpoint())
	}
	if cfg.Timeout() != 5*time.Second {
		t.Fatalf("unexpected timeout %s", cfg.Timeout())
	}
}
