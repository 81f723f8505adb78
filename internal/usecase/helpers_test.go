package usecase

import (
	"context"
	"regexp"

	"payment_gateway_client/internal/config"
)

const (
	testPaymentURL   = "https://pal.test/pal/servlet/soap/Payment"
	testRecurringURL = "https://pal.test/pal/servlet/soap/Recurring"
)

func newTestConfig() *config.Config {
	cfg := config.New()
	cfg.SetCredentials("ws@Company.Test", "secret")
	cfg.SetDefaults(map[string]string{config.ParamMerchantAccount: "TestMerchant"})
	cfg.SetEndpoints(testPaymentURL, testRecurringURL)
	return cfg
}

func reply(action, ns, inner string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<soap:Body><ns1:` + action + `Response xmlns:ns1="` + ns + `">` + inner +
		`</ns1:` + action + `Response></soap:Body></soap:Envelope>`)
}

func paymentReply(action, inner string) []byte {
	return reply(action, "http://payment.services.adyen.com", inner)
}

func recurringReply(action, inner string) []byte {
	return reply(action, "http://recurring.services.adyen.com", inner)
}

func faultReply(code, msg string) []byte {
	return []byte(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body><soap:Fault>` +
		`<faultcode>` + code + `</faultcode><faultstring>` + msg + `</faultstring>` +
		`</soap:Fault></soap:Body></soap:Envelope>`)
}

// elementText extracts the text of the first <ns1:name> or <common:name> element.
func elementText(doc []byte, name string) (string, bool) {
	re := regexp.MustCompile(`<(?:ns1|common):` + name + `>([^<]*)</`)
	m := re.FindSubmatch(doc)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// transportFunc adapts a function to IGatewayTransport.
type transportFunc func(ctx context.Context, endpoint string, creds config.Credentials, document []byte) ([]byte, error)

func (f transportFunc) Send(ctx context.Context, endpoint string, creds config.Credentials, document []byte) ([]byte, error) {
	return f(ctx, endpoint, creds, document)
}

func strPtr(s string) *string { return &s }
