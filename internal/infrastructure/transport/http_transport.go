package transport

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"payment_gateway_client/internal/config"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const maxReplyBytes = 4 << 20

// HTTPTransport posts SOAP documents over HTTPS with Basic authentication.
// It holds no per-call state and is safe for concurrent use.
type HTTPTransport struct {
	client *http.Client
	logger *zap.Logger
}

var _ interfaces.IGatewayTransport = (*HTTPTransport)(nil)

// NewHTTPTransport wraps client; a nil client gets a pooled default without
// its own timeout, callers bound each call through the context.
func NewHTTPTransport(client *http.Client, logger *zap.Logger) *HTTPTransport {
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPTransport{client: client, logger: logger}
}

func (t *HTTPTransport) Send(ctx context.Context, endpoint string, creds config.Credentials, document []byte) ([]byte, error) {
	log := t.logger.With(zap.String("endpoint", endpoint))
	log.Debug("[gateway][transport] send start", zap.Int("payload_len", len(document)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(document))
	if err != nil {
		return nil, &entities.TransportError{Kind: entities.TransportConnection, Err: err}
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", `""`)
	req.SetBasicAuth(creds.Username, creds.Password)

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		kind := classify(ctx, err)
		log.Warn("[gateway][transport] send failed", zap.String("kind", string(kind)), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return nil, &entities.TransportError{Kind: kind, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		kind := classify(ctx, err)
		log.Warn("[gateway][transport] read reply failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, &entities.TransportError{Kind: kind, Err: err}
	}

	log.Debug("[gateway][transport] reply received",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("body_len", len(body)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		log.Warn("[gateway][transport] authentication rejected", zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", entities.ErrAuthentication, resp.StatusCode)
	case resp.StatusCode == http.StatusInternalServerError && isSOAPBody(resp.Header.Get("Content-Type"), body):
		// SOAP faults travel with status 500.
		return body, nil
	default:
		log.Warn("[gateway][transport] unexpected status", zap.Int("status_code", resp.StatusCode))
		return nil, &entities.TransportError{Kind: entities.TransportStatus, StatusCode: resp.StatusCode}
	}
}

func classify(ctx context.Context, err error) entities.TransportFailure {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return entities.TransportTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return entities.TransportTimeout
	}
	return entities.TransportConnection
}

// isSOAPBody reports whether a 500 reply carries a SOAP envelope. HTML error
// pages from proxies in front of the gateway are status errors, not faults.
func isSOAPBody(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "html") {
		return false
	}
	if strings.Contains(ct, "xml") {
		return true
	}
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local == "Envelope"
		}
	}
}
