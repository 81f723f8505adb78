package interfaces

import (
	"context"

	"payment_gateway_client/internal/config"
)

// IGatewayTransport performs one authenticated exchange with the gateway.
//
// A single attempt per call; no retry. Connection, timeout and non-success
// status problems are returned as errors. A reply carrying a protocol fault
// is returned as a body for the codec to interpret.
type IGatewayTransport interface {
	Send(ctx context.Context, endpoint string, creds config.Credentials, document []byte) ([]byte, error)
}
