package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"payment_gateway_client/internal/config"
	"payment_gateway_client/internal/domain/entities"
	"payment_gateway_client/internal/infrastructure/soap"
	"payment_gateway_client/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// gatewayCaller runs the encode -> send -> decode pipeline shared by every
// action service. It keeps no per-call state.
type gatewayCaller struct {
	cfg       *config.Config
	transport interfaces.IGatewayTransport
	logger    *zap.Logger
}

func newGatewayCaller(cfg *config.Config, transport interfaces.IGatewayTransport, logger *zap.Logger) gatewayCaller {
	if cfg == nil {
		cfg = config.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return gatewayCaller{cfg: cfg, transport: transport, logger: logger}
}

// callLogger tags every log line of one facade call with a fresh call id.
func (g gatewayCaller) callLogger(action soap.Action) *zap.Logger {
	return g.logger.With(zap.String("action", string(action)), zap.String("call_id", uuid.NewString()))
}

func (g gatewayCaller) merchantAccount(explicit string) string {
	return strings.TrimSpace(g.cfg.Resolve(config.ParamMerchantAccount, explicit))
}

func (g gatewayCaller) call(ctx context.Context, log *zap.Logger, action soap.Action, endpoint string, fields ...*soap.Node) (*soap.Reply, error) {
	var missing []string
	creds, err := g.cfg.Credentials()
	if err != nil {
		var ce *entities.ConfigurationError
		if !errors.As(err, &ce) {
			return nil, err
		}
		missing = append(missing, ce.Missing...)
	}
	if g.transport == nil {
		missing = append(missing, "transport")
	}
	if strings.TrimSpace(endpoint) == "" {
		missing = append(missing, "endpoint")
	}
	if len(missing) > 0 {
		err := &entities.ConfigurationError{Missing: missing}
		log.Warn("[gateway][usecase] configuration incomplete", zap.Error(err))
		return nil, err
	}

	doc, err := soap.Encode(action, fields...)
	if err != nil {
		log.Warn("[gateway][usecase] request not encodable", zap.Error(err))
		return nil, err
	}

	if timeout := g.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := g.transport.Send(ctx, endpoint, creds, doc)
	if err != nil {
		log.Warn("[gateway][usecase] transport failed", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return nil, err
	}

	reply, err := soap.DecodeReply(action, raw)
	if err != nil {
		log.Warn("[gateway][usecase] reply rejected", zap.Error(err))
		return nil, err
	}
	log.Debug("[gateway][usecase] reply decoded", zap.Duration("elapsed", time.Since(start)))
	return reply, nil
}

func requireText(missing []string, field, value string) []string {
	if strings.TrimSpace(value) == "" {
		return append(missing, field)
	}
	return missing
}

func missingFields(missing []string) error {
	if len(missing) == 0 {
		return nil
	}
	return entities.NewValidationError("required field missing", missing...)
}
