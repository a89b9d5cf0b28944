package handler

import (
	"github.com/MKhiriev/osphor/internal/config"
	"github.com/MKhiriev/osphor/internal/handler/http"
	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. gatherer may be
// nil, in which case /metrics is not served.
func NewHandlers(services *service.Services, gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts := []http.Option{http.WithRequestTimeout(cfg.RequestTimeout)}
	if gatherer != nil {
		opts = append(opts, http.WithMetrics(gatherer))
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger, opts...),
	}, nil
}
