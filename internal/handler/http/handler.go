package http

import (
	"time"

	"github.com/MKhiriev/osphor/internal/logger"
	"github.com/MKhiriev/osphor/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	// gatherer backs GET /metrics; nil disables the endpoint.
	gatherer prometheus.Gatherer

	requestTimeout time.Duration

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(*Handler)

// WithMetrics exposes the collectors registered in g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.gatherer = g
	}
}

// WithRequestTimeout bounds every request's context by d.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Bool("metrics", h.gatherer != nil).Msg("http handler created")
	return h
}
