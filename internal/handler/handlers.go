package handler

import (
	"github.com/pgtools/pg-config-view/internal/handler/http"
	"github.com/pgtools/pg-config-view/internal/logger"
	"github.com/pgtools/pg-config-view/internal/service"
)

// Handlers bundles the transport-facing handlers.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the HTTP handler over the service layer.
func NewHandlers(services *service.Services, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
