package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	database    database.Database
	startupTime time.Time
}

func newHealthHandler(database database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		database:    database,
		startupTime: startupTime,
	}
}

func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		uptime := int64(time.Since(h.startupTime).Seconds())
		if err := h.database.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("Database ping failed")
			h.responder.WriteJSONStatus(w, http.StatusServiceUnavailable, map[string]any{
				"status":         "unavailable",
				"uptime_seconds": uptime,
			})
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":         "ok",
			"uptime_seconds": uptime,
		})
	}
}
