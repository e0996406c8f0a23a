package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("index.html").ParseFS(templateFS, "templates/index.html"))

type homeHandler struct {
	responder Responder
	logger    zerolog.Logger
	portfolio *services.PortfolioService
}

func newHomeHandler(portfolio *services.PortfolioService) homeHandler {
	logger := log.With().Str("handlerName", "homeHandler").Logger()

	return homeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		portfolio: portfolio,
	}
}

// home renders the portfolio page
func (h homeHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, err := h.portfolio.BuildContext(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var page bytes.Buffer
		if err := pageTemplate.Execute(&page, ctx); err != nil {
			h.logger.Error().Err(err).Msg("Failed to render page")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := page.WriteTo(w); err != nil {
			h.logger.Error().Err(err).Msg("Failed to write page")
		}
	}
}
