package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type portfolioHandler struct {
	responder Responder
	logger    zerolog.Logger
	portfolio *services.PortfolioService
}

func newPortfolioHandler(portfolio *services.PortfolioService) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder: NewResponder(logger),
		logger:    logger,
		portfolio: portfolio,
	}
}

// getPortfolio returns the whole portfolio as one JSON document
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := h.portfolio.Document(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, doc)
	}
}
