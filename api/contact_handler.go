package api

import (
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxContactBody = 1 << 20

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contact   *services.ContactService
}

func newContactHandler(contact *services.ContactService) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contact:   contact,
	}
}

// contactRequest keeps pointers so an absent key can be told from ""
type contactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

func (r contactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NotNil),
		validation.Field(&r.Email, validation.NotNil),
		validation.Field(&r.Subject, validation.NotNil),
		validation.Field(&r.Message, validation.NotNil),
	)
}

// sendMessage stores a contact form submission and notifies the owner.
// Failures before the row is saved answer 500; notification failures are
// only logged.
func (h contactHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			h.responder.WriteJSONStatus(w, http.StatusMethodNotAllowed, map[string]string{
				"error": "Method not allowed",
			})
			return
		}

		var req contactRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&req); err != nil {
			h.logger.Warn().Err(err).Msg("Failed to decode contact request body")
			h.fail(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.logger.Warn().Err(err).Msg("Contact request is missing fields")
			h.fail(w, err)
			return
		}

		_, err := h.contact.Submit(r.Context(), services.ContactSubmission{
			Name:    *req.Name,
			Email:   *req.Email,
			Subject: *req.Subject,
			Message: *req.Message,
			Metadata: map[string]any{
				"request_id":  ctxGetRequestID(r.Context()),
				"user_agent":  r.UserAgent(),
				"remote_addr": r.RemoteAddr,
			},
		})
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to save contact message")
			h.fail(w, err)
			return
		}

		h.responder.WriteJSON(w, contactResponse{Success: true, Message: "Message sent successfully!"})
	}
}

func (h contactHandler) fail(w http.ResponseWriter, err error) {
	h.responder.WriteJSONStatus(w, http.StatusInternalServerError, contactResponse{
		Success: false,
		Message: err.Error(),
	})
}
