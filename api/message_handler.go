package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type messageHandler struct {
	responder          Responder
	logger             zerolog.Logger
	contactMessageRepo *database.ContactMessageRepo
}

func newMessageHandler(contactMessageRepo *database.ContactMessageRepo) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		contactMessageRepo: contactMessageRepo,
	}
}

type messageCollection struct {
	Messages []models.ContactMessage `json:"messages"`
	Total    int64                   `json:"total"`
	Unread   int64                   `json:"unread"`
}

// readFlagRequest is the only change allowed on a stored message
type readFlagRequest struct {
	IsRead *bool `json:"is_read"`
}

func (r readFlagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IsRead, validation.NotNil),
	)
}

// getMessages lists contact messages, newest first
func (h messageHandler) getMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactMessageRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}
		unread, err := h.contactMessageRepo.CountUnread(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contact messages", err))
			return
		}
		if messages == nil {
			messages = []models.ContactMessage{}
		}

		h.responder.WriteJSON(w, messageCollection{
			Messages: messages,
			Total:    int64(len(messages)),
			Unread:   unread,
		})
	}
}

func (h messageHandler) markMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uintParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req readFlagRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		if err := h.contactMessageRepo.SetRead(r.Context(), messageID, *req.IsRead); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact message", err))
			return
		}

		msg, err := h.contactMessageRepo.FindByID(r.Context(), messageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact message", err))
			return
		}
		h.responder.WriteJSON(w, msg)
	}
}

func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uintParam(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.contactMessageRepo.Delete(r.Context(), messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact message", err))
			return
		}

		h.logger.Info().Uint("messageId", messageID).Msg("Contact message deleted")
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
