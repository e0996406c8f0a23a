package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type typingTextHandler struct {
	responder      Responder
	logger         zerolog.Logger
	typingTextRepo *database.TypingTextRepo
}

func newTypingTextHandler(typingTextRepo *database.TypingTextRepo) typingTextHandler {
	logger := log.With().Str("handlerName", "typingTextHandler").Logger()

	return typingTextHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		typingTextRepo: typingTextRepo,
	}
}

type typingTextRequest struct {
	Text     string `json:"text"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active"`
}

func (t typingTextRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Text, validation.Required, validation.Length(1, 200)),
		validation.Field(&t.Order, validation.Min(0)),
	)
}

func (t typingTextRequest) apply(text *models.TypingText) {
	text.Text = t.Text
	text.Order = t.Order
	text.IsActive = activeOr(t.IsActive, text.IsActive)
}

func (h typingTextHandler) getTexts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		texts, err := h.typingTextRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "typing texts", err))
			return
		}
		h.responder.WriteJSON(w, texts)
	}
}

func (h typingTextHandler) createText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req typingTextRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		text := models.TypingText{IsActive: true}
		req.apply(&text)
		if err := h.typingTextRepo.Add(r.Context(), &text); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "typing text", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, text)
	}
}

func (h typingTextHandler) updateText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		textID, err := uintParam(r, "textID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req typingTextRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		text, err := h.typingTextRepo.FindByID(r.Context(), textID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "typing text", err))
			return
		}
		req.apply(text)
		if err := h.typingTextRepo.Update(r.Context(), text); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "typing text", err))
			return
		}

		h.responder.WriteJSON(w, text)
	}
}

func (h typingTextHandler) patchText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		textID, err := uintParam(r, "textID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req listingRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		if err := h.typingTextRepo.SetListing(r.Context(), textID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "typing text", err))
			return
		}

		text, err := h.typingTextRepo.FindByID(r.Context(), textID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "typing text", err))
			return
		}
		h.responder.WriteJSON(w, text)
	}
}

func (h typingTextHandler) deleteText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		textID, err := uintParam(r, "textID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.typingTextRepo.Delete(r.Context(), textID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "typing text", err))
			return
		}

		h.responder.WriteJSON(w, deletedResponse("typing text"))
	}
}
