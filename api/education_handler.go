package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	educationRepo *database.EducationRepo
}

func newEducationHandler(educationRepo *database.EducationRepo) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		educationRepo: educationRepo,
	}
}

type educationRequest struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	YearRange   string `json:"year_range"`
	Grade       string `json:"grade"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

func (e educationRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Degree, validation.Required, validation.Length(1, 200)),
		validation.Field(&e.Institution, validation.Required, validation.Length(1, 200)),
		validation.Field(&e.YearRange, validation.Length(0, 50)),
		validation.Field(&e.Grade, validation.Length(0, 50)),
		validation.Field(&e.Order, validation.Min(0)),
	)
}

func (e educationRequest) apply(entry *models.Education) {
	entry.Degree = e.Degree
	entry.Institution = e.Institution
	entry.YearRange = e.YearRange
	entry.Grade = e.Grade
	entry.Order = e.Order
	entry.IsActive = activeOr(e.IsActive, entry.IsActive)
}

func (h educationHandler) getEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.educationRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}
		h.responder.WriteJSON(w, entries)
	}
}

func (h educationHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req educationRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		entry := models.Education{IsActive: true}
		req.apply(&entry)
		if err := h.educationRepo.Add(r.Context(), &entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "education", err))
			return
		}

		h.logger.Info().Uint("educationId", entry.ID).Msg("Education entry created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, entry)
	}
}

func (h educationHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uintParam(r, "educationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req educationRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		entry, err := h.educationRepo.FindByID(r.Context(), educationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}
		req.apply(entry)
		if err := h.educationRepo.Update(r.Context(), entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "education", err))
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}

func (h educationHandler) patchEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uintParam(r, "educationID")
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

		if err := h.educationRepo.SetListing(r.Context(), educationID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "education", err))
			return
		}

		entry, err := h.educationRepo.FindByID(r.Context(), educationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}
		h.responder.WriteJSON(w, entry)
	}
}

func (h educationHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uintParam(r, "educationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.educationRepo.Delete(r.Context(), educationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "education", err))
			return
		}

		h.logger.Info().Uint("educationId", educationID).Msg("Education entry deleted")
		h.responder.WriteJSON(w, deletedResponse("education entry"))
	}
}
