package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type achievementHandler struct {
	responder       Responder
	logger          zerolog.Logger
	achievementRepo *database.AchievementRepo
}

func newAchievementHandler(achievementRepo *database.AchievementRepo) achievementHandler {
	logger := log.With().Str("handlerName", "achievementHandler").Logger()

	return achievementHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		achievementRepo: achievementRepo,
	}
}

type achievementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

func (a achievementRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&a.Date, validation.Length(0, 50)),
		validation.Field(&a.Icon, validation.Length(0, 100)),
		validation.Field(&a.Order, validation.Min(0)),
	)
}

func (a achievementRequest) apply(achievement *models.Achievement) {
	achievement.Title = a.Title
	achievement.Description = a.Description
	achievement.Date = a.Date
	achievement.Icon = a.Icon
	achievement.Order = a.Order
	achievement.IsActive = activeOr(a.IsActive, achievement.IsActive)
}

func (h achievementHandler) getAchievements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievements, err := h.achievementRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "achievements", err))
			return
		}
		h.responder.WriteJSON(w, achievements)
	}
}

func (h achievementHandler) createAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req achievementRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		achievement := models.Achievement{IsActive: true}
		req.apply(&achievement)
		if err := h.achievementRepo.Add(r.Context(), &achievement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "achievement", err))
			return
		}

		h.logger.Info().Uint("achievementId", achievement.ID).Msg("Achievement created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, achievement)
	}
}

func (h achievementHandler) updateAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievementID, err := uintParam(r, "achievementID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req achievementRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		achievement, err := h.achievementRepo.FindByID(r.Context(), achievementID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "achievement", err))
			return
		}
		req.apply(achievement)
		if err := h.achievementRepo.Update(r.Context(), achievement); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "achievement", err))
			return
		}

		h.responder.WriteJSON(w, achievement)
	}
}

func (h achievementHandler) patchAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievementID, err := uintParam(r, "achievementID")
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

		if err := h.achievementRepo.SetListing(r.Context(), achievementID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "achievement", err))
			return
		}

		achievement, err := h.achievementRepo.FindByID(r.Context(), achievementID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "achievement", err))
			return
		}
		h.responder.WriteJSON(w, achievement)
	}
}

func (h achievementHandler) deleteAchievement() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		achievementID, err := uintParam(r, "achievementID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.achievementRepo.Delete(r.Context(), achievementID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "achievement", err))
			return
		}

		h.logger.Info().Uint("achievementId", achievementID).Msg("Achievement deleted")
		h.responder.WriteJSON(w, deletedResponse("achievement"))
	}
}
