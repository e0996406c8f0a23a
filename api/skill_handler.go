package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// skillHandler manages skill categories and the skills inside them
type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

type skillCategoryRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active"`
}

func (c skillCategoryRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&c.Icon, validation.Length(0, 100)),
		validation.Field(&c.Order, validation.Min(0)),
	)
}

func (c skillCategoryRequest) apply(category *models.SkillCategory) {
	category.Name = c.Name
	category.Icon = c.Icon
	category.Order = c.Order
	category.IsActive = activeOr(c.IsActive, category.IsActive)
}

// skillRequest carries a proficiency that is clamped to 0-100 on save
type skillRequest struct {
	CategoryID  uint   `json:"category_id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Proficiency int    `json:"proficiency"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

func (s skillRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.CategoryID, validation.Required),
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Icon, validation.Length(0, 100)),
		validation.Field(&s.Order, validation.Min(0)),
	)
}

func (s skillRequest) apply(skill *models.Skill) {
	skill.CategoryID = s.CategoryID
	skill.Name = s.Name
	skill.Icon = s.Icon
	skill.Proficiency = s.Proficiency
	skill.Order = s.Order
	skill.IsActive = activeOr(s.IsActive, skill.IsActive)
}

// getCategories lists every category with all of its skills, hidden ones included
func (h skillHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.skillRepo.FindAllCategories(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h skillHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillCategoryRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		category := models.SkillCategory{IsActive: true}
		req.apply(&category)
		if err := h.skillRepo.AddCategory(r.Context(), &category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill category", err))
			return
		}

		h.logger.Info().Uint("categoryId", category.ID).Msg("Skill category created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, category)
	}
}

func (h skillHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uintParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req skillCategoryRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		category, err := h.skillRepo.FindCategoryByID(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}
		req.apply(category)
		if err := h.skillRepo.UpdateCategory(r.Context(), category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

func (h skillHandler) patchCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uintParam(r, "categoryID")
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

		if err := h.skillRepo.SetCategoryListing(r.Context(), categoryID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill category", err))
			return
		}

		category, err := h.skillRepo.FindCategoryByID(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}
		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes a skill category and every skill in it
func (h skillHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uintParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.DeleteCategory(r.Context(), categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill category", err))
			return
		}

		h.logger.Info().Uint("categoryId", categoryID).Msg("Skill category deleted")
		h.responder.WriteJSON(w, deletedResponse("skill category"))
	}
}

func (h skillHandler) getSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAllSkills(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}
		h.responder.WriteJSON(w, skills)
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req skillRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}
		if _, err := h.skillRepo.FindCategoryByID(r.Context(), req.CategoryID); err != nil {
			h.responder.WriteError(w, referenceError("category_id", "skill category", err))
			return
		}

		skill := models.Skill{IsActive: true}
		req.apply(&skill)
		if err := h.skillRepo.AddSkill(r.Context(), &skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.logger.Info().Uint("skillId", skill.ID).Msg("Skill created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, skill)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uintParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req skillRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		skill, err := h.skillRepo.FindSkillByID(r.Context(), skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if _, err := h.skillRepo.FindCategoryByID(r.Context(), req.CategoryID); err != nil {
			h.responder.WriteError(w, referenceError("category_id", "skill category", err))
			return
		}

		req.apply(skill)
		if err := h.skillRepo.UpdateSkill(r.Context(), skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) patchSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uintParam(r, "skillID")
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

		if err := h.skillRepo.SetSkillListing(r.Context(), skillID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		skill, err := h.skillRepo.FindSkillByID(r.Context(), skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		h.responder.WriteJSON(w, skill)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uintParam(r, "skillID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.DeleteSkill(r.Context(), skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.logger.Info().Uint("skillId", skillID).Msg("Skill deleted")
		h.responder.WriteJSON(w, deletedResponse("skill"))
	}
}
