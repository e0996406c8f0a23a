package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// certificateHandler manages certificates and their optional categories
type certificateHandler struct {
	responder       Responder
	logger          zerolog.Logger
	certificateRepo *database.CertificateRepo
}

func newCertificateHandler(certificateRepo *database.CertificateRepo) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		certificateRepo: certificateRepo,
	}
}

type certificateCategoryRequest struct {
	Name     string `json:"name"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"is_active"`
}

func (c certificateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&c.Order, validation.Min(0)),
	)
}

func (c certificateCategoryRequest) apply(category *models.CertificateCategory) {
	category.Name = c.Name
	category.Order = c.Order
	category.IsActive = activeOr(c.IsActive, category.IsActive)
}

// certificateRequest takes the file as a storage key or absolute URL. A nil
// category_id leaves the certificate uncategorised.
type certificateRequest struct {
	CategoryID      *uint           `json:"category_id"`
	Title           string          `json:"title"`
	Issuer          string          `json:"issuer"`
	Description     string          `json:"description"`
	Icon            string          `json:"icon"`
	CertificateFile models.MediaRef `json:"certificate_file"`
	CertificateURL  string          `json:"certificate_url"`
	Order           int             `json:"order"`
	IsActive        *bool           `json:"is_active"`
}

func (c certificateRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Issuer, validation.Length(0, 200)),
		validation.Field(&c.Description, validation.Length(0, 200)),
		validation.Field(&c.Icon, validation.Length(0, 100)),
		validation.Field(&c.Order, validation.Min(0)),
	)
}

func (c certificateRequest) apply(certificate *models.Certificate) {
	certificate.CategoryID = c.CategoryID
	certificate.Category = nil
	certificate.Title = c.Title
	certificate.Issuer = c.Issuer
	certificate.Description = c.Description
	certificate.Icon = c.Icon
	certificate.CertificateFile = c.CertificateFile
	certificate.CertificateURL = c.CertificateURL
	certificate.Order = c.Order
	certificate.IsActive = activeOr(c.IsActive, certificate.IsActive)
}

func (h certificateHandler) checkCategory(r *http.Request, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	if _, err := h.certificateRepo.FindCategoryByID(r.Context(), *categoryID); err != nil {
		return referenceError("category_id", "certificate category", err)
	}
	return nil
}

func (h certificateHandler) getCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates, err := h.certificateRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificates", err))
			return
		}
		h.responder.WriteJSON(w, certificates)
	}
}

func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req certificateRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}
		if err := h.checkCategory(r, req.CategoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certificate := models.Certificate{IsActive: true}
		req.apply(&certificate)
		if err := h.certificateRepo.Add(r.Context(), &certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certificate", err))
			return
		}

		created, err := h.certificateRepo.FindByID(r.Context(), certificate.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "certificate", err))
			return
		}

		h.logger.Info().Uint("certificateId", created.ID).Msg("Certificate created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, created)
	}
}

func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uintParam(r, "certificateID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req certificateRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		certificate, err := h.certificateRepo.FindByID(r.Context(), certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}
		if err := h.checkCategory(r, req.CategoryID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		req.apply(certificate)
		if err := h.certificateRepo.Update(r.Context(), certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate", err))
			return
		}

		updated, err := h.certificateRepo.FindByID(r.Context(), certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "certificate", err))
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

func (h certificateHandler) patchCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uintParam(r, "certificateID")
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

		if err := h.certificateRepo.SetListing(r.Context(), certificateID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate", err))
			return
		}

		certificate, err := h.certificateRepo.FindByID(r.Context(), certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}
		h.responder.WriteJSON(w, certificate)
	}
}

func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uintParam(r, "certificateID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.certificateRepo.Delete(r.Context(), certificateID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certificate", err))
			return
		}

		h.logger.Info().Uint("certificateId", certificateID).Msg("Certificate deleted")
		h.responder.WriteJSON(w, deletedResponse("certificate"))
	}
}

func (h certificateHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.certificateRepo.FindAllCategories(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h certificateHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req certificateCategoryRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		category := models.CertificateCategory{IsActive: true}
		req.apply(&category)
		if err := h.certificateRepo.AddCategory(r.Context(), &category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certificate category", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, category)
	}
}

func (h certificateHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uintParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req certificateCategoryRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		category, err := h.certificateRepo.FindCategoryByID(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate category", err))
			return
		}
		req.apply(category)
		if err := h.certificateRepo.UpdateCategory(r.Context(), category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

func (h certificateHandler) patchCategory() http.HandlerFunc {
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

		if err := h.certificateRepo.SetCategoryListing(r.Context(), categoryID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate category", err))
			return
		}

		category, err := h.certificateRepo.FindCategoryByID(r.Context(), categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate category", err))
			return
		}
		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes a certificate category; its certificates are kept
// without a category
func (h certificateHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uintParam(r, "categoryID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.certificateRepo.DeleteCategory(r.Context(), categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certificate category", err))
			return
		}

		h.logger.Info().Uint("categoryId", categoryID).Msg("Certificate category deleted")
		h.responder.WriteJSON(w, deletedResponse("certificate category"))
	}
}
