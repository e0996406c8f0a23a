package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type galleryHandler struct {
	responder        Responder
	logger           zerolog.Logger
	galleryImageRepo *database.GalleryImageRepo
}

func newGalleryHandler(galleryImageRepo *database.GalleryImageRepo) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		galleryImageRepo: galleryImageRepo,
	}
}

// galleryImageRequest takes the image as a storage key or an absolute URL
type galleryImageRequest struct {
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle"`
	Image    models.MediaRef `json:"image"`
	Order    int             `json:"order"`
	IsActive *bool           `json:"is_active"`
}

func (g galleryImageRequest) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&g.Subtitle, validation.Length(0, 200)),
		validation.Field(&g.Image, validation.By(func(any) error {
			if g.Image.IsZero() {
				return validation.ErrRequired
			}
			return nil
		})),
		validation.Field(&g.Order, validation.Min(0)),
	)
}

func (g galleryImageRequest) apply(image *models.GalleryImage) {
	image.Title = g.Title
	image.Subtitle = g.Subtitle
	image.Image = g.Image
	image.Order = g.Order
	image.IsActive = activeOr(g.IsActive, image.IsActive)
}

func (h galleryHandler) getImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.galleryImageRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery images", err))
			return
		}
		h.responder.WriteJSON(w, images)
	}
}

func (h galleryHandler) createImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req galleryImageRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		image := models.GalleryImage{IsActive: true}
		req.apply(&image)
		if err := h.galleryImageRepo.Add(r.Context(), &image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "gallery image", err))
			return
		}

		h.logger.Info().Uint("imageId", image.ID).Msg("Gallery image created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, image)
	}
}

func (h galleryHandler) updateImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uintParam(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req galleryImageRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		image, err := h.galleryImageRepo.FindByID(r.Context(), imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery image", err))
			return
		}
		req.apply(image)
		if err := h.galleryImageRepo.Update(r.Context(), image); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "gallery image", err))
			return
		}

		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) patchImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uintParam(r, "imageID")
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

		if err := h.galleryImageRepo.SetListing(r.Context(), imageID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "gallery image", err))
			return
		}

		image, err := h.galleryImageRepo.FindByID(r.Context(), imageID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "gallery image", err))
			return
		}
		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := uintParam(r, "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.galleryImageRepo.Delete(r.Context(), imageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "gallery image", err))
			return
		}

		h.logger.Info().Uint("imageId", imageID).Msg("Gallery image deleted")
		h.responder.WriteJSON(w, deletedResponse("gallery image"))
	}
}
