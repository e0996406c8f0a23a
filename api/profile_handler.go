package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// profileRequest lists the editable profile fields
type profileRequest struct {
	Name          string          `json:"name"`
	Tagline       string          `json:"tagline"`
	Description   string          `json:"description"`
	AboutText1    string          `json:"about_text_1"`
	AboutText2    string          `json:"about_text_2"`
	AboutText3    string          `json:"about_text_3"`
	ProfileImage  models.MediaRef `json:"profile_image"`
	Resume        models.MediaRef `json:"resume"`
	Email         string          `json:"email"`
	Location      string          `json:"location"`
	GithubURL     string          `json:"github_url"`
	LinkedinURL   string          `json:"linkedin_url"`
	LeetcodeURL   string          `json:"leetcode_url"`
	HackerrankURL string          `json:"hackerrank_url"`
	CupsOfCoffee  *int            `json:"cups_of_coffee"`
}

func (p profileRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Tagline, validation.Length(0, 200)),
		validation.Field(&p.Email, validation.Length(0, 254)),
		validation.Field(&p.Location, validation.Length(0, 200)),
		validation.Field(&p.CupsOfCoffee, validation.Min(0)),
	)
}

func (p profileRequest) apply(profile *models.Profile) {
	profile.Name = p.Name
	profile.Tagline = p.Tagline
	profile.Description = p.Description
	profile.AboutText1 = p.AboutText1
	profile.AboutText2 = p.AboutText2
	profile.AboutText3 = p.AboutText3
	profile.ProfileImage = p.ProfileImage
	profile.Resume = p.Resume
	profile.Email = p.Email
	profile.Location = p.Location
	profile.GithubURL = p.GithubURL
	profile.LinkedinURL = p.LinkedinURL
	profile.LeetcodeURL = p.LeetcodeURL
	profile.HackerrankURL = p.HackerrankURL
	if p.CupsOfCoffee != nil {
		profile.CupsOfCoffee = *p.CupsOfCoffee
	}
}

func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.First(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}
		h.responder.WriteJSON(w, profile)
	}
}

// putProfile creates the profile or overwrites the existing one in place
func (h profileHandler) putProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		profile, err := h.profileRepo.GetOrCreateSingleton(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "profile", err))
			return
		}
		req.apply(profile)

		if err := h.profileRepo.Save(r.Context(), profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("save", "profile", err))
			return
		}

		h.logger.Info().Uint("profileId", profile.ID).Msg("Profile saved")
		h.responder.WriteJSON(w, profile)
	}
}
