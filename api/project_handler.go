package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectRepo    *database.ProjectRepo
	projectTagRepo *database.ProjectTagRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectTagRepo *database.ProjectTagRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectRepo:    projectRepo,
		projectTagRepo: projectTagRepo,
	}
}

// ProjectWithTags represents a project with its tags
type ProjectWithTags struct {
	Project models.Project `json:"project"`
	Tags    []string       `json:"tags"`
}

// ProjectCollectionWithTags represents multiple projects with their tags
type ProjectCollectionWithTags struct {
	Projects []ProjectWithTags `json:"projects"`
	Total    int               `json:"total"`
	TagNames []string          `json:"tag_names"`
}

// projectRequest is the admin payload for a project. A nil Tags leaves the
// existing tags untouched on update; any other value replaces them.
type projectRequest struct {
	Title       string          `json:"title"`
	Emoji       string          `json:"emoji"`
	Description string          `json:"description"`
	Image       models.MediaRef `json:"image"`
	GithubURL   string          `json:"github_url"`
	LiveURL     string          `json:"live_url"`
	Order       int             `json:"order"`
	IsActive    *bool           `json:"is_active"`
	Tags        *[]string       `json:"tags"`
}

func (p projectRequest) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Emoji, validation.Length(0, 10)),
		validation.Field(&p.Order, validation.Min(0)),
	)
}

func (p projectRequest) apply(project *models.Project) {
	project.Title = p.Title
	project.Emoji = p.Emoji
	project.Description = p.Description
	project.Image = p.Image
	project.GithubURL = p.GithubURL
	project.LiveURL = p.LiveURL
	project.Order = p.Order
	if p.IsActive != nil {
		project.IsActive = *p.IsActive
	}
}

func withTags(p models.Project) ProjectWithTags {
	return ProjectWithTags{Project: p, Tags: p.TagNames()}
}

// getAllProjects lists every project, hidden ones included
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		tagNames, err := h.projectTagRepo.DistinctNames(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project tags", err))
			return
		}

		projectsWithTags := make([]ProjectWithTags, 0, len(projects))
		for _, project := range projects {
			projectsWithTags = append(projectsWithTags, withTags(project))
		}

		h.responder.WriteJSON(w, ProjectCollectionWithTags{
			Projects: projectsWithTags,
			Total:    len(projectsWithTags),
			TagNames: tagNames,
		})
	}
}

// createProject creates a new project; projects are visible unless is_active is false
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		project := models.Project{IsActive: true}
		req.apply(&project)
		if req.Tags != nil {
			for _, name := range *req.Tags {
				project.Tags = append(project.Tags, models.ProjectTag{Name: name})
			}
		}

		if err := h.projectRepo.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(r.Context(), project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.logger.Info().Uint("projectId", created.ID).Msg("Project created")
		h.responder.WriteJSONStatus(w, http.StatusCreated, withTags(*created))
	}
}

// updateProject overwrites a project's fields and, when tags are sent,
// replaces its whole tag set
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uintParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req projectRequest
		if err := decodeJSON(w, r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := req.Validate(); err != nil {
			h.responder.WriteValidationError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		req.apply(project)
		project.Tags = nil
		var tags []string
		if req.Tags != nil {
			tags = *req.Tags
			if tags == nil {
				tags = []string{}
			}
		}
		if err := h.projectRepo.UpdateWithTags(r.Context(), project, tags); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, withTags(*updated))
	}
}

// patchProject moves a project or shows/hides it
func (h projectHandler) patchProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uintParam(r, "projectID")
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

		if err := h.projectRepo.SetListing(r.Context(), projectID, req.patch()); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		project, err := h.projectRepo.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		h.responder.WriteJSON(w, withTags(*project))
	}
}

// deleteProject deletes a project and its tags
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uintParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.logger.Info().Uint("projectId", projectID).Msg("Project deleted")
		h.responder.WriteJSON(w, deletedResponse("project"))
	}
}
