package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/metrics"
)

// setupPublicRoutes mounts the page, the JSON API and the contact form
func setupPublicRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/", handlers.homeHandler.home())

	r.HandleFunc("/send-message", handlers.contactHandler.sendMessage())
	r.HandleFunc("/send-message/", handlers.contactHandler.sendMessage())

	r.Get("/api/portfolio", handlers.portfolioHandler.getPortfolio())
	r.Get("/api/portfolio/", handlers.portfolioHandler.getPortfolio())

	r.Get("/healthz", handlers.healthHandler.health())
	r.Handle("/metrics", metrics.Handler())
}

// setupAdminRoutes mounts the bearer protected content management routes.
// PUT replaces a record; PATCH only moves it or shows/hides it.
func setupAdminRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authMiddleware.authenticate)

		r.Get("/profile", handlers.profileHandler.getProfile())
		r.Put("/profile", handlers.profileHandler.putProfile())

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Post("/", handlers.projectHandler.createProject())
			r.Put("/{projectID}", handlers.projectHandler.updateProject())
			r.Patch("/{projectID}", handlers.projectHandler.patchProject())
			r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
		})

		r.Route("/education", func(r chi.Router) {
			r.Get("/", handlers.educationHandler.getEducation())
			r.Post("/", handlers.educationHandler.createEducation())
			r.Put("/{educationID}", handlers.educationHandler.updateEducation())
			r.Patch("/{educationID}", handlers.educationHandler.patchEducation())
			r.Delete("/{educationID}", handlers.educationHandler.deleteEducation())
		})

		r.Route("/skill-categories", func(r chi.Router) {
			r.Get("/", handlers.skillHandler.getCategories())
			r.Post("/", handlers.skillHandler.createCategory())
			r.Put("/{categoryID}", handlers.skillHandler.updateCategory())
			r.Patch("/{categoryID}", handlers.skillHandler.patchCategory())
			r.Delete("/{categoryID}", handlers.skillHandler.deleteCategory())
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", handlers.skillHandler.getSkills())
			r.Post("/", handlers.skillHandler.createSkill())
			r.Put("/{skillID}", handlers.skillHandler.updateSkill())
			r.Patch("/{skillID}", handlers.skillHandler.patchSkill())
			r.Delete("/{skillID}", handlers.skillHandler.deleteSkill())
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", handlers.achievementHandler.getAchievements())
			r.Post("/", handlers.achievementHandler.createAchievement())
			r.Put("/{achievementID}", handlers.achievementHandler.updateAchievement())
			r.Patch("/{achievementID}", handlers.achievementHandler.patchAchievement())
			r.Delete("/{achievementID}", handlers.achievementHandler.deleteAchievement())
		})

		r.Route("/certificate-categories", func(r chi.Router) {
			r.Get("/", handlers.certificateHandler.getCategories())
			r.Post("/", handlers.certificateHandler.createCategory())
			r.Put("/{categoryID}", handlers.certificateHandler.updateCategory())
			r.Patch("/{categoryID}", handlers.certificateHandler.patchCategory())
			r.Delete("/{categoryID}", handlers.certificateHandler.deleteCategory())
		})

		r.Route("/certificates", func(r chi.Router) {
			r.Get("/", handlers.certificateHandler.getCertificates())
			r.Post("/", handlers.certificateHandler.createCertificate())
			r.Put("/{certificateID}", handlers.certificateHandler.updateCertificate())
			r.Patch("/{certificateID}", handlers.certificateHandler.patchCertificate())
			r.Delete("/{certificateID}", handlers.certificateHandler.deleteCertificate())
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", handlers.galleryHandler.getImages())
			r.Post("/", handlers.galleryHandler.createImage())
			r.Put("/{imageID}", handlers.galleryHandler.updateImage())
			r.Patch("/{imageID}", handlers.galleryHandler.patchImage())
			r.Delete("/{imageID}", handlers.galleryHandler.deleteImage())
		})

		r.Route("/typing-texts", func(r chi.Router) {
			r.Get("/", handlers.typingTextHandler.getTexts())
			r.Post("/", handlers.typingTextHandler.createText())
			r.Put("/{textID}", handlers.typingTextHandler.updateText())
			r.Patch("/{textID}", handlers.typingTextHandler.patchText())
			r.Delete("/{textID}", handlers.typingTextHandler.deleteText())
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", handlers.messageHandler.getMessages())
			r.Patch("/{messageID}", handlers.messageHandler.markMessage())
			r.Delete("/{messageID}", handlers.messageHandler.deleteMessage())
		})
	})
}
