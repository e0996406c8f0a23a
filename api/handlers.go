package api

import (
	"time"

	"github.com/rpupo63/portfolio-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, svc Services, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		homeHandler:        newHomeHandler(svc.Portfolio),
		portfolioHandler:   newPortfolioHandler(svc.Portfolio),
		contactHandler:     newContactHandler(svc.Contact),
		healthHandler:      newHealthHandler(database, startupTime),
		profileHandler:     newProfileHandler(database.ProfileRepo()),
		projectHandler:     newProjectHandler(database.ProjectRepo(), database.ProjectTagRepo()),
		educationHandler:   newEducationHandler(database.EducationRepo()),
		skillHandler:       newSkillHandler(database.SkillRepo()),
		achievementHandler: newAchievementHandler(database.AchievementRepo()),
		certificateHandler: newCertificateHandler(database.CertificateRepo()),
		galleryHandler:     newGalleryHandler(database.GalleryImageRepo()),
		typingTextHandler:  newTypingTextHandler(database.TypingTextRepo()),
		messageHandler:     newMessageHandler(database.ContactMessageRepo()),
	}
}
