package services

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ProfileView is the profile with its media resolved
type ProfileView struct {
	models.Profile
	ImageURL  string
	ResumeURL string
}

type ProjectView struct {
	models.Project
	Image string
	Tags  []string
}

type CertificateView struct {
	models.Certificate
	CategoryName string
	Link         string
}

type GalleryView struct {
	models.GalleryImage
	Image string
}

// PortfolioContext is everything the page template reads
type PortfolioContext struct {
	Profile          ProfileView
	HasProfile       bool
	Education        []models.Education
	SkillCategories  []models.SkillCategory
	Projects         []ProjectView
	Achievements     []models.Achievement
	Certificates     []CertificateView
	Gallery          []GalleryView
	TypingTexts      []string
	ProjectCount     int64
	AchievementCount int64
	CertificateCount int64
	Coffee           int
}

// PortfolioService assembles the read models for the page and the JSON API.
// Nothing is cached; every call reads the store.
type PortfolioService struct {
	db       database.Database
	resolver MediaResolver
	logger   zerolog.Logger
}

func NewPortfolioService(db database.Database, resolver MediaResolver) *PortfolioService {
	return &PortfolioService{
		db:       db,
		resolver: resolver,
		logger:   log.With().Str("service", "PortfolioService").Logger(),
	}
}

func (s *PortfolioService) BuildContext(ctx context.Context) (*PortfolioContext, error) {
	out := &PortfolioContext{Coffee: models.DefaultCupsOfCoffee}

	profile, err := s.db.ProfileRepo().First(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	if profile != nil {
		out.HasProfile = true
		out.Profile = ProfileView{
			Profile:   *profile,
			ImageURL:  s.resolver.Resolve(ctx, profile.ProfileImage),
			ResumeURL: s.resolver.Resolve(ctx, profile.Resume),
		}
		out.Coffee = profile.CupsOfCoffee
	}

	if out.Education, err = s.db.EducationRepo().FindActive(ctx); err != nil {
		return nil, errs.NewDatabaseError("find", "education", err)
	}
	if out.SkillCategories, err = s.db.SkillRepo().FindActiveCategories(ctx); err != nil {
		return nil, errs.NewDatabaseError("find", "skill categories", err)
	}

	projects, err := s.db.ProjectRepo().FindActive(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	out.Projects = make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		out.Projects = append(out.Projects, ProjectView{
			Project: p,
			Image:   s.resolver.Resolve(ctx, p.Image),
			Tags:    p.TagNames(),
		})
	}

	if out.Achievements, err = s.db.AchievementRepo().FindActive(ctx); err != nil {
		return nil, errs.NewDatabaseError("find", "achievements", err)
	}

	certificates, err := s.db.CertificateRepo().FindActive(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "certificates", err)
	}
	out.Certificates = make([]CertificateView, 0, len(certificates))
	for _, c := range certificates {
		out.Certificates = append(out.Certificates, CertificateView{
			Certificate:  c,
			CategoryName: c.CategoryName(),
			Link:         s.resolver.CertificateLink(ctx, c),
		})
	}

	images, err := s.db.GalleryImageRepo().FindActive(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "gallery images", err)
	}
	out.Gallery = make([]GalleryView, 0, len(images))
	for _, g := range images {
		out.Gallery = append(out.Gallery, GalleryView{GalleryImage: g, Image: s.resolver.Resolve(ctx, g.Image)})
	}

	if out.TypingTexts, err = s.db.TypingTextRepo().ActiveTexts(ctx); err != nil {
		return nil, errs.NewDatabaseError("find", "typing texts", err)
	}

	if out.ProjectCount, err = s.db.ProjectRepo().CountActive(ctx); err != nil {
		return nil, errs.NewDatabaseError("count", "projects", err)
	}
	if out.AchievementCount, err = s.db.AchievementRepo().CountActive(ctx); err != nil {
		return nil, errs.NewDatabaseError("count", "achievements", err)
	}
	if out.CertificateCount, err = s.db.CertificateRepo().CountActive(ctx); err != nil {
		return nil, errs.NewDatabaseError("count", "certificates", err)
	}

	return out, nil
}
