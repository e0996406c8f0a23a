package services

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/errs"
)

// PortfolioDocument is the body of GET /api/portfolio. Every list is
// non-nil so it encodes as [] on an empty store.
type PortfolioDocument struct {
	Profile      *ProfileDoc      `json:"profile"`
	Skills       []SkillGroupDoc  `json:"skills"`
	Projects     []ProjectDoc     `json:"projects"`
	Achievements []AchievementDoc `json:"achievements"`
	Certificates []CertificateDoc `json:"certificates"`
	Gallery      []GalleryDoc     `json:"gallery"`
}

type ProfileDoc struct {
	Name          string `json:"name"`
	Tagline       string `json:"tagline"`
	Description   string `json:"description"`
	Email         string `json:"email"`
	Location      string `json:"location"`
	GithubURL     string `json:"github_url"`
	LinkedinURL   string `json:"linkedin_url"`
	LeetcodeURL   string `json:"leetcode_url"`
	HackerrankURL string `json:"hackerrank_url"`
}

type SkillGroupDoc struct {
	Category string     `json:"category"`
	Icon     string     `json:"icon"`
	Skills   []SkillDoc `json:"skills"`
}

type SkillDoc struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Proficiency int    `json:"proficiency"`
}

type ProjectDoc struct {
	Title       string   `json:"title"`
	Emoji       string   `json:"emoji"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	GithubURL   string   `json:"github_url"`
	LiveURL     string   `json:"live_url"`
	Tags        []string `json:"tags"`
}

type AchievementDoc struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Icon        string `json:"icon"`
}

type CertificateDoc struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Link        string `json:"link"`
}

type GalleryDoc struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
}

// Document reads the store directly rather than reusing BuildContext; the
// two shapes select different fields.
func (s *PortfolioService) Document(ctx context.Context) (*PortfolioDocument, error) {
	doc := &PortfolioDocument{
		Skills:       []SkillGroupDoc{},
		Projects:     []ProjectDoc{},
		Achievements: []AchievementDoc{},
		Certificates: []CertificateDoc{},
		Gallery:      []GalleryDoc{},
	}

	profile, err := s.db.ProfileRepo().First(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	if profile != nil {
		doc.Profile = &ProfileDoc{
			Name:          profile.Name,
			Tagline:       profile.Tagline,
			Description:   profile.Description,
			Email:         profile.Email,
			Location:      profile.Location,
			GithubURL:     profile.GithubURL,
			LinkedinURL:   profile.LinkedinURL,
			LeetcodeURL:   profile.LeetcodeURL,
			HackerrankURL: profile.HackerrankURL,
		}
	}

	categories, err := s.db.SkillRepo().FindActiveCategories(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skill categories", err)
	}
	for _, c := range categories {
		group := SkillGroupDoc{Category: c.Name, Icon: c.Icon, Skills: make([]SkillDoc, 0, len(c.Skills))}
		for _, sk := range c.Skills {
			group.Skills = append(group.Skills, SkillDoc{Name: sk.Name, Icon: sk.Icon, Proficiency: sk.Proficiency})
		}
		doc.Skills = append(doc.Skills, group)
	}

	projects, err := s.db.ProjectRepo().FindActive(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	for _, p := range projects {
		doc.Projects = append(doc.Projects, ProjectDoc{
			Title:       p.Title,
			Emoji:       p.Emoji,
			Description: p.Description,
			Image:       s.resolver.Resolve(ctx, p.Image),
			GithubURL:   p.GithubURL,
			LiveURL:     p.LiveURL,
			Tags:        p.TagNames(),
		})
	}

	achievements, err := s.db.AchievementRepo().FindActive(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "achievements", err)
	}
	for _, a := range achievements {
		doc.Achievements = append(doc.Achievements, AchievementDoc{
			Title:       a.Title,
			Description: a.Description,
			Date:        a.Date,
			Icon:        a.Icon,
		})
	}

	certificates, err := s.db.CertificateRepo().FindActive(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "certificates", err)
	}
	for _, c := range certificates {
		doc.Certificates = append(doc.Certificates, CertificateDoc{
			Title:       c.Title,
			Issuer:      c.Issuer,
			Description: c.Description,
			Icon:        c.Icon,
			Link:        s.resolver.CertificateLink(ctx, c),
		})
	}

	images, err := s.db.GalleryImageRepo().FindActive(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "gallery images", err)
	}
	for _, g := range images {
		doc.Gallery = append(doc.Gallery, GalleryDoc{
			Title:    g.Title,
			Subtitle: g.Subtitle,
			Image:    s.resolver.Resolve(ctx, g.Image),
		})
	}

	return doc, nil
}
