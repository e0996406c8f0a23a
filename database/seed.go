package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// SeedReport counts the rows written by Seed, per entity
type SeedReport struct {
	Profiles      int
	TypingTexts   int
	Education     int
	SkillGroups   int
	Skills        int
	Projects      int
	Achievements  int
	CertGroups    int
	Certificates  int
	GalleryImages int
}

type seedSkill struct {
	name        string
	icon        string
	proficiency int
}

type seedSkillGroup struct {
	name   string
	icon   string
	skills []seedSkill
}

type seedProject struct {
	project models.Project
	tags    []string
}

type seedCertificate struct {
	category    string
	certificate models.Certificate
}

var (
	seedProfile = models.Profile{
		Name:          "Jane Doe",
		Tagline:       "Software Engineer | ML Enthusiast | Problem Solver",
		Description:   "Student developer building small, useful tools and learning in public.",
		AboutText1:    "I study computer science with a focus on machine learning and enjoy turning ideas into working software.",
		AboutText2:    "Most of my projects pair a simple web front end with a model or data pipeline behind it.",
		AboutText3:    "Outside coursework I contribute to open source and take part in hackathons.",
		Email:         "jane.doe@example.com",
		Location:      "Springfield",
		GithubURL:     "https://github.com/example",
		LinkedinURL:   "https://www.linkedin.com/in/example/",
		LeetcodeURL:   "https://leetcode.com/u/example/",
		HackerrankURL: "https://www.hackerrank.com/profile/example",
		CupsOfCoffee:  models.DefaultCupsOfCoffee,
		ProfileImage:  models.StoredFile("profile/avatar.jpg"),
		Resume:        models.StoredFile("resume/resume.pdf"),
	}

	seedTypingTexts = []string{"Full Stack Developer", "Problem Solver", "ML Enthusiast", "Tech Explorer"}

	seedEducation = []models.Education{
		{Degree: "Bachelor of Technology in Computer Science", Institution: "Example University", YearRange: "2024 - 2028", Grade: "CGPA: 8.5", Order: 1},
		{Degree: "Senior Secondary Education", Institution: "Example Public School", YearRange: "2022 - 2024", Grade: "Percentage: 90%", Order: 2},
	}

	seedSkillGroups = []seedSkillGroup{
		{name: "Programming Languages", icon: "fas fa-laptop-code", skills: []seedSkill{
			{"Go", "fas fa-code", 85},
			{"Python", "fab fa-python", 90},
			{"JavaScript", "fab fa-js", 80},
		}},
		{name: "Frameworks & Technologies", icon: "fas fa-tools", skills: []seedSkill{
			{"Flask", "fas fa-flask", 80},
			{"React", "fab fa-react", 75},
		}},
		{name: "Machine Learning & AI", icon: "fas fa-brain", skills: []seedSkill{
			{"scikit-learn", "fas fa-cogs", 85},
			{"TensorFlow", "fas fa-brain", 75},
		}},
		{name: "Tools & Platforms", icon: "fas fa-cloud", skills: []seedSkill{
			{"Git/GitHub", "fab fa-github", 90},
			{"Docker", "fab fa-docker", 70},
		}},
	}

	seedProjects = []seedProject{
		{
			project: models.Project{
				Title:       "Trip Planner",
				Emoji:       "✈️",
				Description: "Itinerary generator with interactive maps and route planning.",
				GithubURL:   "https://github.com/example/trip-planner",
				LiveURL:     "https://trip-planner.example.com/",
				Image:       models.StoredFile("projects/trip-planner.png"),
				Order:       1,
			},
			tags: []string{"Flask", "Leaflet.js"},
		},
		{
			project: models.Project{
				Title:       "Climate Data Explorer",
				Emoji:       "🌍",
				Description: "Charts and anomaly detection over public weather data.",
				GithubURL:   "https://github.com/example/climate-explorer",
				LiveURL:     "https://github.com/example/climate-explorer",
				Image:       models.StoredFile("projects/climate-explorer.png"),
				Order:       2,
			},
			tags: []string{"Flask", "Chart.js", "Open-Meteo API"},
		},
		{
			project: models.Project{
				Title:       "Fake Image Detector",
				Emoji:       "🔍",
				Description: "Classifier that flags manipulated images.",
				GithubURL:   "https://github.com/example/fake-image-detector",
				LiveURL:     "https://github.com/example/fake-image-detector",
				Order:       3,
			},
			tags: []string{"Python", "Deep Learning"},
		},
	}

	seedAchievements = []models.Achievement{
		{Title: "Hackathon Runner-up", Description: "Placed second at a regional student hackathon.", Date: "2025", Icon: "fas fa-trophy", Order: 1},
		{Title: "Machine Learning Course Completion", Description: "Completed an online machine learning specialization.", Date: "2024-2025", Icon: "fas fa-graduation-cap", Order: 2},
		{Title: "Cloud Fundamentals", Description: "Earned an entry level cloud certification.", Date: "2025", Icon: "fas fa-certificate", Order: 3},
	}

	seedCertGroups = []string{"Cloud", "Machine Learning", "Web Development"}

	seedCertificates = []seedCertificate{
		{category: "Cloud", certificate: models.Certificate{Title: "Cloud Fundamentals", Issuer: "Example Cloud", Description: "Cloud Certification", Icon: "fas fa-cloud", CertificateFile: models.StoredFile("certificates/cloud-fundamentals.pdf")}},
		{category: "Machine Learning", certificate: models.Certificate{Title: "Supervised Machine Learning", Issuer: "Example Online Academy", Description: "Machine Learning", Icon: "fas fa-chart-line", CertificateURL: "https://academy.example.com/verify/ml-101"}},
		{category: "Web Development", certificate: models.Certificate{Title: "JavaScript Certification", Issuer: "Example Springboard", Description: "Web Development", Icon: "fab fa-js", CertificateFile: models.ExternalURL("https://cdn.example.com/certificates/js.pdf")}},
	}

	seedGallery = []models.GalleryImage{
		{Title: "Hackathon 2025", Subtitle: "Runner-up", Image: models.StoredFile("gallery/hackathon.jpg"), Order: 1},
		{Title: "Tech Fest", Subtitle: "Participant", Image: models.StoredFile("gallery/techfest.jpg"), Order: 2},
	}
)

// Seed loads the sample portfolio. Rows are matched on their natural key
// (title, name, degree, text) so running it twice updates instead of
// duplicating. Contact messages are never seeded.
func Seed(ctx context.Context, db *gorm.DB) (SeedReport, error) {
	var report SeedReport

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile := seedProfile
		if err := NewProfileRepo(tx).Save(ctx, &profile); err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		report.Profiles++

		for i, text := range seedTypingTexts {
			row := models.TypingText{Text: text, Order: i, IsActive: true}
			if err := upsertBy(tx, &row, &row.ID, "text = ?", text); err != nil {
				return fmt.Errorf("seed typing text %q: %w", text, err)
			}
			report.TypingTexts++
		}

		for _, e := range seedEducation {
			row := e
			row.IsActive = true
			if err := upsertBy(tx, &row, &row.ID, "degree = ?", row.Degree); err != nil {
				return fmt.Errorf("seed education %q: %w", row.Degree, err)
			}
			report.Education++
		}

		for i, group := range seedSkillGroups {
			category := models.SkillCategory{Name: group.name, Icon: group.icon, Order: i + 1, IsActive: true}
			if err := upsertBy(tx, &category, &category.ID, "name = ?", group.name); err != nil {
				return fmt.Errorf("seed skill category %q: %w", group.name, err)
			}
			report.SkillGroups++

			for j, s := range group.skills {
				skill := models.Skill{
					CategoryID:  category.ID,
					Name:        s.name,
					Icon:        s.icon,
					Proficiency: s.proficiency,
					Order:       j,
					IsActive:    true,
				}
				if err := upsertBy(tx, &skill, &skill.ID, "category_id = ? AND name = ?", category.ID, s.name); err != nil {
					return fmt.Errorf("seed skill %q: %w", s.name, err)
				}
				report.Skills++
			}
		}

		for _, p := range seedProjects {
			row := p.project
			row.IsActive = true
			if err := upsertBy(tx, &row, &row.ID, "title = ?", row.Title); err != nil {
				return fmt.Errorf("seed project %q: %w", row.Title, err)
			}
			if err := replaceTags(tx, row.ID, p.tags); err != nil {
				return fmt.Errorf("seed project tags %q: %w", row.Title, err)
			}
			report.Projects++
		}

		for _, a := range seedAchievements {
			row := a
			row.IsActive = true
			if err := upsertBy(tx, &row, &row.ID, "title = ?", row.Title); err != nil {
				return fmt.Errorf("seed achievement %q: %w", row.Title, err)
			}
			report.Achievements++
		}

		categoryIDs := make(map[string]uint, len(seedCertGroups))
		for i, name := range seedCertGroups {
			category := models.CertificateCategory{Name: name, Order: i + 1, IsActive: true}
			if err := upsertBy(tx, &category, &category.ID, "name = ?", name); err != nil {
				return fmt.Errorf("seed certificate category %q: %w", name, err)
			}
			categoryIDs[name] = category.ID
			report.CertGroups++
		}

		for i, c := range seedCertificates {
			row := c.certificate
			row.Order = i + 1
			row.IsActive = true
			if id, ok := categoryIDs[c.category]; ok {
				row.CategoryID = &id
			}
			if err := upsertBy(tx, &row, &row.ID, "title = ?", row.Title); err != nil {
				return fmt.Errorf("seed certificate %q: %w", row.Title, err)
			}
			report.Certificates++
		}

		for _, g := range seedGallery {
			row := g
			row.IsActive = true
			if err := upsertBy(tx, &row, &row.ID, "title = ?", row.Title); err != nil {
				return fmt.Errorf("seed gallery image %q: %w", row.Title, err)
			}
			report.GalleryImages++
		}

		return nil
	})

	return report, err
}

// upsertBy looks up an existing row matching the natural key, takes over its
// ID and saves row over it, or inserts row when there is no match.
func upsertBy(tx *gorm.DB, row any, id *uint, query string, args ...any) error {
	var ids []uint
	err := tx.Session(&gorm.Session{NewDB: true}).
		Model(row).
		Where(query, args...).
		Order("id").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return tx.Create(row).Error
	}
	*id = ids[0]
	return tx.Omit("created_at").Save(row).Error
}
