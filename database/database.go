package database

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	db                 *gorm.DB
	profileRepo        *ProfileRepo
	educationRepo      *EducationRepo
	skillRepo          *SkillRepo
	projectRepo        *ProjectRepo
	projectTagRepo     *ProjectTagRepo
	achievementRepo    *AchievementRepo
	certificateRepo    *CertificateRepo
	galleryImageRepo   *GalleryImageRepo
	contactMessageRepo *ContactMessageRepo
	typingTextRepo     *TypingTextRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		profileRepo:        NewProfileRepo(db),
		educationRepo:      NewEducationRepo(db),
		skillRepo:          NewSkillRepo(db),
		projectRepo:        NewProjectRepo(db),
		projectTagRepo:     NewProjectTagRepo(db),
		achievementRepo:    NewAchievementRepo(db),
		certificateRepo:    NewCertificateRepo(db),
		galleryImageRepo:   NewGalleryImageRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		typingTextRepo:     NewTypingTextRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectTagRepo() *ProjectTagRepo {
	return d.projectTagRepo
}

func (d Database) AchievementRepo() *AchievementRepo {
	return d.achievementRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) GalleryImageRepo() *GalleryImageRepo {
	return d.galleryImageRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) TypingTextRepo() *TypingTextRepo {
	return d.typingTextRepo
}

// DB returns the underlying connection for maintenance tasks
func (d Database) DB() *gorm.DB {
	return d.db
}

// Ping checks that the store answers
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates every table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
