package database

import (
	"context"

	"github.com/aiclub/website-backend/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Database struct {
	db           *gorm.DB
	memberRepo   *MemberRepo
	blogPostRepo *BlogPostRepo
	projectRepo  *ProjectRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:           db,
		memberRepo:   NewMemberRepo(db),
		blogPostRepo: NewBlogPostRepo(db),
		projectRepo:  NewProjectRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) MemberRepo() *MemberRepo {
	return d.memberRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

// Migrate creates or updates every table.
func (d Database) Migrate() error {
	return errors.Wrap(models.Migrate(d.db), "auto migrate")
}

// Ping checks that the primary connection is usable.
func (d Database) Ping(ctx context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (d Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	return sqlDB.Close()
}
