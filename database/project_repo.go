package database

import (
	"context"

	"github.com/aiclub/website-backend/filters"
	"github.com/aiclub/website-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// List returns one page of projects matching params.
func (r *ProjectRepo) List(ctx context.Context, params filters.ProjectParams, page filters.Page) (ListResult[models.Project], error) {
	return listPage[models.Project](ctx, r.db, "project", params.Scopes(), filters.ProjectOrdering.Scope(params.Ordering), page)
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	return findByID[models.Project](ctx, r.db, "project", id)
}

// ListByStatus returns every project with the given status in default order.
func (r *ProjectRepo) ListByStatus(ctx context.Context, status string) ([]models.Project, error) {
	return listAll[models.Project](ctx, r.db, "project", filters.ProjectOrdering.DefaultScope(), filters.Equals("status", status))
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}
