package database

import (
	"context"

	"github.com/aiclub/website-backend/filters"
	"github.com/aiclub/website-backend/models"
	"gorm.io/gorm"
)

type MemberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) *MemberRepo {
	return &MemberRepo{db}
}

// List returns one page of members matching params.
func (r *MemberRepo) List(ctx context.Context, params filters.MemberParams, page filters.Page) (ListResult[models.Member], error) {
	return listPage[models.Member](ctx, r.db, "member", params.Scopes(), filters.MemberOrdering.Scope(params.Ordering), page)
}

// FindByID returns a member by its ID
func (r *MemberRepo) FindByID(ctx context.Context, id uint) (*models.Member, error) {
	return findByID[models.Member](ctx, r.db, "member", id)
}

// ListPorHolders returns every member holding a position of responsibility.
func (r *MemberRepo) ListPorHolders(ctx context.Context) ([]models.Member, error) {
	return listAll[models.Member](ctx, r.db, "member", filters.MemberOrdering.DefaultScope(), filters.Equals("is_por_holder", true))
}

// ListActive returns every active member.
func (r *MemberRepo) ListActive(ctx context.Context) ([]models.Member, error) {
	return listAll[models.Member](ctx, r.db, "member", filters.MemberOrdering.DefaultScope(), filters.Equals("is_active", true))
}

// Add inserts a new member into the database
func (r *MemberRepo) Add(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// Delete removes a member and its authorship links. Blog posts are kept.
func (r *MemberRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Member{ID: id}).Error
}
