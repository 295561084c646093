package database

import (
	"context"
	"errors"

	"github.com/aiclub/website-backend/errs"
	"github.com/aiclub/website-backend/filters"
	"github.com/aiclub/website-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// withAuthors loads author members in a stable order.
func withAuthors(db *gorm.DB) *gorm.DB {
	return db.Preload("AuthorMembers", func(db *gorm.DB) *gorm.DB {
		return db.Order("members.id")
	})
}

// List returns one page of blog posts matching params, authors included.
func (r *BlogPostRepo) List(ctx context.Context, params filters.BlogPostParams, page filters.Page) (ListResult[models.BlogPost], error) {
	return listPage[models.BlogPost](ctx, r.db, "blog post", params.Scopes(), filters.BlogPostOrdering.Scope(params.Ordering), page, withAuthors)
}

// FindByID returns a blog post by its ID
func (r *BlogPostRepo) FindByID(ctx context.Context, id uint) (*models.BlogPost, error) {
	return findByID[models.BlogPost](ctx, r.db, "blog post", id, withAuthors)
}

// Add inserts a new blog post and its author links.
func (r *BlogPostRepo) Add(ctx context.Context, blogPost *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(blogPost).Error
}

// SetAuthors replaces the author members of a blog post.
func (r *BlogPostRepo) SetAuthors(ctx context.Context, blogPost *models.BlogPost, members []models.Member) error {
	return r.db.WithContext(ctx).Model(blogPost).Association("AuthorMembers").Replace(members)
}

// IncrementViews adds one to the view counter of a blog post in a single
// statement, so concurrent calls never lose an update. The row's modification
// time is left untouched.
func (r *BlogPostRepo) IncrementViews(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.BlogPost{}).
			Where("id = ?", id).
			UpdateColumn("views_count", gorm.Expr("COALESCE(views_count, 0) + 1"))
		if result.Error != nil {
			return errs.NewDatabaseError("increment views of", "blog post", result.Error)
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFound("blog post")
		}
		return nil
	})
	if err != nil {
		var apiErr *errs.ApiErr
		if errors.As(err, &apiErr) {
			return err
		}
		return errs.NewTransactionFailedError("increment views", err)
	}
	return nil
}

// ViewsCount reads the current view counter.
func (r *BlogPostRepo) ViewsCount(ctx context.Context, id uint) (int, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).Select("id", "views_count").First(&post, id).Error
	if err != nil {
		return 0, errs.NewDatabaseError("get", "blog post", err)
	}
	if post.ViewsCount == nil {
		return 0, nil
	}
	return *post.ViewsCount, nil
}
