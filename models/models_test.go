package models

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":             "hello-world",
		"  Hello   World  ":       "hello-world",
		"Café au lait":            "cafe-au-lait",
		"Go, Rust & C++!":         "go-rust-c",
		"already-a-slug":          "already-a-slug",
		"--dashes--and__unders__": "dashes-and__unders",
		"multi - - hyphen":        "multi-hyphen",
		"日本語":                     "",
		"":                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	for _, in := range []string{"Hello World", "Café au lait", "AI & ML: 2024 Recap"} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestBlogPost_SlugCollisionGetsSuffix(t *testing.T) {
	db := newTestDB(t)

	first := &BlogPost{Title: strPtr("Hello World")}
	second := &BlogPost{Title: strPtr("Hello World")}
	third := &BlogPost{Title: strPtr("Hello, World!")}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)
	require.NoError(t, db.Create(third).Error)

	assert.Equal(t, "hello-world", *first.Slug)
	assert.Equal(t, "hello-world-2", *second.Slug)
	assert.Equal(t, "hello-world-3", *third.Slug)
}

func TestBlogPost_SlugNotRecomputedOnSave(t *testing.T) {
	db := newTestDB(t)

	post := &BlogPost{Title: strPtr("Original Title")}
	require.NoError(t, db.Create(post).Error)
	require.Equal(t, "original-title", *post.Slug)

	post.Title = strPtr("Renamed Title")
	require.NoError(t, db.Save(post).Error)

	var reloaded BlogPost
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	assert.Equal(t, "original-title", *reloaded.Slug)
	assert.Equal(t, "Renamed Title", *reloaded.Title)
}

func TestBlogPost_ExplicitSlugKept(t *testing.T) {
	db := newTestDB(t)

	post := &BlogPost{Title: strPtr("Some Title"), Slug: strPtr("custom-slug")}
	require.NoError(t, db.Create(post).Error)
	assert.Equal(t, "custom-slug", *post.Slug)

	dup := &BlogPost{Title: strPtr("Other"), Slug: strPtr("custom-slug")}
	assert.Error(t, db.Create(dup).Error)
}

func TestBlogPost_Defaults(t *testing.T) {
	db := newTestDB(t)

	post := &BlogPost{Title: strPtr("Defaults")}
	require.NoError(t, db.Create(post).Error)

	var reloaded BlogPost
	require.NoError(t, db.First(&reloaded, post.ID).Error)
	require.NotNil(t, reloaded.DatePublished)
	require.NotNil(t, reloaded.ViewsCount)
	assert.Equal(t, 0, *reloaded.ViewsCount)
	require.NotNil(t, reloaded.IsPublished)
	assert.True(t, *reloaded.IsPublished)
}

func TestBlogPost_NoTitleLeavesSlugEmpty(t *testing.T) {
	db := newTestDB(t)

	post := &BlogPost{}
	require.NoError(t, db.Create(post).Error)
	assert.Nil(t, post.Slug)
}

func TestProject_SlugAndFallback(t *testing.T) {
	db := newTestDB(t)

	p1 := &Project{Name: strPtr("Vision Lab")}
	p2 := &Project{Name: strPtr("Vision Lab")}
	p3 := &Project{Name: strPtr("ビジョン")}
	require.NoError(t, db.Create(p1).Error)
	require.NoError(t, db.Create(p2).Error)
	require.NoError(t, db.Create(p3).Error)

	assert.Equal(t, "vision-lab", *p1.Slug)
	assert.Equal(t, "vision-lab-2", *p2.Slug)
	assert.Equal(t, "project", *p3.Slug)

	var reloaded Project
	require.NoError(t, db.First(&reloaded, p1.ID).Error)
	require.NotNil(t, reloaded.Status)
	assert.Equal(t, StatusOngoing, *reloaded.Status)
}

func TestMember_DeleteRemovesAuthorLinksOnly(t *testing.T) {
	db := newTestDB(t)
	alice := Member{Name: strPtr("Alice")}
	require.NoError(t, db.Create(&alice).Error)
	post := &BlogPost{Title: strPtr("Joint"), AuthorMembers: []Member{alice}}
	require.NoError(t, db.Create(post).Error)

	require.NoError(t, db.Delete(&alice).Error)

	var reloaded BlogPost
	require.NoError(t, db.Preload("AuthorMembers").First(&reloaded, post.ID).Error)
	assert.Empty(t, reloaded.AuthorMembers)

	var links int64
	require.NoError(t, db.Table("blog_post_author_members").Count(&links).Error)
	assert.Zero(t, links)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "Unnamed - Member", Member{}.String())
	assert.Equal(t, "Ada - Lead", Member{Name: strPtr("Ada"), Designation: strPtr("Lead")}.String())
	assert.Equal(t, "Untitled - Unknown", BlogPost{}.String())
	assert.Equal(t, "Unnamed Project - ongoing", Project{Status: strPtr(StatusOngoing)}.String())
}

func TestGenerateColumnMismatchReport(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Exec("ALTER TABLE members ADD COLUMN legacy_rank integer").Error)

	report, err := GenerateColumnMismatchReport(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy_rank"}, report["members"])
	assert.Empty(t, report["blog_posts"])
	assert.Empty(t, report["projects"])
}
