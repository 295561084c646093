package seed

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aiclub/website-backend/database"
	"github.com/aiclub/website-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRun_PopulatesSampleData(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	summary, err := New(db, 42, fixedNow).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Summary{Members: 23, BlogPosts: 12, Projects: 7}, summary)

	var porHolders int64
	require.NoError(t, db.Model(&models.Member{}).Where("is_por_holder = ?", true).Count(&porHolders).Error)
	assert.EqualValues(t, 8, porHolders)

	var posts []models.BlogPost
	require.NoError(t, db.Preload("AuthorMembers").Find(&posts).Error)
	require.Len(t, posts, 12)
	for _, p := range posts {
		require.NotEmpty(t, p.AuthorMembers, *p.Title)
		assert.LessOrEqual(t, len(p.AuthorMembers), 3)
		assert.NotNil(t, p.Slug)
		for _, m := range p.AuthorMembers {
			assert.Contains(t, *p.Author, *m.Name)
		}
	}

	var projects []models.Project
	require.NoError(t, db.Order("id").Find(&projects).Error)
	require.Len(t, projects, 7)
	for i, p := range projects {
		assert.Equal(t, models.ProjectStatuses[i%3], *p.Status)
		if *p.Status == models.StatusOngoing {
			assert.Nil(t, p.EndDate, *p.Name)
		} else {
			require.NotNil(t, p.EndDate, *p.Name)
			assert.True(t, time.Time(*p.EndDate).After(time.Time(*p.StartDate)))
		}
	}
}

func TestRun_FileBackedSQLite(t *testing.T) {
	db, err := database.Connect(database.Options{
		Type:   database.TypeSQLite,
		DSN:    filepath.Join(t.TempDir(), "db.sqlite3"),
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store := database.New(db)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate())

	ctx := context.Background()
	for _, seedValue := range []uint64{0, 1} {
		summary, err := New(db, seedValue, fixedNow).Run(ctx)
		require.NoError(t, err, "seed %d", seedValue)
		assert.Equal(t, Summary{Members: 23, BlogPosts: 12, Projects: 7}, summary)
	}

	var posts, projects int64
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&posts).Error)
	require.NoError(t, db.Model(&models.Project{}).Count(&projects).Error)
	assert.EqualValues(t, 12, posts)
	assert.EqualValues(t, 7, projects)
}

func TestRun_ReplacesExistingData(t *testing.T) {
	db := database.NewTestDB(t)
	ctx := context.Background()

	_, err := New(db, 1, fixedNow).Run(ctx)
	require.NoError(t, err)
	_, err = New(db, 2, fixedNow).Run(ctx)
	require.NoError(t, err)

	var members, posts, links int64
	require.NoError(t, db.Model(&models.Member{}).Count(&members).Error)
	require.NoError(t, db.Model(&models.BlogPost{}).Count(&posts).Error)
	require.NoError(t, db.Table("blog_post_author_members").Count(&links).Error)
	assert.EqualValues(t, 23, members)
	assert.EqualValues(t, 12, posts)
	assert.LessOrEqual(t, links, int64(36))
}

func TestSeeder_Deterministic(t *testing.T) {
	a := New(nil, 7, fixedNow)
	b := New(nil, 7, fixedNow)

	ma, mb := a.members(), b.members()
	require.Len(t, ma, 23)
	for i := range ma {
		assert.Equal(t, *ma[i].Name, *mb[i].Name)
		assert.Equal(t, *ma[i].Batch, *mb[i].Batch)
		assert.Equal(t, *ma[i].IsActive, *mb[i].IsActive)
	}

	pa, pb := a.projects(), b.projects()
	for i := range pa {
		assert.Equal(t, time.Time(*pa[i].StartDate), time.Time(*pb[i].StartDate))
	}
}
