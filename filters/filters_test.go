package filters

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/aiclub/website-backend/errs"
	"github.com/aiclub/website-backend/models"
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
	require.NoError(t, models.Migrate(db))
	return db
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func seedMembers(t *testing.T, db *gorm.DB) {
	t.Helper()
	members := []models.Member{
		{Name: strPtr("Alice"), Designation: strPtr("Technical Lead"), Batch: strPtr("2024"), IsPorHolder: true, IsActive: boolPtr(true), Bio: strPtr("Vision and robotics")},
		{Name: strPtr("Bob"), Designation: strPtr("Member"), Batch: strPtr("2025"), IsActive: boolPtr(false), Bio: strPtr("NLP 100%")},
		{Name: strPtr("Carol"), Designation: strPtr("Design Lead"), Batch: strPtr("2024"), IsPorHolder: true, IsActive: boolPtr(true)},
		{Name: strPtr("dave"), Designation: strPtr("Member"), Batch: strPtr("2026"), IsActive: boolPtr(true), Bio: strPtr("snake_case fan")},
	}
	require.NoError(t, db.Create(&members).Error)
}

func names(t *testing.T, db *gorm.DB, scopes ...Scope) []string {
	t.Helper()
	var members []models.Member
	require.NoError(t, db.Scopes(scopes...).Find(&members).Error)
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, *m.Name)
	}
	return out
}

func TestParseBool(t *testing.T) {
	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("TRUE"))
	assert.True(t, ParseBool("True"))
	assert.False(t, ParseBool("false"))
	assert.False(t, ParseBool("1"))
	assert.False(t, ParseBool("yes"))
	assert.False(t, ParseBool(""))
}

func TestOptionalBool(t *testing.T) {
	q, err := url.ParseQuery("active=TRUE&por_holders=&published=nope")
	require.NoError(t, err)

	require.NotNil(t, OptionalBool(q, "active"))
	assert.True(t, *OptionalBool(q, "active"))
	require.NotNil(t, OptionalBool(q, "por_holders"))
	assert.False(t, *OptionalBool(q, "por_holders"))
	assert.False(t, *OptionalBool(q, "published"))
	assert.Nil(t, OptionalBool(q, "missing"))
}

func TestBooleanFilter_ThreeValued(t *testing.T) {
	db := newTestDB(t)
	seedMembers(t, db)

	for _, tc := range []struct {
		query string
		want  []string
	}{
		{"por_holders=true", []string{"Alice", "Carol"}},
		{"por_holders=TrUe", []string{"Alice", "Carol"}},
		{"por_holders=false", []string{"Bob", "dave"}},
		{"por_holders=1", []string{"Bob", "dave"}},
		{"por_holders=", []string{"Bob", "dave"}},
		{"", []string{"Alice", "Bob", "Carol", "dave"}},
	} {
		t.Run(tc.query, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			p := ParseMemberParams(q)
			got := names(t, db, append(p.Scopes(), orderBy([]string{"id"}))...)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMemberParams_Filters(t *testing.T) {
	db := newTestDB(t)
	seedMembers(t, db)
	byID := orderBy([]string{"id"})

	q := url.Values{"designation": {"lead"}}
	assert.Equal(t, []string{"Alice", "Carol"}, names(t, db, append(ParseMemberParams(q).Scopes(), byID)...))

	q = url.Values{"batch": {"2024"}, "active": {"true"}}
	assert.Equal(t, []string{"Alice", "Carol"}, names(t, db, append(ParseMemberParams(q).Scopes(), byID)...))

	q = url.Values{"batch": {"202"}}
	assert.Empty(t, names(t, db, ParseMemberParams(q).Scopes()...))

	q = url.Values{"active": {"false"}}
	assert.Equal(t, []string{"Bob"}, names(t, db, ParseMemberParams(q).Scopes()...))
}

func TestMemberParams_EmptyValuesStillFilter(t *testing.T) {
	db := newTestDB(t)
	seedMembers(t, db)
	require.NoError(t, db.Create(&models.Member{Name: strPtr("Eve"), Batch: strPtr("2024")}).Error)
	byID := orderBy([]string{"id"})

	assert.Empty(t, names(t, db, ParseMemberParams(url.Values{"batch": {""}}).Scopes()...))
	// an empty substring matches every designation but never a NULL one
	assert.Equal(t, []string{"Alice", "Bob", "Carol", "dave"},
		names(t, db, append(ParseMemberParams(url.Values{"designation": {""}}).Scopes(), byID)...))
	// values are matched as sent
	assert.Empty(t, names(t, db, ParseMemberParams(url.Values{"designation": {" lead"}}).Scopes()...))
	assert.Len(t, names(t, db, ParseMemberParams(url.Values{}).Scopes()...), 5)
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(url.Values{}, "status"))
	require.NotNil(t, OptionalString(url.Values{"status": {""}}, "status"))
	assert.Equal(t, "", *OptionalString(url.Values{"status": {""}}, "status"))
	assert.Equal(t, " x ", *OptionalString(url.Values{"status": {" x ", "y"}}, "status"))
}

func TestSearch(t *testing.T) {
	db := newTestDB(t)
	seedMembers(t, db)
	byID := orderBy([]string{"id"})

	assert.Equal(t, []string{"Alice", "Carol"}, names(t, db, Search("LEAD", MemberSearchFields), byID))
	// every term must match some field
	assert.Equal(t, []string{"Alice"}, names(t, db, Search("lead robotics", MemberSearchFields), byID))
	assert.Equal(t, []string{"Alice"}, names(t, db, Search("lead,robotics", MemberSearchFields), byID))
	assert.Empty(t, names(t, db, Search("lead nlp", MemberSearchFields)))
	assert.Len(t, names(t, db, Search("   ", MemberSearchFields)), 4)
}

func TestSearch_WildcardsAreLiteral(t *testing.T) {
	db := newTestDB(t)
	seedMembers(t, db)

	assert.Equal(t, []string{"Bob"}, names(t, db, Search("100%", MemberSearchFields)))
	assert.Equal(t, []string{"dave"}, names(t, db, Search("snake_case", MemberSearchFields)))
	assert.Empty(t, names(t, db, Search("a%e", MemberSearchFields)))
	assert.Empty(t, names(t, db, Contains("bio", "a_e")))
}

func TestSearchTerms(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SearchTerms(" a,b\tc ,, "))
	assert.Empty(t, SearchTerms(""))
}

func TestOrdering_Terms(t *testing.T) {
	assert.Equal(t, []string{"-name", "batch"}, MemberOrdering.Terms("-name, batch"))
	assert.Equal(t, []string{"batch"}, MemberOrdering.Terms("password,batch"))
	assert.Equal(t, MemberOrdering.Default, MemberOrdering.Terms("email"))
	assert.Equal(t, MemberOrdering.Default, MemberOrdering.Terms(""))
	assert.Equal(t, []string{"-views_count"}, BlogPostOrdering.Terms("-views_count"))
	assert.Equal(t, ProjectOrdering.Default, ProjectOrdering.Terms("status"))
}

func TestOrdering_Scope(t *testing.T) {
	db := newTestDB(t)
	seedMembers(t, db)

	assert.Equal(t, []string{"Alice", "Carol", "Bob", "dave"}, names(t, db, MemberOrdering.DefaultScope()))
	assert.Equal(t, []string{"dave", "Carol", "Bob", "Alice"}, names(t, db, MemberOrdering.Scope("-name")))
	// ties on batch fall back to id
	assert.Equal(t, []string{"Alice", "Carol", "Bob", "dave"}, names(t, db, MemberOrdering.Scope("batch")))
	// unknown names are ignored
	assert.Equal(t, []string{"Alice", "Carol", "Bob", "dave"}, names(t, db, MemberOrdering.Scope("bio")))
}

func TestProjectParams(t *testing.T) {
	db := newTestDB(t)
	projects := []models.Project{
		{Name: strPtr("Vision"), Status: strPtr(models.StatusOngoing), TechnologiesUsed: strPtr("Python, PyTorch")},
		{Name: strPtr("Chatbot"), Status: strPtr(models.StatusCompleted), TechnologiesUsed: strPtr("Go, React")},
		{Name: strPtr("Planner"), Status: strPtr(models.StatusPlanned), TechnologiesUsed: strPtr("pytorch")},
	}
	require.NoError(t, db.Create(&projects).Error)

	var got []models.Project
	p := ParseProjectParams(url.Values{"technology": {"PyTorch"}})
	require.NoError(t, db.Scopes(p.Scopes()...).Scopes(orderBy([]string{"id"})).Find(&got).Error)
	require.Len(t, got, 2)
	assert.Equal(t, "Vision", *got[0].Name)
	assert.Equal(t, "Planner", *got[1].Name)

	got = nil
	p = ParseProjectParams(url.Values{"status": {"completed"}})
	require.NoError(t, db.Scopes(p.Scopes()...).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "Chatbot", *got[0].Name)
}

func TestProjectParams_EmptyStatus(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&[]models.Project{
		{Name: strPtr("Vision"), Status: strPtr(models.StatusOngoing)},
		{Name: strPtr("Chatbot"), Status: strPtr(models.StatusCompleted)},
	}).Error)

	var got []models.Project
	p := ParseProjectParams(url.Values{"status": {""}})
	require.NoError(t, db.Scopes(p.Scopes()...).Find(&got).Error)
	assert.Empty(t, got)
}

func TestBlogPostParams(t *testing.T) {
	db := newTestDB(t)
	posts := []models.BlogPost{
		{Title: strPtr("One"), Author: strPtr("Jane Doe"), IsPublished: boolPtr(true)},
		{Title: strPtr("Two"), Author: strPtr("John Roe"), IsPublished: boolPtr(false)},
	}
	require.NoError(t, db.Create(&posts).Error)

	var got []models.BlogPost
	p := ParseBlogPostParams(url.Values{"published": {"True"}})
	require.NoError(t, db.Scopes(p.Scopes()...).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "One", *got[0].Title)

	got = nil
	p = ParseBlogPostParams(url.Values{"author": {"roe"}})
	require.NoError(t, db.Scopes(p.Scopes()...).Find(&got).Error)
	require.Len(t, got, 1)
	assert.Equal(t, "Two", *got[0].Title)
}

func TestParsePage(t *testing.T) {
	p, err := ParsePage(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, PageSize, p.Size)

	p, err = ParsePage(url.Values{"page": {"3"}})
	require.NoError(t, err)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, 20, p.Offset())

	for _, raw := range []string{"0", "-1", "abc", "1.5"} {
		_, err = ParsePage(url.Values{"page": {raw}})
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, errs.ErrInvalidPage, raw)
		var apiErr *errs.ApiErr
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 404, apiErr.StatusCode)
	}
}

func TestPage_Resolve(t *testing.T) {
	p, _ := ParsePage(url.Values{})
	resolved, err := p.Resolve(0)
	require.NoError(t, err, "page 1 of an empty list is valid")
	assert.False(t, resolved.HasNext(0))
	assert.False(t, resolved.HasPrevious())

	p, _ = ParsePage(url.Values{"page": {"3"}})
	_, err = p.Resolve(20)
	assert.ErrorIs(t, err, errs.ErrInvalidPage)

	resolved, err = p.Resolve(21)
	require.NoError(t, err)
	assert.False(t, resolved.HasNext(21))
	assert.True(t, resolved.HasPrevious())

	p, _ = ParsePage(url.Values{"page": {"last"}})
	resolved, err = p.Resolve(25)
	require.NoError(t, err)
	assert.Equal(t, 3, resolved.Number)

	p, _ = ParsePage(url.Values{"page": {"2"}})
	assert.Equal(t, 3, p.NumPages(30))
	assert.True(t, p.HasNext(30))
}
