package website

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	path := filepath.Join(t.TempDir(), "website_data.json")
	m, err := NewManager(path, func(section string) string {
		return "https://example.test/#" + section
	})
	require.NoError(t, err)
	return m
}

func TestNewManagerCreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "website_data.json")
	_, err := NewManager(path, nil)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"home_posts", "ongoing_dramas", "blog_posts", "all_posts", "search_data"} {
		assert.Contains(t, doc, key)
	}
}

func TestAddToSectionInsertsNewestFirst(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.AddToSection(SectionAllPosts, Record{Title: "Older"}))
	require.NoError(t, m.AddToSection(SectionAllPosts, Record{Title: "Newer"}))

	data := m.Snapshot()
	require.Len(t, data.AllPosts, 2)
	assert.Equal(t, "Newer", data.AllPosts[0].Title)
	assert.Equal(t, "Older", data.AllPosts[1].Title)
	assert.NotEmpty(t, data.AllPosts[0].Timestamp)
}

func TestAddToSectionKeepsExistingTimestamp(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.AddToSection(SectionHome, Record{Title: "Stamped", Timestamp: "2024-01-01T00:00:00Z"}))

	data := m.Snapshot()
	assert.Equal(t, "2024-01-01T00:00:00Z", data.HomePosts[0].Timestamp)
}

func TestParseSectionRejectsUnknownNames(t *testing.T) {
	for _, name := range []string{"home", "ongoing", "blog", "all_posts"} {
		_, err := ParseSection(name)
		assert.NoError(t, err)
	}
	_, err := ParseSection("trending")
	assert.Error(t, err)
}

func TestMovePostMovesAndStamps(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddToSection(SectionOngoing, Record{Title: "My Drama", Image: "cover.jpg"}))
	require.NoError(t, m.AddToSection(SectionAllPosts, Record{Title: "Existing"}))

	require.NoError(t, m.MovePost(SectionOngoing, SectionAllPosts, "my drama"))

	data := m.Snapshot()
	assert.Empty(t, data.OngoingDramas)
	require.Len(t, data.AllPosts, 2)
	assert.Equal(t, "My Drama", data.AllPosts[0].Title)
	assert.Equal(t, "ongoing", data.AllPosts[0].MovedFrom)
	assert.NotEmpty(t, data.AllPosts[0].Timestamp)
}

func TestMovePostMissLeavesSequencesUnchanged(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddToSection(SectionOngoing, Record{Title: "Kept"}))
	require.NoError(t, m.AddToSection(SectionAllPosts, Record{Title: "Also Kept"}))
	before := m.Snapshot()

	err := m.MovePost(SectionOngoing, SectionAllPosts, "My Drama")
	assert.Error(t, err)

	after := m.Snapshot()
	assert.Equal(t, before.OngoingDramas, after.OngoingDramas)
	assert.Equal(t, before.AllPosts, after.AllPosts)
}

func TestUpdateSearchDataDeduplicatesByIterationOrder(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddToSection(SectionHome, Record{Title: "My Drama", Image: "home.jpg"}))
	require.NoError(t, m.AddToSection(SectionOngoing, Record{Title: "MY DRAMA", Image: "ongoing.jpg"}))

	data := m.Snapshot()
	require.Len(t, data.SearchData, 1)
	// The ongoing copy wins: iteration order is ongoing, all_posts, blog, home.
	assert.Equal(t, "MY DRAMA", data.SearchData[0].Title)
	assert.Equal(t, "ongoing", data.SearchData[0].Category)
	assert.Equal(t, "ongoing.jpg", data.SearchData[0].Image)
}

func TestUpdateSearchDataIsIdempotent(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddToSection(SectionOngoing, Record{Title: "A Drama"}))
	require.NoError(t, m.AddToSection(SectionBlog, Record{Title: "An Article", Excerpt: "preview"}))

	require.NoError(t, m.UpdateSearchData())
	first, err := os.ReadFile(m.path)
	require.NoError(t, err)

	require.NoError(t, m.UpdateSearchData())
	second, err := os.ReadFile(m.path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearchDataShapePerCategory(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.AddToSection(SectionBlog, Record{Title: "Review", Content: "body", Excerpt: "short preview"}))
	require.NoError(t, m.AddToSection(SectionOngoing, Record{Title: "Show", Image: "show.jpg"}))

	data := m.Snapshot()
	require.Len(t, data.SearchData, 2)

	byTitle := map[string]SearchEntry{}
	for _, e := range data.SearchData {
		byTitle[e.Title] = e
	}

	assert.Equal(t, "Drama", byTitle["Show"].Type)
	assert.Equal(t, "https://example.test/#ongoing", byTitle["Show"].URL)
	assert.Equal(t, "show.jpg", byTitle["Show"].Image)

	assert.Equal(t, "Article", byTitle["Review"].Type)
	assert.Equal(t, "short preview", byTitle["Review"].Excerpt)
	assert.Empty(t, byTitle["Review"].Image)
}

func TestManagerReloadsExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "website_data.json")
	m, err := NewManager(path, nil)
	require.NoError(t, err)
	require.NoError(t, m.AddToSection(SectionAllPosts, Record{Title: "Persisted"}))

	reloaded, err := NewManager(path, nil)
	require.NoError(t, err)

	data := reloaded.Snapshot()
	require.Len(t, data.AllPosts, 1)
	assert.Equal(t, "Persisted", data.AllPosts[0].Title)
	require.Len(t, data.SearchData, 1)
}
