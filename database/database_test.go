package database

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drama-bot/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "bot.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestInsertAndGetPostByTitle(t *testing.T) {
	db := newTestDB(t)
	post := models.Post{
		Title:       "My Drama",
		ImageURL:    "cover.jpg",
		ChannelLink: "@drama_channel",
		FilesCount:  2,
		FileNames:   []string{"ep1.mkv", "ep2.mkv"},
		Section:     "ongoing",
	}
	require.NoError(t, InsertPost(db, post))

	got, err := GetPostByTitle(db, "my drama")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "My Drama", got.Title)
	assert.Equal(t, []string{"ep1.mkv", "ep2.mkv"}, got.FileNames)
	assert.Equal(t, "ongoing", got.Section)
	assert.False(t, got.CreatedAt.IsZero())

	missing, err := GetPostByTitle(db, "unknown title")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetPostsBySectionAndGetAllPosts(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, InsertPost(db, models.Post{Title: "Ongoing One", Section: "ongoing"}))
	require.NoError(t, InsertPost(db, models.Post{Title: "Completed One", Section: "all_posts"}))
	require.NoError(t, InsertPost(db, models.Post{Title: "Ongoing Two", Section: "ongoing"}))

	ongoing, err := GetPostsBySection(db, "ongoing")
	require.NoError(t, err)
	require.Len(t, ongoing, 2)
	assert.Equal(t, "Ongoing Two", ongoing[0].Title) // newest first
	assert.Equal(t, "Ongoing One", ongoing[1].Title)

	all, err := GetAllPosts(db)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdatePostSection(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, InsertPost(db, models.Post{Title: "My Drama", Section: "ongoing"}))

	require.NoError(t, UpdatePostSection(db, "MY DRAMA", "all_posts"))

	got, err := GetPostByTitle(db, "My Drama")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "all_posts", got.Section)

	assert.Error(t, UpdatePostSection(db, "No Such Drama", "all_posts"))
}

func TestFilesByChannelAndAll(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, InsertFile(db, models.FileRecord{
		FileID:        "f1",
		FileName:      "ep1.mkv",
		ChannelLink:   "@drama_channel",
		DirectLink:    "https://cdn.test/f1",
		ShortenedLink: "https://ouo.test/f1",
		FileSize:      100,
		MimeType:      "video/x-matroska",
		UploadedAt:    time.Now(),
	}))
	require.NoError(t, InsertFile(db, models.FileRecord{
		FileID:      "f2",
		FileName:    "ep1.mp4",
		ChannelLink: "@other_channel",
		UploadedAt:  time.Now(),
	}))

	byChannel, err := GetFilesByChannel(db, "@drama_channel")
	require.NoError(t, err)
	require.Len(t, byChannel, 1)
	assert.Equal(t, "f1", byChannel[0].FileID)
	assert.Equal(t, "https://ouo.test/f1", byChannel[0].ShortenedLink)
	assert.Equal(t, int64(100), byChannel[0].FileSize)

	all, err := GetAllFiles(db)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpsertUserPreservesJoinedAt(t *testing.T) {
	db := newTestDB(t)
	joined := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, UpsertUser(db, models.User{UserID: "u1", DisplayName: "Old Name", JoinedAt: joined}))
	require.NoError(t, UpsertUser(db, models.User{UserID: "u1", DisplayName: "New Name", JoinedAt: time.Now()}))

	users, err := GetAllUsers(db)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "New Name", users[0].DisplayName)
	assert.True(t, users[0].JoinedAt.Equal(joined))

	count, err := GetUserCount(db)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInsertBlogAndGetRecent(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, title := range []string{"First", "Second", "Third"} {
		require.NoError(t, InsertBlog(db, models.BlogEntry{
			Title:     title,
			Content:   "body of " + title,
			Excerpt:   "preview",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	recent, err := GetRecentBlogs(db, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Third", recent[0].Title)
	assert.Equal(t, "Second", recent[1].Title)
}

func TestGetStats(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, InsertPost(db, models.Post{Title: "Ongoing", Section: "ongoing"}))
	require.NoError(t, InsertPost(db, models.Post{Title: "Completed", Section: "all_posts"}))
	require.NoError(t, InsertFile(db, models.FileRecord{FileID: "f1", UploadedAt: time.Now()}))
	require.NoError(t, UpsertUser(db, models.User{UserID: "u1"}))
	require.NoError(t, InsertBlog(db, models.BlogEntry{Title: "Post"}))

	stats, err := GetStats(db)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalPosts)
	assert.Equal(t, 1, stats.OngoingPosts)
	assert.Equal(t, 1, stats.AllPosts)
	assert.Equal(t, 1, stats.TotalFiles)
	assert.Equal(t, 1, stats.TotalUsers)
	assert.Equal(t, 1, stats.TotalBlogs)
}
