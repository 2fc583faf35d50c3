package models

import "time"

// User represents a bot user stored for broadcasts.
// Users are upserted by UserID on first interaction and never deleted.
type User struct {
	UserID      string    `db:"user_id"`
	DisplayName string    `db:"display_name"`
	JoinedAt    time.Time `db:"joined_at"`
}

// Post represents a published drama post.
type Post struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	ImageURL    string    `db:"image_url"`
	ChannelLink string    `db:"channel_link"`
	FilesCount  int       `db:"files_count"`
	FileNames   []string  `db:"file_names"` // stored as a JSON array
	Section     string    `db:"section"`    // home, ongoing or all_posts
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// FileRecord represents a single processed upload. Records are immutable
// after creation and tied to a post only by channel link and batch.
type FileRecord struct {
	ID            int64     `db:"id"`
	FileID        string    `db:"file_id"`
	FileName      string    `db:"file_name"`
	ChannelLink   string    `db:"channel_link"`
	DirectLink    string    `db:"direct_link"`
	ShortenedLink string    `db:"shortened_link"`
	FileSize      int64     `db:"file_size"`
	MimeType      string    `db:"mime_type"`
	UploadedAt    time.Time `db:"uploaded_at"`
}

// BlogEntry represents a published blog article.
type BlogEntry struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	ImageURL  string    `db:"image_url"`
	Excerpt   string    `db:"excerpt"`
	CreatedAt time.Time `db:"created_at"`
}

// UploadRef is an opaque reference to a file the user attached during a
// publish session, before the upload pipeline has processed it.
type UploadRef struct {
	ID          string
	Name        string
	URL         string
	Size        int64
	ContentType string
}

// Stats holds aggregate counts for the /info command.
type Stats struct {
	TotalPosts   int
	OngoingPosts int
	AllPosts     int
	TotalFiles   int
	TotalUsers   int
	TotalBlogs   int
}
