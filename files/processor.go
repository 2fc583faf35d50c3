package files

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"drama-bot/database"
	"drama-bot/models"
	"drama-bot/utils"
)

// LinkResolver resolves an uploaded reference into a direct download URL.
// Resolution is an external lookup and may fail per item.
type LinkResolver interface {
	Resolve(ctx context.Context, ref models.UploadRef) (string, error)
}

// Shortener produces a shortened URL for a direct link. Shortening is a
// best-effort convenience: callers fall back to the direct link on failure.
type Shortener interface {
	Shorten(ctx context.Context, url string) (string, error)
}

// Store persists processed file records.
type Store interface {
	InsertFile(record models.FileRecord) error
}

// DBStore adapts a sql.DB to the Store interface.
type DBStore struct {
	db *sql.DB
}

// NewDBStore returns a Store backed by the content database.
func NewDBStore(db *sql.DB) *DBStore {
	return &DBStore{db: db}
}

// InsertFile persists one file record.
func (s *DBStore) InsertFile(record models.FileRecord) error {
	return database.InsertFile(s.db, record)
}

// Processor turns a batch of upload references into stored file records
// with resolved download links.
type Processor struct {
	store     Store
	resolver  LinkResolver
	shortener Shortener
}

// NewProcessor creates an upload processor.
func NewProcessor(store Store, resolver LinkResolver, shortener Shortener) *Processor {
	return &Processor{store: store, resolver: resolver, shortener: shortener}
}

// Process handles each reference independently: resolve a direct link,
// shorten it (falling back to the direct link), persist the record. A
// failing item is logged and skipped; the remaining items are still
// processed. It returns the successfully processed subset, in the original
// relative order, plus the number of skipped items. Callers must treat an
// empty result as a hard stop, not publish an empty post.
func (p *Processor) Process(ctx context.Context, refs []models.UploadRef, channelLink string) ([]models.FileRecord, int) {
	var processed []models.FileRecord
	skipped := 0

	for _, ref := range refs {
		record, err := p.processOne(ctx, ref, channelLink)
		if err != nil {
			utils.Error("files", "process", fmt.Sprintf("skipping file %s: %v", ref.ID, err))
			skipped++
			continue
		}
		processed = append(processed, record)
	}

	return processed, skipped
}

func (p *Processor) processOne(ctx context.Context, ref models.UploadRef, channelLink string) (models.FileRecord, error) {
	name := ref.Name
	if name == "" {
		name = "file_" + ref.ID
	}

	directLink, err := p.resolver.Resolve(ctx, ref)
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("failed to resolve direct link: %w", err)
	}

	shortened, err := p.shortener.Shorten(ctx, directLink)
	if err != nil {
		utils.Warn("files", "shorten", fmt.Sprintf("falling back to direct link for %s: %v", ref.ID, err))
		shortened = directLink
	}

	record := models.FileRecord{
		FileID:        ref.ID,
		FileName:      name,
		ChannelLink:   channelLink,
		DirectLink:    directLink,
		ShortenedLink: shortened,
		FileSize:      ref.Size,
		MimeType:      ref.ContentType,
		UploadedAt:    time.Now(),
	}

	if err := p.store.InsertFile(record); err != nil {
		return models.FileRecord{}, fmt.Errorf("failed to persist file record: %w", err)
	}

	return record, nil
}
