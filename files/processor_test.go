package files

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drama-bot/models"
)

type fakeResolver struct {
	failFor map[string]bool
}

func (r *fakeResolver) Resolve(_ context.Context, ref models.UploadRef) (string, error) {
	if r.failFor[ref.ID] {
		return "", errors.New("expired reference")
	}
	return "https://cdn.test/" + ref.ID, nil
}

type fakeShortener struct {
	fail bool
}

func (s *fakeShortener) Shorten(_ context.Context, url string) (string, error) {
	if s.fail {
		return "", errors.New("shortener down")
	}
	return "https://ouo.test/" + url, nil
}

type memStore struct {
	records []models.FileRecord
	failAll bool
}

func (s *memStore) InsertFile(record models.FileRecord) error {
	if s.failAll {
		return errors.New("db unavailable")
	}
	s.records = append(s.records, record)
	return nil
}

func refs(ids ...string) []models.UploadRef {
	out := make([]models.UploadRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.UploadRef{ID: id, Name: id + ".mkv", Size: 100, ContentType: "video/x-matroska"})
	}
	return out
}

func TestProcessSkipsFailedItemsAndKeepsOrder(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(store, &fakeResolver{failFor: map[string]bool{"two": true}}, &fakeShortener{})

	records, skipped := p.Process(context.Background(), refs("one", "two", "three"), "@channel")

	assert.Equal(t, 1, skipped)
	require.Len(t, records, 2)
	assert.Equal(t, "one", records[0].FileID)
	assert.Equal(t, "three", records[1].FileID)
	assert.Len(t, store.records, 2)
}

func TestProcessShortenerFallback(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(store, &fakeResolver{}, &fakeShortener{fail: true})

	records, skipped := p.Process(context.Background(), refs("one"), "@channel")

	assert.Zero(t, skipped)
	require.Len(t, records, 1)
	assert.Equal(t, "https://cdn.test/one", records[0].DirectLink)
	assert.Equal(t, "https://cdn.test/one", records[0].ShortenedLink)
}

func TestProcessShortenedLink(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(store, &fakeResolver{}, &fakeShortener{})

	records, _ := p.Process(context.Background(), refs("one"), "@channel")

	require.Len(t, records, 1)
	assert.Equal(t, "https://ouo.test/https://cdn.test/one", records[0].ShortenedLink)
}

func TestProcessGeneratesPlaceholderName(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(store, &fakeResolver{}, &fakeShortener{})

	records, _ := p.Process(context.Background(), []models.UploadRef{{ID: "abc123"}}, "@channel")

	require.Len(t, records, 1)
	assert.Equal(t, "file_abc123", records[0].FileName)
}

func TestProcessAllFailedReturnsEmpty(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(store, &fakeResolver{failFor: map[string]bool{"one": true, "two": true}}, &fakeShortener{})

	records, skipped := p.Process(context.Background(), refs("one", "two"), "@channel")

	assert.Empty(t, records)
	assert.Equal(t, 2, skipped)
}

func TestProcessPersistenceFailureSkipsItem(t *testing.T) {
	store := &memStore{failAll: true}
	p := NewProcessor(store, &fakeResolver{}, &fakeShortener{})

	records, skipped := p.Process(context.Background(), refs("one"), "@channel")

	assert.Empty(t, records)
	assert.Equal(t, 1, skipped)
}

func TestProcessRecordFields(t *testing.T) {
	store := &memStore{}
	p := NewProcessor(store, &fakeResolver{}, &fakeShortener{})

	records, _ := p.Process(context.Background(), refs("ep1"), "@drama_channel")

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "@drama_channel", rec.ChannelLink)
	assert.Equal(t, "ep1.mkv", rec.FileName)
	assert.Equal(t, int64(100), rec.FileSize)
	assert.Equal(t, "video/x-matroska", rec.MimeType)
	assert.False(t, rec.UploadedAt.IsZero())
}
