package handlers

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedUploadsFiltersByMediaType(t *testing.T) {
	attachments := []*discordgo.MessageAttachment{
		{ID: "1", Filename: "ep1.mkv", URL: "https://cdn.test/1", Size: 100, ContentType: "video/x-matroska"},
		{ID: "2", Filename: "notes.txt", ContentType: "text/plain"},
		{ID: "3", Filename: "pack.zip", URL: "https://cdn.test/3", Size: 300, ContentType: "application/zip"},
		{ID: "4", Filename: "ep2.mp4", URL: "https://cdn.test/4", Size: 400, ContentType: "VIDEO/MP4"},
	}

	refs := supportedUploads(attachments)

	require.Len(t, refs, 3)
	assert.Equal(t, "1", refs[0].ID)
	assert.Equal(t, "3", refs[1].ID)
	assert.Equal(t, "4", refs[2].ID)
	assert.Equal(t, "ep1.mkv", refs[0].Name)
	assert.Equal(t, int64(100), refs[0].Size)
}

func TestSupportedUploadsRejectsWholeBatch(t *testing.T) {
	attachments := []*discordgo.MessageAttachment{
		{ID: "1", Filename: "notes.txt", ContentType: "text/plain"},
		{ID: "2", Filename: "cover.jpg", ContentType: "image/jpeg"},
	}

	assert.Empty(t, supportedUploads(attachments))
	assert.Empty(t, supportedUploads(nil))
}
