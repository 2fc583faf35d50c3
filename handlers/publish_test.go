package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drama-bot/models"
	"drama-bot/session"
)

func TestPublishCommitRequiresFiles(t *testing.T) {
	sess := &session.Session{Family: session.FamilyPublish, State: session.StateAwaitFiles}
	assert.True(t, nothingToPublish(sess))

	sess.Files = []models.UploadRef{{ID: "f1", Name: "ep1.mkv"}}
	assert.False(t, nothingToPublish(sess))
}

func TestBlogCommitRequiresBody(t *testing.T) {
	sess := &session.Session{Family: session.FamilyBlog, State: session.StateAwaitText}
	assert.True(t, nothingToWrite(sess))

	// Whitespace-only parts are still an empty article.
	sess.TextParts = []string{"   ", "\t"}
	assert.True(t, nothingToWrite(sess))

	sess.TextParts = append(sess.TextParts, "An actual review paragraph.")
	assert.False(t, nothingToWrite(sess))
}
