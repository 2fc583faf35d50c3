// Package session implements the per-user, per-command conversation state.
// A session is an ephemeral accumulator: it collects the fields of a
// multi-step command until the terminal step commits or the user cancels,
// and is discarded either way.
package session

import (
	"strings"
	"time"

	"drama-bot/models"
)

// Family identifies a command family. Session state is keyed by
// (user, family): starting the same command again replaces the prior
// accumulator for that user.
type Family string

const (
	FamilyPublish   Family = "publish"
	FamilyOngoing   Family = "ongoing"
	FamilyBlog      Family = "blog"
	FamilyBroadcast Family = "broadcast"
)

// State is a step of the conversation. Transitions are strictly linear; a
// state is only revisited on invalid input, and /cancel escapes from any
// non-terminal state.
type State string

const (
	StateAwaitChannel State = "await_channel"
	StateAwaitImage   State = "await_image"
	StateAwaitFiles   State = "await_files"
	StateChooseAction State = "choose_action"
	StateAwaitTitle   State = "await_title"
	StateAwaitText    State = "await_text"
	StateCompletion   State = "completion"
	StateAwaitMessage State = "await_message"
)

// Session holds the accumulated fields of one in-flight command.
type Session struct {
	UserID    string
	ChannelID string // where the wizard conversation happens
	Family    Family
	State     State

	ChannelLink string
	ImageURL    string
	Files       []models.UploadRef
	TextParts   []string
	PostTitle   string
	Section     string // target section for the commit

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Body returns the accumulated free text joined into one document.
func (s *Session) Body() string {
	return strings.Join(s.TextParts, "\n")
}

// ValidChannelLink reports whether text looks like a channel reference:
// it must start with "@" or contain "t.me/".
func ValidChannelLink(text string) bool {
	text = strings.TrimSpace(text)
	return strings.HasPrefix(text, "@") || strings.Contains(text, "t.me/")
}

// maxTitleRunes bounds a blog title derived from the first body line.
const maxTitleRunes = 80

// excerptRunes is the length of a blog preview excerpt.
const excerptRunes = 150

// TitleFromBody derives a blog title from the first line of the body,
// truncated to a displayable length.
func TitleFromBody(body string) string {
	line := body
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		line = body[:idx]
	}
	line = strings.TrimSpace(line)

	runes := []rune(line)
	if len(runes) > maxTitleRunes {
		line = string(runes[:maxTitleRunes]) + "…"
	}
	return line
}

// ExcerptFromBody derives a preview excerpt from the body.
func ExcerptFromBody(body string) string {
	body = strings.TrimSpace(body)
	runes := []rune(body)
	if len(runes) > excerptRunes {
		return string(runes[:excerptRunes]) + "…"
	}
	return body
}
