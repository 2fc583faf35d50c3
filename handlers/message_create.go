package handlers

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"drama-bot/bot"
	"drama-bot/config"
	"drama-bot/models"
	"drama-bot/scanner"
	"drama-bot/session"
	"drama-bot/utils"
)

// MessageCreate routes free-form messages: to the author's active wizard
// session if one exists, otherwise to passive group keyword scanning.
func MessageCreate(b *bot.Bot) func(s *discordgo.Session, m *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		// Ignore all messages created by the bot itself
		if m.Author.ID == s.State.User.ID || m.Author.Bot {
			return
		}

		defer func() {
			if r := recover(); r != nil {
				utils.Error("handlers", "message", fmt.Sprintf("panic handling message from user %s: %v", m.Author.ID, r))
				b.Sessions.Cancel(m.Author.ID)
				s.ChannelMessageSend(m.ChannelID, "❌ An error occurred. Please try again later.")
			}
		}()

		if sess, ok := b.Sessions.Active(m.Author.ID); ok {
			advanceSession(b, s, m, sess)
			return
		}

		// No active session: only scan messages in group channels.
		if m.GuildID != "" {
			scanner.ScanMessage(s, m, b.Site)
		}
	}
}

// advanceSession feeds one inbound message into the owning session's state
// machine. Invalid input re-prompts without changing state.
func advanceSession(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, sess *session.Session) {
	switch sess.State {
	case session.StateAwaitChannel:
		handleChannelInput(b, s, m, sess)
	case session.StateAwaitImage:
		handleImageInput(b, s, m, sess)
	case session.StateAwaitFiles:
		handleFilesInput(b, s, m, sess)
	case session.StateAwaitText:
		handleTextInput(b, s, m, sess)
	case session.StateAwaitTitle:
		completeOngoingDrama(b, s, m, sess)
	case session.StateAwaitMessage:
		runBroadcast(b, s, m, sess)
	case session.StateChooseAction, session.StateCompletion:
		s.ChannelMessageSend(m.ChannelID, "Please use the buttons above to continue, or /cancel to abort.")
	}
}

func handleChannelInput(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, sess *session.Session) {
	link := strings.TrimSpace(m.Content)
	if !session.ValidChannelLink(link) {
		s.ChannelMessageSend(m.ChannelID, "❌ Please provide a valid channel link (e.g. @channel_name or t.me/...)")
		return
	}

	sess.ChannelLink = link
	sess.State = session.StateAwaitImage
	b.Sessions.Touch(sess)
	s.ChannelMessageSend(m.ChannelID, "✅ Channel saved! Now send the cover image for the website post:")
}

func handleImageInput(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, sess *session.Session) {
	image := firstImageAttachment(m)
	if image == nil {
		s.ChannelMessageSend(m.ChannelID, "❌ Please send an image.")
		return
	}

	sess.ImageURL = image.URL

	if sess.Family == session.FamilyBlog {
		sess.State = session.StateAwaitText
		b.Sessions.Touch(sess)
		s.ChannelMessageSend(m.ChannelID, "🖼️ Image saved! Now send the article text. You can send several messages; the first line becomes the title.")
		return
	}

	sess.State = session.StateAwaitFiles
	sess.Files = nil
	b.Sessions.Touch(sess)
	s.ChannelMessageSend(m.ChannelID, "🖼️ Image saved! Now send all the episode files.\n\nYou can send several messages. When finished, click 'Finish & Create Post'.")
}

func handleFilesInput(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, sess *session.Session) {
	refs := supportedUploads(m.Attachments)
	if len(refs) == 0 {
		s.ChannelMessageSend(m.ChannelID, "❌ Please send valid files (documents/videos).")
		return
	}

	sess.Files = append(sess.Files, refs...)
	b.Sessions.Touch(sess)

	sendDecisionButtons(s, m.ChannelID,
		fmt.Sprintf("📁 Files received: %d\nSend more files or click finish to create the post:", len(sess.Files)),
		"more_files", "➕ Send More Files",
		"finish_files", "✅ Finish & Create Post",
	)
}

func handleTextInput(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, sess *session.Session) {
	text := strings.TrimSpace(m.Content)
	if text == "" {
		s.ChannelMessageSend(m.ChannelID, "❌ Please send text for the article.")
		return
	}

	sess.TextParts = append(sess.TextParts, text)
	b.Sessions.Touch(sess)

	sendDecisionButtons(s, m.ChannelID,
		fmt.Sprintf("📝 Got it (%d part(s) so far).\nSend more text or click finish to publish:", len(sess.TextParts)),
		"blog_more", "➕ Write More",
		"blog_finish", "✅ Finish & Publish",
	)
}

// supportedUploads converts the attachments with an accepted media type
// into upload references, dropping everything else.
func supportedUploads(attachments []*discordgo.MessageAttachment) []models.UploadRef {
	var refs []models.UploadRef
	for _, a := range attachments {
		if !config.IsSupportedFileType(a.ContentType) {
			continue
		}
		refs = append(refs, models.UploadRef{
			ID:          a.ID,
			Name:        a.Filename,
			URL:         a.URL,
			Size:        int64(a.Size),
			ContentType: a.ContentType,
		})
	}
	return refs
}

// firstImageAttachment returns the first attachment that carries an image
// content type.
func firstImageAttachment(m *discordgo.MessageCreate) *discordgo.MessageAttachment {
	for _, a := range m.Attachments {
		if strings.HasPrefix(a.ContentType, "image/") {
			return a
		}
	}
	return nil
}

// sendDecisionButtons posts a message with a two-choice button row.
func sendDecisionButtons(s *discordgo.Session, channelID, content, moreID, moreLabel, finishID, finishLabel string) {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: moreLabel, Style: discordgo.SecondaryButton, CustomID: moreID},
				discordgo.Button{Label: finishLabel, Style: discordgo.SuccessButton, CustomID: finishID},
			}},
		},
	})
	if err != nil {
		utils.Warn("handlers", "buttons", fmt.Sprintf("failed to send decision buttons: %v", err))
	}
}
