package handlers

import (
	"github.com/bwmarrin/discordgo"

	"drama-bot/bot"
	"drama-bot/session"
	"drama-bot/website"
)

// ComponentDispatcher routes button presses to the owning session. A press
// without a matching live session means the wizard expired or was cancelled.
func ComponentDispatcher(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	customID := i.MessageComponentData().CustomID

	sess, ok := b.Sessions.Active(userID)
	if !ok {
		updateComponentMessage(s, i, "⏱️ This operation has expired. Start again with a command.")
		return
	}

	switch customID {
	case "more_files":
		if sess.State == session.StateAwaitFiles {
			updateComponentMessage(s, i, "📤 Send more files...")
		}
	case "finish_files":
		if requireState(s, i, sess, session.StateAwaitFiles) {
			finalizePost(b, s, i, sess)
		}
	case "blog_more":
		if sess.State == session.StateAwaitText {
			updateComponentMessage(s, i, "📤 Send more text...")
		}
	case "blog_finish":
		if requireState(s, i, sess, session.StateAwaitText) {
			finalizeBlog(b, s, i, sess)
		}
	case "ongoing_new":
		if requireState(s, i, sess, session.StateChooseAction) {
			sess.State = session.StateAwaitChannel
			sess.Section = string(website.SectionOngoing)
			b.Sessions.Touch(sess)
			updateComponentMessage(s, i, "📺 **Add Ongoing Drama**\n\nSend me the channel link where files should be posted:")
		}
	case "ongoing_complete":
		if requireState(s, i, sess, session.StateChooseAction) {
			sess.State = session.StateAwaitTitle
			b.Sessions.Touch(sess)
			updateComponentMessage(s, i, "✅ Send the title of the drama to mark as completed:")
		}
	case "promote_yes":
		if requireState(s, i, sess, session.StateCompletion) {
			promoteDrama(b, s, i, sess)
		}
	case "promote_no":
		if requireState(s, i, sess, session.StateCompletion) {
			updateComponentMessage(s, i, "👍 The drama stays in the ongoing section. You can promote it later with /ongoing.")
			b.Sessions.End(sess.UserID, sess.Family)
		}
	}
}

// requireState guards a terminal button against stale presses from an
// earlier step or a different wizard.
func requireState(s *discordgo.Session, i *discordgo.InteractionCreate, sess *session.Session, want session.State) bool {
	if sess.State != want {
		updateComponentMessage(s, i, "⏱️ That choice no longer applies. Use /cancel and start again if needed.")
		return false
	}
	return true
}
