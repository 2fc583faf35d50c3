package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"drama-bot/bot"
	"drama-bot/broadcast"
	"drama-bot/database"
	"drama-bot/files"
	"drama-bot/models"
	"drama-bot/session"
	"drama-bot/utils"
	"drama-bot/website"
)

// finalizePost commits a publish or ongoing-add session: runs the upload
// pipeline, posts the download links, and writes through to the content
// store and the website snapshot.
func finalizePost(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sess *session.Session) {
	// Committing with an empty batch is rejected, never an empty post.
	if nothingToPublish(sess) {
		updateComponentMessage(s, i, "❌ Nothing to commit — no files received. Send the episode files first, or /cancel.")
		return
	}

	updateComponentMessage(s, i, "🚀 Processing files and creating post...")

	records, skipped := b.Files.Process(context.Background(), sess.Files, sess.ChannelLink)
	if len(records) == 0 {
		s.ChannelMessageSend(sess.ChannelID, "❌ Failed to process any of the files. Please try again.")
		b.Sessions.End(sess.UserID, sess.Family)
		return
	}

	postDownloadLinks(s, sess.ChannelID, records)

	title := files.ExtractDramaName(sess.Files[0].Name)
	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.FileName)
	}

	post := models.Post{
		Title:       title,
		ImageURL:    sess.ImageURL,
		ChannelLink: sess.ChannelLink,
		FilesCount:  len(records),
		FileNames:   names,
		Section:     sess.Section,
	}
	if err := database.InsertPost(b.DB, post); err != nil {
		failSession(b, s, sess, "publish", err)
		return
	}

	section, err := website.ParseSection(sess.Section)
	if err != nil {
		failSession(b, s, sess, "publish", err)
		return
	}
	record := website.Record{
		Title:       title,
		Image:       sess.ImageURL,
		ChannelLink: sess.ChannelLink,
		FilesCount:  len(records),
		FileNames:   names,
	}
	if err := b.Site.AddToSection(section, record); err != nil {
		failSession(b, s, sess, "publish", err)
		return
	}

	summary := fmt.Sprintf(
		"✅ **Post Created Successfully!** 🎬\n\n"+
			"**📺 Drama:** %s\n"+
			"**📁 Files Uploaded:** %d\n"+
			"**📢 Channel:** %s\n"+
			"**🌐 Website:** Added to the %s section",
		title, len(records), sess.ChannelLink, sectionLabel(section),
	)
	if skipped > 0 {
		summary += fmt.Sprintf("\n⚠️ %d file(s) could not be processed and were skipped.", skipped)
	}
	s.ChannelMessageSend(sess.ChannelID, summary)

	if sess.Family == session.FamilyOngoing {
		// The ongoing wizard ends with the promotion question.
		sess.State = session.StateCompletion
		sess.PostTitle = title
		b.Sessions.Touch(sess)
		askPromotion(s, sess.ChannelID, title)
		return
	}

	b.Sessions.End(sess.UserID, sess.Family)
}

// finalizeBlog commits a blog session: derives title and excerpt from the
// accumulated body and writes through to both stores.
func finalizeBlog(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sess *session.Session) {
	if nothingToWrite(sess) {
		updateComponentMessage(s, i, "❌ Nothing to commit — the article is empty. Send some text first, or /cancel.")
		return
	}
	body := sess.Body()

	updateComponentMessage(s, i, "🚀 Publishing article...")

	title := session.TitleFromBody(body)
	excerpt := session.ExcerptFromBody(body)

	entry := models.BlogEntry{
		Title:    title,
		Content:  body,
		ImageURL: sess.ImageURL,
		Excerpt:  excerpt,
	}
	if err := database.InsertBlog(b.DB, entry); err != nil {
		failSession(b, s, sess, "blog", err)
		return
	}

	record := website.Record{
		Title:   title,
		Image:   sess.ImageURL,
		Content: body,
		Excerpt: excerpt,
	}
	if err := b.Site.AddToSection(website.SectionBlog, record); err != nil {
		failSession(b, s, sess, "blog", err)
		return
	}

	s.ChannelMessageSend(sess.ChannelID, fmt.Sprintf("✅ **Article Published!** 📝\n\n**%s** is now on the blog.", title))
	b.Sessions.End(sess.UserID, sess.Family)
}

// promoteDrama moves a freshly published ongoing drama to the completed
// section in both stores.
func promoteDrama(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, sess *session.Session) {
	updateComponentMessage(s, i, "🚀 Promoting drama to the completed section...")

	if err := b.Site.MovePost(website.SectionOngoing, website.SectionAllPosts, sess.PostTitle); err != nil {
		failSession(b, s, sess, "promote", err)
		return
	}
	if err := database.UpdatePostSection(b.DB, sess.PostTitle, string(website.SectionAllPosts)); err != nil {
		// The snapshot moved but the store did not; surface it, the
		// nightly reconciliation will not fix cross-store drift.
		utils.Error("handlers", "promote", err.Error())
	}

	s.ChannelMessageSend(sess.ChannelID, fmt.Sprintf("✅ **%s** moved to the completed section.", sess.PostTitle))
	b.Sessions.End(sess.UserID, sess.Family)
}

// completeOngoingDrama handles the complete-existing branch: the user sends
// the title of the drama to promote. A miss re-prompts without ending the
// session so the user can retry or cancel.
func completeOngoingDrama(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, sess *session.Session) {
	title := strings.TrimSpace(m.Content)
	if title == "" {
		s.ChannelMessageSend(m.ChannelID, "❌ Please send the drama title.")
		return
	}

	post, err := database.GetPostByTitle(b.DB, title)
	if err != nil {
		failSession(b, s, sess, "promote", err)
		return
	}
	if post == nil || post.Section != string(website.SectionOngoing) {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ No ongoing drama titled **%s** found. Check the title or /cancel.", title))
		return
	}

	if err := b.Site.MovePost(website.SectionOngoing, website.SectionAllPosts, title); err != nil {
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("❌ No ongoing drama titled **%s** found. Check the title or /cancel.", title))
		return
	}
	if err := database.UpdatePostSection(b.DB, title, string(website.SectionAllPosts)); err != nil {
		utils.Error("handlers", "promote", err.Error())
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("✅ **%s** moved to the completed section.", title))
	b.Sessions.End(sess.UserID, sess.Family)
}

// runBroadcast delivers the admin's message to every stored user.
func runBroadcast(b *bot.Bot, s *discordgo.Session, m *discordgo.MessageCreate, sess *session.Session) {
	message := strings.TrimSpace(m.Content)
	if message == "" {
		s.ChannelMessageSend(m.ChannelID, "❌ Nothing to commit — the broadcast message is empty.")
		return
	}

	users, err := database.GetAllUsers(b.DB)
	if err != nil {
		failSession(b, s, sess, "broadcast", err)
		return
	}

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("📢 Broadcasting to %d users...", len(users)))
	result := broadcast.Send(users, message, &broadcast.DiscordSender{Session: s})

	s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(
		"✅ Broadcast finished.\nDelivered: %d\nFailed: %d\nTotal: %d",
		result.Sent, result.Failed, result.Total,
	))
	b.Sessions.End(sess.UserID, sess.Family)
}

// postDownloadLinks posts one message per processed file with its download
// button. A failed send is logged and does not abort the rest.
func postDownloadLinks(s *discordgo.Session, channelID string, records []models.FileRecord) {
	for _, rec := range records {
		_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Content: fmt.Sprintf("📄 **%s**", rec.FileName),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "📥 Download", Style: discordgo.LinkButton, URL: rec.ShortenedLink},
				}},
			},
		})
		if err != nil {
			utils.Warn("handlers", "post_links", fmt.Sprintf("failed to post link for %s: %v", rec.FileName, err))
		}
	}
}

// askPromotion sends the yes/no promotion question after an ongoing drama
// was published.
func askPromotion(s *discordgo.Session, channelID, title string) {
	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("Is **%s** already complete? Completed dramas move to the all-posts section.", title),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "✅ Yes, it's complete", Style: discordgo.SuccessButton, CustomID: "promote_yes"},
				discordgo.Button{Label: "📺 No, still airing", Style: discordgo.SecondaryButton, CustomID: "promote_no"},
			}},
		},
	})
	if err != nil {
		utils.Warn("handlers", "promotion", fmt.Sprintf("failed to send promotion question: %v", err))
	}
}

// failSession reports a generic failure to the user and forces the session
// to its terminal state so no partial accumulator survives the error.
func failSession(b *bot.Bot, s *discordgo.Session, sess *session.Session, operation string, err error) {
	utils.Error("handlers", operation, err.Error())
	s.ChannelMessageSend(sess.ChannelID, "❌ An error occurred and the operation was aborted. Please try again.")
	b.Sessions.End(sess.UserID, sess.Family)
}

// nothingToPublish reports whether a publish session reached the finish
// action without any stored files. Such a commit is rejected, keeping the
// session in place for a retry.
func nothingToPublish(sess *session.Session) bool {
	return len(sess.Files) == 0
}

// nothingToWrite reports whether a blog session accumulated no usable body
// text.
func nothingToWrite(sess *session.Session) bool {
	return strings.TrimSpace(sess.Body()) == ""
}

// sectionLabel is the human name of a website section.
func sectionLabel(section website.Section) string {
	switch section {
	case website.SectionOngoing:
		return "Ongoing Dramas"
	case website.SectionBlog:
		return "Blog"
	case website.SectionHome:
		return "Home"
	default:
		return "All Posts"
	}
}
