package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"drama-bot/bot"
	"drama-bot/database"
	"drama-bot/models"
	"drama-bot/session"
	"drama-bot/utils"
	"drama-bot/website"
)

// HandleAddPost starts the publish wizard.
func HandleAddPost(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	sess := b.Sessions.Start(interactionUserID(i), i.ChannelID, session.FamilyPublish, session.StateAwaitChannel)
	sess.Section = string(website.SectionAllPosts)

	respond(s, i, "📺 **Add New Drama Post**\n\nSend me the channel link where files should be posted (e.g. @channel_name or t.me/...):")
}

// HandleOngoing starts the ongoing-drama wizard with the add/complete choice.
func HandleOngoing(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.Sessions.Start(interactionUserID(i), i.ChannelID, session.FamilyOngoing, session.StateChooseAction)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "📺 **Ongoing Dramas**\n\nWhat would you like to do?",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "➕ Add new ongoing drama", Style: discordgo.PrimaryButton, CustomID: "ongoing_new"},
					discordgo.Button{Label: "✅ Mark drama as completed", Style: discordgo.SecondaryButton, CustomID: "ongoing_complete"},
				}},
			},
		},
	})
	if err != nil {
		utils.Warn("handlers", "ongoing", fmt.Sprintf("failed to respond: %v", err))
	}
}

// HandleBlog starts the blog wizard.
func HandleBlog(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.Sessions.Start(interactionUserID(i), i.ChannelID, session.FamilyBlog, session.StateAwaitImage)

	respond(s, i, "📝 **New Blog Article**\n\nSend the cover image for the article:")
}

// HandleBroadcast starts the broadcast prompt.
func HandleBroadcast(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.Sessions.Start(interactionUserID(i), i.ChannelID, session.FamilyBroadcast, session.StateAwaitMessage)

	respond(s, i, "📢 **Broadcast**\n\nSend the message to deliver to every bot user:")
}

// HandleSearch answers the /search command from the website search index.
func HandleSearch(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var query string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "query" {
			query = opt.StringValue()
		}
	}

	results := b.Site.SearchContent(query)
	if len(results) == 0 {
		respondEphemeral(s, i, fmt.Sprintf("🔍 Nothing found for **%s**. Try /help to see what I can do.", query))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🔍 **Results for \"%s\":**\n\n", query)
	for _, res := range results {
		fmt.Fprintf(&sb, "• **%s** (%s) — %s\n", res.Title, res.Category, res.URL)
	}
	respond(s, i, sb.String())
}

// HandleInfo shows aggregate statistics from the content store.
func HandleInfo(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	stats, err := database.GetStats(b.DB)
	if err != nil {
		utils.Error("handlers", "info", err.Error())
		respondEphemeral(s, i, "❌ Could not load statistics. Please try again later.")
		return
	}

	content := fmt.Sprintf(
		"📊 **Bot Statistics**\n\n"+
			"📺 Posts: %d (ongoing: %d, completed: %d)\n"+
			"📁 Files: %d\n"+
			"📝 Blog articles: %d\n"+
			"👥 Users: %d\n"+
			"🌐 Website: %s",
		stats.TotalPosts, stats.OngoingPosts, stats.AllPosts,
		stats.TotalFiles, stats.TotalBlogs, stats.TotalUsers,
		viper.GetString("WEBSITE_URL"),
	)
	respond(s, i, content)
}

// HandleStart registers the user and shows the welcome message.
func HandleStart(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := models.User{
		UserID:      interactionUserID(i),
		DisplayName: interactionUserName(i),
		JoinedAt:    time.Now(),
	}
	if err := database.UpsertUser(b.DB, user); err != nil {
		utils.Error("handlers", "start", err.Error())
	}

	respond(s, i, fmt.Sprintf(
		"👋 Welcome! I post new dramas and articles to %s.\n\n"+
			"Use /search to find content, or /help for all commands.",
		viper.GetString("WEBSITE_URL"),
	))
}

// HandleHelp lists the available commands.
func HandleHelp(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	help := "**Commands**\n\n" +
		"/search — find dramas and articles\n" +
		"/info — bot statistics\n" +
		"/start — register for announcements\n"

	if b.Auth.IsAdmin(interactionUserID(i)) {
		help += "\n**Admin**\n\n" +
			"/addpost — publish a new drama post\n" +
			"/ongoing — add or complete an ongoing drama\n" +
			"/blog — write a blog article\n" +
			"/broadcast — message every user\n" +
			"/cancel — abort the current operation\n"
	}
	respondEphemeral(s, i, help)
}

// HandleCancel discards the user's active session, if any. Discarding
// happens before the acknowledgment is sent.
func HandleCancel(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Sessions.Cancel(interactionUserID(i)) {
		respond(s, i, "❌ Operation cancelled.")
		return
	}
	respondEphemeral(s, i, "There is nothing to cancel.")
}
