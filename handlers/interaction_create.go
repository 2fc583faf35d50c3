package handlers

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"drama-bot/bot"
	"drama-bot/utils"
)

// InteractionCreate handles slash command and button interactions.
func InteractionCreate(b *bot.Bot) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		// A panic in one user's handler must not take the process down.
		// The user gets a generic apology and their session is discarded
		// so no half-filled accumulator leaks into later commands.
		defer func() {
			if r := recover(); r != nil {
				userID := interactionUserID(i)
				utils.Error("handlers", "interaction", fmt.Sprintf("panic handling interaction for user %s: %v", userID, r))
				if userID != "" {
					b.Sessions.Cancel(userID)
				}
				respondEphemeral(s, i, "❌ An error occurred. Please try again later.")
			}
		}()

		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			CommandDispatcher(b, s, i)
		case discordgo.InteractionMessageComponent:
			ComponentDispatcher(b, s, i)
		}
	}
}

// interactionUserID returns the acting user's ID for both guild and DM
// interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// interactionUserName returns the acting user's display name.
func interactionUserName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.Username
	}
	if i.User != nil {
		return i.User.Username
	}
	return ""
}

// respondEphemeral answers an interaction with a message only the acting
// user can see.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		utils.Warn("handlers", "respond", fmt.Sprintf("failed to respond to interaction: %v", err))
	}
}

// respond answers an interaction with a visible message.
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		utils.Warn("handlers", "respond", fmt.Sprintf("failed to respond to interaction: %v", err))
	}
}

// updateComponentMessage replaces the content of the message the pressed
// button was attached to, removing the buttons.
func updateComponentMessage(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		utils.Warn("handlers", "respond", fmt.Sprintf("failed to update component message: %v", err))
	}
}
