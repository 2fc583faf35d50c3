package handlers

import (
	"github.com/bwmarrin/discordgo"

	"drama-bot/bot"
)

// commandPermissions maps each command to the level it requires. Admin
// checks run before any session is created.
var commandPermissions = map[string]string{
	"addpost":   "admin",
	"ongoing":   "admin",
	"blog":      "admin",
	"broadcast": "admin",
	"cancel":    "admin",
	"search":    "guest",
	"info":      "guest",
	"start":     "guest",
	"help":      "guest",
}

// CommandDispatcher is the central handler for all application command
// interactions. It performs the permission check and then dispatches to the
// appropriate handler.
func CommandDispatcher(b *bot.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	commandName := i.ApplicationCommandData().Name
	userID := interactionUserID(i)

	requiredLevel, ok := commandPermissions[commandName]
	if !ok {
		respondEphemeral(s, i, "🚫 Unknown command.")
		return
	}

	if !b.Auth.CheckPermission(userID, requiredLevel) {
		respondEphemeral(s, i, "🚫 You don't have permission to use this command.")
		return
	}

	switch commandName {
	case "addpost":
		HandleAddPost(b, s, i)
	case "ongoing":
		HandleOngoing(b, s, i)
	case "blog":
		HandleBlog(b, s, i)
	case "broadcast":
		HandleBroadcast(b, s, i)
	case "search":
		HandleSearch(b, s, i)
	case "info":
		HandleInfo(b, s, i)
	case "start":
		HandleStart(b, s, i)
	case "help":
		HandleHelp(b, s, i)
	case "cancel":
		HandleCancel(b, s, i)
	}
}
