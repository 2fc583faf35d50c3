package command

import "github.com/bwmarrin/discordgo"

// AddPostCommand starts the publish wizard.
type AddPostCommand struct{}

// Definition returns the application command definition.
func (c *AddPostCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "addpost",
		Description: "Add a new drama post (admin only)",
	}
}

// OngoingCommand manages the ongoing dramas section.
type OngoingCommand struct{}

// Definition returns the application command definition.
func (c *OngoingCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ongoing",
		Description: "Add or complete an ongoing drama (admin only)",
	}
}

// BlogCommand starts the blog wizard.
type BlogCommand struct{}

// Definition returns the application command definition.
func (c *BlogCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "blog",
		Description: "Write a new blog article (admin only)",
	}
}

// BroadcastCommand sends an announcement to all users.
type BroadcastCommand struct{}

// Definition returns the application command definition.
func (c *BroadcastCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "broadcast",
		Description: "Send a message to every bot user (admin only)",
	}
}

// SearchCommand searches the website content.
type SearchCommand struct{}

// Definition returns the application command definition.
func (c *SearchCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "search",
		Description: "Search dramas and articles",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "query",
				Description: "What to look for",
				Type:        discordgo.ApplicationCommandOptionString,
				Required:    true,
			},
		},
	}
}

// InfoCommand shows aggregate statistics.
type InfoCommand struct{}

// Definition returns the application command definition.
func (c *InfoCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "info",
		Description: "Show bot statistics",
	}
}

// StartCommand registers the user and shows the welcome message.
type StartCommand struct{}

// Definition returns the application command definition.
func (c *StartCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "start",
		Description: "Get started with the bot",
	}
}

// HelpCommand lists the available commands.
type HelpCommand struct{}

// Definition returns the application command definition.
func (c *HelpCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "help",
		Description: "Show the available commands",
	}
}

// CancelCommand aborts the current operation.
type CancelCommand struct{}

// Definition returns the application command definition.
func (c *CancelCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "cancel",
		Description: "Cancel the current operation (admin only)",
	}
}
