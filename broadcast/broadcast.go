// Package broadcast sends an announcement to every stored user, one message
// at a time. A failed send never aborts the remaining batch.
package broadcast

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"drama-bot/models"
	"drama-bot/utils"
)

// Sender delivers one direct message to one user.
type Sender interface {
	SendDM(userID, content string) error
}

// Result summarizes a finished broadcast.
type Result struct {
	Total  int
	Sent   int
	Failed int
}

// Send delivers the message to every user sequentially. Per-recipient
// failures are counted and logged; the batch always runs to completion.
func Send(users []models.User, message string, sender Sender) Result {
	result := Result{Total: len(users)}

	for _, user := range users {
		if err := sender.SendDM(user.UserID, message); err != nil {
			utils.Warn("broadcast", "send", fmt.Sprintf("failed to reach user %s: %v", user.UserID, err))
			result.Failed++
			continue
		}
		result.Sent++
	}

	utils.Info("broadcast", "send", fmt.Sprintf("delivered %d/%d messages (%d failed)", result.Sent, result.Total, result.Failed))
	return result
}

// DiscordSender delivers broadcasts over Discord direct messages.
type DiscordSender struct {
	Session *discordgo.Session
}

// SendDM opens (or reuses) the DM channel for a user and sends the message.
func (d *DiscordSender) SendDM(userID, content string) error {
	channel, err := d.Session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}
	if _, err := d.Session.ChannelMessageSend(channel.ID, content); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}
