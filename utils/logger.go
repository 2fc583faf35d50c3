package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/fatih/color"
	"github.com/spf13/viper"
)

const (
	ColorInfo  = 0x00ff00 // Green
	ColorWarn  = 0xffff00 // Yellow
	ColorError = 0xff0000 // Red
)

var (
	infoLog = log.New(os.Stdout, color.GreenString("[INFO] "), log.Ldate|log.Ltime)
	warnLog = log.New(os.Stdout, color.YellowString("[WARN] "), log.Ldate|log.Ltime)
	errLog  = log.New(os.Stderr, color.RedString("[ERROR] "), log.Ldate|log.Ltime)

	session   *discordgo.Session
	channelID string
)

// InitLogger attaches a Discord session so warnings and errors are mirrored
// to the admin log channel. Console logging works without it.
func InitLogger(s *discordgo.Session) {
	session = s
	channelID = viper.GetString("LOG_CHANNEL_ID")
	if channelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID is not set. Logging to channel will be disabled.")
	}
}

// Log writes a log line and, for WARN/ERROR levels, mirrors it as an embed
// to the admin channel when one is configured.
func Log(level, module, operation, details string) {
	line := fmt.Sprintf("Module: %s, Operation: %s, Details: %s", module, operation, details)
	switch level {
	case "WARN":
		warnLog.Print(line)
	case "ERROR":
		errLog.Print(line)
	default:
		infoLog.Print(line)
	}

	if session == nil || channelID == "" || level == "INFO" {
		return
	}

	var embedColor int
	switch level {
	case "WARN":
		embedColor = ColorWarn
	case "ERROR":
		embedColor = ColorError
	default:
		embedColor = ColorInfo
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("Log Level: %s", level),
		Color:     embedColor,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Module", Value: module, Inline: true},
			{Name: "Operation", Value: operation, Inline: true},
			{Name: "Details", Value: details},
		},
	}

	if _, err := session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		log.Printf("Error sending log message to Discord: %v", err)
	}
}

// Info logs an informational message.
func Info(module, operation, details string) {
	Log("INFO", module, operation, details)
}

// Warn logs a warning message.
func Warn(module, operation, details string) {
	Log("WARN", module, operation, details)
}

// Error logs an error message.
func Error(module, operation, details string) {
	Log("ERROR", module, operation, details)
}
