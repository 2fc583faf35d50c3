package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Required environment variables. The process refuses to start while any of
// these are missing.
var required = []string{
	"BOT_TOKEN",
	"DATABASE_PATH",
	"ADMIN_IDS",
	"WEBSITE_URL",
}

// SearchTriggers are the keywords that make the bot scan a group message for
// drama titles and reply with matching content.
var SearchTriggers = []string{
	"kdrama", "k-drama", "drama", "episode", "season",
	"latest episode", "new episode", "download", "watch",
	"where can i", "anyone seen", "recommend", "suggest",
	"anyone watch", "looking for", "where to watch",
	"best drama", "good drama", "new drama",
}

// SupportedFileTypes lists the mime types accepted during a publish session.
var SupportedFileTypes = []string{
	"video/mp4", "video/mkv", "video/avi", "video/mov", "video/x-matroska",
	"application/zip", "application/x-rar-compressed", "application/x-7z-compressed",
}

// IsSupportedFileType reports whether a mime type is accepted during a
// publish session.
func IsSupportedFileType(mimeType string) bool {
	for _, t := range SupportedFileTypes {
		if strings.EqualFold(mimeType, t) {
			return true
		}
	}
	return false
}

// LoadConfig loads configuration from a .env file (if present) and the
// environment. Environment variables always win over file values.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only.")
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("WEBSITE_DATA_FILE", "website_data.json")
	viper.SetDefault("HEALTH_ADDR", ":8000")
	viper.SetDefault("SHORTENER_ENABLED", true)
	viper.SetDefault("SHORTENER_API_KEY", "")
	viper.SetDefault("MAX_GROUP_RESULTS", 3)
	viper.SetDefault("SESSION_TIMEOUT_MINUTES", 30)
}

// Validate returns the names of all required variables that are missing.
// An empty result means the configuration is complete.
func Validate() []string {
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// AdminIDs returns the parsed ADMIN_IDS list.
func AdminIDs() []string {
	var ids []string
	for _, id := range strings.Split(viper.GetString("ADMIN_IDS"), ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SectionURL returns the public website anchor for a content section.
func SectionURL(section string) string {
	base := strings.TrimRight(viper.GetString("WEBSITE_URL"), "/")
	switch section {
	case "home":
		return base + "/#home"
	case "ongoing":
		return base + "/#ongoing"
	case "blog":
		return base + "/#blog"
	case "all_posts":
		return base + "/#bot-posts"
	default:
		return base
	}
}
