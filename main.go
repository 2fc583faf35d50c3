package main

import (
	"log"
	"os"

	"github.com/spf13/viper"

	"drama-bot/bot"
	"drama-bot/config"
	"drama-bot/database"
	"drama-bot/files"
	"drama-bot/handlers"
	"drama-bot/health"
	"drama-bot/session"
	"drama-bot/utils"
	"drama-bot/website"
)

func main() {
	config.LoadConfig()

	if missing := config.Validate(); len(missing) > 0 {
		log.Println("❌ Configuration validation failed:")
		for _, name := range missing {
			log.Printf("  • %s is not set", name)
		}
		os.Exit(1)
	}

	db, err := database.InitDB(viper.GetString("DATABASE_PATH"))
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.Close()

	site, err := website.NewManager(viper.GetString("WEBSITE_DATA_FILE"), config.SectionURL)
	if err != nil {
		log.Fatalf("Error loading website data: %v", err)
	}

	sessions := session.NewManager()

	processor := files.NewProcessor(
		files.NewDBStore(db),
		files.NewAttachmentResolver(nil),
		files.NewOuoShortener(
			viper.GetString("SHORTENER_API_KEY"),
			viper.GetBool("SHORTENER_ENABLED"),
			nil,
		),
	)

	auth := utils.NewAuth(config.AdminIDs())

	// The health endpoint runs independently of the bot's event loop.
	go health.Start(viper.GetString("HEALTH_ADDR"))

	b, err := bot.NewBot(db, site, sessions, processor, auth)
	if err != nil {
		log.Fatalf("Error initializing bot: %v", err)
	}

	bot.Run(b, handlers.Register)
}
