package bot

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/viper"

	"drama-bot/command"
	"drama-bot/files"
	"drama-bot/session"
	"drama-bot/utils"
	"drama-bot/website"
)

// Bot encapsulates the bot's state and its collaborators.
type Bot struct {
	Session  *discordgo.Session
	DB       *sql.DB
	Site     *website.Manager
	Sessions *session.Manager
	Files    *files.Processor
	Auth     *utils.Auth
}

// NewBot creates and initializes a new Bot instance.
func NewBot(db *sql.DB, site *website.Manager, sessions *session.Manager, processor *files.Processor, auth *utils.Auth) (*Bot, error) {
	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("no bot token provided")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	// Handlers mutate per-user session state without their own locking;
	// they require serialized event dispatch.
	dg.SyncEvents = true

	return &Bot{
		Session:  dg,
		DB:       db,
		Site:     site,
		Sessions: sessions,
		Files:    processor,
		Auth:     auth,
	}, nil
}

// Start opens the bot's session, registers handlers and slash commands, and
// starts the scheduler.
func (b *Bot) Start(registerHandlers func(*Bot)) error {
	registerHandlers(b)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	for _, def := range command.GetCommandDefinitions() {
		if _, err := b.Session.ApplicationCommandCreate(b.Session.State.User.ID, "", def); err != nil {
			log.Printf("Cannot create '%v' command: %v", def.Name, err)
		}
	}

	utils.InitLogger(b.Session)
	startScheduler(b)

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully closes the bot's session.
func (b *Bot) Stop() {
	stopScheduler()
	if b.Session != nil {
		b.Session.Close()
	}
	fmt.Println("Bot stopped gracefully.")
}

// Run starts the bot and blocks until a termination signal arrives.
func Run(b *Bot, registerHandlers func(*Bot)) {
	if err := b.Start(registerHandlers); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	b.Stop()
}
