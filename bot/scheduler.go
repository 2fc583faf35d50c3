package bot

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"drama-bot/utils"
)

var c *cron.Cron

// startScheduler starts the cron jobs: a periodic sweep of abandoned
// sessions and a nightly rebuild of the website search index.
func startScheduler(b *Bot) {
	log.Println("Initializing scheduler...")
	c = cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		timeout := time.Duration(viper.GetInt("SESSION_TIMEOUT_MINUTES")) * time.Minute
		if timeout <= 0 {
			timeout = 30 * time.Minute
		}
		if removed := b.Sessions.SweepExpired(timeout); removed > 0 {
			utils.Info("session", "sweep", fmt.Sprintf("discarded %d abandoned sessions", removed))
		}
	})
	if err != nil {
		log.Fatalf("Could not set up session sweep job: %v", err)
	}

	// The search index is derived data; the nightly rebuild reconciles it
	// in case a write was interrupted.
	_, err = c.AddFunc("@daily", func() {
		if err := b.Site.UpdateSearchData(); err != nil {
			utils.Error("website", "reindex", err.Error())
		}
	})
	if err != nil {
		log.Fatalf("Could not set up reindex job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started.")
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}
