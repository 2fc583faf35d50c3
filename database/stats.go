package database

import (
	"database/sql"
	"fmt"

	"drama-bot/models"
)

// GetStats collects the aggregate counts shown by the /info command.
func GetStats(db *sql.DB) (models.Stats, error) {
	var stats models.Stats

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM posts`, &stats.TotalPosts},
		{`SELECT COUNT(*) FROM posts WHERE section = 'ongoing'`, &stats.OngoingPosts},
		{`SELECT COUNT(*) FROM posts WHERE section = 'all_posts'`, &stats.AllPosts},
		{`SELECT COUNT(*) FROM files`, &stats.TotalFiles},
		{`SELECT COUNT(*) FROM users`, &stats.TotalUsers},
		{`SELECT COUNT(*) FROM blogs`, &stats.TotalBlogs},
	}

	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dest); err != nil {
			return models.Stats{}, fmt.Errorf("failed to collect statistics: %w", err)
		}
	}

	return stats, nil
}
