package database

import (
	"database/sql"
	"fmt"
	"time"

	"drama-bot/models"
)

// UpsertUser records a user on first interaction. Existing rows keep their
// original joined_at; only the display name is refreshed.
func UpsertUser(db *sql.DB, user models.User) error {
	query := `INSERT INTO users (user_id, display_name, joined_at) VALUES (?, ?, ?)
	          ON CONFLICT(user_id) DO UPDATE SET display_name = excluded.display_name`

	stmt, err := db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for upserting user: %w", err)
	}
	defer stmt.Close()

	joined := user.JoinedAt
	if joined.IsZero() {
		joined = time.Now()
	}

	if _, err := stmt.Exec(user.UserID, user.DisplayName, joined); err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", user.UserID, err)
	}
	return nil
}

// GetAllUsers returns every stored user, for broadcasts.
func GetAllUsers(db *sql.DB) ([]models.User, error) {
	rows, err := db.Query(`SELECT user_id, display_name, joined_at FROM users`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.DisplayName, &u.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetUserCount returns the number of stored users.
func GetUserCount(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
