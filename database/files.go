package database

import (
	"database/sql"
	"fmt"

	"drama-bot/models"
)

// InsertFile saves a single processed file record.
func InsertFile(db *sql.DB, file models.FileRecord) error {
	query := `INSERT INTO files (file_id, file_name, channel_link, direct_link, shortened_link, file_size, mime_type, uploaded_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for saving file: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		file.FileID,
		file.FileName,
		file.ChannelLink,
		file.DirectLink,
		file.ShortenedLink,
		file.FileSize,
		file.MimeType,
		file.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute statement for saving file %s: %w", file.FileID, err)
	}

	return nil
}

// GetFilesByChannel returns every file record uploaded for a channel.
func GetFilesByChannel(db *sql.DB, channelLink string) ([]models.FileRecord, error) {
	query := `SELECT id, file_id, file_name, channel_link, direct_link, shortened_link, file_size, mime_type, uploaded_at
	          FROM files WHERE channel_link = ? ORDER BY uploaded_at DESC`

	rows, err := db.Query(query, channelLink)
	if err != nil {
		return nil, fmt.Errorf("failed to query files for channel %s: %w", channelLink, err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

// GetAllFiles returns every stored file record.
func GetAllFiles(db *sql.DB) ([]models.FileRecord, error) {
	query := `SELECT id, file_id, file_name, channel_link, direct_link, shortened_link, file_size, mime_type, uploaded_at
	          FROM files ORDER BY uploaded_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer rows.Close()

	return collectFiles(rows)
}

func collectFiles(rows *sql.Rows) ([]models.FileRecord, error) {
	var files []models.FileRecord
	for rows.Next() {
		var f models.FileRecord
		err := rows.Scan(
			&f.ID,
			&f.FileID,
			&f.FileName,
			&f.ChannelLink,
			&f.DirectLink,
			&f.ShortenedLink,
			&f.FileSize,
			&f.MimeType,
			&f.UploadedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file record: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
