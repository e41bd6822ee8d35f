package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyFormat is returned when saving a format with an empty key or pattern.
var ErrEmptyFormat = errors.New("format key and pattern must not be empty")

// StoredFormat is a literal pattern persisted under a key.
type StoredFormat struct {
	Key       string    `json:"key"`
	Pattern   string    `json:"pattern"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveFormat inserts or replaces the pattern stored under key.
func (d *Database) SaveFormat(ctx context.Context, key, pattern string) error {
	if key == "" || pattern == "" {
		return ErrEmptyFormat
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := d.db.ExecContext(ctx, `
		INSERT INTO formats (key, pattern, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			pattern = excluded.pattern,
			updated_at = excluded.updated_at
	`, key, pattern, time.Now().Unix())
	recordQuery("save_format", start, err)
	if err != nil {
		return fmt.Errorf("failed to save format %q: %w", key, err)
	}
	return nil
}

// ListFormats returns all stored formats ordered by key.
func (d *Database) ListFormats(ctx context.Context) ([]StoredFormat, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(ctx, `SELECT key, pattern, updated_at FROM formats ORDER BY key`)
	if err != nil {
		recordQuery("list_formats", start, err)
		return nil, fmt.Errorf("failed to list formats: %w", err)
	}
	defer rows.Close()

	var formats []StoredFormat
	for rows.Next() {
		var (
			f       StoredFormat
			updated int64
		)
		if err := rows.Scan(&f.Key, &f.Pattern, &updated); err != nil {
			recordQuery("list_formats", start, err)
			return nil, fmt.Errorf("failed to scan format: %w", err)
		}
		f.UpdatedAt = time.Unix(updated, 0).UTC()
		formats = append(formats, f)
	}

	err = rows.Err()
	recordQuery("list_formats", start, err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate formats: %w", err)
	}
	return formats, nil
}

// CountFormats returns the number of stored formats.
func (d *Database) CountFormats(ctx context.Context) (int, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n int
	err := d.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM formats`).Scan(&n)
	recordQuery("count_formats", start, err)
	if err != nil {
		return 0, fmt.Errorf("failed to count formats: %w", err)
	}
	return n, nil
}
