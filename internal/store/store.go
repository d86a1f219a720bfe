package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS delivery_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	direction TEXT NOT NULL,
	target TEXT NOT NULL,
	message_count INTEGER NOT NULL,
	delivered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_delivery_log_delivered_at ON delivery_log(delivered_at);
`

// DeliveryRecord is one delivered batch.
type DeliveryRecord struct {
	ID           int64     `db:"id"`
	Direction    string    `db:"direction"`
	Target       string    `db:"target"`
	MessageCount int       `db:"message_count"`
	DeliveredAt  time.Time `db:"delivered_at"`
}

// Store is a sqlite-backed log of delivered message batches. It holds
// no message content and no conversation state.
type Store struct {
	db *sql.DB
}

func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) RecordDelivery(ctx context.Context, direction, target string, messageCount int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO delivery_log (direction, target, message_count) VALUES (?, ?, ?)`,
		direction, target, messageCount)
	if err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	return nil
}

// RecentDeliveries returns the newest records, most recent first.
func (s *Store) RecentDeliveries(ctx context.Context, limit int) ([]DeliveryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, direction, target, message_count, delivered_at
		 FROM delivery_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	var records []DeliveryRecord
	for rows.Next() {
		var r DeliveryRecord
		if err := rows.Scan(&r.ID, &r.Direction, &r.Target, &r.MessageCount, &r.DeliveredAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
