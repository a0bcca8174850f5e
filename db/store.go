package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"ytopml/models"

	sqlbuilder "github.com/huandu/go-sqlbuilder"
	log "github.com/sirupsen/logrus"
)

// Archive persists imported subscriptions so successive Takeout exports can
// be compared and served over HTTP.
type Archive struct {
	db *sql.DB
}

// Open connects to the archive database at the given path.
func Open(database string) (*Archive, error) {
	db, err := connection(database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to archive database: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

// SaveBatch inserts every record as part of a single import batch stamped
// with importedAt. Rows are stored as-is, duplicates included.
func (a *Archive) SaveBatch(ctx context.Context, records []models.SubscriptionRecord, importedAt time.Time) error {
	if len(records) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	ib := sqlbuilder.NewInsertBuilder()
	ib.InsertInto("subscriptions")
	ib.Cols("channel_id", "channel_url", "title", "imported_at")
	for _, record := range records {
		ib.Values(record.ChannelID, record.ChannelURL, record.Title, importedAt.Unix())
	}

	query, args := ib.Build()

	log.WithFields(log.Fields{
		"records":    len(records),
		"importedAt": importedAt.Format(time.RFC3339),
	}).Info("Archiving subscriptions")

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert error: %w", err)
	}

	return nil
}

// List returns all archived subscriptions, newest batch first, preserving
// insertion order within a batch.
func (a *Archive) List(ctx context.Context) ([]models.ArchivedSubscription, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sb := sqlbuilder.NewSelectBuilder()
	sb.Select("id", "channel_id", "channel_url", "title", "imported_at").
		From("subscriptions").
		OrderBy("imported_at DESC", "id ASC")

	query, args := sb.Build()

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select error: %w", err)
	}
	defer rows.Close()

	subscriptions := []models.ArchivedSubscription{}
	for rows.Next() {
		var sub models.ArchivedSubscription
		var importedAt int64
		if err := rows.Scan(&sub.Id, &sub.ChannelID, &sub.ChannelURL, &sub.Title, &importedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		sub.ImportedAt = time.Unix(importedAt, 0).UTC()
		subscriptions = append(subscriptions, sub)
	}

	return subscriptions, rows.Err()
}

// Tidy removes rows from import batches older than the most recent batch so
// the archive mirrors the latest Takeout snapshot. Returns the number of
// removed rows.
func (a *Archive) Tidy(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	deleteStale := sqlbuilder.NewDeleteBuilder()
	deleteStale.DeleteFrom("subscriptions").
		Where("imported_at < (SELECT MAX(imported_at) FROM subscriptions)")

	query, args := deleteStale.Build()

	log.WithFields(log.Fields{
		"sql": query,
	}).Info("Tidying archive")

	result, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete error: %w", err)
	}

	return result.RowsAffected()
}
