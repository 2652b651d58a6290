package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/meshdrive/meshdrive/internal/logger"
	"github.com/meshdrive/meshdrive/migrations"
	"github.com/meshdrive/meshdrive/models"
)

// defaultHistoryLimit caps an unbounded history listing.
const defaultHistoryLimit = 100

// HistoryStore records every terminal transfer in a node-local sqlite
// database. It is additive bookkeeping: transfer state machines never read
// it back.
type HistoryStore struct {
	db     *sql.DB
	logger *logger.Logger

	now func() time.Time
}

// NewHistoryStore opens (creating if needed) the sqlite database at dsn and
// runs pending migrations.
func NewHistoryStore(ctx context.Context, dsn string, log *logger.Logger) (*HistoryStore, error) {
	if err := createDBFileIfNotExists(dsn); err != nil {
		return nil, fmt.Errorf("create history db file: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &HistoryStore{db: db, logger: log, now: time.Now}, nil
}

// NewHistoryStoreFromDB wraps an already-open connection. Used by tests.
func NewHistoryStoreFromDB(db *sql.DB, log *logger.Logger) *HistoryStore {
	return &HistoryStore{db: db, logger: log, now: time.Now}
}

func createDBFileIfNotExists(dsn string) error {
	if _, err := os.Stat(dsn); os.IsNotExist(err) {
		f, err := os.Create(dsn)
		if err != nil {
			return err
		}
		f.Close()
	}
	return nil
}

// Append inserts one transfer record. The row ID is generated here.
func (h *HistoryStore) Append(ctx context.Context, direction, name, peerID string, size int64, succeeded bool) error {
	query, args, err := sq.Insert("transfers").
		Columns("id", "direction", "name", "peer_id", "size", "succeeded", "at").
		Values(uuid.NewString(), direction, name, peerID, size, succeeded, h.now().Unix()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}

	if _, err = h.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}

	return nil
}

// List returns up to limit records, newest first. limit<=0 selects the
// default cap.
func (h *HistoryStore) List(ctx context.Context, limit int) ([]models.TransferRecord, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	query, args, err := sq.Select("id", "direction", "name", "peer_id", "size", "succeeded", "at").
		From("transfers").
		OrderBy("at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history select: %w", err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []models.TransferRecord
	for rows.Next() {
		var r models.TransferRecord
		if err = rows.Scan(&r.ID, &r.Direction, &r.Name, &r.PeerID, &r.Size, &r.Succeeded, &r.At); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return records, nil
}

// Close releases the underlying database handle.
func (h *HistoryStore) Close() error {
	return h.db.Close()
}
