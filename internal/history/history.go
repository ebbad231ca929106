// Package history persists the demo host's conversation in SQLite so a
// restart picks up where the last session left off.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	apperrors "github.com/zhubert/chatty/internal/errors"
	"github.com/zhubert/chatty/internal/logger"
	"github.com/zhubert/chatty/internal/message"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store wraps a SQLite database holding one conversation.
type Store struct {
	db   *sql.DB
	path string
	log  *slog.Logger
}

// Open creates or opens the history database at path. An empty path is
// treated as MemoryPath.
func Open(path string) (*Store, error) {
	if path == "" {
		path = MemoryPath
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.HistoryOpenFailed(path, err)
	}
	// Every pooled connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, log: logger.WithComponent("history")}

	if path != MemoryPath {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			s.log.Warn("failed to enable WAL mode, continuing without it", "error", err)
		}
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, apperrors.HistoryOpenFailed(path, err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database location.
func (s *Store) Path() string { return s.path }

func (s *Store) migrate() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	for i, m := range migrations {
		version := i + 1
		var count int
		if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version).Scan(&count); err != nil {
			return fmt.Errorf("check migration %d: %w", version, err)
		}
		if count > 0 {
			continue
		}

		s.log.Debug("running migration", "version", version, "name", m.name)
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("migration %d (%s): %w", version, m.name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("record migration %d: %w", version, err)
		}
	}
	return nil
}

// Save inserts msg, or updates it if its id is already stored. Stored order
// is first-insert order.
func (s *Store) Save(ctx context.Context, msg message.Message) error {
	media, reply, err := encodeExtras(msg)
	if err != nil {
		return apperrors.HistoryQueryFailed("Save", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO messages (id, me, author, body, created_at, media, replied_to)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			me = excluded.me,
			author = excluded.author,
			body = excluded.body,
			created_at = excluded.created_at,
			media = excluded.media,
			replied_to = excluded.replied_to
	`, msg.ID, msg.Me, msg.Author, msg.Text, unixNano(msg.CreatedAt), media, reply)
	if err != nil {
		return apperrors.HistoryQueryFailed("Save", err)
	}
	return nil
}

// SaveAll stores a batch in one transaction.
func (s *Store) SaveAll(ctx context.Context, batch []message.Message) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.HistoryQueryFailed("SaveAll", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO messages (id, me, author, body, created_at, media, replied_to)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return apperrors.HistoryQueryFailed("SaveAll", err)
	}
	defer stmt.Close()

	for _, msg := range batch {
		media, reply, err := encodeExtras(msg)
		if err != nil {
			return apperrors.HistoryQueryFailed("SaveAll", err)
		}
		if _, err := stmt.ExecContext(ctx, msg.ID, msg.Me, msg.Author, msg.Text, unixNano(msg.CreatedAt), media, reply); err != nil {
			return apperrors.HistoryQueryFailed("SaveAll", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return apperrors.HistoryQueryFailed("SaveAll", err)
	}
	return nil
}

// Delete removes a message. Deleting an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM messages WHERE id = ?", id); err != nil {
		return apperrors.HistoryQueryFailed("Delete", err)
	}
	return nil
}

// Get returns one message by id.
func (s *Store) Get(ctx context.Context, id string) (message.Message, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, me, author, body, created_at, media, replied_to
		FROM messages WHERE id = ?
	`, id)
	msg, err := scanMessage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return message.Message{}, apperrors.MessageNotFound(id)
	}
	if err != nil {
		return message.Message{}, apperrors.HistoryQueryFailed("Get", err)
	}
	return msg, nil
}

// Count returns the number of stored messages.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM messages").Scan(&n); err != nil {
		return 0, apperrors.HistoryQueryFailed("Count", err)
	}
	return n, nil
}

// Load returns the newest limit messages, oldest first. A limit of 0 or
// less loads everything.
func (s *Store) Load(ctx context.Context, limit int) ([]message.Message, error) {
	return s.page(ctx, "Load", "", limit)
}

// LoadBefore returns up to limit messages stored before the message with
// id before, oldest first. It backs the list's load-earlier header.
func (s *Store) LoadBefore(ctx context.Context, before string, limit int) ([]message.Message, error) {
	return s.page(ctx, "LoadBefore", before, limit)
}

func (s *Store) page(ctx context.Context, op, before string, limit int) ([]message.Message, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	query := `
		SELECT id, me, author, body, created_at, media, replied_to FROM (
			SELECT * FROM messages
			WHERE ? = '' OR seq < (SELECT seq FROM messages WHERE id = ?)
			ORDER BY seq DESC
			LIMIT ?
		) ORDER BY seq ASC
	`
	rows, err := s.db.QueryContext(ctx, query, before, before, limit)
	if err != nil {
		return nil, apperrors.HistoryQueryFailed(op, err)
	}
	defer rows.Close()

	var out []message.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, apperrors.HistoryQueryFailed(op, err)
		}
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.HistoryQueryFailed(op, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(sc scanner) (message.Message, error) {
	var (
		msg          message.Message
		created      int64
		media, reply string
	)
	if err := sc.Scan(&msg.ID, &msg.Me, &msg.Author, &msg.Text, &created, &media, &reply); err != nil {
		return message.Message{}, err
	}
	if created != 0 {
		msg.CreatedAt = time.Unix(0, created)
	}
	if media != "" {
		if err := json.Unmarshal([]byte(media), &msg.Media); err != nil {
			return message.Message{}, fmt.Errorf("decode media of %s: %w", msg.ID, err)
		}
	}
	if reply != "" {
		msg.RepliedTo = &message.ReplyRef{}
		if err := json.Unmarshal([]byte(reply), msg.RepliedTo); err != nil {
			return message.Message{}, fmt.Errorf("decode reply of %s: %w", msg.ID, err)
		}
	}
	return msg, nil
}

func encodeExtras(msg message.Message) (media, reply string, err error) {
	if len(msg.Media) > 0 {
		b, err := json.Marshal(msg.Media)
		if err != nil {
			return "", "", fmt.Errorf("encode media: %w", err)
		}
		media = string(b)
	}
	if msg.RepliedTo != nil {
		b, err := json.Marshal(msg.RepliedTo)
		if err != nil {
			return "", "", fmt.Errorf("encode reply: %w", err)
		}
		reply = string(b)
	}
	return media, reply, nil
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}
