package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS transcriptions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	source_name TEXT NOT NULL,
	source_type TEXT NOT NULL,
	api_used    TEXT NOT NULL,
	language    TEXT NOT NULL,
	duration    REAL NOT NULL DEFAULT 0,
	transcript  TEXT NOT NULL,
	favorite    INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_transcriptions_source_name ON transcriptions(source_name);
`

// HistoryDB is the default transcript history backend, a single
// sqlite file under the data directory.
type HistoryDB struct {
	db *sql.DB
}

// NewHistoryDB opens (and if needed creates) the history database at
// the given path.
func NewHistoryDB(dbFilePath string) (*HistoryDB, error) {
	if err := os.MkdirAll(filepath.Dir(dbFilePath), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &HistoryDB{db: db}, nil
}

func (h *HistoryDB) Close() error {
	return h.db.Close()
}

func (h *HistoryDB) Save(record *model.HistoryRecord) (int64, error) {
	result, err := h.db.Exec(
		`INSERT INTO transcriptions (created_at, source_name, source_type, api_used, language, duration, transcript, favorite)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.CreatedAt, record.SourceName, record.SourceType, record.APIUsed,
		record.Language, record.Duration, record.Transcript, record.Favorite,
	)
	if err != nil {
		return 0, fmt.Errorf("insert transcription: %w", err)
	}
	return result.LastInsertId()
}

func (h *HistoryDB) GetByID(id int64) (*model.HistoryRecord, error) {
	row := h.db.QueryRow(
		`SELECT id, created_at, source_name, source_type, api_used, language, duration, transcript, favorite
		 FROM transcriptions WHERE id = ?`, id)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query transcription %d: %w", id, err)
	}
	return record, nil
}

func (h *HistoryDB) List(limit, offset int) ([]model.HistoryRecord, error) {
	rows, err := h.db.Query(
		`SELECT id, created_at, source_name, source_type, api_used, language, duration, transcript, favorite
		 FROM transcriptions ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transcriptions: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (h *HistoryDB) Search(query string, limit int) ([]model.HistoryRecord, error) {
	pattern := "%" + query + "%"
	rows, err := h.db.Query(
		`SELECT id, created_at, source_name, source_type, api_used, language, duration, transcript, favorite
		 FROM transcriptions
		 WHERE source_name LIKE ? OR transcript LIKE ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search transcriptions: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (h *HistoryDB) ToggleFavorite(id int64) (bool, error) {
	result, err := h.db.Exec(`UPDATE transcriptions SET favorite = 1 - favorite WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("toggle favorite %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, apperrors.ErrRecordNotFound
	}

	var favorite bool
	if err := h.db.QueryRow(`SELECT favorite FROM transcriptions WHERE id = ?`, id).Scan(&favorite); err != nil {
		return false, fmt.Errorf("read favorite %d: %w", id, err)
	}
	return favorite, nil
}

func (h *HistoryDB) Delete(id int64) error {
	result, err := h.db.Exec(`DELETE FROM transcriptions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transcription %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}

func (h *HistoryDB) CheckIfProcessed(sourceName string) (int64, error) {
	var id int64
	err := h.db.QueryRow(
		`SELECT id FROM transcriptions WHERE source_name = ? ORDER BY id DESC LIMIT 1`,
		sourceName).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, apperrors.ErrRecordNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("check processed %q: %w", sourceName, err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*model.HistoryRecord, error) {
	var r model.HistoryRecord
	err := row.Scan(&r.ID, &r.CreatedAt, &r.SourceName, &r.SourceType,
		&r.APIUsed, &r.Language, &r.Duration, &r.Transcript, &r.Favorite)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func collectRecords(rows *sql.Rows) ([]model.HistoryRecord, error) {
	records := make([]model.HistoryRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transcription: %w", err)
		}
		records = append(records, *record)
	}
	return records, rows.Err()
}
