package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"peakplot/pkg/models"
)

// DB wraps the database connection
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes the schema
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// initSchema creates the necessary tables
func (db *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		idx INTEGER NOT NULL,
		ts TEXT NOT NULL,
		usage_kw REAL NOT NULL,
		hour_label TEXT,
		source TEXT NOT NULL,
		created_at TEXT NOT NULL,
		UNIQUE(ts, source)
	);
	CREATE INDEX IF NOT EXISTS idx_readings_ts ON readings(ts);
	CREATE INDEX IF NOT EXISTS idx_readings_source ON readings(source);
	`

	_, err := db.conn.Exec(schema)
	return err
}

const tsFormat = "2006-01-02 15:04:05"

// InsertReading inserts a reading, ignoring duplicates
func (db *DB) InsertReading(r *models.Reading) error {
	query := `
	INSERT OR IGNORE INTO readings (idx, ts, usage_kw, hour_label, source, created_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err := db.conn.Exec(query, r.Index, r.Timestamp.Format(tsFormat), r.UsageKW, r.HourLabel, r.Source, createdAt)
	if err != nil {
		return fmt.Errorf("inserting reading: %w", err)
	}

	return nil
}

// ListReadings retrieves all readings for a source, ordered by index then
// timestamp
func (db *DB) ListReadings(source string) ([]models.Reading, error) {
	query := `
	SELECT idx, ts, usage_kw, hour_label, source
	FROM readings
	WHERE source = ?
	ORDER BY idx, ts
	`

	rows, err := db.conn.Query(query, source)
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

// ListReadingsRange retrieves readings for a source within [from, to)
func (db *DB) ListReadingsRange(source string, from, to time.Time) ([]models.Reading, error) {
	query := `
	SELECT idx, ts, usage_kw, hour_label, source
	FROM readings
	WHERE source = ? AND ts >= ? AND ts < ?
	ORDER BY idx, ts
	`

	rows, err := db.conn.Query(query, source, from.Format(tsFormat), to.Format(tsFormat))
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

// Sources lists the distinct sources present in the database
func (db *DB) Sources() ([]string, error) {
	rows, err := db.conn.Query(`SELECT DISTINCT source FROM readings ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

func scanReadings(rows *sql.Rows) ([]models.Reading, error) {
	var readings []models.Reading
	for rows.Next() {
		var r models.Reading
		var tsStr string
		var hourLabel sql.NullString

		if err := rows.Scan(&r.Index, &tsStr, &r.UsageKW, &hourLabel, &r.Source); err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}

		ts, err := time.Parse(tsFormat, tsStr)
		if err != nil {
			return nil, fmt.Errorf("parsing stored timestamp %q: %w", tsStr, err)
		}
		r.Timestamp = ts
		r.HourLabel = hourLabel.String
		readings = append(readings, r)
	}
	return readings, rows.Err()
}
