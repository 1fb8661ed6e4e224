// Package storage persists durable user state (favorites, compare list,
// preferences, captured leads) to a local SQLite database. Reads are
// defensive: a missing or corrupt value falls back to its default instead of
// failing the session.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/ghalymotors/showroom/internal/utils"
)

// Fixed keys for the state_kv table.
const (
	KeyFavorites   = "favorites"
	KeyCompareList = "compareList"
	KeyPreferences = "preferences"
	KeyDarkMode    = "darkMode"
)

type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS state_kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS leads (
  id          INTEGER PRIMARY KEY,
  kind        TEXT NOT NULL CHECK (kind IN ('test_drive','contact')),
  vehicle_id  INTEGER NOT NULL,
  name        TEXT NOT NULL,
  email       TEXT NOT NULL,
  phone       TEXT NOT NULL,
  date        TEXT,
  time        TEXT,
  message     TEXT,
  created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_leads_vehicle ON leads(vehicle_id);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// LoadFavorites returns the persisted favorites set. A missing or corrupt
// value yields an empty set, never an error.
func (d *DB) LoadFavorites() []int {
	return d.loadIDList(KeyFavorites)
}

// SaveFavorites mirrors the favorites set to storage. Failures are logged
// and swallowed: a storage error never blocks the action that triggered it.
func (d *DB) SaveFavorites(ids []int) {
	d.saveIDList(KeyFavorites, ids)
}

// LoadCompare returns the persisted compare list, empty on any problem.
func (d *DB) LoadCompare() []int {
	return d.loadIDList(KeyCompareList)
}

// SaveCompare mirrors the compare list to storage, swallowing failures.
func (d *DB) SaveCompare(ids []int) {
	d.saveIDList(KeyCompareList, ids)
}

// DarkMode returns the persisted dark-mode preference, false by default.
func (d *DB) DarkMode() bool {
	raw, err := d.getValue(KeyDarkMode)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			utils.Log.Warnf("reading %s: %v", KeyDarkMode, err)
		}
		return false
	}
	return raw == "true"
}

// SetDarkMode persists the dark-mode preference, swallowing failures.
func (d *DB) SetDarkMode(on bool) {
	val := "false"
	if on {
		val = "true"
	}
	if err := d.setValue(KeyDarkMode, val); err != nil {
		utils.Log.Warnf("writing %s: %v", KeyDarkMode, err)
	}
}

func (d *DB) loadIDList(key string) []int {
	raw, err := d.getValue(key)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			utils.Log.Warnf("reading %s: %v", key, err)
		}
		return nil
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		utils.Log.Warnf("corrupt %s value, falling back to empty: %v", key, err)
		return nil
	}
	return ids
}

func (d *DB) saveIDList(key string, ids []int) {
	if ids == nil {
		ids = []int{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		utils.Log.Warnf("serializing %s: %v", key, err)
		return
	}
	if err := d.setValue(key, string(raw)); err != nil {
		utils.Log.Warnf("writing %s: %v", key, err)
	}
}

func (d *DB) getValue(key string) (string, error) {
	var value string
	err := d.sql.QueryRow("SELECT value FROM state_kv WHERE key = ?", key).Scan(&value)
	return value, err
}

func (d *DB) setValue(key, value string) error {
	_, err := d.sql.Exec(
		"INSERT INTO state_kv(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	return err
}
