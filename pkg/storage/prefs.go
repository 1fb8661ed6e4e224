package storage

import (
	"database/sql"
	"errors"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ghalymotors/showroom/internal/utils"
)

// User preferences live in a single JSON document under KeyPreferences, so
// new preference fields don't need schema changes.

// Preference returns the preference at path (gjson syntax), or an empty
// result when the document is missing or corrupt.
func (d *DB) Preference(path string) gjson.Result {
	raw, err := d.getValue(KeyPreferences)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			utils.Log.Warnf("reading %s: %v", KeyPreferences, err)
		}
		return gjson.Result{}
	}
	if !gjson.Valid(raw) {
		utils.Log.Warnf("corrupt %s document, falling back to defaults", KeyPreferences)
		return gjson.Result{}
	}
	return gjson.Get(raw, path)
}

// SetPreference updates the preference at path, creating the document if
// needed. Failures are logged and swallowed.
func (d *DB) SetPreference(path string, value interface{}) {
	raw, err := d.getValue(KeyPreferences)
	if err != nil || !gjson.Valid(raw) {
		raw = "{}"
	}
	updated, err := sjson.Set(raw, path, value)
	if err != nil {
		utils.Log.Warnf("updating %s: %v", KeyPreferences, err)
		return
	}
	if err := d.setValue(KeyPreferences, updated); err != nil {
		utils.Log.Warnf("writing %s: %v", KeyPreferences, err)
	}
}
