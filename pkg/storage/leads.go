package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/ghalymotors/showroom/pkg/leads"
)

// InsertLead stores a validated lead and returns its id.
func (d *DB) InsertLead(ctx context.Context, l leads.Lead) (int64, error) {
	res, err := d.sql.ExecContext(ctx,
		`INSERT INTO leads(kind, vehicle_id, name, email, phone, date, time, message) VALUES(?,?,?,?,?,?,?,?)`,
		l.Kind, l.VehicleID, l.Name, l.Email, l.Phone,
		nullIfEmpty(l.Date), nullIfEmpty(l.Time), nullIfEmpty(l.Message),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListLeads returns captured leads, newest first. An empty kind returns all.
func (d *DB) ListLeads(ctx context.Context, kind string) ([]leads.Lead, error) {
	q := "SELECT id, kind, vehicle_id, name, email, phone, date, time, message, created_at FROM leads"
	args := []interface{}{}
	if kind != "" {
		q += " WHERE kind = ?"
		args = append(args, kind)
	}
	q += " ORDER BY created_at DESC, id DESC"

	rows, err := d.sql.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []leads.Lead
	for rows.Next() {
		var l leads.Lead
		var date, tm, msg sql.NullString
		var createdAtStr string
		if err := rows.Scan(&l.ID, &l.Kind, &l.VehicleID, &l.Name, &l.Email, &l.Phone, &date, &tm, &msg, &createdAtStr); err != nil {
			return nil, err
		}
		l.Date = date.String
		l.Time = tm.String
		l.Message = msg.String
		// Parse SQLite CURRENT_TIMESTAMP format, then RFC3339.
		if t, perr := time.Parse("2006-01-02 15:04:05", createdAtStr); perr == nil {
			l.CreatedAt = t
		} else if t2, perr2 := time.Parse(time.RFC3339, createdAtStr); perr2 == nil {
			l.CreatedAt = t2
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountLeads returns the number of captured leads per kind.
func (d *DB) CountLeads(ctx context.Context) (map[string]int, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT kind, COUNT(*) FROM leads GROUP BY kind")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
