// Package analytics records privacy-conscious visitor metrics for the admin
// dashboard. Client IPs are hashed with a per-process salt before storage.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type VisitorMetric struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"` // never the raw IP
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type ClickStat struct {
	Target string `json:"target"`
	Clicks int64  `json:"clicks"`
}

type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalClicks      int64           `json:"total_clicks"`
	Clicks           []ClickStat     `json:"clicks"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
}

// Open opens (or creates) the SQLite database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_time_format=sqlite&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open analytics db: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	salt, err := randomHex(32)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, salt: salt, now: time.Now}
	if err := s.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			timestamp DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visitors_timestamp ON visitors(timestamp)`,
		`CREATE TABLE IF NOT EXISTS outbound_clicks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			target TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate analytics db: %w", err)
		}
	}
	return nil
}

// HashIP returns a stable, truncated hash of ip for this process.
func (s *Store) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + s.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *Store) TrackVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, s.HashIP(ip), userAgent, path, s.now().UTC())
	if err != nil {
		return fmt.Errorf("record visitor: %w", err)
	}
	return nil
}

func (s *Store) RecordClick(ctx context.Context, target string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO outbound_clicks (target, timestamp) VALUES (?, ?)`,
		target, s.now().UTC())
	if err != nil {
		return fmt.Errorf("record click: %w", err)
	}
	return nil
}

// Cleanup deletes visitor and click rows older than retention.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().UTC().Add(-retention)

	var total int64
	for _, table := range []string{"visitors", "outbound_clicks"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE timestamp < ?`, cutoff)
		if err != nil {
			return total, fmt.Errorf("cleanup %s: %w", table, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, fmt.Errorf("cleanup %s rows: %w", table, err)
		}
		total += n
	}
	return total, nil
}

func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Clicks: []ClickStat{}}
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE timestamp >= ?`, []any{now.Add(-7 * 24 * time.Hour)}},
		{&stats.TotalClicks, `SELECT COUNT(*) FROM outbound_clicks`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("load stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT target, COUNT(*) AS clicks
		FROM outbound_clicks
		GROUP BY target
		ORDER BY clicks DESC, target
	`)
	if err != nil {
		return nil, fmt.Errorf("load clicks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c ClickStat
		if err := rows.Scan(&c.Target, &c.Clicks); err != nil {
			return nil, fmt.Errorf("scan click: %w", err)
		}
		stats.Clicks = append(stats.Clicks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.RecentVisitors, err = s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), timestamp
		FROM visitors
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("load visitors: %w", err)
	}
	defer rows.Close()

	visitors := []VisitorMetric{}
	for rows.Next() {
		var v VisitorMetric
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			return nil, fmt.Errorf("scan visitor: %w", err)
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewToken returns a random 64 character hex token.
func NewToken() (string, error) {
	return randomHex(32)
}
