package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"daypicker/internal/daypicker"
)

const lastMonthKey = "last_month"

// Selection is a day the user picked.
type Selection struct {
	Day       daypicker.Date
	Note      string
	CreatedAt time.Time
}

type Store struct {
	db *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, err
	}
	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dbPath, err)
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS selected_days (
	day TEXT PRIMARY KEY,
	created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS picker_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}
	return s.ensureSelectionColumns()
}

// ensureSelectionColumns upgrades databases created before a column existed.
func (s *Store) ensureSelectionColumns() error {
	required := map[string]string{
		"note": "ALTER TABLE selected_days ADD COLUMN note TEXT NOT NULL DEFAULT '';",
	}
	existing := map[string]struct{}{}
	rows, err := s.db.Query(`PRAGMA table_info(selected_days);`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return err
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for col, alter := range required {
		if _, ok := existing[col]; ok {
			continue
		}
		if _, err := s.db.Exec(alter); err != nil {
			return err
		}
	}
	return nil
}

// Selections returns every selected day in calendar order.
func (s *Store) Selections() ([]Selection, error) {
	rows, err := s.db.Query(`SELECT day, note, created_at FROM selected_days ORDER BY day;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Selection
	for rows.Next() {
		var dayStr, createdStr string
		var sel Selection
		if err := rows.Scan(&dayStr, &sel.Note, &createdStr); err != nil {
			return nil, err
		}
		sel.Day, err = daypicker.ParseDate(dayStr)
		if err != nil {
			return nil, err
		}
		if created, err := time.Parse(time.RFC3339, createdStr); err == nil {
			sel.CreatedAt = created
		}
		out = append(out, sel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SelectedSet returns the selected days keyed by date.
func (s *Store) SelectedSet() (map[daypicker.Date]struct{}, error) {
	sels, err := s.Selections()
	if err != nil {
		return nil, err
	}
	set := make(map[daypicker.Date]struct{}, len(sels))
	for _, sel := range sels {
		set[sel.Day] = struct{}{}
	}
	return set, nil
}

// ToggleSelected selects d, or clears it when already selected. It reports
// whether d is selected afterwards.
func (s *Store) ToggleSelected(d daypicker.Date) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM selected_days WHERE day = ?;`, d.String())
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return false, err
	} else if n > 0 {
		return false, nil
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(`INSERT INTO selected_days (day, created_at) VALUES (?, ?);`, d.String(), now); err != nil {
		return false, err
	}
	return true, nil
}

// SetNote attaches a note to an already selected day.
func (s *Store) SetNote(d daypicker.Date, note string) error {
	res, err := s.db.Exec(`UPDATE selected_days SET note = ? WHERE day = ?;`, note, d.String())
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s is not selected", d)
	}
	return nil
}

// LastMonth returns the month shown when the picker last closed.
func (s *Store) LastMonth() (daypicker.Month, bool, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM picker_state WHERE key = ?;`, lastMonthKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return daypicker.Month{}, false, nil
	}
	if err != nil {
		return daypicker.Month{}, false, err
	}
	m, err := daypicker.ParseMonth(v)
	if err != nil {
		return daypicker.Month{}, false, err
	}
	return m, true, nil
}

func (s *Store) SaveLastMonth(m daypicker.Month) error {
	_, err := s.db.Exec(`INSERT INTO picker_state (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, lastMonthKey, m.String())
	return err
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
