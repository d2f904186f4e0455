package activity

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/animdocs/internal/db"
)

// timeLayout sorts lexically in chronological order.
const timeLayout = "2006-01-02 15:04:05.000"

// Store persists events in SQLite.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Record inserts e. Missing ID and Timestamp are filled in.
func (s *Store) Record(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_events (id, timestamp, kind, recipe_id, language, file_name, origin, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Timestamp.UTC().Format(timeLayout),
		string(e.Kind),
		e.RecipeID,
		e.Language,
		e.FileName,
		string(e.Origin),
		e.Error,
	)
	if err != nil {
		return fmt.Errorf("inserting activity event: %w", err)
	}
	return nil
}

// QueryFilter controls which events Query returns.
type QueryFilter struct {
	RecipeID string
	Kind     Kind
	Origin   Origin
	Since    *time.Time
	Limit    int
}

// Query returns matching events, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Event, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.RecipeID != "" {
		clauses = append(clauses, "recipe_id = ?")
		args = append(args, filter.RecipeID)
	}
	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.Origin != "" {
		clauses = append(clauses, "origin = ?")
		args = append(args, string(filter.Origin))
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format(timeLayout))
	}

	query := "SELECT id, timestamp, kind, recipe_id, language, file_name, origin, error FROM activity_events"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC, rowid DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying activity events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Counts returns the number of events per recipe id for kind.
func (s *Store) Counts(ctx context.Context, kind Kind) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT recipe_id, COUNT(*) FROM activity_events WHERE kind = ? AND error = '' GROUP BY recipe_id",
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("counting activity events: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			id string
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

func scanEvent(rows *sql.Rows) (Event, error) {
	var (
		e            Event
		ts           string
		kind, origin string
	)
	if err := rows.Scan(&e.ID, &ts, &kind, &e.RecipeID, &e.Language, &e.FileName, &origin, &e.Error); err != nil {
		return Event{}, err
	}
	e.Kind = Kind(kind)
	e.Origin = Origin(origin)
	if t, err := time.Parse(timeLayout, ts); err == nil {
		e.Timestamp = t
	}
	return e, nil
}
