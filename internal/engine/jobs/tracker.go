package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// JobStatus represents the application status for a tracked job.
type JobStatus string

const (
	StatusSaved     JobStatus = "saved"
	StatusApplied   JobStatus = "applied"
	StatusInterview JobStatus = "interview"
	StatusOffer     JobStatus = "offer"
	StatusRejected  JobStatus = "rejected"
)

var validStatuses = map[JobStatus]bool{
	StatusSaved: true, StatusApplied: true, StatusInterview: true,
	StatusOffer: true, StatusRejected: true,
}

// TrackedJob is a single entry in the job tracker.
type TrackedJob struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	URL       string    `json:"url"`
	Status    JobStatus `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Salary    string    `json:"salary,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// JobTrackerAddInput is the input for job_tracker_add.
type JobTrackerAddInput struct {
	Title    string `json:"title" jsonschema:"Job title"`
	Company  string `json:"company" jsonschema:"Company name"`
	URL      string `json:"url,omitempty" jsonschema:"Listing URL"`
	Status   string `json:"status,omitempty" jsonschema:"saved (default), applied, interview, offer, rejected"`
	Notes    string `json:"notes,omitempty"`
	Salary   string `json:"salary,omitempty"`
	Location string `json:"location,omitempty"`
}

// JobTrackerListInput is the input for job_tracker_list.
type JobTrackerListInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max entries (default 50)"`
}

// JobTrackerUpdateInput is the input for job_tracker_update.
type JobTrackerUpdateInput struct {
	ID     int64  `json:"id" jsonschema:"Tracked job ID"`
	Status string `json:"status,omitempty" jsonschema:"New status"`
	Notes  string `json:"notes,omitempty" jsonschema:"Replacement notes"`
}

// JobTrackerResult is the output for add/update operations.
type JobTrackerResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// JobTrackerListResult is the output for list operations.
type JobTrackerListResult struct {
	Jobs  []TrackedJob `json:"jobs"`
	Total int          `json:"total"`
}

// Tracker is a saved-job store over database/sql. The default backend is a
// local sqlite file; setting a Postgres URL switches to pgx.
type Tracker struct {
	db       *sql.DB
	postgres bool
}

var tracker *Tracker

// SetTracker installs the process-wide tracker used by the tool layer.
func SetTracker(t *Tracker) { tracker = t }

// GetTracker returns the installed tracker, or nil when tracking is disabled.
func GetTracker() *Tracker { return tracker }

const trackerSchemaSQLite = `CREATE TABLE IF NOT EXISTS tracked_jobs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	company    TEXT NOT NULL,
	url        TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'saved',
	notes      TEXT NOT NULL DEFAULT '',
	salary     TEXT NOT NULL DEFAULT '',
	location   TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const trackerSchemaPostgres = `CREATE TABLE IF NOT EXISTS tracked_jobs (
	id         BIGSERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	company    TEXT NOT NULL,
	url        TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'saved',
	notes      TEXT NOT NULL DEFAULT '',
	salary     TEXT NOT NULL DEFAULT '',
	location   TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// OpenTracker opens the tracker store. databaseURL selects Postgres;
// otherwise a sqlite file under dataDir is used.
func OpenTracker(ctx context.Context, databaseURL, dataDir string) (*Tracker, error) {
	t := &Tracker{}
	var err error

	if databaseURL != "" {
		t.postgres = true
		t.db, err = sql.Open("pgx", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("tracker: open postgres: %w", err)
		}
	} else {
		if dataDir == "" {
			dataDir = "."
		}
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("tracker: data dir: %w", err)
		}
		t.db, err = sql.Open("sqlite", filepath.Join(dataDir, "tracker.db"))
		if err != nil {
			return nil, fmt.Errorf("tracker: open sqlite: %w", err)
		}
	}

	schema := trackerSchemaSQLite
	if t.postgres {
		schema = trackerSchemaPostgres
	}
	if _, err := t.db.ExecContext(ctx, schema); err != nil {
		t.db.Close()
		return nil, fmt.Errorf("tracker: schema: %w", err)
	}
	return t, nil
}

// Close releases the underlying connection pool.
func (t *Tracker) Close() error { return t.db.Close() }

// rebind converts ?-style placeholders to $N for Postgres.
func (t *Tracker) rebind(query string) string {
	if !t.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Add inserts a new tracked job, defaulting status to "saved".
func (t *Tracker) Add(ctx context.Context, in JobTrackerAddInput) (JobTrackerResult, error) {
	if strings.TrimSpace(in.Title) == "" {
		return JobTrackerResult{}, fmt.Errorf("tracker add: title is required")
	}
	status := JobStatus(in.Status)
	if status == "" {
		status = StatusSaved
	}
	if !validStatuses[status] {
		return JobTrackerResult{}, fmt.Errorf("tracker add: invalid status %q", in.Status)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO tracked_jobs (title, company, url, status, notes, salary, location, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{in.Title, in.Company, in.URL, string(status), in.Notes, in.Salary, in.Location, now, now}

	var id int64
	if t.postgres {
		err := t.db.QueryRowContext(ctx, t.rebind(query)+" RETURNING id", args...).Scan(&id)
		if err != nil {
			return JobTrackerResult{}, fmt.Errorf("tracker add: %w", err)
		}
	} else {
		res, err := t.db.ExecContext(ctx, query, args...)
		if err != nil {
			return JobTrackerResult{}, fmt.Errorf("tracker add: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return JobTrackerResult{}, fmt.Errorf("tracker add: %w", err)
		}
	}

	return JobTrackerResult{ID: id, Message: fmt.Sprintf("tracked %q at %s", in.Title, in.Company)}, nil
}

// List returns tracked jobs, optionally filtered by status, newest first.
func (t *Tracker) List(ctx context.Context, in JobTrackerListInput) (JobTrackerListResult, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, title, company, url, status, notes, salary, location, created_at, updated_at
		FROM tracked_jobs`
	var args []any
	if in.Status != "" {
		if !validStatuses[JobStatus(in.Status)] {
			return JobTrackerListResult{}, fmt.Errorf("tracker list: invalid status %q", in.Status)
		}
		query += ` WHERE status = ?`
		args = append(args, in.Status)
	}
	query += ` ORDER BY updated_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := t.db.QueryContext(ctx, t.rebind(query), args...)
	if err != nil {
		return JobTrackerListResult{}, fmt.Errorf("tracker list: %w", err)
	}
	defer rows.Close()

	out := JobTrackerListResult{Jobs: []TrackedJob{}}
	for rows.Next() {
		var j TrackedJob
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.URL, &j.Status, &j.Notes,
			&j.Salary, &j.Location, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return JobTrackerListResult{}, fmt.Errorf("tracker list: %w", err)
		}
		out.Jobs = append(out.Jobs, j)
	}
	if err := rows.Err(); err != nil {
		return JobTrackerListResult{}, fmt.Errorf("tracker list: %w", err)
	}
	out.Total = len(out.Jobs)
	return out, nil
}

// Update changes the status and/or notes of a tracked job.
func (t *Tracker) Update(ctx context.Context, in JobTrackerUpdateInput) (JobTrackerResult, error) {
	if in.ID <= 0 {
		return JobTrackerResult{}, fmt.Errorf("tracker update: id is required")
	}
	if in.Status == "" && in.Notes == "" {
		return JobTrackerResult{}, fmt.Errorf("tracker update: nothing to update")
	}

	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Format(time.RFC3339)}
	if in.Status != "" {
		if !validStatuses[JobStatus(in.Status)] {
			return JobTrackerResult{}, fmt.Errorf("tracker update: invalid status %q", in.Status)
		}
		sets = append(sets, "status = ?")
		args = append(args, in.Status)
	}
	if in.Notes != "" {
		sets = append(sets, "notes = ?")
		args = append(args, in.Notes)
	}
	args = append(args, in.ID)

	query := fmt.Sprintf("UPDATE tracked_jobs SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := t.db.ExecContext(ctx, t.rebind(query), args...)
	if err != nil {
		return JobTrackerResult{}, fmt.Errorf("tracker update: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return JobTrackerResult{}, fmt.Errorf("tracker update: no job with id %d", in.ID)
	}

	return JobTrackerResult{ID: in.ID, Message: "updated"}, nil
}
