package store

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"github.com/234quix/rewoo/internal/evidence"
)

// TraceStore archives finished (or aborted) runs to sqlite so a run
// can be inspected after the process exits. Runs are never resumed
// from it; this is a diagnostic record, not execution state.
type TraceStore struct {
	DB *sql.DB
}

func NewTraceStore(dbPath string) (*TraceStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Create tables if not exist
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			task TEXT,
			plan TEXT,
			final_answer TEXT,
			status TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS evidence (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			position INTEGER,
			name TEXT,
			value TEXT
		);`,
	}
	for _, q := range queries {
		_, err = db.Exec(q)
		if err != nil {
			return nil, err
		}
	}

	return &TraceStore{DB: db}, nil
}

// Record writes one run and its evidence bindings. Status is "done"
// for a successful run or an error kind for an aborted one.
func (t *TraceStore) Record(runID, task, planText string, bindings []evidence.Binding, answer, status string) error {
	tx, err := t.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, task, plan, final_answer, status) VALUES (?, ?, ?, ?, ?)`,
		runID, task, planText, answer, status,
	)
	if err != nil {
		return err
	}

	for i, b := range bindings {
		_, err = tx.Exec(
			`INSERT INTO evidence (run_id, position, name, value) VALUES (?, ?, ?, ?)`,
			runID, i+1, b.Name, b.Value,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RunRecord is one archived run.
type RunRecord struct {
	ID          string
	Task        string
	Plan        string
	FinalAnswer string
	Status      string
}

// GetRun loads one archived run with its evidence in step order.
func (t *TraceStore) GetRun(runID string) (*RunRecord, []evidence.Binding, error) {
	var rec RunRecord
	err := t.DB.QueryRow(
		`SELECT id, task, plan, final_answer, status FROM runs WHERE id = ?`, runID,
	).Scan(&rec.ID, &rec.Task, &rec.Plan, &rec.FinalAnswer, &rec.Status)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, nil, err
	}

	rows, err := t.DB.Query(
		`SELECT name, value FROM evidence WHERE run_id = ? ORDER BY position`, runID,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var bindings []evidence.Binding
	for rows.Next() {
		var b evidence.Binding
		if err := rows.Scan(&b.Name, &b.Value); err != nil {
			return nil, nil, err
		}
		bindings = append(bindings, b)
	}
	return &rec, bindings, rows.Err()
}

// ListRuns returns the most recent runs, newest first.
func (t *TraceStore) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := t.DB.Query(
		`SELECT id, task, plan, final_answer, status FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Task, &rec.Plan, &rec.FinalAnswer, &rec.Status); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (t *TraceStore) Close() error {
	return t.DB.Close()
}
