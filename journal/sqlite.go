package journal

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// BatchRecord summarizes one completed simulation batch: the profile that
// produced it, its inputs, and the order statistics reported to the user.
type BatchRecord struct {
	BatchID      string
	Created      time.Time
	Profile      string
	MeanPct      float64
	StdDevPct    float64
	InflationPct float64
	Sims         int
	Periods      int
	Start        float64
	Median       float64
	P10          float64
	P90          float64
	Runtime      time.Duration
}

// SQLiteJournal persists batch summaries so scenario runs can be compared
// after the fact.
type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordBatch(b BatchRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO batches
		(batch_id, created, profile, mean_pct, std_dev_pct, inflation_pct,
		 sims, periods, start, median, p10, p90, runtime_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.BatchID, b.Created, b.Profile, b.MeanPct, b.StdDevPct, b.InflationPct,
		b.Sims, b.Periods, b.Start, b.Median, b.P10, b.P90,
		b.Runtime.Milliseconds(),
	)
	return err
}

// ListBatches returns all recorded batches, most recent first. Batch IDs are
// ULIDs, so ordering by id matches ordering by creation time.
func (j *SQLiteJournal) ListBatches() ([]BatchRecord, error) {
	rows, err := j.db.Query(`
		SELECT batch_id, created, profile, mean_pct, std_dev_pct, inflation_pct,
		       sims, periods, start, median, p10, p90, runtime_ms
		FROM batches
		ORDER BY batch_id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BatchRecord
	for rows.Next() {
		var b BatchRecord
		var ms int64
		err := rows.Scan(
			&b.BatchID, &b.Created, &b.Profile, &b.MeanPct, &b.StdDevPct,
			&b.InflationPct, &b.Sims, &b.Periods, &b.Start,
			&b.Median, &b.P10, &b.P90, &ms,
		)
		if err != nil {
			return nil, err
		}
		b.Runtime = time.Duration(ms) * time.Millisecond
		out = append(out, b)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
