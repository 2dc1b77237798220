// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS batches (
	batch_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	profile TEXT NOT NULL,
	mean_pct REAL NOT NULL,
	std_dev_pct REAL NOT NULL,
	inflation_pct REAL NOT NULL,
	sims INTEGER NOT NULL,
	periods INTEGER NOT NULL,
	start REAL NOT NULL,
	median REAL NOT NULL,
	p10 REAL NOT NULL,
	p90 REAL NOT NULL,
	runtime_ms INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_batches_created ON batches(created);
`
