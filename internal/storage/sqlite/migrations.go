package sqlite

// schema contains the database schema DDL. Every statement is idempotent so
// it runs on each open.
const schema = `
-- Missed prayers
CREATE TABLE IF NOT EXISTS missed_prayers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    prayer_type TEXT NOT NULL,
    date TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
CREATE INDEX IF NOT EXISTS idx_missed_prayers_date ON missed_prayers(date);

-- Settings
CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT
);
`

// createdAtLayout matches SQLite's datetime('now') output.
const createdAtLayout = "2006-01-02 15:04:05"
