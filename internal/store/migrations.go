package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS journal_entries (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	number  INTEGER NOT NULL,
	title   TEXT NOT NULL,
	content TEXT NOT NULL,
	date    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	description TEXT NOT NULL,
	completed   INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1))
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_journal_entries_number
	ON journal_entries(number);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
