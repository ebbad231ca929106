package history

type migration struct {
	name string
	sql  string
}

// migrations run in order; a migration's position is its version.
var migrations = []migration{
	{
		name: "create messages table",
		sql: `
			CREATE TABLE IF NOT EXISTS messages (
				seq INTEGER PRIMARY KEY AUTOINCREMENT,
				id TEXT UNIQUE NOT NULL,
				me BOOLEAN NOT NULL DEFAULT 0,
				author TEXT NOT NULL DEFAULT '',
				body TEXT NOT NULL DEFAULT '',
				created_at INTEGER NOT NULL DEFAULT 0
			)
		`,
	},
	{
		name: "add media and reply columns",
		sql: `
			ALTER TABLE messages ADD COLUMN media TEXT NOT NULL DEFAULT '';
			ALTER TABLE messages ADD COLUMN replied_to TEXT NOT NULL DEFAULT '';
		`,
	},
	{
		name: "index messages by time",
		sql: `
			CREATE INDEX IF NOT EXISTS idx_messages_created ON messages(created_at, seq);
		`,
	},
}
