package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens (or creates) the SQLite file at dsn and makes sure the
// tables exist. The pool holds a single connection: the tool has one user
// and ":memory:" databases are per connection.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Products; AUTOINCREMENT keeps ids of deleted rows from coming back
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  type TEXT NOT NULL DEFAULT '',
  brand TEXT NOT NULL DEFAULT '',
  size TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT '',
  condition TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  purchase_price REAL NOT NULL,
  purchase_date TEXT NOT NULL DEFAULT '', -- YYYY-MM-DD
  estimated_value REAL NOT NULL,
  sale_price REAL,
  sale_date TEXT                          -- YYYY-MM-DD
);
CREATE INDEX IF NOT EXISTS idx_products_sale_date ON products(sale_date);

-- Settings (tax_rate)
CREATE TABLE IF NOT EXISTS settings(
  key TEXT PRIMARY KEY,
  value TEXT
);
`
	_, err := db.Exec(schema)
	return err
}
