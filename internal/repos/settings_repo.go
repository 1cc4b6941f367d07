package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const KeyTaxRate = "tax_rate"

type SettingsRepo struct{ db *sqlx.DB }

func NewSettingsRepo(db *sqlx.DB) *SettingsRepo { return &SettingsRepo{db: db} }

// Get returns the stored value and whether the key exists.
func (r *SettingsRepo) Get(key string) (string, bool, error) {
	var v sql.NullString
	err := r.db.Get(&v, `SELECT value FROM settings WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v.String, true, nil
}

// Set creates or replaces the value for key.
func (r *SettingsRepo) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO settings(key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
