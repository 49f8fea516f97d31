package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/erasmus-survival/erasmusbot/internal/repository"
)

type stateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a StateRepository backed by the app_state
// table. Each key holds one JSONB document.
func NewStateRepository(db *sql.DB) repository.StateRepository {
	return &stateRepository{db: db}
}

func (r *stateRepository) Load(ctx context.Context, key string) (json.RawMessage, error) {
	query := `SELECT value FROM app_state WHERE key = $1`

	var value []byte
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load state %q: %w", key, err)
	}

	return json.RawMessage(value), nil
}

func (r *stateRepository) Save(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := r.db.ExecContext(ctx, query, key, []byte(value), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save state %q: %w", key, err)
	}

	return nil
}
