package repository

import (
	"context"

	"rightsguard-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ScriptRepository handles database operations for generated scripts
type ScriptRepository struct {
	db *pgxpool.Pool
}

// NewScriptRepository creates a new script repository
func NewScriptRepository(db *pgxpool.Pool) *ScriptRepository {
	return &ScriptRepository{db: db}
}

// ListByCardID retrieves all scripts for a card, newest first
func (r *ScriptRepository) ListByCardID(ctx context.Context, cardID string) ([]models.Script, error) {
	query := `
		SELECT id::text, card_id::text, scenario, type, content, created_at
		FROM scripts
		WHERE card_id::text = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scripts []models.Script
	for rows.Next() {
		script := models.Script{}
		err := rows.Scan(
			&script.ScriptID,
			&script.CardID,
			&script.Scenario,
			&script.Type,
			&script.Content,
			&script.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}

	return scripts, rows.Err()
}

// Create inserts a generated script
func (r *ScriptRepository) Create(ctx context.Context, script *models.Script) error {
	query := `
		INSERT INTO scripts (card_id, scenario, type, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at`

	return r.db.QueryRow(
		ctx, query,
		script.CardID,
		script.Scenario,
		script.Type,
		script.Content,
	).Scan(&script.ScriptID, &script.CreatedAt)
}
