package repository

import (
	"context"

	"rightsguard-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CardRepository handles database operations for rights cards
type CardRepository struct {
	db *pgxpool.Pool
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{db: db}
}

// GetByID retrieves a rights card by ID
func (r *CardRepository) GetByID(ctx context.Context, id string) (*models.RightsCard, error) {
	card := &models.RightsCard{}
	query := `
		SELECT id::text, title, scenario, jurisdiction, language, content,
			COALESCE(pdf_url, ''), COALESCE(shareable_link, ''),
			offline_access_enabled, created_at, updated_at
		FROM rights_cards
		WHERE id::text = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&card.CardID,
		&card.Title,
		&card.Scenario,
		&card.Jurisdiction,
		&card.Language,
		&card.Content,
		&card.PDFURL,
		&card.ShareableLink,
		&card.OfflineAccessEnabled,
		&card.CreatedAt,
		&card.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return card, nil
}

// List retrieves all rights cards in creation order
func (r *CardRepository) List(ctx context.Context) ([]models.RightsCard, error) {
	query := `
		SELECT id::text, title, scenario, jurisdiction, language, content,
			COALESCE(pdf_url, ''), COALESCE(shareable_link, ''),
			offline_access_enabled, created_at, updated_at
		FROM rights_cards
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []models.RightsCard
	for rows.Next() {
		card := models.RightsCard{}
		err := rows.Scan(
			&card.CardID,
			&card.Title,
			&card.Scenario,
			&card.Jurisdiction,
			&card.Language,
			&card.Content,
			&card.PDFURL,
			&card.ShareableLink,
			&card.OfflineAccessEnabled,
			&card.CreatedAt,
			&card.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

// Create inserts a rights card. Used by the content seeding tool.
func (r *CardRepository) Create(ctx context.Context, card *models.RightsCard) error {
	query := `
		INSERT INTO rights_cards (
			title, scenario, jurisdiction, language, content,
			pdf_url, shareable_link, offline_access_enabled,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id::text`

	return r.db.QueryRow(
		ctx, query,
		card.Title,
		card.Scenario,
		card.Jurisdiction,
		card.Language,
		card.Content,
		card.PDFURL,
		card.ShareableLink,
		card.OfflineAccessEnabled,
		card.CreatedAt,
		card.UpdatedAt,
	).Scan(&card.CardID)
}
