package store

import (
	"context"
	"errors"

	"rightsguard-backend/models"
	"rightsguard-backend/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore is a ContentStore backed by Postgres repositories.
type PostgresStore struct {
	cards   *repository.CardRepository
	orgs    *repository.OrgRepository
	scripts *repository.ScriptRepository
}

// NewPostgresStore creates a postgres-backed content store over the pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		cards:   repository.NewCardRepository(db),
		orgs:    repository.NewOrgRepository(db),
		scripts: repository.NewScriptRepository(db),
	}
}

// GetCardByID returns the card for id, or ErrNotFound. Driver faults pass
// through unwrapped to keep "missing row" distinct from "store unreachable".
func (s *PostgresStore) GetCardByID(ctx context.Context, id string) (*models.RightsCard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return card, nil
}

// ListCards returns all cards in creation order.
func (s *PostgresStore) ListCards(ctx context.Context) ([]models.RightsCard, error) {
	return s.cards.List(ctx)
}

// ListOrgs returns all legal-aid organizations.
func (s *PostgresStore) ListOrgs(ctx context.Context) ([]models.LegalAidOrg, error) {
	return s.orgs.List(ctx)
}

// ListScriptsByCard returns the scripts for a card, newest first.
func (s *PostgresStore) ListScriptsByCard(ctx context.Context, cardID string) ([]models.Script, error) {
	return s.scripts.ListByCardID(ctx, cardID)
}

// CreateScript persists a generated script.
func (s *PostgresStore) CreateScript(ctx context.Context, script *models.Script) error {
	return s.scripts.Create(ctx, script)
}
