package repository

import (
	"context"

	"rightsguard-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrgRepository handles database operations for legal-aid organizations
type OrgRepository struct {
	db *pgxpool.Pool
}

// NewOrgRepository creates a new organization repository
func NewOrgRepository(db *pgxpool.Pool) *OrgRepository {
	return &OrgRepository{db: db}
}

// List retrieves all legal-aid organizations ordered by name
func (r *OrgRepository) List(ctx context.Context) ([]models.LegalAidOrg, error) {
	query := `
		SELECT id::text, name, contact_info, jurisdiction, COALESCE(website, '')
		FROM legal_aid_orgs
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []models.LegalAidOrg
	for rows.Next() {
		org := models.LegalAidOrg{}
		err := rows.Scan(
			&org.OrgID,
			&org.Name,
			&org.ContactInfo,
			&org.Jurisdiction,
			&org.Website,
		)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}

	return orgs, rows.Err()
}

// Create inserts a legal-aid organization. Used by the content seeding tool.
func (r *OrgRepository) Create(ctx context.Context, org *models.LegalAidOrg) error {
	query := `
		INSERT INTO legal_aid_orgs (name, contact_info, jurisdiction, website)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text`

	return r.db.QueryRow(
		ctx, query,
		org.Name,
		org.ContactInfo,
		org.Jurisdiction,
		org.Website,
	).Scan(&org.OrgID)
}
