package store

import (
	"context"
	"sync"
	"time"

	"rightsguard-backend/models"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory ContentStore used for development and testing.
// Reads return copies so callers cannot mutate the backing records.
type MemoryStore struct {
	mu      sync.RWMutex
	cards   []models.RightsCard
	orgs    []models.LegalAidOrg
	scripts []models.Script
}

// NewMemoryStore creates a memory store over the given records.
func NewMemoryStore(cards []models.RightsCard, orgs []models.LegalAidOrg, scripts []models.Script) *MemoryStore {
	return &MemoryStore{
		cards:   cards,
		orgs:    orgs,
		scripts: scripts,
	}
}

// GetCardByID returns the card for id, or ErrNotFound.
func (s *MemoryStore) GetCardByID(ctx context.Context, id string) (*models.RightsCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, card := range s.cards {
		if card.CardID == id {
			c := card
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// ListCards returns all cards in insertion order.
func (s *MemoryStore) ListCards(ctx context.Context) ([]models.RightsCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]models.RightsCard, len(s.cards))
	copy(cards, s.cards)
	return cards, nil
}

// ListOrgs returns all legal-aid organizations in insertion order.
func (s *MemoryStore) ListOrgs(ctx context.Context) ([]models.LegalAidOrg, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orgs := make([]models.LegalAidOrg, len(s.orgs))
	copy(orgs, s.orgs)
	return orgs, nil
}

// ListScriptsByCard returns the scripts for a card, newest first.
func (s *MemoryStore) ListScriptsByCard(ctx context.Context, cardID string) ([]models.Script, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var scripts []models.Script
	for _, script := range s.scripts {
		if script.CardID == cardID {
			scripts = append(scripts, script)
		}
	}
	// Insertion order is oldest-first; reverse for newest-first.
	for i, j := 0, len(scripts)-1; i < j; i, j = i+1, j-1 {
		scripts[i], scripts[j] = scripts[j], scripts[i]
	}
	return scripts, nil
}

// CreateScript appends a script, assigning an ID and timestamp if unset.
func (s *MemoryStore) CreateScript(ctx context.Context, script *models.Script) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if script.ScriptID == "" {
		script.ScriptID = uuid.NewString()
	}
	if script.CreatedAt.IsZero() {
		script.CreatedAt = time.Now().UTC()
	}
	s.scripts = append(s.scripts, *script)
	return nil
}
