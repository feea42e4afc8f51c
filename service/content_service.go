package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"rightsguard-backend/models"
	"rightsguard-backend/store"
)

// ContentService composes filter and search predicates over the content store.
type ContentService struct {
	store store.ContentStore
}

// ContentServiceOption is a functional option for ContentService
type ContentServiceOption func(*ContentService)

// WithContentStore sets the content store
func WithContentStore(s store.ContentStore) ContentServiceOption {
	return func(svc *ContentService) {
		svc.store = s
	}
}

// NewContentService creates a new content service
func NewContentService(opts ...ContentServiceOption) *ContentService {
	svc := &ContentService{}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// CardQuery holds the optional card filters. Absent fields impose no
// constraint; Limit is the raw query value and is parsed leniently.
type CardQuery struct {
	Scenario     string `json:"scenario,omitempty"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
	Language     string `json:"language,omitempty"`
	Search       string `json:"search,omitempty"`
	Limit        string `json:"limit,omitempty"`
}

// CardQueryResult is the outcome of a card query. Total is the post-filter,
// pre-limit count so consumers can detect truncation.
type CardQueryResult struct {
	Cards   []models.RightsCard
	Total   int
	Filters CardQuery
}

// parseLimit parses a limit value leniently: non-numeric or negative values
// mean "no limit" rather than an error.
func parseLimit(raw string) int {
	if raw == "" {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// matchesSearch reports whether the query appears, case-insensitively, in the
// card's title, scenario or content body.
func matchesSearch(card models.RightsCard, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(card.Title), q) ||
		strings.Contains(strings.ToLower(card.Scenario), q) ||
		strings.Contains(strings.ToLower(card.Content), q)
}

// QueryCards applies the provided facets conjunctively over the store's card
// collection and truncates the result after filtering.
func (s *ContentService) QueryCards(ctx context.Context, query CardQuery) (*CardQueryResult, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}

	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.RightsCard, 0, len(cards))
	for _, card := range cards {
		if query.Search != "" && !matchesSearch(card, query.Search) {
			continue
		}
		if query.Scenario != "" && card.Scenario != query.Scenario {
			continue
		}
		if query.Jurisdiction != "" && card.Jurisdiction != query.Jurisdiction {
			continue
		}
		if query.Language != "" && card.Language != query.Language {
			continue
		}
		filtered = append(filtered, card)
	}

	total := len(filtered)
	if limit := parseLimit(query.Limit); limit >= 0 && limit < len(filtered) {
		filtered = filtered[:limit]
	}

	return &CardQueryResult{
		Cards:   filtered,
		Total:   total,
		Filters: query,
	}, nil
}

// GetCard retrieves a single card by ID. Returns store.ErrNotFound for
// unknown IDs.
func (s *ContentService) GetCard(ctx context.Context, id string) (*models.RightsCard, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}
	return s.store.GetCardByID(ctx, id)
}

// GetCardsByCategory resolves the category through the static taxonomy and
// returns all cards whose scenario belongs to it. Unknown categories yield an
// empty result, not an error.
func (s *ContentService) GetCardsByCategory(ctx context.Context, categoryID models.CategoryID) ([]models.RightsCard, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}

	category, ok := models.CategoryByID(categoryID)
	if !ok {
		return []models.RightsCard{}, nil
	}

	scenarios := make(map[string]struct{}, len(category.Scenarios))
	for _, scenario := range category.Scenarios {
		scenarios[scenario] = struct{}{}
	}

	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.RightsCard, 0)
	for _, card := range cards {
		if _, ok := scenarios[card.Scenario]; ok {
			matched = append(matched, card)
		}
	}
	return matched, nil
}

// GetPopularCards returns the first n cards in store iteration order. There
// is no usage-ranking signal; this ordering is a placeholder contract.
func (s *ContentService) GetPopularCards(ctx context.Context, n int) ([]models.RightsCard, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}

	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	if n >= 0 && n < len(cards) {
		cards = cards[:n]
	}
	return cards, nil
}

// GetRecentCards returns the n cards with the largest CreatedAt, ties broken
// by store iteration order.
func (s *ContentService) GetRecentCards(ctx context.Context, n int) ([]models.RightsCard, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}

	cards, err := s.store.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].CreatedAt.After(cards[j].CreatedAt)
	})
	if n >= 0 && n < len(cards) {
		cards = cards[:n]
	}
	return cards, nil
}

// GetOrgsByJurisdiction returns orgs matching the jurisdiction exactly, plus
// every org with national scope. An empty jurisdiction returns all orgs.
func (s *ContentService) GetOrgsByJurisdiction(ctx context.Context, jurisdiction string) ([]models.LegalAidOrg, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}

	orgs, err := s.store.ListOrgs(ctx)
	if err != nil {
		return nil, err
	}
	if jurisdiction == "" {
		return orgs, nil
	}

	matched := make([]models.LegalAidOrg, 0)
	for _, org := range orgs {
		if org.Jurisdiction == jurisdiction || org.Jurisdiction == models.JurisdictionFederal {
			matched = append(matched, org)
		}
	}
	return matched, nil
}

// GetScriptsByCard returns the persisted scripts for a card. The card must
// exist; unknown IDs surface store.ErrNotFound.
func (s *ContentService) GetScriptsByCard(ctx context.Context, cardID string) ([]models.Script, error) {
	if s.store == nil {
		return nil, errors.New("content store not set")
	}

	if _, err := s.store.GetCardByID(ctx, cardID); err != nil {
		return nil, err
	}
	return s.store.ListScriptsByCard(ctx, cardID)
}
