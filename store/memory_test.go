package store

import (
	"context"
	"testing"

	"rightsguard-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore() *MemoryStore {
	return NewMemoryStore(SeedCards(), SeedOrgs(), SeedScripts())
}

func TestGetCardByID(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	card, err := s.GetCardByID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, card)

	// Every stored field survives retrieval unchanged.
	want := SeedCards()[0]
	assert.Equal(t, want, *card)
}

func TestGetCardByIDNotFound(t *testing.T) {
	s := newSeededStore()

	card, err := s.GetCardByID(context.Background(), "does-not-exist")
	assert.Nil(t, card)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCardByIDReturnsCopy(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	card, err := s.GetCardByID(ctx, "1")
	require.NoError(t, err)

	card.Title = "mutated"

	again, err := s.GetCardByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Traffic Stop Rights", again.Title)
}

func TestListCardsOrder(t *testing.T) {
	s := newSeededStore()

	cards, err := s.ListCards(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 5)

	ids := make([]string, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.CardID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
}

func TestListOrgs(t *testing.T) {
	s := newSeededStore()

	orgs, err := s.ListOrgs(context.Background())
	require.NoError(t, err)
	assert.Len(t, orgs, 10)
}

func TestListScriptsByCardNewestFirst(t *testing.T) {
	s := newSeededStore()
	ctx := context.Background()

	older := &models.Script{
		CardID:    "1",
		Scenario:  "Traffic Stop",
		Type:      models.ScriptTypeChecklist,
		Content:   "first",
		CreatedAt: day("2024-02-01"),
	}
	newer := &models.Script{
		CardID:    "1",
		Scenario:  "Traffic Stop",
		Type:      models.ScriptTypeChecklist,
		Content:   "second",
		CreatedAt: day("2024-02-02"),
	}
	require.NoError(t, s.CreateScript(ctx, older))
	require.NoError(t, s.CreateScript(ctx, newer))

	scripts, err := s.ListScriptsByCard(ctx, "1")
	require.NoError(t, err)
	require.Len(t, scripts, 3)
	assert.Equal(t, "second", scripts[0].Content)
	assert.Equal(t, "first", scripts[1].Content)
}

func TestListScriptsByCardNoMatches(t *testing.T) {
	s := newSeededStore()

	scripts, err := s.ListScriptsByCard(context.Background(), "5")
	require.NoError(t, err)
	assert.Empty(t, scripts)
}

func TestCreateScriptAssignsIDAndTimestamp(t *testing.T) {
	s := newSeededStore()

	script := &models.Script{
		CardID:   "3",
		Scenario: "Eviction Notice",
		Type:     models.ScriptTypeTemplate,
		Content:  "body",
	}
	require.NoError(t, s.CreateScript(context.Background(), script))

	assert.NotEmpty(t, script.ScriptID)
	assert.False(t, script.CreatedAt.IsZero())
}
