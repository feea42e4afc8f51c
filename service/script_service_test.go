package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rightsguard-backend/models"
	"rightsguard-backend/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator returns a canned response or error and records the last call.
type fakeGenerator struct {
	response   string
	err        error
	lastPrompt string
	lastSystem string
	calls      int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, systemInstruction string, maxTokens int32, temperature float32) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastSystem = systemInstruction
	return f.response, f.err
}

func TestGenerateScriptRequiresScenario(t *testing.T) {
	for _, scenario := range []string{"", "   ", "\t\n"} {
		svc := NewScriptService(WithGenerator(&fakeGenerator{response: "ok"}))

		content, err := svc.GenerateScript(context.Background(), ScriptRequest{Scenario: scenario})
		assert.Empty(t, content)
		assert.ErrorIs(t, err, ErrInvalidRequest, "scenario %q", scenario)
	}
}

func TestGenerateScriptRequiresScenarioInFallbackMode(t *testing.T) {
	// Validation applies before mode selection.
	svc := NewScriptService()

	content, err := svc.GenerateScript(context.Background(), ScriptRequest{})
	assert.Empty(t, content)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestGenerateScriptGeneratedMode(t *testing.T) {
	gen := &fakeGenerator{response: "Here is your script."}
	svc := NewScriptService(WithGenerator(gen))

	content, err := svc.GenerateScript(context.Background(), ScriptRequest{
		Scenario:     "Traffic Stop",
		Jurisdiction: "California",
		Language:     "English",
		Type:         "communication",
		Context:      "pulled over at night",
	})
	require.NoError(t, err)
	assert.Equal(t, "Here is your script.", content)
	assert.Equal(t, 1, gen.calls)

	// Request fields flow into the prompt verbatim.
	assert.Contains(t, gen.lastPrompt, "Traffic Stop")
	assert.Contains(t, gen.lastPrompt, "California")
	assert.Contains(t, gen.lastPrompt, "pulled over at night")
	assert.Contains(t, gen.lastSystem, "legal rights assistant")
}

func TestGenerateScriptBackendFailureIsReported(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := NewScriptService(WithGenerator(gen))

	content, err := svc.GenerateScript(context.Background(), ScriptRequest{Scenario: "Traffic Stop"})
	assert.Empty(t, content)
	assert.ErrorIs(t, err, ErrGenerationFailed)

	// The failure must not be masked by the fallback templates.
	assert.NotContains(t, content, "Communication Script")
}

func TestGenerateScriptEmptyBackendResponse(t *testing.T) {
	gen := &fakeGenerator{response: "   \n"}
	svc := NewScriptService(WithGenerator(gen))

	content, err := svc.GenerateScript(context.Background(), ScriptRequest{Scenario: "Traffic Stop"})
	require.NoError(t, err)
	assert.Equal(t, "Unable to generate a script at this time.", content)
}

func TestGenerateScriptFallbackMode(t *testing.T) {
	svc := NewScriptService()

	content, err := svc.GenerateScript(context.Background(), ScriptRequest{
		Scenario:     "Eviction Notice",
		Jurisdiction: "California",
		Language:     "English",
		Type:         "checklist",
	})
	require.NoError(t, err)
	assert.Contains(t, content, "**Action Checklist**")
	assert.Contains(t, content, "**Scenario:** Eviction Notice")
	assert.Contains(t, content, "**Jurisdiction:** California")
	assert.Contains(t, content, "Disclaimer")
}

func TestGenerateScriptFallbackIsDeterministic(t *testing.T) {
	svc := NewScriptService()
	req := ScriptRequest{Scenario: "Debt Collection", Type: "communication"}

	first, err := svc.GenerateScript(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.GenerateScript(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateScriptUnknownTypeUsesTemplate(t *testing.T) {
	svc := NewScriptService()

	content, err := svc.GenerateScript(context.Background(), ScriptRequest{
		Scenario: "Wage Theft",
		Type:     "interpretive-dance",
	})
	require.NoError(t, err)
	assert.Contains(t, content, "**Document Template**")
	assert.Contains(t, content, "[PLACEHOLDER]")
}

func TestGenerateScriptPersistsWhenCardIDSet(t *testing.T) {
	memStore := store.NewMemoryStore(store.SeedCards(), nil, nil)
	svc := NewScriptService(
		WithGenerator(&fakeGenerator{response: "generated body"}),
		WithScriptStore(memStore),
	)

	_, err := svc.GenerateScript(context.Background(), ScriptRequest{
		Scenario: "Traffic Stop",
		Type:     "communication",
		CardID:   "1",
	})
	require.NoError(t, err)

	scripts, err := memStore.ListScriptsByCard(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	assert.Equal(t, "generated body", scripts[0].Content)
	assert.Equal(t, models.ScriptTypeCommunication, scripts[0].Type)
	assert.Equal(t, "Traffic Stop", scripts[0].Scenario)
}

func TestGenerateScriptSkipsPersistenceWithoutCardID(t *testing.T) {
	memStore := store.NewMemoryStore(store.SeedCards(), nil, nil)
	svc := NewScriptService(
		WithGenerator(&fakeGenerator{response: "generated body"}),
		WithScriptStore(memStore),
	)

	_, err := svc.GenerateScript(context.Background(), ScriptRequest{Scenario: "Traffic Stop"})
	require.NoError(t, err)

	for _, card := range store.SeedCards() {
		scripts, err := memStore.ListScriptsByCard(context.Background(), card.CardID)
		require.NoError(t, err)
		assert.Empty(t, scripts)
	}
}

func TestGenerateScriptPersistenceFailureNotSurfaced(t *testing.T) {
	svc := NewScriptService(
		WithGenerator(&fakeGenerator{response: "generated body"}),
		WithScriptStore(&faultStore{err: errors.New("disk full")}),
	)

	content, err := svc.GenerateScript(context.Background(), ScriptRequest{
		Scenario: "Traffic Stop",
		CardID:   "1",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated body", content)
}

func TestBuildPromptSelectsBranchByType(t *testing.T) {
	req := ScriptRequest{Scenario: "Arrest Situation", Jurisdiction: "Texas", Language: "Spanish"}

	communication := buildPrompt(models.ScriptTypeCommunication, req)
	assert.Contains(t, communication, "communication script")
	assert.Contains(t, communication, "what NOT to say")

	checklist := buildPrompt(models.ScriptTypeChecklist, req)
	assert.Contains(t, checklist, "action checklist")
	assert.Contains(t, checklist, "numbered checklist")

	template := buildPrompt(models.ScriptTypeTemplate, req)
	assert.Contains(t, template, "document template")
	assert.Contains(t, template, "[PLACEHOLDER]")

	for _, prompt := range []string{communication, checklist, template} {
		assert.Contains(t, prompt, "Arrest Situation")
		assert.Contains(t, prompt, "Texas")
		assert.Contains(t, prompt, "Spanish")
		assert.Contains(t, prompt, "None provided")
	}
}

func TestFallbackScriptEndsWithDisclaimer(t *testing.T) {
	for _, st := range []models.ScriptType{
		models.ScriptTypeCommunication,
		models.ScriptTypeChecklist,
		models.ScriptTypeTemplate,
	} {
		content := fallbackScript(st, ScriptRequest{Scenario: "Traffic Stop"})
		assert.True(t, strings.HasSuffix(content, disclaimer), "type %s", st)
	}
}
