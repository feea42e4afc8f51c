package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rightsguard-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator implements ai.Generator with a fixed outcome.
type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt, systemInstruction string, maxTokens int32, temperature float32) (string, error) {
	return s.response, s.err
}

func newScriptRouter(opts ...service.ScriptServiceOption) *gin.Engine {
	scriptService := service.NewScriptService(opts...)
	scriptHandler := NewScriptHandler(scriptService)

	r := gin.New()
	r.POST("/api/generate-script", scriptHandler.GenerateScript)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, payload string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGenerateScriptEndpoint(t *testing.T) {
	r := newScriptRouter(service.WithGenerator(&stubGenerator{response: "Stay calm and ask for counsel."}))

	w, body := postJSON(t, r, "/api/generate-script",
		`{"scenario":"Traffic Stop","jurisdiction":"Federal (US)","type":"communication"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `"Stay calm and ask for counsel."`, string(body["script"]))
}

func TestGenerateScriptEndpointFallback(t *testing.T) {
	r := newScriptRouter()

	w, body := postJSON(t, r, "/api/generate-script",
		`{"scenario":"Eviction Notice","jurisdiction":"California","type":"checklist"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var script string
	require.NoError(t, json.Unmarshal(body["script"], &script))
	assert.Contains(t, script, "**Action Checklist**")
	assert.Contains(t, script, "Eviction Notice")
}

func TestGenerateScriptEndpointMissingScenario(t *testing.T) {
	r := newScriptRouter()

	w, body := postJSON(t, r, "/api/generate-script", `{"jurisdiction":"California"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `"Scenario is required"`, string(body["error"]))
}

func TestGenerateScriptEndpointMalformedBody(t *testing.T) {
	r := newScriptRouter()

	w, body := postJSON(t, r, "/api/generate-script", `{"scenario": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `"Invalid request body"`, string(body["error"]))
}

func TestGenerateScriptEndpointBackendFailure(t *testing.T) {
	r := newScriptRouter(service.WithGenerator(&stubGenerator{err: errors.New("quota exceeded")}))

	w, body := postJSON(t, r, "/api/generate-script", `{"scenario":"Traffic Stop"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The caller sees a generic message, not backend detail.
	assert.JSONEq(t, `"Failed to generate script"`, string(body["error"]))
}
