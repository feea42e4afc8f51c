package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rightsguard-backend/ai"
	"rightsguard-backend/models"
	"rightsguard-backend/store"
)

var (
	// ErrInvalidRequest indicates the caller's input failed a precondition.
	ErrInvalidRequest = errors.New("invalid script request")

	// ErrGenerationFailed indicates the configured generative backend call
	// errored or timed out. A configured-but-failing backend is reported,
	// never silently masked by the fallback templates.
	ErrGenerationFailed = errors.New("failed to generate script")
)

const (
	maxOutputTokens   = 1024
	samplingTemp      = 0.7
	generationTimeout = 60 * time.Second

	unableSentinel = "Unable to generate a script at this time."

	systemInstruction = "You are a legal rights assistant. Provide clear, accurate, and actionable legal guidance. " +
		"Always include disclaimers about consulting with qualified attorneys. " +
		"Focus on empowering users with knowledge while emphasizing the importance of professional legal advice."

	disclaimer = "**Disclaimer:** This is for educational purposes only and does not constitute legal advice. " +
		"Always consult with a qualified attorney for advice specific to your situation."
)

// ScriptRequest describes one guidance synthesis request. Scenario is
// required; everything else is optional context.
type ScriptRequest struct {
	Scenario     string
	Jurisdiction string
	Language     string
	Type         string
	Context      string
	CardID       string
}

// ScriptService synthesizes natural-language guidance documents. With a
// generator configured it runs in generated mode; without one it produces a
// deterministic templated fallback. The mode is decided per request.
type ScriptService struct {
	generator ai.Generator
	store     store.ContentStore
}

// ScriptServiceOption is a functional option for ScriptService
type ScriptServiceOption func(*ScriptService)

// WithGenerator sets the generative backend. A nil generator selects
// fallback mode.
func WithGenerator(g ai.Generator) ScriptServiceOption {
	return func(s *ScriptService) {
		s.generator = g
	}
}

// WithScriptStore sets the store used to persist generated scripts.
func WithScriptStore(cs store.ContentStore) ScriptServiceOption {
	return func(s *ScriptService) {
		s.store = cs
	}
}

// NewScriptService creates a new script service
func NewScriptService(opts ...ScriptServiceOption) *ScriptService {
	s := &ScriptService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateScript produces a guidance document for the request. The result is
// always a whole document; output is never streamed or partial. Wording may
// vary between calls in generated mode.
func (s *ScriptService) GenerateScript(ctx context.Context, req ScriptRequest) (string, error) {
	if strings.TrimSpace(req.Scenario) == "" {
		return "", fmt.Errorf("%w: scenario is required", ErrInvalidRequest)
	}

	scriptType := models.NormalizeScriptType(req.Type)

	var content string
	if s.generator == nil {
		content = fallbackScript(scriptType, req)
	} else {
		genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
		defer cancel()

		text, err := s.generator.Generate(genCtx, buildPrompt(scriptType, req), systemInstruction, maxOutputTokens, samplingTemp)
		if err != nil {
			log.Printf("Script generation failed for scenario %q (type %s): %v", req.Scenario, scriptType, err)
			return "", ErrGenerationFailed
		}
		content = text
		if strings.TrimSpace(content) == "" {
			content = unableSentinel
		}
	}

	s.persistScript(ctx, req, scriptType, content)
	return content, nil
}

// persistScript stores the script when the request names an owning card. The
// caller already has the text, so a storage failure is logged, not surfaced.
func (s *ScriptService) persistScript(ctx context.Context, req ScriptRequest, scriptType models.ScriptType, content string) {
	if req.CardID == "" || s.store == nil {
		return
	}

	script := &models.Script{
		CardID:   req.CardID,
		Scenario: req.Scenario,
		Type:     scriptType,
		Content:  content,
	}
	if err := s.store.CreateScript(ctx, script); err != nil {
		log.Printf("Warning: failed to persist script for card %s: %v", req.CardID, err)
	}
}

// buildPrompt constructs the prompt body for the selected script type.
func buildPrompt(scriptType models.ScriptType, req ScriptRequest) string {
	extraContext := req.Context
	if extraContext == "" {
		extraContext = "None provided"
	}

	switch scriptType {
	case models.ScriptTypeCommunication:
		return fmt.Sprintf(`Generate a clear, professional communication script for someone facing: %s

Jurisdiction: %s
Language: %s
Additional context: %s

The script should:
- Be respectful but assertive
- Include specific phrases to assert legal rights
- Provide clear, actionable language
- Be appropriate for the jurisdiction
- Include what NOT to say
- Be concise and memorable

Format as a practical script with clear sections.`,
			req.Scenario, req.Jurisdiction, req.Language, extraContext)

	case models.ScriptTypeChecklist:
		return fmt.Sprintf(`Create a step-by-step action checklist for someone dealing with: %s

Jurisdiction: %s
Language: %s
Additional context: %s

The checklist should:
- Be chronologically ordered
- Include immediate actions to take
- Specify what documents to gather
- Include who to contact
- Mention deadlines or time-sensitive actions
- Be specific to the jurisdiction

Format as a numbered checklist with clear action items.`,
			req.Scenario, req.Jurisdiction, req.Language, extraContext)

	default:
		return fmt.Sprintf(`Create a document template for someone dealing with: %s

Jurisdiction: %s
Language: %s
Additional context: %s

The template should:
- Include proper legal formatting
- Have clear placeholders for personal information
- Include relevant legal language
- Be appropriate for the jurisdiction
- Include instructions for completion

Format as a fillable template with [PLACEHOLDER] markers.`,
			req.Scenario, req.Jurisdiction, req.Language, extraContext)
	}
}

// fallbackScript produces the deterministic offline template for the
// selected script type. It interpolates the request fields and cannot fail.
func fallbackScript(scriptType models.ScriptType, req ScriptRequest) string {
	var builder strings.Builder

	switch scriptType {
	case models.ScriptTypeCommunication:
		builder.WriteString("**Communication Script**\n\n")
	case models.ScriptTypeChecklist:
		builder.WriteString("**Action Checklist**\n\n")
	default:
		builder.WriteString("**Document Template**\n\n")
	}

	fmt.Fprintf(&builder, "**Scenario:** %s\n", req.Scenario)
	fmt.Fprintf(&builder, "**Jurisdiction:** %s\n", req.Jurisdiction)
	fmt.Fprintf(&builder, "**Language:** %s\n\n", req.Language)

	switch scriptType {
	case models.ScriptTypeCommunication:
		builder.WriteString(`**What to Say:**
- "I am exercising my right to remain silent."
- "I do not consent to any searches."
- "Am I free to go?"
- "I would like to speak with an attorney."

**What NOT to Say:**
- Do not volunteer information
- Do not argue or resist
- Do not lie or provide false information

**Remember:** Stay calm, be respectful, and document everything.
`)
	case models.ScriptTypeChecklist:
		builder.WriteString(`**Immediate Actions:**
1. Document the incident with date, time, and location
2. Gather any witnesses and their contact information
3. Take photos or videos if safe to do so
4. Keep all relevant documents and communications
5. Contact appropriate authorities or organizations
6. Seek legal advice within applicable time limits

**Important:** Time limits may apply. Consult with an attorney promptly.
`)
	default:
		builder.WriteString(`**[DOCUMENT TITLE]**

Date: [DATE]
To: [RECIPIENT NAME]
From: [YOUR NAME]
Re: [SUBJECT MATTER]

[MAIN CONTENT - Replace with your specific situation details]

[YOUR SIGNATURE]
[YOUR PRINTED NAME]
[DATE]

**Instructions:** Fill in all [PLACEHOLDER] fields with your specific information.
`)
	}

	builder.WriteString("\n")
	builder.WriteString(disclaimer)
	return builder.String()
}
