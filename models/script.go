package models

import "time"

// ScriptType selects one of the three guidance formats.
type ScriptType string

const (
	ScriptTypeCommunication ScriptType = "communication"
	ScriptTypeChecklist     ScriptType = "checklist"
	ScriptTypeTemplate      ScriptType = "template"
)

// NormalizeScriptType maps a raw type string onto one of the three defined
// variants. Unknown or absent values route to the template branch so that
// every request resolves to a concrete format.
func NormalizeScriptType(raw string) ScriptType {
	switch ScriptType(raw) {
	case ScriptTypeCommunication:
		return ScriptTypeCommunication
	case ScriptTypeChecklist:
		return ScriptTypeChecklist
	default:
		return ScriptTypeTemplate
	}
}

// Script is a persisted guidance artifact produced for a rights card.
// CardID is a non-owning association to the card the script was generated for.
type Script struct {
	ScriptID  string     `json:"scriptId"`
	CardID    string     `json:"cardId"`
	Scenario  string     `json:"scenario"`
	Type      ScriptType `json:"type"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
}
