package models

import "time"

// RightsCard represents one piece of jurisdiction/scenario-specific guidance.
// Cards are authored externally and read-only from this service's perspective.
type RightsCard struct {
	CardID               string    `json:"cardId"`
	Title                string    `json:"title"`
	Scenario             string    `json:"scenario"`
	Jurisdiction         string    `json:"jurisdiction"`
	Language             string    `json:"language"`
	Content              string    `json:"content"`
	PDFURL               string    `json:"pdfUrl,omitempty"`
	ShareableLink        string    `json:"shareableLink,omitempty"`
	OfflineAccessEnabled bool      `json:"offlineAccessEnabled"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
