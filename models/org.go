package models

// JurisdictionFederal marks an organization with national scope. Orgs with
// this jurisdiction are included in every jurisdiction-filtered result set.
const JurisdictionFederal = "Federal (US)"

// LegalAidOrg is a legal-aid provider directory entry.
type LegalAidOrg struct {
	OrgID        string `json:"orgId"`
	Name         string `json:"name"`
	ContactInfo  string `json:"contactInfo"`
	Jurisdiction string `json:"jurisdiction"`
	Website      string `json:"website,omitempty"`
}
