package store

import (
	"fmt"
	"os"
	"time"

	"rightsguard-backend/models"
)

// shareableLink builds the public link for a card from BASE_URL.
func shareableLink(cardID string) string {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "https://rightsguard.app"
	}
	return fmt.Sprintf("%s/card/%s", baseURL, cardID)
}

func day(date string) time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return t
}

// SeedCards returns the built-in rights card set used by the memory store
// and by cmd/seed-content.
func SeedCards() []models.RightsCard {
	return []models.RightsCard{
		{
			CardID:       "1",
			Title:        "Traffic Stop Rights",
			Scenario:     "Traffic Stop",
			Jurisdiction: models.JurisdictionFederal,
			Language:     "English",
			Content: `<h3>Your Rights During a Traffic Stop</h3>
<h4>What You Should Do:</h4>
<ul>
<li>Pull over safely and turn off your engine</li>
<li>Keep your hands visible on the steering wheel</li>
<li>Remain calm and polite</li>
<li>Provide license, registration, and insurance when asked</li>
</ul>
<h4>What You Can Say:</h4>
<ul>
<li>"I am exercising my right to remain silent"</li>
<li>"I do not consent to any searches"</li>
<li>"Am I free to go?"</li>
<li>"I would like to speak with an attorney"</li>
</ul>
<h4>Important Rights:</h4>
<ul>
<li>You have the right to remain silent</li>
<li>You can refuse consent to search your vehicle</li>
<li>You have the right to record the interaction</li>
</ul>
<p><strong>Remember:</strong> This information is for educational purposes only. Always consult with a qualified attorney for legal advice specific to your situation.</p>`,
			PDFURL:               "/pdfs/traffic-stop-rights.pdf",
			ShareableLink:        shareableLink("1"),
			OfflineAccessEnabled: true,
			CreatedAt:            day("2024-01-15"),
			UpdatedAt:            day("2024-01-15"),
		},
		{
			CardID:       "2",
			Title:        "Workplace Discrimination Rights",
			Scenario:     "Workplace Discrimination",
			Jurisdiction: models.JurisdictionFederal,
			Language:     "English",
			Content: `<h3>Your Rights Against Workplace Discrimination</h3>
<h4>Protected Characteristics:</h4>
<ul>
<li>Race, color, religion, sex, national origin</li>
<li>Age (40 years or older)</li>
<li>Disability</li>
<li>Pregnancy</li>
</ul>
<h4>Steps to Take:</h4>
<ul>
<li>Document all incidents with dates, times, and witnesses</li>
<li>Report to HR or management in writing</li>
<li>File a complaint with the EEOC within 180-300 days</li>
<li>Consider consulting with an employment attorney</li>
</ul>
<p><strong>Important:</strong> You are protected from retaliation for filing discrimination complaints. Contact the EEOC at 1-800-669-4000 or visit eeoc.gov.</p>`,
			PDFURL:               "/pdfs/workplace-discrimination-rights.pdf",
			ShareableLink:        shareableLink("2"),
			OfflineAccessEnabled: true,
			CreatedAt:            day("2024-01-16"),
			UpdatedAt:            day("2024-01-16"),
		},
		{
			CardID:       "3",
			Title:        "Eviction Notice Rights",
			Scenario:     "Eviction Notice",
			Jurisdiction: "California",
			Language:     "English",
			Content: `<h3>Your Rights When Facing Eviction in California</h3>
<h4>Types of Eviction Notices:</h4>
<ul>
<li>3-Day Notice to Pay Rent or Quit</li>
<li>3-Day Notice to Cure or Quit (lease violations)</li>
<li>30-Day Notice to Quit (month-to-month tenancy)</li>
<li>60-Day Notice to Quit (tenancy over 1 year)</li>
</ul>
<h4>Your Rights:</h4>
<ul>
<li>Right to receive proper written notice</li>
<li>Right to contest the eviction in court</li>
<li>Right to legal representation</li>
</ul>
<p><strong>Emergency Help:</strong> Contact your local legal aid society or tenant rights organization immediately. In California, call 1-800-TENANTS for assistance.</p>`,
			PDFURL:               "/pdfs/eviction-rights-california.pdf",
			ShareableLink:        shareableLink("3"),
			OfflineAccessEnabled: true,
			CreatedAt:            day("2024-01-17"),
			UpdatedAt:            day("2024-01-17"),
		},
		{
			CardID:       "4",
			Title:        "Debt Collection Rights",
			Scenario:     "Debt Collection",
			Jurisdiction: models.JurisdictionFederal,
			Language:     "English",
			Content: `<h3>Your Rights Under the Fair Debt Collection Practices Act</h3>
<h4>Debt Collectors Cannot:</h4>
<ul>
<li>Call before 8 AM or after 9 PM</li>
<li>Harass, threaten, or abuse you</li>
<li>Use false or misleading statements</li>
<li>Contact third parties about your debt</li>
</ul>
<h4>What to Do:</h4>
<ul>
<li>Request debt validation in writing within 30 days</li>
<li>Keep records of all communications</li>
<li>Report violations to the CFPB</li>
</ul>
<p><strong>Get Help:</strong> File complaints with the Consumer Financial Protection Bureau at consumerfinance.gov or call 1-855-411-2372.</p>`,
			PDFURL:               "/pdfs/debt-collection-rights.pdf",
			ShareableLink:        shareableLink("4"),
			OfflineAccessEnabled: true,
			CreatedAt:            day("2024-01-18"),
			UpdatedAt:            day("2024-01-18"),
		},
		{
			CardID:       "5",
			Title:        "ICE Encounter Rights",
			Scenario:     "ICE Encounters",
			Jurisdiction: models.JurisdictionFederal,
			Language:     "English",
			Content: `<h3>Your Rights During ICE Encounters</h3>
<h4>Your Constitutional Rights:</h4>
<ul>
<li>Right to remain silent</li>
<li>Right to refuse to answer questions about immigration status</li>
<li>Right to refuse consent to search</li>
<li>Right to an interpreter</li>
</ul>
<h4>Important Actions:</h4>
<ul>
<li>Stay calm and don't run</li>
<li>Keep your hands visible</li>
<li>Don't sign anything without an attorney</li>
<li>Contact an immigration attorney immediately</li>
</ul>
<p><strong>Emergency:</strong> Contact the National Immigration Law Center at 213-639-3900 or your local immigration attorney immediately.</p>`,
			PDFURL:               "/pdfs/ice-encounter-rights.pdf",
			ShareableLink:        shareableLink("5"),
			OfflineAccessEnabled: true,
			CreatedAt:            day("2024-01-19"),
			UpdatedAt:            day("2024-01-19"),
		},
	}
}

// SeedOrgs returns the built-in legal-aid directory.
func SeedOrgs() []models.LegalAidOrg {
	return []models.LegalAidOrg{
		{
			OrgID:        "1",
			Name:         "Legal Aid Society",
			ContactInfo:  "1-800-LEGAL-AID (1-800-534-2524), 199 Water St, New York, NY 10038",
			Jurisdiction: models.JurisdictionFederal,
			Website:      "https://www.legalaid.org",
		},
		{
			OrgID:        "2",
			Name:         "American Civil Liberties Union (ACLU)",
			ContactInfo:  "212-549-2500, 125 Broad St, New York, NY 10004",
			Jurisdiction: models.JurisdictionFederal,
			Website:      "https://www.aclu.org",
		},
		{
			OrgID:        "3",
			Name:         "National Employment Law Project",
			ContactInfo:  "212-285-3025, 90 Broad St, Suite 1100, New York, NY 10004",
			Jurisdiction: models.JurisdictionFederal,
			Website:      "https://www.nelp.org",
		},
		{
			OrgID:        "4",
			Name:         "California Rural Legal Assistance",
			ContactInfo:  "1-800-337-0690, 631 Howard St, Suite 300, San Francisco, CA 94105",
			Jurisdiction: "California",
			Website:      "https://www.crla.org",
		},
		{
			OrgID:        "5",
			Name:         "Tenants Together",
			ContactInfo:  "415-495-8100, 474 Valencia St, Suite 230, San Francisco, CA 94103",
			Jurisdiction: "California",
			Website:      "https://www.tenantstogether.org",
		},
		{
			OrgID:        "6",
			Name:         "New York Legal Assistance Group",
			ContactInfo:  "212-613-5000, 7 Hanover Square, 18th Floor, New York, NY 10004",
			Jurisdiction: "New York",
			Website:      "https://www.nylag.org",
		},
		{
			OrgID:        "7",
			Name:         "Texas RioGrande Legal Aid",
			ContactInfo:  "1-888-988-9996, 4920 N IH-35, Austin, TX 78751",
			Jurisdiction: "Texas",
			Website:      "https://www.trla.org",
		},
		{
			OrgID:        "8",
			Name:         "National Immigration Law Center",
			ContactInfo:  "213-639-3900, 3435 Wilshire Blvd, Suite 108-62, Los Angeles, CA 90010",
			Jurisdiction: models.JurisdictionFederal,
			Website:      "https://www.nilc.org",
		},
		{
			OrgID:        "9",
			Name:         "Consumer Financial Protection Bureau",
			ContactInfo:  "1-855-411-2372, 1700 G Street NW, Washington, DC 20552",
			Jurisdiction: models.JurisdictionFederal,
			Website:      "https://www.consumerfinance.gov",
		},
		{
			OrgID:        "10",
			Name:         "Equal Employment Opportunity Commission",
			ContactInfo:  "1-800-669-4000, 131 M Street, NE, Washington, DC 20507",
			Jurisdiction: models.JurisdictionFederal,
			Website:      "https://www.eeoc.gov",
		},
	}
}

// SeedScripts returns example generated scripts associated with the seed cards.
func SeedScripts() []models.Script {
	return []models.Script{
		{
			ScriptID: "1",
			CardID:   "1",
			Scenario: "Traffic Stop",
			Type:     models.ScriptTypeCommunication,
			Content: `**Traffic Stop Communication Script**

**When pulled over:**
"Good [morning/afternoon/evening], officer."

**If asked questions beyond identification:**
"Officer, I'm exercising my right to remain silent. I don't wish to answer any questions."

**If asked to search your vehicle:**
"Officer, I do not consent to any searches of my vehicle or person."

**If you want to leave:**
"Officer, am I free to go?"

**If arrested:**
"I'm invoking my right to remain silent and I want to speak with an attorney."

**Remember:**
- Stay calm and polite
- Keep your hands visible
- Don't argue or resist`,
			CreatedAt: day("2024-01-15"),
		},
		{
			ScriptID: "2",
			CardID:   "2",
			Scenario: "Workplace Discrimination",
			Type:     models.ScriptTypeTemplate,
			Content: `**Workplace Discrimination Complaint Template**

Date: [DATE]

To: [HR MANAGER/SUPERVISOR NAME]
[COMPANY NAME]

Subject: Formal Complaint of Workplace Discrimination

Dear [NAME],

I am writing to formally report incidents of discrimination that I have experienced in the workplace based on my [PROTECTED CHARACTERISTIC].

**Incident Details:**
Date: [DATE OF INCIDENT]
Location: [LOCATION]
Witnesses: [NAMES OF WITNESSES]

Description of Incident:
[DETAILED DESCRIPTION OF WHAT HAPPENED]

I request that this matter be investigated promptly and that appropriate corrective action be taken. I also request protection from any retaliation for filing this complaint.

Sincerely,
[YOUR NAME]
[YOUR POSITION]`,
			CreatedAt: day("2024-01-16"),
		},
	}
}
