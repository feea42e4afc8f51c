package models

// CategoryID identifies one of the fixed scenario categories.
type CategoryID string

const (
	CategoryPolice      CategoryID = "police"
	CategoryWorkplace   CategoryID = "workplace"
	CategoryHousing     CategoryID = "housing"
	CategoryConsumer    CategoryID = "consumer"
	CategoryFamily      CategoryID = "family"
	CategoryImmigration CategoryID = "immigration"
)

// ScenarioCategory maps a category to its browsable scenario list. The
// taxonomy is a fixed table; it is not stored on individual cards.
type ScenarioCategory struct {
	ID          CategoryID `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Scenarios   []string   `json:"scenarios"`
}

// ScenarioCategories is the full taxonomy in display order.
var ScenarioCategories = []ScenarioCategory{
	{
		ID:          CategoryPolice,
		Title:       "Police Interactions",
		Description: "Know your rights during traffic stops, searches, and arrests",
		Icon:        "Shield",
		Scenarios: []string{
			"Traffic Stop",
			"Police Search",
			"Arrest Situation",
			"Police Questioning",
			"Home Search Warrant",
		},
	},
	{
		ID:          CategoryWorkplace,
		Title:       "Workplace Rights",
		Description: "Understand your employment rights and protections",
		Icon:        "Briefcase",
		Scenarios: []string{
			"Workplace Discrimination",
			"Wrongful Termination",
			"Wage Theft",
			"Unsafe Working Conditions",
			"Sexual Harassment",
		},
	},
	{
		ID:          CategoryHousing,
		Title:       "Housing Rights",
		Description: "Tenant rights, evictions, and housing discrimination",
		Icon:        "Home",
		Scenarios: []string{
			"Eviction Notice",
			"Security Deposit Issues",
			"Housing Discrimination",
			"Landlord Entry Rights",
			"Rent Increase Disputes",
		},
	},
	{
		ID:          CategoryConsumer,
		Title:       "Consumer Rights",
		Description: "Protection against fraud, debt collection, and unfair practices",
		Icon:        "ShoppingCart",
		Scenarios: []string{
			"Debt Collection",
			"Credit Report Errors",
			"Fraudulent Charges",
			"Warranty Issues",
			"Identity Theft",
		},
	},
	{
		ID:          CategoryFamily,
		Title:       "Family Law",
		Description: "Rights in family matters, custody, and domestic relations",
		Icon:        "Users",
		Scenarios: []string{
			"Child Custody",
			"Domestic Violence",
			"Divorce Proceedings",
			"Child Support",
			"Adoption Rights",
		},
	},
	{
		ID:          CategoryImmigration,
		Title:       "Immigration Rights",
		Description: "Know your rights regardless of immigration status",
		Icon:        "Globe",
		Scenarios: []string{
			"ICE Encounters",
			"Workplace Raids",
			"Border Crossings",
			"Detention Rights",
			"Asylum Process",
		},
	},
}

// CategoryByID resolves a category through the taxonomy. The second return
// value is false for unknown IDs.
func CategoryByID(id CategoryID) (ScenarioCategory, bool) {
	for _, c := range ScenarioCategories {
		if c.ID == id {
			return c, true
		}
	}
	return ScenarioCategory{}, false
}

// Jurisdictions lists the jurisdictions content is authored for.
var Jurisdictions = []string{
	JurisdictionFederal,
	"California",
	"New York",
	"Texas",
	"Florida",
	"Illinois",
	"Pennsylvania",
	"Ohio",
	"Georgia",
	"North Carolina",
	"Michigan",
}

// Languages lists the languages content may be authored in.
var Languages = []string{
	"English",
	"Spanish",
	"French",
	"Chinese (Simplified)",
	"Chinese (Traditional)",
	"Arabic",
	"Russian",
	"Portuguese",
	"German",
	"Japanese",
}
