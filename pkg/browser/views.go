package browser

// Selectors of the SPOG UI pages, PatternFly v5 markup.
const (
	// login page
	LoginHeading      = "Sign in to your account"
	UserNameInput     = "#username"
	UserPasswordInput = "#password"
	LoginButton       = "#kc-login"

	// landing page
	LandingTitle    = "Trusted Content"
	LandingSubtitle = "A service for software supply chain security"

	// sidebar
	NavMenu = "nav.pf-v5-c-nav a"

	// common
	Button          = "button"
	Heading         = "h1"
	ClearAllFilters = "Clear all filters"
	NoResults       = "No results"

	// the first match is either the result table or its empty state
	MainPageTable   = "table.pf-v5-c-table, div.pf-v5-c-empty-state"
	EmptyStateClass = "pf-v5-c-empty-state"
	TableCell       = "td"

	// filter toolbar
	SearchFilterInput = ".pf-v5-c-form .pf-v5-c-form-control input"
	CheckboxGroup     = "div.pf-v5-c-check"
	RadioGroup        = "div.pf-v5-c-radio"
)

// SidebarSBOMs is the sidebar entry of the SBOM list.
const SidebarSBOMs = "SBOMs"
