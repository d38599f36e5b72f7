package risk

// Rule is a static catalog entry. Keyword is matched case-insensitively as
// a substring of task names; the remaining fields are template metadata
// merged into every risk the rule produces.
type Rule struct {
	Keyword    string
	Title      string
	Category   string
	Owner      string
	Mitigation string
	Trigger    string
}

// Catalog is the process-wide, read-only rule table. Evaluated in order;
// one task may match several rules and one rule several tasks; the
// cross-product is intended.
var Catalog = []Rule{
	{
		Keyword:    "api",
		Title:      "API Delay Risk",
		Category:   "Technical",
		Owner:      "Backend Lead",
		Mitigation: "Define API contracts early and stub external endpoints until they are ready.",
		Trigger:    "External or backend API is not available when integration work starts.",
	},
	{
		Keyword:    "integration",
		Title:      "Integration Failure Risk",
		Category:   "Technical",
		Owner:      "Tech Lead",
		Mitigation: "Run integration tests continuously against a staging environment.",
		Trigger:    "Interfaces between components drift or third-party behavior changes.",
	},
	{
		Keyword:    "database",
		Title:      "Data Model Instability Risk",
		Category:   "Technical",
		Owner:      "Database Administrator",
		Mitigation: "Review the schema with stakeholders and version every migration.",
		Trigger:    "Requirements changes force repeated schema rework.",
	},
	{
		Keyword:    "migration",
		Title:      "Data Migration Risk",
		Category:   "Technical",
		Owner:      "Database Administrator",
		Mitigation: "Dry-run migrations on production-sized copies and keep rollback scripts.",
		Trigger:    "Source data quality issues surface during migration rehearsal.",
	},
	{
		Keyword:    "security",
		Title:      "Security Vulnerability Risk",
		Category:   "Technical",
		Owner:      "Security Engineer",
		Mitigation: "Schedule a security review and penetration test before release.",
		Trigger:    "Static analysis or audit reports unresolved high-severity findings.",
	},
	{
		Keyword:    "payment",
		Title:      "Payment Provider Risk",
		Category:   "External",
		Owner:      "Backend Lead",
		Mitigation: "Sandbox-test the provider early and implement an abstraction for a fallback provider.",
		Trigger:    "Provider onboarding, compliance checks or sandbox access are delayed.",
	},
	{
		Keyword:    "test",
		Title:      "Insufficient Testing Risk",
		Category:   "Schedule",
		Owner:      "QA Lead",
		Mitigation: "Protect the testing window in the plan and automate regression suites.",
		Trigger:    "Development overruns start consuming the allocated QA time.",
	},
	{
		Keyword:    "deploy",
		Title:      "Deployment Failure Risk",
		Category:   "Technical",
		Owner:      "DevOps Engineer",
		Mitigation: "Automate the release pipeline and rehearse rollback on staging.",
		Trigger:    "Manual deployment steps or environment drift between staging and production.",
	},
	{
		// "ui" would also fire inside "build" and "guide"; substring
		// keywords must not be fragments of common task verbs.
		Keyword:    "frontend",
		Title:      "UI Rework Risk",
		Category:   "Resource",
		Owner:      "Frontend Lead",
		Mitigation: "Validate wireframes with users before implementation starts.",
		Trigger:    "Late design feedback arrives after screens are built.",
	},
	{
		Keyword:    "requirement",
		Title:      "Scope Creep Risk",
		Category:   "Schedule",
		Owner:      "Project Manager",
		Mitigation: "Baseline the requirements and route every change through change control.",
		Trigger:    "Stakeholders request additions outside the agreed scope.",
	},
}
