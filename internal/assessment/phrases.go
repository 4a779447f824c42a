package assessment

var traitDescriptions = map[Category]string{
	Realistic:     "Realistic: hands-on builder who prefers tangible, practical problems",
	Investigative: "Investigative: analytical thinker driven to understand how things work",
	Artistic:      "Artistic: creative originator comfortable with ambiguity and novelty",
	Social:        "Social: people-oriented collaborator who energizes teams and customers",
	Enterprising:  "Enterprising: persuasive, ambitious leader drawn to risk and opportunity",
	Conventional:  "Conventional: organized operator who builds structure and reliable process",
}

var categoryStrengths = map[Category][]string{
	Realistic: {
		"Builds and ships tangible products quickly",
		"Solves hands-on technical problems pragmatically",
	},
	Investigative: {
		"Analyzes markets and problems rigorously",
		"Validates ideas with data before scaling",
	},
	Artistic: {
		"Generates original product and brand ideas",
		"Thrives in ambiguous, early-stage environments",
	},
	Social: {
		"Builds trust with customers and team members",
		"Develops people and strong team culture",
	},
	Enterprising: {
		"Sells the vision to investors, customers and recruits",
		"Comfortable with risk and decisive under pressure",
	},
	Conventional: {
		"Creates reliable processes and operational structure",
		"Keeps finances, metrics and details under control",
	},
}

var categoryChallenges = map[Category][]string{
	Realistic: {
		"May avoid hands-on technical or operational work",
	},
	Investigative: {
		"May skip research and validation before committing",
		"Could underuse data when making product decisions",
	},
	Artistic: {
		"May struggle to differentiate the product creatively",
	},
	Social: {
		"May find team building and customer empathy draining",
		"Could underinvest in culture and hiring",
	},
	Enterprising: {
		"May be uncomfortable selling, pitching or fundraising",
		"Could hesitate to take necessary risks",
	},
	Conventional: {
		"May neglect process, documentation and financial discipline",
	},
}

var preferredEnvironments = map[Category][]string{
	Realistic:     {"Hands-on building with tangible deliverables", "Hardware, deep-tech or product engineering teams"},
	Investigative: {"Research-driven teams with room for deep work", "Data-rich environments with hard problems"},
	Artistic:      {"Unstructured, creative early-stage settings", "Product, design or brand-led companies"},
	Social:        {"Collaborative, mission-driven teams", "Roles with close customer or community contact"},
	Enterprising:  {"Fast-moving, high-growth startups", "Leadership roles with ownership of outcomes"},
	Conventional:  {"Well-organized teams with clear responsibilities", "Scaling companies that need process and structure"},
}

var avoidEnvironments = map[Category][]string{
	Realistic:     {"Roles limited to meetings and abstract planning"},
	Investigative: {"Environments that reward speed over understanding"},
	Artistic:      {"Rigid, rule-bound organizations", "Highly repetitive execution roles"},
	Social:        {"Isolated roles with little human interaction"},
	Enterprising:  {"Slow, consensus-only bureaucracies"},
	Conventional:  {"Chaotic settings without priorities or process"},
}

// categoryPair is an unordered pair, stored in canonical order.
type categoryPair [2]Category

func pairOf(a, b Category) categoryPair {
	if b.index() < a.index() {
		a, b = b, a
	}
	return categoryPair{a, b}
}

type pairPhrase struct {
	pair   categoryPair
	phrase string
}

// combinationStrengths apply when both categories exceed 65.
var combinationStrengths = []pairPhrase{
	{pairOf(Realistic, Investigative), "Can take a technical idea from prototype to working product"},
	{pairOf(Investigative, Enterprising), "Pairs analytical rigor with commercial instinct"},
	{pairOf(Artistic, Enterprising), "Turns original ideas into compelling pitches and brands"},
	{pairOf(Social, Enterprising), "Builds networks, teams and early customer communities quickly"},
	{pairOf(Enterprising, Conventional), "Scales operations without losing execution discipline"},
	{pairOf(Investigative, Artistic), "Innovates from first principles"},
}

// criticalGaps apply when both categories are below 30.
var criticalGaps = []pairPhrase{
	{pairOf(Social, Enterprising), "Critical gap: limited drive for selling and networking; a commercial co-founder is strongly recommended"},
	{pairOf(Realistic, Conventional), "Critical gap: low affinity for hands-on execution and process; operational support will be essential"},
	{pairOf(Investigative, Artistic), "Critical gap: limited appetite for research and creative exploration; product innovation may stall"},
}

var decisionStyles = map[categoryPair]string{
	pairOf(Realistic, Investigative):    "Analytical and pragmatic: tests assumptions with data and prototypes before committing",
	pairOf(Investigative, Enterprising): "Strategic: weighs evidence quickly, then commits boldly to capture opportunity",
	pairOf(Artistic, Enterprising):      "Visionary: decides from intuition and a compelling picture of the future",
	pairOf(Social, Enterprising):        "Consensus-building: rallies stakeholders and decides through persuasion and dialogue",
	pairOf(Enterprising, Conventional):  "Decisive and structured: sets clear targets and decides against metrics",
	pairOf(Investigative, Conventional): "Methodical: decides through careful analysis, models and documented criteria",
	pairOf(Investigative, Artistic):     "Exploratory: generates many options and reasons from first principles",
	pairOf(Social, Conventional):        "Process-oriented and inclusive: follows agreed processes and weighs the impact on the team",
}

var singleDecisionStyles = map[Category]string{
	Realistic:     "Practical: favors hands-on experimentation and decides based on what works in reality",
	Investigative: "Evidence-led: gathers information thoroughly before reaching a conclusion",
	Enterprising:  "Action-oriented: decides fast and adjusts course on the fly",
}

const balancedDecisionStyle = "Balanced decision-maker: adapts between analysis, intuition and consensus depending on context"
