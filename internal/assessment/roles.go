package assessment

// RoleID identifies a startup role archetype.
type RoleID string

const (
	TechnicalFounder    RoleID = "technical-founder"
	HardwareEngineer    RoleID = "hardware-engineer"
	ProductArchitect    RoleID = "product-architect"
	VisionaryFounder    RoleID = "visionary-founder"
	GrowthStrategist    RoleID = "growth-strategist"
	DataScientist       RoleID = "data-scientist"
	ResearchLead        RoleID = "research-lead"
	SalesLeader         RoleID = "sales-leader"
	OperationsLead      RoleID = "operations-lead"
	FinanceLead         RoleID = "finance-lead"
	CommunityBuilder    RoleID = "community-builder"
	PeopleLead          RoleID = "people-lead"
	CustomerSuccessLead RoleID = "customer-success-lead"
	CreativeDirector    RoleID = "creative-director"
	BrandStrategist     RoleID = "brand-strategist"
)

// MatchKind records which resolution step produced the roles.
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchPartial  MatchKind = "partial"
	MatchInferred MatchKind = "inferred"
)

// partialMatchMinShared is how many letters a table code must share with the
// respondent's code to count as a partial match.
const partialMatchMinShared = 2

// RoleMapping is one row of the role table.
type RoleMapping struct {
	Code       Code
	Roles      []RoleID
	Strengths  []string
	Challenges []string
}

// RoleMatch is the result of mapping a code to roles. Strengths and
// Challenges are only filled for exact matches.
type RoleMatch struct {
	Kind       MatchKind
	Roles      []RoleID
	Strengths  []string
	Challenges []string
}

// DefaultRoleTable is the built-in role table. Its order is significant: the
// first row sharing two letters wins a partial match, so reordering rows
// changes results.
func DefaultRoleTable() []RoleMapping {
	return []RoleMapping{
		{
			Code:       MustParseCode("RIC"),
			Roles:      []RoleID{TechnicalFounder, HardwareEngineer},
			Strengths:  []string{"Builds reliable technical foundations", "Turns specifications into working systems"},
			Challenges: []string{"May over-engineer before validating demand", "Can neglect selling the product"},
		},
		{
			Code:       MustParseCode("IRE"),
			Roles:      []RoleID{TechnicalFounder, ProductArchitect},
			Strengths:  []string{"Connects deep technology with market opportunity", "Ships prototypes that prove a thesis"},
			Challenges: []string{"May underinvest in team culture", "Can move faster than documentation"},
		},
		{
			Code:       MustParseCode("IAE"),
			Roles:      []RoleID{ProductArchitect, VisionaryFounder},
			Strengths:  []string{"Invents products from first principles", "Communicates a differentiated product vision"},
			Challenges: []string{"May chase novelty over focus", "Can find routine operations draining"},
		},
		{
			Code:       MustParseCode("EIA"),
			Roles:      []RoleID{VisionaryFounder, GrowthStrategist},
			Strengths:  []string{"Spots market openings early", "Backs bold bets with reasoning"},
			Challenges: []string{"May overpromise timelines", "Can lose patience with process"},
		},
		{
			Code:       MustParseCode("IEC"),
			Roles:      []RoleID{DataScientist, GrowthStrategist},
			Strengths:  []string{"Runs growth as a disciplined experiment", "Grounds decisions in metrics"},
			Challenges: []string{"May stall waiting for more data", "Can undervalue brand and storytelling"},
		},
		{
			Code:       MustParseCode("ESC"),
			Roles:      []RoleID{SalesLeader, OperationsLead},
			Strengths:  []string{"Builds a repeatable sales motion", "Keeps customers and pipeline organized"},
			Challenges: []string{"May resist unproven product bets", "Can focus on short-term revenue"},
		},
		{
			Code:       MustParseCode("ESI"),
			Roles:      []RoleID{GrowthStrategist, SalesLeader},
			Strengths:  []string{"Wins customers with insight and rapport", "Adapts the pitch to each audience"},
			Challenges: []string{"May spread effort across too many leads", "Can skip operational follow-through"},
		},
		{
			Code:       MustParseCode("SEI"),
			Roles:      []RoleID{CommunityBuilder, PeopleLead},
			Strengths:  []string{"Grows engaged user communities", "Attracts and retains early talent"},
			Challenges: []string{"May avoid hard personnel decisions", "Can struggle with technical depth"},
		},
		{
			Code:       MustParseCode("SEC"),
			Roles:      []RoleID{CustomerSuccessLead, PeopleLead},
			Strengths:  []string{"Turns early customers into advocates", "Builds dependable support processes"},
			Challenges: []string{"May say yes to every customer request", "Can be slow to change course"},
		},
		{
			Code:       MustParseCode("AEC"),
			Roles:      []RoleID{CreativeDirector, BrandStrategist},
			Strengths:  []string{"Crafts a memorable brand", "Delivers creative work on schedule"},
			Challenges: []string{"May prioritize polish over speed", "Can find technical trade-offs frustrating"},
		},
		{
			Code:       MustParseCode("CER"),
			Roles:      []RoleID{OperationsLead, FinanceLead},
			Strengths:  []string{"Runs a tight operation with clear accountability", "Keeps the company financially disciplined"},
			Challenges: []string{"May be uncomfortable with ambiguity", "Can slow down experimentation"},
		},
		{
			Code:       MustParseCode("CIR"),
			Roles:      []RoleID{FinanceLead, DataScientist},
			Strengths:  []string{"Builds accurate models and forecasts", "Catches errors others miss"},
			Challenges: []string{"May avoid public-facing roles", "Can get lost in detail"},
		},
		{
			Code:       MustParseCode("RCE"),
			Roles:      []RoleID{HardwareEngineer, OperationsLead},
			Strengths:  []string{"Scales manufacturing and supply chains", "Delivers on physical-world commitments"},
			Challenges: []string{"May be conservative about product risk", "Can underweight brand building"},
		},
	}
}

// inferenceRule is one step of the score-based fallback cascade.
type inferenceRule struct {
	when func(Scores) bool
	role RoleID
}

func both(a Category, aMin int, b Category, bMin int) func(Scores) bool {
	return func(s Scores) bool { return s[a] > aMin && s[b] > bMin }
}

var inferenceRules = []inferenceRule{
	{when: both(Enterprising, 70, Investigative, 60), role: GrowthStrategist},
	{when: both(Enterprising, 70, Artistic, 60), role: VisionaryFounder},
	{when: both(Enterprising, 70, Social, 60), role: SalesLeader},
	{when: both(Investigative, 70, Realistic, 60), role: TechnicalFounder},
	{when: both(Investigative, 70, Conventional, 60), role: DataScientist},
	{when: both(Social, 70, Artistic, 60), role: CommunityBuilder},
	{when: both(Conventional, 70, Realistic, 60), role: OperationsLead},
	{when: func(s Scores) bool { return s[Artistic] > 70 }, role: CreativeDirector},
}

// defaultRoles is the terminal fallback keyed by the single highest category.
var defaultRoles = map[Category]RoleID{
	Realistic:     HardwareEngineer,
	Investigative: ResearchLead,
	Artistic:      CreativeDirector,
	Social:        PeopleLead,
	Enterprising:  SalesLeader,
	Conventional:  OperationsLead,
}

// RoleMapper resolves a code to roles against an ordered table.
type RoleMapper struct {
	table []RoleMapping
}

// NewRoleMapper copies table; the copy keeps its declaration order.
func NewRoleMapper(table []RoleMapping) *RoleMapper {
	t := make([]RoleMapping, len(table))
	copy(t, table)
	return &RoleMapper{table: t}
}

// Map tries an exact match, then the first partial match in table order,
// then the score-inference cascade. It always returns at least one role.
func (m *RoleMapper) Map(code Code, scores Scores) RoleMatch {
	for _, row := range m.table {
		if row.Code == code {
			return RoleMatch{
				Kind:       MatchExact,
				Roles:      cloneRoles(row.Roles),
				Strengths:  cloneStrings(row.Strengths),
				Challenges: cloneStrings(row.Challenges),
			}
		}
	}

	for _, row := range m.table {
		if row.Code.Shared(code) >= partialMatchMinShared {
			return RoleMatch{Kind: MatchPartial, Roles: cloneRoles(row.Roles)}
		}
	}

	return RoleMatch{Kind: MatchInferred, Roles: []RoleID{inferRole(scores)}}
}

func inferRole(scores Scores) RoleID {
	for _, rule := range inferenceRules {
		if rule.when(scores) {
			return rule.role
		}
	}
	return defaultRoles[scores.Ranked()[0]]
}

func cloneRoles(in []RoleID) []RoleID {
	out := make([]RoleID, len(in))
	copy(out, in)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
