package assessment

const (
	combinationThreshold = 65
	environmentThreshold = 65
)

// Interpretation is the human-readable reading of a set of scores.
type Interpretation struct {
	DominantTraits      []string        `json:"dominantTraits"`
	StartupFit          StartupFit      `json:"startupFit"`
	WorkEnvironment     WorkEnvironment `json:"workEnvironment"`
	DecisionMakingStyle string          `json:"decisionMakingStyle"`
}

type StartupFit struct {
	IdealRoles          []RoleID  `json:"idealRoles"`
	RoleMatch           MatchKind `json:"roleMatch"`
	Strengths           []string  `json:"strengths"`
	PotentialChallenges []string  `json:"potentialChallenges"`
}

type WorkEnvironment struct {
	Preferred []string `json:"preferred"`
	ToAvoid   []string `json:"toAvoid"`
}

// phraseRule appends phrases when its predicate holds. Rules are evaluated in
// slice order and their phrases accumulate without deduplication.
type phraseRule struct {
	when    func(Scores) bool
	phrases []string
}

func evaluate(rules []phraseRule, scores Scores) []string {
	out := []string{}
	for _, r := range rules {
		if r.when(scores) {
			out = append(out, r.phrases...)
		}
	}
	return out
}

func above(cat Category, threshold int) func(Scores) bool {
	return func(s Scores) bool { return s[cat] > threshold }
}

func below(cat Category, threshold int) func(Scores) bool {
	return func(s Scores) bool { return s[cat] < threshold }
}

func pairAbove(p categoryPair, threshold int) func(Scores) bool {
	return func(s Scores) bool { return s[p[0]] > threshold && s[p[1]] > threshold }
}

func pairBelow(p categoryPair, threshold int) func(Scores) bool {
	return func(s Scores) bool { return s[p[0]] < threshold && s[p[1]] < threshold }
}

// Interpreter turns scores and a code into an Interpretation.
type Interpreter struct {
	roles          *RoleMapper
	strengthRules  []phraseRule
	challengeRules []phraseRule
	preferredRules []phraseRule
	avoidRules     []phraseRule
}

// NewInterpreter builds the rule tables: single-category rules in canonical
// order first, then pair rules in declaration order.
func NewInterpreter(roles *RoleMapper) *Interpreter {
	in := &Interpreter{roles: roles}
	for _, cat := range Categories {
		in.strengthRules = append(in.strengthRules, phraseRule{above(cat, dominantThreshold), categoryStrengths[cat]})
		in.challengeRules = append(in.challengeRules, phraseRule{below(cat, weakThreshold), categoryChallenges[cat]})
		in.preferredRules = append(in.preferredRules, phraseRule{above(cat, environmentThreshold), preferredEnvironments[cat]})
		in.avoidRules = append(in.avoidRules, phraseRule{above(cat, environmentThreshold), avoidEnvironments[cat]})
	}
	for _, c := range combinationStrengths {
		in.strengthRules = append(in.strengthRules, phraseRule{pairAbove(c.pair, combinationThreshold), []string{c.phrase}})
	}
	for _, g := range criticalGaps {
		in.challengeRules = append(in.challengeRules, phraseRule{pairBelow(g.pair, weakThreshold), []string{g.phrase}})
	}
	return in
}

// Interpret is a pure function of its inputs.
func (in *Interpreter) Interpret(scores Scores, code Code) Interpretation {
	match := in.roles.Map(code, scores)

	strengths := evaluate(in.strengthRules, scores)
	challenges := evaluate(in.challengeRules, scores)
	if match.Kind == MatchExact {
		strengths = append(strengths, match.Strengths...)
		challenges = append(challenges, match.Challenges...)
	}

	return Interpretation{
		DominantTraits: describe(Dominant(scores)),
		StartupFit: StartupFit{
			IdealRoles:          match.Roles,
			RoleMatch:           match.Kind,
			Strengths:           strengths,
			PotentialChallenges: challenges,
		},
		WorkEnvironment: WorkEnvironment{
			Preferred: evaluate(in.preferredRules, scores),
			ToAvoid:   evaluate(in.avoidRules, scores),
		},
		DecisionMakingStyle: decisionStyle(scores),
	}
}

func describe(cats []Category) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, traitDescriptions[c])
	}
	return out
}

func decisionStyle(scores Scores) string {
	ranked := scores.Ranked()
	if style, ok := decisionStyles[pairOf(ranked[0], ranked[1])]; ok {
		return style
	}
	if style, ok := singleDecisionStyles[ranked[0]]; ok {
		return style
	}
	return balancedDecisionStyle
}
