package assessment

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Profile is the scored and interpreted result of one assessment.
type Profile struct {
	Scores         Scores           `json:"scores"`
	PrimaryCode    Code             `json:"primaryCode"`
	Percentiles    map[Category]int `json:"percentiles"`
	Interpretation Interpretation   `json:"interpretation"`
}

// Engine runs the full scoring pipeline. It is immutable and safe for
// concurrent use.
type Engine struct {
	catalog     *Catalog
	norms       ReferenceNorms
	interpreter *Interpreter
	fingerprint string
}

type Options struct {
	Questions []Question
	Norms     ReferenceNorms
	RoleTable []RoleMapping
}

type Option func(*Options)

func WithQuestions(questions []Question) Option {
	return func(o *Options) { o.Questions = questions }
}

func WithReferenceNorms(norms ReferenceNorms) Option {
	return func(o *Options) { o.Norms = norms }
}

func WithRoleTable(table []RoleMapping) Option {
	return func(o *Options) { o.RoleTable = table }
}

// NewEngine builds an engine from the built-in tables, overridden by opts.
func NewEngine(opts ...Option) (*Engine, error) {
	options := &Options{
		Questions: DefaultQuestions(),
		Norms:     DefaultReferenceNorms(),
		RoleTable: DefaultRoleTable(),
	}
	for _, opt := range opts {
		opt(options)
	}

	catalog, err := NewCatalog(options.Questions)
	if err != nil {
		return nil, err
	}
	if err := options.Norms.Validate(); err != nil {
		return nil, err
	}
	if err := validateRoleTable(options.RoleTable); err != nil {
		return nil, err
	}

	norms := make(ReferenceNorms, len(options.Norms))
	for cat, n := range options.Norms {
		norms[cat] = n
	}

	return &Engine{
		catalog:     catalog,
		norms:       norms,
		interpreter: NewInterpreter(NewRoleMapper(options.RoleTable)),
		fingerprint: fingerprint(catalog.Questions(), norms, options.RoleTable),
	}, nil
}

// fingerprint hashes every table that affects a Profile.
func fingerprint(questions []Question, norms ReferenceNorms, table []RoleMapping) string {
	h := xxhash.New()
	for _, q := range questions {
		_, _ = h.WriteString(q.ID + "|" + string(q.Category) + "|" + strconv.FormatBool(q.Reversed) + "\n")
	}
	for _, cat := range Categories {
		n := norms[cat]
		_, _ = h.WriteString(string(cat) + "|" +
			strconv.FormatFloat(n.Mean, 'g', -1, 64) + "|" +
			strconv.FormatFloat(n.StdDev, 'g', -1, 64) + "\n")
	}
	for _, row := range table {
		_, _ = h.WriteString(row.Code.String())
		for _, role := range row.Roles {
			_, _ = h.WriteString("|" + string(role))
		}
		for _, phrase := range append(cloneStrings(row.Strengths), row.Challenges...) {
			_, _ = h.WriteString("|" + phrase)
		}
		_, _ = h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

func validateRoleTable(table []RoleMapping) error {
	seen := make(map[Code]bool, len(table))
	for i, row := range table {
		if len(row.Roles) == 0 {
			return fmt.Errorf("role table row %d (%s): no roles", i, row.Code)
		}
		if seen[row.Code] {
			return fmt.Errorf("role table row %d: duplicate code %s", i, row.Code)
		}
		seen[row.Code] = true
	}
	return nil
}

// Fingerprint identifies the questions, norms and role table the engine was
// built from. Engines built from equal tables share a fingerprint.
func (e *Engine) Fingerprint() string {
	return e.fingerprint
}

// Questions returns the catalog for rendering.
func (e *Engine) Questions() []Question {
	return e.catalog.Questions()
}

// Process validates responses and, if they pass, scores and interprets them.
func (e *Engine) Process(responses []Response) (Profile, error) {
	if err := Validate(responses, e.catalog); err != nil {
		return Profile{}, err
	}

	scores := Aggregate(responses, e.catalog)
	if err := checkScores(scores); err != nil {
		// Validation guarantees coverage, so this is a bug.
		panic(err)
	}

	code := DeriveCode(scores)
	return Profile{
		Scores:         scores,
		PrimaryCode:    code,
		Percentiles:    Percentiles(scores, e.norms),
		Interpretation: e.interpreter.Interpret(scores, code),
	}, nil
}

func checkScores(scores Scores) error {
	if len(scores) != len(Categories) {
		return errors.New("assessment: scores do not cover every category")
	}
	for cat, v := range scores {
		if !cat.Valid() || v < 0 || v > 100 {
			return fmt.Errorf("assessment: score %d for %q out of range", v, cat)
		}
	}
	return nil
}
