package assessment

import (
	"errors"
	"fmt"
)

// Question is one Likert statement of the questionnaire.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Reversed bool     `json:"reversed,omitempty"`
	Text     string   `json:"text"`
}

// Catalog is the ordered, immutable question list.
type Catalog struct {
	questions []Question
	byID      map[string]Question
}

// NewCatalog validates and indexes questions. Every category needs at least
// one question, otherwise its score could never be computed.
func NewCatalog(questions []Question) (*Catalog, error) {
	if len(questions) == 0 {
		return nil, errors.New("catalog: no questions")
	}
	c := &Catalog{
		questions: make([]Question, len(questions)),
		byID:      make(map[string]Question, len(questions)),
	}
	copy(c.questions, questions)

	covered := make(map[Category]bool, len(Categories))
	for _, q := range c.questions {
		if q.ID == "" {
			return nil, errors.New("catalog: question with empty id")
		}
		if !q.Category.Valid() {
			return nil, fmt.Errorf("catalog: question %q has unknown category %q", q.ID, q.Category)
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		c.byID[q.ID] = q
		covered[q.Category] = true
	}
	for _, cat := range Categories {
		if !covered[cat] {
			return nil, fmt.Errorf("catalog: no question for category %s", cat)
		}
	}
	return c, nil
}

// Len is the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Lookup finds a question by id.
func (c *Catalog) Lookup(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Questions returns a copy of the ordered question list.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// DefaultQuestions is the built-in questionnaire, five statements per category.
func DefaultQuestions() []Question {
	return []Question{
		{ID: "r1", Category: Realistic, Text: "I enjoy building or fixing physical things with my hands."},
		{ID: "r2", Category: Realistic, Text: "I would rather prototype a solution than debate it on a whiteboard."},
		{ID: "r3", Category: Realistic, Text: "I like working with tools, machines or hardware."},
		{ID: "r4", Category: Realistic, Text: "I prefer problems with concrete, tangible outcomes."},
		{ID: "r5", Category: Realistic, Text: "I am comfortable getting hands-on with the technical details of a product."},

		{ID: "i1", Category: Investigative, Text: "I like digging into data to understand why something happens."},
		{ID: "i2", Category: Investigative, Text: "I enjoy solving complex analytical or scientific problems."},
		{ID: "i3", Category: Investigative, Text: "I research a market thoroughly before committing to an idea."},
		{ID: "i4", Category: Investigative, Text: "I am curious about how new technologies work under the hood."},
		{ID: "i5", Category: Investigative, Text: "I test my assumptions before acting on them."},

		{ID: "a1", Category: Artistic, Text: "I come up with original ideas others have not considered."},
		{ID: "a2", Category: Artistic, Text: "I care about design, storytelling and how a product feels."},
		{ID: "a3", Category: Artistic, Text: "I am comfortable working without a fixed plan or structure."},
		{ID: "a4", Category: Artistic, Text: "I enjoy expressing ideas through writing, visuals or media."},
		{ID: "a5", Category: Artistic, Text: "I would rather invent a new approach than follow an established one."},

		{ID: "s1", Category: Social, Text: "I enjoy helping people grow and develop."},
		{ID: "s2", Category: Social, Text: "I find it easy to build trust with customers and colleagues."},
		{ID: "s3", Category: Social, Text: "I like mentoring, teaching or coaching others."},
		{ID: "s4", Category: Social, Text: "I pay attention to team morale and how people feel."},
		{ID: "s5", Category: Social, Text: "I get energy from collaborating closely with a team."},

		{ID: "e1", Category: Enterprising, Text: "I enjoy persuading others to back my ideas."},
		{ID: "e2", Category: Enterprising, Text: "I am comfortable taking calculated risks to capture an opportunity."},
		{ID: "e3", Category: Enterprising, Text: "I like negotiating deals and closing sales."},
		{ID: "e4", Category: Enterprising, Text: "I naturally take the lead when a group needs direction."},
		{ID: "e5", Category: Enterprising, Text: "I am motivated by ambitious growth targets."},

		{ID: "c1", Category: Conventional, Text: "I like keeping budgets, records and documents well organized."},
		{ID: "c2", Category: Conventional, Text: "I enjoy designing processes that make work repeatable."},
		{ID: "c3", Category: Conventional, Text: "I pay close attention to details and accuracy."},
		{ID: "c4", Category: Conventional, Text: "I prefer clear rules and well-defined responsibilities."},
		{ID: "c5", Category: Conventional, Text: "I like tracking metrics and reporting on progress."},
	}
}
