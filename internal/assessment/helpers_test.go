package assessment

import "time"

var answeredAt = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

// answerAll answers every question with value(q).
func answerAll(questions []Question, value func(Question) int) []Response {
	out := make([]Response, 0, len(questions))
	for i, q := range questions {
		out = append(out, Response{
			QuestionID: q.ID,
			Value:      AnswerOf(value(q)),
			Timestamp:  answeredAt.Add(time.Duration(i) * time.Second),
		})
	}
	return out
}

// byCategory answers each question with the value set for its category.
func byCategory(values map[Category]int) func(Question) int {
	return func(q Question) int { return values[q.Category] }
}

func constant(v int) func(Question) int {
	return func(Question) int { return v }
}

// oneEach is a minimal catalog with a single question per category.
func oneEach() []Question {
	qs := make([]Question, 0, len(Categories))
	for _, c := range Categories {
		qs = append(qs, Question{ID: "q-" + string(c), Category: c})
	}
	return qs
}

func uniform(v int) Scores {
	s := make(Scores, len(Categories))
	for _, c := range Categories {
		s[c] = v
	}
	return s
}

func with(base Scores, overrides map[Category]int) Scores {
	out := make(Scores, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
