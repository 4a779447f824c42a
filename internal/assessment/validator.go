package assessment

// Validate checks responses against the catalog before any scoring runs.
// Checks run in order: response count, then each response's question and
// value, then coverage of every catalog question.
func Validate(responses []Response, catalog *Catalog) error {
	if len(responses) < catalog.Len() {
		return &IncompleteAssessmentError{Answered: len(responses), Required: catalog.Len()}
	}

	answered := make(map[string]bool, len(responses))
	for _, r := range responses {
		if _, ok := catalog.Lookup(r.QuestionID); !ok {
			return &UnknownQuestionError{QuestionID: r.QuestionID}
		}
		v, ok := r.Value.Int()
		if !ok || v < minLikert || v > maxLikert {
			return &OutOfRangeError{QuestionID: r.QuestionID, Value: r.Value}
		}
		answered[r.QuestionID] = true
	}

	// Duplicates can pad the count while leaving a question unanswered.
	for _, q := range catalog.questions {
		if !answered[q.ID] {
			return &IncompleteAssessmentError{
				Answered: len(answered),
				Required: catalog.Len(),
				Missing:  q.ID,
			}
		}
	}
	return nil
}
