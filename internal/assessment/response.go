package assessment

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	minLikert = 1
	maxLikert = 5
)

// Answer is a Likert value as the client sent it. Questionnaire front ends
// submit either 4 or "4", so the raw text is kept and coerced on demand.
type Answer string

// AnswerOf builds an Answer from an int.
func AnswerOf(v int) Answer {
	return Answer(strconv.Itoa(v))
}

// Int coerces the answer to an integer. It fails for non-numeric and
// fractional values.
func (a Answer) Int() (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(a)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if v, ok := a.Int(); ok {
		return []byte(strconv.Itoa(v)), nil
	}
	return json.Marshal(string(a))
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Answer(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// Booleans, objects and arrays are kept verbatim and fail validation
		// as out of range.
		*a = Answer(data)
		return nil
	}
	*a = Answer(n.String())
	return nil
}

// Response is a single submitted answer.
type Response struct {
	QuestionID string    `json:"questionId"`
	Value      Answer    `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}
