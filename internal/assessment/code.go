package assessment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CodeLength is the number of letters in a categorical code.
const CodeLength = 3

// Code is the ordered top-three categories, highest first.
type Code [CodeLength]Category

// DeriveCode ranks categories by score (canonical order on ties) and keeps
// the first three.
func DeriveCode(scores Scores) Code {
	ranked := scores.Ranked()
	var code Code
	copy(code[:], ranked[:CodeLength])
	return code
}

// ParseCode parses a three-letter code such as "IRC".
func ParseCode(s string) (Code, error) {
	var code Code
	if len(s) != CodeLength {
		return code, fmt.Errorf("code %q must have %d letters", s, CodeLength)
	}
	seen := make(map[Category]bool, CodeLength)
	for i := 0; i < CodeLength; i++ {
		c, err := ParseCategory(s[i : i+1])
		if err != nil {
			return Code{}, fmt.Errorf("code %q: %w", s, err)
		}
		if seen[c] {
			return Code{}, fmt.Errorf("code %q repeats %s", s, c)
		}
		seen[c] = true
		code[i] = c
	}
	return code, nil
}

// MustParseCode is ParseCode for table literals.
func MustParseCode(s string) Code {
	code, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return code
}

func (c Code) String() string {
	var b strings.Builder
	for _, cat := range c {
		b.WriteString(string(cat))
	}
	return b.String()
}

// Shared counts the letters c and other have in common, ignoring order.
func (c Code) Shared(other Code) int {
	n := 0
	for _, a := range c {
		for _, b := range other {
			if a == b {
				n++
				break
			}
		}
	}
	return n
}

func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCode(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
