package assessment

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	engine, err := NewEngine(opts...)
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine := newTestEngine(t)
		assert.Len(t, engine.Questions(), 30)
	})

	t.Run("default catalog is positively keyed", func(t *testing.T) {
		counts := make(map[Category]int)
		for _, q := range DefaultQuestions() {
			assert.False(t, q.Reversed, q.ID)
			counts[q.Category]++
		}
		for _, cat := range Categories {
			assert.Equal(t, 5, counts[cat], cat)
		}
	})

	t.Run("rejects a catalog missing a category", func(t *testing.T) {
		_, err := NewEngine(WithQuestions(oneEach()[:5]))
		assert.ErrorContains(t, err, "no question for category C")
	})

	t.Run("rejects duplicate question ids", func(t *testing.T) {
		qs := append(oneEach(), Question{ID: "q-R", Category: Realistic})
		_, err := NewEngine(WithQuestions(qs))
		assert.ErrorContains(t, err, "duplicate question id")
	})

	t.Run("rejects invalid norms", func(t *testing.T) {
		_, err := NewEngine(WithReferenceNorms(ReferenceNorms{}))
		assert.Error(t, err)
	})

	t.Run("rejects role rows without roles", func(t *testing.T) {
		_, err := NewEngine(WithRoleTable([]RoleMapping{{Code: MustParseCode("RIA")}}))
		assert.ErrorContains(t, err, "no roles")
	})

	t.Run("questions are a copy", func(t *testing.T) {
		engine := newTestEngine(t)
		qs := engine.Questions()
		qs[0].ID = "mutated"
		assert.Equal(t, "r1", engine.Questions()[0].ID)
	})
}

func TestEngineFingerprint(t *testing.T) {
	base := newTestEngine(t).Fingerprint()
	assert.Len(t, base, 16)
	assert.Equal(t, base, newTestEngine(t).Fingerprint())

	reversed := DefaultQuestions()
	reversed[0].Reversed = !reversed[0].Reversed

	norms := DefaultReferenceNorms()
	norms[Enterprising] = Norm{Mean: 60, StdDev: 16}

	table := DefaultRoleTable()
	table[0].Challenges = append(table[0].Challenges, "Ships too early")

	cases := map[string][]Option{
		"reversed flag": {WithQuestions(reversed)},
		"norms":         {WithReferenceNorms(norms)},
		"role table":    {WithRoleTable(table)},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NotEqual(t, base, newTestEngine(t, opts...).Fingerprint())
		})
	}
}

func TestProcess(t *testing.T) {
	engine := newTestEngine(t)
	questions := engine.Questions()

	t.Run("realistic maxed, others neutral", func(t *testing.T) {
		responses := answerAll(questions, func(q Question) int {
			if q.Category == Realistic {
				return 5
			}
			return 3
		})

		profile, err := engine.Process(responses)
		require.NoError(t, err)

		assert.Equal(t, with(uniform(50), map[Category]int{Realistic: 100}), profile.Scores)
		assert.Equal(t, Realistic, profile.PrimaryCode[0])
		assert.Equal(t, "RIA", profile.PrimaryCode.String())
		assert.Equal(t, []string{traitDescriptions[Realistic]}, profile.Interpretation.DominantTraits)
		assert.Empty(t, Weak(profile.Scores))
		assert.Equal(t, MatchPartial, profile.Interpretation.StartupFit.RoleMatch)
		assert.Equal(t, []RoleID{TechnicalFounder, HardwareEngineer}, profile.Interpretation.StartupFit.IdealRoles)
	})

	t.Run("all ones", func(t *testing.T) {
		profile, err := engine.Process(answerAll(questions, constant(1)))
		require.NoError(t, err)

		assert.Equal(t, uniform(0), profile.Scores)
		assert.Equal(t, Categories, Weak(profile.Scores))
		assert.Empty(t, profile.Interpretation.DominantTraits)
		for _, gap := range criticalGaps {
			assert.Contains(t, profile.Interpretation.StartupFit.PotentialChallenges, gap.phrase)
		}
	})

	t.Run("validation aborts processing", func(t *testing.T) {
		responses := answerAll(questions, constant(3))
		responses[0].Value = AnswerOf(6)

		profile, err := engine.Process(responses)

		assert.ErrorIs(t, err, ErrInvalidResponses)
		assert.Equal(t, Profile{}, profile)
	})

	t.Run("ranges hold", func(t *testing.T) {
		for r := 1; r <= 5; r++ {
			for e := 1; e <= 5; e++ {
				responses := answerAll(questions, byCategory(map[Category]int{
					Realistic: r, Investigative: 6 - r, Artistic: 3, Social: e, Enterprising: e, Conventional: 6 - e,
				}))

				profile, err := engine.Process(responses)
				require.NoError(t, err)

				for _, cat := range Categories {
					assert.True(t, profile.Scores[cat] >= 0 && profile.Scores[cat] <= 100)
					assert.True(t, profile.Percentiles[cat] >= 0 && profile.Percentiles[cat] <= 100)
				}
				assert.NotEmpty(t, profile.Interpretation.StartupFit.IdealRoles)
				assert.NotEmpty(t, profile.Interpretation.DecisionMakingStyle)
			}
		}
	})
}

func TestProcessDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	responses := answerAll(engine.Questions(), func(q Question) int {
		return int(q.ID[1]-'0')%5 + 1
	})

	first, err := engine.Process(responses)
	require.NoError(t, err)
	second, err := engine.Process(responses)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("profiles differ (-first +second):\n%s", diff)
	}

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestProcessConcurrent(t *testing.T) {
	engine := newTestEngine(t)
	responses := answerAll(engine.Questions(), byCategory(map[Category]int{
		Realistic: 2, Investigative: 5, Artistic: 4, Social: 1, Enterprising: 5, Conventional: 3,
	}))
	expected, err := engine.Process(responses)
	require.NoError(t, err)

	var g errgroup.Group
	results := make([]Profile, 32)
	for i := range results {
		g.Go(func() error {
			p, err := engine.Process(responses)
			results[i] = p
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, p := range results {
		assert.True(t, cmp.Equal(expected, p))
	}
}

func TestProfileJSON(t *testing.T) {
	engine := newTestEngine(t)
	profile, err := engine.Process(answerAll(engine.Questions(), constant(3)))
	require.NoError(t, err)

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var shape map[string]any
	require.NoError(t, json.Unmarshal(data, &shape))
	assert.Equal(t, "RIA", shape["primaryCode"])
	assert.Contains(t, shape, "scores")
	assert.Contains(t, shape, "percentiles")

	interpretation := shape["interpretation"].(map[string]any)
	for _, key := range []string{"dominantTraits", "startupFit", "workEnvironment", "decisionMakingStyle"} {
		assert.Contains(t, interpretation, key)
	}
	assert.Equal(t, []any{}, interpretation["dominantTraits"])

	var decoded Profile
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, cmp.Equal(profile, decoded))
}
