package assessment

import "math"

// Aggregate averages validated responses per category and normalizes each
// mean from the 1..5 Likert range to 0..100. Reversed questions count as
// 6 - value. A category without responses scores 0.
func Aggregate(responses []Response, catalog *Catalog) Scores {
	sums := make(map[Category]int, len(Categories))
	counts := make(map[Category]int, len(Categories))

	for _, r := range responses {
		q, ok := catalog.Lookup(r.QuestionID)
		if !ok {
			continue
		}
		v, ok := r.Value.Int()
		if !ok {
			continue
		}
		if q.Reversed {
			v = minLikert + maxLikert - v
		}
		sums[q.Category] += v
		counts[q.Category]++
	}

	scores := make(Scores, len(Categories))
	for _, cat := range Categories {
		if counts[cat] == 0 {
			scores[cat] = 0
			continue
		}
		scores[cat] = Normalize(float64(sums[cat]) / float64(counts[cat]))
	}
	return scores
}

// Normalize maps a Likert mean to an integer score: 1→0, 3→50, 5→100.
func Normalize(mean float64) int {
	n := math.Round((mean - minLikert) / (maxLikert - minLikert) * 100)
	return clampScore(int(n))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
