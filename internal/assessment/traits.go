package assessment

const (
	dominantThreshold = 70
	weakThreshold     = 30
)

// Dominant lists categories scoring above 70, in canonical order.
func Dominant(scores Scores) []Category {
	out := []Category{}
	for _, cat := range Categories {
		if scores[cat] > dominantThreshold {
			out = append(out, cat)
		}
	}
	return out
}

// Weak lists categories scoring below 30, in canonical order.
func Weak(scores Scores) []Category {
	out := []Category{}
	for _, cat := range Categories {
		if scores[cat] < weakThreshold {
			out = append(out, cat)
		}
	}
	return out
}
