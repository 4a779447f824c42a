package models

type QuestionRow struct {
	ID       string
	Position int
	Category string
	Reversed bool
	Text     string
}

type ReferenceNormRow struct {
	Category string
	Mean     float64
	StdDev   float64
}
