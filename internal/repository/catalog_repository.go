package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godilite/founder-assessment/internal/repository/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS questions (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		category TEXT NOT NULL CHECK (category IN ('R', 'I', 'A', 'S', 'E', 'C')),
		reversed INTEGER NOT NULL DEFAULT 0,
		text     TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS reference_norms (
		category TEXT PRIMARY KEY CHECK (category IN ('R', 'I', 'A', 'S', 'E', 'C')),
		mean     REAL NOT NULL,
		std_dev  REAL NOT NULL CHECK (std_dev > 0)
	);
`

// CatalogRepository reads the questionnaire and the reference population
// from SQL. Both tables are static configuration, written only by seeding.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Migrate creates the tables if they do not exist.
func (r *CatalogRepository) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate catalog schema: %w", err)
	}
	return nil
}

// Seed inserts rows that are not present yet. Existing rows win, so an
// operator-edited catalog is never overwritten. A row that violates a column
// constraint fails the whole batch.
func (r *CatalogRepository) Seed(ctx context.Context, questions []models.QuestionRow, norms []models.ReferenceNormRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, q := range questions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO questions (id, position, category, reversed, text)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`, q.ID, q.Position, q.Category, q.Reversed, q.Text)
		if err != nil {
			return fmt.Errorf("seed question %q: %w", q.ID, err)
		}
	}

	for _, n := range norms {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO reference_norms (category, mean, std_dev)
			VALUES (?, ?, ?)
			ON CONFLICT(category) DO NOTHING
		`, n.Category, n.Mean, n.StdDev)
		if err != nil {
			return fmt.Errorf("seed reference norm %q: %w", n.Category, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// ListQuestions returns the catalog ordered by position.
func (r *CatalogRepository) ListQuestions(ctx context.Context) ([]models.QuestionRow, error) {
	const query = `
		SELECT id, position, category, reversed, text
		FROM questions
		ORDER BY position, id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ListQuestions: %w", err)
	}
	defer rows.Close()

	var results []models.QuestionRow
	for rows.Next() {
		var q models.QuestionRow
		if err := rows.Scan(&q.ID, &q.Position, &q.Category, &q.Reversed, &q.Text); err != nil {
			return nil, fmt.Errorf("scan ListQuestions row: %w", err)
		}
		results = append(results, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListQuestions: %w", err)
	}
	return results, nil
}

// ListReferenceNorms returns one row per category.
func (r *CatalogRepository) ListReferenceNorms(ctx context.Context) ([]models.ReferenceNormRow, error) {
	const query = `
		SELECT category, mean, std_dev
		FROM reference_norms
		ORDER BY category
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ListReferenceNorms: %w", err)
	}
	defer rows.Close()

	var results []models.ReferenceNormRow
	for rows.Next() {
		var n models.ReferenceNormRow
		if err := rows.Scan(&n.Category, &n.Mean, &n.StdDev); err != nil {
			return nil, fmt.Errorf("scan ListReferenceNorms row: %w", err)
		}
		results = append(results, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListReferenceNorms: %w", err)
	}
	return results, nil
}
