package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/godilite/founder-assessment/internal/assessment"
	"github.com/godilite/founder-assessment/internal/repository"
	"github.com/godilite/founder-assessment/internal/service"
	dbbuilder "github.com/godilite/founder-assessment/pkg/database"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootOptions struct {
	dbPath   string
	markdown bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "assessctl",
		Short: "Score founder interest assessments offline",
		Long: "assessctl lists the RIASEC questionnaire and scores response files\n" +
			"with the same engine the server uses.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.dbPath, "db", "", "Catalog database (default: built-in questionnaire)")
	f.BoolVar(&opts.markdown, "markdown", false, "Render tables as Markdown")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log to stderr")

	cmd.AddCommand(newQuestionsCmd(opts))
	cmd.AddCommand(newScoreCmd(opts))
	return cmd
}

func (o *rootOptions) logger() *zap.Logger {
	if !o.verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// assessmentService loads the catalog from --db when given, otherwise uses
// the built-in tables.
func (o *rootOptions) assessmentService(ctx context.Context) (*service.AssessmentService, func(), error) {
	logger := o.logger()

	if o.dbPath == "" {
		engine, err := assessment.NewEngine()
		if err != nil {
			return nil, nil, err
		}
		return service.NewAssessmentServiceWithEngine(engine, logger), func() {}, nil
	}

	db, err := dbbuilder.New(ctx, dbbuilder.WithDataSource(o.dbPath), dbbuilder.WithRetry(1, 0))
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	svc, err := service.NewAssessmentService(ctx, repository.NewCatalogRepository(db), logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return svc, func() { db.Close() }, nil
}

func (o *rootOptions) newTable() table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	return w
}

func (o *rootOptions) render(w table.Writer) string {
	if o.markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
