package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/godilite/founder-assessment/internal/assessment"
)

type scoreOptions struct {
	file   string
	asJSON bool
}

func newScoreCmd(opts *rootOptions) *cobra.Command {
	so := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a response file",
		Long: "Score reads a JSON array of responses, or an object with a \"responses\"\n" +
			"array, and prints the resulting profile. Use -f - to read stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, opts, so)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&so.file, "file", "f", "", "Responses JSON file (required)")
	f.BoolVar(&so.asJSON, "json", false, "Print the profile as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runScore(cmd *cobra.Command, opts *rootOptions, so *scoreOptions) error {
	data, err := readInput(cmd, so.file)
	if err != nil {
		return err
	}
	responses, err := decodeResponses(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", so.file, err)
	}

	svc, closeFn, err := opts.assessmentService(cmd.Context())
	if err != nil {
		return err
	}
	defer closeFn()

	profile, err := svc.ProcessAssessment(cmd.Context(), responses)
	if err != nil {
		if code := assessment.ErrorCode(err); code != "" {
			return fmt.Errorf("%s: %w", code, err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if so.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	printProfile(out, opts, profile)
	return nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read responses: %w", err)
	}
	return data, nil
}

func decodeResponses(data []byte) ([]assessment.Response, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var responses []assessment.Response
		err := json.Unmarshal(data, &responses)
		return responses, err
	}

	var wrapped struct {
		Responses []assessment.Response `json:"responses"`
	}
	err := json.Unmarshal(data, &wrapped)
	return wrapped.Responses, err
}

func printProfile(out io.Writer, opts *rootOptions, p assessment.Profile) {
	w := opts.newTable()
	w.AppendHeader(table.Row{"Category", "Score", "Percentile"})
	for _, cat := range p.Scores.Ranked() {
		w.AppendRow(table.Row{cat.Name(), p.Scores[cat], p.Percentiles[cat]})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	fmt.Fprintln(out, opts.render(w))

	fit := p.Interpretation.StartupFit
	roles := make([]string, len(fit.IdealRoles))
	for i, r := range fit.IdealRoles {
		roles[i] = string(r)
	}

	fmt.Fprintf(out, "\nCode:      %s\n", p.PrimaryCode)
	fmt.Fprintf(out, "Roles:     %s (%s match)\n", strings.Join(roles, ", "), fit.RoleMatch)
	fmt.Fprintf(out, "Decisions: %s\n", p.Interpretation.DecisionMakingStyle)

	printList(out, "Dominant traits", p.Interpretation.DominantTraits)
	printList(out, "Strengths", fit.Strengths)
	printList(out, "Potential challenges", fit.PotentialChallenges)
	printList(out, "Preferred environments", p.Interpretation.WorkEnvironment.Preferred)
	printList(out, "Environments to avoid", p.Interpretation.WorkEnvironment.ToAvoid)
}

func printList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
