package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/baselinegen/baselinegen/engine/baseline"
	"github.com/baselinegen/baselinegen/engine/schema"
)

// Output format constants
const (
	OutputFormatJSON   = "json"
	OutputFormatPretty = "pretty"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeBaselineReport(w io.Writer, format string, s *schema.Schema, result baseline.Result) error {
	if format == OutputFormatJSON {
		return writeJSON(w, result)
	}

	fmt.Fprintln(w, titleStyle.Render("Baseline report"))
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render("schema version:"), s.Version)
	fmt.Fprintf(w, "%s %d of %d\n", keyStyle.Render("matched rules:"), len(result.MatchedRules), len(s.Rules))
	for _, id := range result.MatchedRules {
		fmt.Fprintf(w, "  - %s\n", id)
	}

	fmt.Fprintln(w, titleStyle.Render("Baseline properties"))
	targets := make([]string, 0, len(result.BaselineProperties))
	for target := range result.BaselineProperties {
		targets = append(targets, target)
	}
	// Display order only; application order is schema order.
	sort.Strings(targets)
	for _, target := range targets {
		fmt.Fprintf(w, "  %s = %v\n", keyStyle.Render(target), result.BaselineProperties[target])
	}
	if len(targets) == 0 {
		fmt.Fprintln(w, "  (no rules matched)")
	}
	return nil
}

func writeValidationReport(w io.Writer, format string, v baseline.Validation) error {
	if format == OutputFormatJSON {
		return writeJSON(w, v)
	}

	if !v.Valid {
		fmt.Fprintln(w, errorStyle.Render("Building spec is invalid"))
	} else if len(v.Warnings) == 0 {
		fmt.Fprintln(w, successStyle.Render("Building spec is valid"))
	} else {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Building spec is valid with %d warning(s)", len(v.Warnings))))
	}
	for _, warning := range v.Warnings {
		fmt.Fprintf(w, "  - %s\n", warnStyle.Render(warning))
	}
	return nil
}
